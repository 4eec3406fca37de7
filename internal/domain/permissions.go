package domain

// Permission is an action area a role may access
type Permission string

const (
	PermSales         Permission = "sales"
	PermServices      Permission = "services"
	PermAppointments  Permission = "appointments"
	PermProducts      Permission = "products"
	PermCustomers     Permission = "customers"
	PermFinancial     Permission = "financial"
	PermReports       Permission = "reports"
	PermUsers         Permission = "users"
	PermStoreSettings Permission = "store_settings"
)

var allPermissions = []Permission{
	PermSales, PermServices, PermAppointments, PermProducts, PermCustomers,
	PermFinancial, PermReports, PermUsers, PermStoreSettings,
}

var rolePermissions = map[Role]map[Permission]bool{
	RoleOwner:    permissionSet(allPermissions...),
	RoleManager:  permissionSet(PermSales, PermServices, PermAppointments, PermProducts, PermCustomers, PermFinancial, PermReports),
	RoleEmployee: permissionSet(PermSales, PermServices, PermAppointments, PermProducts, PermCustomers),
	RoleSeller:   permissionSet(PermSales, PermProducts),
}

// Can reports whether role may perform actions in the permission area
func Can(role Role, p Permission) bool {
	return rolePermissions[role][p]
}

// PermissionsOf lists the permissions of a role in a stable order
func PermissionsOf(role Role) []Permission {
	out := make([]Permission, 0, len(allPermissions))
	for _, p := range allPermissions {
		if Can(role, p) {
			out = append(out, p)
		}
	}
	return out
}

func permissionSet(perms ...Permission) map[Permission]bool {
	set := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return set
}
