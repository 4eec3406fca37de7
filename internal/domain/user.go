package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleSeller   Role = "seller"
)

func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// User is a staff account
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
