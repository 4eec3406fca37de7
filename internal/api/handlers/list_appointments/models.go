package list_appointments

import (
	"net/http"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/appointments/models"
)

// ToServiceRequest builds the list filter from query params. A single
// date overrides startDate/endDate.
func ToServiceRequest(r *http.Request) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}
	var err error

	if req.ProfessionalID, err = handlers.QueryUUID(r, "professionalId"); err != nil {
		return nil, err
	}
	if req.CustomerID, err = handlers.QueryUUID(r, "customerId"); err != nil {
		return nil, err
	}
	if req.StartDate, err = handlers.QueryDate(r, "startDate"); err != nil {
		return nil, err
	}
	if req.EndDate, err = handlers.QueryDate(r, "endDate"); err != nil {
		return nil, err
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}
	if date != nil {
		req.StartDate = date
		req.EndDate = date
	}

	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		req.Status = &status
	}

	if req.IncludeInactive, err = handlers.QueryBool(r, "includeInactive"); err != nil {
		return nil, err
	}
	return req, nil
}
