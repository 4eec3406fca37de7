package get_customer_appointments

import (
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/appointments/models"
)

const msgInvalidCustomerID = "invalid customer id"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/appointments
// Returns the customer's full history, cancelled appointments included.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extract customerId from URL
	customerID, err := handlers.PathUUID(r, "customerId")
	if err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Customer history includes cancelled and completed appointments
	result, err := h.service.List(r.Context(), &models.ListAppointmentsRequest{
		CustomerID:      &customerID,
		IncludeInactive: true,
	})
	if err != nil {
		h.logger.Error("GET /customers/{id}/appointments - Failed to list: customer_id=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
