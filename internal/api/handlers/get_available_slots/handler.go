package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	getAvailableSlots "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "professionalId must be a valid id"
	msgInvalidServiceID      = "serviceId must be a valid id"
	msgInvalidDate           = "date is required, expected YYYY-MM-DD"
	msgProfessionalNotFound  = "professional not found"
	msgServiceNotFound       = "service not found"
	msgInvalidRequest        = "professionalId, serviceId and date are required"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: professionalId, serviceId, date (YYYY-MM-DD), all required
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extract professionalId from query params
	professionalID, err := handlers.QueryUUID(r, "professionalId")
	if err != nil || professionalID == nil {
		h.logger.Warn("GET /available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Extract serviceId from query params
	serviceID, err := handlers.QueryUUID(r, "serviceId")
	if err != nil || serviceID == nil {
		h.logger.Warn("GET /available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Extract date from query params
	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Call use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProfessionalID: *professionalID,
		ServiceID:      *serviceID,
		Date:           *date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /available-slots - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: professional_id=%s, service_id=%s, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Build HTTP response
	h.logger.Info("GET /available-slots - professional_id=%s, date=%s, slots_count=%d",
		professionalID, date.Format("2006-01-02"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
