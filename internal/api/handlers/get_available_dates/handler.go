package get_available_dates

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	getAvailableDates "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_dates"
)

const (
	msgInvalidProfessionalID = "professionalId must be a valid id"
	msgProfessionalNotFound  = "professional not found"
)

var msgInvalidDays = fmt.Sprintf("days must be between 1 and %d", domain.MaxPublicBookingDays)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates
// Query params: professionalId (required), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extract professionalId from query params
	professionalID, err := handlers.QueryUUID(r, "professionalId")
	if err != nil || professionalID == nil {
		h.logger.Warn("GET /available-dates - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Optional window size; zero falls back to the configured default
	days, err := handlers.QueryInt(r, "days")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	// Call use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ProfessionalID: *professionalID,
		Days:           days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrProfessionalNotFound):
			h.logger.Warn("GET /available-dates - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /available-dates - Failed to get dates: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
