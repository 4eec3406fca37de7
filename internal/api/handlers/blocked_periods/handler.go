package blocked_periods

import (
	"errors"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
)

const (
	msgInvalidParams        = "invalid query parameters"
	msgInvalidID            = "invalid blocked period id"
	msgNotFound             = "blocked period not found"
	msgProfessionalNotFound = "professional not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/blocked-periods
// Query params: startDate, endDate, professionalId (all optional)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBlockedPeriodsRequest{}
	var err error
	if req.StartDate, err = handlers.QueryDate(r, "startDate"); err == nil {
		if req.EndDate, err = handlers.QueryDate(r, "endDate"); err == nil {
			req.ProfessionalID, err = handlers.QueryUUID(r, "professionalId")
		}
	}
	if err != nil {
		h.logger.Warn("GET /blocked-periods - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListBlockedPeriods(r.Context(), req)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, schedule.ErrInvalidInput))
			return
		}
		h.logger.Error("GET /blocked-periods - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/blocked-periods
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockedPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateBlockedPeriod(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, schedule.ErrInvalidInput))

		case errors.Is(err, schedule.ErrProfessionalNotFound):
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("POST /blocked-periods - Failed to create: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-periods - Created: id=%s, date=%s, all_day=%t", created.ID, created.Date, created.AllDay)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Delete DELETE /api/v1/blocked-periods/{blockedPeriodId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "blockedPeriodId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlockedPeriod(r.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrBlockedPeriodNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /blocked-periods/{id} - Failed to delete: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocked-periods/{id} - Deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
