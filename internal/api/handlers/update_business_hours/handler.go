package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
)

const msgInvalidDayOfWeek = "dayOfWeek must be between 0 (Sunday) and 6 (Saturday)"

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

// Handle PUT /api/v1/business-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extract dayOfWeek from URL (0 = Sunday)
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// Decode body
	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Validate and save
	result, err := h.service.UpdateBusinessHours(r.Context(), dayOfWeek, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /business-hours/{day} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, schedule.ErrInvalidInput))

		default:
			h.logger.Error("PUT /business-hours/{day} - Failed to update: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours/{day} - day=%d, open=%s, close=%s, active=%t",
		dayOfWeek, result.OpenTime, result.CloseTime, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
