package cash

import (
	"errors"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash/models"
)

type Handler struct {
	service CashService
	logger  Logger
}

func NewHandler(service CashService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateMovement POST /api/v1/cash/movements
func (h *Handler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var req models.CreateMovementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cash/movements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Get userID from context (set by the Auth middleware)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	// Record movement
	result, err := h.service.CreateMovement(r.Context(), &req, &userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("POST /cash/movements - Created: id=%s, type=%s", result.ID, req.Type)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListMovements GET /api/v1/cash/movements?date=YYYY-MM-DD
func (h *Handler) ListMovements(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListByDay(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Summary GET /api/v1/cash/summary?date=YYYY-MM-DD
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DailySummary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cash.ErrInvalidInput) {
		h.logger.Warn("%s %s - Invalid input: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, cash.ErrInvalidInput))
		return
	}
	h.logger.Error("%s %s - Failed: error=%v", r.Method, r.URL.Path, err)
	handlers.RespondInternalError(w)
}
