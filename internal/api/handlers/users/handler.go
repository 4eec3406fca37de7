package users

import (
	"errors"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/users"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/users/models"
)

const (
	msgOwnerOnly     = "only the owner can create users"
	msgAlreadyExists = "username already taken"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetRole(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), role, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrForbidden):
			handlers.RespondForbidden(w, msgOwnerOnly)
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, users.ErrInvalidInput))
		case errors.Is(err, users.ErrUserAlreadyExists):
			handlers.RespondConflict(w, msgAlreadyExists)
		default:
			h.logger.Error("POST /users - Failed to create: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - Created: id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
