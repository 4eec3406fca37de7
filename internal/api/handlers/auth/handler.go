package auth

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/auth"
)

const (
	msgMissingCredentials = "username and password are required"
	msgInvalidCredentials = "invalid username or password"
	msgUserInactive       = "user is inactive"
)

type MeResponse struct {
	ID          uuid.UUID           `json:"id"`
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

type Handler struct {
	authenticator Authenticator
	logger        Logger
}

func NewHandler(authenticator Authenticator, logger Logger) *Handler {
	return &Handler{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var creds auth.Credentials
	if err := handlers.DecodeJSON(r, &creds); err != nil {
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Authenticate and issue a token
	session, err := h.authenticator.Authenticate(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		case errors.Is(err, auth.ErrUserInactive):
			handlers.RespondForbidden(w, msgUserInactive)
		default:
			h.logger.Error("POST /auth/login - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: id=%s, role=%s", session.User.ID, session.User.Role)
	handlers.RespondJSON(w, http.StatusOK, session)
}

// Me GET /api/v1/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	role, hasRole := middleware.GetRole(r.Context())
	if !ok || !hasRole {
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, MeResponse{
		ID:          userID,
		Role:        role,
		Permissions: domain.PermissionsOf(role),
	})
}
