package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

type SessionUser struct {
	ID          uuid.UUID           `json:"id"`
	Username    string              `json:"username"`
	Name        string              `json:"name"`
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// Session is an authenticated login: a bearer token and the user it belongs to
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      SessionUser `json:"user"`
}

func newSession(token string, expiresAt time.Time, id uuid.UUID, username, name string, role domain.Role) *Session {
	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User: SessionUser{
			ID:          id,
			Username:    username,
			Name:        name,
			Role:        role,
			Permissions: domain.PermissionsOf(role),
		},
	}
}
