package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/integrations/identityservice"
)

// Authenticator verifies staff credentials and opens a session
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Session, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type IdentityClient interface {
	Verify(ctx context.Context, username, password string) (*identityservice.Identity, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role string) (string, time.Time, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
