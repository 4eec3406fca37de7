package auth

import (
	"context"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/auth"
)

type Authenticator interface {
	Authenticate(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
