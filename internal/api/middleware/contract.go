package middleware

import (
	"time"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/jwt"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
