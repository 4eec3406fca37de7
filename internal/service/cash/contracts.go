package cash

import (
	"context"
	"time"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type CashMovementRepository interface {
	Create(ctx context.Context, m *domain.CashMovement) (*domain.CashMovement, error)
	List(ctx context.Context, from, to time.Time) ([]*domain.CashMovement, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
