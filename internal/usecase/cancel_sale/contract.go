package cancel_sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type SaleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error
}

type ProductRepository interface {
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type CustomerRepository interface {
	RevertSale(ctx context.Context, id uuid.UUID, amount float64) error
}

type CashMovementRepository interface {
	Create(ctx context.Context, m *domain.CashMovement) (*domain.CashMovement, error)
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type TimeProvider interface {
	Now() time.Time
}

type Metrics interface {
	IncSale(outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
