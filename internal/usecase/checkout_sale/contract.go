package checkout_sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

type CustomerRepository interface {
	ApplySale(ctx context.Context, id uuid.UUID, amount float64, at time.Time) error
}

type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	AddItems(ctx context.Context, saleID uuid.UUID, items []*domain.SaleItem) error
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

// Metrics counts sale outcomes
type Metrics interface {
	IncSale(outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
