package reports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type SaleRepository interface {
	List(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, error)
	ListItems(ctx context.Context, saleIDs []uuid.UUID) (map[uuid.UUID][]*domain.SaleItem, error)
}

type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

type ProductRepository interface {
	List(ctx context.Context, search string, includeInactive bool) ([]*domain.Product, error)
}

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
