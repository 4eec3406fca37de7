package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type SaleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	List(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, error)
	ListItems(ctx context.Context, saleIDs []uuid.UUID) (map[uuid.UUID][]*domain.SaleItem, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
