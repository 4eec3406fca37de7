package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
}

type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Professional, error)
	Update(ctx context.Context, p *domain.Professional) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, includeInactive bool) ([]*domain.Product, error)
	ListLowStock(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
