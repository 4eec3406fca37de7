package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(*domain.Service)
	return created, args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	args := m.Called(ctx, includeInactive)
	s, _ := args.Get(0).([]*domain.Service)
	return s, args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	return m.Called(ctx, s).Error(0)
}

type mockProfessionalRepo struct{ mock.Mock }

func (m *mockProfessionalRepo) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*domain.Professional)
	return created, args.Error(1)
}

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Professional)
	return p, args.Error(1)
}

func (m *mockProfessionalRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Professional, error) {
	args := m.Called(ctx, includeInactive)
	p, _ := args.Get(0).([]*domain.Professional)
	return p, args.Error(1)
}

func (m *mockProfessionalRepo) Update(ctx context.Context, p *domain.Professional) error {
	return m.Called(ctx, p).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*domain.Product)
	return created, args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, search string, includeInactive bool) ([]*domain.Product, error) {
	args := m.Called(ctx, search, includeInactive)
	p, _ := args.Get(0).([]*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}
