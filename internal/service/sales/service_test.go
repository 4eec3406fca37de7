package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	saleRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/sale"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
)

type mockSaleRepo struct {
	mock.Mock
}

func (m *mockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	sale, _ := args.Get(0).(*domain.Sale)
	return sale, args.Error(1)
}

func (m *mockSaleRepo) List(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, error) {
	args := m.Called(ctx, filter)
	sales, _ := args.Get(0).([]*domain.Sale)
	return sales, args.Error(1)
}

func (m *mockSaleRepo) ListItems(ctx context.Context, saleIDs []uuid.UUID) (map[uuid.UUID][]*domain.SaleItem, error) {
	args := m.Called(ctx, saleIDs)
	items, _ := args.Get(0).(map[uuid.UUID][]*domain.SaleItem)
	return items, args.Error(1)
}

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func newService(repo *mockSaleRepo) *Service {
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, saoPaulo)
	return NewService(repo, clock.NewMockClock(now), logger.Nop())
}

func TestService_List_DefaultsToToday(t *testing.T) {
	repo := &mockSaleRepo{}
	svc := newService(repo)

	completed := &domain.Sale{ID: uuid.New(), Status: domain.SaleCompleted, TotalAmount: 80.5, PaymentMethod: domain.PaymentPix}
	cancelled := &domain.Sale{ID: uuid.New(), Status: domain.SaleCancelled, TotalAmount: 40, PaymentMethod: domain.PaymentCash}
	item := &domain.SaleItem{ID: uuid.New(), ItemType: domain.ItemService, Description: "Manicure", Quantity: 1, UnitPrice: 80.5, TotalPrice: 80.5}

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.From.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, saoPaulo)) &&
			f.To.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, saoPaulo)) &&
			f.Status == nil
	})).Return([]*domain.Sale{completed, cancelled}, nil)
	repo.On("ListItems", mock.Anything, []uuid.UUID{completed.ID, cancelled.ID}).
		Return(map[uuid.UUID][]*domain.SaleItem{completed.ID: {item}}, nil)

	resp, err := svc.List(context.Background(), &models.ListSalesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Sales, 2)
	assert.Equal(t, 80.5, resp.Total)
	assert.Len(t, resp.Sales[0].Items, 1)
	assert.Empty(t, resp.Sales[1].Items)
	assert.NotNil(t, resp.Sales[1].Items)
	repo.AssertExpectations(t)
}

func TestService_List_NoSalesSkipsItems(t *testing.T) {
	repo := &mockSaleRepo{}
	svc := newService(repo)

	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Sale{}, nil)

	resp, err := svc.List(context.Background(), &models.ListSalesRequest{StartDate: "2026-10-01", EndDate: "2026-10-19", Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, resp.Sales)
	repo.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestService_List_InvalidInput(t *testing.T) {
	svc := newService(&mockSaleRepo{})

	tests := []models.ListSalesRequest{
		{StartDate: "19/10/2026"},
		{StartDate: "2026-10-19", EndDate: "2026-10-01"},
		{StartDate: "2026-01-01", EndDate: "2026-10-01"},
		{Status: "refunded"},
	}
	for _, req := range tests {
		_, err := svc.List(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := &mockSaleRepo{}
	svc := newService(repo)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background(), &models.ListSalesRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockSaleRepo{}
	svc := newService(repo)

	id := uuid.New()
	pct := domain.DiscountPercentage
	repo.On("GetByID", mock.Anything, id).Return(&domain.Sale{
		ID: id, Status: domain.SaleCompleted, DiscountType: &pct, TotalAmount: 90, Items: []*domain.SaleItem{},
	}, nil)

	resp, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	require.NotNil(t, resp.DiscountType)
	assert.Equal(t, "percentage", *resp.DiscountType)

	missing := uuid.New()
	repo.On("GetByID", mock.Anything, missing).Return(nil, saleRepo.ErrSaleNotFound)
	_, err = svc.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
