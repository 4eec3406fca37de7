package cancel_sale

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	customerRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/customer"
	saleRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/sale"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/metrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/ptr"
)

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) MarkCancelled(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error {
	return m.Called(ctx, id, reason, at).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) RevertSale(ctx context.Context, id uuid.UUID, amount float64) error {
	return m.Called(ctx, id, amount).Error(0)
}

type mockCashRepo struct{ mock.Mock }

func (m *mockCashRepo) Create(ctx context.Context, mv *domain.CashMovement) (*domain.CashMovement, error) {
	args := m.Called(ctx, mv)
	return mv, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var now = time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)

type fixture struct {
	sales     *mockSaleRepo
	products  *mockProductRepo
	customers *mockCustomerRepo
	cash      *mockCashRepo
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		sales:     new(mockSaleRepo),
		products:  new(mockProductRepo),
		customers: new(mockCustomerRepo),
		cash:      new(mockCashRepo),
	}
	f.uc = NewUseCase(f.sales, f.products, f.customers, f.cash, inlineTx{},
		clock.NewMockClock(now), metrics.Discard{}, logger.Nop())
	return f
}

func completedSale(customerID *uuid.UUID) *domain.Sale {
	return &domain.Sale{
		ID:            uuid.New(),
		CustomerID:    customerID,
		TotalAmount:   60,
		PaymentMethod: domain.PaymentPix,
		Status:        domain.SaleCompleted,
		Items: []*domain.SaleItem{
			{ItemType: domain.ItemProduct, ItemID: uuid.New(), Quantity: 2, UnitPrice: 12.5, TotalPrice: 25},
			{ItemType: domain.ItemService, ItemID: uuid.New(), Quantity: 1, UnitPrice: 35, TotalPrice: 35},
		},
	}
}

func TestExecute_RestoresEverything(t *testing.T) {
	f := newFixture()
	customerID := uuid.New()
	userID := uuid.New()
	sale := completedSale(&customerID)

	f.sales.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	f.sales.On("MarkCancelled", mock.Anything, sale.ID, ptr.Ptr("wrong item"), now).Return(nil)
	f.products.On("IncrementStock", mock.Anything, sale.Items[0].ItemID, 2).Return(nil)
	f.customers.On("RevertSale", mock.Anything, customerID, 60.0).Return(nil)
	f.cash.On("Create", mock.Anything, mock.MatchedBy(func(mv *domain.CashMovement) bool {
		return mv.Type == domain.MovementOut && mv.Category == domain.CategoryRefund &&
			mv.Amount == 60 && *mv.SaleID == sale.ID && *mv.CreatedBy == userID
	})).Return(nil, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		SaleID:      sale.ID,
		Reason:      ptr.Ptr("  wrong item "),
		CancelledBy: &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, 60.0, resp.RefundedTotal)
	assert.Equal(t, 2, resp.RestockedQty)
	assert.Equal(t, now, resp.CancelledAt)

	f.sales.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.cash.AssertExpectations(t)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	f := newFixture()
	sale := completedSale(nil)
	sale.Status = domain.SaleCancelled
	f.sales.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SaleID: sale.ID})
	assert.ErrorIs(t, err, ErrSaleAlreadyCancelled)
	f.products.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
	f.cash.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_LostRaceOnStatus(t *testing.T) {
	f := newFixture()
	sale := completedSale(nil)
	f.sales.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	f.sales.On("MarkCancelled", mock.Anything, sale.ID, (*string)(nil), now).Return(saleRepo.ErrSaleAlreadyCancelled)

	_, err := f.uc.Execute(context.Background(), &Request{SaleID: sale.ID, Reason: ptr.Ptr("   ")})
	assert.ErrorIs(t, err, ErrSaleAlreadyCancelled)
}

func TestExecute_DeletedCustomerIsIgnored(t *testing.T) {
	f := newFixture()
	customerID := uuid.New()
	sale := completedSale(&customerID)

	f.sales.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
	f.sales.On("MarkCancelled", mock.Anything, sale.ID, (*string)(nil), now).Return(nil)
	f.products.On("IncrementStock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.customers.On("RevertSale", mock.Anything, customerID, 60.0).Return(customerRepo.ErrCustomerNotFound)
	f.cash.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.uc.Execute(context.Background(), &Request{SaleID: sale.ID})
	assert.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		_, err := newFixture().uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reason too long", func(t *testing.T) {
		_, err := newFixture().uc.Execute(context.Background(), &Request{
			SaleID: uuid.New(),
			Reason: ptr.Ptr(strings.Repeat("x", domain.MaxReasonLength+1)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.sales.On("GetByID", mock.Anything, id).Return(nil, saleRepo.ErrSaleNotFound)

		_, err := f.uc.Execute(context.Background(), &Request{SaleID: id})
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})

	t.Run("restock failure", func(t *testing.T) {
		f := newFixture()
		sale := completedSale(nil)
		f.sales.On("GetByID", mock.Anything, sale.ID).Return(sale, nil)
		f.sales.On("MarkCancelled", mock.Anything, sale.ID, (*string)(nil), now).Return(nil)
		f.products.On("IncrementStock", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("deadlock"))

		_, err := f.uc.Execute(context.Background(), &Request{SaleID: sale.ID})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
