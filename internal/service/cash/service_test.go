package cash

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash/models"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/ptr"
)

var brt = time.FixedZone("BRT", -3*60*60)

type mockMovementRepo struct{ mock.Mock }

func (m *mockMovementRepo) Create(ctx context.Context, mv *domain.CashMovement) (*domain.CashMovement, error) {
	args := m.Called(ctx, mv)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	mv.ID = uuid.New()
	return mv, nil
}

func (m *mockMovementRepo) List(ctx context.Context, from, to time.Time) ([]*domain.CashMovement, error) {
	args := m.Called(ctx, from, to)
	mv, _ := args.Get(0).([]*domain.CashMovement)
	return mv, args.Error(1)
}

func newService(repo *mockMovementRepo) *Service {
	return NewService(repo, clock.NewMockClock(time.Date(2026, 10, 17, 14, 0, 0, 0, brt)), logger.Nop())
}

func TestService_CreateMovement(t *testing.T) {
	repo := new(mockMovementRepo)
	userID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.CashMovement) bool {
		return m.Type == domain.MovementOut && m.Category == domain.CategorySupplier &&
			*m.CreatedBy == userID && *m.PaymentMethod == domain.PaymentPix
	})).Return(nil, nil)

	resp, err := newService(repo).CreateMovement(context.Background(), &models.CreateMovementRequest{
		Type: "out", Category: "supplier", Description: "Esmaltes", Amount: 150, PaymentMethod: ptr.Ptr("pix"),
	}, &userID)
	require.NoError(t, err)
	assert.Equal(t, "out", resp.Type)

	invalid := map[string]models.CreateMovementRequest{
		"category of other direction": {Type: "in", Category: "expense", Description: "x", Amount: 10},
		"unknown type":                {Type: "sideways", Category: "other", Description: "x", Amount: 10},
		"zero amount":                 {Type: "in", Category: "deposit", Description: "x", Amount: 0},
		"negative amount":             {Type: "in", Category: "deposit", Description: "x", Amount: -5},
		"blank description":           {Type: "in", Category: "deposit", Description: " ", Amount: 5},
		"bad payment method":          {Type: "in", Category: "deposit", Description: "x", Amount: 5, PaymentMethod: ptr.Ptr("cheque")},
	}
	for name, req := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := newService(new(mockMovementRepo)).CreateMovement(context.Background(), &req, nil)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_DailySummary(t *testing.T) {
	repo := new(mockMovementRepo)
	from := time.Date(2026, 10, 17, 0, 0, 0, 0, brt)
	cash, pix := domain.PaymentCash, domain.PaymentPix
	repo.On("List", mock.Anything, from, from.AddDate(0, 0, 1)).Return([]*domain.CashMovement{
		{Type: domain.MovementIn, Category: domain.CategorySale, Amount: 50.10, PaymentMethod: &cash},
		{Type: domain.MovementIn, Category: domain.CategorySale, Amount: 80.20, PaymentMethod: &pix},
		{Type: domain.MovementIn, Category: domain.CategorySale, Amount: 20, PaymentMethod: &cash},
		{Type: domain.MovementIn, Category: domain.CategoryDeposit, Amount: 100},
		{Type: domain.MovementOut, Category: domain.CategoryRefund, Amount: 20, PaymentMethod: &cash},
		{Type: domain.MovementOut, Category: domain.CategoryExpense, Amount: 30.05},
	}, nil)

	summary, err := newService(repo).DailySummary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", summary.Date)
	assert.Equal(t, 250.30, summary.TotalIn)
	assert.Equal(t, 50.05, summary.TotalOut)
	assert.Equal(t, 200.25, summary.Balance)
	assert.Equal(t, 3, summary.SalesCount)
	assert.Equal(t, map[string]float64{"cash": 70.10, "pix": 80.20}, summary.ByPaymentMethod)
}

func TestService_ListByDay(t *testing.T) {
	repo := new(mockMovementRepo)
	from := time.Date(2026, 10, 15, 0, 0, 0, 0, brt)
	repo.On("List", mock.Anything, from, from.AddDate(0, 0, 1)).Return([]*domain.CashMovement{{ID: uuid.New()}}, nil)
	svc := newService(repo)

	resp, err := svc.ListByDay(context.Background(), "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", resp.Date)
	assert.Len(t, resp.Movements, 1)

	_, err = svc.ListByDay(context.Background(), "15/10/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
