package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports/models"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
)

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) List(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, error) {
	args := m.Called(ctx, filter)
	s, _ := args.Get(0).([]*domain.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) ListItems(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*domain.SaleItem, error) {
	args := m.Called(ctx, ids)
	i, _ := args.Get(0).(map[uuid.UUID][]*domain.SaleItem)
	return i, args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	a, _ := args.Get(0).([]*domain.Appointment)
	return a, args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) List(ctx context.Context, search string, includeInactive bool) ([]*domain.Product, error) {
	args := m.Called(ctx, search, includeInactive)
	p, _ := args.Get(0).([]*domain.Product)
	return p, args.Error(1)
}

type mockProfessionalRepo struct{ mock.Mock }

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Professional)
	return p, args.Error(1)
}

type readOnlyTx struct{ calls int }

func (tx *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fixture struct {
	sales         *mockSaleRepo
	appointments  *mockAppointmentRepo
	products      *mockProductRepo
	professionals *mockProfessionalRepo
	tx            *readOnlyTx
	svc           *Service
}

func newFixture() *fixture {
	f := &fixture{
		sales:         new(mockSaleRepo),
		appointments:  new(mockAppointmentRepo),
		products:      new(mockProductRepo),
		professionals: new(mockProfessionalRepo),
		tx:            &readOnlyTx{},
	}
	now := clock.NewMockClock(time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC))
	f.svc = NewService(f.sales, f.appointments, f.products, f.professionals, f.tx, now, logger.Nop())
	return f
}

func TestService_SalesReport(t *testing.T) {
	f := newFixture()
	ana := uuid.New()
	gel, manicure, polish := uuid.New(), uuid.New(), uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()

	f.sales.On("List", mock.Anything, mock.MatchedBy(func(filter domain.SaleFilter) bool {
		return filter.From.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) &&
			filter.To.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) && filter.Status == nil
	})).Return([]*domain.Sale{
		{ID: s1, Status: domain.SaleCompleted, TotalAmount: 100, PaymentMethod: domain.PaymentCash},
		{ID: s2, Status: domain.SaleCompleted, TotalAmount: 50, Discount: 5, PaymentMethod: domain.PaymentPix},
		{ID: s3, Status: domain.SaleCancelled, TotalAmount: 999, PaymentMethod: domain.PaymentCash},
	}, nil)
	f.sales.On("ListItems", mock.Anything, []uuid.UUID{s1, s2}).Return(map[uuid.UUID][]*domain.SaleItem{
		s1: {
			{ItemType: domain.ItemService, ItemID: gel, Description: "Gel", Quantity: 1, TotalPrice: 80, ProfessionalID: &ana},
			{ItemType: domain.ItemProduct, ItemID: polish, Description: "Esmalte", Quantity: 2, TotalPrice: 20},
		},
		s2: {
			{ItemType: domain.ItemService, ItemID: manicure, Description: "Manicure", Quantity: 1, TotalPrice: 30},
			{ItemType: domain.ItemService, ItemID: gel, Description: "Gel", Quantity: 1, TotalPrice: 25},
		},
	}, nil)
	f.appointments.On("List", mock.Anything, mock.MatchedBy(func(filter domain.AppointmentFilter) bool {
		return filter.IncludeInactive && filter.ProfessionalID == nil
	})).Return([]*domain.Appointment{
		{Status: domain.StatusCompleted}, {Status: domain.StatusCompleted}, {Status: domain.StatusCancelled}, {Status: domain.StatusScheduled},
	}, nil)

	resp, err := f.svc.SalesReport(context.Background(), &models.PeriodRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.PeriodResponse{StartDate: "2026-10-01", EndDate: "2026-10-17"}, resp.Period)
	assert.Equal(t, 2, resp.SalesCount)
	assert.Equal(t, 1, resp.CancelledSales)
	assert.Equal(t, 150.0, resp.Revenue)
	assert.Equal(t, 75.0, resp.AverageTicket)
	assert.Equal(t, 5.0, resp.Discounts)
	assert.Equal(t, map[string]float64{"cash": 100, "pix": 50}, resp.ByPaymentMethod)
	assert.Equal(t, 2, resp.CompletedAppointments)
	assert.Equal(t, 1, resp.CancelledAppointments)
	require.Len(t, resp.TopServices, 2)
	assert.Equal(t, models.RankedItem{ID: gel, Name: "Gel", Quantity: 2, Revenue: 105}, resp.TopServices[0])
	require.Len(t, resp.TopProducts, 1)
	assert.Equal(t, 2, resp.TopProducts[0].Quantity)
	assert.Equal(t, 1, f.tx.calls)
}

func TestService_SalesReport_NoSalesSkipsItems(t *testing.T) {
	f := newFixture()
	f.sales.On("List", mock.Anything, mock.Anything).Return([]*domain.Sale{}, nil)
	f.appointments.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

	resp, err := f.svc.SalesReport(context.Background(), &models.PeriodRequest{StartDate: "2026-09-01", EndDate: "2026-09-30"})
	require.NoError(t, err)
	assert.Zero(t, resp.AverageTicket)
	assert.Empty(t, resp.TopServices)
	f.sales.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestService_SalesReport_InvalidPeriod(t *testing.T) {
	f := newFixture()
	for _, req := range []models.PeriodRequest{
		{StartDate: "2026-10-10", EndDate: "2026-10-01"},
		{StartDate: "01/10/2026"},
		{StartDate: "2024-01-01", EndDate: "2026-01-01"},
	} {
		_, err := f.svc.SalesReport(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", req)
	}
}

func TestService_ProfessionalReport(t *testing.T) {
	f := newFixture()
	ana, bia := uuid.New(), uuid.New()
	gel := uuid.New()
	s1 := uuid.New()

	f.professionals.On("GetByID", mock.Anything, ana).Return(&domain.Professional{ID: ana, Name: "Ana"}, nil)
	f.sales.On("List", mock.Anything, mock.MatchedBy(func(filter domain.SaleFilter) bool {
		return filter.Status != nil && *filter.Status == domain.SaleCompleted
	})).Return([]*domain.Sale{{ID: s1, Status: domain.SaleCompleted}}, nil)
	f.sales.On("ListItems", mock.Anything, []uuid.UUID{s1}).Return(map[uuid.UUID][]*domain.SaleItem{
		s1: {
			{ItemType: domain.ItemService, ItemID: gel, Description: "Gel", Quantity: 2, TotalPrice: 160, ProfessionalID: &ana},
			{ItemType: domain.ItemService, ItemID: gel, Description: "Gel", Quantity: 1, TotalPrice: 80, ProfessionalID: &bia},
			{ItemType: domain.ItemProduct, ItemID: uuid.New(), Description: "Esmalte", Quantity: 1, TotalPrice: 10},
		},
	}, nil)
	f.appointments.On("List", mock.Anything, mock.MatchedBy(func(filter domain.AppointmentFilter) bool {
		return filter.ProfessionalID != nil && *filter.ProfessionalID == ana
	})).Return([]*domain.Appointment{{Status: domain.StatusCompleted}}, nil)

	resp, err := f.svc.ProfessionalReport(context.Background(), ana, &models.PeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.ProfessionalName)
	assert.Equal(t, 2, resp.ServicesProvided)
	assert.Equal(t, 160.0, resp.Revenue)
	assert.Equal(t, 1, resp.CompletedAppointments)
	require.Len(t, resp.Services, 1)
}

func TestService_ProfessionalReport_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.professionals.On("GetByID", mock.Anything, id).Return(nil, professionalRepo.ErrProfessionalNotFound)

	_, err := f.svc.ProfessionalReport(context.Background(), id, &models.PeriodRequest{})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestService_StockReport(t *testing.T) {
	f := newFixture()
	f.products.On("List", mock.Anything, "", false).Return([]*domain.Product{
		{Name: "Acetona", Stock: 10, MinStock: 2, Cost: 3, Price: 8},
		{Name: "Esmalte", Stock: 4, MinStock: 5, Cost: 6.5, Price: 12.9},
		{Name: "Lixa", Stock: 0, MinStock: 10, Cost: 0.5, Price: 2},
	}, nil)

	resp, err := f.svc.StockReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalProducts)
	assert.Equal(t, 14, resp.TotalUnits)
	assert.Equal(t, 56.0, resp.CostValue)
	assert.Equal(t, 131.6, resp.RetailValue)
	assert.Equal(t, 1, resp.OutOfStock)
	require.Len(t, resp.LowStock, 2)
	assert.Equal(t, "Lixa", resp.LowStock[0].Name)
}
