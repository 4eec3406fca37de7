package sales

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
	cancelSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/cancel_sale"
	checkoutSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/checkout_sale"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
)

type mockCheckout struct {
	mock.Mock
}

func (m *mockCheckout) Execute(ctx context.Context, req *checkoutSale.Request) (*checkoutSale.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*checkoutSale.Response)
	return resp, args.Error(1)
}

type mockCancel struct {
	mock.Mock
}

func (m *mockCancel) Execute(ctx context.Context, req *cancelSale.Request) (*cancelSale.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*cancelSale.Response)
	return resp, args.Error(1)
}

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.SaleResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.SaleResponse)
	return resp, args.Error(1)
}

func (m *mockService) List(ctx context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.SaleListResponse)
	return resp, args.Error(1)
}

func checkoutBody(itemID uuid.UUID) string {
	return fmt.Sprintf(`{"items":[{"itemType":"product","itemId":"%s","quantity":2}],"paymentMethod":"cash","discountType":"percentage","discountValue":10,"amountPaid":100}`, itemID)
}

func TestHandler_Checkout(t *testing.T) {
	cashier := uuid.New()
	itemID := uuid.New()
	checkout := &mockCheckout{}
	checkout.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkoutSale.Request) bool {
		return req.CreatedBy != nil && *req.CreatedBy == cashier &&
			req.PaymentMethod == domain.PaymentCash &&
			req.DiscountType != nil && *req.DiscountType == domain.DiscountPercentage &&
			len(req.Items) == 1 && req.Items[0].ItemType == domain.ItemProduct && req.Items[0].Quantity == 2
	})).Return(&checkoutSale.Response{
		SaleID: uuid.New(), SaleDate: time.Now(), Subtotal: 90, Discount: 9, Total: 81,
		PaymentMethod: domain.PaymentCash, AmountPaid: 100, Change: 19,
		Items: []*domain.SaleItem{{ItemType: domain.ItemProduct, ItemID: itemID, Quantity: 2, UnitPrice: 45, TotalPrice: 90}},
	}, nil)
	h := NewHandler(checkout, &mockCancel{}, &mockService{}, logger.Nop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(checkoutBody(itemID)))
	r = r.WithContext(middleware.WithUser(r.Context(), cashier, domain.RoleSeller))
	rec := httptest.NewRecorder()
	h.Checkout(rec, r)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"change":19`)
	checkout.AssertExpectations(t)
}

func TestHandler_Checkout_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{checkoutSale.ErrEmptyCart, http.StatusBadRequest},
		{checkoutSale.ErrItemNotFound, http.StatusNotFound},
		{checkoutSale.ErrCustomerNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: product id=1", checkoutSale.ErrInsufficientStock), http.StatusConflict},
		{checkoutSale.ErrInsufficientPayment, http.StatusBadRequest},
		{fmt.Errorf("%w: %v", checkoutSale.ErrInvalidInput, "invalid payment method"), http.StatusBadRequest},
		{fmt.Errorf("%w: tx", checkoutSale.ErrInternal), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			checkout := &mockCheckout{}
			checkout.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(checkout, &mockCancel{}, &mockService{}, logger.Nop())

			rec := httptest.NewRecorder()
			h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(checkoutBody(uuid.New()))))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func cancelRequest(id, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodPost, "/api/v1/sales/"+id+"/cancel", nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, "/api/v1/sales/"+id+"/cancel", strings.NewReader(body))
	}
	return mux.SetURLVars(r, map[string]string{"saleId": id})
}

func TestHandler_Cancel(t *testing.T) {
	saleID := uuid.New()
	cancel := &mockCancel{}
	cancel.On("Execute", mock.Anything, mock.MatchedBy(func(req *cancelSale.Request) bool {
		return req.SaleID == saleID && req.Reason != nil && *req.Reason == "wrong item"
	})).Return(&cancelSale.Response{SaleID: saleID, RefundedTotal: 81, RestockedQty: 2}, nil)
	h := NewHandler(&mockCheckout{}, cancel, &mockService{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Cancel(rec, cancelRequest(saleID.String(), `{"reason":"wrong item"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refundedTotal":81`)
}

func TestHandler_Cancel_Errors(t *testing.T) {
	already, missing := uuid.New(), uuid.New()
	cancel := &mockCancel{}
	cancel.On("Execute", mock.Anything, mock.MatchedBy(func(req *cancelSale.Request) bool { return req.SaleID == already })).
		Return(nil, cancelSale.ErrSaleAlreadyCancelled)
	cancel.On("Execute", mock.Anything, mock.MatchedBy(func(req *cancelSale.Request) bool { return req.SaleID == missing })).
		Return(nil, cancelSale.ErrSaleNotFound)
	h := NewHandler(&mockCheckout{}, cancel, &mockService{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Cancel(rec, cancelRequest(already.String(), ""))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Cancel(rec, cancelRequest(missing.String(), ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Cancel(rec, cancelRequest(missing.String(), `{"reason":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListAndGet(t *testing.T) {
	customerID, saleID := uuid.New(), uuid.New()
	svc := &mockService{}
	svc.On("List", mock.Anything, &models.ListSalesRequest{StartDate: "2026-10-01", EndDate: "2026-10-19", CustomerID: &customerID}).
		Return(&models.SaleListResponse{Sales: []models.SaleResponse{}}, nil)
	svc.On("List", mock.Anything, &models.ListSalesRequest{StartDate: "bad"}).
		Return(nil, fmt.Errorf("%w: %v", sales.ErrInvalidInput, models.ErrInvalidDate))
	svc.On("GetByID", mock.Anything, saleID).Return(nil, sales.ErrSaleNotFound)
	svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, errors.New("db"))
	h := NewHandler(&mockCheckout{}, &mockCancel{}, svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sales?startDate=2026-10-01&endDate=2026-10-19&customerId="+customerID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sales?startDate=bad", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), models.ErrInvalidDate.Error())

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"saleId": saleID.String()})
	rec = httptest.NewRecorder()
	h.Get(rec, r)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"saleId": uuid.NewString()})
	rec = httptest.NewRecorder()
	h.Get(rec, r)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
