package sales

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/middleware"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
	cancelSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/cancel_sale"
	checkoutSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/checkout_sale"
)

const (
	msgInvalidSaleID        = "invalid sale id"
	msgInvalidParams        = "invalid query parameters"
	msgEmptyCart            = "the cart is empty"
	msgItemNotFound         = "a product or service in the cart was not found"
	msgInsufficientStock    = "insufficient stock for a product in the cart"
	msgInsufficientPayment  = "amount paid is less than the total"
	msgCustomerNotFound     = "customer not found"
	msgSaleNotFound         = "sale not found"
	msgSaleAlreadyCancelled = "sale is already cancelled"
)

type Handler struct {
	checkout CheckoutUseCase
	cancel   CancelUseCase
	service  SaleService
	logger   Logger
}

func NewHandler(checkout CheckoutUseCase, cancel CancelUseCase, service SaleService, logger Logger) *Handler {
	return &Handler{
		checkout: checkout,
		cancel:   cancel,
		service:  service,
		logger:   logger,
	}
}

// Checkout POST /api/v1/sales
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Checkout runs in a single transaction
	result, err := h.checkout.Execute(r.Context(), req.ToUseCaseRequest(userIDPtr(r)))
	if err != nil {
		switch {
		case errors.Is(err, checkoutSale.ErrEmptyCart):
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutSale.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, checkoutSale.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, checkoutSale.ErrInsufficientStock):
			h.logger.Warn("POST /sales - %v", err)
			handlers.RespondConflict(w, msgInsufficientStock)

		case errors.Is(err, checkoutSale.ErrInsufficientPayment):
			handlers.RespondBadRequest(w, msgInsufficientPayment)

		case errors.Is(err, checkoutSale.ErrInvalidInput):
			h.logger.Warn("POST /sales - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, checkoutSale.ErrInvalidInput))

		default:
			h.logger.Error("POST /sales - Checkout failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Build HTTP response
	h.logger.Info("POST /sales - Sale completed: sale_id=%s, total=%.2f, method=%s",
		result.SaleID, result.Total, result.PaymentMethod)
	handlers.RespondJSON(w, http.StatusCreated, FromCheckoutResponse(result))
}

// List GET /api/v1/sales?startDate=&endDate=&status=&customerId=&professionalId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListSalesRequest{
		StartDate: strings.TrimSpace(query.Get("startDate")),
		EndDate:   strings.TrimSpace(query.Get("endDate")),
		Status:    strings.TrimSpace(query.Get("status")),
	}
	var err error
	if req.CustomerID, err = handlers.QueryUUID(r, "customerId"); err == nil {
		req.ProfessionalID, err = handlers.QueryUUID(r, "professionalId")
	}
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, sales.ErrInvalidInput) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, sales.ErrInvalidInput))
			return
		}
		h.logger.Error("GET /sales - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/sales/{saleId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	// Extract saleId from URL
	id, err := handlers.PathUUID(r, "saleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSaleID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sales.ErrSaleNotFound) {
			handlers.RespondNotFound(w, msgSaleNotFound)
			return
		}
		h.logger.Error("GET /sales/{id} - Failed to get sale: sale_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Cancel POST /api/v1/sales/{saleId}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "saleId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSaleID)
		return
	}

	// The body is optional
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sales/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Cancel the sale and return stock
	result, err := h.cancel.Execute(r.Context(), &cancelSale.Request{
		SaleID:      id,
		Reason:      req.Reason,
		CancelledBy: userIDPtr(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelSale.ErrSaleNotFound):
			handlers.RespondNotFound(w, msgSaleNotFound)

		case errors.Is(err, cancelSale.ErrSaleAlreadyCancelled):
			handlers.RespondConflict(w, msgSaleAlreadyCancelled)

		case errors.Is(err, cancelSale.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, cancelSale.ErrInvalidInput))

		default:
			h.logger.Error("POST /sales/{id}/cancel - Cancel failed: sale_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sales/{id}/cancel - Sale cancelled: sale_id=%s, refunded=%.2f", id, result.RefundedTotal)
	handlers.RespondJSON(w, http.StatusOK, FromCancelResponse(result))
}

func userIDPtr(r *http.Request) *uuid.UUID {
	if id, ok := middleware.GetUserID(r.Context()); ok {
		return &id
	}
	return nil
}
