package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
	cancelSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/cancel_sale"
	checkoutSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/checkout_sale"
)

type CheckoutItem struct {
	ItemType       string     `json:"itemType"` // "product" | "service"
	ItemID         uuid.UUID  `json:"itemId"`
	Quantity       int        `json:"quantity"`
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
}

// CheckoutRequest HTTP request model. Prices are taken from the catalog.
type CheckoutRequest struct {
	CustomerID     *uuid.UUID     `json:"customerId,omitempty"`
	ProfessionalID *uuid.UUID     `json:"professionalId,omitempty"`
	Items          []CheckoutItem `json:"items"`
	PaymentMethod  string         `json:"paymentMethod"`
	DiscountType   *string        `json:"discountType,omitempty"`
	DiscountValue  float64        `json:"discountValue"`
	AmountPaid     float64        `json:"amountPaid"`
	Notes          *string        `json:"notes,omitempty"`
}

type CheckoutResponse struct {
	SaleID        uuid.UUID                 `json:"saleId"`
	SaleDate      time.Time                 `json:"saleDate"`
	Subtotal      float64                   `json:"subtotal"`
	Discount      float64                   `json:"discount"`
	Total         float64                   `json:"total"`
	PaymentMethod string                    `json:"paymentMethod"`
	AmountPaid    float64                   `json:"amountPaid"`
	Change        float64                   `json:"change"`
	Items         []models.SaleItemResponse `json:"items"`
}

type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type CancelResponse struct {
	SaleID        uuid.UUID `json:"saleId"`
	CancelledAt   time.Time `json:"cancelledAt"`
	RefundedTotal float64   `json:"refundedTotal"`
	RestockedQty  int       `json:"restockedQuantity"`
}

// ToUseCaseRequest converts the body; the use case validates the values
func (r *CheckoutRequest) ToUseCaseRequest(createdBy *uuid.UUID) *checkoutSale.Request {
	items := make([]checkoutSale.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = checkoutSale.Item{
			ItemType:       domain.SaleItemType(it.ItemType),
			ItemID:         it.ItemID,
			Quantity:       it.Quantity,
			ProfessionalID: it.ProfessionalID,
		}
	}

	var discountType *domain.DiscountType
	if r.DiscountType != nil && *r.DiscountType != "" {
		dt := domain.DiscountType(*r.DiscountType)
		discountType = &dt
	}

	return &checkoutSale.Request{
		CustomerID:     r.CustomerID,
		ProfessionalID: r.ProfessionalID,
		Items:          items,
		PaymentMethod:  domain.PaymentMethod(r.PaymentMethod),
		DiscountType:   discountType,
		DiscountValue:  r.DiscountValue,
		AmountPaid:     r.AmountPaid,
		Notes:          r.Notes,
		CreatedBy:      createdBy,
	}
}

func FromCheckoutResponse(resp *checkoutSale.Response) *CheckoutResponse {
	return &CheckoutResponse{
		SaleID:        resp.SaleID,
		SaleDate:      resp.SaleDate,
		Subtotal:      resp.Subtotal,
		Discount:      resp.Discount,
		Total:         resp.Total,
		PaymentMethod: string(resp.PaymentMethod),
		AmountPaid:    resp.AmountPaid,
		Change:        resp.Change,
		Items:         models.FromDomainItems(resp.Items),
	}
}

func FromCancelResponse(resp *cancelSale.Response) *CancelResponse {
	return &CancelResponse{
		SaleID:        resp.SaleID,
		CancelledAt:   resp.CancelledAt,
		RefundedTotal: resp.RefundedTotal,
		RestockedQty:  resp.RestockedQty,
	}
}
