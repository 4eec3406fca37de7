package checkout_sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

// Item is one cart line. Prices come from the catalog.
type Item struct {
	ItemType       domain.SaleItemType
	ItemID         uuid.UUID
	Quantity       int
	ProfessionalID *uuid.UUID
}

type Request struct {
	CustomerID     *uuid.UUID
	ProfessionalID *uuid.UUID
	Items          []Item
	PaymentMethod  domain.PaymentMethod
	DiscountType   *domain.DiscountType
	DiscountValue  float64
	AmountPaid     float64
	Notes          *string
	CreatedBy      *uuid.UUID
}

type Response struct {
	SaleID        uuid.UUID
	SaleDate      time.Time
	Subtotal      float64
	Discount      float64
	Total         float64
	PaymentMethod domain.PaymentMethod
	AmountPaid    float64
	Change        float64
	Items         []*domain.SaleItem
}
