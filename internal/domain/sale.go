package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type SaleItemType string

const (
	ItemProduct SaleItemType = "product"
	ItemService SaleItemType = "service"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidUnitPrice   = errors.New("unit price must not be negative")
	ErrInvalidDiscount    = errors.New("invalid discount")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrInsufficientAmount = errors.New("amount paid is less than total")
	ErrInvalidItemType    = errors.New("invalid item type")
)

// Sale is a completed checkout: header plus line items
type Sale struct {
	ID             uuid.UUID
	CustomerID     *uuid.UUID
	ProfessionalID *uuid.UUID
	Subtotal       float64
	Discount       float64
	DiscountType   *DiscountType
	TotalAmount    float64
	PaymentMethod  PaymentMethod
	AmountPaid     float64
	Change         float64
	Status         SaleStatus
	SaleDate       time.Time
	Notes          *string
	CancelledAt    *time.Time
	CancelReason   *string
	CreatedBy      *uuid.UUID
	CreatedAt      time.Time

	Items []*SaleItem
}

// SaleItem is one cart line
type SaleItem struct {
	ID             uuid.UUID
	SaleID         uuid.UUID
	ItemType       SaleItemType
	ItemID         uuid.UUID
	Description    string
	Quantity       int
	UnitPrice      float64
	TotalPrice     float64
	ProfessionalID *uuid.UUID
}

// CartLine is an item before checkout
type CartLine struct {
	ItemType       SaleItemType
	ItemID         uuid.UUID
	Description    string
	Quantity       int
	UnitPrice      float64
	ProfessionalID *uuid.UUID
}

// Payment describes how the customer pays and the discount applied
type Payment struct {
	Method        PaymentMethod
	DiscountType  *DiscountType
	DiscountValue float64
	AmountPaid    float64
}

// SaleTotals is the priced cart
type SaleTotals struct {
	Subtotal   float64
	Discount   float64
	Total      float64
	AmountPaid float64
	Change     float64
}

// PriceCart computes subtotal, discount, total and change. Cash payments must
// cover the total; other methods are charged exactly the total.
func PriceCart(lines []CartLine, payment Payment) (SaleTotals, error) {
	if len(lines) == 0 {
		return SaleTotals{}, ErrEmptyCart
	}
	if !payment.Method.IsValid() {
		return SaleTotals{}, fmt.Errorf("%w: %q", ErrInvalidPayment, payment.Method)
	}

	var subtotal float64
	for _, line := range lines {
		if line.ItemType != ItemProduct && line.ItemType != ItemService {
			return SaleTotals{}, fmt.Errorf("%w: %q", ErrInvalidItemType, line.ItemType)
		}
		if line.Quantity <= 0 {
			return SaleTotals{}, ErrInvalidQuantity
		}
		if line.UnitPrice < 0 {
			return SaleTotals{}, ErrInvalidUnitPrice
		}
		subtotal += float64(line.Quantity) * line.UnitPrice
	}
	subtotal = RoundMoney(subtotal)

	discount, err := discountAmount(subtotal, payment.DiscountType, payment.DiscountValue)
	if err != nil {
		return SaleTotals{}, err
	}

	totals := SaleTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    RoundMoney(subtotal - discount),
	}

	if payment.Method == PaymentCash {
		if payment.AmountPaid < totals.Total {
			return SaleTotals{}, fmt.Errorf("%w: paid %.2f, total %.2f", ErrInsufficientAmount, payment.AmountPaid, totals.Total)
		}
		totals.AmountPaid = RoundMoney(payment.AmountPaid)
		totals.Change = RoundMoney(payment.AmountPaid - totals.Total)
	} else {
		totals.AmountPaid = totals.Total
	}

	return totals, nil
}

func discountAmount(subtotal float64, discountType *DiscountType, value float64) (float64, error) {
	if discountType == nil || value == 0 {
		return 0, nil
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative value", ErrInvalidDiscount)
	}
	switch *discountType {
	case DiscountPercentage:
		if value > MaxDiscountPercentage {
			return 0, fmt.Errorf("%w: percentage above 100", ErrInvalidDiscount)
		}
		return RoundMoney(subtotal * value / 100), nil
	case DiscountFixed:
		if value > subtotal {
			return 0, fmt.Errorf("%w: fixed discount above subtotal", ErrInvalidDiscount)
		}
		return RoundMoney(value), nil
	default:
		return 0, fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, *discountType)
	}
}

// RoundMoney rounds to cents
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// SaleFilter narrows sale listings
type SaleFilter struct {
	From           *time.Time
	To             *time.Time
	Status         *SaleStatus
	CustomerID     *uuid.UUID
	ProfessionalID *uuid.UUID
}
