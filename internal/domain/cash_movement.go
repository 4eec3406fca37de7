package domain

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

type MovementCategory string

const (
	CategorySale       MovementCategory = "sale"
	CategoryDeposit    MovementCategory = "deposit"
	CategoryService    MovementCategory = "service"
	CategoryWithdrawal MovementCategory = "withdrawal"
	CategoryExpense    MovementCategory = "expense"
	CategorySupplier   MovementCategory = "supplier"
	CategoryRefund     MovementCategory = "refund"
	CategoryOther      MovementCategory = "other"
)

var movementCategories = map[MovementType][]MovementCategory{
	MovementIn:  {CategorySale, CategoryDeposit, CategoryService, CategoryOther},
	MovementOut: {CategoryWithdrawal, CategoryExpense, CategorySupplier, CategoryRefund, CategoryOther},
}

// IsValidMovement checks that the category belongs to the movement type
func IsValidMovement(t MovementType, c MovementCategory) bool {
	for _, allowed := range movementCategories[t] {
		if allowed == c {
			return true
		}
	}
	return false
}

// CashMovement is an entry in the cash register
type CashMovement struct {
	ID            uuid.UUID
	Type          MovementType
	Category      MovementCategory
	Description   string
	Amount        float64
	PaymentMethod *PaymentMethod
	SaleID        *uuid.UUID
	OccurredAt    time.Time
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
}

// Signed returns the amount with the sign of its direction
func (m *CashMovement) Signed() float64 {
	if m.Type == MovementOut {
		return -m.Amount
	}
	return m.Amount
}
