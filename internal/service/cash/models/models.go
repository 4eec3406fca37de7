package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

var (
	ErrInvalidCategory      = errors.New("category does not match movement type")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

type CreateMovementRequest struct {
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// ToDomain validates a manual register entry. Sale and refund entries are
// written by checkout and cancellation, not through this request.
func (r *CreateMovementRequest) ToDomain(createdBy *uuid.UUID, at time.Time) (*domain.CashMovement, error) {
	m := &domain.CashMovement{
		Type:        domain.MovementType(r.Type),
		Category:    domain.MovementCategory(r.Category),
		Description: strings.TrimSpace(r.Description),
		Amount:      domain.RoundMoney(r.Amount),
		OccurredAt:  at,
		CreatedBy:   createdBy,
	}

	if !domain.IsValidMovement(m.Type, m.Category) {
		return nil, ErrInvalidCategory
	}
	if m.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if m.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if r.PaymentMethod != nil && *r.PaymentMethod != "" {
		method := domain.PaymentMethod(*r.PaymentMethod)
		if !method.IsValid() {
			return nil, ErrInvalidPaymentMethod
		}
		m.PaymentMethod = &method
	}
	return m, nil
}

type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	SaleID        *uuid.UUID `json:"saleId,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
	CreatedBy     *uuid.UUID `json:"createdBy,omitempty"`
}

type MovementListResponse struct {
	Date      string             `json:"date"`
	Movements []MovementResponse `json:"movements"`
}

// DailySummaryResponse totals a register day. ByPaymentMethod only counts
// sale entries.
type DailySummaryResponse struct {
	Date            string             `json:"date"`
	TotalIn         float64            `json:"totalIn"`
	TotalOut        float64            `json:"totalOut"`
	Balance         float64            `json:"balance"`
	SalesCount      int                `json:"salesCount"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
}

func FromDomainMovement(m *domain.CashMovement) MovementResponse {
	resp := MovementResponse{
		ID:          m.ID,
		Type:        string(m.Type),
		Category:    string(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		SaleID:      m.SaleID,
		OccurredAt:  m.OccurredAt,
		CreatedBy:   m.CreatedBy,
	}
	if m.PaymentMethod != nil {
		method := string(*m.PaymentMethod)
		resp.PaymentMethod = &method
	}
	return resp
}

func FromDomainMovementList(date time.Time, movements []*domain.CashMovement) *MovementListResponse {
	resp := &MovementListResponse{
		Date:      date.Format(domain.DateFormat),
		Movements: make([]MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, FromDomainMovement(m))
	}
	return resp
}
