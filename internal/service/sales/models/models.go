package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

// MaxRangeDays bounds a sale listing
const MaxRangeDays = 92

var (
	ErrInvalidDate   = errors.New("dates must be YYYY-MM-DD")
	ErrInvalidRange  = errors.New("startDate must not be after endDate")
	ErrRangeTooLarge = errors.New("sale listing range must be at most 92 days")
	ErrInvalidStatus = errors.New("status must be completed or cancelled")
)

// ListSalesRequest filters the sale history. Empty dates mean today.
type ListSalesRequest struct {
	StartDate      string
	EndDate        string
	Status         string
	CustomerID     *uuid.UUID
	ProfessionalID *uuid.UUID
}

// ToDomainFilter resolves the day range in the location of now
func (r *ListSalesRequest) ToDomainFilter(now time.Time) (domain.SaleFilter, error) {
	start := domain.DateOnly(now)
	end := start

	if s := strings.TrimSpace(r.StartDate); s != "" {
		parsed, err := domain.ParseDate(s)
		if err != nil {
			return domain.SaleFilter{}, ErrInvalidDate
		}
		start = parsed
		if strings.TrimSpace(r.EndDate) == "" {
			end = parsed
		}
	}
	if e := strings.TrimSpace(r.EndDate); e != "" {
		parsed, err := domain.ParseDate(e)
		if err != nil {
			return domain.SaleFilter{}, ErrInvalidDate
		}
		end = parsed
	}
	if start.After(end) {
		return domain.SaleFilter{}, ErrInvalidRange
	}
	if end.Sub(start) > MaxRangeDays*24*time.Hour {
		return domain.SaleFilter{}, ErrRangeTooLarge
	}

	loc := now.Location()
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	to := time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, loc)

	filter := domain.SaleFilter{
		From:           &from,
		To:             &to,
		CustomerID:     r.CustomerID,
		ProfessionalID: r.ProfessionalID,
	}

	if s := strings.TrimSpace(r.Status); s != "" {
		status := domain.SaleStatus(s)
		if status != domain.SaleCompleted && status != domain.SaleCancelled {
			return domain.SaleFilter{}, ErrInvalidStatus
		}
		filter.Status = &status
	}
	return filter, nil
}

type SaleItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	ItemType       string     `json:"itemType"`
	ItemID         uuid.UUID  `json:"itemId"`
	Description    string     `json:"description"`
	Quantity       int        `json:"quantity"`
	UnitPrice      float64    `json:"unitPrice"`
	TotalPrice     float64    `json:"totalPrice"`
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
}

type SaleResponse struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     *uuid.UUID         `json:"customerId,omitempty"`
	ProfessionalID *uuid.UUID         `json:"professionalId,omitempty"`
	Subtotal       float64            `json:"subtotal"`
	Discount       float64            `json:"discount"`
	DiscountType   *string            `json:"discountType,omitempty"`
	Total          float64            `json:"total"`
	PaymentMethod  string             `json:"paymentMethod"`
	AmountPaid     float64            `json:"amountPaid"`
	Change         float64            `json:"change"`
	Status         string             `json:"status"`
	SaleDate       time.Time          `json:"saleDate"`
	Notes          *string            `json:"notes,omitempty"`
	CancelledAt    *time.Time         `json:"cancelledAt,omitempty"`
	CancelReason   *string            `json:"cancelReason,omitempty"`
	Items          []SaleItemResponse `json:"items"`
}

type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	// Total sums completed sales only
	Total float64 `json:"total"`
}

func FromDomainItems(items []*domain.SaleItem) []SaleItemResponse {
	out := make([]SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SaleItemResponse{
			ID:             it.ID,
			ItemType:       string(it.ItemType),
			ItemID:         it.ItemID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			ProfessionalID: it.ProfessionalID,
		})
	}
	return out
}

func FromDomainSale(s *domain.Sale) SaleResponse {
	var discountType *string
	if s.DiscountType != nil {
		dt := string(*s.DiscountType)
		discountType = &dt
	}
	return SaleResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		ProfessionalID: s.ProfessionalID,
		Subtotal:       s.Subtotal,
		Discount:       s.Discount,
		DiscountType:   discountType,
		Total:          s.TotalAmount,
		PaymentMethod:  string(s.PaymentMethod),
		AmountPaid:     s.AmountPaid,
		Change:         s.Change,
		Status:         string(s.Status),
		SaleDate:       s.SaleDate,
		Notes:          s.Notes,
		CancelledAt:    s.CancelledAt,
		CancelReason:   s.CancelReason,
		Items:          FromDomainItems(s.Items),
	}
}
