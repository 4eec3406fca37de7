package create_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	createBooking "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/create_booking"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName   string    `json:"customerName"`
	CustomerPhone  string    `json:"customerPhone"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	ServiceID      uuid.UUID `json:"serviceId"`
	Date           string    `json:"date"` // "2026-10-19"
	Time           string    `json:"time"` // "10:00"
	Notes          *string   `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customerId"`
	CustomerName     string    `json:"customerName"`
	CustomerPhone    string    `json:"customerPhone"`
	ProfessionalID   uuid.UUID `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	ServiceID        uuid.UUID `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	ServicePrice     float64   `json:"servicePrice"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        string    `json:"createdAt"`
}

func (r *CreateBookingRequest) ToUseCaseRequest(source createBooking.Source) (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
		Time:           startTime,
		Notes:          r.Notes,
		Source:         source,
	}, nil
}

func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		CustomerID:       resp.CustomerID,
		CustomerName:     resp.CustomerName,
		CustomerPhone:    resp.CustomerPhone,
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		ServiceID:        resp.ServiceID,
		ServiceName:      resp.ServiceName,
		ServicePrice:     resp.ServicePrice,
		Date:             resp.Date.Format(domain.DateFormat),
		Time:             resp.Time.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
