package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

var (
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")
)

// ListAppointmentsRequest filters the appointment list
type ListAppointmentsRequest struct {
	ProfessionalID  *uuid.UUID
	CustomerID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter validates the request and converts it to a repository filter
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		ProfessionalID:  r.ProfessionalID,
		CustomerID:      r.CustomerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidDateRange
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customerId"`
	CustomerName     string    `json:"customerName"`
	CustomerPhone    string    `json:"customerPhone"`
	ProfessionalID   uuid.UUID `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	ServiceID        uuid.UUID `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	ServicePrice     float64   `json:"servicePrice"`
	Date             string    `json:"date"` // "2026-10-19"
	Time             string    `json:"time"` // "10:00"
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:               a.ID,
		CustomerID:       a.CustomerID,
		CustomerName:     a.CustomerName,
		CustomerPhone:    a.CustomerPhone,
		ProfessionalID:   a.ProfessionalID,
		ProfessionalName: a.ProfessionalName,
		ServiceID:        a.ServiceID,
		ServiceName:      a.ServiceName,
		ServicePrice:     a.ServicePrice,
		Date:             a.Date.Format(domain.DateFormat),
		Time:             a.Time.String(),
		DurationMinutes:  a.DurationMinutes,
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	return resp
}
