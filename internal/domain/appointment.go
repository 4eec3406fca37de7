package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// appointmentTransitions lists the statuses reachable from each state:
// scheduled -> confirmed -> completed, and scheduled/confirmed -> cancelled.
// in_progress is accepted for stored rows but is never entered or left.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Appointment is a booked service for a customer with one professional
type Appointment struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Date           time.Time
	Time           types.TimeString
	// DurationMinutes is copied from the service at booking time so later edits
	// to the service do not move existing appointments. Zero for legacy rows.
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	// Read-only fields joined for listings
	CustomerName     string
	CustomerPhone    string
	ProfessionalName string
	ServiceName      string
	ServicePrice     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment takes up time on the calendar
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true for completed and cancelled appointments
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseAppointmentStatus validates a status string
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	switch status {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// AppointmentFilter narrows appointment listings. Zero values mean "any".
type AppointmentFilter struct {
	ProfessionalID  *uuid.UUID
	CustomerID      *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
