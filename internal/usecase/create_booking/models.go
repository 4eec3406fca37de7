package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// Source tells where a booking request came from
type Source string

const (
	// SourcePublic is the customer-facing booking page
	SourcePublic Source = "public"
	// SourceStaff is an appointment entered from the admin panel
	SourceStaff Source = "staff"
)

type Request struct {
	CustomerName   string
	CustomerPhone  string
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Date           time.Time
	Time           types.TimeString
	Notes          *string
	Source         Source
}

type Response struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	CustomerName     string
	CustomerPhone    string
	ProfessionalID   uuid.UUID
	ProfessionalName string
	ServiceID        uuid.UUID
	ServiceName      string
	ServicePrice     float64
	Date             time.Time
	Time             types.TimeString
	DurationMinutes  int
	Status           string
	Notes            *string
	CreatedAt        time.Time
}

// Options are the booking rules taken from configuration
type Options struct {
	// MinNoticeMinutes is how far ahead of now a booking for today must start
	MinNoticeMinutes int
	// PublicBookingDays limits how far ahead the public flow may book; 0 disables the limit
	PublicBookingDays int
}
