package get_available_dates

import (
	"time"

	"github.com/google/uuid"
)

// Request asks for the bookable dates of a professional. Days == 0 means
// the configured default window.
type Request struct {
	ProfessionalID uuid.UUID
	Days           int
}

type Response struct {
	ProfessionalID uuid.UUID
	From           time.Time
	To             time.Time
	Dates          []time.Time
}
