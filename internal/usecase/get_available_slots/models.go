package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

type Request struct {
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Date           time.Time
}

type Response struct {
	Date            time.Time
	ProfessionalID  uuid.UUID
	ServiceID       uuid.UUID
	DurationMinutes int
	Slots           []types.TimeString
}
