package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Durations(ctx context.Context) (map[uuid.UUID]int, error)
}

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

type AppointmentRepository interface {
	ListForDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

type BlockedPeriodRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedPeriod, error)
}

type BusinessHoursRepository interface {
	Schedule(ctx context.Context) (domain.WeeklySchedule, error)
}

// TimeProvider returns the current time in the salon's time zone
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
