package create_booking

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

type CustomerRepository interface {
	GetOrCreateByPhone(ctx context.Context, phone, name string) (*domain.Customer, error)
}

// AppointmentRepository is used inside the booking transaction
type AppointmentRepository interface {
	LockProfessionalDay(ctx context.Context, professionalID uuid.UUID, date time.Time) error
	ListForDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

type BlockedPeriodRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedPeriod, error)
}

type BusinessHoursRepository interface {
	Schedule(ctx context.Context) (domain.WeeklySchedule, error)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type TimeProvider interface {
	Now() time.Time
}

// Metrics counts booking outcomes
type Metrics interface {
	IncBooking(outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
