package get_available_dates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

type BlockedPeriodRepository interface {
	List(ctx context.Context, filter domain.BlockedPeriodFilter) ([]*domain.BlockedPeriod, error)
}

type BusinessHoursRepository interface {
	Schedule(ctx context.Context) (domain.WeeklySchedule, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
