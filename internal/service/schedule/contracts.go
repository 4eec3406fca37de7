package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type BlockedPeriodRepository interface {
	Create(ctx context.Context, b *domain.BlockedPeriod) (*domain.BlockedPeriod, error)
	List(ctx context.Context, filter domain.BlockedPeriodFilter) ([]*domain.BlockedPeriod, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BusinessHoursRepository interface {
	Schedule(ctx context.Context) (domain.WeeklySchedule, error)
	Upsert(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error)
}

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
