package blocked_periods

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedPeriods(ctx context.Context, req *models.ListBlockedPeriodsRequest) (*models.BlockedPeriodListResponse, error)
	CreateBlockedPeriod(ctx context.Context, req *models.CreateBlockedPeriodRequest) (*models.BlockedPeriodResponse, error)
	DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
