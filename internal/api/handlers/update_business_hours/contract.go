package update_business_hours

import (
	"context"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateBusinessHours(ctx context.Context, dayOfWeek int, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
