package cash

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash/models"
)

type CashService interface {
	CreateMovement(ctx context.Context, req *models.CreateMovementRequest, createdBy *uuid.UUID) (*models.MovementResponse, error)
	ListByDay(ctx context.Context, date string) (*models.MovementListResponse, error)
	DailySummary(ctx context.Context, date string) (*models.DailySummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
