package reports

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports/models"
)

type ReportService interface {
	SalesReport(ctx context.Context, req *models.PeriodRequest) (*models.SalesReportResponse, error)
	ProfessionalReport(ctx context.Context, professionalID uuid.UUID, req *models.PeriodRequest) (*models.ProfessionalReportResponse, error)
	StockReport(ctx context.Context) (*models.StockReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
