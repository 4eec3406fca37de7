package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
	cancelSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/cancel_sale"
	checkoutSale "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/checkout_sale"
)

type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutSale.Request) (*checkoutSale.Response, error)
}

type CancelUseCase interface {
	Execute(ctx context.Context, req *cancelSale.Request) (*cancelSale.Response, error)
}

type SaleService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.SaleResponse, error)
	List(ctx context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
