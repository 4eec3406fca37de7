package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, search string) (*models.CustomerListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CustomerResponse, error)
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
