package catalog

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error)
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	ToggleService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error)

	ListProfessionals(ctx context.Context, serviceID *uuid.UUID, includeInactive bool) (*models.ProfessionalListResponse, error)
	CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, id uuid.UUID, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error)

	ListProducts(ctx context.Context, search string, includeInactive bool) (*models.ProductListResponse, error)
	ListLowStock(ctx context.Context) (*models.ProductListResponse, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.ProductResponse, error)
	WriteImportTemplate(w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
