package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	productRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/product"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog/models"
)

// ImportTemplateHeader is the column layout of the product import sheet
var ImportTemplateHeader = []string{"name", "barcode", "category", "unit", "price", "cost", "stock", "min_stock", "description"}

var importTemplateExample = []string{"Esmalte vermelho", "7891234567890", "esmaltes", "un", "12.90", "6.50", "20", "5", "Esmalte cremoso 9ml"}

func (s *Service) ListProducts(ctx context.Context, search string, includeInactive bool) (*models.ProductListResponse, error) {
	products, err := s.productRepo.List(ctx, strings.TrimSpace(search), includeInactive)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProductList(products), nil
}

func (s *Service) ListLowStock(ctx context.Context) (*models.ProductListResponse, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		s.logger.Error("ListLowStock: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLowStock - repository error: %v", ErrInternal, err)
	}
	if len(products) > 0 {
		s.logger.Warn("ListLowStock: %d products at or below minimum stock", len(products))
	}
	return models.FromDomainProductList(products), nil
}

func (s *Service) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("CreateProduct: name=%s, category=%s", req.Name, req.Category)

	p, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateProduct: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.productRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, productRepo.ErrBarcodeTaken) {
			return nil, ErrBarcodeTaken
		}
		s.logger.Error("CreateProduct: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProduct - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProduct(created), nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("UpdateProduct: id=%s", id)

	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("UpdateProduct: failed to get product: %v", err)
		return nil, fmt.Errorf("%w: UpdateProduct - failed to get product: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(p); err != nil {
		s.logger.Warn("UpdateProduct: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, productRepo.ErrProductNotFound):
			return nil, ErrProductNotFound
		case errors.Is(err, productRepo.ErrBarcodeTaken):
			return nil, ErrBarcodeTaken
		}
		s.logger.Error("UpdateProduct: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateProduct - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProduct(p), nil
}

// WriteImportTemplate writes the CSV sheet used to bulk-load products: a
// header row followed by one example row.
func (s *Service) WriteImportTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ImportTemplateHeader); err != nil {
		return fmt.Errorf("%w: WriteImportTemplate - write header: %v", ErrInternal, err)
	}
	if err := cw.Write(importTemplateExample); err != nil {
		return fmt.Errorf("%w: WriteImportTemplate - write example: %v", ErrInternal, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: WriteImportTemplate - flush: %v", ErrInternal, err)
	}
	return nil
}
