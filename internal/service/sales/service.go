package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	saleRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/sale"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/sales/models"
)

// Service reads the sale history. Writes go through the checkout and
// cancellation use cases.
type Service struct {
	saleRepo     SaleRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(saleRepo SaleRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		saleRepo:     saleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SaleResponse, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			return nil, ErrSaleNotFound
		}
		s.logger.Error("GetByID: repository error: sale_id=%s, error=%v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSale(sale)
	return &resp, nil
}

// List returns the sales of the requested days with their items
func (s *Service) List(ctx context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error) {
	filter, err := req.ToDomainFilter(s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	ids := make([]uuid.UUID, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.ID)
	}
	items := map[uuid.UUID][]*domain.SaleItem{}
	if len(ids) > 0 {
		items, err = s.saleRepo.ListItems(ctx, ids)
		if err != nil {
			s.logger.Error("List: failed to load items: %v", err)
			return nil, fmt.Errorf("%w: List - load items: %v", ErrInternal, err)
		}
	}

	resp := &models.SaleListResponse{Sales: make([]models.SaleResponse, 0, len(sales))}
	for _, sale := range sales {
		sale.Items = items[sale.ID]
		resp.Sales = append(resp.Sales, models.FromDomainSale(sale))
		if sale.Status == domain.SaleCompleted {
			resp.Total += sale.TotalAmount
		}
	}
	resp.Total = domain.RoundMoney(resp.Total)
	return resp, nil
}
