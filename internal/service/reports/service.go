package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports/models"
)

const topItemsLimit = 5

// Service builds management reports. Rows are read inside one read-only
// transaction and aggregated in memory.
type Service struct {
	saleRepo         SaleRepository
	appointmentRepo  AppointmentRepository
	productRepo      ProductRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

func NewService(
	saleRepo SaleRepository,
	appointmentRepo AppointmentRepository,
	productRepo ProductRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		saleRepo:         saleRepo,
		appointmentRepo:  appointmentRepo,
		productRepo:      productRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

func (s *Service) SalesReport(ctx context.Context, req *models.PeriodRequest) (*models.SalesReportResponse, error) {
	period, err := req.Resolve(s.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &models.SalesReportResponse{
		Period:          models.FromPeriod(period),
		ByPaymentMethod: make(map[string]float64),
	}

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		sales, items, err := s.loadSales(ctx, domain.SaleFilter{From: &period.From, To: &period.To})
		if err != nil {
			return err
		}

		for _, sale := range sales {
			if sale.Status != domain.SaleCompleted {
				resp.CancelledSales++
				continue
			}
			resp.SalesCount++
			resp.Revenue += sale.TotalAmount
			resp.Discounts += sale.Discount
			resp.ByPaymentMethod[string(sale.PaymentMethod)] += sale.TotalAmount
		}

		services := make(map[uuid.UUID]*models.RankedItem)
		products := make(map[uuid.UUID]*models.RankedItem)
		for _, item := range items {
			switch item.ItemType {
			case domain.ItemService:
				accumulate(services, item)
			case domain.ItemProduct:
				accumulate(products, item)
			}
		}
		resp.TopServices = rank(services, topItemsLimit)
		resp.TopProducts = rank(products, topItemsLimit)

		appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{
			StartDate:       &period.Start,
			EndDate:         &period.End,
			IncludeInactive: true,
		})
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		resp.CompletedAppointments, resp.CancelledAppointments = countAppointments(appointments)
		return nil
	})
	if err != nil {
		s.logger.Error("SalesReport: failed to build report: %v", err)
		return nil, fmt.Errorf("%w: SalesReport - %v", ErrInternal, err)
	}

	resp.Revenue = domain.RoundMoney(resp.Revenue)
	resp.Discounts = domain.RoundMoney(resp.Discounts)
	if resp.SalesCount > 0 {
		resp.AverageTicket = domain.RoundMoney(resp.Revenue / float64(resp.SalesCount))
	}
	for method, total := range resp.ByPaymentMethod {
		resp.ByPaymentMethod[method] = domain.RoundMoney(total)
	}

	s.logger.Info("SalesReport: %s..%s, sales=%d, revenue=%.2f",
		resp.Period.StartDate, resp.Period.EndDate, resp.SalesCount, resp.Revenue)
	return resp, nil
}

// ProfessionalReport credits a professional with the service lines attributed
// to them in completed sales and counts their appointments.
func (s *Service) ProfessionalReport(ctx context.Context, professionalID uuid.UUID, req *models.PeriodRequest) (*models.ProfessionalReportResponse, error) {
	period, err := req.Resolve(s.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("ProfessionalReport: failed to get professional: %v", err)
		return nil, fmt.Errorf("%w: ProfessionalReport - failed to get professional: %v", ErrInternal, err)
	}

	resp := &models.ProfessionalReportResponse{
		Period:           models.FromPeriod(period),
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
	}

	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		completed := domain.SaleCompleted
		_, items, err := s.loadSales(ctx, domain.SaleFilter{From: &period.From, To: &period.To, Status: &completed})
		if err != nil {
			return err
		}

		services := make(map[uuid.UUID]*models.RankedItem)
		for _, item := range items {
			if item.ItemType != domain.ItemService || item.ProfessionalID == nil || *item.ProfessionalID != professionalID {
				continue
			}
			resp.ServicesProvided += item.Quantity
			resp.Revenue += item.TotalPrice
			accumulate(services, item)
		}
		resp.Services = rank(services, 0)

		appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{
			ProfessionalID:  &professionalID,
			StartDate:       &period.Start,
			EndDate:         &period.End,
			IncludeInactive: true,
		})
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		resp.CompletedAppointments, resp.CancelledAppointments = countAppointments(appointments)
		return nil
	})
	if err != nil {
		s.logger.Error("ProfessionalReport: failed to build report: %v", err)
		return nil, fmt.Errorf("%w: ProfessionalReport - %v", ErrInternal, err)
	}

	resp.Revenue = domain.RoundMoney(resp.Revenue)
	return resp, nil
}

func (s *Service) StockReport(ctx context.Context) (*models.StockReportResponse, error) {
	products, err := s.productRepo.List(ctx, "", false)
	if err != nil {
		s.logger.Error("StockReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: StockReport - repository error: %v", ErrInternal, err)
	}

	resp := &models.StockReportResponse{
		TotalProducts: len(products),
		LowStock:      make([]models.StockItem, 0),
	}
	for _, p := range products {
		resp.TotalUnits += p.Stock
		resp.CostValue += p.Cost * float64(p.Stock)
		resp.RetailValue += p.Price * float64(p.Stock)
		if p.Stock == 0 {
			resp.OutOfStock++
		}
		if p.IsLowStock() {
			resp.LowStock = append(resp.LowStock, models.StockItem{
				ID:       p.ID,
				Name:     p.Name,
				Category: p.Category,
				Stock:    p.Stock,
				MinStock: p.MinStock,
			})
		}
	}
	resp.CostValue = domain.RoundMoney(resp.CostValue)
	resp.RetailValue = domain.RoundMoney(resp.RetailValue)

	sort.SliceStable(resp.LowStock, func(i, j int) bool {
		return resp.LowStock[i].Stock < resp.LowStock[j].Stock
	})
	return resp, nil
}

// loadSales returns the matching sales and the items of the completed ones
func (s *Service) loadSales(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, []*domain.SaleItem, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("list sales: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(sales))
	for _, sale := range sales {
		if sale.Status == domain.SaleCompleted {
			ids = append(ids, sale.ID)
		}
	}
	if len(ids) == 0 {
		return sales, nil, nil
	}

	grouped, err := s.saleRepo.ListItems(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list sale items: %w", err)
	}

	items := make([]*domain.SaleItem, 0)
	for _, id := range ids {
		items = append(items, grouped[id]...)
	}
	return sales, items, nil
}

func accumulate(acc map[uuid.UUID]*models.RankedItem, item *domain.SaleItem) {
	ranked, ok := acc[item.ItemID]
	if !ok {
		ranked = &models.RankedItem{ID: item.ItemID, Name: item.Description}
		acc[item.ItemID] = ranked
	}
	ranked.Quantity += item.Quantity
	ranked.Revenue = domain.RoundMoney(ranked.Revenue + item.TotalPrice)
}

// rank orders by quantity, then revenue, then name. limit 0 keeps everything.
func rank(acc map[uuid.UUID]*models.RankedItem, limit int) []models.RankedItem {
	out := make([]models.RankedItem, 0, len(acc))
	for _, r := range acc {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func countAppointments(appointments []*domain.Appointment) (completed, cancelled int) {
	for _, a := range appointments {
		switch a.Status {
		case domain.StatusCompleted:
			completed++
		case domain.StatusCancelled:
			cancelled++
		}
	}
	return completed, cancelled
}
