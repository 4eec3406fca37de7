package checkout_sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	customerRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/customer"
	productRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/product"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
)

const (
	outcomeCompleted = "completed"
	outcomeRejected  = "rejected"
	outcomeError     = "error"
)

// UseCase records a point-of-sale checkout
type UseCase struct {
	productRepo  ProductRepository
	serviceRepo  ServiceRepository
	customerRepo CustomerRepository
	saleRepo     SaleRepository
	cashRepo     CashMovementRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

func NewUseCase(
	productRepo ProductRepository,
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	saleRepo SaleRepository,
	cashRepo CashMovementRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		cashRepo:     cashRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute prices the cart and writes the sale, its items, the stock
// decrements, the customer aggregates and the cash entry in one transaction.
// Any failure leaves nothing behind.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	switch {
	case err == nil:
		uc.metrics.IncSale(outcomeCompleted)
	case errors.Is(err, ErrInternal):
		uc.metrics.IncSale(outcomeError)
	default:
		uc.metrics.IncSale(outcomeRejected)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckoutSale: %d items, payment=%s", len(req.Items), req.PaymentMethod)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckoutSale: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve cart lines against the catalog
	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		line, err := uc.resolveLine(ctx, item, req.ProfessionalID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	// 3. Price the cart
	totals, err := domain.PriceCart(lines, domain.Payment{
		Method:        req.PaymentMethod,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		AmountPaid:    req.AmountPaid,
	})
	if err != nil {
		uc.logger.Warn("CheckoutSale: pricing failed: %v", err)
		return nil, mapPricingError(err)
	}

	now := uc.timeProvider.Now()

	sale := &domain.Sale{
		CustomerID:     req.CustomerID,
		ProfessionalID: req.ProfessionalID,
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		TotalAmount:    totals.Total,
		PaymentMethod:  req.PaymentMethod,
		AmountPaid:     totals.AmountPaid,
		Change:         totals.Change,
		Status:         domain.SaleCompleted,
		SaleDate:       now,
		Notes:          req.Notes,
		CreatedBy:      req.CreatedBy,
	}
	if totals.Discount > 0 {
		sale.DiscountType = req.DiscountType
	}

	items := make([]*domain.SaleItem, len(lines))
	for i, line := range lines {
		items[i] = &domain.SaleItem{
			ItemType:       line.ItemType,
			ItemID:         line.ItemID,
			Description:    line.Description,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			TotalPrice:     domain.RoundMoney(float64(line.Quantity) * line.UnitPrice),
			ProfessionalID: line.ProfessionalID,
		}
	}

	// 4. Write everything in one transaction
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Sale header and items
		if _, err := uc.saleRepo.Create(txCtx, sale); err != nil {
			uc.logger.Error("CheckoutSale: failed to create sale: %v", err)
			return fmt.Errorf("%w: failed to create sale: %w", ErrInternal, err)
		}

		if err := uc.saleRepo.AddItems(txCtx, sale.ID, items); err != nil {
			uc.logger.Error("CheckoutSale: failed to add items to sale id=%s: %v", sale.ID, err)
			return fmt.Errorf("%w: failed to add sale items: %w", ErrInternal, err)
		}

		// 4.2. Stock, guarded against going negative
		for _, item := range items {
			if item.ItemType != domain.ItemProduct {
				continue
			}
			if err := uc.productRepo.DecrementStock(txCtx, item.ItemID, item.Quantity); err != nil {
				switch {
				case errors.Is(err, productRepo.ErrInsufficientStock):
					uc.logger.Warn("CheckoutSale: insufficient stock for product id=%s", item.ItemID)
					return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Description)
				case errors.Is(err, productRepo.ErrProductNotFound):
					return fmt.Errorf("%w: product %s", ErrItemNotFound, item.ItemID)
				}
				uc.logger.Error("CheckoutSale: failed to decrement stock for product id=%s: %v", item.ItemID, err)
				return fmt.Errorf("%w: failed to decrement stock: %w", ErrInternal, err)
			}
		}

		// 4.3. Customer aggregates
		if req.CustomerID != nil {
			if err := uc.customerRepo.ApplySale(txCtx, *req.CustomerID, totals.Total, now); err != nil {
				if errors.Is(err, customerRepo.ErrCustomerNotFound) {
					uc.logger.Warn("CheckoutSale: customer id=%s not found", *req.CustomerID)
					return ErrCustomerNotFound
				}
				uc.logger.Error("CheckoutSale: failed to update customer id=%s: %v", *req.CustomerID, err)
				return fmt.Errorf("%w: failed to update customer: %w", ErrInternal, err)
			}
		}

		// 4.4. Cash entry; a fully discounted sale moves no money
		if totals.Total > 0 {
			movement := &domain.CashMovement{
				Type:          domain.MovementIn,
				Category:      domain.CategorySale,
				Description:   fmt.Sprintf("Sale %s", sale.ID),
				Amount:        totals.Total,
				PaymentMethod: &sale.PaymentMethod,
				SaleID:        &sale.ID,
				OccurredAt:    now,
				CreatedBy:     req.CreatedBy,
			}
			if _, err := uc.cashRepo.Create(txCtx, movement); err != nil {
				uc.logger.Error("CheckoutSale: failed to record cash movement: %v", err)
				return fmt.Errorf("%w: failed to record cash movement: %w", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckoutSale: sale id=%s total=%.2f", sale.ID, sale.TotalAmount)

	return &Response{
		SaleID:        sale.ID,
		SaleDate:      sale.SaleDate,
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Total:         sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		AmountPaid:    sale.AmountPaid,
		Change:        sale.Change,
		Items:         items,
	}, nil
}

// resolveLine loads the catalog entry behind a cart item. A service line
// falls back to the sale's professional.
func (uc *UseCase) resolveLine(ctx context.Context, item Item, saleProfessional *uuid.UUID) (domain.CartLine, error) {
	line := domain.CartLine{
		ItemType:       item.ItemType,
		ItemID:         item.ItemID,
		Quantity:       item.Quantity,
		ProfessionalID: item.ProfessionalID,
	}

	switch item.ItemType {
	case domain.ItemProduct:
		product, err := uc.productRepo.GetByID(ctx, item.ItemID)
		if err != nil {
			if errors.Is(err, productRepo.ErrProductNotFound) {
				return line, fmt.Errorf("%w: product %s", ErrItemNotFound, item.ItemID)
			}
			uc.logger.Error("CheckoutSale: failed to get product id=%s: %v", item.ItemID, err)
			return line, fmt.Errorf("%w: failed to get product: %w", ErrInternal, err)
		}
		if !product.Active {
			return line, fmt.Errorf("%w: product %s is inactive", ErrItemNotFound, item.ItemID)
		}
		if product.Stock < item.Quantity {
			return line, fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, product.Name, product.Stock)
		}
		line.Description = product.Name
		line.UnitPrice = product.Price

	case domain.ItemService:
		service, err := uc.serviceRepo.GetByID(ctx, item.ItemID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return line, fmt.Errorf("%w: service %s", ErrItemNotFound, item.ItemID)
			}
			uc.logger.Error("CheckoutSale: failed to get service id=%s: %v", item.ItemID, err)
			return line, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}
		if !service.Active {
			return line, fmt.Errorf("%w: service %s is inactive", ErrItemNotFound, item.ItemID)
		}
		line.Description = service.Name
		line.UnitPrice = service.Price
		if line.ProfessionalID == nil {
			line.ProfessionalID = saleProfessional
		}
	}

	return line, nil
}

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return ErrEmptyCart
	case errors.Is(err, domain.ErrInsufficientAmount):
		return fmt.Errorf("%w: %v", ErrInsufficientPayment, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
