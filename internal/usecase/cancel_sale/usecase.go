package cancel_sale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	customerRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/customer"
	saleRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/sale"
)

const outcomeCancelled = "cancelled"

// UseCase cancels a completed sale and undoes its side effects
type UseCase struct {
	saleRepo     SaleRepository
	productRepo  ProductRepository
	customerRepo CustomerRepository
	cashRepo     CashMovementRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

func NewUseCase(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	cashRepo CashMovementRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		cashRepo:     cashRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute restores product stock, marks the sale cancelled, books a refund
// and rolls back the customer's aggregates, all in one transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelSale: sale=%s", req.SaleID)

	// 1. Validate input
	if req.SaleID == uuid.Nil {
		return nil, fmt.Errorf("%w: saleId is required", ErrInvalidInput)
	}
	if req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if utf8.RuneCountInString(trimmed) > domain.MaxReasonLength {
			return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
		}
		if trimmed == "" {
			req.Reason = nil
		} else {
			req.Reason = &trimmed
		}
	}

	now := uc.timeProvider.Now()
	resp := &Response{SaleID: req.SaleID, CancelledAt: now}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Lock and check the sale
		sale, err := uc.saleRepo.GetByID(txCtx, req.SaleID)
		if err != nil {
			if errors.Is(err, saleRepo.ErrSaleNotFound) {
				uc.logger.Warn("CancelSale: sale id=%s not found", req.SaleID)
				return ErrSaleNotFound
			}
			uc.logger.Error("CancelSale: failed to get sale id=%s: %v", req.SaleID, err)
			return fmt.Errorf("%w: failed to get sale: %w", ErrInternal, err)
		}
		if sale.Status != domain.SaleCompleted {
			uc.logger.Warn("CancelSale: sale id=%s has status %s", sale.ID, sale.Status)
			return ErrSaleAlreadyCancelled
		}

		// 3. Flip the status
		if err := uc.saleRepo.MarkCancelled(txCtx, sale.ID, req.Reason, now); err != nil {
			if errors.Is(err, saleRepo.ErrSaleAlreadyCancelled) {
				return ErrSaleAlreadyCancelled
			}
			uc.logger.Error("CancelSale: failed to mark sale id=%s cancelled: %v", sale.ID, err)
			return fmt.Errorf("%w: failed to mark sale cancelled: %w", ErrInternal, err)
		}

		// 4. Put products back on the shelf
		for _, item := range sale.Items {
			if item.ItemType != domain.ItemProduct {
				continue
			}
			if err := uc.productRepo.IncrementStock(txCtx, item.ItemID, item.Quantity); err != nil {
				uc.logger.Error("CancelSale: failed to restock product id=%s: %v", item.ItemID, err)
				return fmt.Errorf("%w: failed to restock product: %w", ErrInternal, err)
			}
			resp.RestockedQty += item.Quantity
		}

		// 5. Customer aggregates; a deleted customer has nothing to revert
		if sale.CustomerID != nil {
			err := uc.customerRepo.RevertSale(txCtx, *sale.CustomerID, sale.TotalAmount)
			if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Error("CancelSale: failed to revert customer id=%s: %v", *sale.CustomerID, err)
				return fmt.Errorf("%w: failed to revert customer: %w", ErrInternal, err)
			}
		}

		// 6. Refund entry
		if sale.TotalAmount > 0 {
			movement := &domain.CashMovement{
				Type:          domain.MovementOut,
				Category:      domain.CategoryRefund,
				Description:   fmt.Sprintf("Cancelled sale %s", sale.ID),
				Amount:        sale.TotalAmount,
				PaymentMethod: &sale.PaymentMethod,
				SaleID:        &sale.ID,
				OccurredAt:    now,
				CreatedBy:     req.CancelledBy,
			}
			if _, err := uc.cashRepo.Create(txCtx, movement); err != nil {
				uc.logger.Error("CancelSale: failed to record refund: %v", err)
				return fmt.Errorf("%w: failed to record refund: %w", ErrInternal, err)
			}
		}

		resp.RefundedTotal = sale.TotalAmount
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncSale(outcomeCancelled)
	uc.logger.Info("CancelSale: sale id=%s cancelled, refunded %.2f", req.SaleID, resp.RefundedTotal)

	return resp, nil
}
