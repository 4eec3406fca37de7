package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/psqlbuilder"
)

var saleColumns = []string{
	"id",
	"customer_id",
	"professional_id",
	"subtotal",
	"discount",
	"discount_type",
	"total_amount",
	"payment_method",
	"amount_paid",
	"change_amount",
	"status",
	"sale_date",
	"notes",
	"cancelled_at",
	"cancel_reason",
	"created_by",
	"created_at",
}

var itemColumns = []string{
	"id",
	"sale_id",
	"item_type",
	"item_id",
	"description",
	"quantity",
	"unit_price",
	"total_price",
	"professional_id",
}

// Repository stores sale headers and their items
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the sale header. Items are written separately with AddItems
// inside the same transaction.
func (r *Repository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sales").
		Columns(
			"customer_id",
			"professional_id",
			"subtotal",
			"discount",
			"discount_type",
			"total_amount",
			"payment_method",
			"amount_paid",
			"change_amount",
			"status",
			"sale_date",
			"notes",
			"created_by",
		).
		Values(
			s.CustomerID,
			s.ProfessionalID,
			s.Subtotal,
			s.Discount,
			s.DiscountType,
			s.TotalAmount,
			s.PaymentMethod,
			s.AmountPaid,
			s.Change,
			s.Status,
			s.SaleDate,
			s.Notes,
			s.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return s, nil
}

// AddItems inserts all items of a sale in one statement
func (r *Repository) AddItems(ctx context.Context, saleID uuid.UUID, items []*domain.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("sale_items").
		Columns("sale_id", "item_type", "item_id", "description", "quantity", "unit_price", "total_price", "professional_id")
	for _, item := range items {
		item.SaleID = saleID
		builder = builder.Values(
			saleID,
			item.ItemType,
			item.ItemID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.ProfessionalID,
		)
	}

	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddItems - build insert query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddItems - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(items) {
			break
		}
		if err := rows.Scan(&items[i].ID); err != nil {
			return fmt.Errorf("%w: AddItems - scan id: %w", ErrScanRow, err)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: AddItems - rows error: %w", ErrScanRow, err)
	}
	return nil
}

// GetByID returns the sale with its items. Inside a transaction the header
// row is locked so concurrent cancellations serialize.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(saleColumns...).
		From("sales").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	s, err := scanSale(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sale: %w", ErrScanRow, err)
	}

	items, err := r.ListItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	s.Items = items[id]
	if s.Items == nil {
		s.Items = []*domain.SaleItem{}
	}
	return s, nil
}

// List returns sale headers matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.SaleFilter) ([]*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(saleColumns...).From("sales")
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"sale_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"sale_date": *filter.To})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ProfessionalID != nil {
		builder = builder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}

	query, args, err := builder.OrderBy("sale_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan sale: %w", ErrScanRow, err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}
	return sales, nil
}

// ListItems returns the items of the given sales grouped by sale id
func (r *Repository) ListItems(ctx context.Context, saleIDs []uuid.UUID) (map[uuid.UUID][]*domain.SaleItem, error) {
	result := make(map[uuid.UUID][]*domain.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return result, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]string, len(saleIDs))
	for i, id := range saleIDs {
		ids[i] = id.String()
	}

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("sale_items").
		Where(squirrel.Eq{"sale_id": ids}).
		OrderBy("sale_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.SaleItem
		if err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ItemType,
			&item.ItemID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.ProfessionalID,
		); err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan item: %w", ErrScanRow, err)
		}
		result[item.SaleID] = append(result[item.SaleID], &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %w", ErrScanRow, err)
	}
	return result, nil
}

// MarkCancelled flips a completed sale to cancelled
func (r *Repository) MarkCancelled(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sales").
		Set("status", domain.SaleCancelled).
		Set("cancelled_at", at).
		Set("cancel_reason", reason).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.SaleCompleted}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSaleAlreadyCancelled
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSale(row scanner) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.ID,
		&s.CustomerID,
		&s.ProfessionalID,
		&s.Subtotal,
		&s.Discount,
		&s.DiscountType,
		&s.TotalAmount,
		&s.PaymentMethod,
		&s.AmountPaid,
		&s.Change,
		&s.Status,
		&s.SaleDate,
		&s.Notes,
		&s.CancelledAt,
		&s.CancelReason,
		&s.CreatedBy,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
