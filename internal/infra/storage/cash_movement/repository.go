package cash_movement

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"movement_type",
	"category",
	"description",
	"amount",
	"payment_method",
	"sale_id",
	"occurred_at",
	"created_by",
	"created_at",
}

// Repository stores the cash register ledger. Rows are append-only.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, m *domain.CashMovement) (*domain.CashMovement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cash_movements").
		Columns("movement_type", "category", "description", "amount", "payment_method", "sale_id", "occurred_at", "created_by").
		Values(m.Type, m.Category, m.Description, m.Amount, m.PaymentMethod, m.SaleID, m.OccurredAt, m.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return m, nil
}

// List returns movements with from <= occurred_at < to, oldest first
func (r *Repository) List(ctx context.Context, from, to time.Time) ([]*domain.CashMovement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("cash_movements").
		Where(squirrel.GtOrEq{"occurred_at": from}).
		Where(squirrel.Lt{"occurred_at": to}).
		OrderBy("occurred_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	movements := make([]*domain.CashMovement, 0)
	for rows.Next() {
		var m domain.CashMovement
		if err := rows.Scan(
			&m.ID,
			&m.Type,
			&m.Category,
			&m.Description,
			&m.Amount,
			&m.PaymentMethod,
			&m.SaleID,
			&m.OccurredAt,
			&m.CreatedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan movement: %w", ErrScanRow, err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}
	return movements, nil
}
