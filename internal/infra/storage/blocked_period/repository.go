package blocked_period

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"blocked_date",
	"reason",
	"all_day",
	"start_time",
	"end_time",
	"professional_id",
	"created_at",
}

// Repository stores blackout periods
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, b *domain.BlockedPeriod) (*domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_periods").
		Columns("blocked_date", "reason", "all_day", "start_time", "end_time", "professional_id").
		Values(b.Date, b.Reason, b.AllDay, b.StartTime, b.EndTime, b.ProfessionalID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return b, nil
}

// List returns blocked periods matching the filter ordered by date
func (r *Repository) List(ctx context.Context, filter domain.BlockedPeriodFilter) ([]*domain.BlockedPeriod, error) {
	builder := psqlbuilder.Select(columns...).From("blocked_periods")

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"blocked_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"blocked_date": *filter.EndDate})
	}
	if filter.ProfessionalID != nil {
		// Global blocks apply to the professional too
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"professional_id": nil},
			squirrel.Eq{"professional_id": *filter.ProfessionalID},
		})
	}
	if filter.AllDayOnly {
		builder = builder.Where(squirrel.Eq{"all_day": true})
	}

	return r.query(ctx, "List", builder.OrderBy("blocked_date ASC", "start_time ASC"))
}

// ListByDate returns every block on date, global and per-professional
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedPeriod, error) {
	builder := psqlbuilder.Select(columns...).
		From("blocked_periods").
		Where(squirrel.Eq{"blocked_date": date})

	return r.query(ctx, "ListByDate", builder)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_periods").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockedPeriodNotFound
	}
	return nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedPeriod, 0)
	for rows.Next() {
		var b domain.BlockedPeriod
		if err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.Reason,
			&b.AllDay,
			&b.StartTime,
			&b.EndTime,
			&b.ProfessionalID,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return blocks, nil
}
