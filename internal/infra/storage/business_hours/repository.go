package business_hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/psqlbuilder"
)

// Repository stores the weekly opening hours, one row per weekday
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns every configured weekday ordered Sunday first
func (r *Repository) List(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "open_time", "close_time", "active", "updated_at").
		From("business_hours").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.Active, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}
	return result, nil
}

func (r *Repository) GetByDay(ctx context.Context, day time.Weekday) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "open_time", "close_time", "active", "updated_at").
		From("business_hours").
		Where(squirrel.Eq{"day_of_week": int(day)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %w", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.Active, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %w", ErrScanRow, err)
	}
	return &h, nil
}

// Upsert writes the hours of one weekday
func (r *Repository) Upsert(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("day_of_week", "open_time", "close_time", "active").
		Values(int(h.DayOfWeek), h.OpenTime, h.CloseTime, h.Active).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET " +
			"open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, " +
			"active = EXCLUDED.active, updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}
	return h, nil
}

// Schedule returns the weekly policy. Until any weekday is configured the
// default schedule applies.
func (r *Repository) Schedule(ctx context.Context) (domain.WeeklySchedule, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return domain.DefaultWeeklySchedule(), nil
	}
	return domain.NewWeeklySchedule(rows), nil
}
