package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/psqlbuilder"
)

const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

var listColumns = []string{
	"a.id",
	"a.customer_id",
	"a.professional_id",
	"a.service_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.duration_minutes",
	"a.status",
	"a.notes",
	"a.created_at",
	"a.updated_at",
	"c.name",
	"c.phone",
	"p.name",
	"s.name",
	"s.price",
}

// Repository stores appointments
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the appointment. The table's exclusion constraint rejects an
// overlapping active appointment of the same professional; that surfaces as
// ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"professional_id",
			"service_id",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			a.CustomerID,
			a.ProfessionalID,
			a.ServiceID,
			a.Date,
			a.Time,
			a.DurationMinutes,
			a.Status,
			a.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pgExclusionViolation:
				return nil, ErrSlotNotAvailable
			case pgForeignKeyViolation:
				return nil, fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID returns the appointment with customer, professional and service names.
// Inside a transaction the appointment row is locked so status changes serialize.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectJoined().
		Where(squirrel.Eq{"a.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	a, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}
	return a, nil
}

// List returns appointments matching the filter ordered by date and time.
// Cancelled appointments are excluded unless a status or IncludeInactive is given.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectJoined()

	if filter.ProfessionalID != nil {
		builder = builder.Where(squirrel.Eq{"a.professional_id": *filter.ProfessionalID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"a.customer_id": *filter.CustomerID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"a.appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"a.appointment_date": *filter.EndDate})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"a.status": *filter.Status})
	} else if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"a.status": inactiveStatuses()})
	}

	query, args, err := builder.
		OrderBy("a.appointment_date ASC", "a.appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}
	return appointments, nil
}

// ListForDay returns the active appointments of a professional on date.
// Inside a transaction the rows are locked with FOR UPDATE.
func (r *Repository) ListForDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"customer_id",
		"professional_id",
		"service_id",
		"appointment_date",
		"appointment_time",
		"duration_minutes",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.CustomerID,
			&a.ProfessionalID,
			&a.ServiceID,
			&a.Date,
			&a.Time,
			&a.DurationMinutes,
			&a.Status,
			&a.Notes,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListForDay - scan appointment: %w", ErrScanRow, err)
		}
		appointments = append(appointments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDay - rows error: %w", ErrScanRow, err)
	}
	return appointments, nil
}

// LockProfessionalDay takes a transaction-scoped advisory lock on
// (professional, date). FOR UPDATE cannot lock rows that do not exist yet,
// so two bookings into an empty day would otherwise both pass the check.
// Must be called inside a transaction.
func (r *Repository) LockProfessionalDay(ctx context.Context, professionalID uuid.UUID, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := professionalID.String() + "/" + date.Format(domain.DateFormat)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockProfessionalDay - execute: %w", ErrExecQuery, err)
	}
	return nil
}

// UpdateStatus moves the appointment from status `from` to `to`. It returns
// ErrStatusChanged when the stored status is no longer `from`.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return ErrAppointmentNotFound
	}
	return nil
}

func selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(listColumns...).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id").
		Join("professionals p ON p.id = a.professional_id").
		Join("services s ON s.id = a.service_id")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJoined(row scanner) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.ProfessionalID,
		&a.ServiceID,
		&a.Date,
		&a.Time,
		&a.DurationMinutes,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CustomerName,
		&a.CustomerPhone,
		&a.ProfessionalName,
		&a.ServiceName,
		&a.ServicePrice,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func inactiveStatuses() []string {
	out := make([]string, len(domain.InactiveAppointmentStatuses))
	for i, s := range domain.InactiveAppointmentStatuses {
		out[i] = string(s)
	}
	return out
}
