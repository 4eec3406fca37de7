package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var testDate = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	id := uuid.New()
	now := time.Now()
	a := &domain.Appointment{
		CustomerID:      uuid.New(),
		ProfessionalID:  uuid.New(),
		ServiceID:       uuid.New(),
		Date:            testDate,
		Time:            "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(a.CustomerID, a.ProfessionalID, a.ServiceID, a.Date, "10:00", 60, "scheduled", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	created, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23P01"})

	_, err := repo.Create(context.Background(), &domain.Appointment{Time: "10:00", Status: domain.StatusScheduled})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "appointments_service_id_fkey"})

	_, err := repo.Create(context.Background(), &domain.Appointment{Time: "10:00", Status: domain.StatusScheduled})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments a JOIN customers c")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_List_ExcludesCancelledByDefault(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	professionalID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "professional_id", "service_id", "appointment_date", "appointment_time",
		"duration_minutes", "status", "notes", "created_at", "updated_at",
		"customer_name", "customer_phone", "professional_name", "service_name", "service_price",
	}).AddRow(
		uuid.NewString(), uuid.NewString(), professionalID.String(), uuid.NewString(), testDate, "10:00:00",
		45, "confirmed", nil, now, now,
		"Ana", "11999990000", "Bia", "Gel nails", "120.00",
	)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.professional_id = $1 AND a.status NOT IN ($2) ORDER BY a.appointment_date ASC, a.appointment_time ASC")).
		WithArgs(professionalID, "cancelled").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), domain.AppointmentFilter{ProfessionalID: &professionalID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, types.TimeString("10:00"), got.Time)
	assert.Equal(t, 45, got.DurationMinutes)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, 120.0, got.ServicePrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListForDay_LocksInsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	professionalID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(professionalID, testDate, "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "professional_id", "service_id", "appointment_date", "appointment_time",
			"duration_minutes", "status", "notes", "created_at", "updated_at",
		}))
	mock.ExpectRollback()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.ListForDay(ctx, professionalID, testDate)
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListForDay_NoLockOutsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`ORDER BY appointment_time ASC$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ListForDay(context.Background(), uuid.New(), testDate)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockProfessionalDay(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	professionalID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs(professionalID.String() + "/2026-10-19").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.LockProfessionalDay(context.Background(), professionalID, testDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3")).
		WithArgs("confirmed", id, "scheduled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.StatusScheduled, domain.StatusConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_StatusChangedMeanwhile(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	id := uuid.New()

	// Another request already cancelled it; the guarded update matches nothing
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $2 AND status = $3")).
		WithArgs("confirmed", id, "scheduled").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusScheduled, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.id = $1 FOR UPDATE OF a")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrAppointmentNotFound)
}
