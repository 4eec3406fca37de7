package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List_ActiveOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE active = $1 ORDER BY name ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "Manicure", nil, 45, "35.00", "manicure", true, now, now))

	list, err := NewRepository(db).List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, 45, list[0].DurationMinutes)
	assert.Equal(t, 35.0, list[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_Durations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a, b := uuid.New(), uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, duration_minutes FROM services")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "duration_minutes"}).
			AddRow(a.String(), 30).
			AddRow(b.String(), 90))

	durations, err := NewRepository(db).Durations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{a: 30, b: 90}, durations)
}

func TestRepository_Delete_InUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WillReturnError(&pq.Error{Code: "23503"})

	assert.ErrorIs(t, NewRepository(db).Delete(context.Background(), uuid.New()), ErrServiceInUse)
}
