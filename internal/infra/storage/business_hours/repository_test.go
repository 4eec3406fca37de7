package business_hours

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT day_of_week, open_time, close_time, active, updated_at FROM business_hours ORDER BY day_of_week ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week", "open_time", "close_time", "active", "updated_at"}).
			AddRow(0, nil, nil, false, now).
			AddRow(1, "09:00:00", "18:00:00", true, now))

	hours, err := NewRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 2)

	assert.Equal(t, time.Sunday, hours[0].DayOfWeek)
	assert.False(t, hours[0].IsOpen())
	assert.Equal(t, types.TimeString("09:00"), hours[1].OpenTime)
	assert.Equal(t, types.TimeString("18:00"), hours[1].CloseTime)
	assert.True(t, hours[1].IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDay_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE day_of_week = $1")).
		WithArgs(3).
		WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByDay(context.Background(), time.Wednesday)
	assert.ErrorIs(t, err, ErrBusinessHoursNotFound)
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (day_of_week) DO UPDATE")).
		WithArgs(6, "10:00", "14:00", true).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	h, err := NewRepository(db).Upsert(context.Background(), &domain.BusinessHours{
		DayOfWeek: time.Saturday,
		OpenTime:  "10:00",
		CloseTime: "14:00",
		Active:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, now, h.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Schedule_DefaultsWhenEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM business_hours")).
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week", "open_time", "close_time", "active", "updated_at"}))

	schedule, err := NewRepository(db).Schedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeeklySchedule(), schedule)
}
