package blocked_period

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/ptr"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var (
	testDate = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	rowCols  = []string{"id", "blocked_date", "reason", "all_day", "start_time", "end_time", "professional_id", "created_at"}
)

func TestRepository_Create_PartialBlock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	professionalID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_periods")).
		WithArgs(testDate, "Lunch", false, "12:00", "13:00", professionalID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), time.Now()))

	b, err := NewRepository(db).Create(context.Background(), &domain.BlockedPeriod{
		Date:           testDate,
		Reason:         ptr.Ptr("Lunch"),
		StartTime:      ptr.Ptr(types.TimeString("12:00")),
		EndTime:        ptr.Ptr(types.TimeString("13:00")),
		ProfessionalID: &professionalID,
	})
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_GlobalAllDayStoresNulls(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_periods")).
		WithArgs(testDate, nil, true, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))

	_, err = NewRepository(db).Create(context.Background(), &domain.BlockedPeriod{Date: testDate, AllDay: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	professionalID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_periods WHERE blocked_date = $1")).
		WithArgs(testDate).
		WillReturnRows(sqlmock.NewRows(rowCols).
			AddRow(uuid.NewString(), testDate, nil, true, nil, nil, nil, time.Now()).
			AddRow(uuid.NewString(), testDate, "Course", false, "14:00:00", "16:00:00", professionalID.String(), time.Now()))

	blocks, err := NewRepository(db).ListByDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.True(t, blocks[0].IsGlobal())
	assert.Nil(t, blocks[0].StartTime)
	assert.True(t, blocks[1].HasTimeRange())
	assert.Equal(t, types.TimeString("14:00"), *blocks[1].StartTime)
	assert.Equal(t, professionalID, *blocks[1].ProfessionalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ProfessionalIncludesGlobal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	professionalID := uuid.New()
	end := testDate.AddDate(0, 0, 30)
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE blocked_date >= $1 AND blocked_date <= $2 AND (professional_id IS NULL OR professional_id = $3) AND all_day = $4")).
		WithArgs(testDate, end, professionalID, true).
		WillReturnRows(sqlmock.NewRows(rowCols))

	_, err = NewRepository(db).List(context.Background(), domain.BlockedPeriodFilter{
		StartDate:      &testDate,
		EndDate:        &end,
		ProfessionalID: &professionalID,
		AllDayOnly:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blocked_periods WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, NewRepository(db).Delete(context.Background(), uuid.New()), ErrBlockedPeriodNotFound)
}
