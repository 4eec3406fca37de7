package dbmetrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu  sync.Mutex
	ops []string
}

func (o *recordingObserver) ObserveDBQuery(operation string, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, operation)
}

func (o *recordingObserver) SetDBPoolStats(int, int, int) {}

func TestDB_ObservesQueriesAndTransactions(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	obs := &recordingObserver{}
	db := Wrap(sqlDB, obs)

	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM appointments").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, "UPDATE products SET stock = stock - 1")
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	rows, err := tx.QueryContext(ctx, "SELECT id FROM appointments")
	require.NoError(t, err)
	rows.Close()
	require.NoError(t, tx.Commit())

	assert.Equal(t, []string{"update", "begin", "select", "commit"}, obs.ops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("  SELECT 1"))
	assert.Equal(t, "insert", operationOf("INSERT INTO sales"))
	assert.Equal(t, "unknown", operationOf(""))
}
