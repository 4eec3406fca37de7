package cash_movement

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
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	saleID := uuid.New()
	at := time.Now()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cash_movements")).
		WithArgs("in", "sale", "Sale", 71.0, "pix", saleID, at, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), at))

	m, err := NewRepository(db).Create(context.Background(), &domain.CashMovement{
		Type:          domain.MovementIn,
		Category:      domain.CategorySale,
		Description:   "Sale",
		Amount:        71,
		PaymentMethod: ptr.Ptr(domain.PaymentPix),
		SaleID:        &saleID,
		OccurredAt:    at,
	})
	require.NoError(t, err)
	assert.Equal(t, id, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM cash_movements WHERE occurred_at >= $1 AND occurred_at < $2 ORDER BY occurred_at ASC")).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "out", "expense", "Cleaning supplies", "25.50", nil, nil, from.Add(time.Hour), nil, from))

	list, err := NewRepository(db).List(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.MovementOut, list[0].Type)
	assert.Equal(t, -25.5, list[0].Signed())
	assert.Nil(t, list[0].PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}
