package postgres

import (
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/pkg/database"
)

func newTransactionRepo(t *testing.T) (*TransactionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return NewTransactionRepository(mock), mock
}

func transactionRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "buyer_id", "seller_id", "listing_id", "amount", "status", "closed_at", "created_at",
		"l_id", "l_seller_id", "l_brand", "l_model", "l_year", "l_price", "l_battery_capacity_kwh",
	})
}

func TestTransactionRepository_ListBySeller(t *testing.T) {
	repo, mock := newTransactionRepo(t)

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := transactionRows().
		AddRow(
			"tx-1", "buyer-1", "seller-1", "lst-1", int64(250_000_000), domain.TransactionStatusSold, nil, now,
			"lst-1", "seller-1", "VinFast", "VF 8", int32(2023), int64(260_000_000), 87.7,
		).
		AddRow(
			"tx-2", "buyer-2", "seller-1", "lst-gone", int64(90_000_000), domain.TransactionStatusCompleted, nil, now.Add(-time.Hour),
			nil, nil, nil, nil, nil, nil, nil,
		)

	mock.ExpectQuery("SELECT .+ FROM transactions t").
		WithArgs("seller-1").
		WillReturnRows(rows)

	txs, err := repo.ListBySeller(t.Context(), "seller-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "tx-1", txs[0].ID)
	assert.Equal(t, "lst-1", txs[0].ListingID)
	require.NotNil(t, txs[0].Listing)
	assert.Equal(t, "VinFast", txs[0].Listing.Brand)
	assert.Equal(t, 2023, txs[0].Listing.Year)
	assert.InDelta(t, 87.7, txs[0].Listing.BatteryCapacityKWh, 1e-9)

	// Dangling listing reference: transaction survives, Listing stays nil.
	assert.Equal(t, "tx-2", txs[1].ID)
	assert.Equal(t, "lst-gone", txs[1].ListingID)
	assert.Nil(t, txs[1].Listing)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByBuyer_Empty(t *testing.T) {
	repo, mock := newTransactionRepo(t)

	mock.ExpectQuery("SELECT .+ FROM transactions t").
		WithArgs("buyer-9").
		WillReturnRows(transactionRows())

	txs, err := repo.ListByBuyer(t.Context(), "buyer-9")
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetByIDs(t *testing.T) {
	repo, mock := newTransactionRepo(t)

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := transactionRows().
		AddRow(
			"tx-1", "buyer-1", "seller-1", "lst-1", int64(180_000_000), domain.TransactionStatusCompleted, &now, now,
			"lst-1", "seller-1", "Hyundai", "Ioniq 5", int32(2022), int64(185_000_000), 72.6,
		)

	mock.ExpectQuery("SELECT .+ FROM transactions t").
		WithArgs([]string{"tx-1", "tx-missing"}).
		WillReturnRows(rows)

	got, err := repo.GetByIDs(t.Context(), []string{"tx-1", "tx-missing"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got["tx-1"])
	assert.Equal(t, int64(180_000_000), got["tx-1"].Amount)
	assert.Nil(t, got["tx-missing"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetByIDs_NoIDs(t *testing.T) {
	repo, mock := newTransactionRepo(t)

	got, err := repo.GetByIDs(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListBySeller_QueryError(t *testing.T) {
	repo, mock := newTransactionRepo(t)

	mock.ExpectQuery("SELECT .+ FROM transactions t").
		WithArgs("seller-1").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListBySeller(t.Context(), "seller-1")
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
