package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/pkg/database"
)

// TransactionRepository implements repository.TransactionRepository using PostgreSQL.
type TransactionRepository struct {
	pool database.DBTX
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepository(pool database.DBTX) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// transactionColumns is the SELECT list shared by all transaction queries.
// Listings are LEFT JOINed so transactions with a dangling listing reference
// still come back, just without listing details.
const transactionColumns = `
		t.id, t.buyer_id, t.seller_id, t.listing_id, t.amount, t.status, t.closed_at, t.created_at,
		l.id, l.seller_id, l.brand, l.model, l.year, l.price, l.battery_capacity_kwh`

// ListBySeller returns all transactions where the party is the seller, newest first.
func (r *TransactionRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Transaction, error) {
	query := `
		SELECT` + transactionColumns + `
		FROM transactions t
		LEFT JOIN listings l ON t.listing_id = l.id
		WHERE t.seller_id = $1
		ORDER BY t.created_at DESC`

	return r.list(ctx, query, sellerID)
}

// ListByBuyer returns all transactions where the party is the buyer, newest first.
func (r *TransactionRepository) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Transaction, error) {
	query := `
		SELECT` + transactionColumns + `
		FROM transactions t
		LEFT JOIN listings l ON t.listing_id = l.id
		WHERE t.buyer_id = $1
		ORDER BY t.created_at DESC`

	return r.list(ctx, query, buyerID)
}

// GetByIDs fetches the given transactions in one batch, keyed by ID. IDs that
// match nothing are absent from the result.
func (r *TransactionRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Transaction, error) {
	result := make(map[string]*domain.Transaction, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT` + transactionColumns + `
		FROM transactions t
		LEFT JOIN listings l ON t.listing_id = l.id
		WHERE t.id = ANY($1)`

	txs, err := r.list(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	for i := range txs {
		result[txs[i].ID] = &txs[i]
	}
	return result, nil
}

func (r *TransactionRepository) list(ctx context.Context, query string, arg any) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction

	for rows.Next() {
		var (
			tx        domain.Transaction
			listingID sql.NullString
			// Listing columns are NULL when the join finds nothing.
			lID       sql.NullString
			lSellerID sql.NullString
			lBrand    sql.NullString
			lModel    sql.NullString
			lYear     sql.NullInt32
			lPrice    sql.NullInt64
			lBattery  sql.NullFloat64
		)

		if err := rows.Scan(
			&tx.ID,
			&tx.BuyerID,
			&tx.SellerID,
			&listingID,
			&tx.Amount,
			&tx.Status,
			&tx.ClosedAt,
			&tx.CreatedAt,
			&lID,
			&lSellerID,
			&lBrand,
			&lModel,
			&lYear,
			&lPrice,
			&lBattery,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}

		tx.ListingID = listingID.String
		if lID.Valid {
			tx.Listing = &domain.Listing{
				ID:                 lID.String,
				SellerID:           lSellerID.String,
				Brand:              lBrand.String,
				Model:              lModel.String,
				Year:               int(lYear.Int32),
				Price:              lPrice.Int64,
				BatteryCapacityKWh: lBattery.Float64,
			}
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	if txs == nil {
		txs = []domain.Transaction{}
	}

	return txs, nil
}
