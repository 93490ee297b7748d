package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/pkg/database"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// ListByParty returns the party's full review history, newest first. The
// rating summary is computed over the whole history, so no LIMIT here.
func (r *ReviewRepository) ListByParty(ctx context.Context, partyID string) ([]domain.Review, error) {
	query := `
		SELECT id, party_id, reviewer_id, reviewer_name, rating, comment, order_id, created_at, updated_at
		FROM reviews
		WHERE party_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review

	for rows.Next() {
		var (
			rv      domain.Review
			comment sql.NullString
			orderID sql.NullString
		)

		if err := rows.Scan(
			&rv.ID,
			&rv.PartyID,
			&rv.ReviewerID,
			&rv.ReviewerName,
			&rv.Rating,
			&comment,
			&orderID,
			&rv.CreatedAt,
			&rv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}

		rv.Comment = comment.String
		rv.OrderID = orderID.String

		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}
