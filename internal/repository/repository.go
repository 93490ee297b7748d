package repository

import (
	"context"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
)

// TransactionRepository defines read access to transactions and their listings.
type TransactionRepository interface {
	// ListBySeller returns all transactions where the party is the seller,
	// newest first, with listing details resolved where they exist.
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Transaction, error)

	// ListByBuyer returns all transactions where the party is the buyer,
	// newest first, with listing details resolved where they exist.
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Transaction, error)

	// GetByIDs fetches the given transactions in one batch, keyed by ID.
	// IDs that match nothing are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Transaction, error)
}

// ReviewRepository defines read access to a party's review history.
type ReviewRepository interface {
	// ListByParty returns the party's full review history, newest first.
	ListByParty(ctx context.Context, partyID string) ([]domain.Review, error)
}
