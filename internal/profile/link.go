package profile

import (
	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/pkg/vnd"
)

// LinkState describes how a review's order reference resolved.
type LinkState string

const (
	// LinkResolved means the reference matched a known transaction.
	LinkResolved LinkState = "resolved"
	// LinkUnresolved means the review carries a reference that matched
	// nothing. The raw reference is still surfaced; a dangling reference is
	// never collapsed into LinkNone.
	LinkUnresolved LinkState = "unresolved"
	// LinkNone means the review carries no order reference at all.
	LinkNone LinkState = "none"
)

// ListingSummary is the listing detail attached to a resolved link.
type ListingSummary struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// LinkOutcome is the result of resolving a review's order reference.
// TransactionID, Amount, and Listing are set only for LinkResolved; Ref is
// set only for LinkUnresolved. Listing may be nil on a resolved outcome when
// the transaction's own listing reference dangles.
type LinkOutcome struct {
	State         LinkState
	TransactionID string
	Amount        string
	Listing       *ListingSummary
	Ref           string
}

// Link resolves a review's order reference against the supplied transaction
// map. Precedence: a reference that resolves wins, a reference that does not
// resolve is unresolved, no reference is none.
func Link(review domain.Review, resolved map[string]*domain.Transaction) LinkOutcome {
	if review.OrderID == "" {
		return LinkOutcome{State: LinkNone}
	}

	tx, ok := resolved[review.OrderID]
	if !ok || tx == nil {
		return LinkOutcome{State: LinkUnresolved, Ref: review.OrderID}
	}

	outcome := LinkOutcome{
		State:         LinkResolved,
		TransactionID: tx.ID,
		Amount:        vnd.Format(tx.Amount, true),
	}
	if tx.Listing != nil {
		outcome.Listing = &ListingSummary{
			Brand: tx.Listing.Brand,
			Model: tx.Listing.Model,
			Year:  tx.Listing.Year,
		}
	}
	return outcome
}
