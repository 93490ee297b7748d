package domain

import "time"

// Transaction status constants.
const (
	TransactionStatusActive    = "active"
	TransactionStatusSold      = "sold"
	TransactionStatusCompleted = "completed"
)

// Transaction represents a sale between a buyer and a seller. The listing
// reference may dangle (the listing was deleted after the sale); Listing is
// nil in that case and the transaction still renders with its amount.
type Transaction struct {
	ID        string     `json:"id"`
	BuyerID   string     `json:"buyer_id"`
	SellerID  string     `json:"seller_id"`
	ListingID string     `json:"listing_id,omitempty"`
	Listing   *Listing   `json:"listing,omitempty"`
	Amount    int64      `json:"amount"` // whole VND
	Status    string     `json:"status"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ValidStatuses returns all valid transaction statuses.
func ValidStatuses() []string {
	return []string{
		TransactionStatusActive,
		TransactionStatusSold,
		TransactionStatusCompleted,
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
