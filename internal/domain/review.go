package domain

import "time"

// Review represents feedback left for a party after a transaction. OrderID is
// an optional reference to the transaction the review was written for; the
// reference is not enforced by a foreign key and may point at nothing.
type Review struct {
	ID           string     `json:"id"`
	PartyID      string     `json:"party_id"`
	ReviewerID   string     `json:"reviewer_id"`
	ReviewerName string     `json:"reviewer_name"`
	Rating       float64    `json:"rating"`
	Comment      string     `json:"comment,omitempty"`
	OrderID      string     `json:"order_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
