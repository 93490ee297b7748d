package http

import (
	"math"
	"time"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/internal/profile"
	"github.com/nmbt2910/iheartev-sub001/pkg/vnd"
)

// --- View models ---

// PartyView is the party section of a profile response.
type PartyView struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// ListingView is the listing summary attached to a transaction or order line.
type ListingView struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// TransactionView is one transaction in a profile bucket.
type TransactionView struct {
	ID        string       `json:"id"`
	Amount    string       `json:"amount"`
	Status    string       `json:"status"`
	Listing   *ListingView `json:"listing,omitempty"`
	ClosedAt  *time.Time   `json:"closed_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// StarsView is the rendered star breakdown.
type StarsView struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// ReviewerView identifies who wrote a review.
type ReviewerView struct {
	FullName string `json:"full_name"`
}

// OrderView is the resolved order section of a review.
type OrderView struct {
	ID      string       `json:"id"`
	Amount  string       `json:"amount"`
	Listing *ListingView `json:"listing,omitempty"`
}

// ReviewView is one review in the recent subset. Exactly one of Order and
// OrderRef is set when the review references a transaction; both are absent
// when it references none.
type ReviewView struct {
	ID        string       `json:"id"`
	Rating    float64      `json:"rating"`
	Stars     StarsView    `json:"stars"`
	Comment   string       `json:"comment,omitempty"`
	Reviewer  ReviewerView `json:"reviewer"`
	Order     *OrderView   `json:"order,omitempty"`
	OrderRef  string       `json:"order_ref,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// SellerProfileView is the response body for a seller profile.
type SellerProfileView struct {
	Seller        PartyView         `json:"seller"`
	ActiveListing []TransactionView `json:"active_listings"`
	SoldListings  []TransactionView `json:"sold_listings"`
	AverageRating float64           `json:"average_rating"`
	Stars         StarsView         `json:"stars"`
	TotalReviews  int               `json:"total_reviews"`
	Reviews       []ReviewView      `json:"reviews"`
}

// BuyerProfileView is the response body for a buyer profile.
type BuyerProfileView struct {
	Buyer               PartyView         `json:"buyer"`
	SuccessfulPurchases []TransactionView `json:"successful_purchases"`
	AverageRating       float64           `json:"average_rating"`
	Stars               StarsView         `json:"stars"`
	TotalReviews        int               `json:"total_reviews"`
	Reviews             []ReviewView      `json:"reviews"`
}

// --- Mapping ---

func partyView(p domain.Party) PartyView {
	return PartyView{ID: p.ID, FullName: p.FullName, Email: p.Email, Phone: p.Phone}
}

func starsView(s domain.StarBreakdown) StarsView {
	return StarsView{Full: s.Full, Half: s.Half, Empty: s.Empty}
}

func transactionViews(txs []domain.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		v := TransactionView{
			ID:        tx.ID,
			Amount:    vnd.Format(tx.Amount, true),
			Status:    tx.Status,
			ClosedAt:  tx.ClosedAt,
			CreatedAt: tx.CreatedAt,
		}
		if tx.Listing != nil {
			v.Listing = &ListingView{
				Brand: tx.Listing.Brand,
				Model: tx.Listing.Model,
				Year:  tx.Listing.Year,
			}
		}
		views = append(views, v)
	}
	return views
}

func reviewViews(entries []profile.ReviewEntry) []ReviewView {
	views := make([]ReviewView, 0, len(entries))
	for _, e := range entries {
		v := ReviewView{
			ID:        e.Review.ID,
			Rating:    e.Review.Rating,
			Stars:     starsView(e.Stars),
			Comment:   e.Review.Comment,
			Reviewer:  ReviewerView{FullName: e.Review.ReviewerName},
			CreatedAt: e.Review.CreatedAt,
			UpdatedAt: e.Review.UpdatedAt,
		}

		switch e.Link.State {
		case profile.LinkResolved:
			order := &OrderView{ID: e.Link.TransactionID, Amount: e.Link.Amount}
			if e.Link.Listing != nil {
				order.Listing = &ListingView{
					Brand: e.Link.Listing.Brand,
					Model: e.Link.Listing.Model,
					Year:  e.Link.Listing.Year,
				}
			}
			v.Order = order
		case profile.LinkUnresolved:
			v.OrderRef = e.Link.Ref
		}

		views = append(views, v)
	}
	return views
}

// roundRating rounds an average rating to one decimal for display.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// newSellerProfileView maps an aggregated summary to the seller response shape.
func newSellerProfileView(s *profile.Summary) SellerProfileView {
	return SellerProfileView{
		Seller:        partyView(s.Party),
		ActiveListing: transactionViews(s.Buckets.Active),
		SoldListings:  transactionViews(s.Buckets.Sold),
		AverageRating: roundRating(s.Rating.Average),
		Stars:         starsView(s.Stars),
		TotalReviews:  s.Rating.Total,
		Reviews:       reviewViews(s.Recent),
	}
}

// newBuyerProfileView maps an aggregated summary to the buyer response shape.
func newBuyerProfileView(s *profile.Summary) BuyerProfileView {
	return BuyerProfileView{
		Buyer:               partyView(s.Party),
		SuccessfulPurchases: transactionViews(s.Buckets.Completed),
		AverageRating:       roundRating(s.Rating.Average),
		Stars:               starsView(s.Stars),
		TotalReviews:        s.Rating.Total,
		Reviews:             reviewViews(s.Recent),
	}
}
