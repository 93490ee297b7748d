package profile

import (
	"fmt"

	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	apperrors "github.com/nmbt2910/iheartev-sub001/pkg/errors"
)

// ReviewEntry is one review in the recent subset, carrying its star breakdown
// and the outcome of resolving its order reference.
type ReviewEntry struct {
	Review domain.Review
	Stars  domain.StarBreakdown
	Link   LinkOutcome
}

// Summary is the aggregated profile for one party. It is built fresh on every
// Aggregate call and never mutated afterwards.
type Summary struct {
	Party   domain.Party
	Buckets Buckets
	Rating  domain.RatingSummary
	Stars   domain.StarBreakdown
	Recent  []ReviewEntry
}

// Aggregate builds a profile summary for the given party. The rating summary
// covers the FULL review history; only the first recentLimit reviews (callers
// supply them newest-first) are expanded into entries. The resolved map keys
// order references to transactions for the recent subset.
//
// A nil party yields ErrNotFound. Nil or empty collections are fine and yield
// empty buckets and a zero rating summary.
func Aggregate(party *domain.Party, txs []domain.Transaction, reviews []domain.Review, resolved map[string]*domain.Transaction, recentLimit int) (*Summary, error) {
	if party == nil {
		return nil, fmt.Errorf("aggregate profile: party: %w", apperrors.ErrNotFound)
	}

	rating := domain.SummarizeRatings(reviews)

	if recentLimit < 0 {
		recentLimit = 0
	}
	if recentLimit > len(reviews) {
		recentLimit = len(reviews)
	}

	recent := make([]ReviewEntry, 0, recentLimit)
	for _, r := range reviews[:recentLimit] {
		recent = append(recent, ReviewEntry{
			Review: r,
			Stars:  domain.Stars(r.Rating),
			Link:   Link(r, resolved),
		})
	}

	return &Summary{
		Party:   *party,
		Buckets: Categorize(txs),
		Rating:  rating,
		Stars:   domain.Stars(rating.Average),
		Recent:  recent,
	}, nil
}
