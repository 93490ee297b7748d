package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nmbt2910/iheartev-sub001/internal/cache"
	"github.com/nmbt2910/iheartev-sub001/internal/domain"
	"github.com/nmbt2910/iheartev-sub001/internal/profile"
	"github.com/nmbt2910/iheartev-sub001/internal/repository"
)

// DefaultRecentReviews is the number of reviews expanded into the profile
// when the caller does not ask for a specific count.
const DefaultRecentReviews = 5

// PartyFetcher fetches party records from the user service.
type PartyFetcher interface {
	GetParty(ctx context.Context, partyID string) (*domain.Party, error)
}

// ProfileService orchestrates profile aggregation: party lookup, transaction
// and review loading, order-reference resolution, and caching.
type ProfileService struct {
	parties    PartyFetcher
	txRepo     repository.TransactionRepository
	reviewRepo repository.ReviewRepository
	cache      *cache.ProfileCache
	logger     *slog.Logger
}

// NewProfileService creates a new profile service. The cache may be nil, in
// which case every request aggregates directly.
func NewProfileService(
	parties PartyFetcher,
	txRepo repository.TransactionRepository,
	reviewRepo repository.ReviewRepository,
	profileCache *cache.ProfileCache,
	logger *slog.Logger,
) *ProfileService {
	return &ProfileService{
		parties:    parties,
		txRepo:     txRepo,
		reviewRepo: reviewRepo,
		cache:      profileCache,
		logger:     logger,
	}
}

// GetSellerProfile aggregates the seller-side profile for a party.
func (s *ProfileService) GetSellerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error) {
	return s.getProfile(ctx, domain.RoleSeller, partyID, recentLimit)
}

// GetBuyerProfile aggregates the buyer-side profile for a party.
func (s *ProfileService) GetBuyerProfile(ctx context.Context, partyID string, recentLimit int) (*profile.Summary, error) {
	return s.getProfile(ctx, domain.RoleBuyer, partyID, recentLimit)
}

func (s *ProfileService) getProfile(ctx context.Context, role, partyID string, recentLimit int) (*profile.Summary, error) {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentReviews
	}

	// Only default-limit profiles are cached; a custom limit changes the
	// shape of the recent subset and would pollute the shared entry.
	useCache := s.cache != nil && recentLimit == DefaultRecentReviews

	if useCache {
		var cached profile.Summary
		if hit, err := s.cache.Get(ctx, role, partyID, &cached); err == nil && hit {
			s.logger.DebugContext(ctx, "profile cache hit",
				slog.String("role", role),
				slog.String("party_id", partyID),
			)
			return &cached, nil
		}
	}

	summary, err := s.aggregate(ctx, role, partyID, recentLimit)
	if err != nil {
		return nil, err
	}

	if useCache {
		s.cache.Set(ctx, role, partyID, summary)
	}

	return summary, nil
}

func (s *ProfileService) aggregate(ctx context.Context, role, partyID string, recentLimit int) (*profile.Summary, error) {
	party, err := s.parties.GetParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("fetch party %s: %w", partyID, err)
	}

	var txs []domain.Transaction
	if role == domain.RoleSeller {
		txs, err = s.txRepo.ListBySeller(ctx, partyID)
	} else {
		txs, err = s.txRepo.ListByBuyer(ctx, partyID)
	}
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", partyID, err)
	}

	reviews, err := s.reviewRepo.ListByParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", partyID, err)
	}

	resolved, err := s.resolveOrderRefs(ctx, reviews, recentLimit)
	if err != nil {
		return nil, err
	}

	summary, err := profile.Aggregate(party, txs, reviews, resolved, recentLimit)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile aggregated",
		slog.String("role", role),
		slog.String("party_id", partyID),
		slog.Int("transactions", summary.Buckets.Total()),
		slog.Int("reviews", summary.Rating.Total),
	)

	return summary, nil
}

// resolveOrderRefs batch-fetches the transactions referenced by the recent
// review subset. Only the reviews that will actually be expanded need their
// references resolved.
func (s *ProfileService) resolveOrderRefs(ctx context.Context, reviews []domain.Review, recentLimit int) (map[string]*domain.Transaction, error) {
	if recentLimit > len(reviews) {
		recentLimit = len(reviews)
	}

	var ids []string
	seen := make(map[string]bool)
	for _, r := range reviews[:recentLimit] {
		if r.OrderID != "" && !seen[r.OrderID] {
			seen[r.OrderID] = true
			ids = append(ids, r.OrderID)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	resolved, err := s.txRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve order references: %w", err)
	}
	return resolved, nil
}
