package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var (
	profileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_cache_hits_total",
			Help: "Total number of profile cache hits",
		},
		[]string{"role"},
	)

	profileCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_cache_misses_total",
			Help: "Total number of profile cache misses",
		},
		[]string{"role"},
	)
)

// ProfileCache caches rendered profile summaries in Redis. It is strictly an
// optimization: every method degrades to a no-op on Redis errors, logging a
// warning, so a broken cache never fails a profile request.
type ProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProfileCache creates a profile cache with the given TTL.
func NewProfileCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl, logger: logger}
}

func key(role, partyID string) string {
	return fmt.Sprintf("profile:%s:%s", role, partyID)
}

// Get looks up a cached profile and unmarshals it into dest. The second
// return value reports whether the lookup hit.
func (c *ProfileCache) Get(ctx context.Context, role, partyID string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key(role, partyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		profileCacheMisses.WithLabelValues(role).Inc()
		return false, nil
	}
	if err != nil {
		profileCacheMisses.WithLabelValues(role).Inc()
		c.logger.WarnContext(ctx, "profile cache get failed",
			slog.String("role", role),
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry is treated as a miss and removed.
		profileCacheMisses.WithLabelValues(role).Inc()
		c.logger.WarnContext(ctx, "profile cache entry corrupt, evicting",
			slog.String("role", role),
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
		_ = c.rdb.Del(ctx, key(role, partyID)).Err()
		return false, nil
	}

	profileCacheHits.WithLabelValues(role).Inc()
	return true, nil
}

// Set stores a profile under the party's key with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, role, partyID string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "profile cache marshal failed",
			slog.String("role", role),
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.rdb.Set(ctx, key(role, partyID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "profile cache set failed",
			slog.String("role", role),
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
}

// Invalidate removes the cached profiles for a party in both roles. Called
// when a review or order event touches the party.
func (c *ProfileCache) Invalidate(ctx context.Context, partyID string) {
	keys := []string{key("seller", partyID), key("buyer", partyID)}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "profile cache invalidate failed",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()),
		)
	}
}
