package provider

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/osse101/RotationBot_Go/internal/domain"
)

// cachedStatsEntry wraps a fetched counter set with its fetch time
type cachedStatsEntry struct {
	Counters domain.Counters
	FetchedAt time.Time
}

// CachedClient wraps a provider client with a short-lived in-memory LRU
// cache so that a player opening their stats and triggering an
// opportunistic check does not hit the upstream twice.
type CachedClient struct {
	inner Client
	lru   *expirable.LRU[string, *cachedStatsEntry]
}

// NewCachedClient creates a caching layer over a provider client.
// size: maximum number of cached players
// ttl: time-to-live for cached entries
func NewCachedClient(inner Client, size int, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedStatsEntry](size, nil, ttl),
	}
}

// FetchStats returns cached counters when fresh, otherwise fetches from
// the wrapped client. Errors are never cached.
func (c *CachedClient) FetchStats(ctx context.Context, playerID string) (domain.Counters, error) {
	if entry, found := c.lru.Get(playerID); found {
		return entry.Counters.Clone(), nil
	}

	counters, err := c.inner.FetchStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	c.lru.Add(playerID, &cachedStatsEntry{
		Counters:  counters.Clone(),
		FetchedAt: time.Now(),
	})
	return counters, nil
}

// Invalidate drops a player's cached counters.
func (c *CachedClient) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}
