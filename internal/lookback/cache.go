package lookback

import (
	"sync"
	"time"
)

// TierCache provides in-memory caching for subscription tier lookups
type TierCache struct {
	mu     sync.RWMutex
	values map[string]*CachedTier
	ttl    time.Duration
}

// CachedTier represents a cached tier lookup, including the "no active
// subscription" outcome so absent tiers are not re-queried every request
type CachedTier struct {
	HasTier      bool
	TierName     string
	TierLevel    int
	LookbackDays int
	CachedAt     time.Time
	ExpiresAt    time.Time
}

// NewTierCache creates a new cache with the specified TTL
func NewTierCache(ttl time.Duration) *TierCache {
	return &TierCache{
		values: make(map[string]*CachedTier),
		ttl:    ttl,
	}
}

// Get retrieves a cached tier if it exists and hasn't expired
func (c *TierCache) Get(accountID string) (*CachedTier, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[accountID]
	if !ok || time.Now().After(cached.ExpiresAt) {
		return nil, false
	}
	return cached, true
}

// Set stores a tier lookup result in the cache
func (c *TierCache) Set(accountID string, entry CachedTier) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry.CachedAt = now
	entry.ExpiresAt = now.Add(c.ttl)
	c.values[accountID] = &entry
}

// Invalidate removes one account's cached tier
func (c *TierCache) Invalidate(accountID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, accountID)
}

// InvalidateAll clears the entire cache
func (c *TierCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]*CachedTier)
}

// Size returns the current number of cached entries
func (c *TierCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
