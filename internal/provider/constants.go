package provider

import "time"

const (
	apiKeyHeader   = "API-Key"
	requestTimeout = 10 * time.Second

	// DefaultCacheSize bounds the short-lived response cache
	DefaultCacheSize = 1024
	// DefaultCacheTTL keeps responses only long enough to absorb
	// back-to-back requests for the same player
	DefaultCacheTTL = 30 * time.Second
)
