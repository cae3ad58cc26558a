package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/metrics"
)

// RateLimitedFetcher retries throttled provider requests with a fixed
// delay between attempts. Only domain.ErrThrottled is retried; every
// other error is returned immediately.
type RateLimitedFetcher struct {
	client      Client
	maxAttempts int
	retryDelay  time.Duration

	// sleep is replaceable in tests
	sleep func(time.Duration)
}

// NewRateLimitedFetcher wraps a client with throttle-aware retries
func NewRateLimitedFetcher(client Client, maxAttempts int, retryDelay time.Duration) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		client:      client,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		sleep:       time.Sleep,
	}
}

// FetchStats fetches a player's counters, waiting out upstream rate
// limits. Returns domain.ErrRetriesExhausted when every attempt was
// throttled.
func (f *RateLimitedFetcher) FetchStats(ctx context.Context, playerID string) (domain.Counters, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		counters, err := f.client.FetchStats(ctx, playerID)
		if err == nil {
			return counters, nil
		}
		if !errors.Is(err, domain.ErrThrottled) {
			metrics.UpstreamFetchFailures.Inc()
			return nil, err
		}

		metrics.UpstreamFetchRetries.Inc()
		if attempt == f.maxAttempts {
			break
		}

		log.Debug("Provider throttled, retrying",
			"player_id", playerID,
			"attempt", attempt,
			"retry_delay", f.retryDelay)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		f.sleep(f.retryDelay)
	}

	metrics.UpstreamFetchFailures.Inc()
	return nil, fmt.Errorf("%w: %d attempts throttled for player %s",
		domain.ErrRetriesExhausted, f.maxAttempts, playerID)
}
