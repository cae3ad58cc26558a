package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// scriptedClient returns canned results in order
type scriptedClient struct {
	results []error
	success domain.Counters
	calls   int
}

func (c *scriptedClient) FetchStats(ctx context.Context, playerID string) (domain.Counters, error) {
	idx := c.calls
	c.calls++
	if idx < len(c.results) && c.results[idx] != nil {
		return nil, c.results[idx]
	}
	return c.success, nil
}

func newFetcher(client Client, maxAttempts int) (*RateLimitedFetcher, *[]time.Duration) {
	var slept []time.Duration
	f := NewRateLimitedFetcher(client, maxAttempts, 3*time.Second)
	f.sleep = func(d time.Duration) { slept = append(slept, d) }
	return f, &slept
}

func TestFetchStatsSucceedsFirstAttempt(t *testing.T) {
	counters := domain.NewCounters()
	counters[domain.KeyExperience] = 1200
	client := &scriptedClient{success: counters}
	f, slept := newFetcher(client, 5)

	got, err := f.FetchStats(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), got[domain.KeyExperience])
	assert.Empty(t, *slept)
}

func TestFetchStatsWaitsOutThrottling(t *testing.T) {
	client := &scriptedClient{
		results: []error{domain.ErrThrottled, domain.ErrThrottled},
		success: domain.NewCounters(),
	}
	f, slept := newFetcher(client, 5)

	_, err := f.FetchStats(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Len(t, *slept, 2)
	assert.Equal(t, 3*time.Second, (*slept)[0])
}

func TestFetchStatsExhaustsRetries(t *testing.T) {
	client := &scriptedClient{
		results: []error{domain.ErrThrottled, domain.ErrThrottled, domain.ErrThrottled},
	}
	f, _ := newFetcher(client, 3)

	_, err := f.FetchStats(context.Background(), "player-1")
	assert.ErrorIs(t, err, domain.ErrRetriesExhausted)
	assert.Equal(t, 3, client.calls)
}

func TestFetchStatsDoesNotRetryOtherErrors(t *testing.T) {
	client := &scriptedClient{
		results: []error{domain.ErrPlayerNotFound},
	}
	f, slept := newFetcher(client, 5)

	_, err := f.FetchStats(context.Background(), "player-1")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, *slept)
}

func TestFetchStatsHonorsContextCancellation(t *testing.T) {
	client := &scriptedClient{
		results: []error{domain.ErrThrottled, domain.ErrThrottled, domain.ErrThrottled},
	}
	f, _ := newFetcher(client, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchStats(ctx, "player-1")
	assert.True(t, errors.Is(err, context.Canceled))
}
