package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RotationBot_Go/internal/access"
	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/mocks"
)

type sweepFixture struct {
	rotations *mocks.MockRotationRepo
	engine    *mocks.MockRotationEngine
	resolver  *mocks.MockResetTimeResolver
	fetcher   *mocks.MockProviderClient
	slept     []time.Duration
	svc       *service
}

func newSweepFixture(now time.Time, allowed ...string) *sweepFixture {
	f := &sweepFixture{
		rotations: new(mocks.MockRotationRepo),
		engine:    new(mocks.MockRotationEngine),
		resolver:  new(mocks.MockResetTimeResolver),
		fetcher:   new(mocks.MockProviderClient),
	}
	f.svc = &service{
		rotations: f.rotations,
		engine:    f.engine,
		resolver:  f.resolver,
		access:    access.NewController(access.Config{PlayerIDs: allowed}),
		fetcher:   f.fetcher,
		pace:      2 * time.Second,
		now:       func() time.Time { return now },
		sleep:     func(d time.Duration) { f.slept = append(f.slept, d) },
	}
	return f
}

func TestTickClosesDuePeriodsAtLocalMidnight(t *testing.T) {
	// 05:00 UTC is local midnight of Monday June 3 at UTC-5, so the
	// daily and weekly periods are both due.
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now, "player-1")
	counters := domain.NewCounters()

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return([]string{"player-1"}, nil)
	f.fetcher.On("FetchStats", mock.Anything, "player-1").Return(counters, nil)
	f.resolver.On("Resolve", mock.Anything, "player-1").Return(
		domain.EffectiveResetTime{UTCOffset: -5, ResetHour: 0}, nil)
	f.engine.On("ClosePeriod", mock.Anything, "player-1", "daily_2024_06_02", counters).Return(nil)
	f.engine.On("ClosePeriod", mock.Anything, "player-1", "weekly_2024_22", counters).Return(nil)

	err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	f.engine.AssertExpectations(t)
	f.engine.AssertNumberOfCalls(t, "ClosePeriod", 2)
}

func TestTickSkipsPlayersOutsideAllowlist(t *testing.T) {
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now) // nobody allowed

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return([]string{"player-1"}, nil)

	err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	f.fetcher.AssertNotCalled(t, "FetchStats", mock.Anything, mock.Anything)
	f.engine.AssertNotCalled(t, "ClosePeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTickSkipsPlayerOnFetchFailure(t *testing.T) {
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now, "player-1", "player-2")
	counters := domain.NewCounters()

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return([]string{"player-1", "player-2"}, nil)
	f.fetcher.On("FetchStats", mock.Anything, "player-1").Return(nil, domain.ErrRetriesExhausted)
	f.fetcher.On("FetchStats", mock.Anything, "player-2").Return(counters, nil)
	f.resolver.On("Resolve", mock.Anything, "player-2").Return(
		domain.EffectiveResetTime{UTCOffset: -5, ResetHour: 0}, nil)
	f.engine.On("ClosePeriod", mock.Anything, "player-2", mock.Anything, counters).Return(nil)

	err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	f.engine.AssertNotCalled(t, "ClosePeriod", mock.Anything, "player-1", mock.Anything, mock.Anything)
	f.engine.AssertNumberOfCalls(t, "ClosePeriod", 2)
}

func TestTickPacesUpstreamFetches(t *testing.T) {
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now, "player-1", "player-2")
	counters := domain.NewCounters()

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return([]string{"player-1", "player-2"}, nil)
	f.fetcher.On("FetchStats", mock.Anything, mock.Anything).Return(counters, nil)
	f.resolver.On("Resolve", mock.Anything, mock.Anything).Return(
		domain.EffectiveResetTime{UTCOffset: -5, ResetHour: 0}, nil)
	f.engine.On("ClosePeriod", mock.Anything, mock.Anything, mock.Anything, counters).Return(nil)

	err := f.svc.Tick(context.Background())
	require.NoError(t, err)

	// now is frozen, so the full pace is slept after each candidate
	require.Len(t, f.slept, 2)
	assert.Equal(t, 2*time.Second, f.slept[0])
}

func TestTickPropagatesBulkQueryFailure(t *testing.T) {
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now)

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return(nil, errors.New("db down"))

	err := f.svc.Tick(context.Background())
	assert.Error(t, err)
}

func TestTickContinuesWhenPlayerHasNoBaseline(t *testing.T) {
	now := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	f := newSweepFixture(now, "player-1")
	counters := domain.NewCounters()

	f.rotations.On("ListDuePlayers", mock.Anything, 5.0).Return([]string{"player-1"}, nil)
	f.fetcher.On("FetchStats", mock.Anything, "player-1").Return(counters, nil)
	f.resolver.On("Resolve", mock.Anything, "player-1").Return(
		domain.EffectiveResetTime{UTCOffset: -5, ResetHour: 0}, nil)
	f.engine.On("ClosePeriod", mock.Anything, "player-1", "daily_2024_06_02", counters).
		Return(domain.ErrTrackingNotInitialized)

	err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	// the weekly close is not attempted once the baseline is known missing
	f.engine.AssertNumberOfCalls(t, "ClosePeriod", 1)
}
