package rotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/mocks"
)

type engineFixture struct {
	snapshots  *mocks.MockSnapshotRepo
	rotations  *mocks.MockRotationRepo
	history    *mocks.MockHistoryRepo
	resetTimes *mocks.MockResetTimeService
	svc        *service
}

func newEngineFixture(now time.Time) *engineFixture {
	f := &engineFixture{
		snapshots:  new(mocks.MockSnapshotRepo),
		rotations:  new(mocks.MockRotationRepo),
		history:    new(mocks.MockHistoryRepo),
		resetTimes: new(mocks.MockResetTimeService),
	}
	f.svc = &service{
		snapshots:  f.snapshots,
		rotations:  f.rotations,
		history:    f.history,
		resetTimes: f.resetTimes,
		now:        func() time.Time { return now },
	}
	return f
}

func countersWith(values map[domain.StatKey]int64) domain.Counters {
	c := domain.NewCounters()
	for k, v := range values {
		c[k] = v
	}
	return c
}

func TestInitializeOpensBaselinePerPeriodType(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	current := countersWith(map[domain.StatKey]int64{domain.KeyExperience: 1000})

	f.resetTimes.On("EnsurePlayerDefault", mock.Anything, "player-1").Return(nil)
	for _, pt := range domain.PeriodTypes {
		f.rotations.On("GetBaseline", mock.Anything, "player-1", pt).Return(nil, nil)
		f.rotations.On("CreateBaseline", mock.Anything, "player-1", pt, "snap-"+string(pt), now).Return(true, nil)
	}
	// one independent snapshot per period type
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-daily", nil).Once()
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-weekly", nil).Once()
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-monthly", nil).Once()
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-yearly", nil).Once()

	err := f.svc.Initialize(context.Background(), "player-1", current)
	require.NoError(t, err)
	f.rotations.AssertExpectations(t)
	f.snapshots.AssertNumberOfCalls(t, "Create", 4)
}

func TestInitializeIsNoOpWhenTracked(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	f.resetTimes.On("EnsurePlayerDefault", mock.Anything, "player-1").Return(nil)
	for _, pt := range domain.PeriodTypes {
		f.rotations.On("GetBaseline", mock.Anything, "player-1", pt).Return(&domain.RotationBaseline{
			PlayerID: "player-1", PeriodType: pt, SnapshotID: "existing",
		}, nil)
	}

	err := f.svc.Initialize(context.Background(), "player-1", domain.NewCounters())
	require.NoError(t, err)
	f.snapshots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.rotations.AssertNotCalled(t, "CreateBaseline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestArchiveComputesDeltaAndLevel(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 5, 0, time.UTC)
	f := newEngineFixture(now)

	baseline := countersWith(map[domain.StatKey]int64{
		domain.KeyExperience: 7000,
		domain.ModeKey(domain.ModeOverall, domain.StatWins): 10,
	})
	current := countersWith(map[domain.StatKey]int64{
		domain.KeyExperience: 9500,
		domain.ModeKey(domain.ModeOverall, domain.StatWins): 25,
	})

	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodDaily).Return(&domain.RotationBaseline{
		PlayerID: "player-1", PeriodType: domain.PeriodDaily, SnapshotID: "snap-base",
	}, nil)
	f.snapshots.On("Read", mock.Anything, "snap-base").Return(baseline, nil)
	f.snapshots.On("Create", mock.Anything, mock.MatchedBy(func(delta domain.Counters) bool {
		return delta[domain.KeyExperience] == 2500 &&
			delta[domain.ModeKey(domain.ModeOverall, domain.StatWins)] == 15
	})).Return("snap-delta", nil)
	f.history.On("Insert", mock.Anything, mock.MatchedBy(func(rec *domain.HistoricalPeriod) bool {
		// level derived from the baseline's lifetime experience
		return rec.PeriodKey == "daily_2024_06_01" && rec.Level == 4 && rec.SnapshotID == "snap-delta"
	})).Return(nil)

	snapshotID, err := f.svc.Archive(context.Background(), "player-1", "daily_2024_06_01", current)
	require.NoError(t, err)
	assert.Equal(t, "snap-delta", snapshotID)
	f.history.AssertExpectations(t)
}

func TestArchiveRequiresInitializedTracking(t *testing.T) {
	f := newEngineFixture(time.Now())
	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodWeekly).Return(nil, nil)

	_, err := f.svc.Archive(context.Background(), "player-1", "weekly_2024_23", domain.NewCounters())
	assert.ErrorIs(t, err, domain.ErrTrackingNotInitialized)
}

func TestArchiveRejectsMalformedKey(t *testing.T) {
	f := newEngineFixture(time.Now())
	_, err := f.svc.Archive(context.Background(), "player-1", "decade_2020", domain.NewCounters())
	assert.ErrorIs(t, err, domain.ErrInvalidPeriodKey)
}

func TestClosePeriodArchivesThenRebases(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 5, 0, time.UTC)
	f := newEngineFixture(now)
	current := countersWith(map[domain.StatKey]int64{domain.KeyExperience: 600})

	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodDaily).Return(&domain.RotationBaseline{
		PlayerID: "player-1", PeriodType: domain.PeriodDaily, SnapshotID: "snap-base",
	}, nil)
	f.snapshots.On("Read", mock.Anything, "snap-base").Return(domain.NewCounters(), nil)
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-delta", nil)
	f.history.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.rotations.On("TouchBaseline", mock.Anything, "player-1", domain.PeriodDaily, now).Return(nil)
	f.snapshots.On("Overwrite", mock.Anything, "snap-base", current).Return(nil)

	err := f.svc.ClosePeriod(context.Background(), "player-1", "daily_2024_06_01", current)
	require.NoError(t, err)
	f.rotations.AssertExpectations(t)
	f.snapshots.AssertExpectations(t)
}

func TestClosePeriodSkipsRebaseOnDuplicateArchive(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 5, 0, time.UTC)
	f := newEngineFixture(now)
	current := domain.NewCounters()

	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodDaily).Return(&domain.RotationBaseline{
		PlayerID: "player-1", PeriodType: domain.PeriodDaily, SnapshotID: "snap-base",
	}, nil)
	f.snapshots.On("Read", mock.Anything, "snap-base").Return(domain.NewCounters(), nil)
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-delta", nil)
	f.history.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrAlreadyArchived)

	err := f.svc.ClosePeriod(context.Background(), "player-1", "daily_2024_06_01", current)
	require.NoError(t, err)

	// the concurrent winner already rebased; doing it again would lose stats
	f.rotations.AssertNotCalled(t, "TouchBaseline", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.snapshots.AssertNotCalled(t, "Overwrite", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatchUpClosesOnlyOverduePeriods(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	current := domain.NewCounters()

	f.rotations.On("GetBaselines", mock.Anything, "player-1").Return([]domain.RotationBaseline{
		// 36h old: daily overdue
		{PlayerID: "player-1", PeriodType: domain.PeriodDaily, SnapshotID: "snap-d", LastReset: now.Add(-36 * time.Hour)},
		// 36h old: weekly not overdue
		{PlayerID: "player-1", PeriodType: domain.PeriodWeekly, SnapshotID: "snap-w", LastReset: now.Add(-36 * time.Hour)},
	}, nil)

	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodDaily).Return(&domain.RotationBaseline{
		PlayerID: "player-1", PeriodType: domain.PeriodDaily, SnapshotID: "snap-d",
	}, nil)
	f.snapshots.On("Read", mock.Anything, "snap-d").Return(domain.NewCounters(), nil)
	f.snapshots.On("Create", mock.Anything, mock.Anything).Return("snap-delta", nil)
	f.history.On("Insert", mock.Anything, mock.MatchedBy(func(rec *domain.HistoricalPeriod) bool {
		return rec.PeriodKey == "daily_2024_06_09"
	})).Return(nil)
	f.rotations.On("TouchBaseline", mock.Anything, "player-1", domain.PeriodDaily, now).Return(nil)
	f.snapshots.On("Overwrite", mock.Anything, "snap-d", current).Return(nil)

	err := f.svc.CatchUp(context.Background(), "player-1", current)
	require.NoError(t, err)

	f.history.AssertExpectations(t)
	f.rotations.AssertNotCalled(t, "GetBaseline", mock.Anything, "player-1", domain.PeriodWeekly)
}

func TestGetPeriodReturnsNilWhenNeverArchived(t *testing.T) {
	f := newEngineFixture(time.Now())
	f.history.On("Get", mock.Anything, "player-1", "monthly_2024_05").Return(nil, nil)

	record, counters, err := f.svc.GetPeriod(context.Background(), "player-1", "monthly_2024_05")
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Nil(t, counters)
}

func TestRefreshIsNoOpWithoutBaseline(t *testing.T) {
	f := newEngineFixture(time.Now())
	f.rotations.On("GetBaseline", mock.Anything, "player-1", domain.PeriodYearly).Return(nil, nil)

	err := f.svc.Refresh(context.Background(), "player-1", domain.PeriodYearly, domain.NewCounters())
	require.NoError(t, err)
	f.snapshots.AssertNotCalled(t, "Overwrite", mock.Anything, mock.Anything, mock.Anything)
}
