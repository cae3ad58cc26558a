package rotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/event"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/metrics"
	"github.com/osse101/RotationBot_Go/internal/repository"
	"github.com/osse101/RotationBot_Go/internal/resettime"
)

// Service is the rotational reset engine. It owns the archive-then-rebase
// lifecycle of every period type for every tracked player.
type Service interface {
	// Initialize starts rotational tracking for a player: assigns the
	// player default reset time and opens one baseline per period type,
	// each seeded with an independent snapshot of the current lifetime
	// counters. Calling it for an already-tracked player is a no-op.
	Initialize(ctx context.Context, playerID string, current domain.Counters) error

	// Archive closes one period: computes the delta between the current
	// counters and the period's baseline, stores it as an immutable
	// historical record, and returns the delta snapshot id. Returns
	// domain.ErrAlreadyArchived when the period key was archived before.
	Archive(ctx context.Context, playerID, periodKey string, current domain.Counters) (string, error)

	// Refresh rebases the open baseline onto the current counters and
	// stamps last_reset. A missing baseline is a no-op.
	Refresh(ctx context.Context, playerID string, periodType domain.PeriodType, current domain.Counters) error

	// ClosePeriod archives then refreshes. A duplicate archive means a
	// concurrent trigger already completed the close, so the rebase is
	// skipped and nil is returned.
	ClosePeriod(ctx context.Context, playerID, periodKey string, current domain.Counters) error

	// CatchUp closes the most recently elapsed period for every period
	// type whose baseline has been open longer than one full period.
	CatchUp(ctx context.Context, playerID string, current domain.Counters) error

	// CurrentDeltas returns the in-progress gains for every open period
	// type: current counters minus each baseline snapshot.
	CurrentDeltas(ctx context.Context, playerID string, current domain.Counters) (map[domain.PeriodType]domain.Counters, error)

	// GetPeriod returns one archived record together with its delta counters
	GetPeriod(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, domain.Counters, error)

	// ListPeriods returns a player's archived records of one period type
	// no older than since, newest first.
	ListPeriods(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error)
}

type service struct {
	snapshots  repository.Snapshot
	rotations  repository.Rotation
	history    repository.History
	resetTimes resettime.Service
	publisher  event.Bus

	// now is replaceable in tests
	now func() time.Time
}

// NewService creates a new rotation engine
func NewService(
	snapshots repository.Snapshot,
	rotations repository.Rotation,
	history repository.History,
	resetTimes resettime.Service,
	publisher event.Bus,
) Service {
	return &service{
		snapshots:  snapshots,
		rotations:  rotations,
		history:    history,
		resetTimes: resetTimes,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *service) Initialize(ctx context.Context, playerID string, current domain.Counters) error {
	log := logger.FromContext(ctx)

	if err := s.resetTimes.EnsurePlayerDefault(ctx, playerID); err != nil {
		return fmt.Errorf("failed to ensure player reset time: %w", err)
	}

	now := s.now().UTC()
	opened := 0
	for _, periodType := range domain.PeriodTypes {
		existing, err := s.rotations.GetBaseline(ctx, playerID, periodType)
		if err != nil {
			return fmt.Errorf("failed to check baseline: %w", err)
		}
		if existing != nil {
			continue
		}

		// Each baseline owns its snapshot exclusively, so every period
		// type gets its own copy of the current counters.
		snapshotID, err := s.snapshots.Create(ctx, current.Clone())
		if err != nil {
			return fmt.Errorf("failed to create baseline snapshot: %w", err)
		}

		created, err := s.rotations.CreateBaseline(ctx, playerID, periodType, snapshotID, now)
		if err != nil {
			return fmt.Errorf("failed to create baseline: %w", err)
		}
		if !created {
			// Lost a race with a concurrent Initialize; the snapshot
			// just created is orphaned but harmless.
			log.Debug("Baseline created concurrently",
				"player_id", playerID,
				"period_type", periodType)
			continue
		}
		opened++
	}

	if opened == 0 {
		log.Debug("Tracking already initialized", "player_id", playerID)
		return nil
	}

	metrics.TrackingInitialized.Inc()
	log.Info("Rotational tracking initialized",
		"player_id", playerID,
		"baselines_opened", opened)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewTrackingInitializedEvent(playerID)); err != nil {
			log.Warn("Failed to publish tracking initialized event", "error", err)
		}
	}
	return nil
}

func (s *service) Archive(ctx context.Context, playerID, periodKey string, current domain.Counters) (string, error) {
	periodType, err := domain.PeriodTypeOfKey(periodKey)
	if err != nil {
		return "", err
	}

	baseline, err := s.rotations.GetBaseline(ctx, playerID, periodType)
	if err != nil {
		return "", fmt.Errorf("failed to get baseline: %w", err)
	}
	if baseline == nil {
		return "", fmt.Errorf("%w: player %s has no %s baseline",
			domain.ErrTrackingNotInitialized, playerID, periodType)
	}

	base, err := s.snapshots.Read(ctx, baseline.SnapshotID)
	if err != nil {
		return "", fmt.Errorf("failed to read baseline snapshot: %w", err)
	}

	delta := current.Diff(base)
	level := domain.LevelFromExperience(base[domain.KeyExperience])

	deltaSnapshotID, err := s.snapshots.Create(ctx, delta)
	if err != nil {
		return "", fmt.Errorf("failed to create delta snapshot: %w", err)
	}

	record := &domain.HistoricalPeriod{
		PlayerID:   playerID,
		PeriodKey:  periodKey,
		Level:      level,
		SnapshotID: deltaSnapshotID,
		ArchivedAt: s.now().UTC(),
	}
	if err := s.history.Insert(ctx, record); err != nil {
		// A duplicate leaves the delta snapshot orphaned; callers treat
		// ErrAlreadyArchived as "someone else finished first".
		return "", err
	}

	if s.publisher != nil {
		evt := event.NewPeriodClosedEvent(playerID, periodKey, periodType, level, deltaSnapshotID)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish period closed event", "error", err)
		}
	}
	return deltaSnapshotID, nil
}

func (s *service) Refresh(ctx context.Context, playerID string, periodType domain.PeriodType, current domain.Counters) error {
	baseline, err := s.rotations.GetBaseline(ctx, playerID, periodType)
	if err != nil {
		return fmt.Errorf("failed to get baseline: %w", err)
	}
	if baseline == nil {
		return nil
	}

	if err := s.rotations.TouchBaseline(ctx, playerID, periodType, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to touch baseline: %w", err)
	}
	if err := s.snapshots.Overwrite(ctx, baseline.SnapshotID, current); err != nil {
		return fmt.Errorf("failed to overwrite baseline snapshot: %w", err)
	}
	return nil
}

func (s *service) ClosePeriod(ctx context.Context, playerID, periodKey string, current domain.Counters) error {
	log := logger.FromContext(ctx)

	periodType, err := domain.PeriodTypeOfKey(periodKey)
	if err != nil {
		return err
	}

	_, err = s.Archive(ctx, playerID, periodKey, current)
	if errors.Is(err, domain.ErrAlreadyArchived) {
		metrics.DuplicateArchives.WithLabelValues(string(periodType)).Inc()
		log.Debug("Period already archived, skipping rebase",
			"player_id", playerID,
			"period_key", periodKey)
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.Refresh(ctx, playerID, periodType, current); err != nil {
		return err
	}

	metrics.PeriodsClosed.WithLabelValues(string(periodType)).Inc()
	log.Info("Period closed",
		"player_id", playerID,
		"period_key", periodKey)
	return nil
}

func (s *service) CatchUp(ctx context.Context, playerID string, current domain.Counters) error {
	log := logger.FromContext(ctx)

	baselines, err := s.rotations.GetBaselines(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get baselines: %w", err)
	}

	now := s.now().UTC()
	for _, baseline := range baselines {
		if !baseline.PeriodType.CatchUpDue(baseline.LastReset, now) {
			continue
		}
		periodKey := baseline.PeriodType.PreviousKey(now)
		if err := s.ClosePeriod(ctx, playerID, periodKey, current); err != nil {
			log.Error("Catch-up close failed",
				"player_id", playerID,
				"period_key", periodKey,
				"error", err)
		}
	}
	return nil
}

func (s *service) CurrentDeltas(ctx context.Context, playerID string, current domain.Counters) (map[domain.PeriodType]domain.Counters, error) {
	baselines, err := s.rotations.GetBaselines(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get baselines: %w", err)
	}

	deltas := make(map[domain.PeriodType]domain.Counters, len(baselines))
	for _, baseline := range baselines {
		base, err := s.snapshots.Read(ctx, baseline.SnapshotID)
		if err != nil {
			return nil, fmt.Errorf("failed to read baseline snapshot: %w", err)
		}
		deltas[baseline.PeriodType] = current.Diff(base)
	}
	return deltas, nil
}

func (s *service) GetPeriod(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, domain.Counters, error) {
	if _, err := domain.PeriodTypeOfKey(periodKey); err != nil {
		return nil, nil, err
	}

	record, err := s.history.Get(ctx, playerID, periodKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get historical period: %w", err)
	}
	if record == nil {
		return nil, nil, nil
	}

	counters, err := s.snapshots.Read(ctx, record.SnapshotID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read period snapshot: %w", err)
	}
	return record, counters, nil
}

func (s *service) ListPeriods(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error) {
	if !periodType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInput, periodType)
	}
	records, err := s.history.List(ctx, playerID, periodType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list historical periods: %w", err)
	}
	return records, nil
}
