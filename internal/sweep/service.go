package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/metrics"
	"github.com/osse101/RotationBot_Go/internal/provider"
	"github.com/osse101/RotationBot_Go/internal/repository"
	"github.com/osse101/RotationBot_Go/internal/resettime"
	"github.com/osse101/RotationBot_Go/internal/rotation"
)

// AccessController gates which players the sweep may reset unprompted
type AccessController interface {
	IsOnAutoResetAllowlist(playerID string) bool
}

// Service runs the periodic bulk reset pass
type Service interface {
	// Tick resolves every player whose reset time matches the current
	// minute and closes their due periods. Individual player failures
	// are logged and skipped; only the bulk query itself can fail a tick.
	Tick(ctx context.Context) error
}

type service struct {
	rotations repository.Rotation
	engine    rotation.Service
	resolver  resettime.Resolver
	access    AccessController
	fetcher   provider.Client
	pace      time.Duration

	// replaceable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewService creates a new sweep service
func NewService(
	rotations repository.Rotation,
	engine rotation.Service,
	resolver resettime.Resolver,
	access AccessController,
	fetcher provider.Client,
	pace time.Duration,
) Service {
	return &service{
		rotations: rotations,
		engine:    engine,
		resolver:  resolver,
		access:    access,
		fetcher:   fetcher,
		pace:      pace,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

func (s *service) Tick(ctx context.Context) error {
	log := logger.FromContext(ctx)

	fraction := domain.UTCFraction(s.now())
	candidates, err := s.rotations.ListDuePlayers(ctx, fraction)
	if err != nil {
		metrics.SweepTickErrors.Inc()
		return fmt.Errorf("failed to list due players: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	metrics.SweepCandidates.Add(float64(len(candidates)))
	log.Info("Sweep tick started",
		"fraction", fraction,
		"candidates", len(candidates))

	for _, playerID := range candidates {
		if !s.access.IsOnAutoResetAllowlist(playerID) {
			metrics.SweepSkips.WithLabelValues(metrics.SkipReasonNotAllowed).Inc()
			log.Debug("Skipping candidate outside allowlist", "player_id", playerID)
			continue
		}

		start := s.now()
		counters, err := s.fetcher.FetchStats(ctx, playerID)
		if err != nil {
			metrics.SweepSkips.WithLabelValues(metrics.SkipReasonFetchFailed).Inc()
			log.Warn("Skipping candidate, stats fetch failed",
				"player_id", playerID,
				"error", err)
			s.throttle(start)
			continue
		}

		s.resetPlayer(ctx, playerID, counters)
		s.throttle(start)
	}
	return nil
}

// resetPlayer closes every period type due at the player's local date.
// The daily period is always due when the sweep selected the player.
func (s *service) resetPlayer(ctx context.Context, playerID string, counters domain.Counters) {
	log := logger.FromContext(ctx)

	resetTime, err := s.resolver.Resolve(ctx, playerID)
	if err != nil {
		log.Error("Failed to resolve reset time", "player_id", playerID, "error", err)
		return
	}
	local := s.now().In(resetTime.Location())

	for _, periodType := range domain.PeriodTypes {
		if !periodType.DueAtLocalDate(local) {
			continue
		}
		periodKey := periodType.PreviousKey(local)
		if err := s.engine.ClosePeriod(ctx, playerID, periodKey, counters); err != nil {
			if errors.Is(err, domain.ErrTrackingNotInitialized) {
				log.Warn("Due player has no baseline",
					"player_id", playerID,
					"period_type", periodType)
				return
			}
			log.Error("Failed to close period",
				"player_id", playerID,
				"period_key", periodKey,
				"error", err)
		}
	}
}

// throttle keeps at least pace between consecutive upstream fetches
func (s *service) throttle(start time.Time) {
	if remaining := s.pace - s.now().Sub(start); remaining > 0 {
		s.sleep(remaining)
	}
}
