package repository

import (
	"context"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// Rotation defines persistence for open rotation baselines
type Rotation interface {
	// CreateBaseline inserts a baseline row. Returns false without error
	// when a baseline for (player, period type) already exists.
	CreateBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, snapshotID string, lastReset time.Time) (bool, error)

	// GetBaseline returns the baseline for (player, period type), or nil
	// when the player has never been initialized for that period type.
	GetBaseline(ctx context.Context, playerID string, periodType domain.PeriodType) (*domain.RotationBaseline, error)

	// GetBaselines returns all baselines for a player
	GetBaselines(ctx context.Context, playerID string) ([]domain.RotationBaseline, error)

	// TouchBaseline updates last_reset for (player, period type)
	TouchBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, lastReset time.Time) error

	// ListDuePlayers returns the distinct tracked players whose effective
	// reset-time fraction equals the given UTC fraction. The query applies
	// the same account-override-then-player-default priority as the
	// single-player resolver, batched over every tracked player.
	ListDuePlayers(ctx context.Context, fraction float64) ([]string, error)
}
