package repository

import (
	"context"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// History defines persistence for closed, immutable period records
type History interface {
	// Insert writes a historical record. The (player, period key)
	// uniqueness constraint is the sole concurrency-correctness
	// mechanism for resets: a violation surfaces as
	// domain.ErrAlreadyArchived and callers must skip the rebase.
	Insert(ctx context.Context, record *domain.HistoricalPeriod) error

	// Get returns one record, or nil when the period was never archived
	Get(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, error)

	// List returns a player's records of one period type archived at or
	// after since, newest first.
	List(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error)
}
