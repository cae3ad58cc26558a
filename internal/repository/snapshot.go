package repository

import (
	"context"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// Snapshot defines persistence for lifetime counter sets.
// There is intentionally no delete: snapshots are owned by exactly one
// baseline or historical record for their whole lifetime.
type Snapshot interface {
	// Create persists a new snapshot and returns its id
	Create(ctx context.Context, counters domain.Counters) (string, error)

	// Read loads a snapshot's counters. A missing id is a data-integrity
	// fault and surfaces domain.ErrSnapshotNotFound.
	Read(ctx context.Context, snapshotID string) (domain.Counters, error)

	// Overwrite replaces every tracked key of an existing snapshot in
	// place. Used only by the rebase path, never by archival.
	Overwrite(ctx context.Context, snapshotID string, counters domain.Counters) error
}
