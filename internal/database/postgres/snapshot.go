package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// SnapshotRepository implements the snapshot repository for PostgreSQL
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) repository.Snapshot {
	return &SnapshotRepository{db: db}
}

// Create persists a new snapshot and returns its generated id
func (r *SnapshotRepository) Create(ctx context.Context, counters domain.Counters) (string, error) {
	payload, err := json.Marshal(counters)
	if err != nil {
		return "", fmt.Errorf("failed to marshal counters: %w", err)
	}

	query := `
		INSERT INTO snapshots (counters)
		VALUES ($1)
		RETURNING snapshot_id
	`
	var snapshotID string
	if err := r.db.QueryRow(ctx, query, payload).Scan(&snapshotID); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return snapshotID, nil
}

// Read loads a snapshot's counters
func (r *SnapshotRepository) Read(ctx context.Context, snapshotID string) (domain.Counters, error) {
	query := `SELECT counters FROM snapshots WHERE snapshot_id = $1`

	var payload []byte
	err := r.db.QueryRow(ctx, query, snapshotID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, snapshotID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	counters := domain.NewCounters()
	if err := json.Unmarshal(payload, &counters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal counters: %w", err)
	}
	return counters, nil
}

// Overwrite replaces a snapshot's counters in place
func (r *SnapshotRepository) Overwrite(ctx context.Context, snapshotID string, counters domain.Counters) error {
	payload, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("failed to marshal counters: %w", err)
	}

	query := `UPDATE snapshots SET counters = $2 WHERE snapshot_id = $1`
	tag, err := r.db.Exec(ctx, query, snapshotID, payload)
	if err != nil {
		return fmt.Errorf("failed to overwrite snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, snapshotID)
	}
	return nil
}
