package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// RotationRepository implements the rotation baseline repository for PostgreSQL
type RotationRepository struct {
	db *pgxpool.Pool
}

// NewRotationRepository creates a new RotationRepository
func NewRotationRepository(db *pgxpool.Pool) repository.Rotation {
	return &RotationRepository{db: db}
}

// CreateBaseline inserts a baseline row, reporting whether a row was created
func (r *RotationRepository) CreateBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, snapshotID string, lastReset time.Time) (bool, error) {
	query := `
		INSERT INTO rotation_baselines (player_id, period_type, snapshot_id, last_reset)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, period_type) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, playerID, string(periodType), snapshotID, lastReset)
	if err != nil {
		return false, fmt.Errorf("failed to insert baseline: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetBaseline returns the baseline for (player, period type), or nil if absent
func (r *RotationRepository) GetBaseline(ctx context.Context, playerID string, periodType domain.PeriodType) (*domain.RotationBaseline, error) {
	query := `
		SELECT player_id, period_type, snapshot_id, last_reset
		FROM rotation_baselines
		WHERE player_id = $1 AND period_type = $2
	`
	var baseline domain.RotationBaseline
	err := r.db.QueryRow(ctx, query, playerID, string(periodType)).Scan(
		&baseline.PlayerID,
		&baseline.PeriodType,
		&baseline.SnapshotID,
		&baseline.LastReset,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query baseline: %w", err)
	}
	return &baseline, nil
}

// GetBaselines returns all baselines for a player
func (r *RotationRepository) GetBaselines(ctx context.Context, playerID string) ([]domain.RotationBaseline, error) {
	query := `
		SELECT player_id, period_type, snapshot_id, last_reset
		FROM rotation_baselines
		WHERE player_id = $1
		ORDER BY period_type
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query baselines: %w", err)
	}
	defer rows.Close()

	var baselines []domain.RotationBaseline
	for rows.Next() {
		var baseline domain.RotationBaseline
		if err := rows.Scan(&baseline.PlayerID, &baseline.PeriodType, &baseline.SnapshotID, &baseline.LastReset); err != nil {
			return nil, fmt.Errorf("failed to scan baseline: %w", err)
		}
		baselines = append(baselines, baseline)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return baselines, nil
}

// TouchBaseline updates last_reset for (player, period type)
func (r *RotationRepository) TouchBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, lastReset time.Time) error {
	query := `
		UPDATE rotation_baselines
		SET last_reset = $3
		WHERE player_id = $1 AND period_type = $2
	`
	_, err := r.db.Exec(ctx, query, playerID, string(periodType), lastReset)
	if err != nil {
		return fmt.Errorf("failed to touch baseline: %w", err)
	}
	return nil
}

// ListDuePlayers returns the distinct tracked players whose effective reset
// fraction matches the given UTC fraction. COALESCE implements the
// account-override-then-player-default priority; accounts without any
// configured time fall through to fraction 0 (UTC midnight). The arithmetic
// mirrors domain.ResetFraction exactly, including rounding.
func (r *RotationRepository) ListDuePlayers(ctx context.Context, fraction float64) ([]string, error) {
	query := `
		SELECT DISTINCT rb.player_id
		FROM rotation_baselines rb
		LEFT JOIN account_links al ON al.player_id = rb.player_id
		LEFT JOIN account_reset_times art ON art.account_id = al.account_id
		LEFT JOIN player_reset_times prt ON prt.player_id = rb.player_id
		WHERE ROUND(
			MOD(MOD(
				COALESCE(art.reset_hour, prt.reset_hour, 0)::numeric
				- COALESCE(art.utc_offset, prt.utc_offset, 0)::numeric
				+ COALESCE(art.reset_minute, 0)::numeric / 60,
			24) + 24, 24),
		3) = $1::numeric
	`
	rows, err := r.db.Query(ctx, query, fraction)
	if err != nil {
		return nil, fmt.Errorf("failed to query due players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var playerID string
		if err := rows.Scan(&playerID); err != nil {
			return nil, fmt.Errorf("failed to scan player id: %w", err)
		}
		players = append(players, playerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return players, nil
}
