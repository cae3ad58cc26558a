package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// HistoryRepository implements the historical period repository for PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) repository.History {
	return &HistoryRepository{db: db}
}

// Insert writes a historical record. A unique violation on
// (player_id, period_key) surfaces as domain.ErrAlreadyArchived.
func (r *HistoryRepository) Insert(ctx context.Context, record *domain.HistoricalPeriod) error {
	query := `
		INSERT INTO historical_periods (player_id, period_key, level, snapshot_id, archived_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	archivedAt := record.ArchivedAt
	if archivedAt.IsZero() {
		archivedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, query,
		record.PlayerID,
		record.PeriodKey,
		record.Level,
		record.SnapshotID,
		archivedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyArchived, record.PeriodKey)
		}
		return fmt.Errorf("failed to insert historical period: %w", err)
	}

	record.ArchivedAt = archivedAt
	return nil
}

// Get returns one record, or nil when the period was never archived
func (r *HistoryRepository) Get(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, error) {
	query := `
		SELECT player_id, period_key, level, snapshot_id, archived_at
		FROM historical_periods
		WHERE player_id = $1 AND period_key = $2
	`
	var record domain.HistoricalPeriod
	err := r.db.QueryRow(ctx, query, playerID, periodKey).Scan(
		&record.PlayerID,
		&record.PeriodKey,
		&record.Level,
		&record.SnapshotID,
		&record.ArchivedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query historical period: %w", err)
	}
	return &record, nil
}

// List returns a player's records of one period type archived at or after
// since, newest first. Period keys are prefixed with their type, so a
// prefix match selects the type without parsing the calendar bucket.
func (r *HistoryRepository) List(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error) {
	query := `
		SELECT player_id, period_key, level, snapshot_id, archived_at
		FROM historical_periods
		WHERE player_id = $1
		  AND period_key LIKE $2
		  AND archived_at >= $3
		ORDER BY archived_at DESC
	`
	rows, err := r.db.Query(ctx, query, playerID, string(periodType)+"\\_%", since)
	if err != nil {
		return nil, fmt.Errorf("failed to query historical periods: %w", err)
	}
	defer rows.Close()

	var records []domain.HistoricalPeriod
	for rows.Next() {
		var record domain.HistoricalPeriod
		if err := rows.Scan(&record.PlayerID, &record.PeriodKey, &record.Level, &record.SnapshotID, &record.ArchivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan historical period: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return records, nil
}
