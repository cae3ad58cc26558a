package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// ResetTimeRepository implements the reset time repository for PostgreSQL
type ResetTimeRepository struct {
	db *pgxpool.Pool
}

// NewResetTimeRepository creates a new ResetTimeRepository
func NewResetTimeRepository(db *pgxpool.Pool) repository.ResetTime {
	return &ResetTimeRepository{db: db}
}

// GetAccountResetTime returns the account override, or nil when absent
func (r *ResetTimeRepository) GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error) {
	query := `
		SELECT account_id, utc_offset, reset_hour, reset_minute
		FROM account_reset_times
		WHERE account_id = $1
	`
	var rt domain.AccountResetTime
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&rt.AccountID,
		&rt.UTCOffset,
		&rt.ResetHour,
		&rt.ResetMinute,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account reset time: %w", err)
	}
	return &rt, nil
}

// UpsertAccountResetTime creates or replaces the account override
func (r *ResetTimeRepository) UpsertAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error {
	query := `
		INSERT INTO account_reset_times (account_id, utc_offset, reset_hour, reset_minute, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (account_id) DO UPDATE
		SET utc_offset = EXCLUDED.utc_offset,
		    reset_hour = EXCLUDED.reset_hour,
		    reset_minute = EXCLUDED.reset_minute,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, rt.AccountID, rt.UTCOffset, rt.ResetHour, rt.ResetMinute)
	if err != nil {
		return fmt.Errorf("failed to upsert account reset time: %w", err)
	}
	return nil
}

// DeleteAccountResetTime removes the account override
func (r *ResetTimeRepository) DeleteAccountResetTime(ctx context.Context, accountID string) error {
	query := `DELETE FROM account_reset_times WHERE account_id = $1`
	if _, err := r.db.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to delete account reset time: %w", err)
	}
	return nil
}

// GetPlayerResetTime returns the player default, or nil when absent
func (r *ResetTimeRepository) GetPlayerResetTime(ctx context.Context, playerID string) (*domain.PlayerResetTime, error) {
	query := `
		SELECT player_id, utc_offset, reset_hour
		FROM player_reset_times
		WHERE player_id = $1
	`
	var rt domain.PlayerResetTime
	err := r.db.QueryRow(ctx, query, playerID).Scan(&rt.PlayerID, &rt.UTCOffset, &rt.ResetHour)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query player reset time: %w", err)
	}
	return &rt, nil
}

// CreatePlayerResetTime inserts the player default if none exists
func (r *ResetTimeRepository) CreatePlayerResetTime(ctx context.Context, rt domain.PlayerResetTime) (bool, error) {
	query := `
		INSERT INTO player_reset_times (player_id, utc_offset, reset_hour)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, rt.PlayerID, rt.UTCOffset, rt.ResetHour)
	if err != nil {
		return false, fmt.Errorf("failed to insert player reset time: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
