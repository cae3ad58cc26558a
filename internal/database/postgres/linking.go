package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/repository"
)

// LinkingRepository implements read access to identity links for PostgreSQL
type LinkingRepository struct {
	db *pgxpool.Pool
}

// NewLinkingRepository creates a new LinkingRepository
func NewLinkingRepository(db *pgxpool.Pool) repository.Linking {
	return &LinkingRepository{db: db}
}

// GetLinkedAccount returns the account linked to a player, or "" when unlinked
func (r *LinkingRepository) GetLinkedAccount(ctx context.Context, playerID string) (string, error) {
	query := `SELECT account_id FROM account_links WHERE player_id = $1`

	var accountID string
	err := r.db.QueryRow(ctx, query, playerID).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query account link: %w", err)
	}
	return accountID, nil
}

// GetLinkedPlayers returns all player ids linked to an account
func (r *LinkingRepository) GetLinkedPlayers(ctx context.Context, accountID string) ([]string, error) {
	query := `SELECT player_id FROM account_links WHERE account_id = $1 ORDER BY linked_at`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account links: %w", err)
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
