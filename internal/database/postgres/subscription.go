package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/repository"
)

// SubscriptionRepository implements subscription tier lookups for PostgreSQL
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) repository.Subscription {
	return &SubscriptionRepository{db: db}
}

// GetAccountTier returns the active tier for an account, or nil when the
// account has no unexpired subscription.
func (r *SubscriptionRepository) GetAccountTier(ctx context.Context, accountID string) (*repository.SubscriptionTier, error) {
	query := `
		SELECT st.tier_name, st.tier_level, COALESCE(st.lookback_days, -1)
		FROM account_subscriptions asub
		JOIN subscription_tiers st ON st.tier_id = asub.tier_id
		WHERE asub.account_id = $1
		  AND (asub.expires_at IS NULL OR asub.expires_at > NOW())
	`
	var tier repository.SubscriptionTier
	err := r.db.QueryRow(ctx, query, accountID).Scan(&tier.TierName, &tier.TierLevel, &tier.LookbackDays)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription tier: %w", err)
	}
	return &tier, nil
}
