package repository

import "context"

// SubscriptionTier describes an account's subscription tier as it affects
// history lookups. LookbackDays < 0 means unlimited.
type SubscriptionTier struct {
	TierName     string
	TierLevel    int
	LookbackDays int
}

// Subscription defines read access to account subscription tiers
type Subscription interface {
	// GetAccountTier returns the active tier for an account, or nil when
	// the account has no active subscription.
	GetAccountTier(ctx context.Context, accountID string) (*SubscriptionTier, error)
}
