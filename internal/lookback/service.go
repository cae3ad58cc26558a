package lookback

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RotationBot_Go/internal/repository"
)

const (
	// DefaultLookbackDays is the history window for accounts without an
	// active subscription, and for players with no linked account.
	DefaultLookbackDays = 30

	// DefaultCacheTTL bounds how stale a tier lookup may be
	DefaultCacheTTL = 5 * time.Minute
)

// Service answers how far back an account may browse archived periods
type Service interface {
	// MaxLookbackDays returns the widest lookback window among the given
	// accounts. unlimited is true when any tier grants unbounded history,
	// in which case days is meaningless.
	MaxLookbackDays(ctx context.Context, accountIDs []string) (days int, unlimited bool, err error)

	// Since converts the resolved window into the earliest archive
	// timestamp the caller may see.
	Since(ctx context.Context, accountIDs []string, now time.Time) (time.Time, error)
}

type service struct {
	repo  repository.Subscription
	cache *TierCache
}

// NewService creates a new lookback service
func NewService(repo repository.Subscription) Service {
	return &service{
		repo:  repo,
		cache: NewTierCache(DefaultCacheTTL),
	}
}

func (s *service) MaxLookbackDays(ctx context.Context, accountIDs []string) (int, bool, error) {
	days := DefaultLookbackDays
	for _, accountID := range accountIDs {
		tierDays, err := s.tierLookback(ctx, accountID)
		if err != nil {
			return 0, false, err
		}
		if tierDays < 0 {
			return 0, true, nil
		}
		if tierDays > days {
			days = tierDays
		}
	}
	return days, false, nil
}

func (s *service) Since(ctx context.Context, accountIDs []string, now time.Time) (time.Time, error) {
	days, unlimited, err := s.MaxLookbackDays(ctx, accountIDs)
	if err != nil {
		return time.Time{}, err
	}
	if unlimited {
		return time.Time{}, nil
	}
	return now.UTC().AddDate(0, 0, -days), nil
}

func (s *service) tierLookback(ctx context.Context, accountID string) (int, error) {
	if cached, ok := s.cache.Get(accountID); ok {
		if !cached.HasTier {
			return DefaultLookbackDays, nil
		}
		return cached.LookbackDays, nil
	}

	tier, err := s.repo.GetAccountTier(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account tier: %w", err)
	}
	if tier == nil {
		s.cache.Set(accountID, CachedTier{HasTier: false})
		return DefaultLookbackDays, nil
	}

	s.cache.Set(accountID, CachedTier{
		HasTier:      true,
		TierName:     tier.TierName,
		TierLevel:    tier.TierLevel,
		LookbackDays: tier.LookbackDays,
	})
	return tier.LookbackDays, nil
}
