package resettime

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/event"
	"github.com/osse101/RotationBot_Go/internal/identity"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// Resolver resolves the effective reset time for a player
type Resolver interface {
	// Resolve applies the override chain: account setting when the player
	// is linked and the account configured one, then the player default,
	// then UTC midnight.
	Resolve(ctx context.Context, playerID string) (domain.EffectiveResetTime, error)
}

// Service manages reset time configuration and resolution
type Service interface {
	Resolver

	// EnsurePlayerDefault creates the per-player fallback reset time if
	// missing. Seeded from the linked account's configured time when one
	// exists, otherwise a random whole hour at UTC offset 0.
	EnsurePlayerDefault(ctx context.Context, playerID string) error

	// SetAccountResetTime stores or replaces an account's reset time
	SetAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error

	// GetAccountResetTime returns the configured override, nil when unset
	GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error)

	// ClearAccountResetTime removes an account's override
	ClearAccountResetTime(ctx context.Context, accountID string) error
}

type service struct {
	repo      repository.ResetTime
	identity  identity.Resolver
	publisher event.Bus

	// randomHour is replaceable in tests
	randomHour func() int
}

// NewService creates a new reset time service
func NewService(repo repository.ResetTime, identity identity.Resolver, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		identity:  identity,
		publisher: publisher,
		randomHour: func() int {
			return rand.IntN(hoursPerDay)
		},
	}
}

func (s *service) Resolve(ctx context.Context, playerID string) (domain.EffectiveResetTime, error) {
	accountID, linked, err := s.identity.ResolveLinkedAccount(ctx, playerID)
	if err != nil {
		return domain.EffectiveResetTime{}, err
	}

	if linked {
		override, err := s.repo.GetAccountResetTime(ctx, accountID)
		if err != nil {
			return domain.EffectiveResetTime{}, fmt.Errorf("failed to get account reset time: %w", err)
		}
		if override != nil {
			return domain.EffectiveResetTime{
				UTCOffset:   override.UTCOffset,
				ResetHour:   override.ResetHour,
				ResetMinute: override.ResetMinute,
			}, nil
		}
	}

	fallback, err := s.repo.GetPlayerResetTime(ctx, playerID)
	if err != nil {
		return domain.EffectiveResetTime{}, fmt.Errorf("failed to get player reset time: %w", err)
	}
	if fallback != nil {
		return domain.EffectiveResetTime{
			UTCOffset: fallback.UTCOffset,
			ResetHour: fallback.ResetHour,
		}, nil
	}

	// Untracked player: UTC midnight
	return domain.EffectiveResetTime{}, nil
}

func (s *service) EnsurePlayerDefault(ctx context.Context, playerID string) error {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetPlayerResetTime(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to check player reset time: %w", err)
	}
	if existing != nil {
		return nil
	}

	def := domain.PlayerResetTime{
		PlayerID:  playerID,
		UTCOffset: 0,
		ResetHour: s.randomHour(),
	}

	// Seed from the linked account's configured time so the player's
	// resets land where the account owner expects them.
	accountID, linked, err := s.identity.ResolveLinkedAccount(ctx, playerID)
	if err != nil {
		return err
	}
	if linked {
		override, err := s.repo.GetAccountResetTime(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to get account reset time: %w", err)
		}
		if override != nil {
			def.UTCOffset = override.UTCOffset
			def.ResetHour = override.ResetHour
		}
	}

	created, err := s.repo.CreatePlayerResetTime(ctx, def)
	if err != nil {
		return fmt.Errorf("failed to create player reset time: %w", err)
	}
	if created {
		log.Info("Assigned player default reset time",
			"player_id", playerID,
			"utc_offset", def.UTCOffset,
			"reset_hour", def.ResetHour)
	}
	return nil
}

func (s *service) SetAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error {
	if err := validateResetTime(rt); err != nil {
		return err
	}
	if err := s.repo.UpsertAccountResetTime(ctx, rt); err != nil {
		return fmt.Errorf("failed to upsert account reset time: %w", err)
	}

	// Best effort: the new time applies to every linked player on the
	// next resolution, there is nothing to propagate eagerly.
	if players, err := s.identity.LinkedPlayers(ctx, rt.AccountID); err == nil {
		logger.FromContext(ctx).Info("Account reset time updated",
			"account_id", rt.AccountID,
			"utc_offset", rt.UTCOffset,
			"reset_hour", rt.ResetHour,
			"reset_minute", rt.ResetMinute,
			"linked_players", len(players))
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewResetTimeUpdatedEvent(rt)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish reset time update", "error", err)
		}
	}
	return nil
}

func (s *service) GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error) {
	return s.repo.GetAccountResetTime(ctx, accountID)
}

func (s *service) ClearAccountResetTime(ctx context.Context, accountID string) error {
	if err := s.repo.DeleteAccountResetTime(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account reset time: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewResetTimeClearedEvent(accountID)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish reset time clear", "error", err)
		}
	}
	return nil
}

func validateResetTime(rt domain.AccountResetTime) error {
	if rt.UTCOffset < minUTCOffset || rt.UTCOffset > maxUTCOffset {
		return fmt.Errorf("%w: utc_offset %d out of range [%d, %d]",
			domain.ErrInvalidResetTime, rt.UTCOffset, minUTCOffset, maxUTCOffset)
	}
	if rt.ResetHour < 0 || rt.ResetHour >= hoursPerDay {
		return fmt.Errorf("%w: reset_hour %d out of range [0, 23]",
			domain.ErrInvalidResetTime, rt.ResetHour)
	}
	if rt.ResetMinute < 0 || rt.ResetMinute >= minutesPerHour {
		return fmt.Errorf("%w: reset_minute %d out of range [0, 59]",
			domain.ErrInvalidResetTime, rt.ResetMinute)
	}
	return nil
}
