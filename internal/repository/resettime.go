package repository

import (
	"context"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// ResetTime defines persistence for the two reset-time override layers
type ResetTime interface {
	// GetAccountResetTime returns the account override, or nil when the
	// account has never configured one.
	GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error)

	// UpsertAccountResetTime creates or replaces the account override
	UpsertAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error

	// DeleteAccountResetTime removes the override; resolution falls back
	// to the player default afterwards.
	DeleteAccountResetTime(ctx context.Context, accountID string) error

	// GetPlayerResetTime returns the player default, or nil when absent
	GetPlayerResetTime(ctx context.Context, playerID string) (*domain.PlayerResetTime, error)

	// CreatePlayerResetTime inserts the player default if none exists.
	// Returns false without error when one is already present, so the
	// lazy create at tracking initialization happens exactly once.
	CreatePlayerResetTime(ctx context.Context, rt domain.PlayerResetTime) (bool, error)
}
