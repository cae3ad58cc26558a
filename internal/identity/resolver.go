package identity

import (
	"context"
	"fmt"

	"github.com/osse101/RotationBot_Go/internal/repository"
)

// Resolver maps player game identities to linked platform accounts.
type Resolver interface {
	// ResolveLinkedAccount returns the account linked to a player.
	// linked is false when the player has no account association.
	ResolveLinkedAccount(ctx context.Context, playerID string) (accountID string, linked bool, err error)

	// LinkedPlayers returns every player identity linked to an account.
	LinkedPlayers(ctx context.Context, accountID string) ([]string, error)
}

type resolver struct {
	repo repository.Linking
}

// NewResolver creates an identity resolver backed by the linking store.
func NewResolver(repo repository.Linking) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) ResolveLinkedAccount(ctx context.Context, playerID string) (string, bool, error) {
	accountID, err := r.repo.GetLinkedAccount(ctx, playerID)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve linked account: %w", err)
	}
	return accountID, accountID != "", nil
}

func (r *resolver) LinkedPlayers(ctx context.Context, accountID string) ([]string, error) {
	players, err := r.repo.GetLinkedPlayers(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked players: %w", err)
	}
	return players, nil
}
