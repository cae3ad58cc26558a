package repository

import "context"

// Linking defines read access to player-to-account identity links.
// Link provisioning lives in the identity system; this core only resolves.
type Linking interface {
	// GetLinkedAccount returns the account id linked to a player, or ""
	// when the player is not identity-linked.
	GetLinkedAccount(ctx context.Context, playerID string) (string, error)

	// GetLinkedPlayers returns all player ids linked to an account
	GetLinkedPlayers(ctx context.Context, accountID string) ([]string, error)
}
