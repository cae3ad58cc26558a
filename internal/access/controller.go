package access

// WildcardPermission grants every permission a player can hold.
const WildcardPermission = "*"

// Config describes the automatic-reset allowlist. Players qualify either by
// explicit ID or by holding one of the configured permissions.
type Config struct {
	// PlayerIDs are always allowed regardless of permissions.
	PlayerIDs []string
	// Permissions that qualify a player for automatic resets.
	Permissions []string
	// Grants maps player IDs to the permissions they hold.
	Grants map[string][]string
}

// Controller answers allowlist queries for the scheduled sweep.
type Controller struct {
	players     map[string]struct{}
	permissions map[string]struct{}
	grants      map[string][]string
}

// NewController builds a controller from static configuration.
func NewController(cfg Config) *Controller {
	c := &Controller{
		players:     make(map[string]struct{}, len(cfg.PlayerIDs)),
		permissions: make(map[string]struct{}, len(cfg.Permissions)),
		grants:      cfg.Grants,
	}
	for _, id := range cfg.PlayerIDs {
		c.players[id] = struct{}{}
	}
	for _, perm := range cfg.Permissions {
		c.permissions[perm] = struct{}{}
	}
	return c
}

// IsOnAutoResetAllowlist reports whether the sweep may reset the player
// without the player having asked for it.
func (c *Controller) IsOnAutoResetAllowlist(playerID string) bool {
	if _, ok := c.players[playerID]; ok {
		return true
	}
	for _, perm := range c.grants[playerID] {
		if perm == WildcardPermission {
			return true
		}
		if _, ok := c.permissions[perm]; ok {
			return true
		}
	}
	return false
}
