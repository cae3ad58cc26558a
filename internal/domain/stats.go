package domain

import "time"

// StatKey identifies one tracked lifetime counter
type StatKey string

// KeyExperience is the only mode-independent tracked counter
const KeyExperience StatKey = "experience"

// Mode represents a game mode whose counters are tracked per-mode
type Mode string

const (
	ModeOverall Mode = "overall"
	ModeSolo    Mode = "solo"
	ModeDoubles Mode = "doubles"
	ModeThrees  Mode = "threes"
	ModeFours   Mode = "fours"
)

// Modes lists all tracked game modes
var Modes = []Mode{ModeOverall, ModeSolo, ModeDoubles, ModeThrees, ModeFours}

// Per-mode counter suffixes
const (
	StatWins           = "wins"
	StatLosses         = "losses"
	StatKills          = "kills"
	StatDeaths         = "deaths"
	StatFinalKills     = "final_kills"
	StatFinalDeaths    = "final_deaths"
	StatBedsBroken     = "beds_broken"
	StatBedsLost       = "beds_lost"
	StatItemsPurchased = "items_purchased"
)

// modeStats lists the counters tracked for every mode
var modeStats = []string{
	StatWins, StatLosses,
	StatKills, StatDeaths,
	StatFinalKills, StatFinalDeaths,
	StatBedsBroken, StatBedsLost,
	StatItemsPurchased,
}

// ModeKey builds the snapshot key for a per-mode counter, e.g. "solo_wins"
func ModeKey(mode Mode, stat string) StatKey {
	return StatKey(string(mode) + "_" + stat)
}

// TrackedKeys is the fixed, closed set of counters a snapshot holds.
// Every snapshot carries a value for every key; absent upstream values are 0.
var TrackedKeys = buildTrackedKeys()

func buildTrackedKeys() []StatKey {
	keys := []StatKey{KeyExperience}
	for _, mode := range Modes {
		for _, stat := range modeStats {
			keys = append(keys, ModeKey(mode, stat))
		}
	}
	return keys
}

// Counters is a full mapping of tracked keys to lifetime (or delta) values
type Counters map[StatKey]int64

// NewCounters returns a zero-valued counter set covering every tracked key
func NewCounters() Counters {
	c := make(Counters, len(TrackedKeys))
	for _, k := range TrackedKeys {
		c[k] = 0
	}
	return c
}

// Clone returns an independent copy of the counter set
func (c Counters) Clone() Counters {
	out := make(Counters, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Diff computes c - other for every tracked key.
// Keys missing on either side are treated as 0.
func (c Counters) Diff(other Counters) Counters {
	delta := make(Counters, len(TrackedKeys))
	for _, k := range TrackedKeys {
		delta[k] = c[k] - other[k]
	}
	return delta
}

// Snapshot is a persisted lifetime counter set, identified by an opaque id.
// Snapshots are immutable by convention: only the rotation baseline that
// exclusively owns a snapshot may overwrite it (on rebase).
type Snapshot struct {
	ID        string    `json:"snapshot_id"`
	Counters  Counters  `json:"counters"`
	CreatedAt time.Time `json:"created_at"`
}
