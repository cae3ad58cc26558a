package domain

import (
	"fmt"
	"math"
	"time"
)

// RotationBaseline is the open, currently-accumulating rotation for one
// (player, period type). It exclusively owns its snapshot: the snapshot is
// overwritten in place on every rebase and is never shared with archives.
type RotationBaseline struct {
	PlayerID   string     `json:"player_id"`
	PeriodType PeriodType `json:"period_type"`
	SnapshotID string     `json:"snapshot_id"`
	LastReset  time.Time  `json:"last_reset"`
}

// HistoricalPeriod is one closed calendar bucket for one player. The
// referenced snapshot holds the delta gained during the period and is
// immutable once written.
type HistoricalPeriod struct {
	PlayerID   string    `json:"player_id"`
	PeriodKey  string    `json:"period_key"`
	Level      int       `json:"level"`
	SnapshotID string    `json:"snapshot_id"`
	ArchivedAt time.Time `json:"archived_at"`
}

// AccountResetTime is the user-configured reset time for an identity-linked
// account. It takes priority over the per-player default.
type AccountResetTime struct {
	AccountID   string `json:"account_id"`
	UTCOffset   int    `json:"utc_offset"`
	ResetHour   int    `json:"reset_hour"`
	ResetMinute int    `json:"reset_minute"`
}

// PlayerResetTime is the auto-assigned fallback reset time, created the
// first time tracking is initialized for a player.
type PlayerResetTime struct {
	PlayerID  string `json:"player_id"`
	UTCOffset int    `json:"utc_offset"`
	ResetHour int    `json:"reset_hour"`
}

// EffectiveResetTime is the resolved reset time for a player: account
// override if linked and configured, else player default, else UTC midnight.
type EffectiveResetTime struct {
	UTCOffset   int `json:"utc_offset"`
	ResetHour   int `json:"reset_hour"`
	ResetMinute int `json:"reset_minute"`
}

// Location returns the fixed zone implied by the UTC offset
func (e EffectiveResetTime) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", e.UTCOffset), e.UTCOffset*3600)
}

// Fraction returns the UTC time-of-day fraction at which this reset time
// fires, via ResetFraction.
func (e EffectiveResetTime) Fraction() float64 {
	return ResetFraction(e.UTCOffset, e.ResetHour, e.ResetMinute)
}

// FractionPrecision is the rounding precision (decimal places) applied to
// time-of-day fractions before comparison, so the sweep's SQL arithmetic and
// this Go arithmetic cannot drift apart on float representation.
const FractionPrecision = 3

// ResetFraction computes the UTC hour fraction at which a local reset time
// fires: (resetHour - utcOffset + resetMinute/60) mod 24, rounded to
// FractionPrecision decimals. The sweep's bulk SQL query expresses the
// identical arithmetic; the two are verified for equivalence in tests.
func ResetFraction(utcOffset, resetHour, resetMinute int) float64 {
	f := float64(resetHour) - float64(utcOffset) + float64(resetMinute)/60.0
	f = math.Mod(f, 24)
	if f < 0 {
		f += 24
	}
	return roundFraction(f)
}

// UTCFraction returns the rounded time-of-day fraction of t in UTC
func UTCFraction(t time.Time) float64 {
	u := t.UTC()
	return roundFraction(float64(u.Hour()) + float64(u.Minute())/60.0)
}

func roundFraction(f float64) float64 {
	shift := math.Pow10(FractionPrecision)
	return math.Round(f*shift) / shift
}
