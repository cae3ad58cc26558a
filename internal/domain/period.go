package domain

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType is the closed set of rotation period types
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// PeriodTypes lists all period types in initialization order
var PeriodTypes = []PeriodType{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}

// WeeklyResetWeekday is the local weekday on which the weekly rotation closes
const WeeklyResetWeekday = time.Monday

// Valid reports whether t is a known period type
func (t PeriodType) Valid() bool {
	switch t {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Key formats the period key for the calendar bucket containing at.
// Formats: daily_2024_06_01, weekly_2024_23 (ISO week), monthly_2024_06, yearly_2024.
func (t PeriodType) Key(at time.Time) string {
	switch t {
	case PeriodDaily:
		return fmt.Sprintf("%s_%04d_%02d_%02d", t, at.Year(), int(at.Month()), at.Day())
	case PeriodWeekly:
		_, week := at.ISOWeek()
		return fmt.Sprintf("%s_%04d_%02d", t, at.Year(), week)
	case PeriodMonthly:
		return fmt.Sprintf("%s_%04d_%02d", t, at.Year(), int(at.Month()))
	case PeriodYearly:
		return fmt.Sprintf("%s_%04d", t, at.Year())
	}
	return ""
}

// PreviousKey formats the key of the bucket immediately before the one
// containing at. This is the bucket a reset closes: the daily trigger at a
// local midnight archives yesterday, the weekly trigger archives last week,
// and so on.
func (t PeriodType) PreviousKey(at time.Time) string {
	switch t {
	case PeriodDaily:
		return t.Key(at.AddDate(0, 0, -1))
	case PeriodWeekly:
		return t.Key(at.AddDate(0, 0, -7))
	case PeriodMonthly:
		return t.Key(at.AddDate(0, -1, 0))
	case PeriodYearly:
		return t.Key(at.AddDate(-1, 0, 0))
	}
	return ""
}

// DueAtLocalDate reports whether this period type closes on a daily boundary
// at the given local time. A daily boundary is a superset checkpoint for the
// longer periods, so these checks piggyback on the daily trigger.
func (t PeriodType) DueAtLocalDate(local time.Time) bool {
	switch t {
	case PeriodDaily:
		return true
	case PeriodWeekly:
		return local.Weekday() == WeeklyResetWeekday
	case PeriodMonthly:
		return local.Day() == 1
	case PeriodYearly:
		return local.YearDay() == 1
	}
	return false
}

// CatchUpDue reports whether an opportunistic reset is overdue for a
// rotation last reset at lastReset, observed at now. Daily and weekly use
// fixed spans; monthly and yearly are calendar-aware (days in the month of
// lastReset, leap-ness of its year).
func (t PeriodType) CatchUpDue(lastReset, now time.Time) bool {
	elapsed := now.Sub(lastReset)
	switch t {
	case PeriodDaily:
		return elapsed > 24*time.Hour
	case PeriodWeekly:
		return elapsed > 7*24*time.Hour
	case PeriodMonthly:
		days := daysInMonth(lastReset)
		return elapsed >= time.Duration(days)*24*time.Hour
	case PeriodYearly:
		days := 365
		if isLeapYear(lastReset.Year()) {
			days = 366
		}
		return elapsed >= time.Duration(days)*24*time.Hour
	}
	return false
}

// PeriodTypeOfKey extracts the period type encoded in a period key
func PeriodTypeOfKey(periodKey string) (PeriodType, error) {
	idx := strings.IndexByte(periodKey, '_')
	if idx <= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriodKey, periodKey)
	}
	t := PeriodType(periodKey[:idx])
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriodKey, periodKey)
	}
	return t, nil
}

func daysInMonth(at time.Time) int {
	firstOfMonth := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
