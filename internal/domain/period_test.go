package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKey_Formats(t *testing.T) {
	at := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "daily_2024_06_01", PeriodDaily.Key(at))
	assert.Equal(t, "monthly_2024_06", PeriodMonthly.Key(at))
	assert.Equal(t, "yearly_2024", PeriodYearly.Key(at))

	_, week := at.ISOWeek()
	assert.Equal(t, "weekly_2024_22", PeriodWeekly.Key(at))
	assert.Equal(t, 22, week)
}

func TestPeriodKey_ZeroPadding(t *testing.T) {
	at := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "daily_2025_01_05", PeriodDaily.Key(at))
	assert.Equal(t, "monthly_2025_01", PeriodMonthly.Key(at))
}

func TestPreviousKey(t *testing.T) {
	// First of month, first of year: the closing bucket is always the prior one
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "daily_2024_12_31", PeriodDaily.PreviousKey(at))
	assert.Equal(t, "monthly_2024_12", PeriodMonthly.PreviousKey(at))
	assert.Equal(t, "yearly_2024", PeriodYearly.PreviousKey(at))
}

func TestPeriodTypeOfKey(t *testing.T) {
	pt, err := PeriodTypeOfKey("daily_2024_06_01")
	assert.NoError(t, err)
	assert.Equal(t, PeriodDaily, pt)

	pt, err = PeriodTypeOfKey("yearly_2024")
	assert.NoError(t, err)
	assert.Equal(t, PeriodYearly, pt)

	_, err = PeriodTypeOfKey("hourly_2024_06_01")
	assert.ErrorIs(t, err, ErrInvalidPeriodKey)

	_, err = PeriodTypeOfKey("")
	assert.ErrorIs(t, err, ErrInvalidPeriodKey)
}

func TestDueAtLocalDate(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	firstOfMonth := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newYear := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, PeriodDaily.DueAtLocalDate(tuesday))

	assert.True(t, PeriodWeekly.DueAtLocalDate(monday))
	assert.False(t, PeriodWeekly.DueAtLocalDate(tuesday))

	assert.True(t, PeriodMonthly.DueAtLocalDate(firstOfMonth))
	assert.False(t, PeriodMonthly.DueAtLocalDate(tuesday))

	assert.True(t, PeriodYearly.DueAtLocalDate(newYear))
	assert.False(t, PeriodYearly.DueAtLocalDate(firstOfMonth))
}

func TestCatchUpDue_DailyWeekly(t *testing.T) {
	last := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, PeriodDaily.CatchUpDue(last, last.Add(24*time.Hour)))
	assert.True(t, PeriodDaily.CatchUpDue(last, last.Add(24*time.Hour+time.Second)))

	assert.False(t, PeriodWeekly.CatchUpDue(last, last.Add(7*24*time.Hour)))
	assert.True(t, PeriodWeekly.CatchUpDue(last, last.Add(7*24*time.Hour+time.Second)))
}

func TestCatchUpDue_MonthlyCalendarAware(t *testing.T) {
	// February 2025 has 28 days; a fixed 30-day threshold would be wrong
	lastFeb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, PeriodMonthly.CatchUpDue(lastFeb, lastFeb.AddDate(0, 0, 28)))
	assert.False(t, PeriodMonthly.CatchUpDue(lastFeb, lastFeb.AddDate(0, 0, 27)))

	// July has 31 days
	lastJul := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	assert.False(t, PeriodMonthly.CatchUpDue(lastJul, lastJul.AddDate(0, 0, 30)))
	assert.True(t, PeriodMonthly.CatchUpDue(lastJul, lastJul.AddDate(0, 0, 31)))
}

func TestCatchUpDue_YearlyLeapAware(t *testing.T) {
	// Last reset in a non-leap year: 365 days elapsed triggers
	last := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, PeriodYearly.CatchUpDue(last, last.AddDate(0, 0, 365)))
	assert.False(t, PeriodYearly.CatchUpDue(last, last.AddDate(0, 0, 364)))

	// Last reset in a leap year: the same 365 days must not trigger
	lastLeap := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, PeriodYearly.CatchUpDue(lastLeap, lastLeap.AddDate(0, 0, 365)))
	assert.True(t, PeriodYearly.CatchUpDue(lastLeap, lastLeap.AddDate(0, 0, 366)))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2024))
	assert.True(t, isLeapYear(2000))
	assert.False(t, isLeapYear(2025))
	assert.False(t, isLeapYear(1900))
}
