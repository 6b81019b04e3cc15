package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05032025", FormatDate(date))

	date = time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "31122025", FormatDate(date))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("05032025")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 5, parsed.Day())

	// Round trip
	assert.Equal(t, "05032025", FormatDate(parsed))
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{"", "2025-03-05", "5032025", "32132025", "aabbcccc"}
	for _, raw := range cases {
		_, err := ParseDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2025, time.March, 5, 17, 42, 13, 0, time.UTC)

	today, err := ResolveDay(DayToday, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), today)

	tomorrow, err := ResolveDay(DayTomorrow, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC), tomorrow)
}

func TestResolveDay_MonthBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)

	tomorrow, err := ResolveDay(DayTomorrow, now)
	require.NoError(t, err)
	assert.Equal(t, "01042025", FormatDate(tomorrow))
}

func TestResolveDay_Unknown(t *testing.T) {
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	_, err := ResolveDay(BookingDay("yesterday"), now)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 5, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
