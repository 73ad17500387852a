package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_Today(t *testing.T) {
	// 23:30 UTC is already the next day in Tokyo.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	clock := FixedClock(time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC).In(tokyo))
	assert.Equal(t, "2024-01-16", clock.Today())
}

func TestNewClock(t *testing.T) {
	_, err := NewClock("Mars/Olympus")
	assert.Error(t, err)

	clock, err := NewClock("")
	require.NoError(t, err)
	assert.Len(t, clock.Today(), 10)
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)

	_, _, err = MonthRange("2024-13")
	assert.Error(t, err)
}

func TestAdjacentDates(t *testing.T) {
	prev, next, err := AdjacentDates("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", prev)
	assert.Equal(t, "2024-03-02", next)

	_, _, err = AdjacentDates("bad")
	assert.Error(t, err)
}
