package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_LocalMidnight(t *testing.T) {
	// 2025-06-15 20:00 UTC is already 2025-06-16 01:30 in Kolkata.
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

	start, end := LocationResolver{}.Bounds(now, "Asia/Kolkata")

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, loc), end)
}

func TestBounds_UnknownTimezoneFallsBack(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	start, end := LocationResolver{}.Bounds(now, "Mars/Olympus_Mons")
	fstart, fend := LocationResolver{}.Bounds(now, FallbackTimezone)

	assert.True(t, start.Equal(fstart))
	assert.True(t, end.Equal(fend))
}

func TestBounds_UTC(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	start, end := LocationResolver{}.Bounds(now, "UTC")

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 14, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
