package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed clock for deterministic day-boundary tests
func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTryConsume_BelowLimit(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	tracker := NewTrackerWithClock(clockAt(now))

	state := &State{Count: 3, WindowDate: startOfDayUTC(now), Limit: 10}

	res := tracker.TryConsume(state)

	require.True(t, res.Allowed)
	assert.Equal(t, 4, state.Count, "allowed consume should increment by exactly 1")
	assert.Equal(t, 6, res.Remaining)
}

func TestTryConsume_AtLimit(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	tracker := NewTrackerWithClock(clockAt(now))

	state := &State{Count: 10, WindowDate: startOfDayUTC(now), Limit: 10}

	res := tracker.TryConsume(state)

	assert.False(t, res.Allowed)
	assert.Equal(t, 10, state.Count, "denied consume must not mutate the count")
	assert.Equal(t, 0, res.Remaining)
}

func TestTryConsume_NewDayResetsWindow(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)

	tracker := NewTrackerWithClock(clockAt(today))

	// exhausted yesterday
	state := &State{Count: 10, WindowDate: startOfDayUTC(yesterday), Limit: 10}

	res := tracker.TryConsume(state)

	require.True(t, res.Allowed, "a new day must grant a fresh allowance")
	assert.Equal(t, 1, state.Count)
	assert.Equal(t, startOfDayUTC(today), state.WindowDate)
	assert.Equal(t, 9, res.Remaining)
}

func TestTryConsume_ResetHappensBeforeLimitCheck(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// a state that was repeatedly denied yesterday with limit 0, then the
	// limit was raised: the very next consume must measure against a count
	// of 0, not yesterday's stale count
	state := &State{Count: 7, WindowDate: startOfDayUTC(yesterday), Limit: 0}

	tracker := NewTrackerWithClock(clockAt(today))
	res := tracker.TryConsume(state)

	assert.False(t, res.Allowed, "limit 0 always denies")
	assert.Equal(t, 0, state.Count, "window reset still applies on denial")
	assert.Equal(t, startOfDayUTC(today), state.WindowDate)

	state.Limit = 5
	res = tracker.TryConsume(state)

	require.True(t, res.Allowed)
	assert.Equal(t, 1, state.Count)
}

func TestTryConsume_NonPositiveLimitAlwaysDenies(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	tracker := NewTrackerWithClock(clockAt(now))

	for _, limit := range []int{0, -1, -100} {
		state := &State{WindowDate: startOfDayUTC(now), Limit: limit}

		res := tracker.TryConsume(state)

		assert.False(t, res.Allowed, "limit %d should deny", limit)
		assert.Equal(t, 0, state.Count)
	}
}

func TestTryConsume_ExhaustsExactlyLimitUnits(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	tracker := NewTrackerWithClock(clockAt(now))

	state := &State{WindowDate: startOfDayUTC(now), Limit: 3}

	for i := 0; i < 3; i++ {
		res := tracker.TryConsume(state)
		require.True(t, res.Allowed, "consume %d should be allowed", i+1)
	}

	res := tracker.TryConsume(state)
	assert.False(t, res.Allowed)
	assert.Equal(t, 3, state.Count)
}

func TestRemaining_StaleWindowReportsFullAllowance(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tracker := NewTrackerWithClock(clockAt(today))
	state := &State{Count: 10, WindowDate: startOfDayUTC(yesterday), Limit: 10}

	assert.Equal(t, 10, tracker.Remaining(state))
	assert.Equal(t, 10, state.Count, "Remaining is a pure read")
}
