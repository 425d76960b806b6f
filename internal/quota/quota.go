package quota

import "time"

// default daily allowance when none is configured
const DefaultDailyLimit = 10

// State tracks how many generations a session has consumed in the
// current calendar day. WindowDate identifies the UTC day the count
// applies to; a stale window is reset lazily on the next consume.
type State struct {
	Count      int
	WindowDate time.Time
	Limit      int
}

// Result reports the outcome of a consume attempt.
type Result struct {
	Allowed   bool
	Remaining int
}

// Tracker enforces the daily generation ceiling. The clock is
// injectable so day-boundary behavior can be tested deterministically.
type Tracker struct {
	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// returns a tracker using the given clock
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// TryConsume charges one unit against the state if the daily limit
// allows it. The window is normalized before the limit check, so a new
// day always grants a fresh allowance regardless of how long the state
// has been idle. A denied call never mutates the count; each allowed
// call consumes exactly one unit.
func (t *Tracker) TryConsume(s *State) Result {
	today := startOfDayUTC(t.now())

	if !s.WindowDate.Equal(today) {
		s.Count = 0
		s.WindowDate = today
	}

	// a non-positive limit always denies, but the window still rolls
	if s.Limit <= 0 || s.Count >= s.Limit {
		return Result{Allowed: false, Remaining: t.Remaining(s)}
	}

	s.Count++

	return Result{Allowed: true, Remaining: s.Limit - s.Count}
}

// Remaining reports how many generations are left in the current day
// without consuming anything.
func (t *Tracker) Remaining(s *State) int {
	if !s.WindowDate.Equal(startOfDayUTC(t.now())) {
		if s.Limit < 0 {
			return 0
		}
		return s.Limit
	}

	remaining := s.Limit - s.Count
	if remaining < 0 {
		return 0
	}

	return remaining
}

// returns 00:00:00 UTC of the day containing t
func startOfDayUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}
