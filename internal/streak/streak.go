package streak

import (
	"math"
	"time"
)

// State is the persistent daily-streak state: how many consecutive calendar
// days ended a lesson, and which day the chain currently ends on.
// A zero LastActive means no lesson has ever been completed.
type State struct {
	Count      int
	LastActive time.Time
}

// Complete advances the streak for a lesson completed at now.
// The transition is defined over calendar days, not elapsed hours:
// same day is a no-op, the next day increments, and any larger gap
// (or a clock running backwards) restarts the chain at 1.
func (s State) Complete(now time.Time) State {
	if s.LastActive.IsZero() {
		return State{Count: 1, LastActive: now}
	}

	switch d := DaysBetween(s.LastActive, now); {
	case d == 0:
		return s
	case d == 1:
		return State{Count: s.Count + 1, LastActive: now}
	default:
		return State{Count: 1, LastActive: now}
	}
}

// DaysBetween returns the number of calendar days from a to b, comparing
// local dates at midnight. Time of day never affects the result: 23:59 on
// Monday to 00:01 on Tuesday is one day. Rounded, so a DST-shortened or
// DST-stretched day still counts as exactly one.
func DaysBetween(a, b time.Time) int {
	a0 := midnight(a)
	b0 := midnight(b)
	return int(math.Round(b0.Sub(a0).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
