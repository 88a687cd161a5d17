package streak

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestComplete_FirstEver(t *testing.T) {
	s := State{}.Complete(date(2024, 1, 10))
	if s.Count != 1 {
		t.Errorf("Count = %d, want 1", s.Count)
	}
	if s.LastActive.IsZero() {
		t.Error("LastActive not recorded")
	}
}

func TestComplete_SameDayIdempotent(t *testing.T) {
	s := State{}.Complete(date(2024, 1, 10))
	again := s.Complete(time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local))
	if again.Count != 1 {
		t.Errorf("Count = %d, want 1 after same-day re-completion", again.Count)
	}
}

func TestComplete_ConsecutiveDay(t *testing.T) {
	s := State{}.Complete(date(2024, 1, 10))
	s = s.Complete(date(2024, 1, 11))
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
}

func TestComplete_GapResets(t *testing.T) {
	s := State{}.Complete(date(2024, 1, 10))
	s = s.Complete(date(2024, 1, 11))
	s = s.Complete(date(2024, 1, 14))
	if s.Count != 1 {
		t.Errorf("Count = %d, want 1 after 3-day gap", s.Count)
	}
}

func TestComplete_ClockSkewResets(t *testing.T) {
	s := State{Count: 7, LastActive: date(2024, 1, 10)}
	s = s.Complete(date(2024, 1, 8))
	if s.Count != 1 {
		t.Errorf("Count = %d, want 1 when the clock runs backwards", s.Count)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same instant", date(2024, 1, 10), date(2024, 1, 10), 0},
		{"same day different times",
			time.Date(2024, 1, 10, 0, 1, 0, 0, time.Local),
			time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local), 0},
		{"midnight boundary",
			time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local),
			time.Date(2024, 1, 11, 0, 1, 0, 0, time.Local), 1},
		{"three days", date(2024, 1, 10), date(2024, 1, 13), 3},
		{"negative", date(2024, 1, 13), date(2024, 1, 10), -3},
		{"across month", date(2024, 1, 31), date(2024, 2, 1), 1},
		{"across year", date(2023, 12, 31), date(2024, 1, 1), 1},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: DaysBetween = %d, want %d", tt.name, got, tt.want)
		}
	}
}
