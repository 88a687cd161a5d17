package store

import (
	"context"
	"time"

	"github.com/priyankc/wordup/internal/streak"
)

// ScoreRecord is the persisted summary for one completed day. Keyed by Day;
// re-completing a day overwrites the earlier record.
type ScoreRecord struct {
	Day       int
	Correct   int
	Total     int
	Pct       int
	Timestamp time.Time
}

// Completion is one append-only lesson-completion event, shown on the
// history screen. Unlike ScoreRecord it is never overwritten.
type Completion struct {
	SessionID string
	Day       int
	Correct   int
	Total     int
	Pct       int
	Timestamp time.Time
}

// ProgressRepo is the single gateway to persistent learner state: per-day
// scores, the daily streak, the last-completed day, and the completion log.
// Readers tolerate absent or malformed stored values by returning zero
// values, never errors the caller must treat as fatal.
type ProgressRepo interface {
	// Scores returns all stored day scores keyed by day number.
	Scores(ctx context.Context) (map[int]ScoreRecord, error)

	// SaveScore upserts the record for its day.
	SaveScore(ctx context.Context, rec ScoreRecord) error

	// Streak returns the persisted streak state (zero when absent).
	Streak(ctx context.Context) (streak.State, error)

	// SaveStreak persists the streak state.
	SaveStreak(ctx context.Context, st streak.State) error

	// LastCompletedDay returns the most recently completed day, 0 if none.
	LastCompletedDay(ctx context.Context) (int, error)

	// SaveLastCompletedDay persists the most recently completed day.
	SaveLastCompletedDay(ctx context.Context, day int) error

	// AppendCompletion records one completion event.
	AppendCompletion(ctx context.Context, c Completion) error

	// Completions returns completion events, newest first.
	// limit <= 0 means no limit.
	Completions(ctx context.Context, limit int) ([]Completion, error)

	// Reset clears all persisted state: scores, completions, streak, and
	// last-completed day.
	Reset(ctx context.Context) error
}

// metaDateLayout is the stored form of the streak's last-active date.
// Calendar date only — time of day must not influence streak arithmetic.
const metaDateLayout = "2006-01-02"
