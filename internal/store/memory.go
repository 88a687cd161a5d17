package store

import (
	"context"

	"github.com/priyankc/wordup/internal/streak"
)

// MemoryProgressRepo is an in-memory ProgressRepo for tests and previews.
type MemoryProgressRepo struct {
	scores      map[int]ScoreRecord
	completions []Completion
	streakState streak.State
	lastDay     int
}

var _ ProgressRepo = (*MemoryProgressRepo)(nil)

// NewMemoryProgressRepo creates an empty in-memory repository.
func NewMemoryProgressRepo() *MemoryProgressRepo {
	return &MemoryProgressRepo{scores: make(map[int]ScoreRecord)}
}

func (r *MemoryProgressRepo) Scores(ctx context.Context) (map[int]ScoreRecord, error) {
	out := make(map[int]ScoreRecord, len(r.scores))
	for day, rec := range r.scores {
		out[day] = rec
	}
	return out, nil
}

func (r *MemoryProgressRepo) SaveScore(ctx context.Context, rec ScoreRecord) error {
	r.scores[rec.Day] = rec
	return nil
}

func (r *MemoryProgressRepo) Streak(ctx context.Context) (streak.State, error) {
	return r.streakState, nil
}

func (r *MemoryProgressRepo) SaveStreak(ctx context.Context, st streak.State) error {
	r.streakState = st
	return nil
}

func (r *MemoryProgressRepo) LastCompletedDay(ctx context.Context) (int, error) {
	return r.lastDay, nil
}

func (r *MemoryProgressRepo) SaveLastCompletedDay(ctx context.Context, day int) error {
	r.lastDay = day
	return nil
}

func (r *MemoryProgressRepo) AppendCompletion(ctx context.Context, c Completion) error {
	r.completions = append(r.completions, c)
	return nil
}

func (r *MemoryProgressRepo) Completions(ctx context.Context, limit int) ([]Completion, error) {
	// Newest first, like the SQLite implementation.
	out := make([]Completion, 0, len(r.completions))
	for i := len(r.completions) - 1; i >= 0; i-- {
		out = append(out, r.completions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryProgressRepo) Reset(ctx context.Context) error {
	r.scores = make(map[int]ScoreRecord)
	r.completions = nil
	r.streakState = streak.State{}
	r.lastDay = 0
	return nil
}
