package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/priyankc/wordup/internal/streak"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLite_ScoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	ts := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.SaveScore(ctx, ScoreRecord{
		Day: 3, Correct: 2, Total: 3, Pct: 67, Timestamp: ts,
	}))

	scores, err := repo.Scores(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	rec := scores[3]
	require.Equal(t, 2, rec.Correct)
	require.Equal(t, 3, rec.Total)
	require.Equal(t, 67, rec.Pct)
}

func TestSQLite_ScoreUpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	require.NoError(t, repo.SaveScore(ctx, ScoreRecord{Day: 1, Correct: 1, Total: 4, Pct: 25, Timestamp: time.Now()}))
	require.NoError(t, repo.SaveScore(ctx, ScoreRecord{Day: 1, Correct: 4, Total: 4, Pct: 100, Timestamp: time.Now()}))

	scores, err := repo.Scores(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, 100, scores[1].Pct)
}

func TestSQLite_StreakRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	// Absent state reads as zero.
	st, err := repo.Streak(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, st.Count)
	require.True(t, st.LastActive.IsZero())

	saved := streak.State{Count: 5, LastActive: time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)}
	require.NoError(t, repo.SaveStreak(ctx, saved))

	st, err = repo.Streak(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, st.Count)
	// Only the calendar date survives storage.
	y, m, d := st.LastActive.Date()
	require.Equal(t, 2024, y)
	require.Equal(t, time.January, m)
	require.Equal(t, 10, d)
}

func TestSQLite_MalformedMetaReadsAsZero(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	repo := st.ProgressRepo()

	_, err := st.DB().ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?), (?, ?)`,
		"streak_count", "banana", "last_active_date", "not-a-date")
	require.NoError(t, err)

	got, err := repo.Streak(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, got.Count)
	require.True(t, got.LastActive.IsZero())
}

func TestSQLite_LastCompletedDay(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	day, err := repo.LastCompletedDay(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, day)

	require.NoError(t, repo.SaveLastCompletedDay(ctx, 12))
	day, err = repo.LastCompletedDay(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, day)
}

func TestSQLite_CompletionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	for day := 1; day <= 3; day++ {
		require.NoError(t, repo.AppendCompletion(ctx, Completion{
			SessionID: "s", Day: day, Correct: day, Total: 3, Pct: day * 33,
			Timestamp: time.Now(),
		}))
	}

	got, err := repo.Completions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].Day)
	require.Equal(t, 2, got[1].Day)
}

func TestSQLite_ResetIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	require.NoError(t, repo.SaveScore(ctx, ScoreRecord{Day: 1, Correct: 1, Total: 1, Pct: 100, Timestamp: time.Now()}))
	require.NoError(t, repo.SaveStreak(ctx, streak.State{Count: 3, LastActive: time.Now()}))
	require.NoError(t, repo.SaveLastCompletedDay(ctx, 1))
	require.NoError(t, repo.AppendCompletion(ctx, Completion{SessionID: "s", Day: 1, Timestamp: time.Now()}))

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Reset(ctx))

		scores, err := repo.Scores(ctx)
		require.NoError(t, err)
		require.Empty(t, scores)

		st, err := repo.Streak(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, st.Count)

		day, err := repo.LastCompletedDay(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, day)

		comps, err := repo.Completions(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, comps)
	}
}

func TestMemoryRepo_MatchesInterface(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProgressRepo()

	require.NoError(t, repo.SaveScore(ctx, ScoreRecord{Day: 2, Correct: 1, Total: 2, Pct: 50, Timestamp: time.Now()}))
	scores, err := repo.Scores(ctx)
	require.NoError(t, err)
	require.Equal(t, 50, scores[2].Pct)

	require.NoError(t, repo.AppendCompletion(ctx, Completion{Day: 1}))
	require.NoError(t, repo.AppendCompletion(ctx, Completion{Day: 2}))
	comps, err := repo.Completions(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 2, comps[0].Day) // newest first

	require.NoError(t, repo.Reset(ctx))
	scores, err = repo.Scores(ctx)
	require.NoError(t, err)
	require.Empty(t, scores)
}
