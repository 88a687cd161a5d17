package summary

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyankc/wordup/internal/activity"
	"github.com/priyankc/wordup/internal/gradebook"
	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/store"
)

func testBook() *gradebook.GradeBook {
	book := gradebook.New()
	book.Record(activity.OutcomeAntonym, true)
	book.Record(activity.OutcomeChoice, true)
	book.Record(activity.OutcomeMatch, false)
	return book
}

func persist(t *testing.T, s *SummaryScreen) persistedMsg {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should return a persist command")
	}
	msg, ok := cmd().(persistedMsg)
	if !ok {
		t.Fatalf("expected persistedMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("persist failed: %v", msg.Err)
	}
	s.Update(msg)
	return msg
}

func TestSummaryScreen_PersistsEverything(t *testing.T) {
	repo := store.NewMemoryProgressRepo()
	book := testBook()
	s := New(repo, les.Placeholder(4), book)

	msg := persist(t, s)
	if msg.Streak.Count != 1 {
		t.Errorf("streak count = %d, want 1", msg.Streak.Count)
	}

	ctx := context.Background()

	scores, _ := repo.Scores(ctx)
	rec, ok := scores[4]
	if !ok {
		t.Fatal("no score stored for day 4")
	}
	if rec.Correct != 2 || rec.Total != 3 || rec.Pct != 67 {
		t.Errorf("score = %+v, want 2/3 at 67%%", rec)
	}

	completions, _ := repo.Completions(ctx, 0)
	if len(completions) != 1 {
		t.Fatalf("completions = %d, want 1", len(completions))
	}
	if completions[0].SessionID != book.SessionID() {
		t.Error("completion should carry the gradebook session ID")
	}

	last, _ := repo.LastCompletedDay(ctx)
	if last != 4 {
		t.Errorf("last completed day = %d, want 4", last)
	}
}

func TestSummaryScreen_ReplayOverwritesScoreAndAppendsCompletion(t *testing.T) {
	repo := store.NewMemoryProgressRepo()

	first := New(repo, les.Placeholder(4), testBook())
	persist(t, first)

	perfect := gradebook.New()
	perfect.Record(activity.OutcomeAntonym, true)
	second := New(repo, les.Placeholder(4), perfect)
	persist(t, second)

	ctx := context.Background()

	scores, _ := repo.Scores(ctx)
	if rec := scores[4]; rec.Pct != 100 {
		t.Errorf("replay should overwrite the day score, got %+v", rec)
	}

	completions, _ := repo.Completions(ctx, 0)
	if len(completions) != 2 {
		t.Errorf("completions = %d, want 2 (append-only)", len(completions))
	}
}

func TestSummaryScreen_SameDayReplayKeepsStreak(t *testing.T) {
	repo := store.NewMemoryProgressRepo()

	persist(t, New(repo, les.Placeholder(1), testBook()))
	msg := persist(t, New(repo, les.Placeholder(1), testBook()))

	if msg.Streak.Count != 1 {
		t.Errorf("second completion on the same day: streak = %d, want 1", msg.Streak.Count)
	}
}

func TestSummaryScreen_AnnouncesStreakChange(t *testing.T) {
	repo := store.NewMemoryProgressRepo()
	s := New(repo, les.Placeholder(2), testBook())

	cmd := s.Init()
	msg := cmd().(persistedMsg)
	_, next := s.Update(msg)
	if next == nil {
		t.Fatal("expected a follow-up command after persisting")
	}
	changed, ok := next().(StreakChangedMsg)
	if !ok {
		t.Fatalf("expected StreakChangedMsg, got %T", next())
	}
	if changed.Count != 1 {
		t.Errorf("announced streak = %d, want 1", changed.Count)
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	repo := store.NewMemoryProgressRepo()
	s := New(repo, les.Placeholder(4), testBook())
	persist(t, s)

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	repo := store.NewMemoryProgressRepo()
	s := New(repo, les.Placeholder(4), testBook())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestBreakdown_GroupsByKindInFirstSeenOrder(t *testing.T) {
	book := gradebook.New()
	book.Record(activity.OutcomeSynonym, true)
	book.Record(activity.OutcomeAntonym, false)
	book.Record(activity.OutcomeSynonym, false)

	rows := breakdown(book.Outcomes())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].label != "Synonyms" || rows[0].correct != 1 || rows[0].total != 2 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].label != "Antonyms" || rows[1].total != 1 {
		t.Errorf("second row = %+v", rows[1])
	}
}
