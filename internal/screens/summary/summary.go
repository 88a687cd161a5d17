package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyankc/wordup/internal/activity"
	"github.com/priyankc/wordup/internal/gradebook"
	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/router"
	"github.com/priyankc/wordup/internal/screen"
	"github.com/priyankc/wordup/internal/store"
	"github.com/priyankc/wordup/internal/streak"
	"github.com/priyankc/wordup/internal/ui/layout"
	"github.com/priyankc/wordup/internal/ui/theme"
)

// StreakChangedMsg announces the new streak state after a lesson has been
// persisted. The root model listens for it to refresh the header.
type StreakChangedMsg struct {
	Count int
}

// persistedMsg is sent once the completed lesson has been written to the
// store.
type persistedMsg struct {
	Streak streak.State
	Err    error
}

// SummaryScreen persists a finished lesson and shows the results.
type SummaryScreen struct {
	repo   store.ProgressRepo
	lesson *les.Lesson
	book   *gradebook.GradeBook

	summary gradebook.Summary
	streak  streak.State
	saved   bool
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished lesson session.
func New(repo store.ProgressRepo, l *les.Lesson, book *gradebook.GradeBook) *SummaryScreen {
	return &SummaryScreen{
		repo:    repo,
		lesson:  l,
		book:    book,
		summary: book.Summarize(),
	}
}

// Init persists the session: the day's score record, a completion event,
// the advanced streak, and the last-completed-day marker.
func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()
		sum := s.summary

		if err := s.repo.SaveScore(ctx, store.ScoreRecord{
			Day:       s.lesson.Day,
			Correct:   sum.Correct,
			Total:     sum.Total,
			Pct:       sum.Pct,
			Timestamp: now,
		}); err != nil {
			return persistedMsg{Err: err}
		}

		if err := s.repo.AppendCompletion(ctx, store.Completion{
			SessionID: s.book.SessionID(),
			Day:       s.lesson.Day,
			Correct:   sum.Correct,
			Total:     sum.Total,
			Pct:       sum.Pct,
			Timestamp: now,
		}); err != nil {
			return persistedMsg{Err: err}
		}

		st, err := s.repo.Streak(ctx)
		if err != nil {
			return persistedMsg{Err: err}
		}
		st = st.Complete(now)
		if err := s.repo.SaveStreak(ctx, st); err != nil {
			return persistedMsg{Streak: st, Err: err}
		}

		if err := s.repo.SaveLastCompletedDay(ctx, s.lesson.Day); err != nil {
			return persistedMsg{Streak: st, Err: err}
		}

		return persistedMsg{Streak: st}
	}
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistedMsg:
		s.saved = true
		s.saveErr = msg.Err
		s.streak = msg.Streak
		if msg.Err != nil {
			return s, nil
		}
		count := msg.Streak.Count
		return s, func() tea.Msg { return StreakChangedMsg{Count: count} }

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render(fmt.Sprintf("Day %d complete!", s.lesson.Day))))
	b.WriteString("\n")

	sum := s.summary
	if sum.Total == 0 {
		b.WriteString(centered(width, theme.Subtitle.Render("No graded activities today.")))
	} else {
		score := fmt.Sprintf("Score: %d/%d  (%d%%)", sum.Correct, sum.Total, sum.Pct)
		b.WriteString(centered(width, theme.Body.Bold(true).Render(score)))
	}
	b.WriteString("\n")

	// Per-kind breakdown, in outcome order.
	if rows := breakdown(s.book.Outcomes()); len(rows) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 44)))
		b.WriteString(centered(width, divider))
		b.WriteString("\n")
		for _, row := range rows {
			line := fmt.Sprintf("%-18s %d/%d", row.label, row.correct, row.total)
			style := theme.Body
			if row.correct == row.total {
				style = theme.Correct
			}
			b.WriteString(centered(width, style.Render(line)))
		}
		b.WriteString("\n")
	}

	switch {
	case !s.saved:
		b.WriteString(centered(width, theme.Hint.Render("Saving your progress...")))
	case s.saveErr != nil:
		b.WriteString(centered(width, theme.Incorrect.Render(
			fmt.Sprintf("Could not save progress: %v", s.saveErr))))
	default:
		flame := fmt.Sprintf("🔥 %d day streak", s.streak.Count)
		if s.streak.Count == 1 {
			flame = "🔥 1 day streak"
		}
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(flame)))
	}

	return b.String()
}

type breakdownRow struct {
	label   string
	correct int
	total   int
}

var kindLabels = map[string]string{
	activity.OutcomeAntonym:       "Antonyms",
	activity.OutcomeSynonym:       "Synonyms",
	activity.OutcomeChoice:        "Multiple Choice",
	activity.OutcomeProgress:      "Progress Quiz",
	activity.OutcomePronunciation: "Pronunciation",
	activity.OutcomeMatch:         "Word Match",
}

// breakdown groups outcomes by kind, preserving first-seen order.
func breakdown(outcomes []gradebook.Outcome) []breakdownRow {
	index := make(map[string]int)
	var rows []breakdownRow
	for _, o := range outcomes {
		i, ok := index[o.Kind]
		if !ok {
			label := kindLabels[o.Kind]
			if label == "" {
				label = o.Kind
			}
			i = len(rows)
			index[o.Kind] = i
			rows = append(rows, breakdownRow{label: label})
		}
		rows[i].total++
		if o.Correct {
			rows[i].correct++
		}
	}
	return rows
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
