package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/router"
	"github.com/priyankc/wordup/internal/screen"
	"github.com/priyankc/wordup/internal/screens/dayselect"
	"github.com/priyankc/wordup/internal/screens/history"
	lessonscreen "github.com/priyankc/wordup/internal/screens/lesson"
	"github.com/priyankc/wordup/internal/screens/summary"
	"github.com/priyankc/wordup/internal/speech"
	"github.com/priyankc/wordup/internal/store"
	"github.com/priyankc/wordup/internal/ui/components"
	"github.com/priyankc/wordup/internal/ui/theme"
)

// HomeScreen is the entry screen: the daily call to action plus navigation
// into the day grid and history.
type HomeScreen struct {
	repo    store.ProgressRepo
	lessons *les.Store
	synth   speech.Synthesizer
	recog   speech.Recognizer

	menu          components.Menu
	daysCompleted int
	streakCount   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(repo store.ProgressRepo, lessons *les.Store, synth speech.Synthesizer, recog speech.Recognizer) *HomeScreen {
	h := &HomeScreen{
		repo:    repo,
		lessons: lessons,
		synth:   synth,
		recog:   recog,
	}

	ctx := context.Background()
	if scores, err := repo.Scores(ctx); err == nil {
		h.daysCompleted = len(scores)
	}
	if st, err := repo.Streak(ctx); err == nil {
		h.streakCount = st.Count
	}

	items := []components.MenuItem{
		{Label: "TODAY'S LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				// Resolve the day at press time so a lesson finished this
				// session advances the pointer.
				day := h.nextDay()
				return router.PushScreenMsg{
					Screen: lessonscreen.New(day, h.lessons, h.repo, h.synth, h.recog, nil),
				}
			}
		}},
		{Label: "CHOOSE A DAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: dayselect.New(h.repo, h.lessons, h.synth, h.recog),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.repo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// nextDay is the day the daily call to action opens: the day after the last
// completed one, clamped to the final day of the challenge.
func (h *HomeScreen) nextDay() int {
	last, err := h.repo.LastCompletedDay(context.Background())
	if err != nil {
		last = 0
	}
	day := last + 1
	if day > les.MaxDay {
		day = les.MaxDay
	}
	return day
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(summary.StreakChangedMsg); ok {
		h.streakCount = msg.Count
		if scores, err := h.repo.Scores(context.Background()); err == nil {
			h.daysCompleted = len(scores)
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Title.Render("WordUp")))
	b.WriteString(centered(width, theme.Subtitle.Render("30 days to a sharper vocabulary")))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Days completed: %d/%d    Streak: %d", h.daysCompleted, les.MaxDay, h.streakCount)
	b.WriteString(centered(width, theme.Body.Render(stats)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) + "\n"
}
