package dayselect

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/router"
	"github.com/priyankc/wordup/internal/screen"
	lessonscreen "github.com/priyankc/wordup/internal/screens/lesson"
	"github.com/priyankc/wordup/internal/screens/summary"
	"github.com/priyankc/wordup/internal/speech"
	"github.com/priyankc/wordup/internal/store"
	"github.com/priyankc/wordup/internal/ui/layout"
	"github.com/priyankc/wordup/internal/ui/theme"
)

const gridCols = 6

type scoresLoadedMsg struct {
	Scores map[int]store.ScoreRecord
	Err    error
}

// DaySelectScreen is the 30-day grid. Any day can be replayed; completed
// days show their stored score.
type DaySelectScreen struct {
	repo    store.ProgressRepo
	lessons *les.Store
	synth   speech.Synthesizer
	recog   speech.Recognizer

	scores   map[int]store.ScoreRecord
	selected int // zero-based day index
	loaded   bool
}

var _ screen.Screen = (*DaySelectScreen)(nil)
var _ screen.KeyHintProvider = (*DaySelectScreen)(nil)

// New creates a DaySelectScreen.
func New(repo store.ProgressRepo, lessons *les.Store, synth speech.Synthesizer, recog speech.Recognizer) *DaySelectScreen {
	return &DaySelectScreen{
		repo:    repo,
		lessons: lessons,
		synth:   synth,
		recog:   recog,
		scores:  make(map[int]store.ScoreRecord),
	}
}

func (s *DaySelectScreen) Init() tea.Cmd {
	return func() tea.Msg {
		scores, err := s.repo.Scores(context.Background())
		if err != nil {
			return scoresLoadedMsg{Err: err}
		}
		return scoresLoadedMsg{Scores: scores}
	}
}

func (s *DaySelectScreen) Title() string {
	return "Choose a Day"
}

func (s *DaySelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DaySelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoresLoadedMsg:
		if msg.Err == nil {
			s.scores = msg.Scores
		}
		s.loaded = true
		return s, nil

	case summary.StreakChangedMsg:
		// A lesson finished above this screen; reload scores.
		return s, s.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l":
			if s.selected < les.MaxDay-1 {
				s.selected++
			}
		case "up", "k":
			if s.selected >= gridCols {
				s.selected -= gridCols
			}
		case "down", "j":
			if s.selected+gridCols < les.MaxDay {
				s.selected += gridCols
			}
		case "enter":
			day := s.selected + 1
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonscreen.New(day, s.lessons, s.repo, s.synth, s.recog, nil),
				}
			}
		}
	}
	return s, nil
}

func (s *DaySelectScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Pick any day to study or replay")))
	b.WriteString("\n\n")

	for row := 0; row*gridCols < les.MaxDay; row++ {
		cells := make([]string, 0, gridCols)
		for col := 0; col < gridCols; col++ {
			idx := row*gridCols + col
			if idx >= les.MaxDay {
				break
			}
			cells = append(cells, s.renderCell(idx))
		}
		line := strings.Join(cells, " ")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if rec, ok := s.scores[s.selected+1]; ok {
		detail := fmt.Sprintf("Day %d: %d/%d correct (%d%%) on %s",
			rec.Day, rec.Correct, rec.Total, rec.Pct, rec.Timestamp.Format("Jan 02"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(detail)))
	}

	return b.String()
}

// renderCell draws one day tile, marking completed days.
func (s *DaySelectScreen) renderCell(idx int) string {
	day := idx + 1
	_, done := s.scores[day]

	label := fmt.Sprintf(" %2d ", day)
	if done {
		label = fmt.Sprintf(" %2d✓", day)
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case idx == s.selected:
		style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
	case done:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	return style.Render(label)
}
