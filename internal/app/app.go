package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyankc/wordup/internal/activity"
	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/router"
	"github.com/priyankc/wordup/internal/screen"
	"github.com/priyankc/wordup/internal/screens/home"
	lessonscreen "github.com/priyankc/wordup/internal/screens/lesson"
	"github.com/priyankc/wordup/internal/screens/summary"
	"github.com/priyankc/wordup/internal/speech"
	"github.com/priyankc/wordup/internal/store"
	"github.com/priyankc/wordup/internal/ui/layout"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	Repo        store.ProgressRepo
	Lessons     *les.Store
	Synthesizer speech.Synthesizer
	Recognizer  speech.Recognizer

	// StartDay, when nonzero, opens that day's lesson immediately instead
	// of landing on the home screen.
	StartDay int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts        Options
	router      *router.Router
	width       int
	height      int
	streakCount int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Repo, opts.Lessons, opts.Synthesizer, opts.Recognizer)

	m := AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
	if st, err := opts.Repo.Streak(context.Background()); err == nil {
		m.streakCount = st.Count
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.StartDay > 0 {
		day := m.opts.StartDay
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: lessonscreen.New(day, m.opts.Lessons, m.opts.Repo,
					m.opts.Synthesizer, m.opts.Recognizer, activity.RandomShuffle),
			}
		}
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case summary.StreakChangedMsg:
		m.streakCount = msg.Count
		return m, m.router.Broadcast(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streakCount, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Synthesizer == nil {
		opts.Synthesizer = speech.NullSynthesizer{}
	}
	if opts.Recognizer == nil {
		opts.Recognizer = speech.NullRecognizer{}
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
