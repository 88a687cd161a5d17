package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyankc/wordup/internal/ui/theme"
)

// ChoiceList is a mutually-exclusive option selector. It knows nothing
// about grading: the caller reads Chosen() and marks the result with
// Resolve(), which also reveals the correct option.
type ChoiceList struct {
	Prompt    string
	Options   []string
	Selected  int
	submitted bool
	chosen    int
	correct   int // index of the correct option, revealed after Resolve
}

// NewChoiceList creates a choice list with nothing chosen.
func NewChoiceList(prompt string, options []string) ChoiceList {
	return ChoiceList{
		Prompt:  prompt,
		Options: options,
		chosen:  -1,
		correct: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.submitted = true
		c.chosen = c.Selected
	}

	return c, nil
}

// Chosen returns the selected option string, or "" when nothing has been
// submitted. An empty value grades as incorrect.
func (c ChoiceList) Chosen() string {
	if c.chosen < 0 || c.chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.chosen]
}

// Submitted reports whether a choice has been locked in.
func (c ChoiceList) Submitted() bool {
	return c.submitted
}

// Resolve reveals the correct option after grading.
func (c *ChoiceList) Resolve(correctOption string) {
	for i, opt := range c.Options {
		if opt == correctOption {
			c.correct = i
			return
		}
	}
}

// View renders the list. Before submission the cursor row is highlighted;
// after Resolve the correct and chosen rows are colored.
func (c ChoiceList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)

		var style lipgloss.Style
		switch {
		case c.submitted && i == c.correct:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case c.submitted && i == c.chosen:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case c.submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
