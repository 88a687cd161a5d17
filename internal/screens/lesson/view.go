package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/ui/components"
	"github.com/priyankc/wordup/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.phase == phaseIntro {
		return s.renderIntro(width)
	}
	return s.renderActivity(width)
}

func (s *LessonScreen) renderIntro(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render(s.lesson.Title)))
	b.WriteString("\n\n")

	intro := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 64)).
		Render(s.lesson.Intro)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, intro))
	b.WriteString("\n\n")

	if len(s.lesson.Activities) == 0 {
		b.WriteString(centered(width, theme.Hint.Render("Nothing to practice yet. Press Enter to finish.")))
	} else {
		count := fmt.Sprintf("%d activities today", len(s.lesson.Activities))
		if len(s.lesson.Activities) == 1 {
			count = "1 activity today"
		}
		b.WriteString(centered(width, theme.Subtitle.Render(count)))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Press Enter to begin")))
	}

	return b.String()
}

func (s *LessonScreen) renderActivity(width int) string {
	act := s.current()

	var b strings.Builder
	b.WriteString("\n")

	// Position line and lesson progress.
	pos := fmt.Sprintf("Activity %d of %d  ·  %s",
		s.actIdx+1, len(s.lesson.Activities), act.Kind.DisplayName())
	b.WriteString(centered(width, theme.Subtitle.Render(pos)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.actIdx)/float64(len(s.lesson.Activities)), false, min(width-8, 48))
	b.WriteString(centered(width, bar.View()))
	b.WriteString("\n\n")

	if act.Instructions != "" {
		instr := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 64)).
			Render(act.Instructions)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instr))
		b.WriteString("\n\n")
	}

	switch act.Kind {
	case les.KindAntonymTest, les.KindSynonymTest:
		b.WriteString(s.renderTextQuestion(width, act))
	case les.KindMultipleChoice, les.KindProgressQuiz, les.KindMatchPairs:
		b.WriteString(s.renderChoice(width, act))
	case les.KindRootsMatch:
		b.WriteString(s.renderRoots(width, act))
	case les.KindPronunciation:
		b.WriteString(s.renderPronunciation(width, act))
	}

	if s.showingFeedback {
		b.WriteString("\n")
		style := theme.Correct
		if !s.feedbackOK {
			style = theme.Incorrect
		}
		b.WriteString(centered(width, style.Render(s.feedback)))
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render(s.notice)))
	}

	return b.String()
}

func (s *LessonScreen) renderTextQuestion(width int, act les.Activity) string {
	q := act.Questions[s.itemIdx]

	var b strings.Builder
	counter := fmt.Sprintf("Question %d of %d", s.itemIdx+1, len(act.Questions))
	b.WriteString(centered(width, theme.Subtitle.Render(counter)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Bold(true).Render(q.Prompt)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, s.input.View()))
	return b.String()
}

func (s *LessonScreen) renderChoice(width int, act les.Activity) string {
	var b strings.Builder
	total := len(act.Questions)
	if act.Kind == les.KindMatchPairs {
		total = len(act.Pairs)
	}
	counter := fmt.Sprintf("%d of %d", s.itemIdx+1, total)
	b.WriteString(centered(width, theme.Subtitle.Render(counter)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	return b.String()
}

func (s *LessonScreen) renderRoots(width int, act les.Activity) string {
	var b strings.Builder
	for _, r := range act.Roots {
		card := fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(r.Root),
			theme.Body.Render(r.Meaning))
		b.WriteString(centered(width, card))
		if len(r.Examples) > 0 {
			b.WriteString(centered(width, theme.Hint.Render("e.g. "+strings.Join(r.Examples, ", "))))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter when you have read these")))
	return b.String()
}

func (s *LessonScreen) renderPronunciation(width int, act les.Activity) string {
	item := act.Items[s.itemIdx]

	var b strings.Builder
	counter := fmt.Sprintf("Word %d of %d", s.itemIdx+1, len(act.Items))
	b.WriteString(centered(width, theme.Subtitle.Render(counter)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Title.Render(item.Word)))
	if item.Sentence != "" {
		b.WriteString("\n")
		sentence := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Width(min(width-8, 64)).
			Render(item.Sentence)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sentence))
	}
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("P to hear it, Enter to say it back, S to skip")))
	return b.String()
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
