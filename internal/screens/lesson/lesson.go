package lesson

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/priyankc/wordup/internal/activity"
	"github.com/priyankc/wordup/internal/gradebook"
	les "github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/router"
	"github.com/priyankc/wordup/internal/screen"
	"github.com/priyankc/wordup/internal/screens/summary"
	"github.com/priyankc/wordup/internal/speech"
	"github.com/priyankc/wordup/internal/store"
	"github.com/priyankc/wordup/internal/ui/components"
	"github.com/priyankc/wordup/internal/ui/layout"
)

type phase int

const (
	phaseIntro phase = iota
	phaseActivity
)

// LessonScreen drives one day's lesson: the intro page, then each activity
// in order, recording outcomes in the gradebook as answers are checked.
type LessonScreen struct {
	repo    store.ProgressRepo
	synth   speech.Synthesizer
	recog   speech.Recognizer
	shuffle activity.ShuffleFunc

	lesson *les.Lesson
	book   *gradebook.GradeBook

	phase   phase
	actIdx  int
	itemIdx int

	input  components.TextInput
	choice components.ChoiceList
	rights []string // shuffled right-side options, shared across match rows

	showingFeedback bool
	feedback        string
	feedbackOK      bool

	notice    string
	listening bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given day.
func New(day int, lessons *les.Store, repo store.ProgressRepo, synth speech.Synthesizer, recog speech.Recognizer, shuffle activity.ShuffleFunc) *LessonScreen {
	if shuffle == nil {
		shuffle = activity.RandomShuffle
	}
	return &LessonScreen{
		repo:    repo,
		synth:   synth,
		recog:   recog,
		shuffle: shuffle,
		lesson:  lessons.Load(day),
		book:    gradebook.New(),
		phase:   phaseIntro,
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return fmt.Sprintf("Day %d", s.lesson.Day)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseIntro {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	switch s.current().Kind {
	case les.KindRootsMatch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case les.KindPronunciation:
		return []layout.KeyHint{
			{Key: "P", Description: "Play"},
			{Key: "Enter", Description: "Record"},
			{Key: "S", Description: "Skip"},
		}
	case les.KindAntonymTest, les.KindSynonymTest:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Check"},
		}
	}
}

// current returns the activity in progress. Only valid during phaseActivity.
func (s *LessonScreen) current() les.Activity {
	return s.lesson.Activities[s.actIdx]
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speakDoneMsg:
		if msg.Err != nil {
			s.notice = speechNotice(msg.Err)
		}
		return s, nil

	case listenDoneMsg:
		return s.handleListenDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseActivity && !s.showingFeedback && s.isTextActivity() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) isTextActivity() bool {
	k := s.current().Kind
	return k == les.KindAntonymTest || k == les.KindSynonymTest
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.listening {
		return s, nil
	}

	if s.phase == phaseIntro {
		if key == "enter" {
			return s, s.begin()
		}
		return s, nil
	}

	if s.showingFeedback {
		if key == "enter" {
			return s.advance()
		}
		return s, nil
	}

	switch s.current().Kind {
	case les.KindAntonymTest, les.KindSynonymTest:
		if key == "enter" {
			return s.submitText()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case les.KindMultipleChoice, les.KindProgressQuiz, les.KindMatchPairs:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted() {
			return s.submitChoice()
		}
		return s, cmd

	case les.KindRootsMatch:
		if key == "enter" {
			return s.advance()
		}

	case les.KindPronunciation:
		switch key {
		case "p", "P":
			return s, s.speakCurrent()
		case "enter":
			return s, s.listen()
		case "s", "S":
			s.notice = ""
			return s.advance()
		}
	}

	return s, nil
}

// begin leaves the intro page. A lesson with no activities goes straight to
// the summary.
func (s *LessonScreen) begin() tea.Cmd {
	if len(s.lesson.Activities) == 0 {
		return s.finish()
	}
	s.phase = phaseActivity
	s.startActivity(0)
	return s.input.Init()
}

// startActivity prepares the interactive state for activity i.
func (s *LessonScreen) startActivity(i int) {
	s.actIdx = i
	s.itemIdx = 0
	s.notice = ""
	s.prepareItem()
}

// prepareItem sets up the input widget for the current question or pair.
func (s *LessonScreen) prepareItem() {
	act := s.current()
	switch act.Kind {
	case les.KindAntonymTest:
		s.input = components.NewTextInput("Type the antonym...", 30)
	case les.KindSynonymTest:
		s.input = components.NewTextInput("Type synonyms, separated by commas...", 80)
	case les.KindMultipleChoice, les.KindProgressQuiz:
		q := act.Questions[s.itemIdx]
		s.choice = components.NewChoiceList(q.Prompt, q.Options)
	case les.KindMatchPairs:
		if s.itemIdx == 0 {
			s.rights = activity.ShuffledRights(act.Pairs, s.shuffle)
		}
		p := act.Pairs[s.itemIdx]
		s.choice = components.NewChoiceList(fmt.Sprintf("Match: %s", p.Left), s.rights)
	}
}

// submitText grades the antonym and synonym variants. An empty submission
// grades as a normal incorrect answer.
func (s *LessonScreen) submitText() (screen.Screen, tea.Cmd) {
	act := s.current()
	q := act.Questions[s.itemIdx]

	var ok bool
	if act.Kind == les.KindAntonymTest {
		ok = activity.CheckAntonym(q, s.input.Value())
		if ok {
			s.feedback = "Correct!"
		} else {
			s.feedback = fmt.Sprintf("Not quite. The antonym is %q.", q.Answer)
		}
	} else {
		ok = activity.CheckSynonyms(q, s.input.Value())
		if ok {
			s.feedback = "Correct!"
		} else {
			s.feedback = fmt.Sprintf("Not quite. Good answers include: %s.", strings.Join(q.Answers, ", "))
		}
	}

	s.book.Record(activity.OutcomeKind(act.Kind), ok)
	s.input.Submit(ok)
	s.feedbackOK = ok
	s.showingFeedback = true
	return s, nil
}

// submitChoice grades the single-selection variants once the list locks in.
func (s *LessonScreen) submitChoice() (screen.Screen, tea.Cmd) {
	act := s.current()

	var ok bool
	switch act.Kind {
	case les.KindMatchPairs:
		p := act.Pairs[s.itemIdx]
		ok = activity.CheckMatch(p, s.choice.Chosen())
		s.choice.Resolve(p.Right)
	default:
		q := act.Questions[s.itemIdx]
		ok = activity.CheckChoice(q, s.choice.Chosen())
		s.choice.Resolve(q.Answer)
	}

	s.book.Record(activity.OutcomeKind(act.Kind), ok)
	if ok {
		s.feedback = "Correct!"
	} else {
		s.feedback = "Not quite."
	}
	s.feedbackOK = ok
	s.showingFeedback = true
	return s, nil
}

// speakCurrent pronounces the current drill word.
func (s *LessonScreen) speakCurrent() tea.Cmd {
	item := s.current().Items[s.itemIdx]
	text := item.Word
	if item.Say != "" {
		text = item.Say
	}
	synth := s.synth
	s.notice = "Playing..."
	return func() tea.Msg {
		return speakDoneMsg{Err: synth.Speak(context.Background(), text)}
	}
}

// listen captures one utterance for the current drill word.
func (s *LessonScreen) listen() tea.Cmd {
	recog := s.recog
	s.listening = true
	s.notice = "Listening..."
	return func() tea.Msg {
		transcript, err := recog.Listen(context.Background())
		return listenDoneMsg{Transcript: transcript, Err: err}
	}
}

func (s *LessonScreen) handleListenDone(msg listenDoneMsg) (screen.Screen, tea.Cmd) {
	s.listening = false
	s.notice = ""

	if msg.Err != nil {
		s.notice = speechNotice(msg.Err)
		return s, nil
	}

	item := s.current().Items[s.itemIdx]
	correct, graded := activity.CheckPronunciation(item, msg.Transcript)
	if !graded {
		s.notice = "Nothing heard. Try again or press S to skip."
		return s, nil
	}

	s.book.Record(activity.OutcomePronunciation, correct)
	if correct {
		s.feedback = fmt.Sprintf("Heard %q. Nice pronunciation!", msg.Transcript)
	} else {
		s.feedback = fmt.Sprintf("Heard %q. Give it another try next time.", msg.Transcript)
	}
	s.feedbackOK = correct
	s.showingFeedback = true
	return s, nil
}

// advance moves to the next question, pair, or activity. After the last
// activity the lesson screen is swapped for the summary.
func (s *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.feedback = ""
	s.notice = ""

	act := s.current()
	if s.itemIdx+1 < itemCount(act) {
		s.itemIdx++
		s.prepareItem()
		return s, s.input.Init()
	}

	if s.actIdx+1 < len(s.lesson.Activities) {
		s.startActivity(s.actIdx + 1)
		return s, s.input.Init()
	}

	return s, s.finish()
}

// itemCount is how many interaction steps an activity has.
func itemCount(act les.Activity) int {
	switch act.Kind {
	case les.KindRootsMatch:
		return 1 // all root cards shown on one page
	case les.KindPronunciation:
		return len(act.Items)
	case les.KindMatchPairs:
		return len(act.Pairs)
	default:
		return len(act.Questions)
	}
}

// finish hands the completed session to the summary screen. Replace, not
// push: there is no way back into a finished lesson.
func (s *LessonScreen) finish() tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.repo, s.lesson, s.book),
		}
	}
}

// speechNotice maps a speech error to a short user-facing line.
func speechNotice(err error) string {
	if errors.Is(err, speech.ErrUnsupported) {
		return "Speech is not available on this system. Press S to skip."
	}
	return fmt.Sprintf("Speech failed: %v", err)
}
