package lesson

import (
	"encoding/json"
	"strings"
)

// Kind is the closed set of activity variants. The variant determines which
// payload fields an Activity carries; the two never mix.
type Kind int

const (
	KindUnknown Kind = iota
	KindAntonymTest
	KindSynonymTest
	KindMultipleChoice
	KindRootsMatch
	KindPronunciation
	KindMatchPairs
	KindProgressQuiz
)

var kindTags = map[string]Kind{
	"antonym_test":    KindAntonymTest,
	"synonym_test":    KindSynonymTest,
	"multiple_choice": KindMultipleChoice,
	"roots_match":     KindRootsMatch,
	"pronunciation":   KindPronunciation,
	"match_pairs":     KindMatchPairs,
	"progress_quiz":   KindProgressQuiz,
}

// ParseKind maps a document type tag to its Kind. Unknown tags map to
// KindUnknown; the store drops those activities at load time.
func ParseKind(tag string) Kind {
	return kindTags[tag]
}

// Tag returns the document type tag for the kind.
func (k Kind) Tag() string {
	for tag, kind := range kindTags {
		if kind == k {
			return tag
		}
	}
	return ""
}

// DisplayName returns a title-cased human name, e.g. "Antonym Test".
func (k Kind) DisplayName() string {
	tag := k.Tag()
	if tag == "" {
		return "Unknown"
	}
	words := strings.Split(tag, "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Lesson is one day's bundle of intro text and ordered activities.
// Immutable for the duration of a session.
type Lesson struct {
	Day        int
	Title      string
	Intro      string
	Activities []Activity
}

// Activity is one typed exercise unit. Exactly one payload slice is
// populated, according to Kind.
type Activity struct {
	Kind         Kind
	Instructions string

	Questions []Question  // antonym_test, synonym_test, multiple_choice, progress_quiz
	Roots     []RootPair  // roots_match
	Items     []SpeakItem // pronunciation
	Pairs     []MatchPair // match_pairs
}

// Empty reports whether the activity carries no payload for its kind. The
// session driver assumes at least one question, pair, root, or item per
// activity, so the store drops empty activities at load time.
func (a Activity) Empty() bool {
	switch a.Kind {
	case KindRootsMatch:
		return len(a.Roots) == 0
	case KindPronunciation:
		return len(a.Items) == 0
	case KindMatchPairs:
		return len(a.Pairs) == 0
	default:
		return len(a.Questions) == 0
	}
}

// Question is a prompt with its expected answer(s).
// Answer is set for antonym/multiple-choice/progress shapes,
// Answers for the synonym shape, Options for the choice shapes.
type Question struct {
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Answers []string `json:"answers"`
	Options []string `json:"options"`
}

// RootPair is an informational word-root card. Never graded.
type RootPair struct {
	Root     string   `json:"root"`
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples"`
}

// SpeakItem is one pronunciation drill target. Say, when set, overrides
// Word as the text handed to the synthesizer.
type SpeakItem struct {
	Word     string `json:"word"`
	Say      string `json:"say"`
	Sentence string `json:"sentence"`
}

// MatchPair is one left/right matching pair.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type rawActivity struct {
	Type         string          `json:"type"`
	Instructions string          `json:"instructions"`
	Questions    json.RawMessage `json:"questions"`
	Pairs        json.RawMessage `json:"pairs"`
	Items        json.RawMessage `json:"items"`
}

// UnmarshalJSON decodes the tagged union: the type tag selects which payload
// field is read. The `pairs` key is shared by two variants with different
// element shapes, so it is decoded per kind.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw rawActivity
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Kind = ParseKind(raw.Type)
	a.Instructions = raw.Instructions

	switch a.Kind {
	case KindAntonymTest, KindSynonymTest, KindMultipleChoice, KindProgressQuiz:
		if len(raw.Questions) > 0 {
			return json.Unmarshal(raw.Questions, &a.Questions)
		}
	case KindRootsMatch:
		if len(raw.Pairs) > 0 {
			return json.Unmarshal(raw.Pairs, &a.Roots)
		}
	case KindPronunciation:
		if len(raw.Items) > 0 {
			return json.Unmarshal(raw.Items, &a.Items)
		}
	case KindMatchPairs:
		if len(raw.Pairs) > 0 {
			return json.Unmarshal(raw.Pairs, &a.Pairs)
		}
	}
	return nil
}
