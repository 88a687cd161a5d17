package lesson

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxDay is the length of the challenge.
const MaxDay = 30

//go:embed data
var builtinFS embed.FS

// Store resolves per-day lesson documents. An override directory, when set,
// is consulted before the builtin embedded lessons so learners can author
// their own content.
type Store struct {
	overrideDir string
	builtin     fs.FS
}

// NewStore creates a Store. overrideDir may be empty.
func NewStore(overrideDir string) *Store {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// embed guarantees the directory exists; keep the zero FS fallback
		// so Load still degrades to placeholders.
		sub = builtinFS
	}
	return &Store{overrideDir: overrideDir, builtin: sub}
}

// Load returns the lesson for day. Loading never fails: a missing file,
// unreadable content, or an invalid document all fall through to a
// placeholder lesson after a single attempt. Activities with an unknown
// type tag or an empty payload are dropped.
func (s *Store) Load(day int) *Lesson {
	raw, err := s.read(day)
	if err != nil {
		return Placeholder(day)
	}

	if err := validateDocument(raw); err != nil {
		return Placeholder(day)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Placeholder(day)
	}
	l := Lesson{
		Day:        doc.Day,
		Title:      doc.Title,
		Intro:      doc.Intro,
		Activities: doc.Activities,
	}

	kept := l.Activities[:0]
	for _, a := range l.Activities {
		if a.Kind != KindUnknown && !a.Empty() {
			kept = append(kept, a)
		}
	}
	l.Activities = kept
	if l.Activities == nil {
		l.Activities = []Activity{}
	}
	return &l
}

// document is the on-disk envelope of a lesson file.
type document struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Intro      string     `json:"intro"`
	Activities []Activity `json:"activities"`
}

// read fetches the raw document, preferring the override directory.
func (s *Store) read(day int) ([]byte, error) {
	name := fmt.Sprintf("day%d.json", day)
	if s.overrideDir != "" {
		if raw, err := os.ReadFile(filepath.Join(s.overrideDir, name)); err == nil {
			return raw, nil
		}
	}
	return fs.ReadFile(s.builtin, name)
}

// Placeholder is the lesson served when no usable document exists for day.
func Placeholder(day int) *Lesson {
	return &Lesson{
		Day:        day,
		Title:      fmt.Sprintf("Day %d", day),
		Intro:      "Lesson content coming soon.",
		Activities: []Activity{},
	}
}
