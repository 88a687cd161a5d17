package gradebook

import (
	"math"

	"github.com/google/uuid"
)

// Outcome is one checked answer. Outcomes are append-only for the life of a
// lesson session; a new session gets a fresh GradeBook.
type Outcome struct {
	Kind    string
	Correct bool
}

// Summary aggregates a session's outcomes.
type Summary struct {
	Correct int
	Total   int
	Pct     int
}

// GradeBook is the ordered log of per-question outcomes for one lesson
// session.
type GradeBook struct {
	sessionID string
	outcomes  []Outcome
}

// New creates an empty GradeBook with a fresh session ID.
func New() *GradeBook {
	return &GradeBook{sessionID: uuid.New().String()}
}

// SessionID returns the identifier of this lesson session.
func (g *GradeBook) SessionID() string {
	return g.sessionID
}

// Record appends one outcome to the log.
func (g *GradeBook) Record(kind string, correct bool) {
	g.outcomes = append(g.outcomes, Outcome{Kind: kind, Correct: correct})
}

// Outcomes returns a copy of the outcome log, in the order recorded.
func (g *GradeBook) Outcomes() []Outcome {
	out := make([]Outcome, len(g.outcomes))
	copy(out, g.outcomes)
	return out
}

// Summarize computes the aggregate score. An empty log is 0/0 at 0%,
// never a division by zero.
func (g *GradeBook) Summarize() Summary {
	s := Summary{Total: len(g.outcomes)}
	for _, o := range g.outcomes {
		if o.Correct {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Pct = int(math.Round(float64(s.Correct) * 100 / float64(s.Total)))
	}
	return s
}
