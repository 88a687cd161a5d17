package gradebook

import "testing"

func TestSummarize_Empty(t *testing.T) {
	g := New()
	s := g.Summarize()
	if s.Correct != 0 || s.Total != 0 || s.Pct != 0 {
		t.Errorf("Summarize() = %+v, want all zero", s)
	}
}

func TestSummarize_Rounding(t *testing.T) {
	g := New()
	g.Record("mc", true)
	g.Record("mc", true)
	g.Record("antonym", false)

	s := g.Summarize()
	if s.Correct != 2 || s.Total != 3 {
		t.Errorf("Summarize() = %+v, want 2/3", s)
	}
	// 66.67 rounds up.
	if s.Pct != 67 {
		t.Errorf("Pct = %d, want 67", s.Pct)
	}
}

func TestRecord_PreservesOrder(t *testing.T) {
	g := New()
	g.Record("antonym", true)
	g.Record("synonym", false)
	g.Record("pronunciation", true)

	got := g.Outcomes()
	want := []Outcome{
		{Kind: "antonym", Correct: true},
		{Kind: "synonym", Correct: false},
		{Kind: "pronunciation", Correct: true},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("outcome[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOutcomes_ReturnsCopy(t *testing.T) {
	g := New()
	g.Record("mc", true)

	out := g.Outcomes()
	out[0].Correct = false

	if !g.Outcomes()[0].Correct {
		t.Error("mutating the returned slice leaked into the log")
	}
}

func TestSessionID_Stable(t *testing.T) {
	g := New()
	if g.SessionID() == "" {
		t.Fatal("empty session ID")
	}
	if g.SessionID() != g.SessionID() {
		t.Error("session ID changed between calls")
	}
}
