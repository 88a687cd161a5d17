package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyankc/wordup/internal/screen"
)

type stubScreen struct {
	name    string
	inited  bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestRouter_PushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	child := &stubScreen{name: "child"}
	r.Push(child)
	if !child.inited {
		t.Error("Push did not Init the screen")
	}
	if r.Active() != screen.Screen(child) {
		t.Error("Active is not the pushed screen")
	}

	r.Pop()
	if r.Active() != screen.Screen(home) {
		t.Error("Pop did not restore the previous screen")
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping root, want 1", r.Depth())
	}
}

func TestRouter_Replace(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Push(&stubScreen{name: "lesson"})

	summary := &stubScreen{name: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("Active = %q, want summary", r.Active().Title())
	}

	// A single Pop from the replaced screen lands on home.
	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("Active = %q, want home", r.Active().Title())
	}
}

func TestRouter_BroadcastReachesEveryScreen(t *testing.T) {
	home := &stubScreen{name: "home"}
	child := &stubScreen{name: "child"}
	r := New(home)
	r.Push(child)

	r.Broadcast(struct{}{})

	if home.updates != 1 {
		t.Errorf("home updates = %d, want 1", home.updates)
	}
	if child.updates != 1 {
		t.Errorf("child updates = %d, want 1", child.updates)
	}
}

func TestRouter_NavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})
	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "b"}})
	if r.Active().Title() != "b" {
		t.Errorf("Active = %q, want b", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
}
