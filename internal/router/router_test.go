package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pokefit/pokefit/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	name      string
	initRan   bool
	resumed   int
	lastMsg   tea.Msg
	resumeCmd tea.Cmd
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.name }
func (s *stubScreen) Resume() tea.Cmd {
	s.resumed++
	return s.resumeCmd
}

type resumeMsg struct{}

func TestPush(t *testing.T) {
	s1 := &stubScreen{name: "survey"}
	r := New(s1)

	s2 := &stubScreen{name: "confirm"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.View(10, 10) != "confirm" {
		t.Errorf("expected active 'confirm', got %q", r.View(10, 10))
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopResumesScreenBelow(t *testing.T) {
	s1 := &stubScreen{name: "survey", resumeCmd: func() tea.Msg { return resumeMsg{} }}
	r := New(s1)
	r.Push(&stubScreen{name: "confirm"})

	cmd := r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if s1.resumed != 1 {
		t.Errorf("expected survey to be resumed once, got %d", s1.resumed)
	}
	if cmd == nil {
		t.Fatal("expected resume command")
	}
	if _, ok := cmd().(resumeMsg); !ok {
		t.Error("expected resumeMsg from resume command")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{name: "survey"}
	r := New(s1)

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected nil command when popping the last screen")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.resumed != 0 {
		t.Error("bottom screen should not be resumed by a no-op pop")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{name: "welcome"}
	r := New(s1)

	s2 := &stubScreen{name: "survey"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active() != s2 {
		t.Error("expected survey to be active")
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestNavigationMsgs(t *testing.T) {
	s1 := &stubScreen{name: "survey"}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "confirm"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}
	if s1.lastMsg != nil {
		t.Errorf("navigation messages should not reach screens, got %T", s1.lastMsg)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{name: "survey"}
	r := New(s1)

	msg := tea.KeyPressMsg{Code: tea.KeyEnter}
	r.Update(msg)
	if s1.lastMsg != msg {
		t.Errorf("expected key message to reach active screen, got %v", s1.lastMsg)
	}
}
