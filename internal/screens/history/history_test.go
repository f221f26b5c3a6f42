package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	hist "github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

func testHistory() *hist.History {
	h := hist.New()
	day := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	h.Add(hist.NewRecord(day, problemgen.DomainAddSub, 8, 2, 95*time.Second))
	h.Add(hist.NewRecord(day.Add(time.Hour), problemgen.DomainAllOps, 3, 3, 10*time.Minute))
	return h
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(hist.New())
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected the empty message")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := New(testHistory())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 24), "Addition & subtraction") {
		t.Error("expanded row should show the mode")
	}
}

func TestHistoryScreen_Close(t *testing.T) {
	s := New(testHistory())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a close command")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Error("esc should send CloseMsg")
	}
}

func TestLine(t *testing.T) {
	r := hist.NewRecord(time.Now(), problemgen.DomainAddSub, 8, 2, 95*time.Second)
	got := Line(r)
	for _, want := range []string{"1:35", "10 questions", "80% accuracy"} {
		if !strings.Contains(got, want) {
			t.Errorf("Line = %q, missing %q", got, want)
		}
	}
}
