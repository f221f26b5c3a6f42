package home

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screens/history"
	"github.com/abhisek/mathdrill/internal/store"
)

func testHome(t *testing.T) (*HomeScreen, *app.Context) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := app.New(context.Background(), app.Options{
		Repo: s.RecordRepo(),
		Rand: rand.New(rand.NewSource(2)),
		Now:  func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) },
	})
	return New(a), a
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHomeScreen_Title(t *testing.T) {
	h, _ := testHome(t)
	if h.Title() != "Choose a Mode" {
		t.Errorf("Title = %q", h.Title())
	}
}

func TestHomeScreen_StartsPractice(t *testing.T) {
	for _, tt := range []struct {
		key    rune
		domain problemgen.Domain
	}{
		{'1', problemgen.DomainAddSub},
		{'2', problemgen.DomainAllOps},
	} {
		h, a := testHome(t)
		h.Update(keyPress(tt.key))
		if a.State() != app.Practice {
			t.Fatalf("key %c: state = %s, want practice", tt.key, a.State())
		}
		if a.Session().Domain != tt.domain {
			t.Errorf("key %c: domain = %s, want %s", tt.key, a.Session().Domain, tt.domain)
		}
	}
}

func TestHomeScreen_Notebook(t *testing.T) {
	h, a := testHome(t)
	h.Update(keyPress('n'))
	if a.State() != app.WrongPractice {
		t.Errorf("state = %s, want wrong-practice", a.State())
	}
}

func TestHomeScreen_HistoryOpensAndCloses(t *testing.T) {
	h, _ := testHome(t)
	h.Update(keyPress('h'))
	if h.history == nil || h.Title() != "History" {
		t.Fatal("h should open the history view")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a close command")
	}
	msg, ok := cmd().(history.CloseMsg)
	if !ok {
		t.Fatal("esc should send CloseMsg")
	}
	h.Update(msg)
	if h.history != nil {
		t.Error("history view should close")
	}
}

func TestHomeScreen_Quit(t *testing.T) {
	h, _ := testHome(t)
	_, cmd := h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h, _ := testHome(t)
	view := h.View(100, 40)
	for _, want := range []string{"NOTHING TO REVIEW", "0 SESSIONS", "Mistake notebook"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_ViewCountsMistakes(t *testing.T) {
	h, a := testHome(t)
	recs := []notebook.Record{
		{Expression: "50 + 20 = ?", CorrectAnswer: 70, UserAnswer: 60},
		{Expression: "6 × ? = 42", CorrectAnswer: 7, UserAnswer: 8},
	}
	if _, err := a.ImportMistakes(context.Background(), recs); err != nil {
		t.Fatalf("import: %v", err)
	}
	if view := h.View(100, 40); !strings.Contains(view, "2 TO REVIEW") {
		t.Errorf("view missing review count:\n%s", view)
	}
}
