package mistakes

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/export"
	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

var t0 = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func record(expr string, correct, user int) notebook.Record {
	return notebook.Record{
		Expression:    expr,
		CorrectAnswer: correct,
		UserAnswer:    user,
		RecordedAt:    t0,
		Kind:          problemgen.KindNormal,
		Domain:        problemgen.DomainAddSub,
		Difficulty:    1,
	}
}

func newScreen(t *testing.T, recs ...notebook.Record) (*MistakesScreen, *app.Context) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "mistakes.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := app.New(context.Background(), app.Options{
		Repo: s.RecordRepo(),
		Rand: rand.New(rand.NewSource(3)),
		Now:  func() time.Time { return t0 },
	})
	if _, err := a.ImportMistakes(context.Background(), recs); err != nil {
		t.Fatalf("ImportMistakes: %v", err)
	}
	a.OpenNotebook()
	return New(a, t.TempDir(), time.Millisecond), a
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMistakesScreen_Title(t *testing.T) {
	s, _ := newScreen(t)
	if s.Title() != "Mistake Notebook" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestMistakesScreen_EmptyList(t *testing.T) {
	s, _ := newScreen(t)
	if !strings.Contains(s.View(80, 24), "No mistakes yet") {
		t.Error("empty notebook should say so")
	}
}

func TestMistakesScreen_ListShowsRecords(t *testing.T) {
	s, _ := newScreen(t, record("50 + 20 = ?", 70, 60), record("90 - 40 = ?", 50, 40))
	view := s.View(100, 30)
	for _, want := range []string{"50 + 20 = ?", "90 - 40 = ?", "2 mistakes", "level 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMistakesScreen_DeleteSelected(t *testing.T) {
	s, a := newScreen(t, record("50 + 20 = ?", 70, 60), record("90 - 40 = ?", 50, 40), record("30 + 30 = ?", 60, 50))

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Update(key('d'))

	if a.Notebook().Len() != 1 {
		t.Fatalf("len = %d, want 1", a.Notebook().Len())
	}
	if len(s.checked()) != 0 {
		t.Error("selection should clear after delete")
	}

	// With nothing selected the cursor row goes.
	s.Update(key('d'))
	if a.Notebook().Len() != 0 {
		t.Errorf("len = %d, want 0", a.Notebook().Len())
	}
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
}

func TestMistakesScreen_SelectAll(t *testing.T) {
	s, _ := newScreen(t, record("50 + 20 = ?", 70, 60), record("90 - 40 = ?", 50, 40))
	s.Update(key('a'))
	if len(s.checked()) != 2 {
		t.Fatalf("checked = %v, want both rows", s.checked())
	}
	s.Update(key('a'))
	if len(s.checked()) != 0 {
		t.Errorf("second a should clear, got %v", s.checked())
	}
}

func TestMistakesScreen_MasteredBlocksSimilar(t *testing.T) {
	s, a := newScreen(t, record("50 + 20 = ?", 70, 60))
	s.Update(key('m'))
	if !a.Notebook().Records()[0].Mastered {
		t.Fatal("record should be mastered")
	}

	s.Update(key('s'))
	if a.Remedial() != nil {
		t.Fatal("similar practice should not start when all are mastered")
	}
	if !strings.Contains(s.View(100, 30), "Every mistake is mastered") {
		t.Error("expected the all-mastered hint")
	}
}

func TestMistakesScreen_Level(t *testing.T) {
	s, a := newScreen(t)
	s.Update(key('3'))
	if a.Level() != 3 {
		t.Errorf("level = %d, want 3", a.Level())
	}
}

func TestMistakesScreen_Escape(t *testing.T) {
	s, a := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if a.State() != app.ModeSelection {
		t.Errorf("state = %s, want mode-selection", a.State())
	}
}

func TestMistakesScreen_RemedialRoundTrip(t *testing.T) {
	s, a := newScreen(t, record("50 + 20 = ?", 70, 60))

	s.Update(key('o'))
	rs := a.Remedial()
	if rs == nil || len(rs.Items) != 1 {
		t.Fatalf("remedial = %+v, want one item", rs)
	}
	if !strings.Contains(s.Title(), "original") {
		t.Errorf("Title = %q", s.Title())
	}

	s.input.SetValue("abc")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.feedback != nil {
		t.Fatal("invalid input should not be scored")
	}

	s.input.SetValue("70")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.feedback == nil || !s.feedback.Correct {
		t.Fatalf("feedback = %+v, want correct", s.feedback)
	}
	if got := a.Notebook().Records()[0].ConsecutiveCorrect; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}

	// A stale timer does nothing.
	s.Update(feedbackDoneMsg{seq: s.seq - 1})
	if s.feedback == nil {
		t.Fatal("stale feedback timer dismissed the verdict")
	}

	s.Update(feedbackDoneMsg{seq: s.seq})
	if !s.done {
		t.Fatal("single-item session should report completion")
	}
	if !strings.Contains(s.View(80, 24), "1 of 1 correct") {
		t.Error("completion banner missing")
	}

	s.Update(key('x'))
	if a.Remedial() != nil {
		t.Error("any key after completion should return to the list")
	}
	if a.State() != app.WrongPractice {
		t.Errorf("state = %s, want wrong-practice", a.State())
	}
}

func TestMistakesScreen_RevealAndStop(t *testing.T) {
	s, a := newScreen(t, record("50 + 20 = ?", 70, 60))
	s.Update(key('o'))
	s.Update(key('?'))
	if !strings.Contains(s.View(80, 24), "The answer is 70") {
		t.Error("reveal should show the answer")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if a.Remedial() != nil {
		t.Error("esc should stop the remedial session")
	}
}

func TestMistakesScreen_Exports(t *testing.T) {
	s, _ := newScreen(t, record("50 + 20 = ?", 70, 60))
	s.Update(key('e'))
	s.Update(key('w'))

	for _, name := range []string{export.NotebookFileName(t0), export.WorksheetFileName(t0)} {
		if _, err := os.Stat(filepath.Join(s.exportDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}
