package session

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// mockRepo keeps documents in memory.
type mockRepo struct {
	docs map[string][]byte
}

func (m *mockRepo) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.docs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (m *mockRepo) Put(_ context.Context, key string, value []byte) error {
	m.docs[key] = value
	return nil
}

func (m *mockRepo) Delete(_ context.Context, key string) error {
	delete(m.docs, key)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(t *testing.T) (*SessionScreen, *app.Context) {
	t.Helper()
	a := app.New(context.Background(), app.Options{
		Repo:    &mockRepo{docs: map[string][]byte{}},
		Rand:    rand.New(rand.NewSource(7)),
		Session: sess.Config{Duration: 2 * time.Second},
		Now:     func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) },
	})
	if _, err := a.StartPractice(problemgen.DomainAddSub); err != nil {
		t.Fatalf("StartPractice: %v", err)
	}
	return New(a, Timings{}), a
}

func typeAnswer(s *SessionScreen, n int) {
	for _, r := range strconv.Itoa(n) {
		s.Update(keyPress(r))
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestSessionScreen_View(t *testing.T) {
	s, a := testSessionScreen(t)
	view := s.View(80, 24)
	if !strings.Contains(view, a.Session().CurrentQuestion().Expression()) {
		t.Error("view should show the current question")
	}
	if !strings.Contains(view, "0:02") {
		t.Error("view should show the clock")
	}
}

func TestSessionScreen_Init(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Init() == nil {
		t.Error("Init should schedule the timer")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, a := testSessionScreen(t)

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.confirmQuit {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
	if a.State() != app.Practice {
		t.Errorf("state = %s, want practice", a.State())
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, a := testSessionScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('y'))

	if a.State() != app.Result {
		t.Errorf("state = %s, want result", a.State())
	}
	if a.History().Len() != 1 {
		t.Errorf("history len = %d, want 1", a.History().Len())
	}
}

func TestSessionScreen_AnswerSubmit(t *testing.T) {
	s, a := testSessionScreen(t)
	q := a.Session().CurrentQuestion()

	typeAnswer(s, q.Answer())
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a feedback timer")
	}

	st := a.Session()
	if st.Phase != sess.PhaseFeedback || !st.LastResult.Correct {
		t.Fatalf("phase = %v, last = %+v", st.Phase, st.LastResult)
	}
	if !strings.Contains(s.View(80, 24), "Correct") {
		t.Error("view should show feedback")
	}

	// The feedback timer moves on to the next question.
	s.Update(feedbackDoneMsg{epoch: st.Epoch(), answered: len(st.Results)})
	if st.Phase != sess.PhaseActive || st.Index != 1 {
		t.Errorf("phase = %v, index = %d, want next question", st.Phase, st.Index)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared for the next question")
	}
}

func TestSessionScreen_FeedbackDismiss(t *testing.T) {
	s, a := testSessionScreen(t)
	typeAnswer(s, a.Session().CurrentQuestion().Answer())
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('x'))
	if a.Session().Phase != sess.PhaseActive {
		t.Error("any key should dismiss feedback")
	}
}

func TestSessionScreen_StaleFeedbackIgnored(t *testing.T) {
	s, a := testSessionScreen(t)
	typeAnswer(s, a.Session().CurrentQuestion().Answer())
	s.Update(specialKey(tea.KeyEnter))
	st := a.Session()

	s.Update(feedbackDoneMsg{epoch: st.Epoch(), answered: len(st.Results) - 1})
	if st.Phase != sess.PhaseFeedback {
		t.Error("feedback for an earlier answer should be ignored")
	}
}

func TestSessionScreen_InvalidInput(t *testing.T) {
	s, a := testSessionScreen(t)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty input should not schedule feedback")
	}
	if s.errMsg == "" {
		t.Error("expected an input hint")
	}
	if st := a.Session(); st.TotalCorrect+st.TotalWrong != 0 {
		t.Error("empty input should not be scored")
	}
}

func TestSessionScreen_NumericOnly(t *testing.T) {
	s, _ := testSessionScreen(t)
	s.Update(keyPress('4'))
	s.Update(keyPress('a'))
	s.Update(keyPress('2'))
	if s.input.Value() != "42" {
		t.Errorf("input = %q, want %q", s.input.Value(), "42")
	}
}

func TestSessionScreen_Skip(t *testing.T) {
	s, a := testSessionScreen(t)
	s.Update(specialKey(tea.KeyTab))
	st := a.Session()
	if st.Index != 1 || len(st.Results) != 1 || !st.Results[0].Skipped {
		t.Errorf("index = %d, results = %+v", st.Index, st.Results)
	}
}

func TestSessionScreen_TimerRunsOut(t *testing.T) {
	s, a := testSessionScreen(t)
	epoch := a.Session().Epoch()

	_, cmd := s.Update(timerTickMsg{epoch: epoch})
	if cmd == nil {
		t.Fatal("timer should reschedule while time remains")
	}
	_, cmd = s.Update(timerTickMsg{epoch: epoch})
	if cmd != nil {
		t.Error("timer should stop when the session ends")
	}
	if a.State() != app.Result {
		t.Errorf("state = %s, want result", a.State())
	}
}

func TestSessionScreen_StaleTickIgnored(t *testing.T) {
	s, a := testSessionScreen(t)
	old := a.Session().Epoch()
	if _, err := a.StartPractice(problemgen.DomainAllOps); err != nil {
		t.Fatalf("StartPractice: %v", err)
	}
	remaining := a.Session().Remaining

	_, cmd := s.Update(timerTickMsg{epoch: old})
	if cmd != nil {
		t.Error("a tick from an old session should not reschedule")
	}
	if a.Session().Remaining != remaining {
		t.Error("a tick from an old session changed the clock")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
	s.Update(specialKey(tea.KeyEscape))
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("quit hints = %+v", hints)
	}
}
