// Package session is the timed practice screen.
package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Timings for the practice screen.
type Timings struct {
	ReplenishDelay time.Duration
	FeedbackDelay  time.Duration
}

// DefaultTimings returns a one second top-up delay and 1.5s of feedback.
func DefaultTimings() Timings {
	return Timings{ReplenishDelay: time.Second, FeedbackDelay: 1500 * time.Millisecond}
}

// SessionScreen implements screen.Screen for the active session.
type SessionScreen struct {
	app         *app.Context
	timings     Timings
	input       components.TextInput
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the session already started on a.
func New(a *app.Context, t Timings) *SessionScreen {
	def := DefaultTimings()
	if t.ReplenishDelay <= 0 {
		t.ReplenishDelay = def.ReplenishDelay
	}
	if t.FeedbackDelay <= 0 {
		t.FeedbackDelay = def.FeedbackDelay
	}
	return &SessionScreen{
		app:     a,
		timings: t,
		input:   components.NewTextInput("0-100", true, 3),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	st := s.app.Session()
	if st == nil {
		return nil
	}
	return tea.Batch(
		s.input.Init(),
		tickCmd(st.Epoch()),
		replenishCmd(st.Epoch(), s.timings.ReplenishDelay),
	)
}

func (s *SessionScreen) Title() string {
	return app.ViewFor(app.Practice).Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	st := s.app.Session()
	if st == nil {
		return nil
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if st.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return app.ViewFor(app.Practice).Hints
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case replenishMsg:
		return s.handleReplenish(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// live reports whether epoch still names the running session.
func (s *SessionScreen) live(epoch uint64) bool {
	st := s.app.Session()
	return st != nil && st.Epoch() == epoch && st.Active()
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if !s.live(msg.epoch) {
		return s, nil
	}
	if s.app.Tick(context.Background(), msg.epoch) {
		// The application moved to the result state.
		return s, nil
	}
	return s, tickCmd(msg.epoch)
}

func (s *SessionScreen) handleReplenish(msg replenishMsg) (screen.Screen, tea.Cmd) {
	if s.app.Replenish(msg.epoch) == 0 {
		return s, nil
	}
	return s, replenishCmd(msg.epoch, s.timings.ReplenishDelay)
}

func (s *SessionScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	st := s.app.Session()
	if !s.live(msg.epoch) || st.Phase != sess.PhaseFeedback || len(st.Results) != msg.answered {
		return s, nil
	}
	return s.next()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	st := s.app.Session()
	if st == nil || !st.Active() {
		return s, nil
	}
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			if _, err := s.app.EndPractice(context.Background()); err != nil {
				s.errMsg = err.Error()
			}
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if st.Phase == sess.PhaseFeedback {
		return s.next()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "tab":
		s.errMsg = ""
		s.input.Reset()
		if err := s.app.SkipQuestion(); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	res, err := s.app.SubmitAnswer(context.Background(), s.input.Value())
	if errors.Is(err, problemgen.ErrInvalidAnswer) {
		s.errMsg = "Type a whole number from 0 to 100."
		return s, nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.input.Submit(res.Correct)

	st := s.app.Session()
	return s, feedbackCmd(st.Epoch(), len(st.Results), s.timings.FeedbackDelay)
}

func (s *SessionScreen) next() (screen.Screen, tea.Cmd) {
	if err := s.app.NextQuestion(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Reset()
	return s, nil
}

func tickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{epoch: epoch}
	})
}

func replenishCmd(epoch uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return replenishMsg{epoch: epoch}
	})
}

func feedbackCmd(epoch uint64, answered int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{epoch: epoch, answered: answered}
	})
}
