package mistakes

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
)

func (s *MistakesScreen) handleRemedialKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		s.done = false
		s.app.StopRemedial()
		return s, nil
	}
	if s.feedback != nil {
		s.advance()
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.app.StopRemedial()
		s.notice = ""
		return s, nil
	case "enter":
		return s.submit()
	case "tab":
		if err := s.app.SkipRemedial(); err != nil {
			s.setError(err)
			return s, nil
		}
		s.advance()
		return s, nil
	case "?":
		if _, err := s.app.RevealRemedial(); err != nil {
			s.setError(err)
			return s, nil
		}
		s.revealed = true
		return s, nil
	case "m":
		it := s.app.Remedial().Current()
		if it == nil {
			return s, nil
		}
		if _, err := s.app.MarkMastered(context.Background(), it.Expression, it.OriginalExpression); err != nil {
			s.setError(err)
			return s, nil
		}
		s.setNotice("Marked as mastered")
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *MistakesScreen) submit() (screen.Screen, tea.Cmd) {
	it, err := s.app.SubmitRemedial(context.Background(), s.input.Value())
	if errors.Is(err, problemgen.ErrInvalidAnswer) {
		s.setNotice("Type a whole number from 0 to 100.")
		return s, nil
	}
	if err != nil {
		s.setError(err)
		return s, nil
	}
	s.notice = ""
	s.input.Submit(it.Correct)
	s.feedback = it
	s.seq++
	return s, feedbackCmd(s.seq, s.delay)
}

// advance leaves the current item and moves the cursor. The completion
// banner is shown the one time the session reports it.
func (s *MistakesScreen) advance() {
	s.feedback = nil
	s.revealed = false
	s.input.Reset()
	done, err := s.app.NextRemedial()
	if err != nil {
		s.setError(err)
		return
	}
	s.done = done
}

func feedbackCmd(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}
