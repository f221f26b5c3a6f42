package practice

import "github.com/abhisek/mathdrill/internal/problemgen"

// State is the lifecycle of a remedial session.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	}
	return "not started"
}

// Session walks a learner through remedial items. The cursor wraps past
// the end so unanswered items can be revisited.
type Session struct {
	Mode  Mode
	Level int
	Items []*Item

	index    int
	state    State
	signaled bool
}

func newSession(mode Mode, level int, items []*Item) *Session {
	return &Session{Mode: mode, Level: level, Items: items}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Index returns the cursor position.
func (s *Session) Index() int {
	return s.index
}

// Current returns the item under the cursor.
func (s *Session) Current() *Item {
	if len(s.Items) == 0 {
		return nil
	}
	return s.Items[s.index]
}

// Answer records n as the answer to the current item and reports whether
// it was correct.
func (s *Session) Answer(n int) bool {
	it := s.Current()
	if it == nil {
		return false
	}
	it.Answered = true
	it.Skipped = false
	it.UserAnswer = n
	it.Correct = problemgen.CheckExpression(it.Expression, it.CorrectAnswer, n)
	s.start()
	return it.Correct
}

// Skip records the current item as skipped.
func (s *Session) Skip() {
	it := s.Current()
	if it == nil {
		return
	}
	if !it.Answered {
		it.Skipped = true
	}
	s.start()
}

// Reveal returns the current item's answer without scoring it.
func (s *Session) Reveal() int {
	if it := s.Current(); it != nil {
		return it.CorrectAnswer
	}
	return 0
}

func (s *Session) start() {
	if s.state == NotStarted {
		s.state = InProgress
	}
}

// Next advances the cursor, wrapping to the first item after the last.
// It reports true exactly once: on the first wrap at which every item has
// an outcome.
func (s *Session) Next() bool {
	if len(s.Items) == 0 {
		return false
	}
	s.index++
	if s.index < len(s.Items) {
		return false
	}
	s.index = 0
	if s.signaled || !s.allDone() {
		return false
	}
	s.signaled = true
	s.state = Completed
	return true
}

func (s *Session) allDone() bool {
	for _, it := range s.Items {
		if !it.HasOutcome() {
			return false
		}
	}
	return true
}

// Progress returns how many items have an outcome and the session size.
func (s *Session) Progress() (done, total int) {
	for _, it := range s.Items {
		if it.HasOutcome() {
			done++
		}
	}
	return done, len(s.Items)
}

// CorrectCount returns the number of items whose latest answer was correct.
func (s *Session) CorrectCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Answered && it.Correct {
			n++
		}
	}
	return n
}
