package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseEnded                        // Timer expired or learner finished
)

// Result is the outcome of one served question.
type Result struct {
	Question   *problemgen.Question
	UserAnswer int
	Correct    bool
	Skipped    bool
}

// SessionState tracks the runtime state of a timed practice session.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Domain is the operator ruleset questions are drawn from.
	Domain problemgen.Domain

	// Questions is every question generated so far, including ones not
	// yet served.
	Questions []*problemgen.Question

	// Results holds outcomes in the order questions were answered.
	Results []Result

	// Index is the position of the current question in Questions.
	Index int

	// TotalCorrect and TotalWrong count scored answers.
	TotalCorrect int
	TotalWrong   int

	// StartTime is when the session began.
	StartTime time.Time

	// Remaining is the time left on the session clock.
	Remaining time.Duration

	// Phase is the current session phase.
	Phase SessionPhase

	// LastResult is the most recent outcome, for feedback display.
	LastResult *Result

	// epoch ties timer and replenish messages to this session.
	epoch uint64
}

// Epoch identifies this session for delayed messages.
func (s *SessionState) Epoch() uint64 {
	return s.epoch
}

// CurrentQuestion returns the question being shown, or nil.
func (s *SessionState) CurrentQuestion() *problemgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Index]
}

// Active reports whether the session still accepts answers.
func (s *SessionState) Active() bool {
	return s.Phase != PhaseEnded
}

// Accuracy returns the rounded percentage of correct scored answers.
func (s *SessionState) Accuracy() int {
	return history.Accuracy(s.TotalCorrect, s.TotalWrong)
}
