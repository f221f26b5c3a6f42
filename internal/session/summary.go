package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/history"
)

// SessionSummary holds the data displayed on the result screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	TotalWrong     int
	Accuracy       int
	Results        []Result
}

// BuildSummary creates a SessionSummary from the session state. Skipped
// questions are left out of Results.
func BuildSummary(state *SessionState, duration time.Duration) *SessionSummary {
	var results []Result
	for _, r := range state.Results {
		if !r.Skipped {
			results = append(results, r)
		}
	}
	elapsed := duration - state.Remaining
	if elapsed < 0 {
		elapsed = 0
	}
	return &SessionSummary{
		Duration:       elapsed,
		TotalQuestions: state.TotalCorrect + state.TotalWrong,
		TotalCorrect:   state.TotalCorrect,
		TotalWrong:     state.TotalWrong,
		Accuracy:       state.Accuracy(),
		Results:        results,
	}
}

// HistoryRecord converts the session into a history entry.
func HistoryRecord(state *SessionState, duration time.Duration, now time.Time) history.Record {
	sum := BuildSummary(state, duration)
	return history.NewRecord(now, state.Domain, sum.TotalCorrect, sum.TotalWrong, sum.Duration)
}

// Duration returns the configured session length.
func (c *Controller) Duration() time.Duration {
	return c.cfg.Duration
}
