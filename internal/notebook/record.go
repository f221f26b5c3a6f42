package notebook

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Record is one entry in the mistake notebook. JSON names match the
// documents written by earlier versions so exported notebooks import
// cleanly.
type Record struct {
	Expression         string            `json:"expression"`
	CorrectAnswer      int               `json:"correctAnswer"`
	UserAnswer         int               `json:"userAnswer"`
	RecordedAt         time.Time         `json:"date"`
	Kind               problemgen.Kind   `json:"type"`
	Domain             problemgen.Domain `json:"originalType"`
	Difficulty         int               `json:"difficulty"`
	Mastered           bool              `json:"mastered"`
	ConsecutiveCorrect int               `json:"practiceCount"`
}

// Key identifies a record. Two mistakes are the same entry iff both the
// expression and the wrong answer match.
type Key struct {
	Expression string
	UserAnswer int
}

// Key returns the identity of r.
func (r *Record) Key() Key {
	return Key{Expression: r.Expression, UserAnswer: r.UserAnswer}
}

// Status is a short learner-facing label for the record's progress.
func (r *Record) Status() string {
	switch {
	case r.Mastered:
		return "mastered"
	case r.ConsecutiveCorrect > 0:
		return "learning"
	}
	return "new"
}
