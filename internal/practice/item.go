package practice

import (
	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/similar"
)

// Type says whether an item repeats a notebook record or is a variant.
type Type string

const (
	TypeOriginal Type = "original"
	TypeSimilar  Type = "similar"
)

// Item is one question in a remedial session.
type Item struct {
	Type          Type
	Expression    string
	CorrectAnswer int

	// Source identifies the notebook record this item came from.
	Source notebook.Key

	// Mastered is the source record's state when the session was built.
	Mastered bool

	// Set for similar variants only.
	OriginalExpression string
	OriginalAnswer     int

	// Outcome of the latest attempt.
	Answered   bool
	Skipped    bool
	Correct    bool
	UserAnswer int
}

// HasOutcome reports whether the item was answered or skipped.
func (it *Item) HasOutcome() bool {
	return it.Answered || it.Skipped
}

func originalItem(rec notebook.Record) *Item {
	return &Item{
		Type:          TypeOriginal,
		Expression:    rec.Expression,
		CorrectAnswer: rec.CorrectAnswer,
		Source:        rec.Key(),
		Mastered:      rec.Mastered,
	}
}

func similarItem(rec notebook.Record, q *similar.Question) *Item {
	return &Item{
		Type:               TypeSimilar,
		Expression:         q.Expression(),
		CorrectAnswer:      q.CorrectAnswer,
		Source:             rec.Key(),
		Mastered:           rec.Mastered,
		OriginalExpression: q.OriginalExpression,
		OriginalAnswer:     q.OriginalAnswer,
	}
}
