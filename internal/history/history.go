// Package history keeps the capped list of finished practice sessions.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// Capacity is the number of sessions kept.
const Capacity = 20

// Record summarizes one timed session.
type Record struct {
	Date     time.Time         `json:"date"`
	Mode     problemgen.Domain `json:"mode"`
	Correct  int               `json:"correct"`
	Wrong    int               `json:"wrong"`
	Total    int               `json:"total"`
	Accuracy int               `json:"accuracy"` // percent, rounded
	Duration int               `json:"duration"` // seconds
}

// NewRecord fills in Total and Accuracy from the counts.
func NewRecord(date time.Time, mode problemgen.Domain, correct, wrong int, elapsed time.Duration) Record {
	return Record{
		Date:     date,
		Mode:     mode,
		Correct:  correct,
		Wrong:    wrong,
		Total:    correct + wrong,
		Accuracy: Accuracy(correct, wrong),
		Duration: int(elapsed.Round(time.Second) / time.Second),
	}
}

// Accuracy returns the rounded percentage of correct answers, or 0 when
// nothing was answered.
func Accuracy(correct, wrong int) int {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return (correct*200 + total) / (total * 2)
}

// History is newest first.
type History struct {
	records []Record
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Add prepends r and drops the oldest entries beyond Capacity.
func (h *History) Add(r Record) {
	h.records = append([]Record{r}, h.records...)
	if len(h.records) > Capacity {
		h.records = h.records[:Capacity]
	}
}

// Records returns a copy, newest first.
func (h *History) Records() []Record {
	return append([]Record(nil), h.records...)
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Clear removes every record.
func (h *History) Clear() {
	h.records = nil
}

// Load reads history from repo, degrading to empty on any failure.
func Load(ctx context.Context, repo store.Repo, log *zap.Logger) *History {
	b, err := repo.Get(ctx, store.KeyHistory)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("load history failed, starting empty", zap.Error(err))
		}
		return New()
	}
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		log.Warn("history document is corrupt, starting empty", zap.Error(err))
		return New()
	}
	if len(recs) > Capacity {
		recs = recs[:Capacity]
	}
	return &History{records: recs}
}

// Save writes history to repo.
func (h *History) Save(ctx context.Context, repo store.Repo) error {
	b, err := json.Marshal(h.records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := repo.Put(ctx, store.KeyHistory, b); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
