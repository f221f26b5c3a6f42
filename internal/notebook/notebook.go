// Package notebook is the mistake notebook: wrong answers from live
// practice, their mastery streaks, and persistence of the list.
package notebook

import (
	"sort"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Capacity is the number of records kept; older ones are evicted.
const Capacity = 100

// MasteryStreak is the number of consecutive correct original-mode answers
// that marks a record mastered.
const MasteryStreak = 3

// Notebook holds records newest first. It is not safe for concurrent use;
// the application mutates it from a single update loop.
type Notebook struct {
	records []*Record
}

// New returns an empty notebook.
func New() *Notebook {
	return &Notebook{}
}

// FromRecords builds a notebook from persisted records, keeping their
// order and enforcing the capacity.
func FromRecords(recs []Record) *Notebook {
	nb := New()
	for i := range recs {
		r := recs[i]
		nb.records = append(nb.records, &r)
	}
	nb.truncate()
	return nb
}

// RecordMistake adds a wrong answer to the front of the notebook unless an
// entry with the same expression and user answer already exists. It
// reports whether a record was added.
func (nb *Notebook) RecordMistake(q *problemgen.Question, userAnswer int, now time.Time) bool {
	rec := &Record{
		Expression:    q.Expression(),
		CorrectAnswer: q.Answer(),
		UserAnswer:    userAnswer,
		RecordedAt:    now,
		Kind:          q.Kind(),
		Domain:        q.Domain,
		Difficulty:    q.Difficulty,
	}
	return nb.insert(rec)
}

// Merge adds an existing record (e.g. from an import) with the same
// de-duplication as RecordMistake.
func (nb *Notebook) Merge(rec Record) bool {
	return nb.insert(&rec)
}

func (nb *Notebook) insert(rec *Record) bool {
	if nb.Find(rec.Key()) != nil {
		return false
	}
	nb.records = append([]*Record{rec}, nb.records...)
	nb.truncate()
	return true
}

func (nb *Notebook) truncate() {
	if len(nb.records) > Capacity {
		nb.records = nb.records[:Capacity]
	}
}

// Find returns the record with the given key, or nil.
func (nb *Notebook) Find(k Key) *Record {
	for _, r := range nb.records {
		if r.Key() == k {
			return r
		}
	}
	return nil
}

// MarkMastered sets mastered on the first record whose expression equals
// expression or, for similar variants, originalExpression. It reports
// whether a record matched.
func (nb *Notebook) MarkMastered(expression, originalExpression string) bool {
	for _, r := range nb.records {
		if r.Expression == expression || (originalExpression != "" && r.Expression == originalExpression) {
			r.Mastered = true
			return true
		}
	}
	return false
}

// RecordRemedialOutcome applies an original-mode practice result to the
// record identified by k. A correct answer extends the streak and marks
// the record mastered once it reaches MasteryStreak; a wrong answer resets
// the streak. It reports whether the record changed.
func (nb *Notebook) RecordRemedialOutcome(k Key, correct bool) bool {
	r := nb.Find(k)
	if r == nil {
		return false
	}
	if !correct {
		changed := r.ConsecutiveCorrect != 0
		r.ConsecutiveCorrect = 0
		return changed
	}
	if r.Mastered {
		return false
	}
	r.ConsecutiveCorrect++
	if r.ConsecutiveCorrect >= MasteryStreak {
		r.Mastered = true
	}
	return true
}

// DeleteSelected removes the records at the given indices, working from
// the highest index down so earlier removals do not shift later ones.
// Duplicate and out-of-range indices are ignored. It returns the number
// of records removed.
func (nb *Notebook) DeleteSelected(indices []int) int {
	uniq := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(nb.records) {
			uniq[i] = struct{}{}
		}
	}
	sorted := make([]int, 0, len(uniq))
	for i := range uniq {
		sorted = append(sorted, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, i := range sorted {
		nb.records = append(nb.records[:i], nb.records[i+1:]...)
	}
	return len(sorted)
}

// Clear removes every record.
func (nb *Notebook) Clear() {
	nb.records = nil
}

// Len returns the number of records.
func (nb *Notebook) Len() int {
	return len(nb.records)
}

// Records returns a copy of the records, newest first.
func (nb *Notebook) Records() []Record {
	out := make([]Record, len(nb.records))
	for i, r := range nb.records {
		out[i] = *r
	}
	return out
}

// Unmastered returns copies of the records not yet mastered.
func (nb *Notebook) Unmastered() []Record {
	var out []Record
	for _, r := range nb.records {
		if !r.Mastered {
			out = append(out, *r)
		}
	}
	return out
}

// Eligible returns the records a remedial session at the given level may
// use: unmastered ones, or all of them at level 3.
func (nb *Notebook) Eligible(level int) []Record {
	if level >= 3 {
		return nb.Records()
	}
	return nb.Unmastered()
}
