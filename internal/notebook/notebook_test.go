package notebook

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/solver"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func question(left, right int) *problemgen.Question {
	return &problemgen.Question{
		Equation: problemgen.Equation{
			Left: left, Op: solver.Add, Right: right, Result: left + right,
			Missing: problemgen.SlotResult,
		},
		Domain:     problemgen.DomainAddSub,
		Difficulty: 1,
	}
}

func TestRecordMistake(t *testing.T) {
	nb := New()
	q := question(50, 20)

	if !nb.RecordMistake(q, 60, now) {
		t.Fatal("first mistake should be added")
	}
	r := nb.Records()[0]
	if r.Expression != "50 + 20 = ?" || r.CorrectAnswer != 70 || r.UserAnswer != 60 {
		t.Errorf("record = %+v", r)
	}
	if r.Mastered || r.ConsecutiveCorrect != 0 {
		t.Errorf("new record should start unmastered with no streak: %+v", r)
	}
	if r.Kind != problemgen.KindNormal || r.Domain != problemgen.DomainAddSub {
		t.Errorf("kind/domain = %s/%s", r.Kind, r.Domain)
	}
}

func TestRecordMistake_Dedup(t *testing.T) {
	nb := New()
	q := question(50, 20)

	nb.RecordMistake(q, 60, now)
	if nb.RecordMistake(q, 60, now.Add(time.Minute)) {
		t.Error("identical (expression, answer) should not be added twice")
	}
	if nb.Len() != 1 {
		t.Errorf("len = %d, want 1", nb.Len())
	}

	// A different wrong answer is a different entry.
	if !nb.RecordMistake(q, 61, now) {
		t.Error("different user answer should be added")
	}
	if nb.Len() != 2 {
		t.Errorf("len = %d, want 2", nb.Len())
	}
}

func TestRecordMistake_NewestFirstAndCap(t *testing.T) {
	nb := New()
	for i := 0; i < Capacity; i++ {
		nb.RecordMistake(question(i, 0), 100, now)
	}
	if nb.Len() != Capacity {
		t.Fatalf("len = %d, want %d", nb.Len(), Capacity)
	}

	nb.RecordMistake(question(0, 1), 100, now)
	if nb.Len() != Capacity {
		t.Fatalf("len after 101st = %d, want %d", nb.Len(), Capacity)
	}

	recs := nb.Records()
	if recs[0].Expression != "0 + 1 = ?" {
		t.Errorf("newest = %q, want %q", recs[0].Expression, "0 + 1 = ?")
	}
	// The oldest (0 + 0) is gone; the second oldest (1 + 0) is last.
	if last := recs[Capacity-1].Expression; last != "1 + 0 = ?" {
		t.Errorf("oldest kept = %q, want %q", last, "1 + 0 = ?")
	}
	if nb.Find(Key{Expression: "0 + 0 = ?", UserAnswer: 100}) != nil {
		t.Error("oldest record should have been evicted")
	}
}

func TestMastery_ThreeInARow(t *testing.T) {
	nb := New()
	nb.RecordMistake(question(50, 20), 60, now)
	k := nb.Records()[0].Key()

	for i := 0; i < 2; i++ {
		nb.RecordRemedialOutcome(k, true)
	}
	if nb.Find(k).Mastered {
		t.Fatal("two correct answers should not master")
	}
	nb.RecordRemedialOutcome(k, true)
	if !nb.Find(k).Mastered {
		t.Fatal("three correct answers should master")
	}
}

func TestMastery_WrongResets(t *testing.T) {
	nb := New()
	nb.RecordMistake(question(50, 20), 60, now)
	k := nb.Records()[0].Key()

	nb.RecordRemedialOutcome(k, true)
	nb.RecordRemedialOutcome(k, true)
	nb.RecordRemedialOutcome(k, false)
	if got := nb.Find(k).ConsecutiveCorrect; got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}

	nb.RecordRemedialOutcome(k, true)
	nb.RecordRemedialOutcome(k, true)
	if nb.Find(k).Mastered {
		t.Error("streak should restart after a wrong answer")
	}
	nb.RecordRemedialOutcome(k, true)
	if !nb.Find(k).Mastered {
		t.Error("three correct after reset should master")
	}
}

func TestRecordRemedialOutcome_UnknownKey(t *testing.T) {
	nb := New()
	if nb.RecordRemedialOutcome(Key{Expression: "1 + 1 = ?"}, true) {
		t.Error("unknown key should not report a change")
	}
}

func TestMarkMastered(t *testing.T) {
	nb := New()
	nb.RecordMistake(question(1, 1), 3, now)
	nb.RecordMistake(question(2, 2), 5, now)

	if !nb.MarkMastered("1 + 1 = ?", "") {
		t.Fatal("expected a match by expression")
	}
	if !nb.Find(Key{"1 + 1 = ?", 3}).Mastered {
		t.Error("record should be mastered")
	}

	// A similar variant matches through its original expression.
	if !nb.MarkMastered("3 + 2 = ?", "2 + 2 = ?") {
		t.Fatal("expected a match by original expression")
	}
	if !nb.Find(Key{"2 + 2 = ?", 5}).Mastered {
		t.Error("original record should be mastered")
	}

	if nb.MarkMastered("9 + 9 = ?", "") {
		t.Error("no record should match")
	}
}

func TestDeleteSelected(t *testing.T) {
	nb := New()
	// Insert so that index i holds "i + 0 = ?".
	for i := 4; i >= 0; i-- {
		nb.RecordMistake(question(i, 0), 99, now)
	}

	if n := nb.DeleteSelected([]int{0, 2, 4}); n != 3 {
		t.Fatalf("removed %d, want 3", n)
	}
	recs := nb.Records()
	want := []string{"1 + 0 = ?", "3 + 0 = ?"}
	if len(recs) != len(want) {
		t.Fatalf("len = %d, want %d", len(recs), len(want))
	}
	for i, w := range want {
		if recs[i].Expression != w {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i].Expression, w)
		}
	}
}

func TestDeleteSelected_IgnoresBadIndices(t *testing.T) {
	nb := New()
	for i := 0; i < 3; i++ {
		nb.RecordMistake(question(i, 0), 99, now)
	}
	if n := nb.DeleteSelected([]int{-1, 1, 1, 7}); n != 1 {
		t.Errorf("removed %d, want 1", n)
	}
	if nb.Len() != 2 {
		t.Errorf("len = %d, want 2", nb.Len())
	}
}

func TestEligible(t *testing.T) {
	nb := New()
	for i := 0; i < 4; i++ {
		nb.RecordMistake(question(i, 0), 99, now)
	}
	nb.MarkMastered("0 + 0 = ?", "")

	if got := len(nb.Eligible(1)); got != 3 {
		t.Errorf("level 1 eligible = %d, want 3", got)
	}
	if got := len(nb.Eligible(3)); got != 4 {
		t.Errorf("level 3 eligible = %d, want 4", got)
	}
}

func TestSnapshot(t *testing.T) {
	nb := New()
	for i := 0; i < 5; i++ {
		nb.RecordMistake(question(i, i), 0, now)
	}
	nb.MarkMastered("2 + 2 = ?", "")

	s := nb.Snapshot()
	if s.Total != 5 || s.Mastered != 1 || s.Unmastered != 4 {
		t.Errorf("snapshot counts = %d/%d/%d, want 5/1/4", s.Total, s.Mastered, s.Unmastered)
	}

	// Mutating the snapshot does not touch the notebook.
	s.Records[0].Mastered = true
	if nb.Records()[0].Mastered {
		t.Error("snapshot should be a copy")
	}
}

func TestRecordsReturnsCopies(t *testing.T) {
	nb := New()
	nb.RecordMistake(question(1, 2), 0, now)
	recs := nb.Records()
	recs[0].Expression = "changed"
	if nb.Records()[0].Expression != "1 + 2 = ?" {
		t.Error("Records should return copies")
	}
}

func TestFromRecordsCaps(t *testing.T) {
	var recs []Record
	for i := 0; i < Capacity+10; i++ {
		recs = append(recs, Record{Expression: fmt.Sprintf("%d + 0 = ?", i)})
	}
	nb := FromRecords(recs)
	if nb.Len() != Capacity {
		t.Errorf("len = %d, want %d", nb.Len(), Capacity)
	}
	if nb.Records()[0].Expression != "0 + 0 = ?" {
		t.Error("order should be preserved")
	}
}
