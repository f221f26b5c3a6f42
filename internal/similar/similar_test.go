package similar

import (
	"math/rand"
	"testing"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/solver"
)

func newTestDeriver(seed int64) *Deriver {
	return NewDeriver(rand.New(rand.NewSource(seed)))
}

func TestDerive_LevelOneKeepsOperator(t *testing.T) {
	d := newTestDeriver(1)
	rec := notebook.Record{Expression: "50 + 20 = ?", CorrectAnswer: 70, Domain: problemgen.DomainAddSub}

	for i := 0; i < 1000; i++ {
		q, ok := d.Derive(rec, 1)
		if !ok {
			t.Fatal("derive failed on a valid expression")
		}
		if q.Op != solver.Add {
			t.Fatalf("operator changed to %s at level 1", q.Op)
		}
		if q.Left < 40 || q.Left > 60 {
			t.Fatalf("left = %d, want [40,60]", q.Left)
		}
		if q.Right < 10 || q.Right > 30 {
			t.Fatalf("right = %d, want [10,30]", q.Right)
		}
		if q.CorrectAnswer != q.Left+q.Right {
			t.Fatalf("answer = %d, want %d", q.CorrectAnswer, q.Left+q.Right)
		}
		if q.Answer() != q.CorrectAnswer {
			t.Fatalf("equation answer %d disagrees with %d", q.Answer(), q.CorrectAnswer)
		}
		if q.Kind() != problemgen.KindNormal {
			t.Fatalf("kind = %s, want normal", q.Kind())
		}
		if q.Difficulty != 1 {
			t.Fatalf("difficulty = %d, want 1", q.Difficulty)
		}
		if q.OriginalExpression != rec.Expression || q.OriginalAnswer != 70 {
			t.Fatalf("back-reference = %q/%d", q.OriginalExpression, q.OriginalAnswer)
		}
	}
}

func TestDerive_KeepsMissingSlot(t *testing.T) {
	d := newTestDeriver(2)
	tests := []struct {
		expr string
		kind problemgen.Kind
	}{
		{"? - 12 = 30", problemgen.KindMissingLeft},
		{"6 × ? = 42", problemgen.KindMissingRight},
		{"? * 4 = 20", problemgen.KindMissingLeft},
	}
	for _, tt := range tests {
		for i := 0; i < 200; i++ {
			q, ok := d.Derive(notebook.Record{Expression: tt.expr}, 2)
			if !ok {
				t.Fatalf("derive %q failed", tt.expr)
			}
			if q.Kind() != tt.kind {
				t.Fatalf("%q: kind = %s, want %s", tt.expr, q.Kind(), tt.kind)
			}
			if q.Difficulty != 2 {
				t.Fatalf("difficulty = %d, want 2", q.Difficulty)
			}
		}
	}
}

func TestDerive_AnswerAlwaysInRange(t *testing.T) {
	d := newTestDeriver(3)
	for _, expr := range []string{"90 + 9 = ?", "? ÷ 1 = 0", "0 - ? = 0", "10 × 10 = ?", "? ÷ 3 = 100"} {
		for i := 0; i < 500; i++ {
			q, ok := d.Derive(notebook.Record{Expression: expr}, 3)
			if !ok {
				t.Fatalf("derive %q failed", expr)
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer > 100 {
				t.Fatalf("%q: answer %d out of range", expr, q.CorrectAnswer)
			}
		}
	}
}

func TestDerive_OperatorSwapOnlyFromLevelTwo(t *testing.T) {
	rec := notebook.Record{Expression: "30 + 30 = ?"}

	swapped := 0
	d := newTestDeriver(4)
	for i := 0; i < 2000; i++ {
		q, ok := d.Derive(rec, 2)
		if !ok {
			t.Fatal("derive failed on a valid expression")
		}
		if q.Op != solver.Add {
			swapped++
		}
	}
	// p(swap to a different operator) = 0.3 × 3/4 = 0.225.
	if swapped < 300 || swapped > 600 {
		t.Errorf("swapped %d of 2000, want roughly 450", swapped)
	}
}

func TestDerive_Malformed(t *testing.T) {
	d := newTestDeriver(5)
	for _, expr := range []string{"", "hello", "1 + 2 = 3", "? + ? = 4"} {
		if q, ok := d.Derive(notebook.Record{Expression: expr}, 1); ok || q != nil {
			t.Errorf("Derive(%q) = %v, %v; want nil, false", expr, q, ok)
		}
	}
}

func TestDerive_DefaultsDomain(t *testing.T) {
	q, ok := newTestDeriver(6).Derive(notebook.Record{Expression: "1 + 1 = ?"}, 1)
	if !ok {
		t.Fatal("derive failed")
	}
	if q.Domain != problemgen.DomainAddSub {
		t.Errorf("domain = %q, want add-sub", q.Domain)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		eq   problemgen.Equation
		want int
	}{
		{problemgen.Equation{Left: 7, Op: solver.Div, Right: 2, Missing: problemgen.SlotResult}, 4},
		{problemgen.Equation{Left: 5, Op: solver.Sub, Right: 9, Missing: problemgen.SlotResult}, 0},
		{problemgen.Equation{Op: solver.Div, Right: 0, Missing: problemgen.SlotResult}, 0},
		{problemgen.Equation{Op: solver.Mul, Left: 0, Result: 5, Missing: problemgen.SlotRight}, 100},
		{problemgen.Equation{Op: solver.Add, Right: 3, Result: 10, Missing: problemgen.SlotLeft}, 7},
	}
	for _, tt := range tests {
		if got := solve(tt.eq); got != tt.want {
			t.Errorf("solve(%+v) = %d, want %d", tt.eq, got, tt.want)
		}
	}
}

func TestDerive_EveryMissingSlot(t *testing.T) {
	d := newTestDeriver(8)
	for _, tt := range []struct {
		expr string
		kind problemgen.Kind
	}{
		{"50 + 20 = ?", problemgen.KindNormal},
		{"? - 12 = 30", problemgen.KindMissingLeft},
		{"6 × ? = 42", problemgen.KindMissingRight},
	} {
		q, ok := d.Derive(notebook.Record{Expression: tt.expr}, 1)
		if !ok {
			t.Errorf("Derive(%q) failed", tt.expr)
			continue
		}
		if q.Kind() != tt.kind {
			t.Errorf("Derive(%q) kind = %s, want %s", tt.expr, q.Kind(), tt.kind)
		}
		if q.OriginalExpression != tt.expr {
			t.Errorf("Derive(%q) original = %q", tt.expr, q.OriginalExpression)
		}
	}
}
