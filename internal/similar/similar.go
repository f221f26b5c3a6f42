// Package similar derives "similar" variants of past mistakes for
// reinforcement practice.
//
// A variant keeps the template of the original (which slot is unknown)
// and perturbs the shown numbers. From level 2 the operator may change
// too. The new operator keeps the old operand ranges and the recomputed
// answer is only clamped, so a variant can display an equation that its
// stored answer does not satisfy (e.g. "? ÷ 0 = 7"). This is a known
// product gap and is kept deliberately; see DESIGN.md.
package similar

import (
	"math"
	"math/rand"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/numutil"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/solver"
)

const (
	// Jitter is how far a shown number may move from its original value.
	Jitter = 10

	// OperatorSwapChance is the probability of replacing the operator
	// at level 2 and above.
	OperatorSwapChance = 0.3
)

// Question is a derived variant plus a back-reference to its source.
type Question struct {
	*problemgen.Question

	// Answer recomputed for the perturbed equation.
	CorrectAnswer int

	OriginalExpression string
	OriginalAnswer     int
}

// Deriver produces variants from an injected random source.
type Deriver struct {
	rng *rand.Rand
}

// NewDeriver creates a Deriver.
func NewDeriver(rng *rand.Rand) *Deriver {
	return &Deriver{rng: rng}
}

// Derive builds a variant of rec at the given difficulty level (1-3). It
// returns false when rec's expression cannot be parsed; callers then keep
// the original record.
func (d *Deriver) Derive(rec notebook.Record, level int) (*Question, bool) {
	eq, err := problemgen.ParseExpression(rec.Expression)
	if err != nil {
		return nil, false
	}
	level = numutil.Clamp(level, 1, 3)

	if level >= 1 {
		eq = d.jitter(eq)
	}
	if level >= 2 && numutil.Chance(d.rng, OperatorSwapChance) {
		eq.Op = solver.AllOperators[d.rng.Intn(len(solver.AllOperators))]
	}

	answer := solve(eq)
	switch eq.Missing {
	case problemgen.SlotLeft:
		eq.Left = answer
	case problemgen.SlotRight:
		eq.Right = answer
	default:
		eq.Result = answer
	}

	domain := rec.Domain
	if domain == "" {
		domain = problemgen.DomainAddSub
	}
	return &Question{
		Question: &problemgen.Question{
			Equation:   eq,
			Domain:     domain,
			Difficulty: level,
		},
		CorrectAnswer:      answer,
		OriginalExpression: rec.Expression,
		OriginalAnswer:     rec.CorrectAnswer,
	}, true
}

// jitter resamples every shown number within ±Jitter, clamped to [0,100].
func (d *Deriver) jitter(eq problemgen.Equation) problemgen.Equation {
	move := func(n int) int {
		lo := numutil.ClampRange(n - Jitter)
		hi := numutil.ClampRange(n + Jitter)
		return numutil.RandInt(d.rng, lo, hi)
	}
	if eq.Missing != problemgen.SlotLeft {
		eq.Left = move(eq.Left)
	}
	if eq.Missing != problemgen.SlotRight {
		eq.Right = move(eq.Right)
	}
	if eq.Missing != problemgen.SlotResult {
		eq.Result = move(eq.Result)
	}
	return eq
}

// solve recomputes the hidden value, clamped to [0,100] and rounded to the
// nearest integer. A non-finite result (division by zero) becomes 0.
func solve(eq problemgen.Equation) int {
	var v float64
	switch eq.Missing {
	case problemgen.SlotLeft:
		v = solver.SolveForMissing(eq.Op, float64(eq.Right), float64(eq.Result), solver.Left)
	case problemgen.SlotRight:
		v = solver.SolveForMissing(eq.Op, float64(eq.Left), float64(eq.Result), solver.Right)
	default:
		v = solver.Evaluate(float64(eq.Left), eq.Op, float64(eq.Right))
	}
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(numutil.Lo, math.Min(numutil.Hi, v))
	return int(math.Floor(v + 0.5))
}
