package problemgen

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/solver"
)

// MathCheckValidator independently recomputes the equation. The forward
// check always runs; the inverse check re-solves the missing operand from
// the two shown values wherever that inversion is defined.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	if !q.Holds(q.Answer()) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%q does not hold for %d", q.Expression(), q.Answer()),
		}
	}

	solved, ok := resolveMissing(q.Equation)
	if ok && solved != float64(q.Answer()) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("re-solving %q gave %v, want %d", q.Expression(), solved, q.Answer()),
		}
	}
	return nil
}

// resolveMissing recovers the hidden operand of a missing-operand equation
// from the shown operand and result. It reports false for normal questions
// and where the inversion would divide by zero.
func resolveMissing(e Equation) (float64, bool) {
	var known int
	var side solver.Side
	switch e.Missing {
	case SlotLeft:
		known, side = e.Right, solver.Left
	case SlotRight:
		known, side = e.Left, solver.Right
	default:
		return 0, false
	}

	switch e.Op {
	case solver.Mul:
		if known == 0 {
			return 0, false
		}
	case solver.Div:
		if side == solver.Right && e.Result == 0 {
			return 0, false
		}
	}
	return solver.SolveForMissing(e.Op, float64(known), float64(e.Result), side), true
}
