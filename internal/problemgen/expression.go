package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/mathdrill/internal/solver"
)

// Placeholder marks the unknown slot in a rendered expression.
const Placeholder = "?"

// ErrMalformedExpression is returned when text does not match the
// "a op b = c" template with exactly one placeholder.
var ErrMalformedExpression = errors.New("malformed expression")

// Slot identifies a position in "left op right = result".
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotResult
)

// Kind maps the slot back to the question kind.
func (s Slot) Kind() Kind {
	switch s {
	case SlotLeft:
		return KindMissingLeft
	case SlotRight:
		return KindMissingRight
	}
	return KindNormal
}

// Equation is "Left Op Right = Result" with one slot hidden from the learner.
// All three numbers are always populated; Missing says which one is shown
// as the placeholder.
type Equation struct {
	Left    int
	Op      solver.Operator
	Right   int
	Result  int
	Missing Slot
}

// Answer returns the value hidden behind the placeholder.
func (e Equation) Answer() int {
	switch e.Missing {
	case SlotLeft:
		return e.Left
	case SlotRight:
		return e.Right
	}
	return e.Result
}

// String renders the equation with the missing slot replaced by "?".
func (e Equation) String() string {
	slot := func(s Slot, v int) string {
		if s == e.Missing {
			return Placeholder
		}
		return strconv.Itoa(v)
	}
	return fmt.Sprintf("%s %s %s = %s",
		slot(SlotLeft, e.Left),
		e.Op,
		slot(SlotRight, e.Right),
		slot(SlotResult, e.Result))
}

// Holds reports whether substituting v for the missing slot makes the
// equation true. Division by zero never holds.
func (e Equation) Holds(v int) bool {
	l, r, res := e.Left, e.Right, e.Result
	switch e.Missing {
	case SlotLeft:
		l = v
	case SlotRight:
		r = v
	default:
		res = v
	}
	if e.Op == solver.Div {
		return r != 0 && l == r*res
	}
	return solver.Evaluate(float64(l), e.Op, float64(r)) == float64(res)
}

var expressionRe = regexp.MustCompile(`^\s*(\d+|\?)\s*([-+−*/×÷x])\s*(\d+|\?)\s*=\s*(\d+|\?)\s*$`)

// ParseExpression parses "a op b = c" where exactly one of a, b, c is "?".
// The value behind the placeholder is left at zero.
func ParseExpression(text string) (Equation, error) {
	m := expressionRe.FindStringSubmatch(text)
	if m == nil {
		return Equation{}, fmt.Errorf("%w: %q", ErrMalformedExpression, text)
	}

	op, err := solver.ParseOperator(m[2])
	if err != nil {
		return Equation{}, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
	}

	var p Equation
	p.Op = op
	placeholders := 0
	// groups 1, 3 and 4 are left, right and result; 2 is the operator
	dsts := []*int{&p.Left, &p.Right, &p.Result}
	for i, g := range []int{1, 3, 4} {
		dst, raw := dsts[i], m[g]
		if raw == Placeholder {
			placeholders++
			p.Missing = Slot(i)
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Equation{}, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
		}
		*dst = n
	}
	if placeholders != 1 {
		return Equation{}, fmt.Errorf("%w: want exactly one %q in %q", ErrMalformedExpression, Placeholder, text)
	}
	return p, nil
}
