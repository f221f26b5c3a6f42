// Package solver inverts and evaluates single binary arithmetic operations.
//
// No range or integrality checks happen here. Division by zero follows IEEE
// float semantics (±Inf or NaN); callers that care must guard the divisor.
package solver

import "fmt"

// Operator is one of the four arithmetic operators.
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "×"
	Div Operator = "÷"
)

// AllOperators lists every operator in display order.
var AllOperators = []Operator{Add, Sub, Mul, Div}

// AddSubOperators lists the operators of the add/subtract ruleset.
var AddSubOperators = []Operator{Add, Sub}

// ParseOperator accepts the display symbols plus the ASCII forms
// ("*", "/", "x") found in older exported notebooks.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-", "−":
		return Sub, nil
	case "×", "*", "x":
		return Mul, nil
	case "÷", "/":
		return Div, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Side names the operand that is unknown.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SolveForMissing recovers the unknown operand of "left op right = result"
// given the other operand and the result.
func SolveForMissing(op Operator, known, result float64, side Side) float64 {
	switch op {
	case Add:
		return result - known
	case Sub:
		if side == Left {
			return result + known
		}
		return known - result
	case Mul:
		return result / known
	case Div:
		if side == Left {
			return known * result
		}
		return known / result
	}
	return 0
}

// Evaluate computes left op right.
func Evaluate(left float64, op Operator, right float64) float64 {
	switch op {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		return left / right
	}
	return 0
}
