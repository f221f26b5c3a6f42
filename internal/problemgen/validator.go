package problemgen

import "fmt"

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "range", "math-check".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// RangeValidator rejects questions with any number outside [0, Max].
type RangeValidator struct {
	Max int
}

func (v *RangeValidator) Name() string { return "range" }

func (v *RangeValidator) Validate(q *Question) *ValidationError {
	for _, n := range []int{q.Left, q.Right, q.Result} {
		if n < 0 || n > v.Max {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d outside [0,%d] in %q", n, v.Max, q.Expression()),
			}
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty %d outside [1,3]", q.Difficulty),
		}
	}
	return nil
}

// runValidators runs the chain and returns the first failure.
func runValidators(validators []Validator, q *Question) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}
