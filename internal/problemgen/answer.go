package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/numutil"
)

// ErrInvalidAnswer is returned for input that is not an integer in [0,100].
// The attempt is not scored.
var ErrInvalidAnswer = errors.New("please enter a whole number between 0 and 100")

// ParseAnswer parses the learner's raw input.
func ParseAnswer(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidAnswer
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
	}
	if n < numutil.Lo || n > numutil.Hi {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAnswer, n)
	}
	return n, nil
}

// CheckAnswer reports whether n answers q. Besides the stored answer, any
// value that makes the equation hold is accepted, which matters for
// questions like "0 × ? = 0".
func CheckAnswer(q *Question, n int) bool {
	if n == q.Answer() {
		return true
	}
	return q.Holds(n)
}

// CheckExpression applies the CheckAnswer rule to a rendered expression
// with a stored answer. An expression that does not parse only accepts
// the stored answer.
func CheckExpression(expression string, stored, n int) bool {
	if n == stored {
		return true
	}
	eq, err := ParseExpression(expression)
	return err == nil && eq.Holds(n)
}
