package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/solver"
)

// Domain selects which operators a practice session draws from.
type Domain string

const (
	// DomainAddSub uses addition and subtraction only.
	DomainAddSub Domain = "add-sub"

	// DomainAllOps uses all four operators.
	DomainAllOps Domain = "all-ops"
)

// ParseDomain accepts the canonical names plus the camel-case names used by
// notebooks exported from the web version ("addSub", "allOps", "all").
func ParseDomain(s string) (Domain, error) {
	switch strings.TrimSpace(s) {
	case "add-sub", "addSub", "addsub":
		return DomainAddSub, nil
	case "all-ops", "allOps", "all", "allops":
		return DomainAllOps, nil
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// UnmarshalText normalizes legacy domain names when decoding JSON.
func (d *Domain) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = DomainAddSub
		return nil
	}
	parsed, err := ParseDomain(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Operators returns the operators eligible in this domain.
func (d Domain) Operators() []solver.Operator {
	if d == DomainAllOps {
		return solver.AllOperators
	}
	return solver.AddSubOperators
}

// DisplayName returns a short label for the UI.
func (d Domain) DisplayName() string {
	if d == DomainAllOps {
		return "All four operations"
	}
	return "Addition & subtraction"
}

// Kind says which slot of the equation the learner must fill in.
type Kind string

const (
	KindNormal       Kind = "normal"        // x op y = ?
	KindMissingLeft  Kind = "missing-left"  // ? op y = z
	KindMissingRight Kind = "missing-right" // x op ? = z
)

// AllKinds lists the template kinds drawn by the generator.
var AllKinds = []Kind{KindNormal, KindMissingLeft, KindMissingRight}

// UnmarshalText accepts the legacy "missing_first"/"missing_second" names.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "normal":
		*k = KindNormal
	case "missing-left", "missing_first":
		*k = KindMissingLeft
	case "missing-right", "missing_second":
		*k = KindMissingRight
	default:
		return fmt.Errorf("unknown question kind %q", string(b))
	}
	return nil
}

// Slot returns the equation slot that holds the placeholder for this kind.
func (k Kind) Slot() Slot {
	switch k {
	case KindMissingLeft:
		return SlotLeft
	case KindMissingRight:
		return SlotRight
	}
	return SlotResult
}

// Question is a generated arithmetic question. It is kept as a structured
// equation and only rendered to text at the display boundary.
type Question struct {
	Equation

	// Domain is the ruleset the question was generated under.
	Domain Domain

	// Difficulty ranges 1-3; see DifficultyFor.
	Difficulty int
}

// Kind returns which slot is unknown.
func (q *Question) Kind() Kind {
	return q.Missing.Kind()
}

// Expression renders the question text, e.g. "70 - 30 = ?".
func (q *Question) Expression() string {
	return q.Equation.String()
}

// DifficultyFor assigns the difficulty of an operator/kind combination.
func DifficultyFor(op solver.Operator, kind Kind) int {
	switch op {
	case solver.Add:
		if kind == KindNormal {
			return 1
		}
		return 2
	case solver.Sub:
		return 2
	case solver.Mul:
		if kind == KindNormal {
			return 2
		}
		return 3
	}
	return 3
}
