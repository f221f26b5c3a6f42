// Package problemgen builds arithmetic practice questions.
//
// Questions are drawn by closed-form constrained sampling: each template
// samples directly from the range that keeps every number in [0,100],
// division exact and subtraction non-negative, so there are no retry loops.
package problemgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/abhisek/mathdrill/internal/numutil"
	"github.com/abhisek/mathdrill/internal/solver"
)

// Generator produces questions from an injected random source.
// It is not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	rng    *rand.Rand
	config Config
}

// New creates a Generator. A zero MaxValue or MaxFactor falls back to the
// defaults.
func New(rng *rand.Rand, cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.MaxValue <= 0 {
		cfg.MaxValue = def.MaxValue
	}
	if cfg.MaxFactor <= 0 {
		cfg.MaxFactor = def.MaxFactor
	}
	return &Generator{rng: rng, config: cfg}
}

// Generate produces count independent questions. Each one draws a uniform
// template kind and a uniform operator from the domain.
func (g *Generator) Generate(domain Domain, count int) ([]*Question, error) {
	if domain != DomainAddSub && domain != DomainAllOps {
		return nil, fmt.Errorf("generate: unknown domain %q", domain)
	}
	ops := domain.Operators()
	out := make([]*Question, 0, count)
	for i := 0; i < count; i++ {
		kind := AllKinds[g.rng.Intn(len(AllKinds))]
		op := ops[g.rng.Intn(len(ops))]
		q, err := g.Build(domain, kind, op)
		if err != nil {
			return out, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Build produces one question with a forced template and operator.
func (g *Generator) Build(domain Domain, kind Kind, op solver.Operator) (*Question, error) {
	if !domainAllows(domain, op) {
		return nil, fmt.Errorf("build: operator %s not in domain %s", op, domain)
	}

	slot := kind.Slot()
	max, maxF := g.config.MaxValue, g.config.MaxFactor
	var eq Equation

	switch op {
	case solver.Add:
		if slot == SlotResult {
			x := numutil.RandInt(g.rng, 0, max)
			eq = normalAdd(x, numutil.RandInt(g.rng, 0, max-x))
		} else {
			k := numutil.RandInt(g.rng, 0, max)
			eq = missingAdd(k, numutil.RandInt(g.rng, k, max), slot)
		}
	case solver.Sub:
		switch slot {
		case SlotLeft:
			y := numutil.RandInt(g.rng, 0, max)
			eq = missingLeftSub(y, numutil.RandInt(g.rng, 0, max-y))
		case SlotRight:
			x := numutil.RandInt(g.rng, 0, max)
			eq = missingRightSub(x, numutil.RandInt(g.rng, 0, x))
		default:
			eq = normalSub(numutil.RandInt(g.rng, 0, max), numutil.RandInt(g.rng, 0, max))
		}
	case solver.Mul:
		if slot == SlotResult {
			eq = normalMul(numutil.RandInt(g.rng, 0, maxF), numutil.RandInt(g.rng, 0, maxF))
		} else {
			k := numutil.RandInt(g.rng, 0, maxF)
			z := numutil.RandInt(g.rng, 0, max)
			eq = missingMul(k, z, numutil.RandInt(g.rng, 0, maxF), slot, max)
		}
	case solver.Div:
		z := numutil.RandInt(g.rng, 0, maxF)
		y := numutil.RandInt(g.rng, 1, maxF)
		eq = divide(y, z, slot)
	default:
		return nil, fmt.Errorf("build: unknown operator %q", op)
	}

	eq = clampEquation(eq, max)
	q := &Question{
		Equation:   eq,
		Domain:     domain,
		Difficulty: DifficultyFor(op, kind),
	}
	if verr := runValidators(g.config.Validators, q); verr != nil {
		return nil, verr
	}
	return q, nil
}

func domainAllows(d Domain, op solver.Operator) bool {
	for _, o := range d.Operators() {
		if o == op {
			return true
		}
	}
	return false
}

// The constructors below are pure functions of the drawn values so that
// specific draws can be reproduced in tests.

// normalAdd builds "x + y = ?".
func normalAdd(x, y int) Equation {
	return Equation{Left: x, Op: solver.Add, Right: y, Result: x + y, Missing: SlotResult}
}

// missingAdd builds "? + k = z" or "k + ? = z" with the unknown z-k.
func missingAdd(k, z int, slot Slot) Equation {
	u := int(solver.SolveForMissing(solver.Add, float64(k), float64(z), slotSide(slot)))
	if slot == SlotLeft {
		return Equation{Left: u, Op: solver.Add, Right: k, Result: z, Missing: SlotLeft}
	}
	return Equation{Left: k, Op: solver.Add, Right: u, Result: z, Missing: SlotRight}
}

// normalSub builds "x - y = ?", swapping so the result is non-negative.
func normalSub(x, y int) Equation {
	if x < y {
		x, y = y, x
	}
	return Equation{Left: x, Op: solver.Sub, Right: y, Result: x - y, Missing: SlotResult}
}

// missingLeftSub builds "? - y = z".
func missingLeftSub(y, z int) Equation {
	x := int(solver.SolveForMissing(solver.Sub, float64(y), float64(z), solver.Left))
	return Equation{Left: x, Op: solver.Sub, Right: y, Result: z, Missing: SlotLeft}
}

// missingRightSub builds "x - ? = z".
func missingRightSub(x, z int) Equation {
	y := int(solver.SolveForMissing(solver.Sub, float64(x), float64(z), solver.Right))
	return Equation{Left: x, Op: solver.Sub, Right: y, Result: z, Missing: SlotRight}
}

// normalMul builds "x × y = ?".
func normalMul(x, y int) Equation {
	return Equation{Left: x, Op: solver.Mul, Right: y, Result: x * y, Missing: SlotResult}
}

// missingMul builds "? × k = z" or "k × ? = z" aiming at target z. The
// unknown is round(z/k); when that does not reproduce z exactly the result
// becomes the exact product. A product above max steps the unknown down.
// With k = 0 the result is 0 and zeroFill is used as the unknown.
func missingMul(k, z, zeroFill int, slot Slot, max int) Equation {
	var u int
	if k == 0 {
		u, z = zeroFill, 0
	} else {
		u = int(math.Floor(solver.SolveForMissing(solver.Mul, float64(k), float64(z), slotSide(slot)) + 0.5))
		if u*k > max {
			u = max / k
		}
		z = u * k
	}
	if slot == SlotLeft {
		return Equation{Left: u, Op: solver.Mul, Right: k, Result: z, Missing: SlotLeft}
	}
	return Equation{Left: k, Op: solver.Mul, Right: u, Result: z, Missing: SlotRight}
}

// divide builds a division with divisor y (never 0) and quotient z; the
// dividend is y×z, so a quotient of 0 forces a dividend of 0.
func divide(y, z int, slot Slot) Equation {
	x := int(solver.SolveForMissing(solver.Div, float64(y), float64(z), solver.Left))
	return Equation{Left: x, Op: solver.Div, Right: y, Result: z, Missing: slot}
}

func slotSide(s Slot) solver.Side {
	if s == SlotLeft {
		return solver.Left
	}
	return solver.Right
}

func clampEquation(e Equation, max int) Equation {
	e.Left = numutil.Clamp(e.Left, 0, max)
	e.Right = numutil.Clamp(e.Right, 0, max)
	e.Result = numutil.Clamp(e.Result, 0, max)
	return e
}
