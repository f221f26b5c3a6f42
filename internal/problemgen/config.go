package problemgen

import "github.com/abhisek/mathdrill/internal/numutil"

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxValue bounds every operand and result.
	MaxValue int

	// MaxFactor bounds multiplication factors, divisors and quotients.
	MaxFactor int
}

// DefaultConfig returns a Config with the standard validator chain
// and the 0-100 number range.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&RangeValidator{Max: numutil.Hi},
			&MathCheckValidator{},
		},
		MaxValue:  numutil.Hi,
		MaxFactor: 10,
	}
}
