// Package numutil holds the small random-number helpers shared by the
// question generators and the practice scheduler.
package numutil

import "math/rand"

// Lo and Hi bound every number a learner sees.
const (
	Lo = 0
	Hi = 100
)

// RandInt returns a uniform integer in [min, max]. If max < min the bounds
// are swapped.
func RandInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return rng.Intn(max-min+1) + min
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampRange limits n to [Lo, Hi].
func ClampRange(n int) int {
	return Clamp(n, Lo, Hi)
}

// Shuffle permutes s in place (Fisher-Yates, walking from the end).
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
