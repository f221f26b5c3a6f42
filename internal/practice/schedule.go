// Package practice builds and runs remedial sessions over the mistake
// notebook.
package practice

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/numutil"
	"github.com/abhisek/mathdrill/internal/similar"
)

// Mode selects how a remedial session draws its items.
type Mode string

const (
	ModeOriginal Mode = "original"
	ModeSimilar  Mode = "similar"
	ModeMixed    Mode = "mixed"
)

// AllModes lists the modes in menu order.
var AllModes = []Mode{ModeOriginal, ModeSimilar, ModeMixed}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown practice mode %q", s)
}

// Session size limits.
const (
	MaxOriginal = 10
	MaxSimilar  = 10
	MaxMixed    = 15
)

// ErrNoEligible is returned when no notebook record qualifies for the
// requested mode. The UI shows it as a hint instead of an empty session.
var ErrNoEligible = errors.New("no questions to practice")

// ErrAllMastered is ErrNoEligible for similar mode, where only mastered
// records remain.
var ErrAllMastered = fmt.Errorf("%w: every mistake is mastered", ErrNoEligible)

// BuildSession assembles a shuffled remedial session from nb.
//
// Original mode takes up to MaxOriginal eligible records in notebook
// order. Similar mode draws min(MaxSimilar, 2×unmastered) variants of
// random unmastered records. Mixed mode draws min(MaxMixed, 2×eligible)
// items, each an original or a variant with equal chance. Level 3 makes
// mastered records eligible for original and mixed modes. Repeated draws
// of the same record are allowed.
func BuildSession(mode Mode, level int, nb *notebook.Notebook, d *similar.Deriver, rng *rand.Rand) (*Session, error) {
	var items []*Item

	switch mode {
	case ModeOriginal:
		eligible := nb.Eligible(level)
		if len(eligible) == 0 {
			return nil, ErrNoEligible
		}
		if len(eligible) > MaxOriginal {
			eligible = eligible[:MaxOriginal]
		}
		for _, rec := range eligible {
			items = append(items, originalItem(rec))
		}

	case ModeSimilar:
		pool := nb.Unmastered()
		if len(pool) == 0 {
			if nb.Len() > 0 {
				return nil, ErrAllMastered
			}
			return nil, ErrNoEligible
		}
		n := min(MaxSimilar, 2*len(pool))
		for i := 0; i < n; i++ {
			rec := pool[rng.Intn(len(pool))]
			items = append(items, variantOrOriginal(rec, level, d))
		}

	case ModeMixed:
		pool := nb.Eligible(level)
		if len(pool) == 0 {
			return nil, ErrNoEligible
		}
		n := min(MaxMixed, 2*len(pool))
		for i := 0; i < n; i++ {
			rec := pool[rng.Intn(len(pool))]
			if numutil.Chance(rng, 0.5) {
				items = append(items, originalItem(rec))
			} else {
				items = append(items, variantOrOriginal(rec, level, d))
			}
		}

	default:
		return nil, fmt.Errorf("build session: unknown mode %q", mode)
	}

	numutil.Shuffle(rng, items)
	return newSession(mode, level, items), nil
}

// variantOrOriginal derives a variant, falling back to the original record
// when its expression cannot be parsed.
func variantOrOriginal(rec notebook.Record, level int, d *similar.Deriver) *Item {
	q, ok := d.Derive(rec, level)
	if !ok {
		return originalItem(rec)
	}
	return similarItem(rec, q)
}
