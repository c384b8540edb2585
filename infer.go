// Package heredity performs exact probabilistic inference over a family
// pedigree: given each person's recorded parents and any observed trait
// status, it computes every person's posterior distribution over gene copy
// number and trait expression by brute-force enumeration of the joint space.
package heredity

import (
	"errors"
	"fmt"
)

// MaxIndividuals is the largest population Infer accepts. Hypotheses are
// held in uint64 bitmasks, and the 2^n * 3^n enumeration is impractical
// long before this bound binds.
const MaxIndividuals = 63

// ErrPedigreeTooLarge is returned when a pedigree exceeds MaxIndividuals.
var ErrPedigreeTooLarge = errors.New("pedigree exceeds the maximum population for exact enumeration")

// Infer runs the full computation serially: validate the pedigree, enumerate
// every evidence-consistent hypothesis, score each one, accumulate scores
// into per-person marginal buckets, and normalize. The result maps each name
// to distributions that each sum to 1.
func Infer(ped Pedigree, m Model) (Marginals, error) {
	names, ev, err := prepare(ped, m)
	if err != nil {
		return nil, err
	}

	marginals := NewMarginals(names)
	reader := NewHypothesisReader(ped, names)
	for {
		h, ok := reader.Read()
		if !ok {
			break
		}
		marginals.Accumulate(names, h, ev.Joint(h))
	}

	if err := marginals.Normalize(); err != nil {
		return nil, err
	}

	return marginals, nil
}

func prepare(ped Pedigree, m Model) ([]string, *Evaluator, error) {
	if err := ped.Validate(); err != nil {
		return nil, nil, err
	}
	names := ped.Names()
	if len(names) > MaxIndividuals {
		return nil, nil, fmt.Errorf("%d people: %w", len(names), ErrPedigreeTooLarge)
	}

	return names, NewEvaluator(m, ped, names), nil
}
