package heredity

import (
	"errors"
	"fmt"
)

// ErrNoConsistentHypotheses is returned by Normalize when a person's
// distribution accumulated zero mass, which happens only when the evidence
// is self-contradictory in a way the enumerator's filter cannot exclude.
var ErrNoConsistentHypotheses = errors.New("no hypotheses were consistent with the evidence")

// Marginal holds one individual's accumulated probability mass: Gene indexed
// by copy number, Trait indexed by traitIndex (0 = not expressed, 1 =
// expressed). Masses are unnormalized until Normalize runs.
type Marginal struct {
	Gene  [3]float64
	Trait [2]float64
}

// Marginals maps each individual's name to their marginal buckets.
type Marginals map[string]*Marginal

// NewMarginals returns empty buckets for every named individual.
func NewMarginals(names []string) Marginals {
	m := make(Marginals, len(names))
	for _, name := range names {
		m[name] = &Marginal{}
	}

	return m
}

// Accumulate adds one hypothesis's joint probability into the matching gene
// and trait buckets of every individual. Accumulation is a commutative sum,
// so hypotheses may arrive in any order.
func (m Marginals) Accumulate(names []string, h Hypothesis, joint float64) {
	for i, name := range names {
		bucket := m[name]
		bucket.Gene[h.GeneCount(i)] += joint
		bucket.Trait[traitIndex(h.Expressed(i))] += joint
	}
}

// Merge adds every bucket of other into m. Used to fold per-worker partial
// marginals into a single table.
func (m Marginals) Merge(other Marginals) {
	for name, theirs := range other {
		bucket, exists := m[name]
		if !exists {
			bucket = &Marginal{}
			m[name] = bucket
		}
		for g := range bucket.Gene {
			bucket.Gene[g] += theirs.Gene[g]
		}
		for t := range bucket.Trait {
			bucket.Trait[t] += theirs.Trait[t]
		}
	}
}

// Normalize rescales each individual's gene and trait distributions
// independently so that each sums to 1.
func (m Marginals) Normalize() error {
	for name, bucket := range m {
		geneTotal := bucket.Gene[0] + bucket.Gene[1] + bucket.Gene[2]
		traitTotal := bucket.Trait[0] + bucket.Trait[1]
		if geneTotal == 0 || traitTotal == 0 {
			return fmt.Errorf("%s: %w", name, ErrNoConsistentHypotheses)
		}

		for g := range bucket.Gene {
			bucket.Gene[g] /= geneTotal
		}
		for t := range bucket.Trait {
			bucket.Trait[t] /= traitTotal
		}
	}

	return nil
}
