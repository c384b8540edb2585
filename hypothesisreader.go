package heredity

// A Hypothesis is one complete candidate assignment of gene count and trait
// expression to every individual, encoded as bitmasks over the pedigree's
// sorted name ordering. Anyone absent from both gene masks carries zero
// copies; the two gene masks are disjoint by construction.
type Hypothesis struct {
	OneGene   uint64
	TwoGenes  uint64
	HaveTrait uint64
}

// GeneCount returns the hypothesized gene count of the individual at
// position i in the sorted name ordering.
func (h Hypothesis) GeneCount(i int) GeneCount {
	bit := uint64(1) << uint(i)
	if h.OneGene&bit != 0 {
		return GeneOne
	}
	if h.TwoGenes&bit != 0 {
		return GeneTwo
	}

	return GeneNone
}

// Expressed returns the hypothesized trait expression of the individual at
// position i.
func (h Hypothesis) Expressed(i int) bool {
	return h.HaveTrait&(uint64(1)<<uint(i)) != 0
}

// HypothesisReader lazily enumerates every hypothesis consistent with the
// pedigree's trait evidence: each subset of people expressing the trait that
// does not contradict an observation, crossed with every partition of the
// population into zero-, one-, and two-copy carriers. Memory stays constant
// regardless of how many hypotheses the (2^n * 3^n) space holds.
type HypothesisReader struct {
	HypothesesSeen uint64

	full       uint64
	traitKnown uint64
	traitValue uint64

	h       Hypothesis
	started bool
	done    bool
}

// NewHypothesisReader prepares an enumeration over the pedigree, using the
// same sorted ordering that names would produce. The pedigree must hold at
// most MaxIndividuals people.
func NewHypothesisReader(ped Pedigree, names []string) *HypothesisReader {
	r := &HypothesisReader{}
	if len(names) > 0 {
		r.full = (uint64(1) << uint(len(names))) - 1
	}
	for i, name := range names {
		bit := uint64(1) << uint(i)
		switch ped[name].Trait {
		case TraitPresent:
			r.traitKnown |= bit
			r.traitValue |= bit
		case TraitAbsent:
			r.traitKnown |= bit
		}
	}

	return r
}

// newTraitBoundReader enumerates gene partitions for one fixed trait subset.
// Pinning the evidence masks to the full population makes the general
// advance logic visit exactly that subset.
func newTraitBoundReader(full, haveTrait uint64) *HypothesisReader {
	return &HypothesisReader{
		full:       full,
		traitKnown: full,
		traitValue: haveTrait,
	}
}

// Read returns the next evidence-consistent hypothesis, or ok==false once
// the space is exhausted.
func (r *HypothesisReader) Read() (Hypothesis, bool) {
	if r.done {
		return Hypothesis{}, false
	}

	if !r.started {
		r.started = true
		trait, ok := r.nextConsistentTrait(0, true)
		if !ok {
			r.done = true
			return Hypothesis{}, false
		}
		r.h = Hypothesis{HaveTrait: trait, TwoGenes: r.full}
		r.HypothesesSeen++
		return r.h, true
	}

	if !r.advance() {
		r.done = true
		return Hypothesis{}, false
	}
	r.HypothesesSeen++

	return r.h, true
}

// advance steps the nested enumeration: the two-copy mask walks the submasks
// of the one-copy mask's complement in descending order, then the one-copy
// mask increments, then the trait subset moves to its next consistent value.
func (r *HypothesisReader) advance() bool {
	rest := r.full &^ r.h.OneGene
	if r.h.TwoGenes != 0 {
		r.h.TwoGenes = (r.h.TwoGenes - 1) & rest
		return true
	}

	if r.h.OneGene != r.full {
		r.h.OneGene++
		r.h.TwoGenes = r.full &^ r.h.OneGene
		return true
	}

	trait, ok := r.nextConsistentTrait(r.h.HaveTrait+1, r.h.HaveTrait != r.full)
	if !ok {
		return false
	}
	r.h = Hypothesis{HaveTrait: trait, TwoGenes: r.full}

	return true
}

// nextConsistentTrait scans forward from the candidate subset for one that
// agrees with every observed trait. valid is false when the candidate has
// already wrapped past the final subset.
func (r *HypothesisReader) nextConsistentTrait(candidate uint64, valid bool) (uint64, bool) {
	if !valid {
		return 0, false
	}
	for {
		if (candidate^r.traitValue)&r.traitKnown == 0 {
			return candidate, true
		}
		if candidate == r.full {
			return 0, false
		}
		candidate++
	}
}
