package heredity

import (
	"runtime"
	"sync"
)

// InferParallel computes the same result as Infer, fanning the consistent
// trait subsets out to a pool of workers. Each worker enumerates the gene
// partitions for its subsets into a private partial table; the partials are
// folded together before a single normalization. workers <= 0 selects one
// worker per CPU. Hypotheses are independent, so the only cross-run
// difference from Infer is floating-point reassociation of the sums.
func InferParallel(ped Pedigree, m Model, workers int) (Marginals, error) {
	names, ev, err := prepare(ped, m)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	full := uint64(0)
	if len(names) > 0 {
		full = (uint64(1) << uint(len(names))) - 1
	}

	traitSubsets := make(chan uint64)
	partials := make(chan Marginals)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			partial := NewMarginals(names)
			for subset := range traitSubsets {
				reader := newTraitBoundReader(full, subset)
				for {
					h, ok := reader.Read()
					if !ok {
						break
					}
					partial.Accumulate(names, h, ev.Joint(h))
				}
			}
			partials <- partial
		}()
	}

	go func() {
		evidence := NewHypothesisReader(ped, names)
		subset, ok := evidence.nextConsistentTrait(0, true)
		for ok {
			traitSubsets <- subset
			subset, ok = evidence.nextConsistentTrait(subset+1, subset != full)
		}
		close(traitSubsets)
	}()

	go func() {
		wg.Wait()
		close(partials)
	}()

	marginals := NewMarginals(names)
	for partial := range partials {
		marginals.Merge(partial)
	}

	if err := marginals.Normalize(); err != nil {
		return nil, err
	}

	return marginals, nil
}
