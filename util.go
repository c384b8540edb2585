package heredity

// traitIndex maps trait expression onto the bucket positions used by Model
// and Marginal tables.
func traitIndex(expressed bool) int {
	if expressed {
		return 1
	}

	return 0
}

// GenePartitions returns 3^n, the number of ways n people divide into zero-,
// one-, and two-copy carriers.
func GenePartitions(n int) uint64 {
	result := uint64(1)
	for i := 0; i < n; i++ {
		result *= 3
	}

	return result
}

// TraitSubsets returns 2^n, the number of candidate trait subsets before
// evidence filtering.
func TraitSubsets(n int) uint64 {
	return uint64(1) << uint(n)
}

// HypothesisSpace returns the size of the unfiltered joint space for n
// people. Useful for judging whether an exact run is affordable before
// starting one.
func HypothesisSpace(n int) uint64 {
	return GenePartitions(n) * TraitSubsets(n)
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
