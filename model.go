package heredity

// Model holds the constant probability tables that define the genetic model:
// the population prior over gene copy number, the chance of expressing the
// trait conditional on copy number, and the per-transmission mutation rate.
// A Model is a plain value and is never mutated after construction, so it may
// be shared freely across goroutines.
type Model struct {
	// GenePrior[g] is the unconditional probability that a founder (an
	// individual with no recorded parents) carries g copies of the variant.
	GenePrior [3]float64

	// TraitGivenGene[g] is the trait distribution for a carrier of g copies,
	// indexed by traitIndex (0 = not expressed, 1 = expressed). Each row
	// sums to 1.
	TraitGivenGene [3][2]float64

	// Mutation is the probability that a transmitted allele flips state in
	// transit from parent to child.
	Mutation float64
}

// DefaultModel contains the canonical table values.
var DefaultModel = Model{
	GenePrior: [3]float64{0.96, 0.03, 0.01},
	TraitGivenGene: [3][2]float64{
		{0.99, 0.01},
		{0.44, 0.56},
		{0.35, 0.65},
	},
	Mutation: 0.01,
}

// TraitProbability returns P(trait expression == expressed | gene count == g).
func (m Model) TraitProbability(g GeneCount, expressed bool) float64 {
	return m.TraitGivenGene[g][traitIndex(expressed)]
}
