package heredity

// TransmissionProbability returns the chance that a parent carrying g copies
// of the variant passes the variant to a child. A one-copy parent transmits
// either allele with equal chance, and because mutation is symmetric it
// cancels. A two-copy parent transmits the variant unless a mutation flips
// it; a zero-copy parent transmits it only via mutation.
func (m Model) TransmissionProbability(g GeneCount) float64 {
	switch g {
	case GeneOne:
		return 0.5
	case GeneTwo:
		return 1 - m.Mutation
	}

	return m.Mutation
}

// ChildGeneDistribution returns the distribution over a child's gene count
// given the gene counts of both parents, indexed by count. The three entries
// sum to 1 by construction.
func (m Model) ChildGeneDistribution(father, mother GeneCount) [3]float64 {
	f := m.TransmissionProbability(father)
	mo := m.TransmissionProbability(mother)

	return [3]float64{
		(1 - f) * (1 - mo),
		f*(1-mo) + mo*(1-f),
		f * mo,
	}
}
