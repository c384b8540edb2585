package heredity

// Evaluator scores hypotheses against one pedigree under one model. It
// resolves every parent reference to a bitmask position once, up front, so
// scoring a hypothesis does no map lookups. An Evaluator is read-only after
// construction and safe for concurrent use.
type Evaluator struct {
	model  Model
	people []*Individual
	mother []int // position of each individual's mother, -1 for founders
	father []int
}

// NewEvaluator builds an evaluator over the pedigree's sorted name ordering.
// The pedigree must have passed Validate, so every non-blank parent name
// resolves.
func NewEvaluator(m Model, ped Pedigree, names []string) *Evaluator {
	position := make(map[string]int, len(names))
	for i, name := range names {
		position[name] = i
	}

	e := &Evaluator{
		model:  m,
		people: make([]*Individual, len(names)),
		mother: make([]int, len(names)),
		father: make([]int, len(names)),
	}
	for i, name := range names {
		ind := ped[name]
		e.people[i] = ind
		e.mother[i], e.father[i] = -1, -1
		if !ind.Founder() {
			e.mother[i] = position[ind.Mother]
			e.father[i] = position[ind.Father]
		}
	}

	return e
}

// Joint returns the probability of the complete hypothesis under the model:
// the product over individuals of P(gene count | parents) * P(trait | gene
// count), with founders drawing their gene count from the prior. Pure; the
// product of many values in [0,1] can underflow for very large pedigrees,
// which is not defended against.
func (e *Evaluator) Joint(h Hypothesis) float64 {
	joint := 1.0
	for i := range e.people {
		g := h.GeneCount(i)

		var geneTerm float64
		if e.mother[i] < 0 {
			geneTerm = e.model.GenePrior[g]
		} else {
			dist := e.model.ChildGeneDistribution(h.GeneCount(e.father[i]), h.GeneCount(e.mother[i]))
			geneTerm = dist[g]
		}

		joint *= geneTerm * e.model.TraitProbability(g, h.Expressed(i))
	}

	return joint
}
