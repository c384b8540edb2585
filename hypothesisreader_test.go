package heredity

import "testing"

func readAll(r *HypothesisReader) []Hypothesis {
	var all []Hypothesis
	for {
		h, ok := r.Read()
		if !ok {
			return all
		}
		all = append(all, h)
	}
}

func TestHypothesisCountWithoutEvidence(t *testing.T) {
	tests := []struct {
		people int
		want   int
	}{
		{0, 1},
		{1, 6},   // 2 trait subsets * 3 gene partitions
		{2, 36},  // 4 * 9
		{3, 216}, // 8 * 27
	}

	for _, test := range tests {
		ped := make(Pedigree)
		names := make([]string, 0, test.people)
		for i := 0; i < test.people; i++ {
			name := string(rune('a' + i))
			ped[name] = &Individual{Name: name}
			names = append(names, name)
		}

		r := NewHypothesisReader(ped, names)
		got := len(readAll(r))
		if got != test.want {
			t.Errorf("Got %d hypotheses, expected %d for %d people", got, test.want, test.people)
		}
		if r.HypothesesSeen != uint64(test.want) {
			t.Errorf("Got HypothesesSeen %d, expected %d", r.HypothesesSeen, test.want)
		}
	}
}

func TestHypothesisEvidenceFilter(t *testing.T) {
	ped := Pedigree{
		"a": {Name: "a", Trait: TraitPresent},
		"b": {Name: "b"},
	}
	names := []string{"a", "b"}

	all := readAll(NewHypothesisReader(ped, names))

	// Half the trait subsets contradict a's observation
	if len(all) != 18 {
		t.Fatalf("Got %d hypotheses, expected 18", len(all))
	}

	for _, h := range all {
		if !h.Expressed(0) {
			t.Errorf("Hypothesis %+v contradicts a's observed trait", h)
		}
	}
}

func TestHypothesisGeneMasksDisjoint(t *testing.T) {
	ped := Pedigree{
		"a": {Name: "a"},
		"b": {Name: "b"},
		"c": {Name: "c"},
	}
	names := []string{"a", "b", "c"}

	for _, h := range readAll(NewHypothesisReader(ped, names)) {
		if h.OneGene&h.TwoGenes != 0 {
			t.Fatalf("Hypothesis %+v assigns someone one and two copies at once", h)
		}
	}
}

func TestHypothesisGeneCounts(t *testing.T) {
	h := Hypothesis{OneGene: 0b001, TwoGenes: 0b010, HaveTrait: 0b100}

	if got := h.GeneCount(0); got != GeneOne {
		t.Errorf("Got %s, expected %s", got, GeneOne)
	}
	if got := h.GeneCount(1); got != GeneTwo {
		t.Errorf("Got %s, expected %s", got, GeneTwo)
	}
	if got := h.GeneCount(2); got != GeneNone {
		t.Errorf("Got %s, expected %s", got, GeneNone)
	}
	if h.Expressed(0) || h.Expressed(1) || !h.Expressed(2) {
		t.Errorf("Trait mask decoded incorrectly from %+v", h)
	}
}

func TestTraitBoundReaderVisitsOneSubset(t *testing.T) {
	all := readAll(newTraitBoundReader(0b11, 0b01))

	if len(all) != 9 {
		t.Fatalf("Got %d hypotheses, expected 9", len(all))
	}
	for _, h := range all {
		if h.HaveTrait != 0b01 {
			t.Errorf("Got trait subset %b, expected %b", h.HaveTrait, 0b01)
		}
	}
}
