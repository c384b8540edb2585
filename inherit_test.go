package heredity

import (
	"math"
	"testing"
)

func TestTransmissionProbability(t *testing.T) {
	m := DefaultModel

	tests := []struct {
		gene GeneCount
		want float64
	}{
		{GeneNone, 0.01},
		{GeneOne, 0.5},
		{GeneTwo, 0.99},
	}

	for _, test := range tests {
		if got := m.TransmissionProbability(test.gene); got != test.want {
			t.Errorf("Got %v, expected %v for %s copies", got, test.want, test.gene)
		}
	}
}

func TestChildGeneDistributionSumsToOne(t *testing.T) {
	m := DefaultModel

	for father := GeneNone; father <= GeneTwo; father++ {
		for mother := GeneNone; mother <= GeneTwo; mother++ {
			dist := m.ChildGeneDistribution(father, mother)
			sum := dist[0] + dist[1] + dist[2]
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("Got sum %v, expected 1 for father=%s mother=%s", sum, father, mother)
			}
		}
	}
}

func TestChildGeneDistributionValues(t *testing.T) {
	m := DefaultModel

	// Two-copy father, zero-copy mother: f=0.99, mo=0.01
	dist := m.ChildGeneDistribution(GeneTwo, GeneNone)
	if want := 0.99 * 0.01; math.Abs(dist[GeneTwo]-want) > 1e-12 {
		t.Errorf("Got %v, expected %v for two copies", dist[GeneTwo], want)
	}
	if want := 0.01 * 0.99; math.Abs(dist[GeneNone]-want) > 1e-12 {
		t.Errorf("Got %v, expected %v for zero copies", dist[GeneNone], want)
	}
	if want := 0.99*0.99 + 0.01*0.01; math.Abs(dist[GeneOne]-want) > 1e-12 {
		t.Errorf("Got %v, expected %v for one copy", dist[GeneOne], want)
	}

	// One-copy parents: every transmission is a coin flip
	dist = m.ChildGeneDistribution(GeneOne, GeneOne)
	if math.Abs(dist[GeneOne]-0.5) > 1e-12 {
		t.Errorf("Got %v, expected 0.5 for one copy from two heterozygous parents", dist[GeneOne])
	}
}

func TestTraitProbabilityRowsSumToOne(t *testing.T) {
	m := DefaultModel

	for g := GeneNone; g <= GeneTwo; g++ {
		sum := m.TraitProbability(g, true) + m.TraitProbability(g, false)
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("Got sum %v, expected 1 for %s copies", sum, g)
		}
	}
}
