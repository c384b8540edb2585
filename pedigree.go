package heredity

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// Individual is one person in a pedigree. Mother and Father are name keys
// into the same pedigree and are either both set or both empty; the model
// treats them purely as lookup keys rather than verified ancestry.
type Individual struct {
	Name   string      `csv:"name" db:"name"`
	Mother string      `csv:"mother" db:"mother"`
	Father string      `csv:"father" db:"father"`
	Trait  TraitStatus `csv:"trait" db:"trait"`
}

// Founder reports whether the individual has no recorded parents.
func (ind *Individual) Founder() bool {
	return ind.Mother == "" && ind.Father == ""
}

// Pedigree maps each individual's name to their record.
type Pedigree map[string]*Individual

// Names returns every name in the pedigree in sorted order. All code that
// indexes hypothesis bitmasks by position relies on this ordering.
func (p Pedigree) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Validate checks the structural preconditions of inference: every parent
// reference must resolve to a name in the pedigree, and parents come in
// pairs. Cycles in the parent graph are not detected; parent names are
// lookup keys only and the joint computation never walks ancestry, so a
// cyclic pedigree produces a (possibly meaningless) result rather than an
// error.
func (p Pedigree) Validate() error {
	for name, ind := range p {
		if ind == nil {
			return pfx.Err(fmt.Errorf("pedigree entry %q is nil", name))
		}
		if (ind.Mother == "") != (ind.Father == "") {
			return pfx.Err(fmt.Errorf("%s: mother and father must both be set or both be blank", name))
		}
		if ind.Mother != "" {
			if _, exists := p[ind.Mother]; !exists {
				return pfx.Err(fmt.Errorf("%s: mother %q is not in the pedigree", name, ind.Mother))
			}
		}
		if ind.Father != "" {
			if _, exists := p[ind.Father]; !exists {
				return pfx.Err(fmt.Errorf("%s: father %q is not in the pedigree", name, ind.Father))
			}
		}
	}

	return nil
}
