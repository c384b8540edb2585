package heredity

import (
	"database/sql/driver"
	"fmt"
)

// GeneCount is the number of copies of the variant allele an individual carries
type GeneCount uint8

const (
	GeneNone GeneCount = iota
	GeneOne
	GeneTwo
)

func (g GeneCount) String() string {
	switch g {
	case GeneNone:
		return "0"
	case GeneOne:
		return "1"
	case GeneTwo:
		return "2"

	default:
		return "Illegal selection"
	}
}

// TraitStatus records what is known about an individual's observable trait:
// nothing, known absent, or known present.
type TraitStatus uint8

const (
	TraitUnknown TraitStatus = iota
	TraitAbsent
	TraitPresent
)

func (t TraitStatus) String() string {
	switch t {
	case TraitUnknown:
		return "Unknown"
	case TraitAbsent:
		return "False"
	case TraitPresent:
		return "True"

	default:
		return "Illegal selection"
	}
}

// Known reports whether the trait has been observed at all.
func (t TraitStatus) Known() bool {
	return t != TraitUnknown
}

// Expressed reports whether the observed trait is present. Only meaningful
// when Known is true.
func (t TraitStatus) Expressed() bool {
	return t == TraitPresent
}

// UnmarshalCSV decodes the trait column of pedigree CSV files, where "1"
// means present, "0" means absent, and a blank cell means unobserved.
func (t *TraitStatus) UnmarshalCSV(field string) error {
	switch field {
	case "1":
		*t = TraitPresent
	case "0":
		*t = TraitAbsent
	default:
		*t = TraitUnknown
	}

	return nil
}

// MarshalCSV is the inverse of UnmarshalCSV.
func (t TraitStatus) MarshalCSV() (string, error) {
	switch t {
	case TraitPresent:
		return "1", nil
	case TraitAbsent:
		return "0", nil
	}

	return "", nil
}

// Scan decodes the nullable trait column of pedigree index files, where NULL
// means the trait was never observed.
func (t *TraitStatus) Scan(v interface{}) error {
	switch which := v.(type) {
	case nil:
		*t = TraitUnknown
		return nil
	case int64:
		if which == 1 {
			*t = TraitPresent
		} else {
			*t = TraitAbsent
		}
		return nil
	case int:
		if which == 1 {
			*t = TraitPresent
		} else {
			*t = TraitAbsent
		}
		return nil
	}

	return errBadTraitColumn(v)
}

// Value encodes the trait for storage, with NULL standing for unobserved.
func (t TraitStatus) Value() (driver.Value, error) {
	switch t {
	case TraitPresent:
		return int64(1), nil
	case TraitAbsent:
		return int64(0), nil
	}

	return nil, nil
}

func errBadTraitColumn(v interface{}) error {
	return fmt.Errorf("No appropriate type could be found to decode %v as a trait", v)
}
