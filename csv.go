package heredity

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/carbocation/pfx"
)

// OpenCSV reads a pedigree from a CSV file with the header
// name,mother,father,trait, where the trait column holds 1, 0, or blank for
// present, absent, and unobserved. Files ending in .gz or .zst decompress
// transparently. The pedigree is validated before being returned.
func OpenCSV(path string) (Pedigree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer file.Close()

	reader, release, err := decompressingReader(file, path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer release()

	return ReadCSV(reader)
}

// ReadCSV reads an uncompressed pedigree CSV from r.
func ReadCSV(r io.Reader) (Pedigree, error) {
	var rows []*Individual
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	ped := make(Pedigree, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			return nil, pfx.Err(fmt.Errorf("pedigree row with a blank name"))
		}
		if _, dup := ped[row.Name]; dup {
			return nil, pfx.Err(fmt.Errorf("duplicate pedigree entry for %q", row.Name))
		}
		ped[row.Name] = row
	}

	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// WriteCSV writes the pedigree to w in the same format ReadCSV accepts,
// with rows in sorted name order.
func WriteCSV(w io.Writer, ped Pedigree) error {
	rows := make([]*Individual, 0, len(ped))
	for _, name := range ped.Names() {
		rows = append(rows, ped[name])
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
