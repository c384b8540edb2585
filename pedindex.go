package heredity

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carbocation/pfx"
)

// PedIndex is a SQLite-backed pedigree store. The People table holds one row
// per individual (trait is NULL when unobserved), Metadata describes the
// index itself, and Results optionally holds normalized posterior
// distributions from an inference run.
type PedIndex struct {
	DB       *sqlx.DB
	Metadata *PedMetadata
}

func (x *PedIndex) Close() error {
	return x.DB.Close()
}

// PedMetadata conforms to the data found in the rows of the SQLite table
// "Metadata" and can be easily parsed with sqlx.
type PedMetadata struct {
	Filename          string `db:"filename"`
	PeopleCount       int    `db:"people_count"`
	IndexCreationTime Time   `db:"index_creation_time"`
}

// ResultRow conforms to the rows of the SQLite table "Results": one
// individual's normalized gene-count and trait distributions.
type ResultRow struct {
	Name         string  `db:"name"`
	Gene0        float64 `db:"gene0"`
	Gene1        float64 `db:"gene1"`
	Gene2        float64 `db:"gene2"`
	TraitPresent float64 `db:"trait_present"`
	TraitAbsent  float64 `db:"trait_absent"`
}

const pedIndexSchema = `
CREATE TABLE IF NOT EXISTS People (
	name TEXT PRIMARY KEY,
	mother TEXT NOT NULL DEFAULT '',
	father TEXT NOT NULL DEFAULT '',
	trait INTEGER
);
CREATE TABLE IF NOT EXISTS Metadata (
	filename TEXT,
	people_count INTEGER,
	index_creation_time INTEGER
);
CREATE TABLE IF NOT EXISTS Results (
	name TEXT PRIMARY KEY,
	gene0 REAL, gene1 REAL, gene2 REAL,
	trait_present REAL, trait_absent REAL
);`

// CreatePedIndex writes the pedigree into a new index at path, recording
// sourceFilename in the metadata, and returns the open index.
func CreatePedIndex(path string, ped Pedigree, sourceFilename string) (*PedIndex, error) {
	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	idx, err := OpenPedIndex(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := idx.DB.Exec(pedIndexSchema); err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}

	tx, err := idx.DB.Beginx()
	if err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}
	for _, name := range ped.Names() {
		if _, err := tx.NamedExec(`INSERT INTO People (name, mother, father, trait)
			VALUES (:name, :mother, :father, :trait)`, ped[name]); err != nil {
			tx.Rollback()
			idx.Close()
			return nil, pfx.Err(err)
		}
	}

	meta := &PedMetadata{
		Filename:          sourceFilename,
		PeopleCount:       len(ped),
		IndexCreationTime: Time(time.Now()),
	}
	if _, err := tx.NamedExec(`INSERT INTO Metadata (filename, people_count, index_creation_time)
		VALUES (:filename, :people_count, :index_creation_time)`, meta); err != nil {
		tx.Rollback()
		idx.Close()
		return nil, pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}

	idx.Metadata = meta

	return idx, nil
}

// ReadPedigree loads and validates the pedigree stored in the index.
func (x *PedIndex) ReadPedigree() (Pedigree, error) {
	rows, err := x.DB.Queryx("SELECT name, mother, father, trait FROM People ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	ped := make(Pedigree)
	for rows.Next() {
		ind := &Individual{}
		if err := rows.StructScan(ind); err != nil {
			return nil, pfx.Err(err)
		}
		if _, dup := ped[ind.Name]; dup {
			return nil, pfx.Err(fmt.Errorf("duplicate pedigree entry for %q", ind.Name))
		}
		ped[ind.Name] = ind
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// SaveResults replaces the Results table with the given marginals. The
// marginals are expected to be normalized.
func (x *PedIndex) SaveResults(m Marginals) error {
	tx, err := x.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.Exec("DELETE FROM Results"); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	for name, bucket := range m {
		row := &ResultRow{
			Name:         name,
			Gene0:        bucket.Gene[GeneNone],
			Gene1:        bucket.Gene[GeneOne],
			Gene2:        bucket.Gene[GeneTwo],
			TraitPresent: bucket.Trait[traitIndex(true)],
			TraitAbsent:  bucket.Trait[traitIndex(false)],
		}
		if _, err := tx.NamedExec(`INSERT INTO Results (name, gene0, gene1, gene2, trait_present, trait_absent)
			VALUES (:name, :gene0, :gene1, :gene2, :trait_present, :trait_absent)`, row); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadResults loads previously saved marginals.
func (x *PedIndex) ReadResults() (Marginals, error) {
	rows, err := x.DB.Queryx("SELECT * FROM Results ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	m := make(Marginals)
	for rows.Next() {
		var row ResultRow
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		bucket := &Marginal{}
		bucket.Gene[GeneNone] = row.Gene0
		bucket.Gene[GeneOne] = row.Gene1
		bucket.Gene[GeneTwo] = row.Gene2
		bucket.Trait[traitIndex(true)] = row.TraitPresent
		bucket.Trait[traitIndex(false)] = row.TraitAbsent
		m[row.Name] = bucket
	}

	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return m, nil
}
