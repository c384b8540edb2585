//go:build cgo

package heredity

// If cgo is enabled, we will use the mattn/go-sqlite3 cgo sqlite driver. It
// is faster than the pure-Go driver.

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"

// OpenPedIndex opens (creating if necessary) the pedigree index at path and
// loads its metadata if present.
func OpenPedIndex(path string) (*PedIndex, error) {
	idx := &PedIndex{
		Metadata: &PedMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	idx.DB = db

	// Not all index files have metadata; ignore any error
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return idx, nil
}
