package heredity

import (
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/carbocation/pfx"
)

// decompressingReader wraps r according to the path's extension, so that
// gzip- and zstandard-compressed pedigree files read transparently. The
// returned closer releases any decompressor state and must be called even
// for plain files (where it is a no-op).
func decompressingReader(r io.Reader, path string) (io.Reader, func(), error) {
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, pfx.Err(err)
		}
		return gz, func() { gz.Close() }, nil

	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, pfx.Err(err)
		}
		return dec, func() { dec.Close() }, nil
	}

	return r, func() {}, nil
}
