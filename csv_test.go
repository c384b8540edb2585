package heredity

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const familyCSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func TestReadCSV(t *testing.T) {
	ped, err := ReadCSV(strings.NewReader(familyCSV))
	require.NoError(t, err)
	require.Len(t, ped, 3)

	require.Equal(t, TraitUnknown, ped["Harry"].Trait)
	require.Equal(t, TraitPresent, ped["James"].Trait)
	require.Equal(t, TraitAbsent, ped["Lily"].Trait)

	require.Equal(t, "Lily", ped["Harry"].Mother)
	require.Equal(t, "James", ped["Harry"].Father)
	require.True(t, ped["James"].Founder())
	require.False(t, ped["Harry"].Founder())

	require.Equal(t, []string{"Harry", "James", "Lily"}, ped.Names())
}

func TestReadCSVDanglingParent(t *testing.T) {
	const data = `name,mother,father,trait
Harry,Lily,James,
Lily,,,0
`
	_, err := ReadCSV(strings.NewReader(data))
	require.Error(t, err)
	require.Contains(t, err.Error(), "James")
}

func TestReadCSVLoneParent(t *testing.T) {
	const data = `name,mother,father,trait
Harry,Lily,,
Lily,,,0
`
	_, err := ReadCSV(strings.NewReader(data))
	require.Error(t, err)
}

func TestReadCSVDuplicateName(t *testing.T) {
	const data = `name,mother,father,trait
Lily,,,0
Lily,,,1
`
	_, err := ReadCSV(strings.NewReader(data))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	ped, err := ReadCSV(strings.NewReader(familyCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ped))

	again, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, ped, again)
}

func TestOpenCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	require.NoError(t, os.WriteFile(path, []byte(familyCSV), 0o644))

	ped, err := OpenCSV(path)
	require.NoError(t, err)
	require.Len(t, ped, 3)
}

func TestOpenCSVGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv.gz")

	file, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(familyCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	ped, err := OpenCSV(path)
	require.NoError(t, err)
	require.Equal(t, TraitPresent, ped["James"].Trait)
}

func TestOpenCSVZstandard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv.zst")

	file, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(file)
	require.NoError(t, err)
	_, err = enc.Write([]byte(familyCSV))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, file.Close())

	ped, err := OpenCSV(path)
	require.NoError(t, err)
	require.Equal(t, TraitAbsent, ped["Lily"].Trait)
}
