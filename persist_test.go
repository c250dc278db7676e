package interpolation

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []Point{{0, 1}, {1.5, -2}}))
	want := `[
  {
    "x": 0,
    "y": 1
  },
  {
    "x": 1.5,
    "y": -2
  }
]
`
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, Export(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	assert.ErrorIs(t, Export(&buf, []Point{{math.NaN(), 0}}), ErrNonFinitePoint)
}

func TestImport(t *testing.T) {
	got, err := Import(strings.NewReader(`[{"x": 3, "y": 9}, {"x": 0, "y": 0}]`))
	require.NoError(t, err)
	if diff := pretty.Compare(got, []Point{{3, 9}, {0, 0}}); diff != "" {
		t.Errorf("Import: (-got +want)\n%s", diff)
	}

	_, err = Import(strings.NewReader(`{"points": []}`))
	assert.Error(t, err)
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExportFileName)
	sample := Sample()
	require.NoError(t, ExportFile(path, sample))

	got, err := ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestImportFileTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 1\n2 4\n3 9\n"), 0644))

	got, err := ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, squares, got)
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints("0,0 1,1;2,4\t3,9\n")
	require.NoError(t, err)
	assert.Equal(t, squares, got)

	got, err = ParsePoints("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"1", "1,2,3", "a,1", "1,NaN"} {
		_, err := ParsePoints(bad)
		assert.Error(t, err, bad)
	}
}
