package interpolation

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawPS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DrawPS(&buf, squares, Methods(), 20))
	ps := buf.String()

	assert.True(t, strings.HasPrefix(ps, "%!PS"))
	assert.True(t, strings.HasSuffix(ps, "showpage\n"))
	assert.Equal(t, len(Methods()), strings.Count(ps, "] polyline\n"))
	assert.Equal(t, 1, strings.Count(ps, "] dots\n"))
	assert.Contains(t, ps, "(Newton's Divided) show")
}

func TestDrawPSSinglePoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DrawPS(&buf, []Point{{2, 3}}, []Method{MethodLagrange}, 10))
	ps := buf.String()
	assert.Contains(t, ps, "/Xmin 1 def")
	assert.Contains(t, ps, "/Xmax 3 def")
	assert.Equal(t, 0, strings.Count(ps, "] polyline\n"))
}

func TestDrawPSEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, DrawPS(&buf, nil, Methods(), 10), ErrNothingToPlot)
	assert.Zero(t, buf.Len())
}

func TestDrawPSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.ps")
	require.NoError(t, DrawPSFile(path, Sample(), []Method{MethodNewtonForward}, 50))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "% newton-forward\n")
}

func TestPSEscape(t *testing.T) {
	assert.Equal(t, `f\(x\) \\ 2`, psEscape(`f(x) \ 2`))
}
