package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateErrorTooFewPoints(t *testing.T) {
	for _, m := range Methods() {
		assert.Equal(t, ErrorMetrics{}, CalculateError(nil, m))
		assert.Equal(t, ErrorMetrics{}, CalculateError([]Point{{1, 2}}, m))
	}
}

func TestCalculateErrorExactFit(t *testing.T) {
	// y = 2x^3 - x + 4 on equally spaced nodes, given out of order.
	var points []Point
	for _, x := range []float64{2, -1, 0.5, 0, 1.5, -0.5, 1} {
		points = append(points, Point{X: x, Y: 2*x*x*x - x + 4})
	}
	for _, m := range Methods() {
		e := CalculateError(points, m)
		assert.True(t, e.Finite(), m.String())
		assert.Less(t, e.Max, 1e-9, m.String())
		assert.Less(t, e.Mean, 1e-9, m.String())
		assert.Less(t, e.RMS, 1e-9, m.String())
		assert.LessOrEqual(t, e.Mean, e.Max)
		assert.LessOrEqual(t, e.RMS, e.Max)
	}
}

func TestCalculateErrorUnequalSpacing(t *testing.T) {
	// Newton forward assumes h = x1 - x0 everywhere, so it misses the
	// later nodes; divided differences do not.
	points := []Point{{0, 0}, {1, 1}, {3, 9}, {4, 16}}
	assert.Greater(t, CalculateError(points, MethodNewtonForward).Max, 1.0)
	assert.Less(t, CalculateError(points, MethodNewtonDivided).Max, 1e-9)
}

func TestCalculateErrorDuplicateX(t *testing.T) {
	e := CalculateError([]Point{{1, 2}, {1, 5}}, MethodLagrange)
	assert.False(t, e.Finite())
	assert.True(t, math.IsNaN(e.Max))
}
