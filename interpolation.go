// Package interpolation evaluates the classical interpolating polynomials
// (Lagrange, Newton forward, Newton backward and Newton divided difference)
// over a small set of (x, y) samples.
//
// Nothing in this package fails loudly. Too few points produce a sentinel
// (0 or the lone y value) and ill-conditioned input such as repeated x values
// surfaces as NaN or ±Inf. Callers test results with math.IsNaN/IsInf, or use
// Format, before showing them.
package interpolation

import (
	"cmp"
	"math"
	"slices"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// sorted returns a copy of points ordered by X. The caller's slice is never
// reordered.
func sorted(points []Point) []Point {
	p := slices.Clone(points)
	slices.SortStableFunc(p, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return p
}

func ys(points []Point) []float64 {
	v := make([]float64, len(points))
	for i, p := range points {
		v[i] = p.Y
	}
	return v
}

// Evaluate returns the value at x of the polynomial that method m builds
// through points. Points are used in the order given; the Newton forward and
// backward formulas expect them ascending and equally spaced.
//
// An unknown method yields NaN.
func Evaluate(points []Point, m Method, x float64) float64 {
	switch m {
	case MethodLagrange:
		return Lagrange(points, x)
	case MethodNewtonForward:
		return NewtonForward(points, x)
	case MethodNewtonBackward:
		return NewtonBackward(points, x)
	case MethodNewtonDivided:
		return NewtonDivided(points, x)
	}
	return math.NaN()
}

// EvaluateAll evaluates every method at x over an X-sorted copy of points.
func EvaluateAll(points []Point, x float64) map[Method]float64 {
	p := sorted(points)
	res := make(map[Method]float64, len(methodTable))
	for _, m := range Methods() {
		res[m] = Evaluate(p, m, x)
	}
	return res
}

// EvaluateStrict runs Validate before Evaluate.
func EvaluateStrict(points []Point, m Method, x float64) (float64, error) {
	if err := Validate(points, m); err != nil {
		return math.NaN(), err
	}
	return Evaluate(points, m, x), nil
}

// Lagrange evaluates the Lagrange form sum_i y_i * prod_{j!=i} (x-x_j)/(x_i-x_j).
// No ordering or spacing is required. An empty input gives 0.
func Lagrange(points []Point, x float64) float64 {
	var result float64
	for i, pi := range points {
		term := pi.Y
		for j, pj := range points {
			if i != j {
				term *= (x - pj.X) / (pi.X - pj.X)
			}
		}
		result += term
	}
	return result
}
