package interpolation

import "math"

// ErrorMetrics compares an interpolant against the samples it was built from.
type ErrorMetrics struct {
	Max  float64 `json:"maxError"`
	Mean float64 `json:"avgError"`
	RMS  float64 `json:"rmsError"`
}

// CalculateError re-evaluates method m at every input x over the X-sorted
// points and aggregates |y - p(x)|. Fewer than two points give zero metrics.
// A non-finite residual propagates into all three numbers.
func CalculateError(points []Point, m Method) ErrorMetrics {
	if len(points) < 2 {
		return ErrorMetrics{}
	}
	p := sorted(points)

	var maxErr, sum, sumSq float64
	for _, pt := range p {
		e := math.Abs(pt.Y - Evaluate(p, m, pt.X))
		maxErr = math.Max(maxErr, e)
		sum += e
		sumSq += e * e
	}
	n := float64(len(p))
	return ErrorMetrics{
		Max:  maxErr,
		Mean: sum / n,
		RMS:  math.Sqrt(sumSq / n),
	}
}

// Finite reports whether all three metrics are finite numbers.
func (e ErrorMetrics) Finite() bool {
	return IsFinite(e.Max) && IsFinite(e.Mean) && IsFinite(e.RMS)
}
