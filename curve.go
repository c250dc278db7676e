package interpolation

import (
	"iter"
	"math"
	"slices"
)

const (
	DefaultResolution = 100
	DefaultPadding    = 0.1
	DefaultLimit      = 1e6
)

// CurveOptions controls curve sampling. Samples whose |y| reaches Limit, or
// that are not finite, are left out of the curve.
type CurveOptions struct {
	Resolution int
	Padding    float64
	Limit      float64
}

func DefaultCurveOptions() CurveOptions {
	return CurveOptions{
		Resolution: DefaultResolution,
		Padding:    DefaultPadding,
		Limit:      DefaultLimit,
	}
}

func (o CurveOptions) normalized() CurveOptions {
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	if o.Padding < 0 || math.IsNaN(o.Padding) {
		o.Padding = DefaultPadding
	}
	if !(o.Limit > 0) {
		o.Limit = DefaultLimit
	}
	return o
}

// Domain returns [min(x) - padding*range, max(x) + padding*range].
// It reports false when points is empty.
func Domain(points []Point, padding float64) (lo, hi float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	lo, hi = points[0].X, points[0].X
	for _, p := range points[1:] {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	pad := (hi - lo) * padding
	return lo - pad, hi + pad, true
}

// samples yields (sample index, point) for every kept sample. Dropped samples
// leave holes in the index sequence.
func samples(points []Point, m Method, opts CurveOptions) iter.Seq2[int, Point] {
	if len(points) < 2 {
		return func(func(int, Point) bool) {}
	}
	opts = opts.normalized()
	p := sorted(points)
	lo, hi, _ := Domain(p, opts.Padding)
	step := (hi - lo) / float64(opts.Resolution)

	keep := func(y float64) bool {
		return !math.IsNaN(y) && !math.IsInf(y, 0) && math.Abs(y) < opts.Limit
	}

	return func(yield func(int, Point) bool) {
		if !(step > 0) || math.IsInf(step, 0) {
			// Every x coincides; stepping cannot advance.
			if y := Evaluate(p, m, lo); keep(y) {
				yield(0, Point{X: lo, Y: y})
			}
			return
		}
		for i := 0; i <= opts.Resolution; i++ {
			x := lo + float64(i)*step
			if i == opts.Resolution || x > hi {
				x = hi
			}
			y := Evaluate(p, m, x)
			if !keep(y) {
				continue
			}
			if !yield(i, Point{X: x, Y: y}) {
				return
			}
		}
	}
}

// Curve lazily samples method m across the padded input domain. The
// sequence is finite and can be ranged over any number of times. Fewer than
// two points give an empty sequence.
func Curve(points []Point, m Method, opts CurveOptions) iter.Seq[Point] {
	s := samples(points, m, opts)
	return func(yield func(Point) bool) {
		for _, pt := range s {
			if !yield(pt) {
				return
			}
		}
	}
}

// GenerateCurve collects Curve with the default padding and limit.
func GenerateCurve(points []Point, m Method, resolution int) []Point {
	opts := DefaultCurveOptions()
	opts.Resolution = resolution
	return slices.Collect(Curve(points, m, opts))
}

// CurveSegments samples like Curve but splits the result wherever samples
// were dropped, so that a renderer does not bridge a divergence.
func CurveSegments(points []Point, m Method, opts CurveOptions) [][]Point {
	var (
		segs [][]Point
		cur  []Point
		last = -2
	)
	for i, pt := range samples(points, m, opts) {
		if i != last+1 && len(cur) > 0 {
			segs = append(segs, cur)
			cur = nil
		}
		cur = append(cur, pt)
		last = i
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}
