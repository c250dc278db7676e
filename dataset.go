package interpolation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns the bundled demonstration points (e^x at x = 0..4).
func Sample() []Point {
	var p []Point
	if err := json.Unmarshal(sampleJSON, &p); err != nil {
		panic(fmt.Sprintf("interpolation: bad embedded sample: %v", err))
	}
	return p
}

// Dataset is the mutable point collection an application edits between
// evaluations. Points keep their insertion order; every evaluation helper
// works on a sorted copy. A Dataset is not safe for concurrent use.
type Dataset struct {
	P []Point
}

func New() *Dataset {
	return &Dataset{P: make([]Point, 0)}
}

// NewFromPoints copies points into a new dataset.
func NewFromPoints(points []Point) *Dataset {
	return &Dataset{P: slices.Clone(points)}
}

// AddPoint appends (x, y). Non-finite coordinates are refused.
func (d *Dataset) AddPoint(x, y float64) bool {
	if !IsFinite(x) || !IsFinite(y) {
		return false
	}
	d.P = append(d.P, Point{X: x, Y: y})
	return true
}

// RemovePoint drops the i-th point in insertion order.
func (d *Dataset) RemovePoint(i int) bool {
	if i < 0 || i >= len(d.P) {
		return false
	}
	d.P = slices.Delete(d.P, i, i+1)
	return true
}

func (d *Dataset) Clear() {
	d.P = make([]Point, 0)
}

// LoadSample replaces the contents with Sample.
func (d *Dataset) LoadSample() {
	d.P = Sample()
}

func (d *Dataset) Len() int {
	return len(d.P)
}

// Points returns a copy in insertion order.
func (d *Dataset) Points() []Point {
	return slices.Clone(d.P)
}

// Sorted returns a copy ordered by x.
func (d *Dataset) Sorted() []Point {
	return sorted(d.P)
}

func (d *Dataset) bounds() (xmin, xmax, ymin, ymax float64) {
	if len(d.P) == 0 {
		return 0, 0, 0, 0
	}
	xmin, xmax = d.P[0].X, d.P[0].X
	ymin, ymax = d.P[0].Y, d.P[0].Y
	for _, p := range d.P[1:] {
		xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
	}
	return
}

func (d *Dataset) GetXmin() float64 { xmin, _, _, _ := d.bounds(); return xmin }
func (d *Dataset) GetXmax() float64 { _, xmax, _, _ := d.bounds(); return xmax }
func (d *Dataset) GetYmin() float64 { _, _, ymin, _ := d.bounds(); return ymin }
func (d *Dataset) GetYmax() float64 { _, _, _, ymax := d.bounds(); return ymax }

// Evaluate evaluates every method at x.
func (d *Dataset) Evaluate(x float64) map[Method]float64 {
	return EvaluateAll(d.P, x)
}

func (d *Dataset) Curve(m Method, resolution int) []Point {
	return GenerateCurve(d.P, m, resolution)
}

func (d *Dataset) Error(m Method) ErrorMetrics {
	return CalculateError(d.P, m)
}

func (d *Dataset) String() string {
	xmin, xmax, ymin, ymax := d.bounds()
	s := "\nDataset:\n"
	s = fmt.Sprintf("%s\tpoints: %d\n", s, len(d.P))
	s = fmt.Sprintf("%s\txmin: %v; xmax: %v\n", s, xmin, xmax)
	s = fmt.Sprintf("%s\tymin: %v; ymax: %v\n", s, ymin, ymax)
	s = fmt.Sprintf("%s\tPoints: %v\n", s, d.P)
	return s
}
