package interpolation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
	"github.com/theothertomelliott/acyclic"
)

// ExportFileName is the conventional name for an exported point list.
const ExportFileName = "interpolation-data.json"

var ErrNonFinitePoint = errors.New("interpolation: non-finite coordinate")

// Dump returns the serialisable form of a dataset: its points in insertion
// order.
func (d *Dataset) Dump() []Point {
	return slices.Clone(d.P)
}

// FromDump replaces the dataset contents with points.
func (d *Dataset) FromDump(points []Point) error {
	if err := checkFinite(points); err != nil {
		return err
	}
	d.P = slices.Clone(points)
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Dataset.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Dataset.
func (d *Dataset) UnmarshalJSON(bytes []byte) error {
	var points []Point
	if err := json.Unmarshal(bytes, &points); err != nil {
		return err
	}
	if points == nil {
		points = make([]Point, 0)
	}
	return d.FromDump(points)
}

func checkFinite(points []Point) error {
	for i, p := range points {
		if !IsFinite(p.X) || !IsFinite(p.Y) {
			return fmt.Errorf("%w: point %d (%v, %v)", ErrNonFinitePoint, i, p.X, p.Y)
		}
	}
	return nil
}

// Export writes points as an indented JSON array of {"x", "y"} objects.
func Export(w io.Writer, points []Point) error {
	if points == nil {
		points = make([]Point, 0)
	}
	if err := acyclic.Check(points); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := checkFinite(points); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(points)
}

// Import reads a JSON array written by Export.
func Import(r io.Reader) ([]Point, error) {
	var points []Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	if err := checkFinite(points); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	return points, nil
}

func ExportFile(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportFile reads points from path. Files ending in .json are read with
// Import; anything else is taken as a whitespace separated text table whose
// first two columns are x and y.
func ImportFile(path string) ([]Point, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Import(f)
	}

	cols, err := table.ReadTable(path, []int{0, 1}, nil)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	xs, ys := cols[0], cols[1]
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	if err := checkFinite(points); err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return points, nil
}

// ParsePoints reads an inline list such as "0,0 1,1 2,4". Pairs are separated
// by whitespace or ';', coordinates by ','.
func ParsePoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	points := make([]Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("parse point %q: want x,y", f)
		}
		x, err := cast.ToFloat64E(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("parse point %q: %w", f, err)
		}
		y, err := cast.ToFloat64E(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("parse point %q: %w", f, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	if err := checkFinite(points); err != nil {
		return nil, err
	}
	return points, nil
}
