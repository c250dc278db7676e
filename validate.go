package interpolation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrTooFewPoints   = errors.New("interpolation: too few points")
	ErrDuplicateX     = errors.New("interpolation: duplicate x value")
	ErrUnequalSpacing = errors.New("interpolation: points are not equally spaced")
	ErrUnknownMethod  = errors.New("interpolation: unknown method")
)

// SpacingTolerance is the relative tolerance on h used by Validate.
const SpacingTolerance = 1e-9

// Validate reports configurations that Evaluate would otherwise answer with
// a non-finite or silently wrong value. Evaluate never calls it.
//
// Newton forward and backward need the points in the given order to be
// equally spaced; every method needs distinct x values and at least one point.
func Validate(points []Point, m Method) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	if len(points) == 0 {
		return ErrTooFewPoints
	}
	p := sorted(points)
	for i := 1; i < len(p); i++ {
		if p[i].X == p[i-1].X {
			return fmt.Errorf("%w: x = %s", ErrDuplicateX, strconv.FormatFloat(p[i].X, 'g', -1, 64))
		}
	}
	if m == MethodNewtonForward || m == MethodNewtonBackward {
		return checkSpacing(points)
	}
	return nil
}

func checkSpacing(points []Point) error {
	if len(points) < 3 {
		return nil
	}
	h := points[1].X - points[0].X
	for i := 2; i < len(points); i++ {
		d := points[i].X - points[i-1].X
		if math.Abs(d-h) > SpacingTolerance*math.Abs(h) {
			return fmt.Errorf("%w: step %d is %g, expected %g", ErrUnequalSpacing, i, d, h)
		}
	}
	return nil
}
