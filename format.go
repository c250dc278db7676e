package interpolation

import (
	"math"
	"strconv"
)

// Undefined is shown in place of a non-finite result.
const Undefined = "undefined"

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Format renders v with six decimals, or Undefined.
func Format(v float64) string {
	if !IsFinite(v) {
		return Undefined
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
