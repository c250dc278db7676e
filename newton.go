package interpolation

// lone is what the finite-difference formulas return when there is nothing
// to difference: the single y, or 0 with no points at all.
func lone(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	return points[0].Y
}

// NewtonForward evaluates Newton's forward-difference formula anchored at the
// first point, with h = x1 - x0 and u = (x - x0)/h. Equal spacing is assumed
// but not checked; see Validate.
func NewtonForward(points []Point, x float64) float64 {
	n := len(points)
	if n < 2 {
		return lone(points)
	}
	diff := ForwardDifferences(ys(points)).Leading()

	h := points[1].X - points[0].X
	u := (x - points[0].X) / h

	result := diff[0]
	uProduct := 1.0
	for i := 1; i < n; i++ {
		uProduct *= (u - float64(i-1)) / float64(i)
		result += uProduct * diff[i]
	}
	return result
}

// NewtonBackward is the mirror of NewtonForward anchored at the last point:
// u = (x - x_{n-1})/h and the differences come from the trailing diagonal.
func NewtonBackward(points []Point, x float64) float64 {
	n := len(points)
	if n < 2 {
		return lone(points)
	}
	diff := ForwardDifferences(ys(points)).Trailing()

	h := points[1].X - points[0].X
	u := (x - points[n-1].X) / h

	result := diff[0]
	uProduct := 1.0
	for i := 1; i < n; i++ {
		uProduct *= (u + float64(i-1)) / float64(i)
		result += uProduct * diff[i]
	}
	return result
}

// NewtonDivided evaluates Newton's divided-difference form
// f[x0] + sum_i f[x0..xi] * prod_{j<i} (x - xj). Any spacing works; repeated
// x values give a non-finite result. An empty input gives 0.
func NewtonDivided(points []Point, x float64) float64 {
	n := len(points)
	if n < 1 {
		return 0
	}
	coef := DividedDifferences(points).Leading()

	result := coef[0]
	product := 1.0
	for i := 1; i < n; i++ {
		product *= x - points[i-1].X
		result += product * coef[i]
	}
	return result
}
