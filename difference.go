package interpolation

// DifferenceTable is the triangular table used by the Newton formulas.
// Row 0 holds the y values; row i holds the differences of row i-1 and has
// exactly n-i entries.
type DifferenceTable [][]float64

// ForwardDifferences builds the table of finite differences of values.
// Backward differences are the same numbers read along the last diagonal.
func ForwardDifferences(values []float64) DifferenceTable {
	n := len(values)
	t := make(DifferenceTable, n)
	if n == 0 {
		return t
	}
	t[0] = append([]float64(nil), values...)
	for i := 1; i < n; i++ {
		prev := t[i-1]
		row := make([]float64, n-i)
		for j := range row {
			row[j] = prev[j+1] - prev[j]
		}
		t[i] = row
	}
	return t
}

// DividedDifferences builds f[x_j..x_{j+i}] for every order i. Repeated x
// values divide by zero and leave non-finite entries.
func DividedDifferences(points []Point) DifferenceTable {
	n := len(points)
	t := make(DifferenceTable, n)
	if n == 0 {
		return t
	}
	t[0] = ys(points)
	for i := 1; i < n; i++ {
		prev := t[i-1]
		row := make([]float64, n-i)
		for j := range row {
			row[j] = (prev[j+1] - prev[j]) / (points[j+i].X - points[j].X)
		}
		t[i] = row
	}
	return t
}

// Order is the number of rows.
func (t DifferenceTable) Order() int {
	return len(t)
}

// Leading returns the first entry of each row: f0, Δf0, Δ²f0, ...
func (t DifferenceTable) Leading() []float64 {
	out := make([]float64, len(t))
	for i, row := range t {
		out[i] = row[0]
	}
	return out
}

// Trailing returns the last entry of each row: f_{n-1}, ∇f_{n-1}, ...
func (t DifferenceTable) Trailing() []float64 {
	out := make([]float64, len(t))
	for i, row := range t {
		out[i] = row[len(row)-1]
	}
	return out
}
