package fixed

// Sweep parameters for the two angle tables.
const (
	InnerSteps = 324 // Minor-circle sweep
	InnerMul   = 5
	InnerShift = 8

	OuterSteps = 90 // Major-circle sweep
	OuterMul   = 9
	OuterShift = 7
)

// Table is an ordered sequence of fixed-point (cos, sin) pairs.
type Table struct {
	Cos []int64
	Sin []int64
}

// Precomputed tables. They depend only on constants, so they are built once
// and must be treated as read-only.
var (
	InnerTable = BuildTable(InnerSteps, InnerMul, InnerShift, Unit)
	OuterTable = BuildTable(OuterSteps, OuterMul, OuterShift, Unit)
)

// BuildTable returns n pairs starting at seed, each one Rotate step after
// the previous.
func BuildTable(n int, mul int64, shift uint, seed Point) Table {
	t := Table{
		Cos: make([]int64, n),
		Sin: make([]int64, n),
	}
	p := seed
	for k := 0; k < n; k++ {
		t.Cos[k] = p.X
		t.Sin[k] = p.Y
		p = Rotate(mul, shift, p)
	}
	return t
}

// Len returns the number of pairs in the table.
func (t Table) Len() int {
	return len(t.Cos)
}

// At returns the pair at index k.
func (t Table) At(k int) Point {
	return Point{X: t.Cos[k], Y: t.Sin[k]}
}
