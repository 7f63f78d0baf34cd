// Package fixed implements the integer-only rotation primitive and the
// angle tables the torus surface is swept with.
//
// Values are fixed-point scalars scaled by One (1024). No floating point
// is used anywhere in the package.
package fixed

const (
	// Shift is the number of fractional bits in a fixed-point scalar.
	Shift = 10
	// One is 1.0 in fixed-point.
	One = 1 << Shift

	// renorm is 3*One*One. Together with the >>11 below it yields a
	// first-order correction of (3 - |p|^2) / 2, which pulls |p| back to One.
	renorm = 3 * One * One
)

// Point is a fixed-point (cos, sin) pair.
type Point struct {
	X, Y int64
}

// Unit is the point at angle zero.
var Unit = Point{X: One}

// Norm2 returns the squared magnitude of p, scaled by One*One.
func (p Point) Norm2() int64 {
	return p.X*p.X + p.Y*p.Y
}

// Rotate advances p by one incremental rotation step of roughly
// mul/2^shift radians and renormalizes the result so the magnitude stays
// close to One indefinitely.
//
// All shifts are arithmetic on signed 64-bit values.
func Rotate(mul int64, shift uint, p Point) Point {
	x := p.X - (mul*p.Y)>>shift
	y := p.Y + (mul*p.X)>>shift

	c := (renorm - x*x - y*y) >> 11
	return Point{
		X: (x * c) >> Shift,
		Y: (y * c) >> Shift,
	}
}
