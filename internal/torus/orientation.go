package torus

import "github.com/tomz197/donut/internal/fixed"

// Per-frame rotation speeds of the two axes.
const (
	axisAMul   = 5
	axisAShift = 7
	axisBMul   = 5
	axisBShift = 8
)

// Orientation is the two-axis rotation applied to the whole torus. A and B
// each hold a fixed-point (cos, sin) pair.
type Orientation struct {
	A, B fixed.Point
}

// Identity returns the unrotated orientation.
func Identity() Orientation {
	return Orientation{A: fixed.Unit, B: fixed.Unit}
}

// Advance rotates both axes by one frame step.
func (o *Orientation) Advance() {
	o.A = fixed.Rotate(axisAMul, axisAShift, o.A)
	o.B = fixed.Rotate(axisBMul, axisBShift, o.B)
}
