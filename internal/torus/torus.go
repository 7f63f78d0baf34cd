// Package torus rasterizes a lit, rotating torus into a draw.Frame using
// fixed-point arithmetic only.
package torus

import (
	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/fixed"
)

// Torus geometry and projection constants, all fixed-point where scaled.
const (
	R1 = 1                // Minor radius (multiplies a fixed-point cosine)
	R2 = 2 * fixed.One    // Major radius
	K2 = 5120 * fixed.One // Viewer distance

	centerX = draw.Width / 2
	centerY = 12
	scaleX  = 30
	scaleY  = 15

	depthShift = 15
	lightShift = 7
)

// Sample is one surface point after projection and lighting.
type Sample struct {
	X, Y  int   // Screen cell
	Z     uint8 // Clamped depth, smaller is nearer
	Light int64 // Unclamped lighting level
	Denom int64 // Projection denominator
}

// Shade returns the palette character for the sample's lighting level.
func (s Sample) Shade() byte {
	return draw.Shade(s.Light)
}

// At computes the surface sample for inner angle (ci, si) and outer angle
// (cj, sj) under orientation o.
func At(ci, si, cj, sj int64, o Orientation) Sample {
	cA, sA := o.A.X, o.A.Y
	cB, sB := o.B.X, o.B.Y

	x0 := R1*cj + R2
	x1 := (ci * x0) >> fixed.Shift
	x2 := (cA * sj) >> fixed.Shift
	x3 := (si * x0) >> fixed.Shift
	x4 := x2 - (sA*x3)>>fixed.Shift
	x5 := (sA * sj) >> fixed.Shift
	x6 := K2 + fixed.One*x5 + cA*x3
	x7 := (cj * si) >> fixed.Shift

	// Go's integer division truncates toward zero.
	x := centerX + scaleX*(cB*x1-sB*x4)/x6
	y := centerY + scaleY*(cB*x4+sB*x1)/x6

	n := (-cA*x7 - cB*(((-sA*x7)>>fixed.Shift)+x2) - ci*((cj*sB)>>fixed.Shift)) >> fixed.Shift
	n = (n - x5) >> lightShift

	return Sample{
		X:     int(x),
		Y:     int(y),
		Z:     draw.ClampDepth((x6 - K2) >> depthShift),
		Light: n,
		Denom: x6,
	}
}

// Plot feeds the sample through the frame's bounds and depth test.
func (s Sample) Plot(f *draw.Frame) bool {
	return f.Plot(s.X, s.Y, s.Z, s.Shade())
}

// Rasterize plots every (inner, outer) pair of the two tables into f.
// The frame is not reset first.
func Rasterize(f *draw.Frame, inner, outer fixed.Table, o Orientation) {
	for j := 0; j < outer.Len(); j++ {
		cj, sj := outer.Cos[j], outer.Sin[j]
		for i := 0; i < inner.Len(); i++ {
			At(inner.Cos[i], inner.Sin[i], cj, sj, o).Plot(f)
		}
	}
}

// Samples returns every sample Rasterize would plot, outer index major.
func Samples(inner, outer fixed.Table, o Orientation) []Sample {
	out := make([]Sample, 0, inner.Len()*outer.Len())
	for j := 0; j < outer.Len(); j++ {
		for i := 0; i < inner.Len(); i++ {
			out = append(out, At(inner.Cos[i], inner.Sin[i], outer.Cos[j], outer.Sin[j], o))
		}
	}
	return out
}
