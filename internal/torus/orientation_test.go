package torus

import (
	"testing"

	"github.com/tomz197/donut/internal/fixed"
)

func withinDrift(p fixed.Point) bool {
	n2 := p.Norm2() * 10000
	return n2 >= 9604*fixed.One*fixed.One && n2 <= 10404*fixed.One*fixed.One
}

func TestIdentity(t *testing.T) {
	o := Identity()
	if o.A != fixed.Unit || o.B != fixed.Unit {
		t.Errorf("Identity() = %+v", o)
	}
}

func TestAdvanceMovesBothAxes(t *testing.T) {
	o := Identity()
	o.Advance()
	if o.A == fixed.Unit || o.B == fixed.Unit {
		t.Fatalf("Advance left an axis unchanged: %+v", o)
	}
	if o.A.Y <= o.B.Y {
		t.Errorf("axis A should turn faster than B: A=%+v B=%+v", o.A, o.B)
	}
}

func TestAdvanceLongRunStable(t *testing.T) {
	o := Identity()
	for step := 0; step < 10000; step++ {
		o.Advance()
		if !withinDrift(o.A) || !withinDrift(o.B) {
			t.Fatalf("step %d: orientation drifted: %+v", step, o)
		}
	}
}
