package svgpath

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 20), Pt(0, 5))
	if r.Min != Pt(0, 5) || r.Max != Pt(10, 20) {
		t.Errorf("NewRect() = %v, want normalized min/max", r)
	}
	if r.Width() != 10 || r.Height() != 15 {
		t.Errorf("size = %vx%v, want 10x15", r.Width(), r.Height())
	}
	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains((5, 5)) = false, want true")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("Contains((11, 5)) = true, want false")
	}

	u := r.Union(NewRect(Pt(-1, 0), Pt(1, 1)))
	if u.Min != Pt(-1, 0) || u.Max != Pt(10, 20) {
		t.Errorf("Union() = %v", u)
	}
	e := r.Extend(Pt(30, -2))
	if e.Min != Pt(0, -2) || e.Max != Pt(30, 20) {
		t.Errorf("Extend() = %v", e)
	}
}

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 5)},
		{1, Pt(10, 0)},
	}
	for _, tt := range tests {
		if got := q.Eval(tt.t); !pointsEqual(got, tt.want, epsilon) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(3, 9), P2: Pt(12, 3)}
	c := q.Raise()
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
		if got, want := c.Eval(tt), q.Eval(tt); !pointsEqual(got, want, epsilon) {
			t.Errorf("raised Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	ts := c.Extrema()
	if len(ts) != 1 || math.Abs(ts[0]-0.5) > epsilon {
		t.Errorf("Extrema() = %v, want [0.5]", ts)
	}

	line := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	if ts := line.Extrema(); len(ts) != 0 {
		t.Errorf("straight Extrema() = %v, want none", ts)
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(-5, 10), P2: Pt(15, 10), P3: Pt(10, 0)}
	bbox := c.BoundingBox()
	if bbox.Min.Y != 0 || math.Abs(bbox.Max.Y-7.5) > epsilon {
		t.Errorf("BoundingBox() y = [%v, %v], want [0, 7.5]", bbox.Min.Y, bbox.Max.Y)
	}
	if !(bbox.Min.X < 0) || !(bbox.Max.X > 10) {
		t.Errorf("BoundingBox() x = [%v, %v], want overshoot on both sides", bbox.Min.X, bbox.Max.X)
	}
	// Every sampled point lies inside.
	for i := range 101 {
		p := c.Eval(float64(i) / 100)
		grown := NewRect(bbox.Min.Sub(Pt(epsilon, epsilon)), bbox.Max.Add(Pt(epsilon, epsilon)))
		if !grown.Contains(p) {
			t.Fatalf("Eval(%v) = %v outside %v", float64(i)/100, p, bbox)
		}
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	left, right := c.subdivide()
	if left.P3 != right.P0 {
		t.Errorf("halves do not meet: %v vs %v", left.P3, right.P0)
	}
	if !pointsEqual(left.P3, c.Eval(0.5), epsilon) {
		t.Errorf("midpoint = %v, want %v", left.P3, c.Eval(0.5))
	}
	if !pointsEqual(left.Eval(0.5), c.Eval(0.25), epsilon) {
		t.Errorf("left.Eval(0.5) = %v, want %v", left.Eval(0.5), c.Eval(0.25))
	}
}

func TestCubicBez_Flatness(t *testing.T) {
	line := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	if f := line.flatness(); f > epsilon {
		t.Errorf("straight flatness() = %v, want 0", f)
	}
	curved := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	left, _ := curved.subdivide()
	if !(left.flatness() < curved.flatness()) {
		t.Errorf("subdivided flatness %v not below %v", left.flatness(), curved.flatness())
	}
}
