package svgpath

import (
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) <= eps && math.Abs(p1.Y-p2.Y) <= eps
}

// cubics returns the CubicTo segments of p and the point each one starts from.
func cubics(p *Path) (starts []Point, curves []CubicTo) {
	var current Point
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case MoveTo:
			current = s.Point
		case LineTo:
			current = s.Point
		case CubicTo:
			starts = append(starts, current)
			curves = append(curves, s)
			current = s.Point
		}
	}
	return starts, curves
}

// Cubic pieces of at most a quarter turn meet the circle at their ends
// and dip inside it by up to about 2e-3 of the radius in between.
const (
	circleEndTol      = 1e-3
	circleInteriorTol = 2.5e-3
)

// checkOnCircle verifies that every cubic starts and ends on the circle
// around center with radius r and stays close to it in between.
func checkOnCircle(t *testing.T, p *Path, center Point, r float64) {
	t.Helper()
	starts, curves := cubics(p)
	for i, c := range curves {
		bez := CubicBez{P0: starts[i], P1: c.Control1, P2: c.Control2, P3: c.Point}
		for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
			tol := circleInteriorTol * r
			if u == 0 || u == 1 {
				tol = circleEndTol * r
			}
			pt := bez.Eval(u)
			if d := pt.Distance(center); math.Abs(d-r) > tol {
				t.Errorf("curve %d at t=%v: %v is %v from center, want %v", i, u, pt, d, r)
			}
		}
	}
}

func TestArc_Semicircle(t *testing.T) {
	tests := []struct {
		name   string
		d      string
		middle Point // end of the first quarter
	}{
		{"sweep", "M0,0 A5,5 0 1,1 10,0", Pt(5, -5)},
		{"no sweep", "M0,0 A5,5 0 1,0 10,0", Pt(5, 5)},
		{"relative compact flags", "M0,0 a5,5 0 1110,0", Pt(5, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.d)
			_, curves := cubics(p)
			if len(curves) != 2 {
				t.Fatalf("got %d cubic segments, want 2", len(curves))
			}
			if !pointsEqual(curves[0].Point, tt.middle, 1e-9) {
				t.Errorf("first segment ends at %v, want %v", curves[0].Point, tt.middle)
			}
			if curves[1].Point != Pt(10, 0) {
				t.Errorf("arc ends at %v, want (10, 0)", curves[1].Point)
			}
			checkOnCircle(t, p, Pt(5, 0), 5)
		})
	}
}

func TestArc_SemicircleEndpointsOnCircle(t *testing.T) {
	starts, curves := cubics(Parse("M0,0 A5,5 0 1,1 10,0"))
	if len(curves) == 0 {
		t.Fatal("no cubic segments")
	}
	points := []Point{starts[0]}
	for _, c := range curves {
		points = append(points, c.Point)
	}
	for _, pt := range points {
		if d := pt.Distance(Pt(5, 0)); math.Abs(d-5) > 5*circleEndTol {
			t.Errorf("endpoint %v is %v from (5, 0), want 5", pt, d)
		}
	}
}

func TestArc_QuarterCircleControlPoints(t *testing.T) {
	p := Parse("M10,0 A10,10 0 0,1 0,10")
	_, curves := cubics(p)
	if len(curves) != 1 {
		t.Fatalf("got %d cubic segments, want 1", len(curves))
	}

	alpha := (math.Sqrt(7) - 1) / 3
	c := curves[0]
	if !pointsEqual(c.Control1, Pt(10, 10*alpha), epsilon) {
		t.Errorf("Control1 = %v, want (10, %v)", c.Control1, 10*alpha)
	}
	if !pointsEqual(c.Control2, Pt(10*alpha, 10), epsilon) {
		t.Errorf("Control2 = %v, want (%v, 10)", c.Control2, 10*alpha)
	}
	if c.Point != Pt(0, 10) {
		t.Errorf("Point = %v, want (0, 10)", c.Point)
	}
	checkOnCircle(t, p, Pt(0, 0), 10)
}

func TestArc_LargeArcSelectsOtherCenter(t *testing.T) {
	// Same endpoints and radius as the quarter circle, but the large arc
	// goes three quarters of the way around the other center.
	p := Parse("M10,0 A10,10 0 1,1 0,10")
	_, curves := cubics(p)
	if len(curves) != 3 {
		t.Fatalf("got %d cubic segments, want 3", len(curves))
	}
	checkOnCircle(t, p, Pt(10, 10), 10)
}

func TestArc_RadiusCorrection(t *testing.T) {
	// A radius of 1 cannot span a chord of 10; it grows to 5.
	p := Parse("M0,0 A1,1 0 0,1 10,0")
	_, curves := cubics(p)
	if len(curves) != 2 {
		t.Fatalf("got %d cubic segments, want 2", len(curves))
	}
	checkOnCircle(t, p, Pt(5, 0), 5)
}

func TestArc_NegativeRadiiUseAbsoluteValue(t *testing.T) {
	a := Parse("M0,0 A-5,-5 0 0,1 10,0").Segments()
	b := Parse("M0,0 A5,5 0 0,1 10,0").Segments()
	if len(a) != len(b) {
		t.Fatalf("negative radii gave %d segments, positive %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d = %v, want %v", i, a[i], b[i])
		}
	}
}

func TestArc_RotatedEllipseEndsAtTarget(t *testing.T) {
	p := Parse("M0,0 A10,5 30 0,1 12,8")
	_, curves := cubics(p)
	if len(curves) == 0 || len(curves) > maxArcSegments {
		t.Fatalf("got %d cubic segments, want 1..%d", len(curves), maxArcSegments)
	}
	if got := curves[len(curves)-1].Point; got != Pt(12, 8) {
		t.Errorf("arc ends at %v, want (12, 8)", got)
	}
	if !p.IsFinite() {
		t.Error("rotated arc produced non-finite points")
	}
}

func TestArc_HugeRadiusDegradesToLine(t *testing.T) {
	huge := "1" + strings.Repeat("0", 200)
	d := "M0,0 A" + huge + "," + huge + " 0 0,1 10,0"
	want := []Segment{MoveTo{Pt(0, 0)}, LineTo{Pt(10, 0)}}
	checkSegments(t, d, Parse(d).Segments(), want)
}

func TestArcSegmentCount(t *testing.T) {
	tests := []struct {
		delta float64
		want  int
	}{
		{0, 1},
		{math.Pi / 4, 1},
		{math.Pi / 2, 1},
		{math.Pi/2 + 1e-12, 1},
		{-math.Pi / 2, 1},
		{math.Pi/2 + 0.01, 2},
		{math.Pi, 2},
		{-3 * math.Pi / 2, 3},
		{2 * math.Pi, 4},
		{math.Inf(1), 4},
	}

	for _, tt := range tests {
		if got := arcSegmentCount(tt.delta); got != tt.want {
			t.Errorf("arcSegmentCount(%v) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestVectorAngle(t *testing.T) {
	tests := []struct {
		name string
		u, v Point
		want float64
	}{
		{"same direction", Pt(1, 0), Pt(2, 0), 0},
		{"counter-clockwise quarter", Pt(1, 0), Pt(0, 1), math.Pi / 2},
		{"clockwise quarter", Pt(1, 0), Pt(0, -1), -math.Pi / 2},
		{"opposite", Pt(1, 0), Pt(-1, 0), math.Pi},
		{"zero vector", Pt(0, 0), Pt(1, 0), math.Pi / 2},
		{"nearly parallel", Pt(1, 1e-17), Pt(1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vectorAngle(tt.u, tt.v)
			if math.IsNaN(got) || math.Abs(got-tt.want) > epsilon {
				t.Errorf("vectorAngle(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}
