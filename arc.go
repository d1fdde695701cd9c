package svgpath

import "math"

// arcEpsilon floors divisors in the arc solver so that near-degenerate
// ellipses stay finite.
const arcEpsilon = 1e-10

// maxArcSegments bounds the cubic pieces of one arc. The sweep never
// exceeds a full turn and each piece covers at most a quarter turn.
const maxArcSegments = 4

// arcTo emits the elliptical arc from `from` to `to` into sink as cubic
// Bezier curves, using the endpoint-to-center conversion of the SVG
// implementation notes (F.6.5 and F.6.6).
//
// rotation is the x-axis rotation in degrees. Coincident endpoints emit
// nothing; a zero radius or a numerically unusable ellipse emits a line.
func arcTo(sink Sink, from Point, rx, ry, rotation float64, largeArc, sweep bool, to Point) {
	if from == to {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		sink.LineTo(to.X, to.Y)
		return
	}

	sinPhi, cosPhi := math.Sincos(rotation * math.Pi / 180)

	// Half chord in the ellipse's own frame.
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Radii too small to span the chord grow until they just do.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := math.Max(0, rx2*ry2-rx2*y1*y1-ry2*x1*x1)
	den := math.Max(rx2*y1*y1+ry2*x1*x1, arcEpsilon)
	coef := math.Sqrt(num / den)
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	e := ellipse{
		center: Point{
			X: cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
			Y: sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
		},
		rx: rx, ry: ry,
		sinPhi: sinPhi, cosPhi: cosPhi,
	}

	u := Pt((x1-cx1)/rx, (y1-cy1)/ry)
	v := Pt((-x1-cx1)/rx, (-y1-cy1)/ry)
	theta := vectorAngle(Pt(1, 0), u)
	delta := vectorAngle(u, v)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	if !e.center.IsFinite() || !isFinite(rx) || !isFinite(ry) || !isFinite(theta) || !isFinite(delta) {
		Logger().Debug("svgpath: arc degraded to line",
			"from", from, "to", to, "rx", rx, "ry", ry)
		sink.LineTo(to.X, to.Y)
		return
	}

	n := arcSegmentCount(delta)
	step := delta / float64(n)
	for i := range n {
		a1 := theta + float64(i)*step
		c1, c2, end := e.cubic(a1, a1+step)
		if i == n-1 {
			end = to
		}
		sink.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
}

// arcSegmentCount returns how many cubic pieces a sweep of delta radians
// needs so that no piece exceeds a quarter turn.
func arcSegmentCount(delta float64) int {
	ratio := math.Abs(delta) / (math.Pi / 2)
	if !(ratio <= maxArcSegments) {
		return maxArcSegments
	}
	// A sweep of 90.0000001 degrees is one piece, not two.
	if r := math.Round(ratio); math.Abs(ratio-r) < 1e-7 {
		ratio = r
	}
	n := int(math.Ceil(ratio))
	return min(max(n, 1), maxArcSegments)
}

// vectorAngle returns the signed angle from u to v in radians. The sign
// follows the cross product; the cosine is clamped to [-1, 1].
func vectorAngle(u, v Point) float64 {
	sign := 1.0
	if u.Cross(v) < 0 {
		sign = -1
	}
	length := math.Max(u.Length()*v.Length(), arcEpsilon)
	cos := math.Max(-1, math.Min(1, u.Dot(v)/length))
	return sign * math.Acos(cos)
}

// ellipse maps points of the unit circle onto a rotated, translated
// ellipse.
type ellipse struct {
	center         Point
	rx, ry         float64
	sinPhi, cosPhi float64
}

func (e ellipse) point(x, y float64) Point {
	return Point{
		X: e.cosPhi*e.rx*x - e.sinPhi*e.ry*y + e.center.X,
		Y: e.sinPhi*e.rx*x + e.cosPhi*e.ry*y + e.center.Y,
	}
}

// cubic returns the control points and end point of the cubic that
// approximates the ellipse between angles a1 and a2.
func (e ellipse) cubic(a1, a2 float64) (c1, c2, end Point) {
	da := a2 - a1
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	c1 = e.point(cos1-alpha*sin1, sin1+alpha*cos1)
	c2 = e.point(cos2+alpha*sin2, sin2-alpha*cos2)
	end = e.point(cos2, sin2)
	return c1, c2, end
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
