package svgpath

// Path operations for bounds, flattening, hit testing and normalization.

// DefaultTolerance is the flattening tolerance used when a non-positive
// tolerance is given, in path units.
const DefaultTolerance = 0.1

// maxFlattenDepth limits curve subdivision to 2^16 pieces per curve.
const maxFlattenDepth = 16

// Subpaths returns the number of subpaths, that is the number of MoveTo
// segments.
func (p *Path) Subpaths() int {
	n := 0
	for _, seg := range p.segments {
		if _, ok := seg.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Bounds returns the tight axis-aligned bounding box of the path.
// Curves contribute their extrema, not their control points.
// An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	var (
		bbox    Rect
		current Point
		start   Point
		seen    bool
	)
	add := func(r Rect) {
		if !seen {
			bbox, seen = r, true
			return
		}
		bbox = bbox.Union(r)
	}

	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			add(NewRect(s.Point, s.Point))
			current, start = s.Point, s.Point
		case LineTo:
			add(NewRect(current, s.Point))
			current = s.Point
		case QuadTo:
			add(QuadBez{P0: current, P1: s.Control, P2: s.Point}.BoundingBox())
			current = s.Point
		case CubicTo:
			add(CubicBez{P0: current, P1: s.Control1, P2: s.Control2, P3: s.Point}.BoundingBox())
			current = s.Point
		case Close:
			current = start
		}
	}
	return bbox
}

// Cubics returns a copy of the path with every QuadTo raised to an
// equivalent CubicTo, for consumers that only draw cubic curves.
func (p *Path) Cubics() *Path {
	result := NewPath()
	p.Replay(ElevateQuads(result))
	return result
}

// Flatten approximates the path with polylines, one per subpath. Curves
// are subdivided until they deviate from their chords by at most
// tolerance. A closed subpath ends with its start point.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var (
		polys   [][]Point
		poly    []Point
		current Point
		start   Point
	)
	flush := func() {
		if len(poly) > 0 {
			polys = append(polys, poly)
			poly = nil
		}
	}
	emit := func(pt Point) { poly = append(poly, pt) }

	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			flush()
			emit(s.Point)
			current, start = s.Point, s.Point
		case LineTo:
			if len(poly) == 0 {
				emit(current)
			}
			emit(s.Point)
			current = s.Point
		case QuadTo:
			if len(poly) == 0 {
				emit(current)
			}
			c := QuadBez{P0: current, P1: s.Control, P2: s.Point}.Raise()
			flattenCubic(c, tolerance*tolerance, 0, emit)
			current = s.Point
		case CubicTo:
			if len(poly) == 0 {
				emit(current)
			}
			c := CubicBez{P0: current, P1: s.Control1, P2: s.Control2, P3: s.Point}
			flattenCubic(c, tolerance*tolerance, 0, emit)
			current = s.Point
		case Close:
			if len(poly) > 0 {
				emit(start)
			}
			flush()
			current = start
		}
	}
	flush()
	return polys
}

// flattenCubic subdivides c until it is flat within tolerance and emits
// the end point of every piece.
func flattenCubic(c CubicBez, toleranceSq float64, depth int, fn func(Point)) {
	if depth >= maxFlattenDepth || !(c.flatness() > toleranceSq) {
		fn(c.P3)
		return
	}
	left, right := c.subdivide()
	flattenCubic(left, toleranceSq, depth+1, fn)
	flattenCubic(right, toleranceSq, depth+1, fn)
}

// Contains reports whether pt lies inside the path under the non-zero
// fill rule. Open subpaths are treated as implicitly closed, as when
// filling.
func (p *Path) Contains(pt Point) bool {
	if p.Len() == 0 || !p.Bounds().Contains(pt) {
		return false
	}
	winding := 0
	for _, poly := range p.Flatten(DefaultTolerance) {
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			winding += edgeWinding(a, b, pt)
		}
	}
	return winding != 0
}

// edgeWinding returns the contribution of edge a-b to the winding number
// of pt, casting a ray toward +X.
func edgeWinding(a, b, pt Point) int {
	side := b.Sub(a).Cross(pt.Sub(a))
	switch {
	case a.Y <= pt.Y && b.Y > pt.Y && side > 0:
		return 1
	case a.Y > pt.Y && b.Y <= pt.Y && side < 0:
		return -1
	}
	return 0
}

// Area returns the signed area enclosed by the flattened path, treating
// open subpaths as closed. The sign follows the winding direction.
func (p *Path) Area() float64 {
	var area float64
	for _, poly := range p.Flatten(DefaultTolerance) {
		for i := range poly {
			area += poly[i].Cross(poly[(i+1)%len(poly)])
		}
	}
	return area / 2
}

// IsFinite reports whether every point of the path is finite.
func (p *Path) IsFinite() bool {
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			if !s.Point.IsFinite() {
				return false
			}
		case LineTo:
			if !s.Point.IsFinite() {
				return false
			}
		case QuadTo:
			if !s.Control.IsFinite() || !s.Point.IsFinite() {
				return false
			}
		case CubicTo:
			if !s.Control1.IsFinite() || !s.Control2.IsFinite() || !s.Point.IsFinite() {
				return false
			}
		}
	}
	return true
}
