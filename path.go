package svgpath

// Segment is a single drawing step of a Path. The concrete types are
// MoveTo, LineTo, QuadTo, CubicTo and Close.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight edge from the current point to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bezier curve from the current point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bezier curve from the current point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// Close draws a straight edge back to the start of the current subpath.
type Close struct{}

func (Close) isSegment() {}

// Sink receives the segments produced by ParseTo. Path implements Sink;
// renderers implement it to draw path data without an intermediate Path.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Path is an ordered sequence of segments.
// The zero value is an empty path ready to use.
type Path struct {
	segments []Segment
	start    Point // start of the current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight edge to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic Bezier curve with control (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath. The current point becomes the
// subpath start.
func (p *Path) Close() {
	p.segments = append(p.segments, Close{})
	p.current = p.start
}

// Segments returns the path segments in draw order.
// The returned slice is owned by the path.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Reset removes all segments from the path, keeping its storage.
func (p *Path) Reset() {
	p.segments = p.segments[:0]
	p.start = Point{}
	p.current = Point{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		segments: append([]Segment(nil), p.segments...),
		start:    p.start,
		current:  p.current,
	}
}

// Replay emits every segment of the path into sink, in order.
func (p *Path) Replay(sink Sink) {
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			sink.MoveTo(s.Point.X, s.Point.Y)
		case LineTo:
			sink.LineTo(s.Point.X, s.Point.Y)
		case QuadTo:
			sink.QuadTo(s.Control.X, s.Control.Y, s.Point.X, s.Point.Y)
		case CubicTo:
			sink.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case Close:
			sink.Close()
		}
	}
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	result := NewPath()
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			pt := m.TransformPoint(s.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(s.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(s.Control)
			pt := m.TransformPoint(s.Point)
			result.QuadTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(s.Control1)
			c2 := m.TransformPoint(s.Control2)
			pt := m.TransformPoint(s.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}
