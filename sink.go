package svgpath

// ElevateQuads wraps sink so that quadratic curves reach it as the
// equivalent cubic curves. Every other segment passes through unchanged.
func ElevateQuads(sink Sink) Sink {
	return &quadElevator{sink: sink}
}

// quadElevator tracks the current point, which a quadratic needs to be
// raised to a cubic.
type quadElevator struct {
	sink    Sink
	current Point
	start   Point
}

func (q *quadElevator) MoveTo(x, y float64) {
	q.current = Pt(x, y)
	q.start = q.current
	q.sink.MoveTo(x, y)
}

func (q *quadElevator) LineTo(x, y float64) {
	q.current = Pt(x, y)
	q.sink.LineTo(x, y)
}

func (q *quadElevator) QuadTo(cx, cy, x, y float64) {
	c := QuadBez{P0: q.current, P1: Pt(cx, cy), P2: Pt(x, y)}.Raise()
	q.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

func (q *quadElevator) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	q.current = Pt(x, y)
	q.sink.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (q *quadElevator) Close() {
	q.current = q.start
	q.sink.Close()
}
