package svgpath

// Parse converts path data (the grammar of an SVG path "d" attribute)
// into a Path.
//
// Parse never fails. Malformed input yields a best-effort path: numbers
// without digits read as 0, arc flags other than '1' read as false,
// unknown command letters and stray bytes are skipped. The result may be
// geometrically wrong for malformed input, but parsing always terminates.
func Parse(d string) *Path {
	p := NewPath()
	ParseTo(d, p)
	return p
}

// ParseTo parses path data and emits the resulting segments into sink.
// Elliptical arcs reach the sink as one or more CubicTo calls, or as a
// LineTo when the arc is degenerate.
func ParseTo(d string, sink Sink) {
	p := parser{s: newScanner(d), sink: sink}
	p.run()
}

// parser is the command state machine. It owns the scanner and the
// points needed to resolve relative coordinates and smooth curves.
type parser struct {
	s    scanner
	sink Sink

	current   Point
	start     Point // start of the current subpath
	lastCubic Point // second control of the previous cubic, else current
	lastQuad  Point // control of the previous quadratic, else current
	prev      byte  // previous command letter, 0 when none
}

func (p *parser) run() {
	for {
		p.s.skipSeparators()
		if p.s.done() {
			return
		}

		cmd, ok := p.s.nextCommand()
		if !ok {
			if c := p.s.peek(); !isNumberStart(c) {
				Logger().Debug("svgpath: skipping unexpected byte",
					"offset", p.s.pos, "byte", int(c))
				p.s.skip()
				continue
			}
			cmd = repeatedCommand(p.prev)
			if cmd == 0 {
				offset := p.s.pos
				p.s.readNumber()
				Logger().Debug("svgpath: ignoring number without a command",
					"offset", offset, "previous", string(rune(p.prev)))
				continue
			}
		}
		p.exec(cmd)
	}
}

// repeatedCommand returns the command implied by bare numbers following
// prev. Coordinates after a move are line-tos. Close takes no arguments
// and never repeats.
func repeatedCommand(prev byte) byte {
	switch prev {
	case 'M':
		return 'L'
	case 'm':
		return 'l'
	case 'Z', 'z':
		return 0
	}
	return prev
}

func (p *parser) exec(cmd byte) {
	rel := cmd >= 'a' && cmd <= 'z'
	switch cmd {
	case 'M', 'm':
		p.moveTo(rel)
	case 'L', 'l':
		p.lineTo(rel)
	case 'H', 'h':
		p.horizontalTo(rel)
	case 'V', 'v':
		p.verticalTo(rel)
	case 'C', 'c':
		p.cubicTo(rel)
	case 'S', 's':
		p.smoothCubicTo(rel)
	case 'Q', 'q':
		p.quadTo(rel)
	case 'T', 't':
		p.smoothQuadTo(rel)
	case 'A', 'a':
		p.arcTo(rel)
	case 'Z', 'z':
		p.closePath()
	default:
		Logger().Debug("svgpath: skipping unknown command",
			"offset", p.s.pos-1, "command", string(rune(cmd)))
		return
	}
	p.prev = cmd
}

// readPoint reads a coordinate pair, offset by the current point when rel.
func (p *parser) readPoint(rel bool) Point {
	x := p.s.readNumber()
	y := p.s.readNumber()
	if rel {
		return p.current.Add(Pt(x, y))
	}
	return Pt(x, y)
}

// resetControls points both reflection anchors at the current point.
func (p *parser) resetControls() {
	p.lastCubic = p.current
	p.lastQuad = p.current
}

func (p *parser) moveTo(rel bool) {
	p.current = p.readPoint(rel)
	p.start = p.current
	p.resetControls()
	p.sink.MoveTo(p.current.X, p.current.Y)

	for p.s.peekNumber() {
		p.current = p.readPoint(rel)
		p.resetControls()
		p.sink.LineTo(p.current.X, p.current.Y)
	}
}

func (p *parser) lineTo(rel bool) {
	for {
		p.current = p.readPoint(rel)
		p.resetControls()
		p.sink.LineTo(p.current.X, p.current.Y)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) horizontalTo(rel bool) {
	for {
		x := p.s.readNumber()
		if rel {
			x += p.current.X
		}
		p.current.X = x
		p.resetControls()
		p.sink.LineTo(p.current.X, p.current.Y)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) verticalTo(rel bool) {
	for {
		y := p.s.readNumber()
		if rel {
			y += p.current.Y
		}
		p.current.Y = y
		p.resetControls()
		p.sink.LineTo(p.current.X, p.current.Y)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) cubicTo(rel bool) {
	for {
		c1 := p.readPoint(rel)
		c2 := p.readPoint(rel)
		end := p.readPoint(rel)
		p.emitCubic(c1, c2, end)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) smoothCubicTo(rel bool) {
	for {
		c1 := p.current.Reflect(p.lastCubic)
		c2 := p.readPoint(rel)
		end := p.readPoint(rel)
		p.emitCubic(c1, c2, end)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) emitCubic(c1, c2, end Point) {
	p.sink.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	p.current = end
	p.lastCubic = c2
	p.lastQuad = end
}

func (p *parser) quadTo(rel bool) {
	for {
		ctrl := p.readPoint(rel)
		end := p.readPoint(rel)
		p.emitQuad(ctrl, end)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) smoothQuadTo(rel bool) {
	for {
		ctrl := p.current.Reflect(p.lastQuad)
		end := p.readPoint(rel)
		p.emitQuad(ctrl, end)
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) emitQuad(ctrl, end Point) {
	p.sink.QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
	p.current = end
	p.lastQuad = ctrl
	p.lastCubic = end
}

func (p *parser) arcTo(rel bool) {
	for {
		rx := p.s.readNumber()
		ry := p.s.readNumber()
		rotation := p.s.readNumber()
		largeArc := p.s.readFlag()
		sweep := p.s.readFlag()
		end := p.readPoint(rel)

		arcTo(p.sink, p.current, rx, ry, rotation, largeArc, sweep, end)
		p.current = end
		p.resetControls()
		if !p.s.peekNumber() {
			return
		}
	}
}

func (p *parser) closePath() {
	p.sink.Close()
	p.current = p.start
	p.resetControls()
}
