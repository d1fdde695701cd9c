package svgpath

import "strconv"

// String returns the path as absolute path data, for example
// "M0,0 L10,0 L10,10 Z". Parsing the result yields the same segments.
func (p *Path) String() string {
	return string(p.AppendPathData(nil))
}

// AppendPathData appends the path as absolute path data to dst and
// returns the extended buffer. Numbers are written in plain decimal
// notation because the grammar has no exponents; non-finite coordinates
// are written as 0.
func (p *Path) AppendPathData(dst []byte) []byte {
	for i, seg := range p.segments {
		if i > 0 {
			dst = append(dst, ' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			dst = append(dst, 'M')
			dst = appendPoint(dst, s.Point)
		case LineTo:
			dst = append(dst, 'L')
			dst = appendPoint(dst, s.Point)
		case QuadTo:
			dst = append(dst, 'Q')
			dst = appendPoint(dst, s.Control)
			dst = append(dst, ' ')
			dst = appendPoint(dst, s.Point)
		case CubicTo:
			dst = append(dst, 'C')
			dst = appendPoint(dst, s.Control1)
			dst = append(dst, ' ')
			dst = appendPoint(dst, s.Control2)
			dst = append(dst, ' ')
			dst = appendPoint(dst, s.Point)
		case Close:
			dst = append(dst, 'Z')
		}
	}
	return dst
}

func appendPoint(dst []byte, pt Point) []byte {
	dst = appendNumber(dst, pt.X)
	dst = append(dst, ',')
	return appendNumber(dst, pt.Y)
}

func appendNumber(dst []byte, v float64) []byte {
	if !isFinite(v) {
		v = 0
	}
	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}
