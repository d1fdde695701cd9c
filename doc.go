// Package svgpath parses vector path data into renderer-agnostic segments.
//
// # Overview
//
// Path data is the compact outline language of the SVG "d" attribute:
// command letters followed by numbers, for example
//
//	M10,10 h80 v80 h-80 Z
//	M0,0 C0,0 10,0 10,10 S20,20 20,0
//	M0,0 A5,5 0 1,1 10,0
//
// Parse turns such a string into a Path: an ordered list of MoveTo,
// LineTo, QuadTo, CubicTo and Close segments. Elliptical arcs are
// converted to cubic Bezier curves of at most a quarter turn each, so any
// backend that can draw lines and cubics can draw the result.
//
// # Quick Start
//
//	p := svgpath.Parse("M0,0 L10,0 L10,10 Z")
//	for _, seg := range p.Segments() {
//		switch s := seg.(type) {
//		case svgpath.MoveTo:
//			fmt.Println("move", s.Point)
//		case svgpath.LineTo:
//			fmt.Println("line", s.Point)
//		case svgpath.Close:
//			fmt.Println("close")
//		}
//	}
//
// To draw without building a Path, implement Sink and call ParseTo.
// ElevateQuads adapts a Sink for backends without quadratic curves.
// The raster sub-package fills paths into images, and the cache
// sub-package shares parsed paths between repeated uses of the same data.
//
// # Error Handling
//
// Parsing never fails. Numbers without digits read as 0, arc flags other
// than '1' read as false, unknown command letters and stray bytes are
// skipped, and degenerate arcs become lines or nothing. Enable debug
// logging with SetLogger to see what was tolerated.
//
// # Coordinate System
//
// Coordinates are taken as written. Lowercase commands are relative to
// the current point. Arc rotation is in degrees; everything else that
// takes an angle uses radians.
//
// # Concurrency
//
// Parse and ParseTo keep all state on the stack of the call and may be
// used from any number of goroutines.
package svgpath
