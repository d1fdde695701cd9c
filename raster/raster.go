// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster fills svgpath paths into images on the CPU.
//
// It is a thin consumer of the svgpath core: a Rasterizer is an
// svgpath.Sink backed by golang.org/x/image/vector, so path data can be
// parsed straight into coverage without building a Path first.
//
// Usage:
//
//	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
//	p := svgpath.Parse("M20,20 h160 v160 h-160 Z")
//	raster.Fill(img, p, svgpath.Scale(1, 1), color.Black)
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/svgpath"
	"golang.org/x/image/vector"
)

// Rasterizer accumulates path coverage for one image size. Points are
// mapped through a transform before they reach the coverage buffer.
//
// Open subpaths are closed implicitly, matching fill semantics.
type Rasterizer struct {
	z       *vector.Rasterizer
	m       svgpath.Matrix
	open    bool // current subpath has edges not yet closed
	invalid bool // a non-finite coordinate was seen
}

var _ svgpath.Sink = (*Rasterizer)(nil)

// NewRasterizer creates a rasterizer for a w x h image that maps path
// coordinates through m.
func NewRasterizer(w, h int, m svgpath.Matrix) *Rasterizer {
	return &Rasterizer{
		z: vector.NewRasterizer(w, h),
		m: m,
	}
}

// Reset clears accumulated coverage and resizes the rasterizer.
func (r *Rasterizer) Reset(w, h int) {
	r.z.Reset(w, h)
	r.open = false
	r.invalid = false
}

// Size returns the rasterizer's image size.
func (r *Rasterizer) Size() image.Point {
	return r.z.Size()
}

// Valid reports whether every coordinate seen since the last Reset was
// finite after transformation. Draw does nothing on an invalid rasterizer.
func (r *Rasterizer) Valid() bool {
	return !r.invalid
}

func (r *Rasterizer) point(x, y float64) (float32, float32) {
	p := r.m.TransformPoint(svgpath.Pt(x, y))
	fx, fy := float32(p.X), float32(p.Y)
	if !finite32(fx) || !finite32(fy) {
		r.invalid = true
		return 0, 0
	}
	return fx, fy
}

// MoveTo implements svgpath.Sink.
func (r *Rasterizer) MoveTo(x, y float64) {
	r.closeOpen()
	r.z.MoveTo(r.point(x, y))
}

// LineTo implements svgpath.Sink.
func (r *Rasterizer) LineTo(x, y float64) {
	r.z.LineTo(r.point(x, y))
	r.open = true
}

// QuadTo implements svgpath.Sink.
func (r *Rasterizer) QuadTo(cx, cy, x, y float64) {
	bx, by := r.point(cx, cy)
	ex, ey := r.point(x, y)
	r.z.QuadTo(bx, by, ex, ey)
	r.open = true
}

// CubicTo implements svgpath.Sink.
func (r *Rasterizer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	bx, by := r.point(c1x, c1y)
	cx, cy := r.point(c2x, c2y)
	dx, dy := r.point(x, y)
	r.z.CubeTo(bx, by, cx, cy, dx, dy)
	r.open = true
}

// Close implements svgpath.Sink.
func (r *Rasterizer) Close() {
	r.z.ClosePath()
	r.open = false
}

func (r *Rasterizer) closeOpen() {
	if r.open {
		r.z.ClosePath()
		r.open = false
	}
}

// Draw composites src over dst through the accumulated coverage. The
// rasterizer's origin maps to dst.Bounds().Min.
func (r *Rasterizer) Draw(dst draw.Image, src image.Image) {
	r.closeOpen()
	if r.invalid {
		svgpath.Logger().Debug("raster: skipping path with non-finite coordinates")
		return
	}
	r.z.Draw(dst, dst.Bounds(), src, image.Point{})
}

// Fill paints p, transformed by m, onto dst in color c using the
// non-zero fill rule. Transformed coordinates are in dst's own coordinate
// space, so a sub-image is filled where its parent would be.
func Fill(dst draw.Image, p *svgpath.Path, m svgpath.Matrix, c color.Color) {
	b := dst.Bounds()
	r := NewRasterizer(b.Dx(), b.Dy(), svgpath.Translate(float64(-b.Min.X), float64(-b.Min.Y)).Multiply(m))
	p.Replay(r)
	r.Draw(dst, image.NewUniform(c))
}

// Mask returns the coverage of p, transformed by m, as a w x h alpha mask.
func Mask(w, h int, p *svgpath.Path, m svgpath.Matrix) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r := NewRasterizer(w, h, m)
	p.Replay(r)
	r.Draw(mask, image.Opaque)
	return mask
}

// SavePNG encodes img as PNG into the file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
