package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// FillRect fills the rectangle r, clipped to dst, with p.
func FillRect(dst *buffer.Bitmap, r geom.IntRect, p paint.Paint) {
	r.Normalize()
	bounds := geom.Rect{X1: float64(r.X1), Y1: float64(r.Y1), X2: float64(r.X2), Y2: float64(r.Y2)}
	src := p.Source(bounds)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			putPixel(dst, x, y, src)
		}
	}
}

// DrawRect outlines the rectangle r. A solid, width<=1 rect is drawn with
// four nested scanlines so each side is exactly one pixel; a dashed or
// wide rect is drawn as a closed four-vertex polygon outline so dashing and
// width share the general line-drawing path.
func DrawRect(dst *buffer.Bitmap, r geom.IntRect, s LineSettings) {
	r.Normalize()
	if !s.Dashes && s.LineWidth <= 1 {
		bounds := geom.Rect{X1: float64(r.X1), Y1: float64(r.Y1), X2: float64(r.X2), Y2: float64(r.Y2)}
		src := s.Paint.Source(bounds)
		for x := r.X1; x < r.X2; x++ {
			putPixel(dst, x, r.Y1, src)
			putPixel(dst, x, r.Y2-1, src)
		}
		for y := r.Y1; y < r.Y2; y++ {
			putPixel(dst, r.X1, y, src)
			putPixel(dst, r.X2-1, y, src)
		}
		return
	}

	corners := []geom.IntPoint{
		{X: r.X1, Y: r.Y1},
		{X: r.X2 - 1, Y: r.Y1},
		{X: r.X2 - 1, Y: r.Y2 - 1},
		{X: r.X1, Y: r.Y2 - 1},
	}
	DrawPolygon(dst, corners, s)
}
