// Package raster implements Faint's non-antialiased rasterization engine:
// lines, ellipses, rectangles, polygons, polylines, triangle fill,
// blend/blit, flood/boundary fill and color replace, all bit-exact with
// the original Faint editor's scan-converters.
package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// LineCap selects how an open line's endpoints are finished.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// LineSettings controls a single or multi-segment line draw.
type LineSettings struct {
	Paint     paint.Paint
	LineWidth int
	Dashes    bool
	Cap       LineCap
}

func putPixel(dst *buffer.Bitmap, x, y int, src paint.PixelSource) {
	buffer.PutPixel(dst, geom.IntPoint{X: x, Y: y}, src.At(x, y))
}

// lineCircle stamps a filled disc of diameter lineWidth centered at
// (cx,cy), used as the ROUND cap at a line endpoint or polygon vertex.
func lineCircle(dst *buffer.Bitmap, cx, cy, lineWidth int, src paint.PixelSource) {
	r := lineWidth / 2
	fillEllipseRaw(dst, cx, cy, r, r, src)
}

// DrawLine draws a (possibly dashed, possibly wide) line from (x0,y0) to
// (x1,y1). lineWidth<=1 takes the thin Bresenham path; lineWidth>1
// delegates to the wide parallel-raster path.
func DrawLine(dst *buffer.Bitmap, p0, p1 geom.IntPoint, s LineSettings) {
	bounds := boundsOf(p0, p1, s.LineWidth)
	src := s.Paint.Source(bounds)
	if s.LineWidth > 1 {
		drawWideLine(dst, p0.X, p0.Y, p1.X, p1.Y, s.LineWidth, s.Dashes, s.Cap, src)
		return
	}
	drawThinLine(dst, p0.X, p0.Y, p1.X, p1.Y, s.Dashes, src)
}

func boundsOf(p0, p1 geom.IntPoint, lineWidth int) geom.Rect {
	x1, y1 := float64(p0.X), float64(p0.Y)
	x2, y2 := float64(p1.X), float64(p1.Y)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	pad := float64(lineWidth)
	return geom.Rect{X1: x1 - pad, Y1: y1 - pad, X2: x2 + pad, Y2: y2 + pad}
}

// drawThinLine is a Bresenham midpoint line with octant normalization and,
// when dashed, an on/off toggle every two steps.
func drawThinLine(dst *buffer.Bitmap, x0, y0, x1, y1 int, dashed bool, src paint.PixelSource) {
	steep := geom.Abs(y1-y0) > geom.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := geom.Abs(y1 - y0)
	err := dx / 2
	ystep := 1
	if y0 >= y1 {
		ystep = -1
	}
	y := y0
	steps := 0
	on := true
	for x := x0; x <= x1; x++ {
		if !dashed || on {
			if steep {
				putPixel(dst, y, x, src)
			} else {
				putPixel(dst, x, y, src)
			}
		}
		if dashed {
			steps = (steps + 1) % 2
			if steps == 0 {
				on = !on
			}
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
}

// getOffset computes the perpendicular offset point used to step the
// p-line bounding a wide line, hard-coded with the steepness-driven
// octant swap the original applies; preserved exactly for all octants.
func getOffset(x0, y0, x1, y1, lineWidth float64) geom.IntPoint {
	const diag = 1.4142135623730951 // sqrt(2)
	steep := geom.Abs(int(y1-y0)) > geom.Abs(int(x1-x0))
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	dx := x1 - x0
	dy := y1 - y0
	if dx == 0 {
		return geom.IntPoint{}
	}
	slope := dy / dx
	distance := 0.0
	x, y := 0.0, 0.0
	step := 1.0
	if dx < 0 {
		step = -1.0
	}
	for distance < lineWidth {
		x += step
		y += step * slope
		distance += diag
	}
	if steep {
		return geom.IntPoint{X: geom.IRound(y), Y: geom.IRound(x)}
	}
	return geom.IntPoint{X: geom.IRound(x), Y: geom.IRound(y)}
}

// drawWideLine rasterizes a line of width lineWidth>1 as a parallel-raster
// band between the base line and a bounding p-line offset by getOffset.
func drawWideLine(dst *buffer.Bitmap, x0, y0, x1, y1, lineWidth int, dashed bool, cap LineCap, src paint.PixelSource) {
	fx0, fy0, fx1, fy1 := float64(x0), float64(y0), float64(x1), float64(y1)
	if fx1-fx0 == 0 && fy1-fy0 == 0 {
		lineCircle(dst, x0, y0, lineWidth, src)
		return
	}

	steep := geom.Abs(y1-y0) > geom.Abs(x1-x0)
	sx0, sy0, sx1, sy1 := x0, y0, x1, y1
	if steep {
		sx0, sy0 = sy0, sx0
		sx1, sy1 = sy1, sx1
	}
	if sx0 > sx1 {
		sx0, sx1 = sx1, sx0
		sy0, sy1 = sy1, sy0
	}

	dx := sx1 - sx0
	if dx == 0 {
		return
	}
	dy := sy1 - sy0

	offset := getOffset(fx0, fy0, fx1, fy1, float64(lineWidth)/2)

	err := dx / 2
	ystep := 1
	if sy0 >= sy1 {
		ystep = -1
	}
	y := sy0
	steps := 0
	on := true
	for x := sx0; x <= sx1; x++ {
		if !dashed || on {
			drawPLineSpan(dst, x, y, offset, steep, src)
		}
		if dashed {
			steps = (steps + 1) % (lineWidth * 2)
			if steps == 0 {
				on = !on
			}
		}
		err -= geom.Abs(dy)
		if err < 0 {
			y += ystep
			err += dx
		}
	}

	if cap == CapRound {
		lineCircle(dst, x0, y0, lineWidth, src)
		lineCircle(dst, x1, y1, lineWidth, src)
	}
}

// drawPLineSpan fills the perpendicular span from the base point to the
// offset bounding point, in both directions, at one step of the main scan.
func drawPLineSpan(dst *buffer.Bitmap, bx, by int, offset geom.IntPoint, steep bool, src paint.PixelSource) {
	put := func(x, y int) {
		if steep {
			putPixel(dst, y, x, src)
		} else {
			putPixel(dst, x, y, src)
		}
	}
	ox, oy := offset.X, offset.Y
	steps := geom.Abs(ox)
	if geom.Abs(oy) > steps {
		steps = geom.Abs(oy)
	}
	if steps == 0 {
		put(bx, by)
		return
	}
	for i := -steps; i <= steps; i++ {
		fx := bx + (ox*i)/steps
		fy := by + (oy*i)/steps
		put(fx, fy)
	}
}
