package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// FillTriangle fills the triangle (p0,p1,p2) by sorting its vertices by y
// and sweeping two edges per scanline, splitting at the middle vertex's y
// exactly as a standard flat-top/flat-bottom triangle fill does.
func FillTriangle(dst *buffer.Bitmap, p0, p1, p2 geom.IntPoint, p paint.Paint) {
	pts := [3]geom.IntPoint{p0, p1, p2}
	// Sort by y ascending (insertion sort, 3 elements).
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}
	if pts[1].Y > pts[2].Y {
		pts[1], pts[2] = pts[2], pts[1]
	}
	if pts[0].Y > pts[1].Y {
		pts[0], pts[1] = pts[1], pts[0]
	}
	top, mid, bot := pts[0], pts[1], pts[2]

	minX, maxX := top.X, top.X
	for _, pt := range pts {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
	}
	bounds := geom.Rect{X1: float64(minX), Y1: float64(top.Y), X2: float64(maxX), Y2: float64(bot.Y)}
	src := p.Source(bounds)

	// Edge from top to bot spans the full height; dx1 is its per-row slope.
	totalDy := bot.Y - top.Y
	if totalDy == 0 {
		// Degenerate: all three vertices share a y. Fill as a flat span.
		lo, hi := minX, maxX
		for x := lo; x <= hi; x++ {
			putPixel(dst, x, top.Y, src)
		}
		return
	}
	dx1 := float64(bot.X-top.X) / float64(totalDy)

	fillHalf := func(yFrom, yTo int, fromX, dxOther float64) {
		xLong := float64(top.X) + dxOther*float64(yFrom-top.Y)
		xShort := fromX
		for y := yFrom; y < yTo; y++ {
			a := geom.IRound(xLong)
			b := geom.IRound(xShort)
			if a > b {
				a, b = b, a
			}
			for x := a; x <= b; x++ {
				putPixel(dst, x, y, src)
			}
			xLong += dx1
			xShort += dxOther
		}
	}

	if mid.Y > top.Y {
		dx2 := float64(mid.X-top.X) / float64(mid.Y-top.Y)
		fillHalf(top.Y, mid.Y, float64(top.X), dx2)
	}
	if bot.Y > mid.Y {
		dx3 := float64(bot.X-mid.X) / float64(bot.Y-mid.Y)
		xLong := float64(top.X) + dx1*float64(mid.Y-top.Y)
		xShort := float64(mid.X)
		for y := mid.Y; y < bot.Y; y++ {
			a := geom.IRound(xLong)
			b := geom.IRound(xShort)
			if a > b {
				a, b = b, a
			}
			for x := a; x <= b; x++ {
				putPixel(dst, x, y, src)
			}
			xLong += dx1
			xShort += dx3
		}
	}
}
