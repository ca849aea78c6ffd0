package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// ellipsePoints returns, for a midpoint ellipse centered at (cx,cy) with
// semi-axes (a,b), a map from relative y to the largest relative x on the
// ellipse at that y -- built from two midpoint passes (x-driven for the
// shallow region, y-driven for the steep region) exactly as the original's
// ellipse_points helper does, so an annulus between two such maps can be
// scan-converted into a wide ellipse outline.
func ellipsePoints(a, b int) map[int]int {
	pts := make(map[int]int)
	if a == 0 || b == 0 {
		return pts
	}
	set := func(x, y int) {
		if cur, ok := pts[y]; !ok || x > cur {
			pts[y] = x
		}
	}

	x, y := a, 0
	a2, b2 := a*a, b*b
	// Region 1: slope shallower than -1 (x-driven).
	d1 := b2 - a2*b + a2/4
	for a2*y <= b2*x {
		set(x, y)
		y++
		if d1 < 0 {
			d1 += b2 * (2*y + 1)
		} else {
			x--
			d1 += b2*(2*y+1) - a2*(2*x)
		}
	}
	// Region 2: slope steeper than -1 (y-driven).
	x, y = 0, b
	d2 := a2*(y*y) - a2*b2 + b2/4
	for b2*x <= a2*y {
		set(x, y)
		x++
		if d2 < 0 {
			d2 += a2 * (2*x + 1)
		} else {
			y--
			d2 += a2*(2*x+1) - b2*(2*y)
		}
	}
	return pts
}

func fillEllipseRaw(dst *buffer.Bitmap, cx, cy, a, b int, src paint.PixelSource) {
	if a <= 0 || b <= 0 {
		putPixel(dst, cx, cy, src)
		return
	}
	pts := ellipsePoints(a, b)
	for dy, dx := range pts {
		for x := cx - dx; x <= cx+dx; x++ {
			putPixel(dst, x, cy+dy, src)
			putPixel(dst, x, cy-dy, src)
		}
	}
}

// FillEllipse fills a solid ellipse centered at center with semi-axes (a,b).
func FillEllipse(dst *buffer.Bitmap, center geom.IntPoint, a, b int, p paint.Paint) {
	bounds := geom.Rect{
		X1: float64(center.X - a), Y1: float64(center.Y - b),
		X2: float64(center.X + a), Y2: float64(center.Y + b),
	}
	fillEllipseRaw(dst, center.X, center.Y, a, b, p.Source(bounds))
}

// DrawEllipse draws an ellipse outline, degenerating to a line when either
// axis is zero. Width>1 draws a filled annulus between the inner and outer
// ellipse; dashed thin ellipses toggle on/off every two pixels stepped.
func DrawEllipse(dst *buffer.Bitmap, center geom.IntPoint, a, b int, s LineSettings) {
	bounds := geom.Rect{
		X1: float64(center.X - a - s.LineWidth), Y1: float64(center.Y - b - s.LineWidth),
		X2: float64(center.X + a + s.LineWidth), Y2: float64(center.Y + b + s.LineWidth),
	}
	src := s.Paint.Source(bounds)

	if a == 0 || b == 0 {
		drawThinLine(dst, center.X-a, center.Y-b, center.X+a, center.Y+b, s.Dashes, src)
		return
	}

	if s.LineWidth <= 1 {
		drawThinEllipse(dst, center, a, b, s.Dashes, src)
		return
	}
	drawWideEllipse(dst, center, a, b, s.LineWidth, src)
}

func drawThinEllipse(dst *buffer.Bitmap, c geom.IntPoint, a, b int, dashed bool, src paint.PixelSource) {
	pts := ellipsePoints(a, b)
	steps := 0
	on := true
	// Iterate y from -b..b in order for deterministic dash phase.
	for dy := -b; dy <= b; dy++ {
		dx, ok := pts[geom.Abs(dy)]
		if !ok {
			continue
		}
		if !dashed || on {
			putPixel(dst, c.X+dx, c.Y+dy, src)
			putPixel(dst, c.X-dx, c.Y+dy, src)
		}
		if dashed {
			steps = (steps + 1) % 2
			if steps == 0 {
				on = !on
			}
		}
	}
}

func drawWideEllipse(dst *buffer.Bitmap, c geom.IntPoint, a, b, lineWidth int, src paint.PixelSource) {
	innerA, innerB := a-lineWidth, b-lineWidth
	if innerA < 0 {
		innerA = 0
	}
	if innerB < 0 {
		innerB = 0
	}
	outer := ellipsePoints(a, b)
	inner := ellipsePoints(innerA, innerB)

	for dy := -b; dy <= b; dy++ {
		outerX, ok := outer[geom.Abs(dy)]
		if !ok {
			continue
		}
		innerX := 0
		if ix, ok := inner[geom.Abs(dy)]; ok {
			innerX = ix
		}
		for x := innerX; x <= outerX; x++ {
			putPixel(dst, c.X+x, c.Y+dy, src)
			putPixel(dst, c.X-x, c.Y+dy, src)
		}
	}
}
