package raster

import (
	"sort"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// FillPolygon scan-converts the closed polygon pts the way the original
// editor's fill_polygon_f does: each edge is sorted by x, solved as a line
// in x (x0==x1 is a vertical crossing; otherwise x = (y-m)/k), and a row's
// edge set is tested with draw.cpp's exclude-low/include-high rule (y0 < y
// <= y1, evaluated on the x-sorted endpoints, so a vertex lying exactly on
// a scanline is attributed to exactly one adjoining edge). Each pixel is
// then decided by counting, from the right, how many crossings lie strictly
// right of it; an odd count marks it interior, and the original's "Fixme: why
// + 1?" bias shifts every marked pixel one column right before it's drawn.
func FillPolygon(dst *buffer.Bitmap, pts []geom.IntPoint, p paint.Paint) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	minX, maxX := pts[0].X, pts[0].X
	for _, pt := range pts {
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
	}
	bounds := geom.Rect{X1: float64(minX), Y1: float64(minY), X2: float64(maxX), Y2: float64(maxY)}
	src := p.Source(bounds)

	dstSize := dst.Size()
	loX := minX - 1
	hiX := maxX
	if hiX > dstSize.W-1 {
		hiX = dstSize.W - 1
	}
	loY := minY
	if loY < 0 {
		loY = 0
	}
	hiY := maxY
	if hiY > dstSize.H-1 {
		hiY = dstSize.H - 1
	}

	n := len(pts)
	for y := loY; y <= hiY; y++ {
		var xs []int
		for i := 0; i < n; i++ {
			x0, y0 := pts[i].X, pts[i].Y
			x1, y1 := pts[(i+1)%n].X, pts[(i+1)%n].Y
			if x0 > x1 {
				x0, x1 = x1, x0
				y0, y1 = y1, y0
			}
			if (y0 < y && y <= y1) || (y1 < y && y <= y0) {
				if x0 == x1 {
					xs = append(xs, x0)
					continue
				}
				k := float64(y1-y0) / float64(x1-x0)
				m := float64(y0) - k*float64(x0)
				xs = append(xs, int((float64(y)-m)/k))
			}
		}
		if len(xs) == 0 {
			continue
		}
		sort.Ints(xs)
		for x := loX; x <= hiX; x++ {
			for j, xv := range xs {
				if x < xv {
					if (len(xs)-j)%2 != 0 {
						putPixel(dst, x+1, y, src)
					}
					break
				}
			}
		}
	}
}

// DrawPolygon outlines a closed polygon: each edge is drawn with DrawLine,
// and each interior vertex additionally gets a lineCircle stamp when the
// line is wide enough to leave a visible gap at the joint.
func DrawPolygon(dst *buffer.Bitmap, pts []geom.IntPoint, s LineSettings) {
	drawPolylineInternal(dst, pts, s, true)
}

// DrawPolyline draws an open polyline: like DrawPolygon but without the
// closing segment from the last point back to the first.
func DrawPolyline(dst *buffer.Bitmap, pts []geom.IntPoint, s LineSettings) {
	drawPolylineInternal(dst, pts, s, false)
}

func drawPolylineInternal(dst *buffer.Bitmap, pts []geom.IntPoint, s LineSettings, closed bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		DrawLine(dst, pts[i], pts[i+1], s)
	}
	if closed {
		DrawLine(dst, pts[n-1], pts[0], s)
	}
	if s.LineWidth > 1 {
		bounds := geom.Rect{}
		src := s.Paint.Source(bounds)
		start, end := 1, n-1
		if closed {
			start, end = 0, n
		}
		for i := start; i < end; i++ {
			lineCircle(dst, pts[i].X, pts[i].Y, s.LineWidth, src)
		}
	}
}
