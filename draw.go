package faint

import "github.com/faint-gfx/core/internal/raster"

// DrawLine draws a (possibly dashed, possibly wide) line from p0 to p1.
func DrawLine(dst *Bitmap, p0, p1 IntPoint, s LineSettings) { raster.DrawLine(dst, p0, p1, s) }

// DrawPolyline draws an open, possibly multi-segment line through pts.
func DrawPolyline(dst *Bitmap, pts []IntPoint, s LineSettings) { raster.DrawPolyline(dst, pts, s) }

// DrawPolygon outlines the closed polygon pts.
func DrawPolygon(dst *Bitmap, pts []IntPoint, s LineSettings) { raster.DrawPolygon(dst, pts, s) }

// DrawRect outlines the rectangle r.
func DrawRect(dst *Bitmap, r IntRect, s LineSettings) { raster.DrawRect(dst, r, s) }

// DrawEllipse draws an ellipse outline centered at center with semi-axes (a,b).
func DrawEllipse(dst *Bitmap, center IntPoint, a, b int, s LineSettings) {
	raster.DrawEllipse(dst, center, a, b, s)
}

// FillRect fills the rectangle r, clipped to dst, with p.
func FillRect(dst *Bitmap, r IntRect, p Paint) { raster.FillRect(dst, r, p) }

// FillEllipse fills a solid ellipse centered at center with semi-axes (a,b).
func FillEllipse(dst *Bitmap, center IntPoint, a, b int, p Paint) {
	raster.FillEllipse(dst, center, a, b, p)
}

// FillPolygon scan-converts the closed polygon pts using the even-odd rule.
func FillPolygon(dst *Bitmap, pts []IntPoint, p Paint) { raster.FillPolygon(dst, pts, p) }

// FillTriangle fills the triangle (p0,p1,p2).
func FillTriangle(dst *Bitmap, p0, p1, p2 IntPoint, p Paint) {
	raster.FillTriangle(dst, p0, p1, p2, p)
}
