// Package tri implements Faint's affine triangle frame: the (origin,
// x-axis-end, y-axis-end) triple used to position, size, rotate and skew
// an object (a raster image, a text box, an ellipse) without needing a
// full matrix type at call sites.
package tri

import (
	"math"

	"github.com/faint-gfx/core/internal/geom"
)

// Tri is an affine frame: P0 is the origin, P1 the end of the width axis,
// P2 the end of the height axis. An unrotated, unskewed Tri has P1 directly
// right of P0 and P2 directly below it.
type Tri struct {
	p0, p1, p2 geom.Point
}

// New builds a Tri from its three defining points.
func New(p0, p1, p2 geom.Point) Tri { return Tri{p0, p1, p2} }

// NewRect builds an axis-aligned, unrotated, unskewed Tri from a top-left
// point and a size.
func NewRect(topLeft geom.Point, size geom.Size) Tri {
	return Tri{
		p0: topLeft,
		p1: geom.Point{X: topLeft.X + size.W, Y: topLeft.Y},
		p2: geom.Point{X: topLeft.X, Y: topLeft.Y + size.H},
	}
}

func (t Tri) P0() geom.Point { return t.p0 }
func (t Tri) P1() geom.Point { return t.p1 }
func (t Tri) P2() geom.Point { return t.p2 }

// P3 is the implied fourth corner of the parallelogram spanned by the
// frame (P1 + P2 - P0), matching the original call sites' Rotated(tri,
// angle, tri.P3()) usage as a pivot opposite the origin.
func (t Tri) P3() geom.Point {
	return geom.Point{X: t.p1.X + t.p2.X - t.p0.X, Y: t.p1.Y + t.p2.Y - t.p0.Y}
}

func (t Tri) Width() float64  { return geom.Distance(t.p0, t.p1) }
func (t Tri) Height() float64 { return geom.Distance(t.p0, t.p2) }

// Angle is the rotation of the width axis from horizontal.
func (t Tri) Angle() geom.Radian {
	return geom.Radian(math.Atan2(t.p1.Y-t.p0.Y, t.p1.X-t.p0.X))
}

// Skew is the horizontal offset of P2 from directly below P0, normalized
// by height; 0 for an unskewed frame.
func (t Tri) Skew() float64 {
	h := t.Height()
	if h == 0 {
		return 0
	}
	// Project (P2-P0) onto the axis perpendicular to the width axis, and
	// measure the remaining component along the width axis.
	angle := float64(t.Angle())
	dx := t.p2.X - t.p0.X
	dy := t.p2.Y - t.p0.Y
	along := dx*math.Cos(angle) + dy*math.Sin(angle)
	return along / h
}

// Translated offsets all three points by (dx,dy).
func Translated(t Tri, dx, dy float64) Tri {
	d := geom.Point{X: dx, Y: dy}
	return Tri{t.p0.Add(d), t.p1.Add(d), t.p2.Add(d)}
}

// Rotated rotates t by angle about origin.
func Rotated(t Tri, angle geom.Radian, origin geom.Point) Tri {
	return Tri{
		geom.RotatePoint(t.p0, angle, origin),
		geom.RotatePoint(t.p1, angle, origin),
		geom.RotatePoint(t.p2, angle, origin),
	}
}

// Scaled scales t by sc about origin.
func Scaled(t Tri, sc geom.Scale, origin geom.Point) Tri {
	return Tri{
		geom.ScalePoint(t.p0, sc, origin),
		geom.ScalePoint(t.p1, sc, origin),
		geom.ScalePoint(t.p2, sc, origin),
	}
}

// Skewed returns t with its height axis (P2) sheared by skew, a multiple
// of t's height added to P2 along the width axis direction.
func Skewed(t Tri, skew float64) Tri {
	h := t.Height()
	angle := float64(t.Angle())
	offset := skew * h
	shift := geom.Point{X: offset * math.Cos(angle), Y: offset * math.Sin(angle)}
	return Tri{t.p0, t.p1, t.p2.Add(shift)}
}

// OffsetAligned translates t by (dx,dy) expressed along its own width/height
// axes rather than the global X/Y axes, i.e. the offset is applied before
// any rotation/skew is considered, matching the original's use for moving
// an object relative to its own frame.
func OffsetAligned(t Tri, dx, dy float64) Tri {
	angle := float64(t.Angle())
	shift := geom.Point{
		X: dx*math.Cos(angle) - dy*math.Sin(angle),
		Y: dx*math.Sin(angle) + dy*math.Cos(angle),
	}
	return Translated(t, shift.X, shift.Y)
}
