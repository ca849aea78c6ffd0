package geom

import "errors"

// ErrParallelLines is returned by Intersection when the two lines have no
// unique intersection point (they are parallel or coincident).
var ErrParallelLines = errors.New("geom: lines are parallel")

// Line is the unbounded line ax + by = c.
type Line struct {
	A, B, C float64
}

// LineSegment is a bounded segment between two points.
type LineSegment struct {
	P0, P1 Point
}

// IntLineSegment is the pixel-grid equivalent of LineSegment.
type IntLineSegment struct {
	P0, P1 IntPoint
}

func (l LineSegment) Scale(k float64) LineSegment {
	return LineSegment{l.P0.Scale(k), l.P1.Scale(k)}
}

func (l LineSegment) Length() float64 {
	return Distance(l.P0, l.P1)
}

func (l IntLineSegment) Floated() LineSegment {
	return LineSegment{Floated(l.P0), Floated(l.P1)}
}

func (l IntLineSegment) Length() float64 {
	return l.Floated().Length()
}

func (l LineSegment) Translated(tr Point) LineSegment {
	return LineSegment{l.P0.Add(tr), l.P1.Add(tr)}
}

func determinant(l1, l2 Line) float64 {
	return l1.A*l2.B - l2.A*l1.B
}

// Unbounded converts a segment to its unbounded Line form.
func Unbounded(seg LineSegment) Line {
	a := seg.P1.Y - seg.P0.Y
	b := seg.P0.X - seg.P1.X
	c := a*seg.P1.X + b*seg.P1.Y
	return Line{a, b, c}
}

// Intersection returns the point where l1 and l2 cross. Returns
// ErrParallelLines when the lines' determinant is within CoordEpsilon of
// zero, mirroring the original's assert(!rather_zero(det)).
func Intersection(l1, l2 Line) (Point, error) {
	det := determinant(l1, l2)
	if RatherZero(det) {
		return Point{}, ErrParallelLines
	}
	x := (l2.B*l1.C - l1.B*l2.C) / det
	y := (l1.A*l2.C - l2.A*l1.C) / det
	return Point{x, y}, nil
}

func perpendicular(p Point, l Line) (Line, error) {
	if l.A == 0 || l.B == 0 {
		return Line{}, ErrParallelLines
	}
	k := -l.B / l.A
	m := p.Y + k*p.X
	return Line{-k, -1, -m}, nil
}

// Projection returns the point on l closest to p.
func Projection(p Point, l Line) Point {
	if l.A == 0 {
		return Point{p.X, l.C / l.B}
	}
	if l.B == 0 {
		return Point{l.C / l.A, p.Y}
	}
	l2, err := perpendicular(p, l)
	if err != nil {
		return p
	}
	pt, err := Intersection(l, l2)
	if err != nil {
		return p
	}
	return pt
}

// DistanceToLine returns the distance from p to its projection onto l.
func DistanceToLine(p Point, l Line) float64 {
	return Distance(p, Projection(p, l))
}

// Side classifies which half-plane of a directed segment a point falls in.
type Side int

const (
	SideA Side = iota
	SideB
	SideOn
)

// SideOf returns which side of segment l the point p lies on.
func SideOf(p Point, l LineSegment) Side {
	a, c := l.P0, l.P1
	value := (p.X-a.X)*(c.Y-a.Y) - (p.Y-a.Y)*(c.X-a.X)
	switch {
	case value == 0:
		return SideOn
	case value < 0:
		return SideA
	default:
		return SideB
	}
}
