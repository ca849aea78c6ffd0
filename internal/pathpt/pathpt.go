// Package pathpt implements Faint's vector path representation: a flat,
// ordered list of typed path commands (PathPt), generalizing the way AGG's
// path storage keeps a single vertex-command stream rather than a tree of
// segment objects.
package pathpt

import "github.com/faint-gfx/core/internal/geom"

// Kind tags the variant held by a PathPt.
type Kind int

const (
	MoveTo Kind = iota
	LineTo
	CubicBezier
	ArcTo
	Close
)

// PathPt is one command in a path. Only the fields relevant to Kind are
// meaningful:
//   - MoveTo, LineTo: P
//   - CubicBezier: C1, C2, P (P is the curve's endpoint)
//   - ArcTo: P (center), Radii, StartAngle, SweepAngle
//   - Close: no fields used
type PathPt struct {
	Kind       Kind
	P          geom.Point
	C1, C2     geom.Point
	Radii      geom.Size
	StartAngle geom.Radian
	SweepAngle geom.Radian
}

func NewMoveTo(p geom.Point) PathPt { return PathPt{Kind: MoveTo, P: p} }
func NewLineTo(p geom.Point) PathPt { return PathPt{Kind: LineTo, P: p} }
func NewCubicBezier(c1, c2, p geom.Point) PathPt {
	return PathPt{Kind: CubicBezier, C1: c1, C2: c2, P: p}
}
func NewArcTo(center geom.Point, radii geom.Size, start, sweep geom.Radian) PathPt {
	return PathPt{Kind: ArcTo, P: center, Radii: radii, StartAngle: start, SweepAngle: sweep}
}
func NewClose() PathPt { return PathPt{Kind: Close} }

// Points is an ordered path: a sequence of PathPt commands, zero or more
// of which may be closed sub-paths.
type Points struct {
	pts []PathPt
}

func NewPoints() *Points { return &Points{} }

func (p *Points) Append(pt PathPt) { p.pts = append(p.pts, pt) }
func (p *Points) Len() int         { return len(p.pts) }
func (p *Points) At(i int) PathPt  { return p.pts[i] }
func (p *Points) All() []PathPt    { return p.pts }

// BoundingRect returns the axis-aligned rectangle enclosing every point
// and control point referenced by the path (a superset of the rendered
// extent for curved segments, which never stray outside their control
// polygon's hull).
func (p *Points) BoundingRect() (geom.Rect, bool) {
	first := true
	var r geom.Rect
	consider := func(pt geom.Point) {
		if first {
			r = geom.Rect{X1: pt.X, Y1: pt.Y, X2: pt.X, Y2: pt.Y}
			first = false
			return
		}
		if pt.X < r.X1 {
			r.X1 = pt.X
		}
		if pt.Y < r.Y1 {
			r.Y1 = pt.Y
		}
		if pt.X > r.X2 {
			r.X2 = pt.X
		}
		if pt.Y > r.Y2 {
			r.Y2 = pt.Y
		}
	}
	for _, pt := range p.pts {
		switch pt.Kind {
		case MoveTo, LineTo:
			consider(pt.P)
		case CubicBezier:
			consider(pt.C1)
			consider(pt.C2)
			consider(pt.P)
		case ArcTo:
			consider(geom.Point{X: pt.P.X - pt.Radii.W, Y: pt.P.Y - pt.Radii.H})
			consider(geom.Point{X: pt.P.X + pt.Radii.W, Y: pt.P.Y + pt.Radii.H})
		}
	}
	return r, !first
}
