package pathpt

import (
	"testing"

	"github.com/faint-gfx/core/internal/geom"
)

func TestAppendAndAccess(t *testing.T) {
	p := NewPoints()
	p.Append(NewMoveTo(geom.Point{X: 0, Y: 0}))
	p.Append(NewLineTo(geom.Point{X: 10, Y: 0}))
	p.Append(NewClose())
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.At(1).Kind != LineTo || p.At(1).P != (geom.Point{X: 10, Y: 0}) {
		t.Errorf("At(1) = %+v, want a LineTo to (10,0)", p.At(1))
	}
	if len(p.All()) != 3 {
		t.Errorf("All() returned %d points, want 3", len(p.All()))
	}
}

func TestNewCubicBezierFields(t *testing.T) {
	c1 := geom.Point{X: 1, Y: 2}
	c2 := geom.Point{X: 3, Y: 4}
	end := geom.Point{X: 5, Y: 6}
	pt := NewCubicBezier(c1, c2, end)
	if pt.Kind != CubicBezier || pt.C1 != c1 || pt.C2 != c2 || pt.P != end {
		t.Errorf("NewCubicBezier = %+v", pt)
	}
}

func TestBoundingRectEmptyPath(t *testing.T) {
	p := NewPoints()
	if _, ok := p.BoundingRect(); ok {
		t.Error("BoundingRect of an empty path should report false")
	}
}

func TestBoundingRectLines(t *testing.T) {
	p := NewPoints()
	p.Append(NewMoveTo(geom.Point{X: 0, Y: 0}))
	p.Append(NewLineTo(geom.Point{X: 10, Y: 5}))
	p.Append(NewLineTo(geom.Point{X: -2, Y: 8}))
	r, ok := p.BoundingRect()
	if !ok {
		t.Fatal("BoundingRect should report true for a non-empty path")
	}
	want := geom.Rect{X1: -2, Y1: 0, X2: 10, Y2: 8}
	if r != want {
		t.Errorf("BoundingRect = %+v, want %+v", r, want)
	}
}

func TestBoundingRectIncludesBezierControlPoints(t *testing.T) {
	p := NewPoints()
	p.Append(NewMoveTo(geom.Point{X: 0, Y: 0}))
	p.Append(NewCubicBezier(geom.Point{X: -5, Y: 2}, geom.Point{X: 15, Y: -3}, geom.Point{X: 10, Y: 0}))
	r, ok := p.BoundingRect()
	if !ok {
		t.Fatal("expected a bounding rect")
	}
	if r.X1 != -5 || r.X2 != 15 || r.Y1 != -3 {
		t.Errorf("BoundingRect should enclose control points, got %+v", r)
	}
}

func TestBoundingRectArc(t *testing.T) {
	p := NewPoints()
	p.Append(NewArcTo(geom.Point{X: 0, Y: 0}, geom.Size{W: 3, H: 3}, 0, 0))
	r, ok := p.BoundingRect()
	if !ok {
		t.Fatal("expected a bounding rect")
	}
	want := geom.Rect{X1: -3, Y1: -3, X2: 3, Y2: 3}
	if r != want {
		t.Errorf("BoundingRect = %+v, want %+v", r, want)
	}
}
