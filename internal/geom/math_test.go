package geom

import (
	"math"
	"testing"
)

func TestPolygonAreaSquare(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if got := PolygonArea(square); math.Abs(got-16) > 1e-9 {
		t.Errorf("PolygonArea(square) = %v, want 16", got)
	}
}

func TestPolygonAreaDegenerate(t *testing.T) {
	if got := PolygonArea([]Point{{0, 0}, {1, 1}}); got != 0 {
		t.Errorf("PolygonArea(2 points) = %v, want 0", got)
	}
}

func TestRotatePointQuarterTurn(t *testing.T) {
	got := RotatePoint(Point{X: 1, Y: 0}, RadianFromDegrees(90), Point{})
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("RotatePoint 90deg = %+v, want (0,1)", got)
	}
}

func TestScalePointAboutOrigin(t *testing.T) {
	got := ScalePoint(Point{X: 4, Y: 4}, Scale{X: 2, Y: 0.5}, Point{X: 2, Y: 2})
	want := Point{X: 6, Y: 3}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("ScalePoint = %+v, want %+v", got, want)
	}
}

func TestMidPoint(t *testing.T) {
	got := MidPoint(Point{X: 0, Y: 0}, Point{X: 4, Y: 2})
	if got != (Point{X: 2, Y: 1}) {
		t.Errorf("MidPoint = %+v, want (2,1)", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
