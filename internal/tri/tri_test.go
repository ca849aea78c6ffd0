package tri

import (
	"math"
	"testing"

	"github.com/faint-gfx/core/internal/geom"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewRectUnrotated(t *testing.T) {
	r := NewRect(geom.Point{X: 1, Y: 2}, geom.Size{W: 10, H: 20})
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("Width/Height = %v/%v, want 10/20", r.Width(), r.Height())
	}
	if r.Angle() != 0 {
		t.Errorf("an axis-aligned rect should have angle 0, got %v", r.Angle())
	}
	if r.Skew() != 0 {
		t.Errorf("an axis-aligned rect should be unskewed, got %v", r.Skew())
	}
}

func TestP3CompletesParallelogram(t *testing.T) {
	r := NewRect(geom.Point{X: 0, Y: 0}, geom.Size{W: 4, H: 3})
	if got := r.P3(); got != (geom.Point{X: 4, Y: 3}) {
		t.Errorf("P3 = %+v, want (4,3)", got)
	}
}

func TestRotatedChangesAngle(t *testing.T) {
	r := NewRect(geom.Point{X: 0, Y: 0}, geom.Size{W: 10, H: 10})
	rotated := Rotated(r, geom.RadianFromDegrees(90), geom.Point{})
	if !approxEqual(float64(rotated.Angle()), math.Pi/2) {
		t.Errorf("Angle after 90deg rotation = %v, want pi/2", rotated.Angle())
	}
}

func TestScaledPreservesOrigin(t *testing.T) {
	r := NewRect(geom.Point{X: 2, Y: 2}, geom.Size{W: 4, H: 4})
	scaled := Scaled(r, geom.Scale{X: 2, Y: 2}, geom.Point{X: 2, Y: 2})
	if scaled.P0() != r.P0() {
		t.Errorf("scaling about the origin point should leave P0 fixed, got %+v", scaled.P0())
	}
	if scaled.Width() != 8 {
		t.Errorf("Width after 2x scale = %v, want 8", scaled.Width())
	}
}

func TestTranslated(t *testing.T) {
	r := NewRect(geom.Point{X: 0, Y: 0}, geom.Size{W: 1, H: 1})
	moved := Translated(r, 5, 5)
	if moved.P0() != (geom.Point{X: 5, Y: 5}) {
		t.Errorf("Translated P0 = %+v, want (5,5)", moved.P0())
	}
}
