package buffer

import (
	"testing"

	"github.com/faint-gfx/core/internal/geom"
)

func TestNewZeroSizeIsInvalid(t *testing.T) {
	bmp := New(geom.IntSize{W: 0, H: 5})
	if BitmapOK(bmp) {
		t.Error("zero-width bitmap should not be OK")
	}
}

func TestClearAndGetColor(t *testing.T) {
	bmp := New(geom.IntSize{W: 4, H: 4})
	Clear(bmp, ColorWhite)
	c, ok := GetColor(bmp, geom.IntPoint{X: 2, Y: 2})
	if !ok || c != ColorWhite {
		t.Fatalf("GetColor = %+v, %v, want ColorWhite, true", c, ok)
	}
}

func TestGetColorOutOfBounds(t *testing.T) {
	bmp := New(geom.IntSize{W: 2, H: 2})
	if _, ok := GetColor(bmp, geom.IntPoint{X: 5, Y: 5}); ok {
		t.Error("out-of-bounds GetColor should report false")
	}
}

func TestPutPixelOutOfBoundsIsNoop(t *testing.T) {
	bmp := New(geom.IntSize{W: 2, H: 2})
	PutPixel(bmp, geom.IntPoint{X: -1, Y: 0}, ColorBlack)
	if !IsBlank(bmp) {
		t.Error("out-of-bounds PutPixel should not have modified the bitmap")
	}
}

func TestIsBlank(t *testing.T) {
	bmp := NewFilled(geom.IntSize{W: 3, H: 3}, ColorBlack)
	if !IsBlank(bmp) {
		t.Error("uniformly-filled bitmap should be blank")
	}
	PutPixelRaw(bmp, 1, 1, ColorWhite)
	if IsBlank(bmp) {
		t.Error("bitmap with a differing pixel should not be blank")
	}
}

func TestSetAlpha(t *testing.T) {
	bmp := NewFilled(geom.IntSize{W: 2, H: 2}, ColorWhite)
	SetAlpha(bmp, 128)
	c := GetColorRaw(bmp, 0, 0)
	if c.A != 128 {
		t.Errorf("SetAlpha: A = %d, want 128", c.A)
	}
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("SetAlpha should not touch RGB: %+v", c)
	}
}

func TestSubbitmap(t *testing.T) {
	bmp := New(geom.IntSize{W: 4, H: 4})
	PutPixelRaw(bmp, 1, 1, ColorWhite)
	sub := Subbitmap(bmp, geom.IntRect{X1: 1, Y1: 1, X2: 3, Y2: 3})
	if sub.Size() != (geom.IntSize{W: 2, H: 2}) {
		t.Fatalf("Subbitmap size = %+v, want 2x2", sub.Size())
	}
	if GetColorRaw(sub, 0, 0) != ColorWhite {
		t.Error("Subbitmap did not carry the source pixel at its new origin")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	bmp := NewFilled(geom.IntSize{W: 2, H: 2}, ColorBlack)
	clone := bmp.Clone()
	PutPixelRaw(bmp, 0, 0, ColorWhite)
	if GetColorRaw(clone, 0, 0) != ColorBlack {
		t.Error("Clone should be independent of the original's later mutations")
	}
}

func TestColorGradient(t *testing.T) {
	a := NewColorRGB(0, 0, 0)
	b := NewColorRGB(200, 0, 0)
	mid := a.Gradient(b, 0.5)
	if mid.R != 100 {
		t.Errorf("Gradient midpoint R = %d, want 100", mid.R)
	}
	if got := a.Gradient(b, 0); got != a {
		t.Errorf("Gradient at k=0 = %+v, want %+v", got, a)
	}
	if got := a.Gradient(b, 1); got != b {
		t.Errorf("Gradient at k=1 = %+v, want %+v", got, b)
	}
}
