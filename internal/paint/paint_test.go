package paint

import (
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

func TestColorSourceIsUniform(t *testing.T) {
	p := FromColor(buffer.ColorWhite)
	src := p.Source(geom.Rect{})
	if src.At(0, 0) != buffer.ColorWhite || src.At(99, -5) != buffer.ColorWhite {
		t.Error("ColorSource should return the same color everywhere")
	}
}

func TestPatternSourceWrapsModulo(t *testing.T) {
	tile := buffer.New(geom.IntSize{W: 2, H: 2})
	buffer.PutPixelRaw(tile, 0, 0, buffer.ColorWhite)
	buffer.PutPixelRaw(tile, 1, 0, buffer.ColorBlack)
	p := FromPattern(Pattern{Bitmap: tile})
	src := p.Source(geom.Rect{})
	if got := src.At(2, 0); got != buffer.ColorWhite {
		t.Errorf("At(2,0) should wrap to tile (0,0), got %+v", got)
	}
	if got := src.At(-1, 0); got != buffer.ColorBlack {
		t.Errorf("At(-1,0) should wrap to tile (1,0), got %+v", got)
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	g := LinearGradient{
		Stops: []ColorStop{
			{Offset: 0, Color: buffer.NewColorRGB(255, 0, 0)},
			{Offset: 1, Color: buffer.NewColorRGB(0, 0, 255)},
		},
	}
	p := FromLinearGradient(g)
	bounds := geom.Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}
	src := p.Source(bounds)
	if got := src.At(0, 0); got.R != 255 {
		t.Errorf("gradient start = %+v, want red", got)
	}
	if got := src.At(10, 0); got.B != 255 {
		t.Errorf("gradient end = %+v, want blue", got)
	}
}

func TestRadialGradientCenterIsFirstStop(t *testing.T) {
	g := RadialGradient{
		Stops: []ColorStop{
			{Offset: 0, Color: buffer.NewColorRGB(255, 255, 0)},
			{Offset: 1, Color: buffer.NewColorRGB(0, 128, 0)},
		},
		Center: geom.Point{X: 5, Y: 5},
		Radii:  geom.Size{W: 5, H: 5},
	}
	p := FromRadialGradient(g)
	src := p.Source(geom.Rect{})
	got := src.At(5, 5)
	if got.R != 255 || got.G != 255 {
		t.Errorf("radial gradient at center = %+v, want first stop", got)
	}
}

func TestIsGradient(t *testing.T) {
	if FromColor(buffer.ColorWhite).IsGradient() {
		t.Error("a solid color Paint should not report IsGradient")
	}
	if !FromLinearGradient(LinearGradient{}).IsGradient() {
		t.Error("a linear gradient Paint should report IsGradient")
	}
	if !FromRadialGradient(RadialGradient{}).IsGradient() {
		t.Error("a radial gradient Paint should report IsGradient")
	}
}
