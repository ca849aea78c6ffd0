package raster

import (
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

func TestCountColors(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 2, H: 2})
	buffer.PutPixelRaw(bmp, 0, 0, buffer.ColorBlack)
	buffer.PutPixelRaw(bmp, 1, 0, buffer.ColorWhite)
	buffer.PutPixelRaw(bmp, 0, 1, buffer.ColorBlack)
	buffer.PutPixelRaw(bmp, 1, 1, buffer.ColorWhite)
	if got := CountColors(bmp, 256); got != 2 {
		t.Errorf("CountColors = %d, want 2", got)
	}
}

func TestCountColorsCapsAtMaxPlusOne(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 4, H: 1})
	for x := 0; x < 4; x++ {
		buffer.PutPixelRaw(bmp, x, 0, buffer.NewColorRGB(uint8(x), 0, 0))
	}
	if got := CountColors(bmp, 2); got != 3 {
		t.Errorf("CountColors capped at max+1 = %d, want 3", got)
	}
}

func TestPaletteReturnsFalseOverMax(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 3, H: 1})
	for x := 0; x < 3; x++ {
		buffer.PutPixelRaw(bmp, x, 0, buffer.NewColorRGB(uint8(x), 0, 0))
	}
	if _, ok := Palette(bmp, 2); ok {
		t.Error("Palette should report false when the bitmap exceeds max colors")
	}
}

func TestPaletteFirstSeenOrder(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 2, H: 1})
	buffer.PutPixelRaw(bmp, 0, 0, buffer.ColorWhite)
	buffer.PutPixelRaw(bmp, 1, 0, buffer.ColorBlack)
	colors, ok := Palette(bmp, 256)
	if !ok || len(colors) != 2 || colors[0] != buffer.ColorWhite || colors[1] != buffer.ColorBlack {
		t.Fatalf("Palette = %+v, %v, want [white black] true", colors, ok)
	}
}
