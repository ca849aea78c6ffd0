package raster

import (
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

func TestAlphaBlendedOpaqueSrcWins(t *testing.T) {
	dst := buffer.NewColorRGB(10, 10, 10)
	src := buffer.NewColorRGB(200, 0, 0)
	if got := AlphaBlended(dst, src); got != src {
		t.Errorf("fully opaque src should replace dst outright, got %+v", got)
	}
}

func TestAlphaBlendedTransparentSrcIsNoop(t *testing.T) {
	dst := buffer.NewColorRGB(10, 20, 30)
	src := buffer.NewColor(200, 0, 0, 0)
	if got := AlphaBlended(dst, src); got != dst {
		t.Errorf("fully transparent src should leave dst unchanged, got %+v", got)
	}
}

func TestAlphaBlendedHalfway(t *testing.T) {
	dst := buffer.NewColorRGB(0, 0, 0)
	src := buffer.NewColor(200, 0, 0, 128)
	got := AlphaBlended(dst, src)
	if got.R < 95 || got.R > 102 {
		t.Errorf("half-alpha blend R = %d, want ~100", got.R)
	}
}

func TestBlitIgnoresAlpha(t *testing.T) {
	dst := buffer.NewFilled(geom.IntSize{W: 2, H: 2}, buffer.ColorBlack)
	src := buffer.NewFilled(geom.IntSize{W: 2, H: 2}, buffer.NewColor(255, 0, 0, 0))
	Blit(dst, src, geom.IntPoint{})
	if got := buffer.GetColorRaw(dst, 0, 0); got.R != 255 || got.A != 0 {
		t.Errorf("Blit should copy verbatim including a transparent alpha, got %+v", got)
	}
}

func TestBlitClipsToDestination(t *testing.T) {
	dst := buffer.New(geom.IntSize{W: 2, H: 2})
	src := buffer.NewFilled(geom.IntSize{W: 4, H: 4}, buffer.ColorWhite)
	Blit(dst, src, geom.IntPoint{X: -1, Y: -1})
	if buffer.GetColorRaw(dst, 0, 0) != buffer.ColorWhite {
		t.Error("in-bounds portion should still be copied")
	}
}

func TestBlendMaskedZeroMaskIsNoop(t *testing.T) {
	dst := buffer.NewFilled(geom.IntSize{W: 1, H: 1}, buffer.ColorBlack)
	src := buffer.NewFilled(geom.IntSize{W: 1, H: 1}, buffer.ColorWhite)
	mask := buffer.NewAlphaMap(geom.IntSize{W: 1, H: 1})
	BlendMasked(dst, src, mask, geom.IntPoint{})
	if buffer.GetColorRaw(dst, 0, 0) != buffer.ColorBlack {
		t.Error("a zero mask entry should leave dst untouched")
	}
}

func TestBlitMaskedSkipsZeroMaskEntries(t *testing.T) {
	dst := buffer.NewFilled(geom.IntSize{W: 2, H: 1}, buffer.ColorBlack)
	src := buffer.NewFilled(geom.IntSize{W: 2, H: 1}, buffer.ColorWhite)
	mask := buffer.NewAlphaMap(geom.IntSize{W: 2, H: 1})
	mask.Set(0, 0, 255)
	BlitMasked(dst, src, mask, geom.IntPoint{})
	if buffer.GetColorRaw(dst, 0, 0) != buffer.ColorWhite {
		t.Error("masked-in pixel should be copied")
	}
	if buffer.GetColorRaw(dst, 1, 0) != buffer.ColorBlack {
		t.Error("masked-out pixel should be left alone")
	}
}
