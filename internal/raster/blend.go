package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

// AlphaBlended composites src over dst using src's alpha, straight-alpha,
// integer-division "over" compositing: each channel is
// (src*srcA + dst*(255-srcA)) / 255, and the output alpha is srcA plus
// dst's alpha attenuated by src's transparency.
func AlphaBlended(dst, src buffer.Color) buffer.Color {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	a := int(src.A)
	inv := 255 - a
	r := (int(src.R)*a + int(dst.R)*inv) / 255
	g := (int(src.G)*a + int(dst.G)*inv) / 255
	b := (int(src.B)*a + int(dst.B)*inv) / 255
	outA := a + (int(dst.A)*inv)/255
	return buffer.NewColor(uint8(r), uint8(g), uint8(b), uint8(outA))
}

// Blend alpha-composites src onto dst at offset, clipped to dst's bounds.
func Blend(dst *buffer.Bitmap, src *buffer.Bitmap, offset geom.IntPoint) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		dy := offset.Y + y
		for x := 0; x < size.W; x++ {
			dx := offset.X + x
			pt := geom.IntPoint{X: dx, Y: dy}
			if !buffer.PointInBitmap(dst, pt) {
				continue
			}
			sc := buffer.GetColorRaw(src, x, y)
			dc := buffer.GetColorRaw(dst, dx, dy)
			buffer.PutPixelRaw(dst, dx, dy, AlphaBlended(dc, sc))
		}
	}
}

// Blit copies src onto dst at offset verbatim, ignoring alpha.
func Blit(dst *buffer.Bitmap, src *buffer.Bitmap, offset geom.IntPoint) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		dy := offset.Y + y
		for x := 0; x < size.W; x++ {
			dx := offset.X + x
			pt := geom.IntPoint{X: dx, Y: dy}
			if !buffer.PointInBitmap(dst, pt) {
				continue
			}
			buffer.PutPixelRaw(dst, dx, dy, buffer.GetColorRaw(src, x, y))
		}
	}
}

// BlendMasked alpha-composites src onto dst at offset, with each pixel's
// contribution additionally attenuated by the matching entry of mask.
func BlendMasked(dst *buffer.Bitmap, src *buffer.Bitmap, mask *buffer.AlphaMap, offset geom.IntPoint) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		dy := offset.Y + y
		for x := 0; x < size.W; x++ {
			dx := offset.X + x
			pt := geom.IntPoint{X: dx, Y: dy}
			if !buffer.PointInBitmap(dst, pt) {
				continue
			}
			m := mask.Get(x, y)
			if m == 0 {
				continue
			}
			sc := buffer.GetColorRaw(src, x, y)
			sc.A = uint8((int(sc.A) * int(m)) / 255)
			dc := buffer.GetColorRaw(dst, dx, dy)
			buffer.PutPixelRaw(dst, dx, dy, AlphaBlended(dc, sc))
		}
	}
}

// BlitMasked copies src onto dst at offset, skipping pixels whose mask
// entry is zero and overwriting (not blending) the rest.
func BlitMasked(dst *buffer.Bitmap, src *buffer.Bitmap, mask *buffer.AlphaMap, offset geom.IntPoint) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		dy := offset.Y + y
		for x := 0; x < size.W; x++ {
			dx := offset.X + x
			pt := geom.IntPoint{X: dx, Y: dy}
			if !buffer.PointInBitmap(dst, pt) {
				continue
			}
			if mask.Get(x, y) == 0 {
				continue
			}
			buffer.PutPixelRaw(dst, dx, dy, buffer.GetColorRaw(src, x, y))
		}
	}
}
