package faint

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/raster"
)

// Blit copies src onto dst at offset verbatim, ignoring alpha.
func Blit(dst, src *Bitmap, offset IntPoint) { raster.Blit(dst, src, offset) }

// BlitMasked copies src onto dst at offset, skipping pixels whose mask
// entry is zero and overwriting (not blending) the rest.
func BlitMasked(dst, src *Bitmap, mask *AlphaMap, offset IntPoint) {
	raster.BlitMasked(dst, src, mask, offset)
}

// Blend alpha-composites src onto dst at offset, clipped to dst's bounds.
func Blend(dst, src *Bitmap, offset IntPoint) { raster.Blend(dst, src, offset) }

// BlendMasked alpha-composites src onto dst at offset, with each pixel's
// contribution additionally attenuated by the matching entry of mask.
func BlendMasked(dst, src *Bitmap, mask *AlphaMap, offset IntPoint) {
	raster.BlendMasked(dst, src, mask, offset)
}

// BlendAlphaMasked composites p onto dst through an offset alpha-map
// coverage view, rather than through a source bitmap: each covered pixel of
// mask.Dst is painted with p's color at that position, attenuated by the
// coverage value. This is the brush-stamp variant of BlendMasked, where the
// "source image" is a single Paint rather than a Bitmap.
func BlendAlphaMasked(dst *Bitmap, mask Offsat[AlphaMapRef], p Paint) {
	size := mask.Dst.Size()
	bounds := geom.Rect{
		X1: float64(mask.Offset.X), Y1: float64(mask.Offset.Y),
		X2: float64(mask.Offset.X + size.W), Y2: float64(mask.Offset.Y + size.H),
	}
	src := p.Source(bounds)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			m := mask.Dst.Get(x, y)
			if m == 0 {
				continue
			}
			pt := mask.Translate(geom.IntPoint{X: x, Y: y})
			if !buffer.PointInBitmap(dst, pt) {
				continue
			}
			sc := src.At(pt.X, pt.Y)
			sc.A = uint8((int(sc.A) * int(m)) / 255)
			dc := buffer.GetColorRaw(dst, pt.X, pt.Y)
			buffer.PutPixelRaw(dst, pt.X, pt.Y, raster.AlphaBlended(dc, sc))
		}
	}
}

// FloodFill replaces every pixel reachable from origin by 4-connectivity
// whose color equals origin's original color, with p. Gradients are
// unsupported and make this a no-op.
func FloodFill(dst *Bitmap, origin IntPoint, p Paint) { raster.FloodFill(dst, origin, p) }

// BoundaryFill replaces every pixel reachable from origin by 4-connectivity
// that is not the boundary color, with p. Gradients are unsupported and make
// this a no-op.
func BoundaryFill(dst *Bitmap, origin IntPoint, boundary Color, p Paint) {
	raster.BoundaryFill(dst, origin, boundary, p)
}

// ReplaceColor replaces every pixel in dst equal to from with to.
func ReplaceColor(dst *Bitmap, from, to Color) { raster.ReplaceColor(dst, from, to) }

// EraseBut replaces every pixel in dst that is not equal to keep with the
// matching pixel of p.
func EraseBut(dst *Bitmap, keep Color, p Paint) { raster.EraseBut(dst, keep, p) }
