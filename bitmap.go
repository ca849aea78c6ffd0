package faint

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/quantize"
	"github.com/faint-gfx/core/internal/raster"
	"github.com/faint-gfx/core/internal/transform"
)

// NewBitmap allocates a cleared, fully transparent bitmap of the given size.
func NewBitmap(size IntSize) *Bitmap { return buffer.New(size) }

// NewFilledBitmap allocates a bitmap of the given size filled with c.
func NewFilledBitmap(size IntSize, c Color) *Bitmap { return buffer.NewFilled(size, c) }

// BitmapOK reports whether b has usable, non-zero-area storage.
func BitmapOK(b *Bitmap) bool { return buffer.BitmapOK(b) }

// Clear fills the entire bitmap with a solid color.
func Clear(b *Bitmap, c Color) { buffer.Clear(b, c) }

// GetColor reads the pixel at pt, bounds-checked.
func GetColor(b *Bitmap, pt IntPoint) (Color, bool) { return buffer.GetColor(b, pt) }

// PutPixel writes the pixel at pt, bounds-checked; a no-op outside b.
func PutPixel(b *Bitmap, pt IntPoint, c Color) { buffer.PutPixel(b, pt, c) }

// IsBlank reports whether every pixel in b equals the color of pixel (0,0).
func IsBlank(b *Bitmap) bool { return buffer.IsBlank(b) }

// SetAlpha sets the alpha channel of every pixel in b to a uniformly.
func SetAlpha(b *Bitmap, a uint8) { buffer.SetAlpha(b, a) }

// Subbitmap extracts a rectangular, tightly-strided copy of r from b.
func Subbitmap(b *Bitmap, r IntRect) *Bitmap { return buffer.Subbitmap(b, r) }

// Axis selects the mirror line a Flip reflects across.
type Axis int

const (
	// AxisHorizontal mirrors left-to-right (reflects across a vertical line).
	AxisHorizontal Axis = iota
	// AxisVertical mirrors top-to-bottom (reflects across a horizontal line).
	AxisVertical
)

// Flip mirrors b across the given axis, returning a new bitmap.
func Flip(b *Bitmap, axis Axis) *Bitmap {
	if axis == AxisHorizontal {
		return transform.FlipHorizontal(b)
	}
	return transform.FlipVertical(b)
}

// Rotate90CW rotates b a quarter turn clockwise, transposing width and height.
func Rotate90CW(b *Bitmap) *Bitmap { return transform.Rotate90CW(b) }

// Rotate rotates b by angle radians about its center, expanding the canvas
// to fit the rotated bounds and filling uncovered pixels with background.
func Rotate(b *Bitmap, angle Radian, background Color) *Bitmap {
	return transform.RotateArbitrary(b, angle, background)
}

// ScaleMode selects the resampling kernel Scale uses.
type ScaleMode int

const (
	ScaleNearest ScaleMode = iota
	ScaleBilinear
)

// ScaleTo resizes b to newSize using the given resampling mode.
func ScaleTo(b *Bitmap, newSize IntSize, mode ScaleMode) *Bitmap {
	if mode == ScaleBilinear {
		return transform.ScaleBilinear(b, newSize)
	}
	return transform.ScaleNearest(b, newSize)
}

// ScaledSubbitmap extracts the region r from src and scales it by sc in one
// pass.
func ScaledSubbitmap(src *Bitmap, r IntRect, sc Scale) *Bitmap {
	return transform.ScaledSubbitmap(src, r, sc)
}

// AlphaBlended composites src over dst using src's alpha (straight-alpha
// "over" compositing).
func AlphaBlended(dst, src Color) Color { return raster.AlphaBlended(dst, src) }

// CountColors returns the number of distinct colors in b, capped at max+1.
func CountColors(b *Bitmap, max int) int { return raster.CountColors(b, max) }

// GetPalette returns the distinct colors used by b in a deterministic,
// sorted, duplicate-free order, or ok=false if b uses more than max colors.
func GetPalette(b *Bitmap, max int) (colors []Color, ok bool) {
	colors, ok = raster.Palette(b, max)
	if !ok {
		return nil, false
	}
	sortColors(colors)
	return colors, true
}

func sortColors(colors []Color) {
	key := func(c Color) uint32 {
		return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	for i := 1; i < len(colors); i++ {
		for j := i; j > 0 && key(colors[j-1]) > key(colors[j]); j-- {
			colors[j-1], colors[j] = colors[j], colors[j-1]
		}
	}
}

// Quantized reduces b to at most 256 colors, returning the per-pixel
// palette indices and the palette itself. Bitmaps already at or under 256
// distinct colors are indexed exactly; larger ones are quantized through an
// octree, dithered once either dimension reaches 250px.
func Quantized(b *Bitmap) (*AlphaMap, *ColorMap) { return quantize.Quantized(b) }

// Quantize reduces b to at most 256 colors, returning a new bitmap.
func Quantize(b *Bitmap) *Bitmap { return quantize.Quantize(b) }

// DitherMode overrides Quantized's size-based dithering heuristic.
type DitherMode = quantize.DitherMode

const (
	DitherAuto = quantize.DitherAuto
	DitherOn   = quantize.DitherOn
	DitherOff  = quantize.DitherOff
)

// QuantizedWithDither is Quantized with explicit control over whether the
// octree branch dithers.
func QuantizedWithDither(b *Bitmap, mode DitherMode) (*AlphaMap, *ColorMap) {
	return quantize.QuantizedWithDither(b, mode)
}

// QuantizedWithThreshold is QuantizedWithDither with the auto-dither pixel
// threshold also overridable.
func QuantizedWithThreshold(b *Bitmap, mode DitherMode, threshold int) (*AlphaMap, *ColorMap) {
	return quantize.QuantizedWithThreshold(b, mode, threshold)
}

// BitmapFromIndexed reconstructs a full-color bitmap from an AlphaMap of
// palette indices and the palette it indexes into.
func BitmapFromIndexed(alphaMap *AlphaMap, colorMap *ColorMap) *Bitmap {
	return quantize.BitmapFromIndexed(alphaMap, colorMap)
}
