// Package buffer implements Faint's owned pixel storage: Bitmap (ARGB32,
// BGRA byte order in memory) and AlphaMap (single-channel coverage), plus
// the small borrow types (DstBmp, Offsat) that let drawing code address a
// buffer without taking ownership of it.
package buffer

import (
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/order"
)

// Bpp is the number of bytes per pixel in a Bitmap.
const Bpp = 4

var ch order.BGRA

// Channel byte offsets within a pixel, matching the original's bpp/iR/iG/iB/iA
// externs.
var (
	IR = ch.IdxR()
	IG = ch.IdxG()
	IB = ch.IdxB()
	IA = ch.IdxA()
)

// Color is a straight-alpha 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

func NewColor(r, g, b, a uint8) Color { return Color{r, g, b, a} }
func NewColorRGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

var (
	ColorBlack       = NewColorRGB(0, 0, 0)
	ColorWhite       = NewColorRGB(255, 255, 255)
	ColorTransparent = NewColor(0, 0, 0, 0)
)

// Gradient linearly interpolates between c and c2 at parameter k in [0,1].
func (c Color) Gradient(c2 Color, k float64) Color {
	if k <= 0 {
		return c
	}
	if k >= 1 {
		return c2
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*k)
	}
	return Color{lerp(c.R, c2.R), lerp(c.G, c2.G), lerp(c.B, c2.B), lerp(c.A, c2.A)}
}

// Bitmap is an owned, move-only ARGB32 pixel buffer stored top-down in
// row-major BGRA byte order. The zero Bitmap is the "invalid" bitmap
// (IsOK reports false); Faint's drawing operations refuse to operate on it.
type Bitmap struct {
	data   []uint8
	w, h   int
	stride int // bytes per row, always >= w*Bpp
}

// New allocates a cleared, fully transparent bitmap of the given size.
func New(size geom.IntSize) *Bitmap {
	if size.W <= 0 || size.H <= 0 {
		return &Bitmap{}
	}
	stride := size.W * Bpp
	return &Bitmap{
		data:   make([]uint8, stride*size.H),
		w:      size.W,
		h:      size.H,
		stride: stride,
	}
}

// NewFilled allocates a bitmap of the given size, filled with c.
func NewFilled(size geom.IntSize, c Color) *Bitmap {
	bmp := New(size)
	Clear(bmp, c)
	return bmp
}

// NewWithStride allocates a bitmap with an explicit row stride (>= w*Bpp),
// used when padding rows to a boundary (e.g. a BMP's 4-byte alignment).
func NewWithStride(size geom.IntSize, stride int) *Bitmap {
	if stride < size.W*Bpp {
		stride = size.W * Bpp
	}
	return &Bitmap{
		data:   make([]uint8, stride*size.H),
		w:      size.W,
		h:      size.H,
		stride: stride,
	}
}

// Clone makes a deep copy of bmp, the explicit substitute for a copy
// constructor; Bitmap itself is otherwise non-copyable (assigning it copies
// only the header, never the pixel data).
func (bmp *Bitmap) Clone() *Bitmap {
	if bmp == nil || !bmp.IsOK() {
		return &Bitmap{}
	}
	out := &Bitmap{
		data:   make([]uint8, len(bmp.data)),
		w:      bmp.w,
		h:      bmp.h,
		stride: bmp.stride,
	}
	copy(out.data, bmp.data)
	return out
}

// Swap exchanges the contents of bmp and other in place.
func (bmp *Bitmap) Swap(other *Bitmap) {
	*bmp, *other = *other, *bmp
}

// IsOK reports whether the bitmap has usable (non-zero area) storage.
func (bmp *Bitmap) IsOK() bool {
	return bmp != nil && bmp.w > 0 && bmp.h > 0 && len(bmp.data) > 0
}

func (bmp *Bitmap) Size() geom.IntSize { return geom.IntSize{W: bmp.w, H: bmp.h} }
func (bmp *Bitmap) Stride() int        { return bmp.stride }

// Raw returns the mutable backing store.
func (bmp *Bitmap) Raw() []uint8 { return bmp.data }

// RawConst returns a read-only view of the backing store.
func (bmp *Bitmap) RawConst() []uint8 { return bmp.data }

func bitmapOK(bmp *Bitmap) bool { return bmp.IsOK() }

// BitmapOK is the public free-function form (mirrors the original's
// bitmap_ok(bmp), kept as a function rather than folded purely into a
// method so call sites read the same as the rest of the drawing API).
func BitmapOK(bmp *Bitmap) bool { return bitmapOK(bmp) }

// PointInBitmap reports whether p addresses a pixel within bmp.
func PointInBitmap(bmp *Bitmap, p geom.IntPoint) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < bmp.w && p.Y < bmp.h
}

func pixelOffset(bmp *Bitmap, x, y int) int {
	return y*bmp.stride + x*Bpp
}

// GetColorRaw reads the pixel at (x,y) without bounds checking.
func GetColorRaw(bmp *Bitmap, x, y int) Color {
	o := pixelOffset(bmp, x, y)
	px := bmp.data[o : o+Bpp]
	return Color{px[IR], px[IG], px[IB], px[IA]}
}

// GetColor reads the pixel at pt, bounds-checked.
func GetColor(bmp *Bitmap, pt geom.IntPoint) (Color, bool) {
	if !PointInBitmap(bmp, pt) {
		return Color{}, false
	}
	return GetColorRaw(bmp, pt.X, pt.Y), true
}

// PutPixelRaw writes the pixel at (x,y) without bounds checking.
func PutPixelRaw(bmp *Bitmap, x, y int, c Color) {
	o := pixelOffset(bmp, x, y)
	px := bmp.data[o : o+Bpp]
	px[IR], px[IG], px[IB], px[IA] = c.R, c.G, c.B, c.A
}

// PutPixel writes the pixel at pt, bounds-checked; a no-op outside bmp.
func PutPixel(bmp *Bitmap, pt geom.IntPoint, c Color) {
	if !PointInBitmap(bmp, pt) {
		return
	}
	PutPixelRaw(bmp, pt.X, pt.Y, c)
}

// Clear fills the entire bitmap with a solid color.
func Clear(bmp *Bitmap, c Color) {
	if !bmp.IsOK() {
		return
	}
	for y := 0; y < bmp.h; y++ {
		for x := 0; x < bmp.w; x++ {
			PutPixelRaw(bmp, x, y, c)
		}
	}
}

// IsBlank reports whether every pixel in bmp equals the color of pixel (0,0).
func IsBlank(bmp *Bitmap) bool {
	if !bmp.IsOK() {
		return true
	}
	first := GetColorRaw(bmp, 0, 0)
	for y := 0; y < bmp.h; y++ {
		for x := 0; x < bmp.w; x++ {
			if GetColorRaw(bmp, x, y) != first {
				return false
			}
		}
	}
	return true
}

// SetAlpha sets the alpha channel of every pixel to a uniformly.
func SetAlpha(bmp *Bitmap, a uint8) {
	if !bmp.IsOK() {
		return
	}
	for y := 0; y < bmp.h; y++ {
		row := bmp.data[y*bmp.stride : y*bmp.stride+bmp.w*Bpp]
		for x := 0; x < bmp.w; x++ {
			row[x*Bpp+IA] = a
		}
	}
}

// Subbitmap extracts a rectangular, tightly-strided copy of r from orig.
func Subbitmap(orig *Bitmap, r geom.IntRect) *Bitmap {
	r.Normalize()
	size := r.Size()
	out := New(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			PutPixelRaw(out, x, y, GetColorRaw(orig, r.X1+x, r.Y1+y))
		}
	}
	return out
}

// Inside reports whether r lies entirely within bmp's bounds.
func Inside(r geom.IntRect, bmp *Bitmap) bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X2 <= bmp.w && r.Y2 <= bmp.h
}

// DstBmp is a non-owning, write-capable view of a Bitmap, handed to
// drawing routines that must never take ownership of the destination.
type DstBmp struct {
	bmp *Bitmap
}

// Onto wraps bmp as a DstBmp.
func Onto(bmp *Bitmap) DstBmp { return DstBmp{bmp} }

func (d DstBmp) Raw() []uint8        { return d.bmp.Raw() }
func (d DstBmp) Size() geom.IntSize  { return d.bmp.Size() }
func (d DstBmp) Stride() int         { return d.bmp.Stride() }
func (d DstBmp) Bitmap() *Bitmap     { return d.bmp }
