package buffer

import "github.com/faint-gfx/core/internal/geom"

// AlphaMapRef is a non-owning, read/write view of an AlphaMap's storage,
// handed to code (like flood/boundary fill) that needs to address a
// caller-owned alpha buffer without taking ownership.
type AlphaMapRef struct {
	data   []uint8
	w, h   int
	stride int
}

func (r AlphaMapRef) Get(x, y int) uint8 {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return 0
	}
	return r.data[y*r.stride+x]
}

func (r AlphaMapRef) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.data[y*r.stride+x] = v
}

func (r AlphaMapRef) Size() geom.IntSize { return geom.IntSize{W: r.w, H: r.h} }

// AlphaMap is an owned single-channel 8-bit coverage buffer, e.g. the
// running accumulator behind a soft brush stroke.
type AlphaMap struct {
	data   []uint8
	w, h   int
	stride int
}

// NewAlphaMap allocates a zeroed alpha map of the given size.
func NewAlphaMap(size geom.IntSize) *AlphaMap {
	if size.W <= 0 || size.H <= 0 {
		return &AlphaMap{}
	}
	return &AlphaMap{
		data:   make([]uint8, size.W*size.H),
		w:      size.W,
		h:      size.H,
		stride: size.W,
	}
}

// Clone deep-copies the alpha map (the CopySrc substitute; AlphaMap has no
// implicit copy constructor).
func (a *AlphaMap) Clone() *AlphaMap {
	out := &AlphaMap{
		data:   make([]uint8, len(a.data)),
		w:      a.w,
		h:      a.h,
		stride: a.stride,
	}
	copy(out.data, a.data)
	return out
}

func (a *AlphaMap) Size() geom.IntSize { return geom.IntSize{W: a.w, H: a.h} }

func (a *AlphaMap) Get(x, y int) uint8 {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return 0
	}
	return a.data[y*a.stride+x]
}

func (a *AlphaMap) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return
	}
	a.data[y*a.stride+x] = v
}

// Add adds delta to the value at (x,y), saturating at 255 rather than
// wrapping.
func (a *AlphaMap) Add(x, y int, delta int) {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return
	}
	i := y*a.stride + x
	v := int(a.data[i]) + delta
	if v > 255 {
		v = 255
	} else if v < 0 {
		v = 0
	}
	a.data[i] = uint8(v)
}

// Reset reinitializes the map to a new, cleared size.
func (a *AlphaMap) Reset(size geom.IntSize) {
	*a = *NewAlphaMap(size)
}

// FullReference returns a view over the entire map.
func (a *AlphaMap) FullReference() AlphaMapRef {
	return AlphaMapRef{data: a.data, w: a.w, h: a.h, stride: a.stride}
}

// SubReference returns a view over the subregion r (not copied; writes
// through it mutate a).
func (a *AlphaMap) SubReference(r geom.IntRect) AlphaMapRef {
	r.Normalize()
	size := r.Size()
	// Offset the backing slice so Get/Set in the returned ref use
	// local (0,0)-origin coordinates but still index into a's storage.
	start := r.Y1*a.stride + r.X1
	return AlphaMapRef{data: a.data[start:], w: size.W, h: size.H, stride: a.stride}
}

// SubCopy extracts a standalone copy of the subregion r.
func (a *AlphaMap) SubCopy(r geom.IntRect) *AlphaMap {
	r.Normalize()
	size := r.Size()
	out := NewAlphaMap(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			out.Set(x, y, a.Get(r.X1+x, r.Y1+y))
		}
	}
	return out
}

// GetRaw returns the mutable backing store.
func (a *AlphaMap) GetRaw() []uint8 { return a.data }

// Offsat wraps a destination of type T (typically Bitmap, DstBmp or
// AlphaMapRef) together with a translation applied to every coordinate
// drawn through it, so drawing code can target a sub-region of a larger
// buffer without rewriting its own coordinate arithmetic.
type Offsat[T any] struct {
	Dst    T
	Offset geom.IntPoint
}

// NewOffsat wraps dst with the given translation.
func NewOffsat[T any](dst T, offset geom.IntPoint) Offsat[T] {
	return Offsat[T]{Dst: dst, Offset: offset}
}

// Translate maps a point in the offsat's local space to the underlying
// destination's space.
func (o Offsat[T]) Translate(p geom.IntPoint) geom.IntPoint {
	return p.Add(o.Offset)
}
