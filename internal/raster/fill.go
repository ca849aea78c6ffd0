package raster

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

type fillSpan struct{ x, y int }

// FloodFill replaces every pixel reachable from origin by 4-connectivity
// whose color equals origin's original color, with p. Gradients are
// unsupported, matching the original's stubbed gradient flood fill.
func FloodFill(dst *buffer.Bitmap, origin geom.IntPoint, p paint.Paint) {
	if p.IsGradient() {
		return
	}
	if !buffer.PointInBitmap(dst, origin) {
		return
	}
	target := buffer.GetColorRaw(dst, origin.X, origin.Y)
	bounds := geom.Rect{}
	src := p.Source(bounds)
	replacement := src.At(origin.X, origin.Y)
	if colorsEqual(target, replacement) {
		return
	}
	scanlineFill(dst, origin, func(c buffer.Color) bool { return colorsEqual(c, target) }, src)
}

// BoundaryFill replaces every pixel reachable from origin by 4-connectivity
// that is not the boundary color, with p.
func BoundaryFill(dst *buffer.Bitmap, origin geom.IntPoint, boundary buffer.Color, p paint.Paint) {
	if p.IsGradient() {
		return
	}
	if !buffer.PointInBitmap(dst, origin) {
		return
	}
	bounds := geom.Rect{}
	src := p.Source(bounds)
	scanlineFill(dst, origin, func(c buffer.Color) bool { return !colorsEqual(c, boundary) }, src)
}

func colorsEqual(a, b buffer.Color) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B && a.A == b.A
}

// scanlineFill is the shared west/east scanline flood algorithm: from each
// seed, it walks left and right while match holds, then queues the spans
// directly above and below.
func scanlineFill(dst *buffer.Bitmap, origin geom.IntPoint, match func(buffer.Color) bool, src paint.PixelSource) {
	size := dst.Size()
	visited := make([]bool, size.W*size.H)
	idx := func(x, y int) int { return y*size.W + x }

	stack := []fillSpan{{origin.X, origin.Y}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := s.x, s.y
		if x < 0 || y < 0 || x >= size.W || y >= size.H {
			continue
		}
		if visited[idx(x, y)] {
			continue
		}
		if !match(buffer.GetColorRaw(dst, x, y)) {
			continue
		}

		xl := x
		for xl > 0 && !visited[idx(xl-1, y)] && match(buffer.GetColorRaw(dst, xl-1, y)) {
			xl--
		}
		xr := x
		for xr < size.W-1 && !visited[idx(xr+1, y)] && match(buffer.GetColorRaw(dst, xr+1, y)) {
			xr++
		}

		for xi := xl; xi <= xr; xi++ {
			visited[idx(xi, y)] = true
			buffer.PutPixelRaw(dst, xi, y, src.At(xi, y))
		}

		if y > 0 {
			stack = appendSpanSeeds(stack, xl, xr, y-1)
		}
		if y < size.H-1 {
			stack = appendSpanSeeds(stack, xl, xr, y+1)
		}
	}
}

func appendSpanSeeds(stack []fillSpan, xl, xr, y int) []fillSpan {
	for x := xl; x <= xr; x++ {
		stack = append(stack, fillSpan{x, y})
	}
	return stack
}

// ReplaceColor replaces every pixel in dst equal to from with to, scanning
// the whole bitmap rather than flooding from a seed.
func ReplaceColor(dst *buffer.Bitmap, from, to buffer.Color) {
	size := dst.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if colorsEqual(buffer.GetColorRaw(dst, x, y), from) {
				buffer.PutPixelRaw(dst, x, y, to)
			}
		}
	}
}

// EraseBut replaces every pixel in dst that is not equal to keep with the
// matching pixel of p, scanning the whole bitmap.
func EraseBut(dst *buffer.Bitmap, keep buffer.Color, p paint.Paint) {
	size := dst.Size()
	bounds := geom.Rect{X1: 0, Y1: 0, X2: float64(size.W), Y2: float64(size.H)}
	src := p.Source(bounds)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !colorsEqual(buffer.GetColorRaw(dst, x, y), keep) {
				buffer.PutPixelRaw(dst, x, y, src.At(x, y))
			}
		}
	}
}
