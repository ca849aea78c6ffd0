package quantize

import "github.com/faint-gfx/core/internal/buffer"

// applyQuantization maps every pixel in bmp to its nearest octree leaf,
// with no dithering.
func applyQuantization(bmp *buffer.Bitmap, tree *octree) (*buffer.AlphaMap, *buffer.ColorMap) {
	tables := newIndexTables(cqLevels)
	size := bmp.Size()
	dst := buffer.NewAlphaMap(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			idx := tables.indexOf(c)
			node := tree.findNode(idx)
			dst.Set(x, y, uint8(node.index))
		}
	}
	return dst, tree.colorMap
}

// applyDitheredQuantization quantizes bmp to tree's leaves while propagating
// the quantization error forward and down (3/8, 3/8, 2/8 to E/S/SE) in 8:64
// fixed point, clamped to [0,16383] exactly as the original editor's
// two-row Floyd-Steinberg pass does.
func applyDitheredQuantization(bmp *buffer.Bitmap, tree *octree) (*buffer.AlphaMap, *buffer.ColorMap) {
	tables := newIndexTables(cqLevels)
	size := bmp.Size()
	w, h := size.W, size.H
	dst := buffer.NewAlphaMap(size)

	r1, g1, b1 := make([]int, w), make([]int, w), make([]int, w)
	r2, g2, b2 := make([]int, w), make([]int, w), make([]int, w)

	fillLine := func(y int, r, g, b []int) {
		for x := 0; x < w; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			r[x] = 64 * int(c.R)
			g[x] = 64 * int(c.G)
			b[x] = 64 * int(c.B)
		}
	}
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 16383 {
			return 16383
		}
		return v
	}

	fillLine(0, r2, g2, b2)
	for y := 0; y < h-1; y++ {
		copy(r1, r2)
		copy(g1, g2)
		copy(b1, b2)
		fillLine(y+1, r2, g2, b2)

		for x := 0; x < w-1; x++ {
			c := buffer.NewColorRGB(uint8(r1[x]/64), uint8(g1[x]/64), uint8(b1[x]/64))
			idx := tables.indexOf(c)
			node := tree.findNode(idx)
			dst.Set(x, y, uint8(node.index))

			propagate := func(chan1, chan2 []int, chanVal int, center uint8) {
				dif := chanVal/8 - 8*int(center)
				if dif == 0 {
					return
				}
				chan1[x+1] = clamp(chan1[x+1] + 3*dif)
				chan2[x] = clamp(chan2[x] + 3*dif)
				chan2[x+1] = clamp(chan2[x+1] + 2*dif)
			}
			propagate(r1, r2, r1[x], node.center.R)
			propagate(g1, g2, g1[x], node.center.G)
			propagate(b1, b2, b1[x], node.center.B)
		}

		c := buffer.NewColorRGB(uint8(r1[w-1]/64), uint8(g1[w-1]/64), uint8(b1[w-1]/64))
		idx := tables.indexOf(c)
		node := tree.findNode(idx)
		dst.Set(w-1, y, uint8(node.index))
	}

	for x := 0; x < w; x++ {
		c := buffer.NewColorRGB(uint8(r2[x]/64), uint8(g2[x]/64), uint8(b2[x]/64))
		idx := tables.indexOf(c)
		node := tree.findNode(idx)
		dst.Set(x, h-1, uint8(node.index))
	}

	return dst, tree.colorMap
}

// BitmapFromIndexed reconstructs a full-color bitmap from an AlphaMap of
// palette indices and the palette it indexes into.
func BitmapFromIndexed(alphaMap *buffer.AlphaMap, colorMap *buffer.ColorMap) *buffer.Bitmap {
	return bitmapFromIndexedColors(alphaMap, colorMap)
}

func bitmapFromIndexedColors(alphaMap *buffer.AlphaMap, colorMap *buffer.ColorMap) *buffer.Bitmap {
	size := alphaMap.Size()
	dst := buffer.New(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := alphaMap.Get(x, y)
			buffer.PutPixelRaw(dst, x, y, colorMap.GetColor(int(idx)))
		}
	}
	return dst
}

// simplyIndexTheColors builds an exact palette when bmp already uses at
// most 256 distinct colors, skipping the octree entirely.
func simplyIndexTheColors(bmp *buffer.Bitmap) (*buffer.AlphaMap, *buffer.ColorMap) {
	size := bmp.Size()
	colorMap := buffer.NewColorMap()
	colorToIndex := make(map[buffer.Color]int)
	indexes := buffer.NewAlphaMap(size)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			idx, ok := colorToIndex[c]
			if !ok {
				idx, _ = colorMap.AddColor(c)
				colorToIndex[c] = idx
			}
			indexes.Set(x, y, uint8(idx))
		}
	}
	return indexes, colorMap
}

func countColors(bmp *buffer.Bitmap, max int) int {
	size := bmp.Size()
	seen := make(map[buffer.Color]struct{})
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			seen[buffer.GetColorRaw(bmp, x, y)] = struct{}{}
			if len(seen) > max {
				return len(seen)
			}
		}
	}
	return len(seen)
}

// DitherMode overrides Quantized's size-based dithering heuristic.
type DitherMode int

const (
	// DitherAuto dithers once either bitmap dimension reaches 250px, the
	// original's heuristic for when banding becomes visible without it.
	DitherAuto DitherMode = iota
	DitherOn
	DitherOff
)

// Quantized reduces bmp to at most 256 colors, returning the per-pixel
// palette indices and the palette itself. Bitmaps already at or under 256
// distinct colors are indexed exactly; larger ones are quantized through an
// octree, with dithering chosen by DitherAuto's size heuristic.
func Quantized(bmp *buffer.Bitmap) (*buffer.AlphaMap, *buffer.ColorMap) {
	return QuantizedWithDither(bmp, DitherAuto)
}

// QuantizedWithDither is Quantized with explicit control over whether the
// octree branch dithers, using the stock 250px auto threshold.
func QuantizedWithDither(bmp *buffer.Bitmap, mode DitherMode) (*buffer.AlphaMap, *buffer.ColorMap) {
	return QuantizedWithThreshold(bmp, mode, 250)
}

// QuantizedToColors reduces bmp to at most maxColors colors, undithered,
// for formats with a palette smaller than 256 entries (ICO/CUR's 1bpp and
// 4bpp frames). Unlike Quantized it reserves no system-color slots, since
// those only matter for the 256-entry BMP palette.
func QuantizedToColors(bmp *buffer.Bitmap, maxColors int) (*buffer.AlphaMap, *buffer.ColorMap) {
	if countColors(bmp, maxColors) <= maxColors {
		return simplyIndexTheColors(bmp)
	}
	tree := generateOctree(bmp, maxColors, 0)
	return applyQuantization(bmp, tree)
}

// QuantizedWithThreshold is QuantizedWithDither with the auto-dither pixel
// threshold also overridable, for callers that load it from a config file
// rather than hard-coding the original's 250px default.
func QuantizedWithThreshold(bmp *buffer.Bitmap, mode DitherMode, threshold int) (*buffer.AlphaMap, *buffer.ColorMap) {
	if countColors(bmp, 256) <= 256 {
		return simplyIndexTheColors(bmp)
	}

	const reserved = 64
	tree := generateOctree(bmp, 256, reserved)

	size := bmp.Size()
	dithering := size.W >= threshold || size.H >= threshold
	switch mode {
	case DitherOn:
		dithering = true
	case DitherOff:
		dithering = false
	}
	if dithering {
		return applyDitheredQuantization(bmp, tree)
	}
	return applyQuantization(bmp, tree)
}

// Quantize reduces bmp to at most 256 colors, returning a new bitmap and
// leaving bmp unchanged.
func Quantize(bmp *buffer.Bitmap) *buffer.Bitmap {
	indexed, colors := Quantized(bmp)
	return bitmapFromIndexedColors(indexed, colors)
}
