// Package quantize implements Faint's 256-color quantization pipeline: an
// octree color-cell accumulator pruned back to a fixed level, optionally
// combined with Floyd-Steinberg dithering, following the algorithm Faint
// itself adapted from Leptonica's octree quantizer.
package quantize

import "github.com/faint-gfx/core/internal/buffer"

// cqLevels is the octree depth used for quantization; levels 1 through 6
// are representable by indexTables, but Faint always quantizes at 5.
const cqLevels = 5

const extraReservedColors = 25

// indexTables maps an 8-bit channel value to its bit-interleaved octree
// index contribution at cqLevels depth.
type indexTables struct {
	red, green, blue [256]uint32
}

func newIndexTables(numLevels int) *indexTables {
	t := &indexTables{}
	switch numLevels {
	case 1:
		for i := 0; i < 256; i++ {
			t.red[i] = uint32(i>>5) & 0x0004
			t.green[i] = uint32(i>>6) & 0x0002
			t.blue[i] = uint32(i >> 7)
		}
	case 2:
		for i := 0; i < 256; i++ {
			t.red[i] = (uint32(i>>2) & 0x0020) | (uint32(i>>4) & 0x0004)
			t.green[i] = (uint32(i>>3) & 0x0010) | (uint32(i>>5) & 0x0002)
			t.blue[i] = (uint32(i>>4) & 0x0008) | (uint32(i>>6) & 0x0001)
		}
	case 3:
		for i := 0; i < 256; i++ {
			t.red[i] = (uint32(i<<1) & 0x0100) | (uint32(i>>1) & 0x0020) | (uint32(i>>3) & 0x0004)
			t.green[i] = (uint32(i) & 0x0080) | (uint32(i>>2) & 0x0010) | (uint32(i>>4) & 0x0002)
			t.blue[i] = (uint32(i>>1) & 0x0040) | (uint32(i>>3) & 0x0008) | (uint32(i>>5) & 0x0001)
		}
	case 4:
		for i := 0; i < 256; i++ {
			t.red[i] = (uint32(i<<4) & 0x0800) | (uint32(i<<2) & 0x0100) | (uint32(i) & 0x0020) | (uint32(i>>2) & 0x0004)
			t.green[i] = (uint32(i<<3) & 0x0400) | (uint32(i<<1) & 0x0080) | (uint32(i>>1) & 0x0010) | (uint32(i>>3) & 0x0002)
			t.blue[i] = (uint32(i<<2) & 0x0200) | (uint32(i) & 0x0040) | (uint32(i>>2) & 0x0008) | (uint32(i>>4) & 0x0001)
		}
	case 5:
		for i := 0; i < 256; i++ {
			t.red[i] = (uint32(i<<7) & 0x4000) | (uint32(i<<5) & 0x0800) | (uint32(i<<3) & 0x0100) |
				(uint32(i<<1) & 0x0020) | (uint32(i>>1) & 0x0004)
			t.green[i] = (uint32(i<<6) & 0x2000) | (uint32(i<<4) & 0x0400) | (uint32(i<<2) & 0x0080) |
				(uint32(i) & 0x0010) | (uint32(i>>2) & 0x0002)
			t.blue[i] = (uint32(i<<5) & 0x1000) | (uint32(i<<3) & 0x0200) | (uint32(i<<1) & 0x0040) |
				(uint32(i>>1) & 0x0008) | (uint32(i>>3) & 0x0001)
		}
	case 6:
		for i := 0; i < 256; i++ {
			t.red[i] = (uint32(i<<10) & 0x20000) | (uint32(i<<8) & 0x4000) | (uint32(i<<6) & 0x0800) |
				(uint32(i<<4) & 0x0100) | (uint32(i<<2) & 0x0020) | (uint32(i) & 0x0004)
			t.green[i] = (uint32(i<<9) & 0x10000) | (uint32(i<<7) & 0x2000) | (uint32(i<<5) & 0x0400) |
				(uint32(i<<3) & 0x0080) | (uint32(i<<1) & 0x0010) | (uint32(i>>1) & 0x0002)
			t.blue[i] = (uint32(i<<8) & 0x8000) | (uint32(i<<6) & 0x1000) | (uint32(i<<4) & 0x0200) |
				(uint32(i<<2) & 0x0040) | (uint32(i) & 0x0008) | (uint32(i>>2) & 0x0001)
		}
	}
	return t
}

func (t *indexTables) indexOf(c buffer.Color) int {
	return int(t.red[c.R] | t.green[c.G] | t.blue[c.B])
}

type colorNode struct {
	center     buffer.Color
	numSamples int
	index      int
	numLeaves  int
	isLeaf     bool
}

type cubeIndices struct{ base, sub int }

func octreeIndices(rgbIndex, level int) cubeIndices {
	return cubeIndices{
		base: rgbIndex >> uint(3*(cqLevels-level)),
		sub:  rgbIndex >> uint(3*(cqLevels-1-level)),
	}
}

// octree holds one accumulation array of colorNodes per level 0..cqLevels,
// plus the colormap assembled while pruning.
type octree struct {
	nodes    [][]colorNode
	colorMap *buffer.ColorMap
}

func newOctree() *octree {
	t := &octree{
		nodes:    make([][]colorNode, cqLevels+1),
		colorMap: buffer.NewColorMap(),
	}
	for level := 0; level <= cqLevels; level++ {
		t.nodes[level] = make([]colorNode, 1<<uint(3*level))
	}
	return t
}

func (t *octree) findNode(octIndex int) colorNode {
	for level := 2; level < cqLevels; level++ {
		ind := octreeIndices(octIndex, level)
		node := &t.nodes[level][ind.base]
		subNode := &t.nodes[level+1][ind.sub]
		if !subNode.isLeaf {
			return *node
		}
		if level == cqLevels-1 {
			return *subNode
		}
	}
	panic("quantize: octree cell not found")
}

// rgbFromOctcube recovers the representative color at the center of the
// cube addressed by cubeIndex at level, via the original's bit-interleaved
// 21-bit round trip.
func rgbFromOctcube(cubeIndex, level int) buffer.Color {
	rgbIndex := cubeIndex << uint(3*(7-level))
	rgbIndex |= 0x7 << uint(3*(6-level))

	r := ((rgbIndex >> 13) & 0x80) | ((rgbIndex >> 11) & 0x40) | ((rgbIndex >> 9) & 0x20) |
		((rgbIndex >> 7) & 0x10) | ((rgbIndex >> 5) & 0x08) | ((rgbIndex >> 3) & 0x04) | ((rgbIndex >> 1) & 0x02)
	g := ((rgbIndex >> 12) & 0x80) | ((rgbIndex >> 10) & 0x40) | ((rgbIndex >> 8) & 0x20) |
		((rgbIndex >> 6) & 0x10) | ((rgbIndex >> 4) & 0x08) | ((rgbIndex >> 2) & 0x04) | (rgbIndex & 0x02)
	b := ((rgbIndex >> 11) & 0x80) | ((rgbIndex >> 9) & 0x40) | ((rgbIndex >> 7) & 0x20) |
		((rgbIndex >> 5) & 0x10) | ((rgbIndex >> 3) & 0x08) | ((rgbIndex >> 1) & 0x04) | ((rgbIndex << 1) & 0x02)
	return buffer.NewColorRGB(uint8(r), uint8(g), uint8(b))
}

// thresholdFactor mirrors the original's per-level pruning threshold: a
// cube is promoted to a leaf once its sample count reaches the factor times
// pixelsPerCell. Pruning only visits levels 2 through 4, so the 0.01 entries
// for the coarsest two levels are never read.
var thresholdFactor = [cqLevels + 1]float64{0.01, 0.01, 1.0, 1.0, 1.0, 1.0}

// generateOctree accumulates bmp's pixels into an octree and prunes it back
// toward requestedNumColors-reservedColors-extraReservedColors leaves, the
// target that sets the per-cell promotion threshold. Every level-2 cube ends
// up a leaf, and the palette holds at most requestedNumColors entries.
func generateOctree(bmp *buffer.Bitmap, requestedNumColors, reservedColors int) *octree {
	tables := newIndexTables(cqLevels)
	tree := newOctree()
	size := bmp.Size()

	numPixels := size.W * size.H
	numColors := requestedNumColors - reservedColors - extraReservedColors
	pixelsPerCell := numPixels / numColors

	leaves := tree.nodes[cqLevels]
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := tables.indexOf(buffer.GetColorRaw(bmp, x, y))
			leaves[idx].numSamples++
		}
	}

	recompute := func() {
		if numColors > 0 {
			pixelsPerCell = numPixels / numColors
		} else if numColors+reservedColors > 0 {
			pixelsPerCell = numPixels / (numColors + reservedColors)
		} else {
			pixelsPerCell = 1000000
		}
	}

	for level := cqLevels - 1; level >= 2; level-- {
		thresh := thresholdFactor[level]
		cur := tree.nodes[level]
		sub := tree.nodes[level+1]
		numNodes := 1 << uint(3*level)

		for i := 0; i < numNodes; i++ {
			cqc := &cur[i]

			for j := 0; j < 8; j++ {
				isub := 8*i + j
				cqcsub := &sub[isub]

				if cqcsub.isLeaf {
					cqc.numLeaves++
					continue
				}

				if float64(cqcsub.numSamples) >= thresh*float64(pixelsPerCell) {
					cqcsub.isLeaf = true
					if tree.colorMap.NumColors() < requestedNumColors {
						idx, _ := tree.colorMap.AddColor(rgbFromOctcube(isub, level+1))
						cqcsub.index = idx
						cqcsub.center = rgbFromOctcube(isub, level+1)
					}
					cqc.numLeaves++
					numPixels -= cqcsub.numSamples
					numColors--
					recompute()
				}
			}

			if cqc.numLeaves > 0 || level == 2 {
				cqc.isLeaf = true
				if cqc.numLeaves < 8 {
					for j := 0; j < 8; j++ {
						isub := 8*i + j
						cqcsub := &sub[isub]
						if !cqcsub.isLeaf {
							cqc.numSamples += cqcsub.numSamples
						}
					}
					if tree.colorMap.NumColors() < requestedNumColors {
						idx, _ := tree.colorMap.AddColor(rgbFromOctcube(i, level))
						cqc.index = idx
						cqc.center = rgbFromOctcube(i, level)
					}
					numPixels -= cqc.numSamples
					numColors--
					recompute()
				}
			} else {
				for j := 0; j < 8; j++ {
					isub := 8*i + j
					cqc.numSamples += sub[isub].numSamples
				}
			}
		}
	}
	return tree
}
