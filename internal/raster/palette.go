package raster

import "github.com/faint-gfx/core/internal/buffer"

// CountColors returns the number of distinct colors in bmp, capped at max+1
// so callers probing "is this bitmap indexable at <=256 colors" don't pay
// for a full scan once the answer is already known to be no.
func CountColors(bmp *buffer.Bitmap, max int) int {
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

// Palette returns the distinct colors used in bmp, in first-seen order, or
// ok=false if bmp uses more than max colors.
func Palette(bmp *buffer.Bitmap, max int) (colors []buffer.Color, ok bool) {
	size := bmp.Size()
	seen := make(map[buffer.Color]int)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			if _, present := seen[c]; !present {
				if len(colors) >= max {
					return nil, false
				}
				seen[c] = len(colors)
				colors = append(colors, c)
			}
		}
	}
	return colors, true
}
