package raster

import (
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

// TestFillTriangleCentroidAndCorner pins spec scenario 3: filling
// (0,0),(10,0),(5,10) colors the centroid (5,3) and leaves the bounding
// box's far corner (10,10) untouched.
func TestFillTriangleCentroidAndCorner(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 12, H: 12})
	FillTriangle(bmp,
		geom.IntPoint{X: 0, Y: 0}, geom.IntPoint{X: 10, Y: 0}, geom.IntPoint{X: 5, Y: 10},
		paint.FromColor(buffer.NewColorRGB(255, 0, 0)))

	if buffer.GetColorRaw(bmp, 5, 3) != buffer.NewColorRGB(255, 0, 0) {
		t.Error("centroid (5,3) should be filled red")
	}
	if buffer.GetColorRaw(bmp, 10, 10) != buffer.ColorTransparent {
		t.Error("corner (10,10) outside the triangle should be untouched")
	}
}

func TestFillTriangleBaseRowSpansFullWidth(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 12, H: 12})
	FillTriangle(bmp,
		geom.IntPoint{X: 0, Y: 0}, geom.IntPoint{X: 10, Y: 0}, geom.IntPoint{X: 5, Y: 10},
		paint.FromColor(buffer.ColorWhite))

	for x := 0; x <= 10; x++ {
		if buffer.GetColorRaw(bmp, x, 0) != buffer.ColorWhite {
			t.Errorf("base row x=%d should be filled", x)
		}
	}
}

func TestFillTriangleApexUntouchedAtBotRow(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 12, H: 12})
	FillTriangle(bmp,
		geom.IntPoint{X: 0, Y: 0}, geom.IntPoint{X: 10, Y: 0}, geom.IntPoint{X: 5, Y: 10},
		paint.FromColor(buffer.ColorWhite))

	if buffer.GetColorRaw(bmp, 5, 10) != buffer.ColorTransparent {
		t.Error("the bottom vertex's own row is exclusive of the fill, matching the flat-bottom sweep's y < yTo bound")
	}
}

func TestFillTriangleDegenerateFlatRow(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 12, H: 4})
	FillTriangle(bmp,
		geom.IntPoint{X: 0, Y: 2}, geom.IntPoint{X: 5, Y: 2}, geom.IntPoint{X: 10, Y: 2},
		paint.FromColor(buffer.ColorWhite))

	for x := 0; x <= 10; x++ {
		if buffer.GetColorRaw(bmp, x, 2) != buffer.ColorWhite {
			t.Errorf("a flat (zero-height) triangle should fill its single row at x=%d", x)
		}
	}
}
