package raster

import (
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
)

func TestDrawLineHorizontal(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 10, H: 3})
	DrawLine(bmp, geom.IntPoint{X: 1, Y: 1}, geom.IntPoint{X: 8, Y: 1}, LineSettings{
		Paint:     paint.FromColor(buffer.ColorWhite),
		LineWidth: 1,
	})
	for x := 1; x <= 8; x++ {
		if buffer.GetColorRaw(bmp, x, 1) != buffer.ColorWhite {
			t.Errorf("pixel (%d,1) should be on the line", x)
		}
	}
	if buffer.GetColorRaw(bmp, 1, 0) != buffer.ColorTransparent {
		t.Error("row above the line should be untouched")
	}
}

func TestDrawLineSinglePointDegenerate(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 4, H: 4})
	DrawLine(bmp, geom.IntPoint{X: 2, Y: 2}, geom.IntPoint{X: 2, Y: 2}, LineSettings{
		Paint:     paint.FromColor(buffer.ColorWhite),
		LineWidth: 1,
	})
	if buffer.GetColorRaw(bmp, 2, 2) != buffer.ColorWhite {
		t.Error("a zero-length line should still stamp its single point")
	}
}

func TestDrawLineSteepOctant(t *testing.T) {
	bmp := buffer.New(geom.IntSize{W: 4, H: 10})
	DrawLine(bmp, geom.IntPoint{X: 1, Y: 1}, geom.IntPoint{X: 2, Y: 8}, LineSettings{
		Paint:     paint.FromColor(buffer.ColorWhite),
		LineWidth: 1,
	})
	if buffer.GetColorRaw(bmp, 1, 1) != buffer.ColorWhite || buffer.GetColorRaw(bmp, 2, 8) != buffer.ColorWhite {
		t.Error("a steep line's endpoints should both be drawn")
	}
}
