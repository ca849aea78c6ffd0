package msw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

func TestICORoundTrip(t *testing.T) {
	a := buffer.NewFilled(geom.IntSize{W: 16, H: 16}, buffer.ColorWhite)
	b := buffer.NewFilled(geom.IntSize{W: 32, H: 32}, buffer.NewColor(10, 20, 30, 200))

	var buf bytes.Buffer
	if result := WriteICO(&buf, []*buffer.Bitmap{a, b}); !result.OK() {
		t.Fatalf("WriteICO failed: %v", result.Error())
	}

	frames, err := ReadICO(&buf)
	if err != nil {
		t.Fatalf("ReadICO failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Bitmap.Size() != a.Size() {
		t.Errorf("frame 0 size = %+v, want %+v", frames[0].Bitmap.Size(), a.Size())
	}
	if got := buffer.GetColorRaw(frames[1].Bitmap, 0, 0); got.A != 200 {
		t.Errorf("frame 1 alpha lost in round trip: %+v", got)
	}
}

func TestCURRoundTripCarriesHotspot(t *testing.T) {
	a := buffer.NewFilled(geom.IntSize{W: 8, H: 8}, buffer.ColorBlack)
	hotspot := geom.IntPoint{X: 3, Y: 5}

	var buf bytes.Buffer
	if result := WriteCUR(&buf, []*buffer.Bitmap{a}, []geom.IntPoint{hotspot}); !result.OK() {
		t.Fatalf("WriteCUR failed: %v", result.Error())
	}
	frames, err := ReadCUR(&buf)
	if err != nil {
		t.Fatalf("ReadCUR failed: %v", err)
	}
	if frames[0].Hotspot != hotspot {
		t.Errorf("Hotspot = %+v, want %+v", frames[0].Hotspot, hotspot)
	}
}

func TestReadICORejectsCURContainer(t *testing.T) {
	a := buffer.NewFilled(geom.IntSize{W: 8, H: 8}, buffer.ColorBlack)
	var buf bytes.Buffer
	WriteCUR(&buf, []*buffer.Bitmap{a}, []geom.IntPoint{{}})
	if _, err := ReadICO(&buf); err != ErrWrongIconType {
		t.Errorf("ReadICO on a CUR container = %v, want ErrWrongIconType", err)
	}
}

func TestReadIconContainerRejectsEmpty(t *testing.T) {
	data := []byte{0, 0, 1, 0, 0, 0} // reserved=0, type=icon, count=0
	if _, err := ReadICO(bytes.NewReader(data)); err != ErrNoImages {
		t.Errorf("err = %v, want ErrNoImages", err)
	}
}

func TestICOIndexedRoundTrip(t *testing.T) {
	for _, bpp := range []int{1, 4, 8} {
		bmp := buffer.New(geom.IntSize{W: 8, H: 8})
		buffer.Clear(bmp, buffer.ColorWhite)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				buffer.PutPixelRaw(bmp, x, y, buffer.ColorBlack)
			}
		}

		var buf bytes.Buffer
		if result := WriteICOIndexed(&buf, []*buffer.Bitmap{bmp}, bpp); !result.OK() {
			t.Fatalf("bpp=%d: WriteICOIndexed failed: %v", bpp, result.Error())
		}

		frames, err := ReadICO(&buf)
		if err != nil {
			t.Fatalf("bpp=%d: ReadICO failed: %v", bpp, err)
		}
		if frames[0].Bitmap.Size() != bmp.Size() {
			t.Fatalf("bpp=%d: size = %+v, want %+v", bpp, frames[0].Bitmap.Size(), bmp.Size())
		}
		if got := buffer.GetColorRaw(frames[0].Bitmap, 0, 0); got != buffer.ColorBlack {
			t.Errorf("bpp=%d: (0,0) = %+v, want black", bpp, got)
		}
		if got := buffer.GetColorRaw(frames[0].Bitmap, 7, 7); got != buffer.ColorWhite {
			t.Errorf("bpp=%d: (7,7) = %+v, want white", bpp, got)
		}
	}
}

func TestCURIndexedRoundTripCarriesHotspot(t *testing.T) {
	a := buffer.NewFilled(geom.IntSize{W: 8, H: 8}, buffer.ColorWhite)
	hotspot := geom.IntPoint{X: 2, Y: 6}

	var buf bytes.Buffer
	if result := WriteCURIndexed(&buf, []*buffer.Bitmap{a}, []geom.IntPoint{hotspot}, 4); !result.OK() {
		t.Fatalf("WriteCURIndexed failed: %v", result.Error())
	}
	frames, err := ReadCUR(&buf)
	if err != nil {
		t.Fatalf("ReadCUR failed: %v", err)
	}
	if frames[0].Hotspot != hotspot {
		t.Errorf("Hotspot = %+v, want %+v", frames[0].Hotspot, hotspot)
	}
}

func TestWriteICORejectsOversizedFrame(t *testing.T) {
	huge := buffer.New(geom.IntSize{W: 300, H: 100})
	var buf bytes.Buffer
	result := WriteICO(&buf, []*buffer.Bitmap{huge})
	if result.OK() {
		t.Fatal("WriteICO should reject a frame exceeding 256px on an axis")
	}
	if !errors.Is(result.Error(), ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", result.Error())
	}
}
