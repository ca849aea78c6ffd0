package msw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

func TestBMPRoundTrip24Bit(t *testing.T) {
	src := buffer.New(geom.IntSize{W: 3, H: 2})
	buffer.PutPixelRaw(src, 0, 0, buffer.NewColorRGB(10, 20, 30))
	buffer.PutPixelRaw(src, 1, 0, buffer.ColorWhite)
	buffer.PutPixelRaw(src, 2, 1, buffer.ColorBlack)

	var buf bytes.Buffer
	result := WriteBMP(&buf, src, QualityColor24)
	if !result.OK() {
		t.Fatalf("WriteBMP failed: %v", result.Error())
	}

	got, err := ReadBMP(&buf)
	if err != nil {
		t.Fatalf("ReadBMP failed: %v", err)
	}
	if got.Size() != src.Size() {
		t.Fatalf("size = %+v, want %+v", got.Size(), src.Size())
	}
	if buffer.GetColorRaw(got, 0, 0) != buffer.NewColorRGB(10, 20, 30) {
		t.Error("24bpp round trip lost pixel (0,0)")
	}
	if buffer.GetColorRaw(got, 1, 0) != buffer.ColorWhite {
		t.Error("24bpp round trip lost pixel (1,0)")
	}
}

func TestBMPRoundTrip8BitIndexed(t *testing.T) {
	src := buffer.New(geom.IntSize{W: 2, H: 2})
	buffer.PutPixelRaw(src, 0, 0, buffer.ColorWhite)
	buffer.PutPixelRaw(src, 1, 0, buffer.ColorBlack)
	buffer.PutPixelRaw(src, 0, 1, buffer.ColorWhite)
	buffer.PutPixelRaw(src, 1, 1, buffer.ColorBlack)

	var buf bytes.Buffer
	if result := WriteBMP(&buf, src, QualityColor8); !result.OK() {
		t.Fatalf("WriteBMP failed: %v", result.Error())
	}
	got, err := ReadBMP(&buf)
	if err != nil {
		t.Fatalf("ReadBMP failed: %v", err)
	}
	if buffer.GetColorRaw(got, 0, 0) != buffer.ColorWhite || buffer.GetColorRaw(got, 1, 0) != buffer.ColorBlack {
		t.Error("8bpp indexed round trip lost exact palette colors")
	}
}

func TestReadBMPRejectsBadSignature(t *testing.T) {
	data := []byte("XX\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	if _, err := ReadBMP(bytes.NewReader(data)); err != ErrSignature {
		t.Errorf("ReadBMP with bad signature = %v, want ErrSignature", err)
	}
}

func TestReadBMPTruncatedHeader(t *testing.T) {
	data := []byte{0x42, 0x4d, 0x00} // "BM" then nothing
	if _, err := ReadBMP(bytes.NewReader(data)); err != ErrTruncated {
		t.Errorf("ReadBMP with truncated header = %v, want ErrTruncated", err)
	}
}

func TestReadBMPRejectsUnsupportedBPP(t *testing.T) {
	src := buffer.New(geom.IntSize{W: 1, H: 1})
	var buf bytes.Buffer
	WriteBMP(&buf, src, QualityColor24)
	raw := buf.Bytes()
	// BPP field lives at offset 14 (file header) + 14 (into info header).
	raw[28] = 1 // corrupt BPP to 1
	raw[29] = 0

	_, err := ReadBMP(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedBPP) {
		t.Errorf("err = %v, want a CodecError wrapping ErrUnsupportedBPP", err)
	}
}
