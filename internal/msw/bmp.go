package msw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/quantize"
)

const (
	bitmapFileHeaderBytes = 14
	bitmapInfoHeaderBytes = 40
	bmpSignature          = 0x4d42 // "BM", little-endian on disk
)

// Quality selects the pixel depth and palette strategy BMP/ICO frames are
// written with.
type Quality int

const (
	QualityColor24 Quality = iota
	QualityColor8
	QualityGray8
)

type bitmapFileHeader struct {
	FileType   uint16
	Length     uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

type bitmapInfoHeader struct {
	HeaderLen            uint32
	Width                int32
	Height               int32
	ColorPlanes          uint16
	BPP                  uint16
	Compression          uint32
	RawDataSize          uint32
	HorizontalResolution int32
	VerticalResolution   int32
	PaletteColors        uint32
	ImportantColors      uint32
}

// rowStride returns the BMP row stride for bpp bits-per-pixel rows of
// width w, padded up to a multiple of 4 bytes.
func rowStride(bpp, w int) int {
	return ((bpp*w + 31) / 32) * 4
}

// ReadBMP decodes an uncompressed BI_RGB 8/24/32-bpp Windows bitmap.
func ReadBMP(r io.Reader) (*buffer.Bitmap, error) {
	br := &byteReader{r: r}

	var fh bitmapFileHeader
	fh.FileType = br.u16()
	fh.Length = br.u32()
	fh.Reserved1 = br.u16()
	fh.Reserved2 = br.u16()
	fh.DataOffset = br.u32()
	if br.err != nil {
		return nil, ErrTruncated
	}
	if fh.FileType != bmpSignature {
		return nil, ErrSignature
	}

	ih, err := readInfoHeader(br)
	if err != nil {
		return nil, err
	}
	if ih.Compression != 0 {
		return nil, codecErr(ErrUnsupportedCompression, 0, fmt.Sprintf("compression=%d", ih.Compression))
	}

	size := geom.IntSize{W: int(ih.Width), H: int(abs32(ih.Height))}

	switch ih.BPP {
	case 8:
		palette, err := readColorTable(br, 256)
		if err != nil {
			return nil, err
		}
		return read8bpp(br, size, palette)
	case 24:
		return read24bpp(br, size)
	case 32:
		return read32bpp(br, size)
	default:
		return nil, codecErr(ErrUnsupportedBPP, 0, fmt.Sprintf("bpp=%d", ih.BPP))
	}
}

func readInfoHeader(br *byteReader) (bitmapInfoHeader, error) {
	var ih bitmapInfoHeader
	ih.HeaderLen = br.u32()
	ih.Width = br.i32()
	ih.Height = br.i32()
	ih.ColorPlanes = br.u16()
	ih.BPP = br.u16()
	ih.Compression = br.u32()
	ih.RawDataSize = br.u32()
	ih.HorizontalResolution = br.i32()
	ih.VerticalResolution = br.i32()
	ih.PaletteColors = br.u32()
	ih.ImportantColors = br.u32()
	if br.err != nil {
		return ih, ErrTruncated
	}
	if ih.HeaderLen < bitmapInfoHeaderBytes {
		return ih, ErrTruncated
	}
	if ih.ColorPlanes != 1 {
		return ih, codecErr(ErrUnsupportedCompression, 0, "color planes != 1")
	}
	return ih, nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func readColorTable(br *byteReader, n int) ([]buffer.Color, error) {
	colors := make([]buffer.Color, n)
	for i := range colors {
		b := br.u8()
		g := br.u8()
		r := br.u8()
		br.u8() // reserved
		colors[i] = buffer.NewColorRGB(r, g, b)
	}
	if br.err != nil {
		return nil, ErrTruncated
	}
	return colors, nil
}

// read8bpp reads palette-indexed rows, bottom-up, padded to 4 bytes.
func read8bpp(br *byteReader, size geom.IntSize, palette []buffer.Color) (*buffer.Bitmap, error) {
	stride := rowStride(8, size.W)
	pad := stride - size.W
	bmp := buffer.New(size)
	for y := 0; y < size.H; y++ {
		dstY := size.H - y - 1
		for x := 0; x < size.W; x++ {
			idx := br.u8()
			if int(idx) >= len(palette) {
				buffer.PutPixelRaw(bmp, x, dstY, buffer.ColorBlack)
				continue
			}
			buffer.PutPixelRaw(bmp, x, dstY, palette[idx])
		}
		br.skip(pad)
	}
	if br.err != nil {
		return nil, ErrTruncated
	}
	return bmp, nil
}

func read24bpp(br *byteReader, size geom.IntSize) (*buffer.Bitmap, error) {
	stride := rowStride(24, size.W)
	pad := stride - size.W*3
	bmp := buffer.New(size)
	for y := 0; y < size.H; y++ {
		dstY := size.H - y - 1
		for x := 0; x < size.W; x++ {
			b := br.u8()
			g := br.u8()
			r := br.u8()
			buffer.PutPixelRaw(bmp, x, dstY, buffer.NewColorRGB(r, g, b))
		}
		br.skip(pad)
	}
	if br.err != nil {
		return nil, ErrTruncated
	}
	return bmp, nil
}

func read32bpp(br *byteReader, size geom.IntSize) (*buffer.Bitmap, error) {
	bmp := buffer.New(size)
	for y := 0; y < size.H; y++ {
		dstY := size.H - y - 1
		for x := 0; x < size.W; x++ {
			b := br.u8()
			g := br.u8()
			r := br.u8()
			a := br.u8()
			buffer.PutPixelRaw(bmp, x, dstY, buffer.NewColor(r, g, b, a))
		}
	}
	if br.err != nil {
		return nil, ErrTruncated
	}
	return bmp, nil
}

// WriteBMP encodes bmp as an uncompressed BI_RGB bitmap at the requested
// quality.
func WriteBMP(w io.Writer, bmp *buffer.Bitmap, quality Quality) SaveResult {
	size := bmp.Size()
	bpp := 24
	if quality != QualityColor24 {
		bpp = 8
	}
	stride := rowStride(bpp, size.W)
	paletteBytes := 0
	if bpp == 8 {
		paletteBytes = 1024
	}

	var buf bytes.Buffer
	fh := bitmapFileHeader{
		FileType:   bmpSignature,
		Length:     uint32(bitmapFileHeaderBytes + bitmapInfoHeaderBytes + paletteBytes + stride*size.H),
		DataOffset: uint32(bitmapFileHeaderBytes + bitmapInfoHeaderBytes + paletteBytes),
	}
	binary.Write(&buf, binary.LittleEndian, fh.FileType)
	binary.Write(&buf, binary.LittleEndian, fh.Length)
	binary.Write(&buf, binary.LittleEndian, fh.Reserved1)
	binary.Write(&buf, binary.LittleEndian, fh.Reserved2)
	binary.Write(&buf, binary.LittleEndian, fh.DataOffset)

	ih := bitmapInfoHeader{
		HeaderLen:   bitmapInfoHeaderBytes,
		Width:       int32(size.W),
		Height:      int32(size.H),
		ColorPlanes: 1,
		BPP:         uint16(bpp),
	}
	binary.Write(&buf, binary.LittleEndian, ih.HeaderLen)
	binary.Write(&buf, binary.LittleEndian, ih.Width)
	binary.Write(&buf, binary.LittleEndian, ih.Height)
	binary.Write(&buf, binary.LittleEndian, ih.ColorPlanes)
	binary.Write(&buf, binary.LittleEndian, ih.BPP)
	binary.Write(&buf, binary.LittleEndian, ih.Compression)
	binary.Write(&buf, binary.LittleEndian, ih.RawDataSize)
	binary.Write(&buf, binary.LittleEndian, ih.HorizontalResolution)
	binary.Write(&buf, binary.LittleEndian, ih.VerticalResolution)
	binary.Write(&buf, binary.LittleEndian, ih.PaletteColors)
	binary.Write(&buf, binary.LittleEndian, ih.ImportantColors)

	switch quality {
	case QualityColor8:
		writeIndexedPixels(&buf, bmp, quality)
	case QualityGray8:
		writeIndexedPixels(&buf, bmp, quality)
	default:
		write24bpp(&buf, bmp)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return SaveFailed(err)
	}
	return SaveSuccessful()
}

func writeIndexedPixels(buf *bytes.Buffer, bmp *buffer.Bitmap, quality Quality) {
	size := bmp.Size()
	if quality == QualityGray8 {
		for i := 0; i < 256; i++ {
			buf.WriteByte(byte(i))
			buf.WriteByte(byte(i))
			buf.WriteByte(byte(i))
			buf.WriteByte(0)
		}
		pad := rowStride(8, size.W) - size.W
		for y := size.H - 1; y >= 0; y-- {
			for x := 0; x < size.W; x++ {
				c := buffer.GetColorRaw(bmp, x, y)
				buf.WriteByte(byte((int(c.B) + int(c.G) + int(c.R)) / 3))
			}
			for i := 0; i < pad; i++ {
				buf.WriteByte(0)
			}
		}
		return
	}

	indexes, palette := quantize.Quantized(bmp)
	n := palette.NumColors()
	for i := 0; i < n; i++ {
		c := palette.GetColor(i)
		buf.WriteByte(c.B)
		buf.WriteByte(c.G)
		buf.WriteByte(c.R)
		buf.WriteByte(0)
	}
	for i := n; i < 256; i++ {
		buf.WriteByte(0)
		buf.WriteByte(0)
		buf.WriteByte(0)
		buf.WriteByte(0)
	}

	pad := rowStride(8, size.W) - size.W
	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			buf.WriteByte(indexes.Get(x, y))
		}
		for i := 0; i < pad; i++ {
			buf.WriteByte(0)
		}
	}
}

func write24bpp(buf *bytes.Buffer, bmp *buffer.Bitmap) {
	size := bmp.Size()
	pad := rowStride(24, size.W) - size.W*3
	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			buf.WriteByte(c.B)
			buf.WriteByte(c.G)
			buf.WriteByte(c.R)
		}
		for i := 0; i < pad; i++ {
			buf.WriteByte(0)
		}
	}
}

// byteReader is a small little-endian cursor over an io.Reader,
// latching the first error seen so call sites don't need to check each
// read individually.
type byteReader struct {
	r   io.Reader
	err error
}

func (b *byteReader) read(n int) []byte {
	if b.err != nil {
		return make([]byte, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		b.err = err
	}
	return buf
}

func (b *byteReader) u8() uint8   { return b.read(1)[0] }
func (b *byteReader) u16() uint16 { return binary.LittleEndian.Uint16(b.read(2)) }
func (b *byteReader) u32() uint32 { return binary.LittleEndian.Uint32(b.read(4)) }
func (b *byteReader) i32() int32  { return int32(b.u32()) }
func (b *byteReader) skip(n int) {
	if n <= 0 {
		return
	}
	b.read(n)
}
