package msw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"
	"io"

	"github.com/h2non/filetype"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/quantize"
)

const (
	iconDirLen      = 6
	iconDirEntryLen = 16
)

const (
	imageTypeIcon   = 1
	imageTypeCursor = 2
)

type iconDir struct {
	reserved   uint16
	imageType  uint16
	imageCount uint16
}

type iconDirEntry struct {
	size            geom.IntSize
	colorsInPalette int
	bpp             int // icons: bpp; cursors: hotspot y (reinterpreted by caller)
	hotspotX        int // only meaningful for cursors
	bytes           int
	offset          int
}

// Frame is one decoded image from an ICO or CUR container.
type Frame struct {
	Bitmap  *buffer.Bitmap
	Hotspot geom.IntPoint // valid only for CUR frames
}

func icoSize(b0, b1 byte) int {
	if b0 == 0 {
		return 256
	}
	return int(b0)
}

// ReadICO decodes an .ico container's frames. Embedded PNG frames (Windows
// Vista+ large icons) are recognized by signature and decoded with the
// standard library's PNG decoder rather than re-deriving the BMP path.
func ReadICO(r io.Reader) ([]Frame, error) {
	return readIconContainer(r, imageTypeIcon)
}

// ReadCUR decodes a .cur container's frames, reinterpreting each entry's
// bpp/colorPlanes fields as a hotspot (x,y) per the CUR variant of the
// format.
func ReadCUR(r io.Reader) ([]Frame, error) {
	return readIconContainer(r, imageTypeCursor)
}

func readIconContainer(r io.Reader, wantType uint16) ([]Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrTruncated
	}
	if len(data) < iconDirLen {
		return nil, ErrTruncated
	}

	dir := iconDir{
		reserved:   binary.LittleEndian.Uint16(data[0:2]),
		imageType:  binary.LittleEndian.Uint16(data[2:4]),
		imageCount: binary.LittleEndian.Uint16(data[4:6]),
	}
	if dir.reserved != 0 {
		return nil, ErrReservedNonZero
	}
	if dir.imageType != wantType {
		return nil, ErrWrongIconType
	}
	if dir.imageCount == 0 {
		return nil, ErrNoImages
	}

	entries := make([]iconDirEntry, dir.imageCount)
	pos := iconDirLen
	for i := range entries {
		if pos+iconDirEntryLen > len(data) {
			return nil, codecErr(ErrTruncated, i, "IconDirEntry")
		}
		e := data[pos : pos+iconDirEntryLen]
		w := icoSize(e[0], 0)
		h := icoSize(e[1], 0)
		colors := int(e[2])
		secondField := int(binary.LittleEndian.Uint16(e[6:8])) // bpp (icon) / hotspot y (cursor)
		firstField := int(binary.LittleEndian.Uint16(e[4:6]))  // colorPlanes (icon) / hotspot x (cursor)
		entries[i] = iconDirEntry{
			size:            geom.IntSize{W: w, H: h},
			colorsInPalette: colors,
			bpp:             secondField,
			hotspotX:        firstField,
			bytes:           int(binary.LittleEndian.Uint32(e[8:12])),
			offset:          int(binary.LittleEndian.Uint32(e[12:16])),
		}
		if entries[i].size.W <= 0 || entries[i].size.H <= 0 {
			return nil, codecErr(ErrInvalidSize, i, fmt.Sprintf("%dx%d", w, h))
		}
		pos += iconDirEntryLen
	}

	frames := make([]Frame, len(entries))
	for i, e := range entries {
		if e.offset < 0 || e.offset >= len(data) {
			return nil, codecErr(ErrTruncated, i, "frame offset out of range")
		}
		body := data[e.offset:]

		var bmp *buffer.Bitmap
		var err error
		if filetype.IsImage(body) {
			bmp, err = decodePNGFrame(body)
		} else {
			bmp, err = decodeFrameBMP(body, e)
		}
		if err != nil {
			return nil, codecErr(err, i, "")
		}

		frame := Frame{Bitmap: bmp}
		if wantType == imageTypeCursor {
			frame.Hotspot = geom.IntPoint{X: e.hotspotX, Y: e.bpp}
		}
		frames[i] = frame
	}
	return frames, nil
}

func decodePNGFrame(data []byte) (*buffer.Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrTruncated
	}
	bounds := img.Bounds()
	size := geom.IntSize{W: bounds.Dx(), H: bounds.Dy()}
	bmp := buffer.New(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buffer.PutPixelRaw(bmp, x, y, buffer.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
		}
	}
	return bmp, nil
}

// decodeFrameBMP reads a DIB-format frame: a 40-byte BITMAPINFOHEADER
// (doubled height covering the XOR and AND masks) followed by 1/4/8bpp
// indexed pixel data or 32bpp pixel data, and, for the indexed depths, a
// trailing 1bpp AND mask.
func decodeFrameBMP(body []byte, entry iconDirEntry) (*buffer.Bitmap, error) {
	if len(body) < bitmapInfoHeaderBytes {
		return nil, ErrTruncated
	}
	br := &byteReader{r: bytes.NewReader(body)}
	ih, err := readInfoHeader(br)
	if err != nil {
		return nil, err
	}
	if ih.Compression != 0 {
		return nil, ErrUnsupportedCompression
	}

	size := entry.size
	switch ih.BPP {
	case 1, 4, 8:
		return decodeIndexedIcon(br, size, int(ih.BPP))
	case 32:
		return read32bppBottomUp(br, size)
	default:
		return nil, codecErr(ErrUnsupportedBPP, 0, fmt.Sprintf("bpp=%d", ih.BPP))
	}
}

// decodeIndexedIcon reads a palette-indexed icon/cursor frame: a palette of
// 2^bpp BGRA0 entries, rows packed at bpp bits per pixel and padded to a
// 4-byte stride, then a trailing 1bpp AND mask, all stored bottom-up. 1bpp
// follows the original's read_1bpp_ico; 4bpp and 8bpp extrapolate the same
// structure to wider palettes.
func decodeIndexedIcon(br *byteReader, size geom.IntSize, bpp int) (*buffer.Bitmap, error) {
	palette, err := readColorTable(br, 1<<uint(bpp))
	if err != nil {
		return nil, err
	}

	rowSize := rowStride(bpp, size.W)
	pixelData := make([]byte, rowSize*size.H)
	for i := range pixelData {
		pixelData[i] = br.u8()
	}

	bmp := buffer.New(size)
	for y := 0; y < size.H; y++ {
		dstY := size.H - y - 1
		for x := 0; x < size.W; x++ {
			idx := indexedPixel(pixelData, rowSize, y, x, bpp)
			if idx >= len(palette) {
				return nil, ErrTruncated
			}
			buffer.PutPixelRaw(bmp, x, dstY, palette[idx])
		}
	}

	maskStride := rowStride(1, size.W)
	mask := make([]byte, maskStride*size.H)
	for i := range mask {
		mask[i] = br.u8()
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := mask[maskStride*y+x/8]
			if v&(1<<uint(7-x%8)) != 0 {
				buffer.PutPixelRaw(bmp, x, size.H-y-1, buffer.ColorTransparent)
			}
		}
	}

	if br.err != nil {
		return nil, ErrTruncated
	}
	return bmp, nil
}

// indexedPixel extracts the palette index of pixel (x,y) from row-major
// data packed at bpp bits per pixel, 1/4/8 only.
func indexedPixel(data []byte, rowSize, y, x, bpp int) int {
	switch bpp {
	case 1:
		b := data[rowSize*y+x/8]
		return int(b>>uint(7-x%8)) & 1
	case 4:
		b := data[rowSize*y+x/2]
		if x%2 == 0 {
			return int(b >> 4)
		}
		return int(b & 0x0f)
	default: // 8
		return int(data[rowSize*y+x])
	}
}

func read32bppBottomUp(br *byteReader, size geom.IntSize) (*buffer.Bitmap, error) {
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

// andMapStride returns the row stride of the 1-bit-per-pixel AND mask
// accompanying a 32bpp icon frame.
func andMapStride(w int) int {
	if w%32 == 0 {
		return w / 8
	}
	return 4 * (w/32 + 1)
}

// WriteICO encodes frames as a 32bpp .ico container. Each frame still
// carries the legacy AND mask, written with every bit set; at 32bpp the
// XOR-mask alpha alone determines visibility and the reader ignores the mask.
func WriteICO(w io.Writer, frames []*buffer.Bitmap) SaveResult {
	return writeIconContainer(w, frames, nil, imageTypeIcon, 32)
}

// WriteICOIndexed encodes frames as a palette-indexed .ico container at bpp
// bits per pixel (1, 4 or 8), quantizing each frame independently to its own
// 2^bpp-entry palette. The original never writes indexed icons itself (its
// ICO writer always emits 32bpp), so this follows the BMP file format's own
// 8bpp path (quantize.QuantizedToColors, the same octree pass WriteBMP's
// QualityColor8 uses) generalized down to 1bpp/4bpp.
func WriteICOIndexed(w io.Writer, frames []*buffer.Bitmap, bpp int) SaveResult {
	return writeIconContainer(w, frames, nil, imageTypeIcon, bpp)
}

// WriteCUR encodes frames as a 32bpp .cur container with the given
// per-frame hotspots.
func WriteCUR(w io.Writer, frames []*buffer.Bitmap, hotspots []geom.IntPoint) SaveResult {
	return writeIconContainer(w, frames, hotspots, imageTypeCursor, 32)
}

// WriteCURIndexed is WriteCUR at a palette-indexed bit depth (1, 4 or 8);
// see WriteICOIndexed.
func WriteCURIndexed(w io.Writer, frames []*buffer.Bitmap, hotspots []geom.IntPoint, bpp int) SaveResult {
	return writeIconContainer(w, frames, hotspots, imageTypeCursor, bpp)
}

func writeIconContainer(w io.Writer, frames []*buffer.Bitmap, hotspots []geom.IntPoint, imageType uint16, bpp int) SaveResult {
	for i, bmp := range frames {
		size := bmp.Size()
		if size.W > 256 || size.H > 256 {
			return SaveFailed(codecErr(ErrInvalidSize, i, fmt.Sprintf("%dx%d exceeds 256 on an axis", size.W, size.H)))
		}
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	binary.Write(&buf, binary.LittleEndian, imageType)
	binary.Write(&buf, binary.LittleEndian, uint16(len(frames)))

	type encoded struct {
		data []byte
		size geom.IntSize
	}
	bodies := make([]encoded, len(frames))
	for i, bmp := range frames {
		bodies[i] = encoded{data: encodeIconFrame(bmp, bpp), size: bmp.Size()}
	}

	// Per the ICO/CUR convention, the colors-in-palette field is the actual
	// palette size for bpp < 8 and 0 ("use bpp to determine") at 8bpp and up.
	colorsInPalette := byte(0)
	if bpp < 8 {
		colorsInPalette = byte(1 << uint(bpp))
	}

	offset := iconDirLen + iconDirEntryLen*len(frames)
	for i, body := range bodies {
		w8, h8 := byte(body.size.W), byte(body.size.H)
		if body.size.W >= 256 {
			w8 = 0
		}
		if body.size.H >= 256 {
			h8 = 0
		}
		buf.WriteByte(w8)
		buf.WriteByte(h8)
		buf.WriteByte(colorsInPalette)
		buf.WriteByte(0) // reserved

		if imageType == imageTypeCursor && hotspots != nil {
			binary.Write(&buf, binary.LittleEndian, uint16(hotspots[i].X))
			binary.Write(&buf, binary.LittleEndian, uint16(hotspots[i].Y))
		} else {
			binary.Write(&buf, binary.LittleEndian, uint16(1))     // color planes
			binary.Write(&buf, binary.LittleEndian, uint16(bpp)) // bpp
		}
		binary.Write(&buf, binary.LittleEndian, uint32(len(body.data)))
		binary.Write(&buf, binary.LittleEndian, uint32(offset))
		offset += len(body.data)
	}
	for _, body := range bodies {
		buf.Write(body.data)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return SaveFailed(err)
	}
	return SaveSuccessful()
}

func encodeIconFrame(bmp *buffer.Bitmap, bpp int) []byte {
	if bpp == 32 {
		return encode32bppIconFrame(bmp)
	}
	return encodeIndexedIconFrame(bmp, bpp)
}

func encode32bppIconFrame(bmp *buffer.Bitmap) []byte {
	size := bmp.Size()
	var buf bytes.Buffer

	ih := bitmapInfoHeader{
		HeaderLen:   bitmapInfoHeaderBytes,
		Width:       int32(size.W),
		Height:      int32(size.H * 2), // XOR + AND mask, per the ICO convention
		ColorPlanes: 1,
		BPP:         32,
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

	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			c := buffer.GetColorRaw(bmp, x, y)
			buf.WriteByte(c.B)
			buf.WriteByte(c.G)
			buf.WriteByte(c.R)
			buf.WriteByte(c.A)
		}
	}

	maskLen := andMapStride(size.W) * size.H
	for i := 0; i < maskLen; i++ {
		buf.WriteByte(0xff)
	}
	return buf.Bytes()
}

// encodeIndexedIconFrame writes a palette-indexed icon frame at bpp bits
// per pixel (1, 4 or 8): a 2^bpp-entry BGRA0 palette, rows packed at bpp
// bits per pixel and padded to a 4-byte stride, bottom-up, then an AND mask
// with every bit clear, so every pixel reads back opaque.
func encodeIndexedIconFrame(bmp *buffer.Bitmap, bpp int) []byte {
	size := bmp.Size()
	var buf bytes.Buffer

	maxColors := 1 << uint(bpp)
	indexes, palette := quantize.QuantizedToColors(bmp, maxColors)

	ih := bitmapInfoHeader{
		HeaderLen:     bitmapInfoHeaderBytes,
		Width:         int32(size.W),
		Height:        int32(size.H * 2), // XOR + AND mask, per the ICO convention
		ColorPlanes:   1,
		BPP:           uint16(bpp),
		PaletteColors: uint32(maxColors),
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

	n := palette.NumColors()
	for i := 0; i < maxColors; i++ {
		if i < n {
			c := palette.GetColor(i)
			buf.WriteByte(c.B)
			buf.WriteByte(c.G)
			buf.WriteByte(c.R)
			buf.WriteByte(0)
			continue
		}
		buf.WriteByte(0)
		buf.WriteByte(0)
		buf.WriteByte(0)
		buf.WriteByte(0)
	}

	stride := rowStride(bpp, size.W)
	row := make([]byte, stride)
	for y := size.H - 1; y >= 0; y-- {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < size.W; x++ {
			packIndexedPixel(row, x, bpp, indexes.Get(x, y))
		}
		buf.Write(row)
	}

	maskLen := andMapStride(size.W) * size.H
	for i := 0; i < maskLen; i++ {
		buf.WriteByte(0x00)
	}
	return buf.Bytes()
}

// packIndexedPixel sets pixel x's palette index into row, packed at bpp
// bits per pixel (1, 4 or 8), mirroring indexedPixel's unpacking.
func packIndexedPixel(row []byte, x, bpp int, idx uint8) {
	switch bpp {
	case 1:
		if idx&1 != 0 {
			row[x/8] |= 1 << uint(7-x%8)
		}
	case 4:
		if x%2 == 0 {
			row[x/2] |= (idx & 0x0f) << 4
		} else {
			row[x/2] |= idx & 0x0f
		}
	default: // 8
		row[x] = idx
	}
}
