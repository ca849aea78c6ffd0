package faint

import (
	"io"

	"github.com/faint-gfx/core/internal/msw"
)

// Quality selects the pixel depth and palette strategy BMP/ICO frames are
// written with.
type Quality = msw.Quality

const (
	QualityColor24 = msw.QualityColor24
	QualityColor8  = msw.QualityColor8
	QualityGray8   = msw.QualityGray8
)

// Frame is one decoded image from an ICO or CUR container.
type Frame = msw.Frame

// SaveResult is the outcome of a write operation: either success, or a
// failure carrying the first error encountered.
type SaveResult = msw.SaveResult

// CodecError wraps a codec error with the offending frame's index within a
// multi-frame container and a short diagnostic detail.
type CodecError = msw.CodecError

// Sentinel codec errors, matching one taxonomy entry each: structural I/O
// failure, signature/compatibility mismatch, or invalid semantic value.
var (
	ErrSignature             = msw.ErrSignature
	ErrUnsupportedCompression = msw.ErrUnsupportedCompression
	ErrUnsupportedBPP        = msw.ErrUnsupportedBPP
	ErrTruncated             = msw.ErrTruncated
	ErrReservedNonZero       = msw.ErrReservedNonZero
	ErrNoImages              = msw.ErrNoImages
	ErrWrongIconType         = msw.ErrWrongIconType
	ErrInvalidSize           = msw.ErrInvalidSize
)

// ReadBMP decodes an uncompressed BI_RGB 8/24/32-bpp Windows bitmap.
func ReadBMP(r io.Reader) (*Bitmap, error) { return msw.ReadBMP(r) }

// WriteBMP encodes b as an uncompressed BI_RGB bitmap at the requested
// quality.
func WriteBMP(w io.Writer, b *Bitmap, quality Quality) SaveResult {
	return msw.WriteBMP(w, b, quality)
}

// ReadICO decodes an .ico container's frames, including embedded PNG frames.
func ReadICO(r io.Reader) ([]Frame, error) { return msw.ReadICO(r) }

// WriteICO encodes bitmaps as a 32bpp .ico container.
func WriteICO(w io.Writer, bitmaps []*Bitmap) SaveResult { return msw.WriteICO(w, bitmaps) }

// WriteICOIndexed encodes bitmaps as a palette-indexed .ico container at bpp
// bits per pixel (1, 4 or 8), quantizing each frame to its own palette.
func WriteICOIndexed(w io.Writer, bitmaps []*Bitmap, bpp int) SaveResult {
	return msw.WriteICOIndexed(w, bitmaps, bpp)
}

// ReadCUR decodes a .cur container's frames, including each frame's hotspot.
func ReadCUR(r io.Reader) ([]Frame, error) { return msw.ReadCUR(r) }

// WriteCUR encodes bitmaps as a 32bpp .cur container with the given
// per-frame hotspots.
func WriteCUR(w io.Writer, bitmaps []*Bitmap, hotspots []IntPoint) SaveResult {
	return msw.WriteCUR(w, bitmaps, hotspots)
}

// WriteCURIndexed is WriteCUR at a palette-indexed bit depth (1, 4 or 8).
func WriteCURIndexed(w io.Writer, bitmaps []*Bitmap, hotspots []IntPoint, bpp int) SaveResult {
	return msw.WriteCURIndexed(w, bitmaps, hotspots, bpp)
}
