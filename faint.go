// Package faint implements the graphics core of the Faint image editor: an
// owned ARGB32 pixel buffer, a non-antialiased rasterizer, affine and
// resampling operations, an octree color quantizer, and Windows
// bitmap/icon/cursor codecs. The editor's GUI shell, undo/redo, scripting
// and tool state machines are not part of this package.
//
// The package is organized into focused, domain-specific files, each a thin
// facade over an internal package that does the actual work:
//
//   - bitmap.go   - Bitmap/Color construction, pixel access, resampling
//   - draw.go     - line/rect/ellipse/polygon/triangle drawing and filling
//   - compose.go  - blit/blend, flood/boundary fill, color replace
//   - codec.go    - BMP and ICO/CUR read/write
//
// Basic usage:
//
//	b := faint.NewFilledBitmap(faint.IntSize{W: 100, H: 100}, faint.ColorWhite)
//	faint.DrawLine(b, faint.IntPoint{X: 0, Y: 0}, faint.IntPoint{X: 99, Y: 99}, faint.LineSettings{
//		Paint:     faint.FromColor(faint.ColorBlack),
//		LineWidth: 1,
//	})
package faint

import (
	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
	"github.com/faint-gfx/core/internal/paint"
	"github.com/faint-gfx/core/internal/raster"
)

// Re-exported core types, so callers never need to import this module's
// internal packages directly.
type (
	Bitmap       = buffer.Bitmap
	AlphaMap     = buffer.AlphaMap
	AlphaMapRef  = buffer.AlphaMapRef
	ColorMap     = buffer.ColorMap
	Color        = buffer.Color
	DstBmp       = buffer.DstBmp
	Offsat[T any] = buffer.Offsat[T]

	Paint          = paint.Paint
	Pattern        = paint.Pattern
	ColorStop      = paint.ColorStop
	LinearGradient = paint.LinearGradient
	RadialGradient = paint.RadialGradient

	Point    = geom.Point
	IntPoint = geom.IntPoint
	Size     = geom.Size
	IntSize  = geom.IntSize
	Rect     = geom.Rect
	IntRect  = geom.IntRect
	Scale    = geom.Scale
	Radian   = geom.Radian

	LineSettings = raster.LineSettings
	LineCap      = raster.LineCap
)

const (
	CapButt  = raster.CapButt
	CapRound = raster.CapRound
)

var (
	ColorBlack       = buffer.ColorBlack
	ColorWhite       = buffer.ColorWhite
	ColorTransparent = buffer.ColorTransparent
)

func NewColor(r, g, b, a uint8) Color { return buffer.NewColor(r, g, b, a) }
func NewColorRGB(r, g, b uint8) Color { return buffer.NewColorRGB(r, g, b) }

func FromColor(c Color) Paint                     { return paint.FromColor(c) }
func FromPattern(p Pattern) Paint                 { return paint.FromPattern(p) }
func FromLinearGradient(g LinearGradient) Paint   { return paint.FromLinearGradient(g) }
func FromRadialGradient(g RadialGradient) Paint   { return paint.FromRadialGradient(g) }
