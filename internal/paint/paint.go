// Package paint implements Faint's Paint variant and its dispatch to a
// per-pixel PixelSource, the generalization of AGG's span generators to
// Faint's non-antialiased, straight-alpha Color model.
package paint

import (
	"math"

	"github.com/faint-gfx/core/internal/buffer"
	"github.com/faint-gfx/core/internal/geom"
)

// PixelSource maps a pixel coordinate to a Color; every drawing primitive
// that accepts a Paint dispatches once, up front, to one of these.
type PixelSource interface {
	At(x, y int) buffer.Color
}

// ColorSource always returns the same solid color.
type ColorSource struct{ C buffer.Color }

func (s ColorSource) At(x, y int) buffer.Color { return s.C }

// Pattern wraps a bitmap sampled with (x,y) modulo-wrapped around an
// anchor offset.
type Pattern struct {
	Bitmap *buffer.Bitmap
	Anchor geom.IntPoint
}

// PatternSource samples a Pattern with modulo wrap.
type PatternSource struct{ P Pattern }

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func (s PatternSource) At(x, y int) buffer.Color {
	size := s.P.Bitmap.Size()
	if size.W == 0 || size.H == 0 {
		return buffer.ColorTransparent
	}
	px := mod(x+s.P.Anchor.X, size.W)
	py := mod(y+s.P.Anchor.Y, size.H)
	return buffer.GetColorRaw(s.P.Bitmap, px, py)
}

// ColorStop is one offset/color pair of a gradient.
type ColorStop struct {
	Offset float64
	Color  buffer.Color
}

// LinearGradient varies color along a single axis at Angle, across the
// bounding rect supplied at dispatch time.
type LinearGradient struct {
	Stops []ColorStop
	Angle geom.Radian
}

// RadialGradient varies color by distance from Center out to the Radii
// ellipse. Focal is carried with the gradient but not used when sampling.
type RadialGradient struct {
	Stops  []ColorStop
	Center geom.Point
	Focal  geom.Point
	Radii  geom.Size
}

func sampleStops(stops []ColorStop, t float64) buffer.Color {
	if len(stops) == 0 {
		return buffer.ColorTransparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return a.Color
			}
			k := (t - a.Offset) / span
			return a.Color.Gradient(b.Color, k)
		}
	}
	return last.Color
}

// GradientSource samples a Linear or Radial gradient projected onto a
// bounding rect established when the drawing primitive was dispatched.
type GradientSource struct {
	Linear  *LinearGradient
	Radial  *RadialGradient
	Bounds  geom.Rect
}

func (s GradientSource) At(x, y int) buffer.Color {
	p := geom.Point{X: float64(x), Y: float64(y)}
	switch {
	case s.Linear != nil:
		return s.linearAt(p)
	case s.Radial != nil:
		return s.radialAt(p)
	default:
		return buffer.ColorTransparent
	}
}

func (s GradientSource) linearAt(p geom.Point) buffer.Color {
	g := s.Linear
	w := s.Bounds.X2 - s.Bounds.X1
	h := s.Bounds.Y2 - s.Bounds.Y1
	// Project (p - topLeft) onto the gradient axis, normalized by the
	// bounding rect's extent along that axis.
	dx := p.X - s.Bounds.X1
	dy := p.Y - s.Bounds.Y1
	axisX, axisY := cosSin(g.Angle)
	proj := dx*axisX + dy*axisY
	extent := w*axisX + h*axisY
	if extent == 0 {
		extent = 1
	}
	t := proj / extent
	return sampleStops(g.Stops, t)
}

func (s GradientSource) radialAt(p geom.Point) buffer.Color {
	g := s.Radial
	if g.Radii.W == 0 || g.Radii.H == 0 {
		return sampleStops(g.Stops, 0)
	}
	dx := (p.X - g.Center.X) / g.Radii.W
	dy := (p.Y - g.Center.Y) / g.Radii.H
	dist := dx*dx + dy*dy
	if dist < 0 {
		dist = 0
	}
	t := math.Sqrt(dist)
	return sampleStops(g.Stops, t)
}

func cosSin(r geom.Radian) (float64, float64) {
	s, c := math.Sincos(float64(r))
	return c, s
}

// Paint is the tagged variant consumed by every drawing primitive: exactly
// one of Color/Pattern/Linear/Radial is meaningful, selected by Kind.
type Kind int

const (
	KindColor Kind = iota
	KindPattern
	KindLinearGradient
	KindRadialGradient
)

type Paint struct {
	Kind    Kind
	Color   buffer.Color
	Pattern Pattern
	Linear  LinearGradient
	Radial  RadialGradient
}

func FromColor(c buffer.Color) Paint { return Paint{Kind: KindColor, Color: c} }
func FromPattern(p Pattern) Paint    { return Paint{Kind: KindPattern, Pattern: p} }
func FromLinearGradient(g LinearGradient) Paint {
	return Paint{Kind: KindLinearGradient, Linear: g}
}
func FromRadialGradient(g RadialGradient) Paint {
	return Paint{Kind: KindRadialGradient, Radial: g}
}

// Source dispatches p, given the bounding rect gradients should project
// across, to the matching PixelSource. This is the single dispatch point
// every drawing primitive uses instead of testing the variant per pixel.
func (p Paint) Source(bounds geom.Rect) PixelSource {
	switch p.Kind {
	case KindPattern:
		return PatternSource{P: p.Pattern}
	case KindLinearGradient:
		g := p.Linear
		return GradientSource{Linear: &g, Bounds: bounds}
	case KindRadialGradient:
		g := p.Radial
		return GradientSource{Radial: &g, Bounds: bounds}
	default:
		return ColorSource{C: p.Color}
	}
}

// IsGradient reports whether p is a Linear or Radial gradient; flood fill,
// boundary fill and replace-color treat gradients as unsupported per the
// original's stubbed "Fixme: Todo" paths.
func (p Paint) IsGradient() bool {
	return p.Kind == KindLinearGradient || p.Kind == KindRadialGradient
}
