package geom

// Point is a floating-point 2D coordinate, used for paths, affine frames
// and anywhere sub-pixel precision matters.
type Point struct {
	X, Y float64
}

// IntPoint is a pixel-grid coordinate, used for bitmap addressing.
type IntPoint struct {
	X, Y int
}

func (p Point) Add(o Point) Point      { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point      { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(k float64) Point  { return Point{p.X * k, p.Y * k} }
func (p IntPoint) Add(o IntPoint) IntPoint { return IntPoint{p.X + o.X, p.Y + o.Y} }
func (p IntPoint) Sub(o IntPoint) IntPoint { return IntPoint{p.X - o.X, p.Y - o.Y} }

// Floated converts an IntPoint to a Point.
func Floated(p IntPoint) Point { return Point{float64(p.X), float64(p.Y)} }

// Floored truncates a Point to the IntPoint containing it (component-wise floor).
func Floored(p Point) IntPoint { return IntPoint{IFloor(p.X), IFloor(p.Y)} }

// Rounded rounds a Point to the nearest IntPoint.
func Rounded(p Point) IntPoint { return IntPoint{IRound(p.X), IRound(p.Y)} }

// Size is a floating-point width/height pair.
type Size struct {
	W, H float64
}

// IntSize is a pixel-grid width/height pair.
type IntSize struct {
	W, H int
}

func (s IntSize) Area() int { return s.W * s.H }

// Rect is an axis-aligned floating-point rectangle, (X1,Y1) the top-left
// corner and (X2,Y2) the bottom-right, not necessarily normalized.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// IntRect is the pixel-grid equivalent of Rect.
type IntRect struct {
	X1, Y1, X2, Y2 int
}

// NewIntRectWH builds a rect from a top-left point and a size.
func NewIntRectWH(topLeft IntPoint, size IntSize) IntRect {
	return IntRect{topLeft.X, topLeft.Y, topLeft.X + size.W, topLeft.Y + size.H}
}

func (r IntRect) Size() IntSize   { return IntSize{r.X2 - r.X1, r.Y2 - r.Y1} }
func (r IntRect) TopLeft() IntPoint { return IntPoint{r.X1, r.Y1} }
func (r IntRect) Empty() bool     { return r.X2 <= r.X1 || r.Y2 <= r.Y1 }

// Normalize swaps coordinates as needed so X1<=X2 and Y1<=Y2.
func (r *IntRect) Normalize() {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
}

// Intersect clips r against other, returning the overlap and whether it's
// non-empty.
func (r IntRect) Intersect(other IntRect) (IntRect, bool) {
	result := IntRect{
		X1: max(r.X1, other.X1),
		Y1: max(r.Y1, other.Y1),
		X2: min(r.X2, other.X2),
		Y2: min(r.Y2, other.Y2),
	}
	return result, !result.Empty()
}

// Contains reports whether p lies within the rectangle (half-open: X2/Y2
// exclusive), matching the bitmap addressing convention.
func (r IntRect) Contains(p IntPoint) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Radian is an angle in radians; degrees only ever appear at the UI/text
// boundary, never in the core's internal arithmetic.
type Radian float64

func RadianFromDegrees(deg float64) Radian { return Radian(Deg2RadF(deg)) }
func (r Radian) Degrees() float64          { return Rad2DegF(float64(r)) }

// Scale is a pair of independent X/Y scale factors; negative components
// indicate a flip about the corresponding axis.
type Scale struct {
	X, Y float64
}
