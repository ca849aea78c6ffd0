package geom

import "testing"

func TestIntRectNormalize(t *testing.T) {
	r := IntRect{X1: 10, Y1: 10, X2: 0, Y2: 0}
	r.Normalize()
	if r.X1 != 0 || r.X2 != 10 || r.Y1 != 0 || r.Y2 != 10 {
		t.Fatalf("Normalize produced %+v", r)
	}
}

func TestIntRectIntersect(t *testing.T) {
	a := IntRect{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := IntRect{X1: 5, Y1: 5, X2: 15, Y2: 15}
	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	want := IntRect{X1: 5, Y1: 5, X2: 10, Y2: 10}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	c := IntRect{X1: 20, Y1: 20, X2: 30, Y2: 30}
	if _, ok := a.Intersect(c); ok {
		t.Fatal("expected no overlap")
	}
}

func TestIntRectContains(t *testing.T) {
	r := IntRect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	if !r.Contains(IntPoint{X: 0, Y: 0}) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(IntPoint{X: 4, Y: 4}) {
		t.Error("bottom-right corner is exclusive, should not be contained")
	}
	if r.Contains(IntPoint{X: -1, Y: 0}) {
		t.Error("point outside rect reported as contained")
	}
}

func TestIntRectEmpty(t *testing.T) {
	if !(IntRect{X1: 5, Y1: 5, X2: 5, Y2: 5}).Empty() {
		t.Error("zero-area rect should be empty")
	}
	if (IntRect{X1: 0, Y1: 0, X2: 1, Y2: 1}).Empty() {
		t.Error("non-zero-area rect should not be empty")
	}
}

func TestFloatIntConversions(t *testing.T) {
	p := Point{X: 3.7, Y: -1.2}
	if got := Floored(p); got != (IntPoint{X: 3, Y: -2}) {
		t.Errorf("Floored(%v) = %v", p, got)
	}
	if got := Rounded(p); got != (IntPoint{X: 4, Y: -1}) {
		t.Errorf("Rounded(%v) = %v", p, got)
	}
	ip := IntPoint{X: 5, Y: 6}
	if got := Floated(ip); got != (Point{X: 5, Y: 6}) {
		t.Errorf("Floated(%v) = %v", ip, got)
	}
}

func TestRadianDegreesRoundTrip(t *testing.T) {
	r := RadianFromDegrees(180)
	if d := r.Degrees(); d < 179.999 || d > 180.001 {
		t.Errorf("Degrees() = %v, want ~180", d)
	}
}
