package buffer

import "testing"

func TestColorMapAddColor(t *testing.T) {
	m := NewColorMap()
	idx, ok := m.AddColor(ColorWhite)
	if !ok || idx != 0 {
		t.Fatalf("AddColor = %d, %v, want 0, true", idx, ok)
	}
	idx2, ok := m.AddColor(ColorBlack)
	if !ok || idx2 != 1 {
		t.Fatalf("AddColor = %d, %v, want 1, true", idx2, ok)
	}
	if m.NumColors() != 2 {
		t.Errorf("NumColors = %d, want 2", m.NumColors())
	}
	if m.GetColor(0) != ColorWhite || m.GetColor(1) != ColorBlack {
		t.Error("GetColor did not return colors in insertion order")
	}
}

func TestColorMapCapacity(t *testing.T) {
	m := NewColorMap()
	for i := 0; i < 256; i++ {
		if _, ok := m.AddColor(NewColorRGB(uint8(i), 0, 0)); !ok {
			t.Fatalf("AddColor failed before reaching 256 entries, at %d", i)
		}
	}
	if _, ok := m.AddColor(ColorWhite); ok {
		t.Error("AddColor should fail once the map holds 256 colors")
	}
}

func TestBrushBounds(t *testing.T) {
	b := NewBrush(2, 2)
	b.Set(1, 1, 42)
	if got := b.At(1, 1); got != 42 {
		t.Errorf("At(1,1) = %d, want 42", got)
	}
	if got := b.At(5, 5); got != 0 {
		t.Errorf("out-of-bounds At = %d, want 0", got)
	}
	b.Set(5, 5, 99) // should be a no-op, not panic
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Enabled || g.Visible {
		t.Error("DefaultGrid should be disabled and invisible")
	}
	if g.Spacing != 10 {
		t.Errorf("DefaultGrid spacing = %d, want 10", g.Spacing)
	}
}
