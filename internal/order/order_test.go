package order

import "testing"

func TestBGRAOffsetsAreDistinctAndInRange(t *testing.T) {
	var ch BGRA
	offsets := []int{ch.IdxR(), ch.IdxG(), ch.IdxB(), ch.IdxA()}
	seen := make(map[int]bool)
	for _, o := range offsets {
		if o < 0 || o > 3 {
			t.Fatalf("offset %d out of the 0..3 byte range", o)
		}
		if seen[o] {
			t.Fatalf("offset %d used by more than one channel", o)
		}
		seen[o] = true
	}
	if ch.IdxB() != 0 || ch.IdxA() != 3 {
		t.Errorf("BGRA should place B first and A last in memory, got B=%d A=%d", ch.IdxB(), ch.IdxA())
	}
}

func TestRGBAOffsets(t *testing.T) {
	var ch RGBA
	if ch.IdxR() != 0 || ch.IdxG() != 1 || ch.IdxB() != 2 || ch.IdxA() != 3 {
		t.Errorf("RGBA offsets wrong: R=%d G=%d B=%d A=%d", ch.IdxR(), ch.IdxG(), ch.IdxB(), ch.IdxA())
	}
}
