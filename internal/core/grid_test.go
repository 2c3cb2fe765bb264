package core

import "testing"

func TestByteGridSetAt(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(-1, 0, 9)
	g.Set(4, 0, 9)

	if got := g.At(3, 2); got != 7 {
		t.Fatalf("At(3,2) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("backing slice = %d, want 7", got)
	}
	for i, v := range g.Cells() {
		if v != 0 && i != g.Index(3, 2) {
			t.Fatalf("out-of-range Set leaked into cell %d", i)
		}
	}
	if g.At(10, 10) != 0 {
		t.Fatal("At outside the grid must read as zero")
	}

	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear did not zero the grid")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("got %dx%d with %d cells, want 1x1", g.W, g.H, len(g.Cells()))
	}
}
