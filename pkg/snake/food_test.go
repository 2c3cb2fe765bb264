package snake

import (
	"testing"

	pcore "gridsnake/pkg/core"
)

func TestFoodResetInRange(t *testing.T) {
	grid := Grid{Width: 4, Height: 2}
	f := NewFood(grid, pcore.NewRNG(3))
	if f.Position != (Point{}) {
		t.Fatalf("new food at %v, want origin", f.Position)
	}
	seen := map[Point]bool{}
	for i := 0; i < 400; i++ {
		p := f.Reset()
		if p != f.Position {
			t.Fatal("Reset return value differs from Position")
		}
		if grid.OutOfBounds(p) {
			t.Fatalf("food %v out of bounds", p)
		}
		seen[p] = true
	}
	if len(seen) != grid.Area() {
		t.Fatalf("reset visited %d cells, want all %d", len(seen), grid.Area())
	}
}
