package snake

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextLayout(t *testing.T) {
	g := newTestGame(t, 3, 3, 1)
	g.food.Position = Point{0, 2}

	want := "# # # # # \n" +
		"#       # \n" +
		"#   O   # \n" +
		"# *     # \n" +
		"# # # # # \n"

	if got := g.Text(); got != want {
		t.Fatalf("Text mismatch\n got:\n%q\nwant:\n%q", got, want)
	}

	var buf bytes.Buffer
	if err := g.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != want {
		t.Fatal("WriteText differs from Text")
	}
}

func TestTextDimensions(t *testing.T) {
	g := newTestGame(t, 7, 4, 1)
	rows := strings.Split(strings.TrimSuffix(g.Text(), "\n"), "\n")
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	for i, row := range rows {
		if len(row) != 2*9 {
			t.Fatalf("row %d has %d bytes, want %d", i, len(row), 2*9)
		}
	}
	if strings.Count(g.Text(), string(FoodGlyph)) != 1 {
		t.Fatal("expected exactly one food glyph")
	}
}

func TestCells(t *testing.T) {
	g := newTestGame(t, 4, 3, 1)
	g.snake = placed(Right, Point{2, 1}, Point{1, 1}, Point{1, 2})
	g.food.Position = Point{3, 0}

	cells := g.Cells()
	if len(cells) != 12 {
		t.Fatalf("len(cells) = %d, want 12", len(cells))
	}
	at := func(x, y int) uint8 { return cells[y*4+x] }
	if at(2, 1) != CellHead || at(1, 1) != CellBody || at(1, 2) != CellBody {
		t.Fatal("snake cells not painted")
	}
	if at(3, 0) != CellFood {
		t.Fatal("food cell not painted")
	}
	if at(0, 0) != CellEmpty {
		t.Fatal("free cell not empty")
	}
}
