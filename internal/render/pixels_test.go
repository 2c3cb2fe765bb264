package render

import (
	"image/color"
	"slices"
	"testing"

	"gridsnake/pkg/snake"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{snake.CellEmpty, snake.CellHead, snake.CellFood, 200}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, Palette)

	for i, c := range cells {
		want := Palette[min(int(c), len(Palette)-1)]
		got := buf[i*4 : i*4+4]
		if !slices.Equal(got, []byte{want.R, want.G, want.B, want.A}) {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("buffer not cleared: %v", buf)
	}
}

func TestPaletteCoversCells(t *testing.T) {
	if len(Palette) != int(snake.CellFood)+1 {
		t.Fatalf("palette has %d entries", len(Palette))
	}
	if Palette[snake.CellFood] == (color.RGBA{}) {
		t.Fatal("food color unset")
	}
}
