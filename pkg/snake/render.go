package snake

import (
	"io"
	"strings"
)

// Glyphs used by the text projection.
const (
	BorderGlyph = '#'
	SnakeGlyph  = 'O'
	FoodGlyph   = '*'
	BlankGlyph  = ' '
)

// Cell values written by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Text renders the board as (Width+2) x (Height+2) glyphs, border included.
// Every glyph is followed by a space and every row ends with a newline.
func (g *Game) Text() string {
	rowLen := 2*(g.grid.Width+2) + 1
	var b strings.Builder
	b.Grow(rowLen * (g.grid.Height + 2))
	g.writeText(&b)
	return b.String()
}

// WriteText writes the Text projection to w.
func (g *Game) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, g.Text())
	return err
}

func (g *Game) writeText(b *strings.Builder) {
	w, h := g.grid.Width, g.grid.Height
	for y := -1; y <= h; y++ {
		for x := -1; x <= w; x++ {
			b.WriteRune(g.glyphAt(x, y))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
}

func (g *Game) glyphAt(x, y int) rune {
	p := Point{X: x, Y: y}
	switch {
	case g.grid.OutOfBounds(p):
		return BorderGlyph
	case g.snake.InSelf(p):
		return SnakeGlyph
	case g.food.Position == p:
		return FoodGlyph
	}
	return BlankGlyph
}

// Cells returns a Width x Height row-major buffer of Cell values for pixel
// renderers. The slice is reused by the next call.
func (g *Game) Cells() []uint8 {
	g.display.Clear()
	g.display.Set(g.food.Position.X, g.food.Position.Y, CellFood)
	for i := len(g.snake.body) - 1; i >= 0; i-- {
		seg := g.snake.body[i]
		v := CellBody
		if i == 0 {
			v = CellHead
		}
		g.display.Set(seg.X, seg.Y, v)
	}
	return g.display.Cells()
}
