package render

import (
	"image/color"

	"gridsnake/pkg/snake"
)

// Palette maps snake.Cell* values to colors.
var Palette = []color.RGBA{
	snake.CellEmpty: {R: 12, G: 14, B: 18, A: 255},
	snake.CellBody:  {R: 70, G: 170, B: 80, A: 255},
	snake.CellHead:  {R: 150, G: 230, B: 120, A: 255},
	snake.CellFood:  {R: 230, G: 70, B: 60, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
