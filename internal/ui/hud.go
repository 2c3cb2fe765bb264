//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"gridsnake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the height in pixels of the status strip above the board.
const HUDHeight = 20

// HUD renders the score strip above the board.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{width: width}
}

// Draw paints the status line for g.
func (h *HUD) Draw(screen *ebiten.Image, g *snake.Game, auto bool) {
	if h == nil || g == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	status := fmt.Sprintf("score %d  tick %d  %s", g.Score(), g.Tick(), g.Snake().Dir())
	if auto {
		status += "  [auto]"
	}
	text.Draw(h.panel, status, basicfont.Face7x13, 4, 14, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
