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

// Overlay dims the board and shows the result once a game has ended.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the end-of-game banner over the board area. It draws
// nothing while the game is ongoing.
func (o *Overlay) Draw(screen *ebiten.Image, g *snake.Game, offsetY int) {
	if g == nil || g.IsOngoing() {
		return
	}
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()-offsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(0, float64(offsetY))
	op.ColorScale.Scale(0, 0, 0, 0.6)
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("%s - score %d", g.State(), g.Score()),
		"R restart  Q quit",
	}
	y := offsetY + h/2 - 8
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		x := (w - bounds.Dx()) / 2
		text.Draw(screen, line, face, x, y, color.RGBA{R: 235, G: 235, B: 240, A: 255})
		y += 18
	}
}
