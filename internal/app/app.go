//go:build ebiten

package app

import (
	"gridsnake/internal/autopilot"
	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/ui"
	"gridsnake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyInputs = map[ebiten.Key]snake.Input{
	ebiten.KeyArrowUp:    snake.InputUp,
	ebiten.KeyW:          snake.InputUp,
	ebiten.KeyK:          snake.InputUp,
	ebiten.KeyArrowDown:  snake.InputDown,
	ebiten.KeyS:          snake.InputDown,
	ebiten.KeyJ:          snake.InputDown,
	ebiten.KeyArrowLeft:  snake.InputLeft,
	ebiten.KeyA:          snake.InputLeft,
	ebiten.KeyH:          snake.InputLeft,
	ebiten.KeyArrowRight: snake.InputRight,
	ebiten.KeyD:          snake.InputRight,
	ebiten.KeyL:          snake.InputRight,
}

// Game adapts a snake session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	game    *snake.Game
	pacer   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	pending []snake.Input
	keys    []ebiten.Key
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	g := &Game{
		cfg:     cfg,
		pacer:   core.NewFixedStep(cfg.TPS),
		overlay: ui.NewOverlay(),
	}
	g.Reset()
	return g
}

// Reset starts a fresh session with the configured seed.
func (g *Game) Reset() {
	g.game = snake.NewWithConfig(g.cfg.SimConfig())
	grid := g.game.Grid()
	g.painter = render.NewGridPainter(grid.Width, grid.Height, render.Palette)
	g.hud = ui.NewHUD(grid.Width * g.cfg.Scale)
	g.pending = g.pending[:0]
	g.pacer.Reset()
}

// Session exposes the running snake game.
func (g *Game) Session() *snake.Game { return g.game }

// Update collects key presses and advances the session when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.game.IsOngoing() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Reset()
		}
		return nil
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyQ {
			g.pending = append(g.pending, snake.InputQuit)
			continue
		}
		if in, ok := keyInputs[k]; ok {
			g.pending = append(g.pending, in)
		}
	}

	if g.pacer.ShouldStep() {
		if g.cfg.Auto {
			g.pending = append(g.pending, autopilot.Choose(g.game))
		}
		g.game.Update(g.pending)
		g.pending = g.pending[:0]
	}
	return nil
}

// Draw renders the board, the HUD strip and the end-of-game overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.hud.Draw(screen, g.game, g.cfg.Auto)
	g.painter.Blit(screen, g.game.Cells(), g.cfg.Scale, ui.HUDHeight)
	g.overlay.Draw(screen, g.game, ui.HUDHeight)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.game.Grid()
	return grid.Width * g.cfg.Scale, grid.Height*g.cfg.Scale + ui.HUDHeight
}
