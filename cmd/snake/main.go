//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)
	grid := game.Session().Grid()

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(grid.Width*cfg.Scale, grid.Height*cfg.Scale+ui.HUDHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("session %s: %s, score %d", game.Session().ID(), game.Session().State(), game.Session().Score())
}
