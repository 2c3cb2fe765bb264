//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"gridsnake/internal/app"
	"gridsnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, err := term.Run(ctx, os.Stdin, os.Stdout, term.Options{
		Sim:  cfg.SimConfig(),
		TPS:  cfg.TPS,
		Auto: cfg.Auto,
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	if g != nil {
		fmt.Printf("%s - score %d\n", g.State(), g.Score())
	}
}
