package app

import (
	"flag"

	"gridsnake/pkg/snake"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Auto   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := snake.DefaultConfig()
	return &Config{Width: d.Width, Height: d.Height, Scale: 24, TPS: 6}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (window build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "snake moves per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = random)")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "let the autopilot play")
}

// SimConfig converts the flags into an engine configuration.
func (c *Config) SimConfig() snake.Config {
	cfg := snake.DefaultConfig()
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	cfg.Seed = c.Seed
	return cfg
}
