package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "30", "-h", "12", "-seed", "9", "-auto", "-tps", "10"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	sim := cfg.SimConfig()
	if sim.Width != 30 || sim.Height != 12 || sim.Seed != 9 {
		t.Fatalf("unexpected sim config %+v", sim)
	}
	if !cfg.Auto || cfg.TPS != 10 {
		t.Fatalf("unexpected driver config %+v", cfg)
	}
}

func TestSimConfigKeepsDefaultsForBadSizes(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 0, -4
	sim := cfg.SimConfig()
	if sim.Width != 10 || sim.Height != 10 {
		t.Fatalf("got %dx%d, want 10x10", sim.Width, sim.Height)
	}
}
