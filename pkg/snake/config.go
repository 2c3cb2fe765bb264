package snake

import "strconv"

// Config controls board dimensions and randomness for a Game.
type Config struct {
	Width  int
	Height int

	// Seed drives food placement. Zero picks a clock-derived seed.
	Seed int64

	// MaxFoodAttempts bounds the random food draws before falling back to a
	// scan of free cells. Zero or less means 4 * Width * Height.
	MaxFoodAttempts int
}

// DefaultConfig returns the standard 10x10 configuration.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["food_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxFoodAttempts = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.MaxFoodAttempts <= 0 {
		c.MaxFoodAttempts = 4 * c.Width * c.Height
	}
	return c
}
