package snake

import "gridsnake/pkg/core"

// Food is the single collectible on the board.
type Food struct {
	Position Point

	grid Grid
	rng  *core.RNG
}

// NewFood returns food parked at the origin. Call Reset before use.
func NewFood(grid Grid, rng *core.RNG) *Food {
	return &Food{grid: grid, rng: rng}
}

// Reset draws a new uniformly random position on the grid and returns it.
// It does not avoid the snake; Game retries until the cell is free.
func (f *Food) Reset() Point {
	f.Position = Point{
		X: f.rng.IntN(f.grid.Width),
		Y: f.rng.IntN(f.grid.Height),
	}
	return f.Position
}
