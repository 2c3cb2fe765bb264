package snake

import (
	"github.com/google/uuid"

	"gridsnake/internal/core"
	pcore "gridsnake/pkg/core"
)

// State is the lifecycle of a game session.
type State uint8

const (
	Ongoing State = iota
	Defeat
	// Win is terminal but no rule produces it yet.
	Win
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Defeat:
		return "defeat"
	case Win:
		return "win"
	}
	return "unknown"
}

// Input is an abstract signal collected by a driver during one tick.
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
)

// Game owns the board, the snake and the food for one play session. It is
// not safe for concurrent use.
type Game struct {
	id    string
	cfg   Config
	grid  Grid
	snake *Snake
	food  *Food
	state State
	tick  int

	rng     *pcore.RNG
	scratch *core.ByteGrid
	display *core.ByteGrid
}

// New starts a session on a width x height board with a clock-derived seed.
func New(width, height int) *Game {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig starts a session using cfg. A zero seed is replaced with a
// clock-derived one; Config reports the seed actually used.
func NewWithConfig(cfg Config) *Game {
	cfg = cfg.normalized()
	if cfg.Seed == 0 {
		cfg.Seed = pcore.ClockSeed()
	}

	g := &Game{
		id:      uuid.New().String(),
		cfg:     cfg,
		grid:    Grid{Width: cfg.Width, Height: cfg.Height},
		snake:   NewSnake(Right),
		state:   Ongoing,
		rng:     pcore.NewRNG(cfg.Seed),
		scratch: core.NewByteGrid(cfg.Width, cfg.Height),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	g.snake.Place(g.grid.Center())
	g.food = NewFood(g.grid, g.rng)
	g.placeFood()
	return g
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// Config returns the normalized configuration, including the effective seed.
func (g *Game) Config() Config { return g.cfg }

// Grid returns the board dimensions.
func (g *Game) Grid() Grid { return g.grid }

// Snake exposes the snake for rendering. Callers must not mutate it.
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the current food position.
func (g *Game) Food() Point { return g.food.Position }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// IsOngoing reports whether the session still accepts updates.
func (g *Game) IsOngoing() bool { return g.state == Ongoing }

// Tick returns the number of completed movement steps.
func (g *Game) Tick() int { return g.tick }

// Score returns the length the snake has reached, counting growth that was
// earned but not yet laid down. It never decreases.
func (g *Game) Score() int { return g.snake.Len() + g.snake.Growth() }

// Update applies one tick: queued inputs in order, exactly one step, then
// collision resolution (food, wall, body). Calls after the game has ended
// are no-ops. The resulting state is returned.
func (g *Game) Update(inputs []Input) State {
	if g.state != Ongoing {
		return g.state
	}

	for _, in := range inputs {
		switch in {
		case InputUp:
			g.snake.SetDir(Up)
		case InputDown:
			g.snake.SetDir(Down)
		case InputLeft:
			g.snake.SetDir(Left)
		case InputRight:
			g.snake.SetDir(Right)
		case InputQuit:
			g.state = Defeat
			return g.state
		}
	}

	g.snake.Step()
	g.tick++

	head, _ := g.snake.Head()
	switch {
	case head == g.food.Position:
		g.snake.AddGrowth(1)
		g.placeFood()
	case g.grid.OutOfBounds(head):
		g.state = Defeat
	case g.snake.HitsBody():
		g.state = Defeat
	}
	return g.state
}

// placeFood resets the food until it lands off the snake. After
// MaxFoodAttempts misses it picks uniformly among the free cells instead.
// It returns false only when the snake covers the whole board, in which
// case the food is left where it was.
func (g *Game) placeFood() bool {
	for i := 0; i < g.cfg.MaxFoodAttempts; i++ {
		if !g.snake.InSelf(g.food.Reset()) {
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return false
	}
	g.food.Position = free[g.rng.IntN(len(free))]
	return true
}

func (g *Game) freeCells() []Point {
	g.scratch.Clear()
	for _, seg := range g.snake.body {
		g.scratch.Set(seg.X, seg.Y, 1)
	}
	var free []Point
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.scratch.At(x, y) == 0 {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	return free
}

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputQuit:
		return "quit"
	}
	return "unknown"
}
