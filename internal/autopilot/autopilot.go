// Package autopilot steers a snake greedily toward the food while avoiding
// moves that end the game on the next tick.
package autopilot

import "gridsnake/pkg/snake"

var headings = [...]snake.Direction{snake.Up, snake.Right, snake.Down, snake.Left}

var inputFor = map[snake.Direction]snake.Input{
	snake.Up:    snake.InputUp,
	snake.Down:  snake.InputDown,
	snake.Left:  snake.InputLeft,
	snake.Right: snake.InputRight,
}

// Choose returns the input to queue for the next tick. It returns
// snake.InputNone when keeping the current heading is the best option or
// no safe move exists.
func Choose(g *snake.Game) snake.Input {
	s := g.Snake()
	head, ok := s.Head()
	if !ok || !g.IsOngoing() {
		return snake.InputNone
	}
	food := g.Food()

	best, bestDist, found := s.Dir(), 0, false
	for _, d := range headings {
		if d == s.Dir().Opposite() {
			continue
		}
		next := head.Add(d.Offset())
		if IsDanger(g, next) {
			continue
		}
		dist := manhattan(next, food)
		if !found || dist < bestDist || (dist == bestDist && d == s.Dir()) {
			best, bestDist, found = d, dist, true
		}
	}
	if !found || best == s.Dir() {
		return snake.InputNone
	}
	return inputFor[best]
}

// IsDanger reports whether moving the head onto p loses the game. The tail
// cell counts as free unless growth is pending, since it moves away on the
// same step.
func IsDanger(g *snake.Game, p snake.Point) bool {
	if g.Grid().OutOfBounds(p) {
		return true
	}
	if p == g.Food() {
		return false
	}
	s := g.Snake()
	body := s.Body()
	if s.Growth() <= 0 && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

func manhattan(a, b snake.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
