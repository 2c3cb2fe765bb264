package snake

// Point is an integer board coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid describes the playable region [0, Width) x [0, Height).
type Grid struct {
	Width  int
	Height int
}

// OutOfBounds reports whether p lies outside the playable region.
func (g Grid) OutOfBounds(p Point) bool {
	return p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height
}

// Area returns the number of playable cells.
func (g Grid) Area() int { return g.Width * g.Height }

// Center returns the cell the snake starts on.
func (g Grid) Center() Point { return Point{X: g.Width / 2, Y: g.Height / 2} }
