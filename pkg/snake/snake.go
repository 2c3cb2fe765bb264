package snake

// Snake holds the body segments head-first, the pending growth and the
// current heading.
type Snake struct {
	body   []Point
	growth int
	dir    Direction
}

// NewSnake returns a snake with an empty body heading in dir.
func NewSnake(dir Direction) *Snake {
	return &Snake{dir: dir}
}

// Place appends a segment at the tail end. Games use it to seed the
// initial head.
func (s *Snake) Place(p Point) {
	s.body = append(s.body, p)
}

// AddGrowth defers tail removal for n more steps.
func (s *Snake) AddGrowth(n int) {
	s.growth += n
}

// Growth returns the number of pending growth steps.
func (s *Snake) Growth() int { return s.growth }

// Dir returns the current heading.
func (s *Snake) Dir() Direction { return s.dir }

// SetDir changes the heading unless d would reverse the snake into its neck.
func (s *Snake) SetDir(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// Head returns the first segment. ok is false only before the snake has
// been placed.
func (s *Snake) Head() (p Point, ok bool) {
	if len(s.body) == 0 {
		return Point{}, false
	}
	return s.body[0], true
}

// Len returns the number of body segments.
func (s *Snake) Len() int { return len(s.body) }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	return append([]Point(nil), s.body...)
}

// Step moves the snake one cell along its heading. The tail is kept while
// growth is pending. Step panics on an unplaced snake.
func (s *Snake) Step() {
	head, ok := s.Head()
	if !ok {
		panic("snake: Step called on a snake with no body")
	}
	next := head.Add(s.dir.Offset())

	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	if s.growth <= 0 {
		s.body = s.body[:len(s.body)-1]
		return
	}
	s.growth--
}

// InSelf reports whether any segment, head included, occupies p.
func (s *Snake) InSelf(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsBody reports whether the head overlaps any other segment.
func (s *Snake) HitsBody() bool {
	head, ok := s.Head()
	if !ok {
		return false
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
