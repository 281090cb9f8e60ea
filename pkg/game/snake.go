package game

// Snake is the ordered body of the player snake, head first. It is owned by
// the session and mutated only through the step function.
type Snake struct {
	body   []Point
	growth int // tail pops deferred by pending growth
}

// NewSnake builds a snake of the given length with its head at head, laid out
// backwards along dir.
func NewSnake(head Point, dir Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := Point{X: -dir.X, Y: -dir.Y}
	body := make([]Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = Wrap(body[i-1], back)
	}
	return &Snake{body: body}
}

// Head returns the head segment.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Hits reports whether p coincides with any body segment.
func (s *Snake) Hits(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Grow defers n segments of growth across the next n steps.
func (s *Snake) Grow(n int) {
	s.growth += n
}

// PendingGrowth returns the deferred growth still to be applied.
func (s *Snake) PendingGrowth() int {
	return s.growth
}

// Push prepends a new head segment. The tail is resolved separately by
// Settle so consumption can be checked against the full candidate body.
func (s *Snake) Push(head Point) {
	s.body = append([]Point{head}, s.body...)
}

// Settle finishes a step: if growth is pending the tail stays and the
// counter drops by one, otherwise the tail segment is removed.
func (s *Snake) Settle() {
	if s.growth > 0 {
		s.growth--
		return
	}
	s.body = s.body[:len(s.body)-1]
}
