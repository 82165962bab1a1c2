package domain

// InitialLength is the body length the snake starts with after every reset.
const InitialLength = 4

// Snake keeps its body head first. LastSquare is the cell the tail left on
// the most recent advance; eating re-attaches it.
type Snake struct {
	Body       []Coord
	LastSquare Coord
	Direction  Direction
}

// NewSnake lays the initial body out to the left of head, facing right.
func NewSnake(head Coord) *Snake {
	body := make([]Coord, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, Coord{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		Body:      body,
		Direction: DirectionRight,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// SetDirection turns the snake unless dir would reverse it onto itself.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}

// Advance shifts the body one cell forward and returns the new head.
// The length is unchanged; the vacated tail cell is kept in LastSquare.
func (s *Snake) Advance(field *Field) Coord {
	newHead := field.Move(s.Head(), s.Direction)

	s.LastSquare = s.Tail()
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	return newHead
}

// Grow re-attaches the cell vacated by the last advance.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.LastSquare)
}

// BitesItself reports whether the head shares a cell with any other segment.
func (s *Snake) BitesItself() bool {
	head := s.Head()
	for _, cell := range s.Body[1:] {
		if cell.Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(c Coord) bool {
	for _, cell := range s.Body {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) Copy() *Snake {
	body := make([]Coord, len(s.Body))
	copy(body, s.Body)
	return &Snake{
		Body:       body,
		LastSquare: s.LastSquare,
		Direction:  s.Direction,
	}
}
