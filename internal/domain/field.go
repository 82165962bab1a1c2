package domain

// Field is the grid geometry. It is fixed once the game starts.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

// FieldFromPixels derives the cell counts of a display by floor division.
func FieldFromPixels(widthPx, heightPx, cellSize int) *Field {
	if cellSize <= 0 {
		return NewField(0, 0)
	}
	return NewField(widthPx/cellSize, heightPx/cellSize)
}

// Wrap moves a coordinate that left the grid to the opposite edge.
// Only one step past an edge is expected.
func (f *Field) Wrap(c Coord) Coord {
	if c.X >= f.Width {
		c.X = 0
	}
	if c.X < 0 {
		c.X = f.Width - 1
	}
	if c.Y >= f.Height {
		c.Y = 0
	}
	if c.Y < 0 {
		c.Y = f.Height - 1
	}
	return c
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return f.Wrap(c.Add(d.Delta()))
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Center rounds half cells up, so a 7-wide grid is centered on column 4.
func (f *Field) Center() Coord {
	return Coord{
		X: (f.Width + 1) / 2,
		Y: (f.Height + 1) / 2,
	}
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}
