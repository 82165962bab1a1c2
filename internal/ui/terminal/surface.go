package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// ColumnsPerCell makes grid cells roughly square on a terminal, whose
// character cells are about twice as tall as they are wide.
const ColumnsPerCell = 2

// CellSurface maps one surface pixel to ColumnsPerCell terminal columns
// and one row, painting with the background color of a blank.
type CellSurface struct {
	screen tcell.Screen
}

func NewCellSurface(screen tcell.Screen) *CellSurface {
	return &CellSurface{screen: screen}
}

func (s *CellSurface) Clear(x, y, w, h int) {
	s.fill(x, y, w, h, tcell.StyleDefault)
}

func (s *CellSurface) FillRect(x, y, w, h int, c color.Color) {
	s.fill(x, y, w, h, tcell.StyleDefault.Background(toTcell(c)))
}

func (s *CellSurface) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x * ColumnsPerCell; col < (x+w)*ColumnsPerCell; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
