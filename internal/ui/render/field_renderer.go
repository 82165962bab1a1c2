package render

import (
	"image/color"

	"github.com/ScolDev/snake/internal/domain"
	"github.com/ScolDev/snake/internal/ui/types"
)

// FieldRenderer paints a game state onto a Surface, one square per cell.
type FieldRenderer struct {
	CellSize int
	Palette  types.Palette
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
		Palette:  types.DefaultPalette(),
	}
}

func (fr *FieldRenderer) Size(field *domain.Field) (int, int) {
	return field.Width * fr.CellSize, field.Height * fr.CellSize
}

// Render draws the background, then the apple, then the snake head to tail.
func (fr *FieldRenderer) Render(surface types.Surface, state *domain.GameState) {
	if state == nil {
		return
	}

	w, h := fr.Size(state.Field)
	surface.Clear(0, 0, w, h)
	surface.FillRect(0, 0, w, h, fr.Palette.Background)

	fr.drawCell(surface, state.Apple, fr.Palette.Apple)

	for _, cell := range state.Snake.Body {
		fr.drawCell(surface, cell, fr.Palette.Snake)
	}
}

func (fr *FieldRenderer) drawCell(surface types.Surface, cell domain.Coord, c color.Color) {
	surface.FillRect(cell.X*fr.CellSize, cell.Y*fr.CellSize, fr.CellSize, fr.CellSize, c)
}
