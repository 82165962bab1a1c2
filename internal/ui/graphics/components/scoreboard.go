package components

import (
	"fmt"

	"github.com/ScolDev/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard is the status strip drawn under the field.
type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, score, length int) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorPanel, 0.8), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorPanelEdge, false)

	fonts := types.GetFonts()

	baseline := sb.Y + (sb.Height+fonts.Normal.Metrics().Ascent.Ceil())/2

	text.Draw(screen, fmt.Sprintf("Score: %d", score), fonts.Normal, sb.X+8, baseline, types.ColorText)
	text.Draw(screen, fmt.Sprintf("Length: %d", length), fonts.Normal, sb.X+120, baseline, types.ColorTextDim)

	hint := "Arrows/WASD to move  |  ESC to quit"
	bounds := text.BoundString(fonts.Normal, hint)
	text.Draw(screen, hint, fonts.Normal, sb.X+sb.Width-bounds.Dx()-8, baseline, types.ColorTextDim)
}
