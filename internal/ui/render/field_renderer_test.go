package render

import (
	"image/color"
	"testing"

	"github.com/ScolDev/snake/internal/domain"
	"github.com/ScolDev/snake/internal/ui/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op         string
	x, y, w, h int
	c          color.Color
}

type fakeSurface struct {
	calls []call
}

func (s *fakeSurface) Clear(x, y, w, h int) {
	s.calls = append(s.calls, call{op: "clear", x: x, y: y, w: w, h: h})
}

func (s *fakeSurface) FillRect(x, y, w, h int, c color.Color) {
	s.calls = append(s.calls, call{op: "fill", x: x, y: y, w: w, h: h, c: c})
}

func TestFieldRendererRender(t *testing.T) {
	state := &domain.GameState{
		Field: domain.NewField(10, 8),
		Snake: &domain.Snake{Body: []domain.Coord{{X: 3, Y: 2}, {X: 2, Y: 2}}},
		Apple: domain.Coord{X: 7, Y: 5},
	}
	surface := &fakeSurface{}

	NewFieldRenderer(40).Render(surface, state)

	require.Len(t, surface.calls, 5)
	assert.Equal(t, call{op: "clear", w: 400, h: 320}, surface.calls[0])
	assert.Equal(t, call{op: "fill", w: 400, h: 320, c: types.ColorBackground}, surface.calls[1])
	assert.Equal(t, call{op: "fill", x: 280, y: 200, w: 40, h: 40, c: types.ColorApple}, surface.calls[2])
	assert.Equal(t, call{op: "fill", x: 120, y: 80, w: 40, h: 40, c: types.ColorSnake}, surface.calls[3])
	assert.Equal(t, call{op: "fill", x: 80, y: 80, w: 40, h: 40, c: types.ColorSnake}, surface.calls[4])
}

func TestFieldRendererNilState(t *testing.T) {
	surface := &fakeSurface{}

	NewFieldRenderer(40).Render(surface, nil)

	assert.Empty(t, surface.calls)
}
