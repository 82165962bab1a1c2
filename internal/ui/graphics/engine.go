package graphics

import (
	"context"
	"fmt"
	"sync"

	"github.com/ScolDev/snake/internal/domain"
	"github.com/ScolDev/snake/internal/ui/graphics/components"
	"github.com/ScolDev/snake/internal/ui/graphics/input"
	"github.com/ScolDev/snake/internal/ui/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

const scoreboardHeight = 24

// KeySink accepts key codes; app.Loop is the usual implementation.
type KeySink interface {
	OnKey(code string) bool
}

// Engine hosts the game in an ebiten window. The game loop runs on its own
// goroutine and hands the engine a copy of each new state through Present;
// ebiten's Draw only ever sees those copies.
type Engine struct {
	width  int
	height int

	renderer   *render.FieldRenderer
	scoreboard *components.Scoreboard
	keyboard   *input.KeyboardHandler
	keys       KeySink

	state  *domain.GameState
	dataMu sync.RWMutex

	ctx context.Context
}

func NewEngine(renderer *render.FieldRenderer, field *domain.Field) *Engine {
	fieldW, fieldH := renderer.Size(field)

	return &Engine{
		width:      fieldW,
		height:     fieldH + scoreboardHeight,
		renderer:   renderer,
		scoreboard: components.NewScoreboard(0, fieldH, fieldW, scoreboardHeight),
		keyboard:   input.NewKeyboardHandler(),
		ctx:        context.Background(),
	}
}

func (e *Engine) BindInput(keys KeySink) {
	e.keys = keys
}

// Run opens the window and blocks until it is closed, Esc is pressed or
// ctx is done. It must be called from the main goroutine.
func (e *Engine) Run(ctx context.Context) error {
	e.ctx = ctx

	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (e *Engine) Present(state *domain.GameState) {
	e.dataMu.Lock()
	e.state = state
	e.dataMu.Unlock()
}

func (e *Engine) Update() error {
	select {
	case <-e.ctx.Done():
		return ebiten.Termination
	default:
	}

	if input.IsEscapePressed() {
		log.Info().Msg("escape pressed, closing window")
		return ebiten.Termination
	}

	for _, code := range e.keyboard.Update() {
		if e.keys != nil {
			e.keys.OnKey(code)
		}
	}

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.dataMu.RLock()
	state := e.state
	e.dataMu.RUnlock()

	if state == nil {
		return
	}

	e.renderer.Render(NewImageSurface(screen), state)
	e.scoreboard.Draw(screen, state.Score, state.Snake.Length())
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
