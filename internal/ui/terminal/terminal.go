package terminal

import (
	"context"
	"fmt"
	"unicode"

	"github.com/ScolDev/snake/internal/domain"
	"github.com/ScolDev/snake/internal/ui/render"
	"github.com/ScolDev/snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// statusRows is the space kept under the field for the score line.
const statusRows = 1

type KeySink interface {
	OnKey(code string) bool
}

// Terminal plays the game inside a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	surface  *CellSurface
	renderer *render.FieldRenderer
}

// NewScreen creates and initializes the screen of the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return screen, nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Terminal {
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen:   screen,
		surface:  NewCellSurface(screen),
		renderer: render.NewFieldRenderer(1),
	}
}

// Field is the largest grid that fits the terminal, leaving room for the
// status line.
func (t *Terminal) Field() *domain.Field {
	cols, rows := t.screen.Size()
	return domain.FieldFromPixels(cols/ColumnsPerCell, rows-statusRows, 1)
}

func (t *Terminal) Present(state *domain.GameState) {
	t.renderer.Render(t.surface, state)
	t.drawStatus(state)
	t.screen.Show()
}

// PollKeys forwards key presses to keys until the screen is finalized.
// Esc and Ctrl-C call quit.
func (t *Terminal) PollKeys(ctx context.Context, keys KeySink, quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				log.Info().Msg("quit key pressed")
				quit()
				return
			}
			if code, ok := keyCode(ev); ok {
				keys.OnKey(code)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// Close restores the terminal. It also makes PollKeys return.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) drawStatus(state *domain.GameState) {
	if state == nil {
		return
	}
	line := fmt.Sprintf("Score: %d  Length: %d  |  Arrows/WASD to move, ESC to quit",
		state.Score, state.Snake.Length())
	style := tcell.StyleDefault.Foreground(toTcell(types.ColorText))

	row := state.Field.Height
	cols, _ := t.screen.Size()
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(line) {
			r = rune(line[col])
		}
		t.screen.SetContent(col, row, r, nil, style)
	}
}

// keyCode names a tcell key the way domain.ParseKey expects.
func keyCode(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRune:
		return string(unicode.ToUpper(ev.Rune())), true
	}
	return "", false
}
