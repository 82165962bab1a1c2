package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardHandler reports the keys pressed since the previous frame by
// their code names ("ArrowUp", "W", ...).
type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

func (kh *KeyboardHandler) Update() []string {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])

	codes := make([]string, 0, len(kh.keys))
	for _, key := range kh.keys {
		codes = append(codes, key.String())
	}
	return codes
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
