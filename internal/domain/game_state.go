package domain

import (
	"golang.org/x/exp/rand"
)

// Rand is the randomness apple placement draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type GameState struct {
	Score int
	Snake *Snake
	Apple Coord
	Field *Field

	rng Rand
}

// NewGameState builds a fresh game on field. A nil rng falls back to a
// source seeded with seed.
func NewGameState(field *Field, rng Rand, seed int64) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(seed)))
	}
	gs := &GameState{
		Field: NewField(field.Width, field.Height),
		rng:   rng,
	}
	gs.Reset()
	return gs
}

// Reset puts the game back to its starting position: score zero, a
// four-cell snake at the center heading right and a new apple.
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Snake = NewSnake(gs.Field.Center())
	gs.Apple = gs.PlaceApple()
}

// PlaceApple samples cells until it finds one the snake does not cover.
// It never returns on a grid the snake fills completely.
func (gs *GameState) PlaceApple() Coord {
	for {
		candidate := Coord{
			X: gs.rng.Intn(gs.Field.Width),
			Y: gs.rng.Intn(gs.Field.Height),
		}
		if !gs.Snake.Occupies(candidate) {
			return candidate
		}
	}
}

// Copy returns a snapshot that shares nothing mutable with gs.
// The copy has no random source and must not be ticked.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Score: gs.Score,
		Snake: gs.Snake.Copy(),
		Apple: gs.Apple,
		Field: NewField(gs.Field.Width, gs.Field.Height),
	}
}
