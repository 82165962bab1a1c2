package domain

type TickResult struct {
	Ate    bool
	Reset  bool
	Score  int
	Length int
}

// Tick advances the game by one step: move, wrap, eat, then check for a
// self-bite. A bite resets the whole game in place.
func (gs *GameState) Tick() TickResult {
	var result TickResult

	head := gs.Snake.Advance(gs.Field)

	if head.Equals(gs.Apple) {
		gs.Snake.Grow()
		gs.Score++
		gs.Apple = gs.PlaceApple()
		result.Ate = true
	}

	if gs.Snake.BitesItself() {
		gs.Reset()
		result.Reset = true
	}

	result.Score = gs.Score
	result.Length = gs.Snake.Length()
	return result
}

// SetDirection turns the snake; reversals are ignored.
func (gs *GameState) SetDirection(dir Direction) bool {
	return gs.Snake.SetDirection(dir)
}
