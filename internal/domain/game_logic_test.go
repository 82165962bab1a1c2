package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// newScenario builds the 10x10 game used by the worked examples: the
// snake at [(5,5) (4,5) (3,5) (2,5)] heading right, apple at apple.
func newScenario(t *testing.T, apple Coord) (*GameState, *scriptedRand) {
	t.Helper()

	rng := &scriptedRand{}
	rng.push(apple.X, apple.Y)
	gs := NewGameState(NewField(10, 10), rng, 0)

	require.Equal(t, []Coord{{5, 5}, {4, 5}, {3, 5}, {2, 5}}, gs.Snake.Body)
	require.Equal(t, apple, gs.Apple)
	return gs, rng
}

func TestTickPlainMove(t *testing.T) {
	gs, _ := newScenario(t, Coord{0, 0})

	result := gs.Tick()

	assert.Equal(t, []Coord{{6, 5}, {5, 5}, {4, 5}, {3, 5}}, gs.Snake.Body)
	assert.Equal(t, 4, result.Length)
	assert.Equal(t, 0, gs.Score)
	assert.False(t, result.Ate)
	assert.False(t, result.Reset)
}

func TestTickEatsApple(t *testing.T) {
	gs, rng := newScenario(t, Coord{6, 5})
	rng.push(8, 1)

	result := gs.Tick()

	assert.Equal(t, []Coord{{6, 5}, {5, 5}, {4, 5}, {3, 5}, {2, 5}}, gs.Snake.Body)
	assert.Equal(t, 5, result.Length)
	assert.Equal(t, 1, gs.Score)
	assert.True(t, result.Ate)
	assert.Equal(t, Coord{8, 1}, gs.Apple)
}

func TestTickGrowthKeepsPreviousTail(t *testing.T) {
	gs, rng := newScenario(t, Coord{5, 4})
	rng.push(0, 0)
	gs.SetDirection(DirectionUp)
	tail := gs.Snake.Tail()

	gs.Tick()

	assert.Equal(t, tail, gs.Snake.Tail())
	assert.Equal(t, 5, gs.Snake.Length())
	assert.Equal(t, 1, gs.Score)
}

func TestTickWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		head Coord
		dir  Direction
		want Coord
	}{
		{"right edge", Coord{9, 5}, DirectionRight, Coord{0, 5}},
		{"left edge", Coord{0, 5}, DirectionLeft, Coord{9, 5}},
		{"top edge", Coord{5, 0}, DirectionUp, Coord{5, 9}},
		{"bottom edge", Coord{5, 9}, DirectionDown, Coord{5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _ := newScenario(t, Coord{0, 0})
			gs.Apple = Coord{7, 7}
			gs.Snake = &Snake{
				Body:      []Coord{tt.head, tt.head.Add(tt.dir.Opposite().Delta())},
				Direction: tt.dir,
			}

			gs.Tick()

			assert.Equal(t, tt.want, gs.Snake.Head())
			assert.Equal(t, tt.head, gs.Snake.Body[1])
		})
	}
}

func TestTickSelfCollisionResets(t *testing.T) {
	gs, rng := newScenario(t, Coord{0, 0})
	rng.push(9, 9)
	gs.Score = 7
	// Moving up lands the head on (4,3), which the body still covers.
	gs.Snake = &Snake{
		Body: []Coord{
			{4, 4}, {5, 4}, {5, 3}, {4, 3}, {3, 3}, {3, 4},
		},
		Direction: DirectionUp,
	}

	result := gs.Tick()

	assert.True(t, result.Reset)
	assert.Equal(t, 0, gs.Score)
	assert.Equal(t, InitialLength, gs.Snake.Length())
	assert.Equal(t, []Coord{{5, 5}, {4, 5}, {3, 5}, {2, 5}}, gs.Snake.Body)
	assert.Equal(t, DirectionRight, gs.Snake.Direction)
	assert.Equal(t, Coord{9, 9}, gs.Apple)
}

func TestTickMovingIntoVacatedTailIsSafe(t *testing.T) {
	gs, _ := newScenario(t, Coord{0, 0})
	gs.Snake = &Snake{
		Body:      []Coord{{4, 4}, {5, 4}, {5, 3}, {4, 3}},
		Direction: DirectionUp,
	}

	result := gs.Tick()

	assert.False(t, result.Reset)
	assert.Equal(t, []Coord{{4, 3}, {4, 4}, {5, 4}, {5, 3}}, gs.Snake.Body)
}

func TestPlaceAppleSkipsSnakeCells(t *testing.T) {
	gs, rng := newScenario(t, Coord{0, 0})
	// (5,5) and (3,5) are body cells, (6,5) is free.
	rng.push(5, 5, 3, 5, 6, 5)

	assert.Equal(t, Coord{6, 5}, gs.PlaceApple())
}

func TestPlaceAppleNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	field := NewField(6, 5)

	for i := 0; i < 1000; i++ {
		gs := NewGameState(field, rng, 0)
		gs.Snake = randomSnake(rng, field)

		apple := gs.PlaceApple()

		require.True(t, field.Contains(apple), "apple %v outside field", apple)
		require.False(t, gs.Snake.Occupies(apple), "apple %v on snake %v", apple, gs.Snake.Body)
	}
}

// randomSnake covers between 1 and all-but-one cells of field.
func randomSnake(rng *rand.Rand, field *Field) *Snake {
	cells := rng.Perm(field.Cells())
	n := 1 + rng.Intn(field.Cells()-1)

	body := make([]Coord, 0, n)
	for _, idx := range cells[:n] {
		body = append(body, Coord{X: idx % field.Width, Y: idx / field.Width})
	}
	return &Snake{Body: body, Direction: DirectionRight}
}

func TestNewGameStateSeeded(t *testing.T) {
	a := NewGameState(NewField(20, 15), nil, 42)
	b := NewGameState(NewField(20, 15), nil, 42)

	assert.Equal(t, a.Apple, b.Apple)
	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
	}
	assert.Equal(t, a.Snake.Body, b.Snake.Body)
	assert.Equal(t, a.Apple, b.Apple)
}

func TestGameStateCopy(t *testing.T) {
	gs, _ := newScenario(t, Coord{0, 0})
	cp := gs.Copy()

	gs.Tick()

	assert.Equal(t, Coord{5, 5}, cp.Snake.Head())
	assert.Equal(t, Coord{6, 5}, gs.Snake.Head())
	assert.Equal(t, gs.Field, cp.Field)
}
