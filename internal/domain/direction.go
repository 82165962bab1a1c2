package domain

type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionRight
	DirectionDown
	DirectionLeft
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	}
	return Coord{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionLeft
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	}
	return "none"
}

// Key codes follow the DOM KeyboardEvent.code names; ebiten reports the
// same names for arrow keys and bare letters for the rest.
var keyDirections = map[string]Direction{
	"ArrowUp":    DirectionUp,
	"ArrowRight": DirectionRight,
	"ArrowDown":  DirectionDown,
	"ArrowLeft":  DirectionLeft,
	"KeyW":       DirectionUp,
	"KeyD":       DirectionRight,
	"KeyS":       DirectionDown,
	"KeyA":       DirectionLeft,
	"W":          DirectionUp,
	"D":          DirectionRight,
	"S":          DirectionDown,
	"A":          DirectionLeft,
}

// ParseKey maps a key code to a direction. Unknown codes report false.
func ParseKey(code string) (Direction, bool) {
	d, ok := keyDirections[code]
	return d, ok
}
