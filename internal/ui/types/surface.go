package types

import "image/color"

// Surface is a 2D drawing target with its origin at the top-left corner
// and y growing downwards. Coordinates are in pixels.
type Surface interface {
	Clear(x, y, w, h int)
	FillRect(x, y, w, h int, c color.Color)
}
