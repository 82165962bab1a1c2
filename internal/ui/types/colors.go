package types

import "image/color"

var (
	ColorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}
	ColorSnake      = color.RGBA{0x00, 0x60, 0x00, 0xff}
	ColorApple      = color.RGBA{0x60, 0x00, 0x00, 0xff}
	ColorText       = color.RGBA{220, 220, 220, 255}
	ColorTextDim    = color.RGBA{150, 150, 150, 255}
	ColorPanel      = color.RGBA{40, 40, 45, 255}
	ColorPanelEdge  = color.RGBA{60, 60, 65, 255}
)

// Palette is the set of colors a frame is painted with.
type Palette struct {
	Background color.RGBA
	Snake      color.RGBA
	Apple      color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: ColorBackground,
		Snake:      ColorSnake,
		Apple:      ColorApple,
	}
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
