package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
}

var defaultFonts *Fonts

func GetFonts() *Fonts {
	if defaultFonts == nil {
		defaultFonts = &Fonts{
			Normal: basicfont.Face7x13,
		}
	}
	return defaultFonts
}
