package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an ebiten image.
type ImageSurface struct {
	img *ebiten.Image
}

func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Clear(x, y, w, h int) {
	s.img.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Clear()
}

func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}
