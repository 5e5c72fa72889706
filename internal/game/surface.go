package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starlight/internal/render"
)

// surface draws the scene onto an ebiten image, normally the screen passed to Draw.
type surface struct {
	image      *ebiten.Image
	background color.Color
}

func (s *surface) Clear() {
	if s.background == nil {
		s.image.Clear()
		return
	}
	s.image.Fill(s.background)
}

func (s *surface) FillCircle(x, y, r float64, fill color.Color, alpha float64) {
	b := s.image.Bounds()
	if !render.Visible(x, y, r, b.Dx(), b.Dy()) {
		return
	}
	c := render.Paint(fill, alpha)
	if c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(r), c, true)
}
