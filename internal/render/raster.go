package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// RasterSurface paints anti-aliased circles into an in-memory RGBA image.
type RasterSurface struct {
	img        *image.RGBA
	background color.Color
	z          vector.Rasterizer
}

func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if background == nil {
		background = color.Black
	}
	return &RasterSurface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
}

func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *RasterSurface) FillCircle(x, y, r float64, fill color.Color, alpha float64) {
	b := s.img.Bounds()
	if b.Empty() || !Visible(x, y, r, b.Dx(), b.Dy()) {
		return
	}
	c := Paint(fill, alpha)
	if c.A == 0 {
		return
	}

	// Rasterize only the circle's clipped bounding box.
	box := image.Rect(
		int(math.Floor(x-r)), int(math.Floor(y-r)),
		int(math.Ceil(x+r)), int(math.Ceil(y+r)),
	).Intersect(b)
	if box.Empty() {
		return
	}

	cx, cy := float32(x-float64(box.Min.X)), float32(y-float64(box.Min.Y))
	rr := float32(r)
	k := rr * kappa

	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(cx+rr, cy)
	s.z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	s.z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	s.z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	s.z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	s.z.ClosePath()
	s.z.Draw(s.img, box, image.NewUniform(c), image.Point{})
}
