package particle

import (
	"image/color"
	"math"
)

type circle struct {
	x, y, r float64
	fill    color.Color
	alpha   float64
}

// recorder is a Surface that remembers what it was asked to draw.
type recorder struct {
	clears  int
	circles []circle
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, fill color.Color, alpha float64) {
	r.circles = append(r.circles, circle{x: x, y: y, r: radius, fill: fill, alpha: alpha})
}

func newTestWorld(w, h float64) *World {
	world := NewWorld(42)
	world.Resize(w, h)
	return world
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
