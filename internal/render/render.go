// Package render provides particle.Surface implementations for headless PNG
// output (x/image/vector) and the terminal (tcell). It must not depend on a
// windowing stack; the ebiten surface lives with the windowed host.
package render

import (
	"image/color"
	"math"
)

// Paint resolves a fill color and a global alpha into one straight-alpha color.
func Paint(fill color.Color, alpha float64) color.NRGBA {
	c := color.NRGBAModel.Convert(fill).(color.NRGBA)
	if math.IsNaN(alpha) || alpha <= 0 {
		c.A = 0
		return c
	}
	if alpha < 1 {
		c.A = uint8(math.Round(float64(c.A) * alpha))
	}
	return c
}

// Visible reports whether a circle can touch a w x h target at all.
func Visible(x, y, r float64, w, h int) bool {
	if r <= 0 || math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(r) {
		return false
	}
	return x+r >= 0 && y+r >= 0 && x-r <= float64(w) && y-r <= float64(h)
}
