package particle

import (
	"image/color"
	"math"
)

var (
	starWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	driftGold = color.NRGBA{R: 242, G: 208, B: 107, A: 255}
)

// hslToRGB converts HSL to RGB (hue: 0-360, saturation: 0-1, lightness: 0-1)
func hslToRGB(h, s, l float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{R: channel(r + m), G: channel(g + m), B: channel(b + m), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

// withOpacity returns c with its alpha channel set from a [0,1] opacity.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = channel(opacity)
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
