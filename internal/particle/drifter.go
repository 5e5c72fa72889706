package particle

import (
	"image/color"

	"github.com/iburimskiy/starlight/internal/config"
)

// Drifter is a slow gold mote. When it leaves the viewport it respawns at a
// new random spot rather than wrapping or bouncing.
type Drifter struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   color.NRGBA
}

var _ Particle = (*Drifter)(nil)

func (d *Drifter) Variant() Variant { return VariantDrifter }

func (d *Drifter) Reset(w *World) {
	d.X = w.interior(w.Width)
	d.Y = w.interior(w.Height)
	d.VX = w.spread(config.DriftSpeed)
	d.VY = w.spread(config.DriftSpeed)
	d.Radius = w.between(config.DriftMinRadius, config.DriftMinRadius+config.DriftRadiusSpan)
	d.Opacity = w.Rand.Float64()
	d.Color = withOpacity(driftGold, d.Opacity)
}

func (d *Drifter) Tick(w *World) {
	d.X += d.VX
	d.Y += d.VY
	if !w.contains(d.X, d.Y) {
		d.Reset(w)
	}
}

func (d *Drifter) Render(dst Surface) {
	dst.FillCircle(d.X, d.Y, d.Radius, driftGold, d.Opacity)
}
