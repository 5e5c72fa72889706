package particle

import (
	"image/color"

	"github.com/iburimskiy/starlight/internal/config"
)

// Shard is one fragment of an exploded firework.
type Shard struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Opacity float64
	Color   color.NRGBA
}

// Firework rises from the bottom centre of the viewport, bursts into shards at
// its apex and, once the last shard has faded, launches again from the bottom.
//
// Ascending: Shards is empty and position/velocity are integrated.
// Exploded: position is frozen and only the shards move.
type Firework struct {
	X, Y     float64
	VX, VY   float64
	Gravity  float64
	Radius   float64
	Color    color.NRGBA
	Shards   []Shard
	exploded bool
}

var _ Particle = (*Firework)(nil)

func (f *Firework) Variant() Variant { return VariantFirework }

func (f *Firework) Exploded() bool { return f.exploded }

// Reset puts the firework back on the launch pad with a fresh velocity and hue.
// The shard slice keeps its capacity for the next burst.
func (f *Firework) Reset(w *World) {
	f.X = w.Width / 2
	f.Y = w.Height
	f.VX = w.spread(config.FireworkSpreadX)
	f.VY = -w.between(config.FireworkMinLift, config.FireworkMinLift+config.FireworkLiftSpread)
	f.Gravity = config.FireworkGravity
	f.Radius = config.FireworkRadius
	f.Color = hslToRGB(w.between(config.FireworkMinHue, config.FireworkMinHue+config.FireworkHueSpread), 1, 0.5)
	f.Shards = f.Shards[:0]
	f.exploded = false
}

func (f *Firework) Tick(w *World) {
	if !f.exploded {
		f.X += f.VX
		f.Y += f.VY
		f.VY += f.Gravity
		if f.VY >= 0 {
			f.explode(w)
		}
		return
	}

	live := f.Shards[:0]
	for _, s := range f.Shards {
		s.X += s.VX
		s.Y += s.VY
		s.VY += s.Gravity
		s.Opacity -= config.ShardFade
		if s.Opacity > 0 {
			live = append(live, s)
		}
	}
	f.Shards = live

	if len(f.Shards) == 0 {
		f.Reset(w)
	}
}

func (f *Firework) explode(w *World) {
	f.exploded = true
	for i := 0; i < config.ShardCount; i++ {
		f.Shards = append(f.Shards, Shard{
			X:       f.X,
			Y:       f.Y,
			VX:      w.spread(config.ShardSpread),
			VY:      w.spread(config.ShardSpread),
			Gravity: config.ShardGravity,
			Opacity: 1,
			Color:   f.Color,
		})
	}
}

func (f *Firework) Render(dst Surface) {
	if f.exploded {
		for i := range f.Shards {
			s := &f.Shards[i]
			dst.FillCircle(s.X, s.Y, config.ShardRadius, s.Color, s.Opacity)
		}
		return
	}
	dst.FillCircle(f.X, f.Y, f.Radius, f.Color, 1)
}
