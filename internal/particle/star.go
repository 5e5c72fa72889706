package particle

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
)

// Star is one twinkling point of the background field.
type Star struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	Rate    float64 // twinkle frequency, radians per millisecond
	Color   color.NRGBA
}

func (s *Star) reset(w *World) {
	s.X = w.between(0, w.Width)
	s.Y = w.between(0, w.Height)
	s.Radius = w.between(0, config.StarMaxRadius)
	s.Opacity = w.Rand.Float64()
	s.Rate = w.between(config.StarMinRate, config.StarMinRate+config.StarRateSpread)
	s.Color = withOpacity(starWhite, s.Opacity)
}

// Tick nudges the opacity by a sine of the wall clock and clamps it to
// [StarMinOpacity, StarMaxOpacity]. The phase is absolute time, not elapsed
// animation time, so two fields ticked at the same instant shimmer alike.
func (s *Star) Tick(now time.Time) {
	ms := float64(now.UnixMilli())
	s.Opacity += math.Sin(ms*s.Rate) * config.StarTwinkleStep
	s.Opacity = clamp(s.Opacity, config.StarMinOpacity, config.StarMaxOpacity)
	s.Color = withOpacity(starWhite, s.Opacity)
}

func (s *Star) Render(dst Surface) {
	dst.FillCircle(s.X, s.Y, s.Radius, starWhite, s.Opacity)
}

// StarField owns the fixed-size background population.
type StarField struct {
	world *World
	stars []Star
}

func NewStarField(w *World) *StarField {
	return &StarField{world: w}
}

// Initialize discards every star and creates StarCount new ones spread over
// the current viewport.
func (f *StarField) Initialize() {
	stars := make([]Star, config.StarCount)
	for i := range stars {
		stars[i].reset(f.world)
	}
	f.stars = stars
}

func (f *StarField) Tick(now time.Time) {
	for i := range f.stars {
		f.stars[i].Tick(now)
	}
}

func (f *StarField) Render(dst Surface) {
	for i := range f.stars {
		f.stars[i].Render(dst)
	}
}

func (f *StarField) Len() int { return len(f.stars) }

// Stars exposes the live slice; callers must not keep it across Initialize.
func (f *StarField) Stars() []Star { return f.stars }
