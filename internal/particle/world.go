package particle

import (
	"math"
	"math/rand/v2"
)

// World is the viewport and random source shared by every entity of a scene.
// Entities read its size when they spawn or respawn, so a resize is picked up
// by the next respawn without touching live entities.
type World struct {
	Width  float64
	Height float64
	Rand   *rand.Rand
}

// NewWorld returns a zero-sized world seeded with seed. A zero seed draws a
// random one.
func NewWorld(seed uint64) *World {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &World{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Resize sets the viewport. Negative or non-finite sizes collapse to zero.
func (w *World) Resize(width, height float64) {
	w.Width = sanitize(width)
	w.Height = sanitize(height)
}

// between returns a uniform value in [lo, hi).
func (w *World) between(lo, hi float64) float64 {
	return lo + w.Rand.Float64()*(hi-lo)
}

// interior returns a value strictly inside (0, span) when span > 0, so a
// respawned entity never lands on the viewport's top or left edge.
func (w *World) interior(span float64) float64 {
	v := w.Rand.Float64() * span
	if v <= 0 && span > 0 {
		return span / 2
	}
	return v
}

// spread returns a uniform value in [-span/2, span/2).
func (w *World) spread(span float64) float64 {
	return (w.Rand.Float64() - 0.5) * span
}

func (w *World) contains(x, y float64) bool {
	return x >= 0 && x <= w.Width && y >= 0 && y <= w.Height
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
