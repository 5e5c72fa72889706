// Package scene is the frame loop that owns the background star field and the
// foreground particle system and exposes the two entry points the slideshow
// uses: Resize and SetMode.
package scene

import (
	"time"

	"github.com/iburimskiy/starlight/internal/particle"
)

// Scene is not safe for concurrent use. Resize, SetMode, Step and Draw must be
// called from the same goroutine that drives frames.
type Scene struct {
	world  *particle.World
	stars  *particle.StarField
	fg     *particle.System
	now    func() time.Time
	page   string
	frames uint64
}

type Option func(*Scene)

// WithSeed fixes the random source so runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Scene) {
		s.world = particle.NewWorld(seed)
	}
}

// WithClock replaces time.Now as the source of the twinkle phase.
func WithClock(now func() time.Time) Option {
	return func(s *Scene) {
		s.now = now
	}
}

func New(opts ...Option) *Scene {
	s := &Scene{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.world == nil {
		s.world = particle.NewWorld(0)
	}
	s.stars = particle.NewStarField(s.world)
	s.fg = particle.NewSystem(s.world)
	return s
}

// Resize records the new viewport and regenerates the star field. Foreground
// particles keep flying and pick up the new size on their next respawn.
func (s *Scene) Resize(width, height int) {
	s.world.Resize(float64(width), float64(height))
	s.stars.Initialize()
}

// SetMode swaps the foreground population for the one configured for pageID.
func (s *Scene) SetMode(pageID string) {
	s.page = pageID
	s.fg.SetMode(pageID)
}

// Step advances every star and particle by one frame.
func (s *Scene) Step() {
	s.stars.Tick(s.now())
	s.fg.Tick()
	s.frames++
}

// Draw clears dst and renders stars, then foreground particles.
func (s *Scene) Draw(dst particle.Surface) {
	dst.Clear()
	s.stars.Render(dst)
	s.fg.Render(dst)
}

// Frame runs one full tick: clear, then tick and render stars, then tick and
// render particles.
func (s *Scene) Frame(dst particle.Surface) {
	dst.Clear()
	s.stars.Tick(s.now())
	s.stars.Render(dst)
	s.fg.Tick()
	s.fg.Render(dst)
	s.frames++
}

func (s *Scene) Size() (width, height float64) { return s.world.Width, s.world.Height }

func (s *Scene) Page() string { return s.page }

func (s *Scene) Frames() uint64 { return s.frames }

func (s *Scene) Stars() *particle.StarField { return s.stars }

func (s *Scene) Particles() *particle.System { return s.fg }
