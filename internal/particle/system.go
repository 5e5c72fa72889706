package particle

// System owns the foreground population. Its contents are replaced wholesale
// by SetMode; individual particles only ever respawn in place.
type System struct {
	world     *World
	mode      Mode
	particles []Particle
}

func NewSystem(w *World) *System {
	return &System{world: w}
}

// SetMode discards the current particles and spawns the set configured for
// pageID. Unknown pages and zero-count modes leave the system empty.
func (s *System) SetMode(pageID string) {
	m := ModeFor(pageID)
	s.mode = m
	if m.Count <= 0 || m.Variant == VariantNone {
		s.particles = nil
		return
	}

	particles := make([]Particle, 0, m.Count)
	for i := 0; i < m.Count; i++ {
		particles = append(particles, spawn(m.Variant, s.world))
	}
	s.particles = particles
}

func (s *System) Mode() Mode { return s.mode }

func (s *System) Len() int { return len(s.particles) }

func (s *System) Particles() []Particle { return s.particles }

func (s *System) Tick() {
	for _, p := range s.particles {
		p.Tick(s.world)
	}
}

func (s *System) Render(dst Surface) {
	for _, p := range s.particles {
		p.Render(dst)
	}
}
