package particle

// Variant names the kind of foreground particle a mode spawns.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantFirework
	VariantDrifter
)

func (v Variant) String() string {
	switch v {
	case VariantFirework:
		return "firework"
	case VariantDrifter:
		return "gold_particle"
	default:
		return "none"
	}
}

// Particle is a foreground entity. Reset reinitializes it in place, which is
// how fireworks and drifters respawn without leaving their slot.
type Particle interface {
	Variant() Variant
	Reset(w *World)
	Tick(w *World)
	Render(dst Surface)
}

// spawn creates one particle of v already reset against w.
func spawn(v Variant, w *World) Particle {
	var p Particle
	switch v {
	case VariantFirework:
		p = &Firework{}
	case VariantDrifter:
		p = &Drifter{}
	default:
		return nil
	}
	p.Reset(w)
	return p
}
