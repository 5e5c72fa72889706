package scene

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/particle"
)

type op struct {
	clear bool
	r     float64
	fill  color.Color
}

type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{clear: true}) }

func (r *recorder) FillCircle(x, y, radius float64, fill color.Color, alpha float64) {
	r.ops = append(r.ops, op{r: radius, fill: fill})
}

func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		t = t.Add(16 * time.Millisecond)
		return t
	}
}

func TestScene_ResizeRegeneratesStars(t *testing.T) {
	s := New(WithSeed(7), WithClock(fixedClock()))
	s.Resize(1024, 768)
	first := append([]particle.Star(nil), s.Stars().Stars()...)

	s.Resize(1024, 768)
	if s.Stars().Len() != config.StarCount {
		t.Fatalf("expected %d stars, got %d", config.StarCount, s.Stars().Len())
	}
	if len(first) != config.StarCount {
		t.Fatalf("expected %d stars after first resize, got %d", config.StarCount, len(first))
	}

	moved := false
	for i, st := range s.Stars().Stars() {
		if st.X != first[i].X || st.Y != first[i].Y {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("expected a second resize to re-randomize star positions")
	}
}

func TestScene_FrameOrder(t *testing.T) {
	s := New(WithSeed(7), WithClock(fixedClock()))
	s.Resize(800, 600)
	s.SetMode("page1")

	var r recorder
	s.Frame(&r)

	if len(r.ops) != 1+config.StarCount+3 {
		t.Fatalf("expected clear + %d stars + 3 fireworks, got %d ops", config.StarCount, len(r.ops))
	}
	if !r.ops[0].clear {
		t.Fatal("frame must start by clearing the surface")
	}
	for i := 1; i <= config.StarCount; i++ {
		if r.ops[i].r >= config.StarMaxRadius {
			t.Fatalf("op %d: expected star before particles, got radius %v", i, r.ops[i].r)
		}
	}
	for _, o := range r.ops[1+config.StarCount:] {
		if o.r != config.FireworkRadius {
			t.Errorf("expected firework circle last, got radius %v", o.r)
		}
	}
	if s.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", s.Frames())
	}
}

func TestScene_StepThenDrawMatchesFrame(t *testing.T) {
	a := New(WithSeed(3), WithClock(fixedClock()))
	b := New(WithSeed(3), WithClock(fixedClock()))
	for _, s := range []*Scene{a, b} {
		s.Resize(640, 480)
		s.SetMode("page3")
	}

	var ra, rb recorder
	for i := 0; i < 5; i++ {
		ra.ops = ra.ops[:0]
		rb.ops = rb.ops[:0]
		a.Frame(&ra)
		b.Step()
		b.Draw(&rb)
	}
	if len(ra.ops) != len(rb.ops) {
		t.Fatalf("op counts differ: %d vs %d", len(ra.ops), len(rb.ops))
	}
	for i := range ra.ops {
		if ra.ops[i] != rb.ops[i] {
			t.Fatalf("op %d differs: %+v vs %+v", i, ra.ops[i], rb.ops[i])
		}
	}
}

func TestScene_SetMode(t *testing.T) {
	s := New(WithSeed(1))
	s.Resize(800, 600)

	tests := []struct {
		page string
		want int
	}{
		{"page1", 3},
		{"page2", 1},
		{"page3", 50},
		{"page4", 0},
		{"page5", 6},
		{"page6", 0},
		{"bogus", 0},
	}
	for _, tt := range tests {
		s.SetMode(tt.page)
		if got := s.Particles().Len(); got != tt.want {
			t.Errorf("SetMode(%q): got %d particles, want %d", tt.page, got, tt.want)
		}
		if s.Page() != tt.page {
			t.Errorf("Page() = %q, want %q", s.Page(), tt.page)
		}
	}
}

func TestScene_ZeroSizeIsSafe(t *testing.T) {
	s := New(WithSeed(9), WithClock(fixedClock()))
	s.Resize(0, 0)
	s.SetMode("page5")

	var r recorder
	for i := 0; i < 400; i++ {
		r.ops = r.ops[:0]
		s.Frame(&r)
	}

	for _, st := range s.Stars().Stars() {
		if math.IsNaN(st.X) || math.IsNaN(st.Y) || math.IsInf(st.X, 0) || math.IsInf(st.Y, 0) {
			t.Fatalf("non-finite star position (%v,%v)", st.X, st.Y)
		}
	}
	for _, p := range s.Particles().Particles() {
		f := p.(*particle.Firework)
		if math.IsNaN(f.X) || math.IsNaN(f.Y) || math.IsInf(f.Y, 0) {
			t.Fatalf("non-finite firework position (%v,%v)", f.X, f.Y)
		}
	}
}
