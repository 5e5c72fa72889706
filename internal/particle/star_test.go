package particle

import (
	"testing"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
)

func TestStarField_InitializeRanges(t *testing.T) {
	w := newTestWorld(800, 600)
	f := NewStarField(w)
	f.Initialize()

	if f.Len() != config.StarCount {
		t.Fatalf("expected %d stars, got %d", config.StarCount, f.Len())
	}
	for i, s := range f.Stars() {
		if s.X < 0 || s.X >= 800 || s.Y < 0 || s.Y >= 600 {
			t.Errorf("star %d position (%v, %v) outside viewport", i, s.X, s.Y)
		}
		if s.Radius < 0 || s.Radius >= 2 {
			t.Errorf("star %d radius %v outside [0,2)", i, s.Radius)
		}
		if s.Opacity < 0 || s.Opacity >= 1 {
			t.Errorf("star %d opacity %v outside [0,1)", i, s.Opacity)
		}
		if s.Rate < 0.005 || s.Rate >= 0.025 {
			t.Errorf("star %d rate %v outside [0.005,0.025)", i, s.Rate)
		}
	}
}

func TestStarField_InitializeReplacesStars(t *testing.T) {
	w := newTestWorld(800, 600)
	f := NewStarField(w)
	f.Initialize()
	first := append([]Star(nil), f.Stars()...)

	f.Initialize()
	if f.Len() != config.StarCount {
		t.Fatalf("expected %d stars after second initialize, got %d", config.StarCount, f.Len())
	}

	same := 0
	for i, s := range f.Stars() {
		if s.X == first[i].X && s.Y == first[i].Y {
			same++
		}
	}
	if same == config.StarCount {
		t.Error("expected positions to be re-randomized")
	}
}

func TestStar_OpacityStaysClamped(t *testing.T) {
	w := newTestWorld(640, 480)
	f := NewStarField(w)
	f.Initialize()

	now := time.UnixMilli(1_700_000_000_000)
	for frame := 0; frame < 2000; frame++ {
		f.Tick(now)
		for i, s := range f.Stars() {
			if s.Opacity < config.StarMinOpacity || s.Opacity > config.StarMaxOpacity {
				t.Fatalf("frame %d: star %d opacity %v escaped [0.2,1]", frame, i, s.Opacity)
			}
			if s.Color.A != channel(s.Opacity) {
				t.Fatalf("frame %d: star %d color alpha %d does not follow opacity %v", frame, i, s.Color.A, s.Opacity)
			}
		}
		now = now.Add(16 * time.Millisecond)
	}
}

func TestStar_TickFollowsWallClock(t *testing.T) {
	// sin(ms * rate) with ms*rate = pi/2 gives the largest positive step.
	s := Star{Opacity: 0.5, Rate: 0.5}
	now := time.UnixMilli(3) // 3 * 0.5 = 1.5 rad, sin > 0.99
	s.Tick(now)
	if s.Opacity <= 0.5 || s.Opacity > 0.51 {
		t.Errorf("expected opacity to rise by just under 0.01, got %v", s.Opacity)
	}
}

func TestStar_Render(t *testing.T) {
	s := Star{X: 10, Y: 20, Radius: 1.5, Opacity: 0.7}
	var r recorder
	s.Render(&r)

	if len(r.circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(r.circles))
	}
	c := r.circles[0]
	if c.x != 10 || c.y != 20 || c.r != 1.5 || c.alpha != 0.7 {
		t.Errorf("unexpected circle %+v", c)
	}
	if c.fill != starWhite {
		t.Errorf("expected white fill, got %v", c.fill)
	}
}
