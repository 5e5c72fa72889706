package particle

import (
	"math/rand/v2"
	"testing"
)

func TestDrifter_ResetRanges(t *testing.T) {
	w := newTestWorld(300, 200)
	for i := 0; i < 100; i++ {
		var d Drifter
		d.Reset(w)
		if !w.contains(d.X, d.Y) {
			t.Fatalf("spawned outside viewport at (%v,%v)", d.X, d.Y)
		}
		if d.VX < -0.5 || d.VX >= 0.5 || d.VY < -0.5 || d.VY >= 0.5 {
			t.Fatalf("velocity (%v,%v) outside [-0.5,0.5)", d.VX, d.VY)
		}
		if d.Radius < 1 || d.Radius >= 4 {
			t.Fatalf("radius %v outside [1,4)", d.Radius)
		}
	}
}

func TestDrifter_RespawnsWhenOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"left", 0.1, 50, -0.4, 0},
		{"right", 299.9, 50, 0.4, 0},
		{"top", 50, 0.1, 0, -0.4},
		{"bottom", 50, 199.9, 0, 0.4},
		{"already outside", -40, 500, 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(300, 200)
			d := Drifter{X: tt.x, Y: tt.y, VX: tt.vx, VY: tt.vy, Radius: 2, Opacity: 0.5}
			d.Tick(w)
			if !w.contains(d.X, d.Y) {
				t.Fatalf("expected respawn inside viewport, got (%v,%v)", d.X, d.Y)
			}
			if d.VX == tt.vx && d.VY == tt.vy {
				t.Error("expected velocity to be re-randomized on respawn")
			}
		})
	}
}

func TestDrifter_MovesInsideBounds(t *testing.T) {
	w := newTestWorld(300, 200)
	d := Drifter{X: 100, Y: 100, VX: 0.25, VY: -0.25, Radius: 2, Opacity: 0.5}
	d.Tick(w)
	if d.X != 100.25 || d.Y != 99.75 {
		t.Errorf("expected (100.25, 99.75), got (%v,%v)", d.X, d.Y)
	}
}

func TestDrifter_RenderUsesOwnOpacity(t *testing.T) {
	d := Drifter{X: 5, Y: 6, Radius: 3, Opacity: 0.3}
	var r recorder
	d.Render(&r)
	if len(r.circles) != 1 || r.circles[0].alpha != 0.3 || r.circles[0].fill != driftGold {
		t.Errorf("unexpected render %+v", r.circles)
	}
}

// zeroSource makes every Float64 draw return exactly 0.
type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func TestDrifter_RespawnStrictlyInside(t *testing.T) {
	w := &World{Width: 300, Height: 200, Rand: rand.New(zeroSource{})}
	d := Drifter{X: -1, Y: -1}
	d.Tick(w)
	if d.X <= 0 || d.X >= 300 || d.Y <= 0 || d.Y >= 200 {
		t.Errorf("respawn at (%v,%v) is not strictly inside 300x200", d.X, d.Y)
	}

	zero := &World{Rand: rand.New(zeroSource{})}
	d.Reset(zero)
	if d.X != 0 || d.Y != 0 {
		t.Errorf("zero viewport should respawn at the origin, got (%v,%v)", d.X, d.Y)
	}
}
