package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/starlight/internal/config"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	s := config.Default()
	s.Seed = 5
	return newApp(screen, s)
}

func TestApp_SizesSceneFromGrid(t *testing.T) {
	a := newTestApp(t)
	w, h := a.scene.Size()
	if w != 80*cellW || h != 24*cellH {
		t.Errorf("scene size = %vx%v, want %dx%d", w, h, 80*cellW, 24*cellH)
	}
}

func TestApp_KeysDriveDeck(t *testing.T) {
	a := newTestApp(t)

	// No track configured: the audio error is swallowed by the deck.
	if !a.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !a.deck.Started() {
		t.Fatal("space should start the show")
	}

	for i := 0; i < 90; i++ {
		a.frame(time.Second / 60)
	}
	if a.scene.Page() != "page1" {
		t.Fatalf("expected page1 after the start delay, got %q", a.scene.Page())
	}

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	a.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if a.scene.Page() != "page3" {
		t.Errorf("expected page3, got %q", a.scene.Page())
	}
	if a.scene.Particles().Len() != 50 {
		t.Errorf("page3 should have 50 drifters, got %d", a.scene.Particles().Len())
	}

	if a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("esc should quit")
	}
}
