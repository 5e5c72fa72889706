// Command starlight-term plays the slideshow backdrop in a terminal.
//
// Keys: n/space/enter/right next page, m pause music, q/esc quit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/music"
	"github.com/iburimskiy/starlight/internal/render"
	"github.com/iburimskiy/starlight/internal/scene"
	"github.com/iburimskiy/starlight/internal/slides"
)

// A terminal cell stands in for this many virtual pixels, so firework speeds
// tuned for a window still fit on screen.
const (
	cellW = 8
	cellH = 16
)

type app struct {
	screen  tcell.Screen
	surface *render.TermSurface
	scene   *scene.Scene
	deck    *slides.Deck
	music   *music.Player
	track   string
}

func newApp(screen tcell.Screen, s *config.Settings) *app {
	sc := scene.New(scene.WithSeed(s.Seed))
	surface := render.NewTermSurface(screen, cellW, cellH)
	surface.Background = s.BackgroundColor()

	a := &app{
		screen:  screen,
		surface: surface,
		scene:   sc,
		deck:    slides.NewDeck(s.Pages, sc),
		music:   music.NewPlayer(s.Volume),
		track:   s.Music,
	}
	a.resize()
	return a
}

func (a *app) resize() {
	a.surface.Sync()
	a.scene.Resize(a.surface.Canvas())
}

// handle reacts to one event and reports whether the app should keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter, tcell.KeyRight:
			a.advance()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n', ' ':
				a.advance()
			case 'm':
				a.music.TogglePause()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *app) advance() {
	if !a.deck.Started() {
		a.deck.Start(func() error { return a.music.Play(a.track) })
		return
	}
	a.deck.Next()
}

func (a *app) frame(dt time.Duration) {
	a.deck.Update(dt)
	a.scene.Frame(a.surface)
	a.surface.Present()
	a.drawText()
	a.screen.Show()
}

func (a *app) drawText() {
	cols, rows := a.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(242, 208, 107))

	if !a.deck.Showing() {
		if !a.deck.Started() {
			drawCentered(a.screen, cols, rows/2, "press space to begin", style)
		}
		return
	}
	page, _ := a.deck.Current()
	drawCentered(a.screen, cols, rows/2-1, page.Title, style.Bold(true))
	drawCentered(a.screen, cols, rows/2+1, page.Body, style)
}

func drawCentered(s tcell.Screen, cols, row int, text string, style tcell.Style) {
	runes := []rune(text)
	x := (cols - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		s.SetContent(x+i, row, r, nil, style)
	}
}

func (a *app) run() {
	const frame = time.Second / 60
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame(frame)
		}
	}
}

func main() {
	settingsPath := flag.String("config", "", "path to a YAML settings file")
	musicPath := flag.String("music", "", "background music (wav, mp3 or flac)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starlight-term: %v\n", err)
		os.Exit(1)
	}
	if *musicPath != "" {
		settings.Music = *musicPath
	}

	// Log lines would tear the terminal UI.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "starlight-term: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	a := newApp(screen, settings)
	defer func() {
		a.music.Close()
		screen.Fini()
	}()

	a.run()
}
