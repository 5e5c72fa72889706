// Package slides sequences the slideshow: a start screen gate, six pages shown
// one at a time, cross-fades between them, and a foreground mode switch on
// every page transition.
package slides

import (
	"fmt"
	"log"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
)

// ModeSetter receives the id of every page that becomes visible.
type ModeSetter interface {
	SetMode(pageID string)
}

type Page struct {
	ID    string
	Title string
	Body  string
}

// PageID returns the identifier of the page at index i ("page1" for 0).
func PageID(i int) string {
	return fmt.Sprintf("page%d", i+1)
}

type Deck struct {
	pages []Page
	modes ModeSetter

	fade  time.Duration
	delay time.Duration

	started bool
	shown   bool          // first page revealed
	wait    time.Duration // left until the first page is revealed
	current int

	startAlpha float64
	alpha      []float64
	target     []float64
}

// NewDeck builds a deck from page texts; ids are assigned by position.
func NewDeck(texts []config.Page, modes ModeSetter) *Deck {
	pages := make([]Page, len(texts))
	for i, p := range texts {
		pages[i] = Page{ID: PageID(i), Title: p.Title, Body: p.Body}
	}
	return &Deck{
		pages:      pages,
		modes:      modes,
		fade:       seconds(config.FadeSeconds),
		delay:      seconds(config.StartDelaySeconds),
		startAlpha: 1,
		alpha:      make([]float64, len(pages)),
		target:     make([]float64, len(pages)),
	}
}

// Start leaves the start screen. play is called once to start the music; its
// error is logged and otherwise ignored. The first page appears after the
// start delay. Later calls do nothing.
func (d *Deck) Start(play func() error) {
	if d.started {
		return
	}
	d.started = true
	d.wait = d.delay

	if play != nil {
		if err := play(); err != nil {
			log.Printf("[Slides] Audio play failed: %v", err)
		}
	}
}

// Update advances fades and the start delay by dt.
func (d *Deck) Update(dt time.Duration) {
	if !d.started {
		return
	}

	d.startAlpha = approach(d.startAlpha, 0, dt, d.fade)

	if !d.shown {
		d.wait -= dt
		if d.wait <= 0 {
			d.reveal()
		}
	}

	for i := range d.alpha {
		d.alpha[i] = approach(d.alpha[i], d.target[i], dt, d.fade)
	}
}

func (d *Deck) reveal() {
	d.shown = true
	if len(d.pages) == 0 {
		return
	}
	d.current = 0
	d.target[0] = 1
	d.modes.SetMode(d.pages[0].ID)
}

// Next fades to the following page. It reports false, and does nothing, when
// no page is showing yet or the last page is already showing.
func (d *Deck) Next() bool {
	if !d.shown || d.current >= len(d.pages)-1 {
		return false
	}
	d.target[d.current] = 0
	d.current++
	d.target[d.current] = 1
	d.modes.SetMode(d.pages[d.current].ID)
	return true
}

func (d *Deck) Started() bool { return d.started }

// Showing reports whether the first page has been revealed.
func (d *Deck) Showing() bool { return d.shown }

// Current returns the active page and its index.
func (d *Deck) Current() (Page, int) {
	if len(d.pages) == 0 {
		return Page{}, -1
	}
	return d.pages[d.current], d.current
}

func (d *Deck) Pages() []Page { return d.pages }

// StartAlpha is the opacity of the start screen overlay.
func (d *Deck) StartAlpha() float64 { return d.startAlpha }

// Alpha is the opacity of page i.
func (d *Deck) Alpha(i int) float64 {
	if i < 0 || i >= len(d.alpha) {
		return 0
	}
	return d.alpha[i]
}

// approach moves v toward target by dt/fade of the full range.
func approach(v, target float64, dt, fade time.Duration) float64 {
	if fade <= 0 {
		return target
	}
	step := float64(dt) / float64(fade)
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
