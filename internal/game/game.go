package game

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/music"
	"github.com/iburimskiy/starlight/internal/scene"
	"github.com/iburimskiy/starlight/internal/slides"
)

const (
	// Start button dimensions
	buttonWidth  = 140
	buttonHeight = 40

	lineHeight = 16
	textMargin = 40
)

// Game is the windowed host: it feeds frames and input into the scene and the
// slide deck.
type Game struct {
	settings *config.Settings
	scene    *scene.Scene
	deck     *slides.Deck
	music    *music.Player
	surface  surface
	text     *ebiten.Image

	width, height int
	sized         bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func New(s *config.Settings) *Game {
	sc := scene.New(scene.WithSeed(s.Seed))
	return &Game{
		settings: s,
		scene:    sc,
		deck:     slides.NewDeck(s.Pages, sc),
		music:    music.NewPlayer(s.Volume),
		surface:  surface{background: s.BackgroundColor()},
		prevKey:  map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyO) {
		g.report(g.chooseMusic())
	}
	if justPressed(ebiten.KeyM) {
		g.music.TogglePause()
	}

	in := input{
		advance: justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyArrowRight) || justPressed(ebiten.KeyEnter),
		click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if !g.deck.Started() {
		in.buttonClick = g.updateStartButton()
	}
	g.apply(nextAction(g.deck.Started(), in))

	g.deck.Update(time.Second / time.Duration(ebiten.TPS()))
	g.scene.Step()
	return nil
}

// updateStartButton tracks hover and press state and reports a completed click.
func (g *Game) updateStartButton() bool {
	mouseX, mouseY := ebiten.CursorPosition()
	bx, by := g.buttonOrigin()
	g.buttonHovered = mouseX >= bx && mouseX <= bx+buttonWidth &&
		mouseY >= by && mouseY <= by+buttonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	clicked := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = g.buttonPressed && g.buttonHovered
		g.buttonPressed = false
	}
	return clicked
}

// input is one frame's worth of slideshow controls.
type input struct {
	advance     bool // space, right arrow or enter
	buttonClick bool // start button released while hovered
	click       bool // left mouse button pressed anywhere
}

type action int

const (
	actionNone action = iota
	actionStart
	actionNext
)

// nextAction decides what the controls do. Before the show starts only the
// advance keys and the start button count; afterwards any click advances.
func nextAction(started bool, in input) action {
	if !started {
		if in.advance || in.buttonClick {
			return actionStart
		}
		return actionNone
	}
	if in.advance || in.click {
		return actionNext
	}
	return actionNone
}

func (g *Game) apply(a action) {
	switch a {
	case actionStart:
		g.deck.Start(g.playMusic)
	case actionNext:
		g.deck.Next()
	}
}

// report keeps err for the status line. A nil err leaves the last one shown.
func (g *Game) report(err error) {
	if err != nil {
		g.lastErr = err
	}
}

// playMusic starts the configured track. Failures reach the status line; the
// deck logs them and keeps going.
func (g *Game) playMusic() error {
	err := g.music.Play(g.settings.Music)
	g.report(err)
	return err
}

// chooseMusic opens the file dialog and, once the show has started, switches
// to the chosen track right away.
func (g *Game) chooseMusic() error {
	path, err := music.Pick()
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	log.Printf("[Game] Selected music %s", path)
	g.settings.Music = path
	if !g.deck.Started() {
		return nil
	}
	return g.playMusic()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.image = screen
	g.scene.Draw(&g.surface)

	g.drawPages(screen)
	g.drawStartScreen(screen)

	status := "O: choose music"
	if g.music.Playing() {
		status += ", M: pause music"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-lineHeight-8)
}

func (g *Game) drawPages(screen *ebiten.Image) {
	if g.text == nil {
		return
	}
	for i, page := range g.deck.Pages() {
		alpha := clamp01(g.deck.Alpha(i))
		if alpha <= 0 {
			continue
		}
		g.text.Clear()
		g.drawPageText(g.text, page)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(g.text, op)
	}
}

func (g *Game) drawPageText(dst *ebiten.Image, page slides.Page) {
	maxCols := (g.width - 2*textMargin) / glyphWidth
	lines := wrapText(page.Body, maxCols)

	y := g.height/2 - (len(lines)+2)*lineHeight/2
	ebitenutil.DebugPrintAt(dst, page.Title, centerX(page.Title, g.width), y)
	y += 2 * lineHeight
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, centerX(line, g.width), y)
		y += lineHeight
	}
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	alpha := clamp01(g.deck.StartAlpha())
	if alpha <= 0 {
		return
	}

	shade := color.NRGBA{R: 5, G: 6, B: 14, A: uint8(230 * alpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), shade, false)

	var bgColor color.RGBA
	if g.buttonPressed {
		bgColor = color.RGBA{R: 120, G: 95, B: 30, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 160, G: 128, B: 45, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 190, G: 155, B: 60, A: 255} // Normal
	}
	bx, by := g.buttonOrigin()
	vector.DrawFilledRect(screen, float32(bx), float32(by), buttonWidth, buttonHeight, scaleAlpha(bgColor, alpha), false)
	vector.StrokeRect(screen, float32(bx), float32(by), buttonWidth, buttonHeight, 2, scaleAlpha(color.RGBA{R: 242, G: 208, B: 107, A: 255}, alpha), false)

	if g.deck.Started() {
		return
	}
	label := "Begin"
	ebitenutil.DebugPrintAt(screen, label, centerX(label, g.width), by+(buttonHeight-lineHeight)/2)
}

func (g *Game) buttonOrigin() (int, int) {
	return (g.width - buttonWidth) / 2, (g.height - buttonHeight) / 2
}

// Layout follows the window size and resizes the scene whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.syncSize(outsideWidth, outsideHeight) {
		if g.text != nil {
			g.text.Deallocate()
			g.text = nil
		}
		if outsideWidth > 0 && outsideHeight > 0 {
			g.text = ebiten.NewImage(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// syncSize resizes the scene when the size differs from the last one seen and
// reports whether it did.
func (g *Game) syncSize(width, height int) bool {
	if width == g.width && height == g.height && g.sized {
		return false
	}
	g.width, g.height = width, height
	g.sized = true
	g.scene.Resize(width, height)
	return true
}

// Close releases the audio device.
func (g *Game) Close() {
	g.music.Close()
}

// Run opens the window and blocks until the user quits.
func Run(s *config.Settings) error {
	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := New(s)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
