package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Background star field
	StarCount       = 200
	StarMaxRadius   = 2.0
	StarMinRate     = 0.005
	StarRateSpread  = 0.02
	StarMinOpacity  = 0.2
	StarMaxOpacity  = 1.0
	StarTwinkleStep = 0.01

	// Fireworks
	FireworkRadius     = 3.0
	FireworkGravity    = 0.2
	FireworkSpreadX    = 10.0
	FireworkMinLift    = 10.0
	FireworkLiftSpread = 10.0
	FireworkMinHue     = 30.0
	FireworkHueSpread  = 60.0
	ShardCount         = 50
	ShardSpread        = 10.0
	ShardGravity       = 0.1
	ShardFade          = 0.02
	ShardRadius        = 2.0

	// Drifting gold particles
	DriftSpeed      = 1.0
	DriftMinRadius  = 1.0
	DriftRadiusSpan = 3.0

	// Slideshow timing, in seconds
	FadeSeconds       = 1.0
	StartDelaySeconds = 1.0

	DefaultVolume = 0.5
	PageCount     = 6
)

// ErrInvalid is returned when a settings file parses but holds unusable values.
var ErrInvalid = errors.New("invalid settings")

// Page is the text shown on one slide.
type Page struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Settings are the runtime knobs read from an optional YAML file.
type Settings struct {
	Window     Window  `yaml:"window"`
	Background string  `yaml:"background"` // "#rrggbb"
	Music      string  `yaml:"music"`      // path to a wav, mp3 or flac file
	Volume     float64 `yaml:"volume"`     // 0.0 ~ 1.0
	Seed       uint64  `yaml:"seed"`       // 0 picks a random seed
	Pages      []Page  `yaml:"pages"`
}

func Default() *Settings {
	return &Settings{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Starlight - Space/Click: next page, O: choose music, Esc/Q: quit",
		},
		Background: "#070914",
		Volume:     DefaultVolume,
		Pages: []Page{
			{Title: "Tonight", Body: "Look up. Every light up there took its time to get here."},
			{Title: "A Small Spark", Body: "Some things start quietly."},
			{Title: "Gold In The Air", Body: "And then the air itself seems to shimmer."},
			{Title: "Stillness", Body: "Sometimes the stars are enough."},
			{Title: "Celebrate", Body: "But not tonight."},
			{Title: "Thank You", Body: "For being here."},
		},
	}
}

// Load reads settings from path on top of Default. An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside 0..1", ErrInvalid, s.Volume)
	}
	if len(s.Pages) != PageCount {
		return fmt.Errorf("%w: want %d pages, got %d", ErrInvalid, PageCount, len(s.Pages))
	}
	if _, err := ParseHexColor(s.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background, falling back to black.
func (s *Settings) BackgroundColor() color.NRGBA {
	c, err := ParseHexColor(s.Background)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(v string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, v)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, v)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}
