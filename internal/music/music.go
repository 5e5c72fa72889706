// Package music plays the looping background track behind the slideshow.
//
// Audio is a nice-to-have: every failure is reported to the caller, which is
// expected to log it and carry on with a silent slideshow.
package music

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

var (
	ErrUnsupported = errors.New("unsupported audio file")
	ErrNoTrack     = errors.New("no music track configured")
)

// Patterns are the file extensions the decoder accepts.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Player owns one looping track at a time on the shared beep speaker.
type Player struct {
	volume float64

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	initDone bool
	paused   bool
	path     string
}

// NewPlayer returns a player that will play at volume (0.0 ~ 1.0).
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

func (p *Player) Path() string { return p.path }

func (p *Player) Playing() bool { return p.ctrl != nil && !p.paused }

// Play decodes path and loops it forever, replacing whatever was playing.
func (p *Player) Play(path string) error {
	if path == "" {
		return ErrNoTrack
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> loop -> volume -> ctrl
	ctrl := &beep.Ctrl{Streamer: withVolume(beep.Loop(-1, streamer), p.volume)}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	} else {
		p.stopCurrent()
		if p.format.SampleRate != format.SampleRate {
			if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
				_ = streamer.Close()
				_ = f.Close()
				return fmt.Errorf("reinit speaker: %w", err)
			}
		}
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.paused = false
	p.path = path

	speaker.Play(ctrl)
	log.Printf("[Music] Playing %s (volume: %.2f)", filepath.Base(path), p.volume)
	return nil
}

// TogglePause pauses or resumes the current track. It is a no-op when nothing
// is loaded.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Close stops playback and releases the decoder and file.
func (p *Player) Close() {
	if p.initDone {
		p.stopCurrent()
		speaker.Close()
		p.initDone = false
	}
}

func (p *Player) stopCurrent() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
}

// Pick asks the user for a track with a native file dialog. A cancelled
// dialog returns an empty path and no error.
func Pick() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Background Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// withVolume scales s by a linear volume (0.0 ~ 1.0).
func withVolume(s beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if volume <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = gain(volume)
	return v
}

// gain converts a linear volume into the base-2 exponent effects.Volume uses.
func gain(volume float64) float64 {
	if volume >= 1 {
		return 0
	}
	return math.Log2(volume)
}
