// Command framedump renders the scene headlessly and writes frames as PNG
// files, for checking a page's look without opening a window.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/render"
	"github.com/iburimskiy/starlight/internal/scene"
)

func main() {
	var (
		page   = flag.String("page", "page1", "page whose foreground mode is rendered")
		frames = flag.Int("frames", 180, "number of frames to simulate")
		every  = flag.Int("every", 30, "write every Nth frame")
		width  = flag.Int("width", config.WindowWidth, "frame width in pixels")
		height = flag.Int("height", config.WindowHeight, "frame height in pixels")
		seed   = flag.Uint64("seed", 1, "random seed")
		out    = flag.String("out", "frames", "output directory")
	)
	flag.Parse()

	if err := run(*page, *frames, *every, *width, *height, *seed, *out); err != nil {
		fmt.Fprintf(os.Stderr, "framedump: %v\n", err)
		os.Exit(1)
	}
}

func run(page string, frames, every, width, height int, seed uint64, out string) error {
	if every <= 0 {
		every = 1
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	// Advance a synthetic clock at 60 fps so twinkles match a live run.
	clock := time.Now()
	sc := scene.New(scene.WithSeed(seed), scene.WithClock(func() time.Time {
		clock = clock.Add(time.Second / 60)
		return clock
	}))
	sc.Resize(width, height)
	sc.SetMode(page)

	surface := render.NewRasterSurface(width, height, config.Default().BackgroundColor())
	for i := 1; i <= frames; i++ {
		sc.Frame(surface)
		if i%every != 0 {
			continue
		}
		name := filepath.Join(out, fmt.Sprintf("%s_%04d.png", page, i))
		if err := writePNG(name, surface); err != nil {
			return err
		}
		log.Printf("[Framedump] Wrote %s", name)
	}
	return nil
}

func writePNG(name string, s *render.RasterSurface) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
