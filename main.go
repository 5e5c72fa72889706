package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/game"
)

func main() {
	settingsPath := flag.String("config", "", "path to a YAML settings file")
	musicPath := flag.String("music", "", "background music (wav, mp3 or flac); overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starlight: %v\n", err)
		os.Exit(1)
	}
	if *musicPath != "" {
		settings.Music = *musicPath
	}

	if err := game.Run(settings); err != nil {
		panic(err)
	}
}
