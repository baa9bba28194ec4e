package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/birthday-celebration/internal/config"
	"github.com/iburimskiy/birthday-celebration/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	music := flag.String("music", "", "birthday track (wav, mp3 or flac)")
	photos := flag.String("photos", "", "directory of gallery photos")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}
	if *music != "" {
		cfg.Music = *music
	}
	if *photos != "" {
		found, err := listPhotos(*photos)
		if err != nil {
			log.Printf("[Main] Warning: %v", err)
		}
		cfg.Photos = append(cfg.Photos, found...)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Happy Birthday! - Space: party, F: firework, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g := game.New(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	log.Printf("[Main] Birthday celebration loaded. Tip: click the cake to blow the candle!")
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func listPhotos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
