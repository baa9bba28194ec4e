package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/birthday-celebration/internal/config"
	"github.com/iburimskiy/birthday-celebration/internal/term"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[Main] failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[Main] failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[Main] failed to init screen: %v", err)
	}
	screen.HideCursor()
	screen.Clear()
	if *logPath == "" {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.Run(ctx, screen, cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	screen.Fini()
}
