// Package term renders the fireworks field in a terminal.
package term

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/birthday-celebration/internal/config"
	"github.com/iburimskiy/birthday-celebration/internal/fireworks"
	"github.com/iburimskiy/birthday-celebration/internal/loop"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Run drives a fireworks field on an initialised screen until ctx is
// cancelled or the user quits with Esc, q or Ctrl-C. Space toggles the
// celebration and f launches a single rocket.
func Run(ctx context.Context, screen tcell.Screen, cfg *config.Config, src fireworks.Source) {
	field := fireworks.NewField(src, fireworks.ParamsFromConfig(cfg))
	cols, rows := screen.Size()
	canvas := NewCanvas(cols, rows, CellWidth, CellHeight, cfg.TrailColor())

	var celebrating atomic.Bool
	celebrating.Store(true)
	var launches atomic.Int32

	tps := max(cfg.TPS, 1)
	l := loop.New(time.Second/time.Duration(tps), func(time.Duration) {
		canvas.Resize(screen.Size())
		for n := launches.Swap(0); n > 0; n-- {
			field.Launch(canvas.Size())
		}
		field.Step(canvas, celebrating.Load())
		canvas.Present(screen)
	})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					l.Stop()
					return
				case ev.Rune() == ' ':
					celebrating.Store(!celebrating.Load())
				case ev.Rune() == 'f':
					launches.Add(1)
				}
			}
		}
	}()

	l.Run(ctx)
	spawned, launched, retired := field.Stats()
	log.Printf("[Term] %d frames, %d spawned, %d launched, %d retired", l.Ticks(), spawned, launched, retired)
}
