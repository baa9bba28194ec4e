package celebration

import (
	"time"

	"github.com/iburimskiy/birthday-celebration/internal/timer"
)

const (
	lightboxFade = 300 * time.Millisecond
	photoSwap    = 200 * time.Millisecond
)

// Key is a lightbox navigation key.
type Key int

const (
	KeyEscape Key = iota
	KeyLeft
	KeyRight
)

// Gallery is the photo strip with its lightbox viewer.
type Gallery struct {
	sched *timer.Scheduler
	items []string

	open     bool
	visible  bool
	index    int
	shown    int
	openedAt time.Duration
	closedAt time.Duration
	swapAt   time.Duration

	hideTimer timer.ID
	swapTimer timer.ID
}

// NewGallery creates a gallery over the given photo sources.
func NewGallery(sched *timer.Scheduler, items ...string) *Gallery {
	return &Gallery{sched: sched, items: append([]string(nil), items...)}
}

// Add appends photos to the strip.
func (g *Gallery) Add(items ...string) {
	g.items = append(g.items, items...)
}

// Items returns the photo sources in order.
func (g *Gallery) Items() []string {
	return g.items
}

// Len is the number of photos.
func (g *Gallery) Len() int {
	return len(g.items)
}

// Open shows photo i in the lightbox. Out-of-range indices are ignored.
func (g *Gallery) Open(i int) bool {
	if i < 0 || i >= len(g.items) {
		return false
	}
	g.cancel()
	g.open = true
	g.visible = true
	g.index = i
	g.shown = i
	g.openedAt = g.sched.Now()
	return true
}

// Close fades the lightbox out; it stops being visible once the fade ends.
func (g *Gallery) Close() {
	if !g.open {
		return
	}
	g.cancel()
	g.open = false
	g.closedAt = g.sched.Now()
	g.hideTimer = g.sched.After(lightboxFade, func() {
		g.visible = false
		g.hideTimer = 0
	})
}

// Navigate moves dir photos forward (or backward when negative),
// wrapping around the ends. The displayed photo switches after a short
// fade.
func (g *Gallery) Navigate(dir int) {
	n := len(g.items)
	if !g.open || n == 0 {
		return
	}
	g.index = ((g.index+dir)%n + n) % n
	g.swapAt = g.sched.Now()
	if g.swapTimer != 0 {
		g.sched.Cancel(g.swapTimer)
	}
	target := g.index
	g.swapTimer = g.sched.After(photoSwap, func() {
		g.shown = target
		g.swapTimer = 0
	})
}

// HandleKey applies a lightbox key and reports whether it was consumed.
// Keys do nothing while the lightbox is closed.
func (g *Gallery) HandleKey(k Key) bool {
	if !g.open {
		return false
	}
	switch k {
	case KeyEscape:
		g.Close()
	case KeyLeft:
		g.Navigate(-1)
	case KeyRight:
		g.Navigate(1)
	default:
		return false
	}
	return true
}

// IsOpen reports whether the lightbox accepts input.
func (g *Gallery) IsOpen() bool {
	return g.open
}

// Visible reports whether the lightbox should be drawn.
func (g *Gallery) Visible() bool {
	return g.visible
}

// Index is the selected photo.
func (g *Gallery) Index() int {
	return g.index
}

// Shown is the photo currently on screen; it lags Index during a swap.
func (g *Gallery) Shown() int {
	return g.shown
}

// Opacity of the lightbox backdrop at the current time.
func (g *Gallery) Opacity() float64 {
	now := g.sched.Now()
	if g.open {
		return progress(now-g.openedAt, lightboxFade)
	}
	if g.visible {
		return 1 - progress(now-g.closedAt, lightboxFade)
	}
	return 0
}

// PhotoScale is the zoom of the displayed photo: 0.8 while fading in or
// swapping, easing to 1.
func (g *Gallery) PhotoScale() float64 {
	now := g.sched.Now()
	var t float64
	switch {
	case !g.open:
		t = 1 - progress(now-g.closedAt, lightboxFade)
	case g.swapTimer != 0:
		t = 0
	case g.swapAt > g.openedAt:
		t = progress(now-g.swapAt-photoSwap, lightboxFade)
	default:
		t = progress(now-g.openedAt, lightboxFade)
	}
	return 0.8 + 0.2*EaseOutQuad(t)
}

func (g *Gallery) cancel() {
	if g.hideTimer != 0 {
		g.sched.Cancel(g.hideTimer)
		g.hideTimer = 0
	}
	if g.swapTimer != 0 {
		g.sched.Cancel(g.swapTimer)
		g.swapTimer = 0
	}
}
