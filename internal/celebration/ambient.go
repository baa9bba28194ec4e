package celebration

import (
	"image/color"
	"math"
	"time"
)

// Shape of a confetti piece.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Balloon floats from the bottom edge to above the top edge.
type Balloon struct {
	Color    color.RGBA
	Shade    color.RGBA
	Left     float64 // fraction of the viewport width
	Duration time.Duration
	Delay    time.Duration
	Born     time.Duration
}

// Progress is the float animation position in [0, 1] at now.
func (b Balloon) Progress(now time.Duration) float64 {
	return progress(now-b.Born-b.Delay, b.Duration)
}

// Confetti falls from the top edge while spinning.
type Confetti struct {
	Color    color.RGBA
	Left     float64
	Duration time.Duration
	Delay    time.Duration
	Shape    Shape
	Born     time.Duration
}

// Progress is the fall position in [0, 1] at now.
func (c Confetti) Progress(now time.Duration) float64 {
	return progress(now-c.Born-c.Delay, c.Duration)
}

// Sparkle flies from (X, Y) towards (X+DX, Y+DY) while shrinking away.
type Sparkle struct {
	X, Y   float64
	DX, DY float64
	Born   time.Duration
}

// Progress is the flight position in [0, 1] at now.
func (s Sparkle) Progress(now time.Duration) float64 {
	return progress(now-s.Born, sparkleLifetime)
}

// Message is a surprise wish that pops in and out at the centre.
type Message struct {
	Text string
	Born time.Duration
}

// Scale follows the pop-in curve: 0 → 1.2 at half time → 0.
func (m Message) Scale(now time.Duration) float64 {
	t := EaseOutQuad(progress(now-m.Born, messageLifetime))
	if t < 0.5 {
		return 2.4 * t
	}
	return 2.4 * (1 - t)
}

// Opacity follows the same curve peaking at 1.
func (m Message) Opacity(now time.Duration) float64 {
	return m.Scale(now) / 1.2
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

// EaseOutQuad decelerates towards the end: f(t) = 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutSine is the CSS ease-in-out approximation used for floating.
func EaseInOutSine(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// shade adds amount to every channel, clamping to [0, 255].
func shade(c color.RGBA, amount int) color.RGBA {
	clamp := func(v int) uint8 {
		return uint8(min(max(v, 0), 255))
	}
	return color.RGBA{
		R: clamp(int(c.R) + amount),
		G: clamp(int(c.G) + amount),
		B: clamp(int(c.B) + amount),
		A: c.A,
	}
}
