package fireworks

import "image/color"

// Particle is a single fading spark of a burst.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Opacity float64
	Decay   float64
	Radius  float64

	gravity float64
}

// NewParticle creates a particle at (x, y) drawing its radius, velocity and
// decay from src.
func NewParticle(src Source, p Params, x, y float64, c color.RGBA) *Particle {
	return &Particle{
		X:       x,
		Y:       y,
		Color:   c,
		Radius:  between(src, p.Radius),
		VX:      between(src, p.Velocity),
		VY:      between(src, p.Velocity),
		Decay:   between(src, p.Decay),
		Opacity: 1,
		gravity: p.Gravity,
	}
}

// Update advances the particle one frame.
func (pt *Particle) Update() {
	pt.VY += pt.gravity
	pt.X += pt.VX
	pt.Y += pt.VY
	pt.Opacity -= pt.Decay
}

// Alive reports whether the particle is still visible.
func (pt *Particle) Alive() bool {
	return pt.Opacity > 0
}

// Draw paints the particle at its current opacity.
func (pt *Particle) Draw(s Surface) {
	s.FillCircle(pt.X, pt.Y, pt.Radius, pt.Color, pt.Opacity)
}
