package fireworks

import "image/color"

// Firework is a rocket that rises to TargetY and bursts into particles.
type Firework struct {
	X, Y     float64
	TargetY  float64
	Speed    float64
	Color    color.RGBA
	Exploded bool

	particles []*Particle
	src       Source
	params    Params
}

// NewFirework launches a rocket from the bottom edge of a width×height field.
func NewFirework(src Source, p Params, width, height float64) *Firework {
	return &Firework{
		X:       src.Float64() * width,
		Y:       height,
		TargetY: src.Float64() * height * 0.5,
		Speed:   p.AscentSpeed,
		Color:   pick(src, p.Palette),
		src:     src,
		params:  p,
	}
}

// Update advances the rocket or, once exploded, its particles. Expired
// particles are dropped in the same pass so they are never drawn again.
func (f *Firework) Update() {
	if !f.Exploded {
		f.Y -= f.Speed
		if f.Y <= f.TargetY {
			f.Explode()
		}
		return
	}

	live := f.particles[:0]
	for _, pt := range f.particles {
		pt.Update()
		if pt.Alive() {
			live = append(live, pt)
		}
	}
	for i := len(live); i < len(f.particles); i++ {
		f.particles[i] = nil
	}
	f.particles = live
}

// Explode creates the burst at the current position. Only the first call
// has any effect.
func (f *Firework) Explode() {
	if f.Exploded {
		return
	}
	f.particles = make([]*Particle, 0, f.params.BurstSize)
	for i := 0; i < f.params.BurstSize; i++ {
		f.particles = append(f.particles, NewParticle(f.src, f.params, f.X, f.Y, f.Color))
	}
	f.Exploded = true
}

// Done reports whether the firework has exploded and every particle faded.
func (f *Firework) Done() bool {
	return f.Exploded && len(f.particles) == 0
}

// Particles returns the live particles of the burst.
func (f *Firework) Particles() []*Particle {
	return f.particles
}

// Draw paints the rocket or its burst.
func (f *Firework) Draw(s Surface) {
	if !f.Exploded {
		s.FillCircle(f.X, f.Y, f.params.RocketRadius, f.Color, 1)
		return
	}
	for _, pt := range f.particles {
		pt.Draw(s)
	}
}
