package fireworks

import (
	"image/color"

	"github.com/iburimskiy/birthday-celebration/internal/config"
)

// Source supplies uniform random numbers in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Params are the tuning constants of the simulation.
type Params struct {
	Palette      []color.RGBA
	BurstSize    int
	SpawnChance  float64
	AscentSpeed  float64
	Gravity      float64
	RocketRadius float64
	Radius       config.Range
	Velocity     config.Range
	Decay        config.Range
	TrailColor   color.RGBA
	TrailAlpha   float64
}

// ParamsFromConfig builds simulation parameters from the loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	f := cfg.Fireworks
	return Params{
		Palette:      cfg.Palette(),
		BurstSize:    f.BurstSize,
		SpawnChance:  f.SpawnChance,
		AscentSpeed:  f.AscentSpeed,
		Gravity:      f.Gravity,
		RocketRadius: f.RocketRadius,
		Radius:       f.Radius,
		Velocity:     f.Velocity,
		Decay:        f.Decay,
		TrailColor:   cfg.TrailColor(),
		TrailAlpha:   f.TrailAlpha,
	}
}

// DefaultParams returns the parameters of config.Default.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default())
}

func between(src Source, r config.Range) float64 {
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// pick draws a palette entry uniformly. An empty palette yields white.
func pick(src Source, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	i := int(src.Float64() * float64(len(palette)))
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return palette[i]
}
