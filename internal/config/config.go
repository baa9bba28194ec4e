package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 36
	ButtonX      = 20
	ButtonY      = 36
	ButtonGap    = 12
)

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FireworksConfig tunes the particle simulation.
type FireworksConfig struct {
	BurstSize    int     `yaml:"burstSize"`
	SpawnChance  float64 `yaml:"spawnChance"`
	AscentSpeed  float64 `yaml:"ascentSpeed"`
	Gravity      float64 `yaml:"gravity"`
	RocketRadius float64 `yaml:"rocketRadius"`
	Radius       Range   `yaml:"radius"`
	Velocity     Range   `yaml:"velocity"`
	Decay        Range   `yaml:"decay"`
	TrailColor   string  `yaml:"trailColor"`
	TrailAlpha   float64 `yaml:"trailAlpha"`
}

// AmbientConfig tunes balloons, confetti and the click flourishes.
type AmbientConfig struct {
	BalloonCount    int           `yaml:"balloonCount"`
	BalloonStagger  time.Duration `yaml:"balloonStagger"`
	BalloonInterval time.Duration `yaml:"balloonInterval"`
	BalloonLifetime time.Duration `yaml:"balloonLifetime"`

	ConfettiCount    int           `yaml:"confettiCount"`
	ConfettiStagger  time.Duration `yaml:"confettiStagger"`
	ConfettiInterval time.Duration `yaml:"confettiInterval"`
	ConfettiPerTick  int           `yaml:"confettiPerTick"`
	ConfettiLifetime time.Duration `yaml:"confettiLifetime"`

	AutoStartDelay   time.Duration `yaml:"autoStartDelay"`
	AutoConfetti     int           `yaml:"autoConfetti"`
	AutoStagger      time.Duration `yaml:"autoStagger"`
	SparklesPerClick int           `yaml:"sparklesPerClick"`
}

// Config is the full runtime configuration. Zero-valued fields in a YAML
// file keep their defaults.
type Config struct {
	Colors    []string        `yaml:"colors"`
	Fireworks FireworksConfig `yaml:"fireworks"`
	Ambient   AmbientConfig   `yaml:"ambient"`
	Music     string          `yaml:"music"`
	Photos    []string        `yaml:"photos"`
	TPS       int             `yaml:"tps"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Colors: []string{
			"#ff6b9d", "#c06c84", "#ffd93d", "#6bcf7f",
			"#4ea8de", "#667eea", "#764ba2", "#f093fb",
			"#f5576c", "#4facfe", "#00f2fe",
		},
		Fireworks: FireworksConfig{
			BurstSize:    50,
			SpawnChance:  0.05,
			AscentSpeed:  5,
			Gravity:      0.1,
			RocketRadius: 3,
			Radius:       Range{Min: 1, Max: 4},
			Velocity:     Range{Min: -4, Max: 4},
			Decay:        Range{Min: 0.01, Max: 0.03},
			TrailColor:   "#0f0c29",
			TrailAlpha:   0.1,
		},
		Ambient: AmbientConfig{
			BalloonCount:    15,
			BalloonStagger:  300 * time.Millisecond,
			BalloonInterval: time.Second,
			BalloonLifetime: 10 * time.Second,

			ConfettiCount:    100,
			ConfettiStagger:  30 * time.Millisecond,
			ConfettiInterval: 500 * time.Millisecond,
			ConfettiPerTick:  10,
			ConfettiLifetime: 5 * time.Second,

			AutoStartDelay:   time.Second,
			AutoConfetti:     50,
			AutoStagger:      50 * time.Millisecond,
			SparklesPerClick: 5,
		},
		TPS: 60,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and palette entries.
func (c *Config) Validate() error {
	if len(c.Colors) == 0 {
		return fmt.Errorf("colors cannot be empty")
	}
	for _, hex := range c.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("bad palette color %q: %w", hex, err)
		}
	}
	if _, err := colorful.Hex(c.Fireworks.TrailColor); err != nil {
		return fmt.Errorf("bad trail color %q: %w", c.Fireworks.TrailColor, err)
	}

	f := c.Fireworks
	if f.BurstSize <= 0 {
		return fmt.Errorf("burstSize must be positive, got %d", f.BurstSize)
	}
	if f.SpawnChance < 0 || f.SpawnChance > 1 {
		return fmt.Errorf("spawnChance must be in [0, 1], got %v", f.SpawnChance)
	}
	if f.AscentSpeed <= 0 {
		return fmt.Errorf("ascentSpeed must be positive, got %v", f.AscentSpeed)
	}
	if f.TrailAlpha < 0 || f.TrailAlpha > 1 {
		return fmt.Errorf("trailAlpha must be in [0, 1], got %v", f.TrailAlpha)
	}
	for name, r := range map[string]Range{"radius": f.Radius, "velocity": f.Velocity, "decay": f.Decay} {
		if r.Max < r.Min {
			return fmt.Errorf("%s range is inverted: [%v, %v)", name, r.Min, r.Max)
		}
	}
	if f.Decay.Min <= 0 {
		return fmt.Errorf("decay must be positive, got min %v", f.Decay.Min)
	}

	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}

	a := c.Ambient
	for name, d := range map[string]time.Duration{
		"balloonInterval":  a.BalloonInterval,
		"confettiInterval": a.ConfettiInterval,
		"balloonLifetime":  a.BalloonLifetime,
		"confettiLifetime": a.ConfettiLifetime,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}

	return nil
}

// Palette returns the parsed colour list. Invalid entries are skipped;
// Validate reports them.
func (c *Config) Palette() []color.RGBA {
	out := make([]color.RGBA, 0, len(c.Colors))
	for _, hex := range c.Colors {
		if rgb, ok := parseHex(hex); ok {
			out = append(out, rgb)
		}
	}
	return out
}

// TrailColor returns the fade overlay colour.
func (c *Config) TrailColor() color.RGBA {
	rgb, _ := parseHex(c.Fireworks.TrailColor)
	return rgb
}

func parseHex(hex string) (color.RGBA, bool) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
