package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Fireworks.BurstSize)
	assert.Equal(t, 0.05, cfg.Fireworks.SpawnChance)
	assert.Equal(t, 5.0, cfg.Fireworks.AscentSpeed)
	assert.Equal(t, 0.1, cfg.Fireworks.Gravity)
	assert.Equal(t, Range{Min: 1, Max: 4}, cfg.Fireworks.Radius)
	assert.Equal(t, Range{Min: -4, Max: 4}, cfg.Fireworks.Velocity)
	assert.Equal(t, Range{Min: 0.01, Max: 0.03}, cfg.Fireworks.Decay)
	assert.Len(t, cfg.Palette(), 11)
}

func TestPaletteParsesHex(t *testing.T) {
	cfg := Default()
	pal := cfg.Palette()
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}, pal[0])
	assert.Equal(t, color.RGBA{R: 0x0f, G: 0x0c, B: 0x29, A: 0xff}, cfg.TrailColor())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "overrides keep other defaults",
			yamlContent: `
colors: ["#ffffff", "#000000"]
fireworks:
  burstSize: 80
ambient:
  balloonInterval: 2s
music: party.mp3
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Len(t, cfg.Palette(), 2)
				assert.Equal(t, 80, cfg.Fireworks.BurstSize)
				assert.Equal(t, 0.05, cfg.Fireworks.SpawnChance)
				assert.Equal(t, 2*time.Second, cfg.Ambient.BalloonInterval)
				assert.Equal(t, 10*time.Second, cfg.Ambient.BalloonLifetime)
				assert.Equal(t, "party.mp3", cfg.Music)
			},
		},
		{
			name:        "bad palette color",
			yamlContent: `colors: ["pink"]`,
			wantErr:     true,
			errContains: "bad palette color",
		},
		{
			name: "spawn chance out of range",
			yamlContent: `
fireworks:
  spawnChance: 1.5
`,
			wantErr:     true,
			errContains: "spawnChance",
		},
		{
			name: "inverted range",
			yamlContent: `
fireworks:
  radius: {min: 5, max: 1}
`,
			wantErr:     true,
			errContains: "radius range is inverted",
		},
		{
			name:        "malformed yaml",
			yamlContent: "fireworks: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "celebration.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlContent), 0o644))

			cfg, err := Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
