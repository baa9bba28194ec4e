package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{"red", 0, 1, 1, 255, 0, 0},
		{"green", 120, 1, 1, 0, 255, 0},
		{"blue wraps", 240 + 360, 1, 1, 0, 0, 255},
		{"black", 77, 0.5, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 25}, withAlpha(c, 0.1))
	assert.Equal(t, uint8(0), withAlpha(c, -2).A)
	assert.Equal(t, uint8(255), withAlpha(c, 3).A)
}
