package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	return colorful.Hsv(math.Mod(h, 360), s, v).Clamped().RGB255()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withAlpha returns c at the given opacity as a non-premultiplied colour.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha) * 255)}
}
