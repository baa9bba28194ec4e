package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the persistent fireworks layer. It is never cleared, only
// faded, so rockets and sparks leave trails.
type canvas struct {
	img *ebiten.Image
}

// resize recreates the layer when the window size changes. A zero-sized
// window leaves the canvas empty.
func (c *canvas) resize(width, height int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	c.img = ebiten.NewImage(width, height)
}

func (c *canvas) Size() (float64, float64) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) Fade(col color.RGBA, alpha float64) {
	if c.img == nil {
		return
	}
	w, h := c.Size()
	vector.DrawFilledRect(c.img, 0, 0, float32(w), float32(h), withAlpha(col, alpha), false)
}

func (c *canvas) FillCircle(x, y, radius float64, col color.RGBA, alpha float64) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), withAlpha(col, alpha), true)
}
