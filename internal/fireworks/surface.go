package fireworks

import "image/color"

// Surface is the 2D drawable the field renders into. Implementations
// report their current size on every call; the simulation never caches it.
type Surface interface {
	Size() (width, height float64)
	// Fade paints c at the given opacity over the whole surface.
	Fade(c color.RGBA, alpha float64)
	// FillCircle paints a filled circle at the given opacity.
	FillCircle(x, y, radius float64, c color.RGBA, alpha float64)
}
