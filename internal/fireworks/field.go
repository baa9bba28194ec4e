package fireworks

// Field owns the live fireworks and renders one frame per Step.
type Field struct {
	params    Params
	src       Source
	fireworks []*Firework

	spawned  int
	launched int
	retired  int
}

// NewField creates an empty field.
func NewField(src Source, p Params) *Field {
	return &Field{params: p, src: src}
}

// Step renders one frame: trail fade, maybe a new rocket while
// celebrating, then update/draw/cull of every live firework.
func (fd *Field) Step(s Surface, celebrating bool) {
	w, h := s.Size()
	empty := w <= 0 || h <= 0

	if !empty {
		s.Fade(fd.params.TrailColor, fd.params.TrailAlpha)
	}

	if celebrating && !empty && fd.src.Float64() < fd.params.SpawnChance {
		fd.add(NewFirework(fd.src, fd.params, w, h))
		fd.spawned++
	}

	next := fd.fireworks[:0]
	for _, f := range fd.fireworks {
		f.Update()
		if !empty {
			f.Draw(s)
		}
		if f.Done() {
			fd.retired++
			continue
		}
		next = append(next, f)
	}
	for i := len(next); i < len(fd.fireworks); i++ {
		fd.fireworks[i] = nil
	}
	fd.fireworks = next
}

// Launch forces a new firework into a width×height field regardless of
// the celebrating flag. Zero-sized fields launch nothing.
func (fd *Field) Launch(width, height float64) *Firework {
	if width <= 0 || height <= 0 {
		return nil
	}
	f := NewFirework(fd.src, fd.params, width, height)
	fd.add(f)
	fd.launched++
	return f
}

func (fd *Field) add(f *Firework) {
	fd.fireworks = append(fd.fireworks, f)
}

// Fireworks returns the live fireworks in launch order.
func (fd *Field) Fireworks() []*Firework {
	return fd.fireworks
}

// Len is the number of live fireworks.
func (fd *Field) Len() int {
	return len(fd.fireworks)
}

// Stats reports how many fireworks were spawned by chance, launched
// explicitly and retired since creation.
func (fd *Field) Stats() (spawned, launched, retired int) {
	return fd.spawned, fd.launched, fd.retired
}
