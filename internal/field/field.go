package field

import "math/rand/v2"

// Population is the fixed particle count. The population is only ever
// replaced wholesale on a resize, never grown or shrunk piecemeal.
const Population = 150

// Field owns the particle population for one drawable surface. With no
// surface attached (zero size) every operation is a no-op.
type Field struct {
	w, h      float64
	particles []Particle
	rng       *rand.Rand
}

// New returns an empty field; call Resize when a surface is attached.
func New(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Size reports the current surface bounds.
func (f *Field) Size() (w, h float64) { return f.w, f.h }

// Particles exposes the current population for the draw pass.
func (f *Field) Particles() []Particle { return f.particles }

// Resize discards the population and seeds a fresh one uniformly within
// the new bounds. Individual particles do not survive a resize.
func (f *Field) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		f.w, f.h = 0, 0
		f.particles = nil
		return
	}
	f.w, f.h = w, h
	f.particles = make([]Particle, Population)
	for i := range f.particles {
		x := f.rng.Float64() * w
		y := f.rng.Float64() * h
		f.particles[i] = Particle{
			X:     x,
			Y:     y,
			BaseX: x,
			BaseY: y,
			Size:  1 + f.rng.Float64()*2,
		}
	}
}

// Step advances every particle one frame under the regime selected by
// rank, at wall-clock seconds t.
func (f *Field) Step(rank int, t float64) {
	if f.w == 0 || f.h == 0 {
		return
	}
	for i := range f.particles {
		f.particles[i] = Advance(f.particles[i], rank, f.w, f.h, t, f.rng)
	}
}
