package field

import "testing"

func TestResizeSeedsFullPopulationInBounds(t *testing.T) {
	f := New(testRand())
	sizes := [][2]float64{{800, 600}, {320, 240}, {1920, 1080}}
	for _, s := range sizes {
		f.Resize(s[0], s[1])
		ps := f.Particles()
		if len(ps) != Population {
			t.Fatalf("resize to %vx%v: %d particles, want %d", s[0], s[1], len(ps), Population)
		}
		for i, p := range ps {
			if p.X < 0 || p.X >= s[0] || p.Y < 0 || p.Y >= s[1] {
				t.Fatalf("particle %d seeded out of bounds: (%v, %v)", i, p.X, p.Y)
			}
			if p.BaseX != p.X || p.BaseY != p.Y {
				t.Fatalf("particle %d anchor not set at creation", i)
			}
		}
	}
}

func TestStepWithoutSurfaceIsNoOp(t *testing.T) {
	f := New(testRand())
	f.Step(50, 0)
	if len(f.Particles()) != 0 {
		t.Fatal("step without a surface should do no work")
	}
}

func TestResizeReplacesPopulationWholesale(t *testing.T) {
	f := New(testRand())
	f.Resize(800, 600)
	first := f.Particles()[0]
	f.Resize(400, 300)
	if len(f.Particles()) != Population {
		t.Fatalf("population size changed to %d", len(f.Particles()))
	}
	if f.Particles()[0] == first {
		t.Fatal("resize should reseed, not preserve, particles")
	}
}

func TestStepAdvancesParticles(t *testing.T) {
	f := New(testRand())
	f.Resize(800, 600)
	before := make([]Particle, Population)
	copy(before, f.Particles())
	f.Step(50, 1.0)
	moved := 0
	for i, p := range f.Particles() {
		if p != before[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("step left every particle untouched")
	}
}
