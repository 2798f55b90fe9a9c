package field

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func TestCollapsePullsTowardCenter(t *testing.T) {
	p := Particle{X: 700, Y: 100}
	rng := testRand()
	before := math.Hypot(p.X-400, p.Y-300)
	for i := 0; i < 200; i++ {
		p = Advance(p, 10, 800, 600, 0, rng)
	}
	after := math.Hypot(p.X-400, p.Y-300)
	if after >= before {
		t.Fatalf("collapse regime moved particle away from center: %v -> %v", before, after)
	}
}

func TestStableOrbitStaysNearAnchor(t *testing.T) {
	p := Particle{X: 200, Y: 200, BaseX: 200, BaseY: 200}
	rng := testRand()
	for i := 0; i < 2000; i++ {
		p = Advance(p, 50, 800, 600, float64(i)/60, rng)
		if d := math.Hypot(p.X-p.BaseX, p.Y-p.BaseY); d > 200 {
			t.Fatalf("stable particle drifted %v units from anchor at step %d", d, i)
		}
	}
}

func TestExplodingWrapsIntoBounds(t *testing.T) {
	const w, h = 800.0, 600.0
	rng := testRand()
	starts := []Particle{
		{X: -50, Y: 300, VX: -40},
		{X: 850, Y: 300, VX: 40},
		{X: 400, Y: -900, VY: -10},
		{X: 400, Y: 300, VX: 500, VY: 500},
	}
	for _, p := range starts {
		for i := 0; i < 50; i++ {
			p = Advance(p, 95, w, h, 0, rng)
			if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
				t.Fatalf("exploding particle escaped bounds: (%v, %v)", p.X, p.Y)
			}
		}
	}
}

func TestNonExplodingRegimesDoNotWrap(t *testing.T) {
	rng := testRand()
	// A stable particle anchored off-surface is left alone rather than
	// wrapped back in.
	p := Particle{X: -30, Y: -30, BaseX: -30, BaseY: -30}
	p = Advance(p, 50, 800, 600, 0, rng)
	if p.X > 0 && p.Y > 0 {
		t.Fatalf("stable particle was wrapped: (%v, %v)", p.X, p.Y)
	}
}

func TestRegimeSwitchIsImmediate(t *testing.T) {
	rng := testRand()
	// One frame at rank 50, then a jump to 95: the very next step must
	// already apply exploding physics (wraparound).
	p := Particle{X: 810, Y: 300, BaseX: 810, BaseY: 300}
	p = Advance(p, 50, 800, 600, 0, rng)
	p = Advance(p, 95, 800, 600, 0, rng)
	if p.X < 0 || p.X >= 800 {
		t.Fatalf("rank jump did not switch to exploding physics, x = %v", p.X)
	}
}

func TestRadiusScalesWithRank(t *testing.T) {
	p := Particle{Size: 2}
	if got := p.Radius(50); got != 2 {
		t.Errorf("Radius(50) = %v, want Size (2)", got)
	}
	if got := p.Radius(100); got != 4 {
		t.Errorf("Radius(100) = %v, want 4", got)
	}
	if got := p.Radius(0); got != 0 {
		t.Errorf("Radius(0) = %v, want 0", got)
	}
}

func TestTintPerRegime(t *testing.T) {
	low := Tint(0)
	lowEdge := Tint(29)
	if low.A <= lowEdge.A {
		t.Errorf("collapse opacity should rise toward rank 0: A(0)=%d A(29)=%d", low.A, lowEdge.A)
	}
	hot := Tint(100)
	warm := Tint(71)
	if hot.A <= warm.A {
		t.Errorf("exploding opacity should rise with rank: A(100)=%d A(71)=%d", hot.A, warm.A)
	}
	if Tint(40) != Tint(60) {
		t.Error("stable tint should be a fixed accent tone")
	}
}
