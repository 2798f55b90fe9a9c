package spectral

import (
	"math"
	"testing"

	opensimplex "github.com/ojrac/opensimplex-go"
)

func testNoise() opensimplex.Noise {
	return opensimplex.NewNormalized(42)
}

func TestSequenceLengthAndFloor(t *testing.T) {
	noise := testNoise()
	for _, rank := range []int{0, 10, 30, 50, 70, 85, 100} {
		pts := Synthesize(rank, noise)
		if len(pts) != Points {
			t.Fatalf("rank %d: %d points, want %d", rank, len(pts), Points)
		}
		for _, p := range pts {
			if p.Magnitude < 0 {
				t.Fatalf("rank %d index %d: magnitude %v < 0", rank, p.Index, p.Magnitude)
			}
		}
	}
}

func TestCollapsedHeadDecay(t *testing.T) {
	pts := Synthesize(10, testNoise())
	for i := 0; i < 5; i++ {
		want := 100 - float64(i)*20
		if pts[i].Magnitude != want {
			t.Errorf("index %d: magnitude %v, want %v", i, pts[i].Magnitude, want)
		}
	}
	for i := 5; i < Points; i++ {
		if pts[i].Magnitude >= 2 {
			t.Errorf("index %d: tail magnitude %v, want < 2", i, pts[i].Magnitude)
		}
	}
}

func TestStablePowerLawDecay(t *testing.T) {
	pts := Synthesize(50, testNoise())
	for i, p := range pts {
		base := 80 * math.Pow(0.9, float64(i))
		if p.Magnitude < base || p.Magnitude > base+5 {
			t.Errorf("index %d: magnitude %v outside [%v, %v]", i, p.Magnitude, base, base+5)
		}
	}
}

func TestExplodingHeavyTail(t *testing.T) {
	pts := Synthesize(90, testNoise())
	for i, p := range pts {
		if p.Magnitude < 40 {
			t.Errorf("index %d: magnitude %v below (rank-70)*2 floor", i, p.Magnitude)
		}
		if p.Magnitude > 40+90 {
			t.Errorf("index %d: magnitude %v above noise ceiling", i, p.Magnitude)
		}
	}
}

func TestCurveStableForHeldRank(t *testing.T) {
	noise := testNoise()
	a := Synthesize(50, noise)
	b := Synthesize(50, noise)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: curve changed for a held rank", i)
		}
	}
}
