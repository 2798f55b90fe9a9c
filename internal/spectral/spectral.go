// Package spectral synthesizes the pseudo-eigenvalue curve shown next to
// the particle field. The curve is a stylised spectral density, not a
// real SVD: each regime has its own closed-form profile plus a noise
// floor sampled from simplex noise.
package spectral

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"rankfield/internal/core"
)

// Point is one pseudo-eigenvalue sample.
type Point struct {
	Index     int
	Magnitude float64
}

const (
	// Points is the fixed sequence length. The whole curve is regenerated
	// on every rank change, never updated incrementally.
	Points = 50

	// Ceiling is the fixed vertical render domain. Exploding-regime
	// values exceed it and clip off the top of the chart on purpose.
	Ceiling = 150.0
)

// Synthesize builds the pseudo-eigenvalue sequence for a rank. noise
// supplies per-index roughness in [0,1]; sampling is keyed on (index,
// rank) so the curve holds still for a held rank. All magnitudes are
// floored at zero.
func Synthesize(rank int, noise opensimplex.Noise) []Point {
	rank = core.ClampRank(rank)
	status := core.Classify(rank)
	r := float64(rank)

	pts := make([]Point, Points)
	for i := range pts {
		n := sample(noise, i, rank)
		var v float64
		switch status {
		case core.StatusCollapsed:
			// Steep head decay, then a near-zero tail.
			if i < 5 {
				v = 100 - float64(i)*20
			} else {
				v = n * 2
			}
		case core.StatusExploding:
			v = n*r + (r-70)*2
		default:
			v = 80*math.Pow(0.9, float64(i)) + n*5
		}
		if v < 0 {
			v = 0
		}
		pts[i] = Point{Index: i, Magnitude: v}
	}
	return pts
}

func sample(noise opensimplex.Noise, i, rank int) float64 {
	if noise == nil {
		return 0
	}
	v := noise.Eval2(float64(i)*0.35, float64(rank)*0.17)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
