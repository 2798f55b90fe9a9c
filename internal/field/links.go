package field

import "math"

// LinkRadius is the distance below which two particles are joined by a
// proximity edge.
const LinkRadius = 60.0

// linkCutoff is the rank at and above which no edges are drawn: the
// structural manifold is considered broken down.
const linkCutoff = 80

// Link is one proximity edge for the current frame, carrying both
// endpoints for the stroke pass. Links are recomputed every frame and
// never persisted.
type Link struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Links computes the proximity edge set for the current particle
// positions. This is an O(n²) pass over the fixed population, which is
// the one quadratic hot path; fine at n=150, a spatial index would be
// needed for much larger populations.
func Links(particles []Particle, rank int) []Link {
	if rank >= linkCutoff {
		return nil
	}
	var links []Link
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			a, b := particles[i], particles[j]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < LinkRadius {
				links = append(links, Link{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y})
			}
		}
	}
	return links
}
