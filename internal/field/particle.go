package field

import (
	"image/color"
	"math"
	"math/rand/v2"

	"rankfield/internal/core"
)

// Particle is a plain record of one simulated point. Advance returns the
// next state rather than mutating in place, so the motion rules stay free
// of hidden state and testable in isolation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// BaseX/BaseY anchor the stable-regime orbit; set once at creation.
	BaseX, BaseY float64
	// Size is the base render radius, reached exactly at rank 50.
	Size float64
}

// Force coefficients per regime.
const (
	centerPull   = 0.005
	collapseDrag = 0.9
	orbitRadius  = 20.0
	orbitPull    = 0.01
	stableDrag   = 0.95
	blastRadius  = 100.0
	blastPush    = 0.01
)

// Advance computes one explicit Euler step of p under the regime selected
// by rank. t is wall-clock seconds, w and h the surface bounds. Only the
// exploding regime wraps toroidally; the other two may drift off-surface
// transiently, which is accepted.
func Advance(p Particle, rank int, w, h float64, t float64, rng *rand.Rand) Particle {
	status := core.Classify(rank)
	switch status {
	case core.StatusCollapsed:
		p.VX += (w/2 - p.X) * centerPull
		p.VY += (h/2 - p.Y) * centerPull
		p.VX *= collapseDrag
		p.VY *= collapseDrag
	case core.StatusStable:
		tx := p.BaseX + orbitRadius*math.Sin(t+p.BaseY)
		ty := p.BaseY + orbitRadius*math.Cos(t+p.BaseX)
		p.VX += (tx - p.X) * orbitPull
		p.VY += (ty - p.Y) * orbitPull
		p.VX *= stableDrag
		p.VY *= stableDrag
	case core.StatusExploding:
		mag := float64(core.ClampRank(rank)-70) / 10
		p.VX += (rng.Float64() - 0.5) * mag
		p.VY += (rng.Float64() - 0.5) * mag
		dx := p.X - w/2
		dy := p.Y - h/2
		if math.Hypot(dx, dy) < blastRadius {
			p.VX += dx * blastPush
			p.VY += dy * blastPush
		}
	}

	p.X += p.VX
	p.Y += p.VY

	if status == core.StatusExploding {
		p.X = wrap(p.X, w)
		p.Y = wrap(p.Y, h)
	}
	return p
}

// Radius is the render radius at the given rank: linear in rank, exactly
// Size at rank 50.
func (p Particle) Radius(rank int) float64 {
	return p.Size * float64(core.ClampRank(rank)) / 50
}

// Tint returns the display color for any particle at the given rank.
// Collapse fades a muted neutral in as rank approaches 0; the stable
// regime uses a fixed accent; explosion fades an alarm tone in as rank
// climbs past 70.
func Tint(rank int) color.RGBA {
	rank = core.ClampRank(rank)
	switch core.Classify(rank) {
	case core.StatusCollapsed:
		a := 0.3 + float64(30-rank)/30*0.7
		return fade(color.RGBA{R: 128, G: 132, B: 148, A: 255}, a)
	case core.StatusExploding:
		a := 0.4 + float64(rank-70)/30*0.6
		return fade(color.RGBA{R: 235, G: 70, B: 52, A: 255}, a)
	}
	return color.RGBA{R: 74, G: 197, B: 168, A: 230}
}

// fade scales all four channels so the result stays alpha-premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// wrap maps x into [0, limit) toroidally.
func wrap(x, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	x = math.Mod(x, limit)
	if x < 0 {
		x += limit
	}
	return x
}
