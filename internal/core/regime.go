package core

import (
	"math"
	"math/rand/v2"
)

// Status classifies the control rank into one of three dynamical regimes.
type Status uint8

const (
	// StatusCollapsed covers ranks below 30: the field contracts onto its center.
	StatusCollapsed Status = iota
	// StatusStable covers ranks 30 through 70 inclusive.
	StatusStable
	// StatusExploding covers ranks above 70: motion destabilizes and wraps.
	StatusExploding
)

// Rank thresholds separating the regimes. Both boundaries are closed on
// the stable side: ranks of exactly 30 and 70 classify as stable.
const (
	collapseBelow = 30
	explodeAbove  = 70
)

// DivergentGradient is the display threshold above which a gradient norm
// is presented as divergent ("NaN"). The stored value is never mutated.
const DivergentGradient = 1000.0

// String returns the display name of the regime.
func (s Status) String() string {
	switch s {
	case StatusCollapsed:
		return "collapsed"
	case StatusStable:
		return "stable"
	case StatusExploding:
		return "exploding"
	}
	return "unknown"
}

// ClampRank restricts a rank to the supported [0, 100] domain.
func ClampRank(rank int) int {
	if rank < 0 {
		return 0
	}
	if rank > 100 {
		return 100
	}
	return rank
}

// Classify maps a rank to its regime.
func Classify(rank int) Status {
	rank = ClampRank(rank)
	switch {
	case rank < collapseBelow:
		return StatusCollapsed
	case rank > explodeAbove:
		return StatusExploding
	}
	return StatusStable
}

// Metrics holds the four scalars derived from a rank value.
type Metrics struct {
	Loss       float64
	Memory     float64
	Capability float64
	Gradient   float64
}

// ComputeMetrics derives the metric set for a rank. The stable-regime
// gradient carries a small uniform jitter drawn from rng; every other
// value is a closed-form function of the rank.
func ComputeMetrics(rank int, rng *rand.Rand) Metrics {
	rank = ClampRank(rank)
	r := float64(rank)

	var m Metrics
	switch Classify(rank) {
	case StatusCollapsed:
		m.Loss = 2.5 + (30-r)*0.1
		m.Memory = 12 + r*0.1
		m.Capability = r * 2
		m.Gradient = 0.001
	case StatusExploding:
		m.Loss = 0.5 + math.Exp((r-70)/5)
		m.Memory = 40 + (r-70)*2
		m.Capability = 100 - (r-70)*3
		m.Gradient = math.Pow(10, (r-60)/5)
	default:
		m.Loss = 0.4 - math.Abs(50-r)*0.01
		m.Memory = 24 + (r-30)*0.4
		m.Capability = 140 - math.Abs(50-r)
		m.Gradient = 1.0 + (rng.Float64()-0.5)*0.1
	}

	// Memory models a hard device ceiling; loss and capability never go
	// negative regardless of regime.
	m.Loss = math.Max(0, m.Loss)
	m.Memory = math.Min(80, math.Max(0, m.Memory))
	m.Capability = math.Max(0, m.Capability)
	return m
}
