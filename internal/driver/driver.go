// Package driver animates the rank autonomously: a composite oscillator
// plus smooth noise produces a moving target, and the live rank is
// nudged toward it with exponential smoothing each tick.
package driver

import (
	"math"

	"github.com/aquilax/go-perlin"

	"rankfield/internal/core"
)

// Oscillator shape. The phase runs on absolute epoch seconds, not
// seconds since the driver started; restarting the driver keeps the
// oscillator where the wall clock puts it.
const (
	slowFreq = 0.5
	slowAmp  = 30.0
	fastFreq = 2.5
	fastAmp  = 10.0
	noiseAmp = 2.5

	smoothing = 0.05
)

// Driver produces target ranks while enabled. Any direct external rank
// change is a manual override and must stop a running driver.
type Driver struct {
	clock   core.Clock
	noise   *perlin.Perlin
	running bool
}

// New constructs a driver reading time from clock and noise from the
// provided Perlin source.
func New(clock core.Clock, noise *perlin.Perlin) *Driver {
	if clock == nil {
		clock = core.SystemClock
	}
	return &Driver{clock: clock, noise: noise}
}

// Start enables autonomous driving.
func (d *Driver) Start() { d.running = true }

// Stop disables autonomous driving. No further ticks are produced,
// modulo one already queued by the caller's scheduler.
func (d *Driver) Stop() { d.running = false }

// Running reports whether the driver is enabled.
func (d *Driver) Running() bool { return d.running }

// Target computes the oscillator target at absolute epoch second t,
// clamped to the rank domain.
func (d *Driver) Target(t float64) float64 {
	v := 50 + slowAmp*math.Sin(slowFreq*t) + fastAmp*math.Sin(fastFreq*t)
	if d.noise != nil {
		v += d.noise.Noise1D(t*0.1) * noiseAmp
	}
	return math.Min(100, math.Max(0, v))
}

// Tick returns the rank smoothed one step toward the target at the
// clock's current time. Returns rank unchanged when the driver is
// stopped.
func (d *Driver) Tick(rank int) int {
	if !d.running {
		return rank
	}
	return Smooth(rank, d.Target(d.clock.Seconds()))
}

// Smooth moves rank one exponential-convergence step toward target.
func Smooth(rank int, target float64) int {
	next := math.Round(float64(rank) + (target-float64(rank))*smoothing)
	return core.ClampRank(int(next))
}
