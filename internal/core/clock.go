package core

import "time"

// Clock supplies the current time. Physics and driver formulas read time
// through a Clock so tests can substitute a fixed source.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time { return time.Now() }

// Seconds returns the clock reading as fractional seconds since the Unix
// epoch. The absolute epoch origin matters: oscillator phases depend on
// it, not on when the caller started.
func (c Clock) Seconds() float64 {
	return float64(c().UnixNano()) / float64(time.Second)
}

// FixedStep helps run periodic updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         Clock
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS,
// reading time from the provided clock.
func NewFixedStep(tps int, now Clock) *FixedStep {
	if now == nil {
		now = SystemClock
	}
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Reset discards accumulated time so the next ShouldStep fires immediately.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the periodic work should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
