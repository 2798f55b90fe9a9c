package core

import (
	"testing"
	"time"
)

func TestClockSeconds(t *testing.T) {
	at := time.Unix(1000, 500_000_000)
	c := Clock(func() time.Time { return at })
	if got := c.Seconds(); got != 1000.5 {
		t.Fatalf("Seconds() = %v, want 1000.5", got)
	}
}

func TestFixedStepTicksAtRate(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(20, func() time.Time { return now })

	// The first poll after construction fires immediately.
	if !fs.ShouldStep() {
		t.Fatal("expected initial tick")
	}

	// Under 50ms elapsed: no tick.
	now = now.Add(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("unexpected tick after 20ms at 20 TPS")
	}

	now = now.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected tick after 60ms accumulated")
	}
}

func TestFixedStepReset(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(20, func() time.Time { return now })
	fs.ShouldStep()

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("expected immediate tick after Reset")
	}
}
