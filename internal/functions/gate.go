package functions

import (
	"time"
)

// Gate is the pacing policy between consecutive completion calls in a
// batch. The upstream service is rate limited, so the processor waits on
// the gate before each call after the first.
type Gate interface {
	Wait()
}

// FixedDelayGate pauses a constant duration between calls
type FixedDelayGate struct {
	delay time.Duration
}

// NewFixedDelayGate creates a gate with the given inter-call delay
func NewFixedDelayGate(delay time.Duration) *FixedDelayGate {
	return &FixedDelayGate{delay: delay}
}

// Wait blocks for the configured delay
func (g *FixedDelayGate) Wait() {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
}

// NopGate never waits
type NopGate struct{}

// Wait returns immediately
func (NopGate) Wait() {}
