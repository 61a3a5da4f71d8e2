// Package testutil provides in-memory fakes for the module's external
// seams (the round clock and the outbound RPC client), for use in tests
// across the module. Never import this in production code.
package testutil

import (
	"sync"

	"github.com/driftchain/driftchain/consensus"
)

// ManualClock is a consensus.Clock driven entirely by test code: Now is
// whatever was last set, and ticks only fire when the test calls
// Emit/Propose.
type ManualClock struct {
	mu  sync.Mutex
	now float64
	out chan consensus.Phase
}

// NewManualClock returns a ManualClock reading now at construction.
func NewManualClock(now float64) *ManualClock {
	return &ManualClock{now: now, out: make(chan consensus.Phase, 1)}
}

func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// SetNow advances the clock's reading without emitting a tick.
func (c *ManualClock) SetNow(now float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Ticks returns the single channel this clock ever delivers on; stop is
// ignored since a ManualClock never emits on its own.
func (c *ManualClock) Ticks(stop <-chan struct{}) <-chan consensus.Phase {
	return c.out
}

// Emit advances now and delivers a PhaseEmit tick.
func (c *ManualClock) Emit(now float64) {
	c.SetNow(now)
	c.out <- consensus.PhaseEmit
}

// Propose advances now and delivers a PhasePropose tick.
func (c *ManualClock) Propose(now float64) {
	c.SetNow(now)
	c.out <- consensus.PhasePropose
}
