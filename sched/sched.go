// Package sched is the fire-once timer contract the scroll components
// schedule their ticks with.
package sched

import (
	"sync"
	"time"
)

// Scheduler runs fn once, d after the call. No cancellation: owners
// guard scheduling with their own single-outstanding-timer flag, and a
// timer already in flight when state changes fires once harmlessly.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Timers is the real implementation.
type Timers struct{}

func (Timers) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Manual is a deterministic scheduler for tests: callbacks queue up
// until Fire runs them.
type Manual struct {
	mu      sync.Mutex
	pending []func()
}

func (m *Manual) After(d time.Duration, fn func()) {
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

// Fire runs every pending callback and reports how many ran.
// Callbacks scheduled while firing wait for the next Fire.
func (m *Manual) Fire() int {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Pending reports the queued callback count.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
