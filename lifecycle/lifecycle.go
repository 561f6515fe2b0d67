// Package lifecycle coordinates shutdown across the long-running
// goroutines of an application: each registers on start, checks
// ShouldStop at its loop points, and Stop blocks until all are done.
package lifecycle

import (
	"context"
	"sync"
)

type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// Stopping exposes the cancellation channel for select loops.
func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

// Stop cancels and waits for every started goroutine to finish.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
