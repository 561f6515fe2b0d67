// Package stream is the mailbox primitive behind every component
// actor: an unbounded FIFO with blocking pull.
package stream

import (
	"sync"
)

type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func New[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Name() string {
	return s.name
}

// Push appends msg. Pushing to a closed stream is a no-op; the sender
// has no business crashing because the receiver went away first.
func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	if !s.closed {
		s.elements = append(s.elements, msg)
		s.Cond.Signal()
	}
	s.Cond.L.Unlock()
}

// Pull blocks until an element is available or the stream closes.
// ok is false once the stream is closed and drained.
func (s *Stream[T]) Pull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	for len(s.elements) == 0 {
		if s.closed {
			var zero T
			return zero, false
		}
		s.Cond.Wait()
	}
	msg := s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

// PullAll drains whatever is queued without blocking.
func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}

// Close wakes any blocked Pull. Queued elements may still be pulled.
func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}

func (s *Stream[T]) Closed() bool {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return s.closed
}
