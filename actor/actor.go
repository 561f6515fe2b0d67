// Package actor runs a component as a sequentially-processing event
// loop over a mailbox stream. All state mutation happens inside the
// loop, so a component needs no locks of its own. Cross-component
// communication is one-way Push for notifications plus the synchronous
// Call helper for short request/reply exchanges.
package actor

import (
	"errors"
	"time"

	"scrollkit/stream"
)

var (
	// ErrAbsent is the absent-value result of calling a component
	// that is not there yet. Callers skip and self-heal on a later
	// cycle.
	ErrAbsent = errors.New("actor: absent")

	// ErrTimeout means the callee did not reply in time.
	ErrTimeout = errors.New("actor: call timed out")
)

// Handler processes one message. Returning false stops the loop.
type Handler[T any] func(msg T) bool

// Run pulls the mailbox until the handler declines or the stream
// closes. It blocks; use Go for a goroutine.
func Run[T any](mailbox *stream.Stream[T], handler Handler[T]) {
	for {
		msg, ok := mailbox.Pull()
		if !ok {
			return
		}
		if !handler(msg) {
			return
		}
	}
}

// Go starts Run on its own goroutine and returns a done channel.
func Go[T any](mailbox *stream.Stream[T], handler Handler[T]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Run(mailbox, handler)
	}()
	return done
}

// CallTimeout bounds every synchronous call. Calls are short and have
// no retry logic; a late reply is a caller-contract violation, not a
// condition to wait out.
const CallTimeout = time.Second

// Call pushes the request built by build and waits for a reply on the
// channel build was given. A nil mailbox yields ErrAbsent.
func Call[T, R any](mailbox *stream.Stream[T], build func(reply chan R) T) (R, error) {
	var zero R
	if mailbox == nil {
		return zero, ErrAbsent
	}
	reply := make(chan R, 1)
	mailbox.Push(build(reply))
	select {
	case r := <-reply:
		return r, nil
	case <-time.After(CallTimeout):
		return zero, ErrTimeout
	}
}
