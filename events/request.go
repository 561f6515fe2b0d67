package events

import "scrollkit/geometry"

// Request is a synchronous message carried through a component's
// mailbox. A handler that does not recognize a request must Reject it
// so the caller sees the contract violation instead of a timeout.
type Request interface {
	Event
	Reject(err error)
}

// SliderOffset tells the graph owner where a bar's slider node moved.
type SliderOffset struct {
	ID     string
	Offset geometry.Vector2
}

// UpdateReply acknowledges an UpdateScrollPosition request.
type UpdateReply struct {
	Sliders []SliderOffset
	Err     error
}

// UpdateScrollPosition pushes a scroll position into a scrollbar (or
// the pair coordinator) without going through pointer input. It only
// moves slider visuals; no notification is emitted in response.
type UpdateScrollPosition struct {
	Position geometry.Vector2
	Reply    chan UpdateReply
}

func (UpdateScrollPosition) event() {}

func (r UpdateScrollPosition) Reject(err error) {
	if r.Reply != nil {
		r.Reply <- UpdateReply{Err: err}
	}
}
