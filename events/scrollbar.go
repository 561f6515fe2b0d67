package events

import "scrollkit/geometry"

// ScrollState is a scrollbar's derived activity state.
type ScrollState int

const (
	ScrollStateIdle ScrollState = iota
	ScrollStateScrolling
	ScrollStateDragging
)

func (s ScrollState) String() string {
	switch s {
	case ScrollStateIdle:
		return "idle"
	case ScrollStateScrolling:
		return "scrolling"
	case ScrollStateDragging:
		return "dragging"
	}
	return "UNKNOWN SCROLL STATE"
}

// ScrollBarInitialized is emitted once by a scrollbar when its state is
// built, so the owner can mark the child ready.
type ScrollBarInitialized struct {
	ID       string
	Axis     geometry.Axis
	Position geometry.Tagged
}

func (ScrollBarInitialized) event() {}

// ScrollBarPositionChange reports a new world scroll position on the
// bar's axis. Not emitted while a step button drives the scroll; the
// owner's tick loop picks that up through the bar's direction instead.
type ScrollBarPositionChange struct {
	ID       string
	Axis     geometry.Axis
	Position geometry.Tagged
	State    ScrollState
}

func (ScrollBarPositionChange) event() {}

// ScrollBarScrollEnd reports the end of a slider drag.
type ScrollBarScrollEnd struct {
	ID       string
	Axis     geometry.Axis
	Position geometry.Tagged
	State    ScrollState
}

func (ScrollBarScrollEnd) event() {}

// ScrollBarButtonPressed reports a step button going down. Direction
// is the bar's net direction after the change: +1 while the leading
// (left/top) button alone is held, -1 for the trailing one, 0 for both.
type ScrollBarButtonPressed struct {
	ID        string
	Axis      geometry.Axis
	Direction float64
	State     ScrollState
}

func (ScrollBarButtonPressed) event() {}

// ScrollBarButtonReleased mirrors ScrollBarButtonPressed.
type ScrollBarButtonReleased struct {
	ID        string
	Axis      geometry.Axis
	Direction float64
	State     ScrollState
}

func (ScrollBarButtonReleased) event() {}

// ScrollBarsInitialized is emitted by the pair coordinator once every
// requested child has reported in.
type ScrollBarsInitialized struct {
	Position geometry.Vector2
}

func (ScrollBarsInitialized) event() {}

// ScrollBarsPositionChange is the pair-level position report: the axis
// that changed merged with the other axis at its last known value.
type ScrollBarsPositionChange struct {
	Position geometry.Vector2
	State    ScrollState
}

func (ScrollBarsPositionChange) event() {}

type ScrollBarsScrollEnd struct {
	Position geometry.Vector2
	State    ScrollState
}

func (ScrollBarsScrollEnd) event() {}

type ScrollBarsButtonPressed struct {
	Direction geometry.Vector2
	State     ScrollState
}

func (ScrollBarsButtonPressed) event() {}

type ScrollBarsButtonReleased struct {
	Direction geometry.Vector2
	State     ScrollState
}

func (ScrollBarsButtonReleased) event() {}
