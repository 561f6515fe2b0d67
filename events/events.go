// Package events holds the normalized input events delivered by the
// toolkit collaborator and the notifications the scroll components
// exchange. Every type implements the Event marker so component
// mailboxes can carry any of them.
package events

import (
	"fmt"

	"scrollkit/geometry"
)

type Event interface {
	event()
}

// Action tells a press from a release.
type Action int

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	if a == Press {
		return "press"
	}
	return "release"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "UNKNOWN BUTTON"
}

// PointerButton is a button press or release at a position.
type PointerButton struct {
	Button   Button
	Action   Action
	Position geometry.Vector2
}

func (PointerButton) event() {}

func (e PointerButton) String() string {
	return fmt.Sprintf("PointerButton{%s %s (%g, %g)}", e.Button, e.Action, e.Position.X, e.Position.Y)
}

// PointerMove reports the pointer's new position.
type PointerMove struct {
	Position geometry.Vector2
}

func (PointerMove) event() {}

// PointerExit reports the pointer leaving the component's area.
type PointerExit struct{}

func (PointerExit) event() {}

// PointerWheel is a scroll-wheel step. The delta is in scroll
// direction units, not pixels.
type PointerWheel struct {
	Delta geometry.Vector2
}

func (PointerWheel) event() {}

// Key is a key press or release. Name follows the input layer's
// convention: single characters upper-cased, multi-character names
// lower-cased ("A", "up", "escape").
type Key struct {
	Name   string
	Action Action
}

func (Key) event() {}

// Tick re-enters a component's update cycle after a scheduled delay.
type Tick struct{}

func (Tick) event() {}

// Quit asks a component's event loop to stop.
type Quit struct{}

func (Quit) event() {}
