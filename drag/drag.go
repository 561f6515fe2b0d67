// Package drag tracks pointer-button-driven dragging of an entity,
// converting pointer motion into a target position.
package drag

import (
	"scrollkit/events"
	"scrollkit/geometry"
)

// The smoothing multiplier applied to the pointer velocity when a drag
// stops, so a quick flick carries visibly more momentum than the raw
// last-move delta.
const dragStopAmplifier = 3

// Drag is created idle. An enabled-button press starts a drag,
// capturing the pointer position and the dragged entity's position;
// every move updates the tracked pointer; an enabled-button release
// ends the drag. Presses of buttons outside the enabled set are
// routine "not for me" signals and change nothing.
type Drag struct {
	enabled  map[events.Button]struct{}
	dragging bool
	start    geometry.Vector2 // pointer at drag start
	origin   geometry.Vector2 // entity position at drag start
	current  *geometry.Vector2
}

// New builds a tracker for the given buttons. With no buttons given,
// only the left button starts a drag.
func New(buttons ...events.Button) *Drag {
	if len(buttons) == 0 {
		buttons = []events.Button{events.ButtonLeft}
	}
	enabled := make(map[events.Button]struct{}, len(buttons))
	for _, b := range buttons {
		enabled[b] = struct{}{}
	}
	return &Drag{enabled: enabled}
}

// Enabled reports whether b starts and stops drags.
func (d *Drag) Enabled(b events.Button) bool {
	_, ok := d.enabled[b]
	return ok
}

// HandleButtonDown starts a drag at pointer, remembering entity as the
// dragged entity's position.
func (d *Drag) HandleButtonDown(b events.Button, pointer, entity geometry.Vector2) {
	if !d.Enabled(b) || d.dragging {
		return
	}
	d.dragging = true
	d.start = pointer
	d.origin = entity
	p := pointer
	d.current = &p
}

// HandleMove updates the tracked pointer position while dragging.
func (d *Drag) HandleMove(pointer geometry.Vector2) {
	if !d.dragging {
		return
	}
	p := pointer
	d.current = &p
}

// HandleButtonUp ends the drag and clears the tracked pointer.
func (d *Drag) HandleButtonUp(b events.Button, pointer geometry.Vector2) {
	if !d.Enabled(b) {
		return
	}
	d.dragging = false
	d.current = nil
}

func (d *Drag) Dragging() bool {
	return d.dragging
}

// NewPosition derives the dragged entity's target position, defined
// only while dragging.
func (d *Drag) NewPosition() (geometry.Vector2, bool) {
	if !d.dragging || d.current == nil {
		return geometry.Vector2{}, false
	}
	return d.current.Sub(d.start).Add(d.origin), true
}

// LastPosition is the most recently tracked pointer position. Callers
// read it just before ending a drag to estimate throw velocity.
func (d *Drag) LastPosition() (geometry.Vector2, bool) {
	if d.current == nil {
		return geometry.Vector2{}, false
	}
	return *d.current, true
}

// AmplifySpeed scales a release velocity by the drag-stop smoothing
// multiplier.
func AmplifySpeed(v geometry.Vector2) geometry.Vector2 {
	return v.Scale(dragStopAmplifier)
}
