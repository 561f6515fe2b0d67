package drag

import (
	"testing"

	"scrollkit/events"
	"scrollkit/geometry"
)

func TestDragSequence(t *testing.T) {
	d := New()
	if d.Dragging() {
		t.Fatal("new tracker should be idle")
	}

	d.HandleButtonDown(events.ButtonLeft, geometry.Vector2{X: 10, Y: 10}, geometry.Vector2{X: -100, Y: 0})
	if !d.Dragging() {
		t.Fatal("press should start the drag")
	}

	d.HandleMove(geometry.Vector2{X: 4, Y: 13})
	pos, ok := d.NewPosition()
	if !ok {
		t.Fatal("NewPosition should be defined while dragging")
	}
	if pos != (geometry.Vector2{X: -106, Y: 3}) {
		t.Errorf("NewPosition = %v, want (-106, 3)", pos)
	}

	d.HandleButtonUp(events.ButtonLeft, geometry.Vector2{X: 4, Y: 13})
	if d.Dragging() {
		t.Error("release should end the drag")
	}
	if _, ok := d.NewPosition(); ok {
		t.Error("NewPosition should be undefined after release")
	}
	if _, ok := d.LastPosition(); ok {
		t.Error("LastPosition should be cleared after release")
	}
}

func TestDisabledButtonIgnored(t *testing.T) {
	d := New(events.ButtonLeft)
	d.HandleButtonDown(events.ButtonRight, geometry.Vector2{X: 1, Y: 1}, geometry.Vector2{})
	if d.Dragging() {
		t.Error("disabled button should not start a drag")
	}

	d.HandleButtonDown(events.ButtonLeft, geometry.Vector2{X: 1, Y: 1}, geometry.Vector2{})
	d.HandleButtonUp(events.ButtonRight, geometry.Vector2{X: 5, Y: 5})
	if !d.Dragging() {
		t.Error("disabled button release should not end the drag")
	}
}

func TestMoveWithoutDragIgnored(t *testing.T) {
	d := New()
	d.HandleMove(geometry.Vector2{X: 50, Y: 50})
	if _, ok := d.LastPosition(); ok {
		t.Error("move without a drag should not track")
	}
}

func TestCustomButtons(t *testing.T) {
	d := New(events.ButtonMiddle, events.ButtonRight)
	if d.Enabled(events.ButtonLeft) {
		t.Error("left should be disabled")
	}
	d.HandleButtonDown(events.ButtonMiddle, geometry.Vector2{}, geometry.Vector2{})
	if !d.Dragging() {
		t.Error("middle should start the drag")
	}
}

func TestAmplifySpeed(t *testing.T) {
	if got := AmplifySpeed(geometry.Vector2{X: -3, Y: 2}); got != (geometry.Vector2{X: -9, Y: 6}) {
		t.Errorf("AmplifySpeed = %v", got)
	}
}
