package scrollable

import (
	"fmt"

	"scrollkit/actor"
	"scrollkit/drag"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/hotkeys"
)

// The virtual capture area swapped in while dragging, so drag tracking
// never loses the pointer outside the frame.
var wideCapture = geometry.Rect{X: -1e9, Y: -1e9, Width: 2e9, Height: 2e9}

func startLoop(s *Scrollable) <-chan struct{} {
	return actor.Go(s.mailbox, s.HandleEvent)
}

// HandleEvent processes one event and re-runs the update cycle. It is
// only ever invoked from the coordinator's serialized loop (or a test
// driving the component synchronously).
func (s *Scrollable) HandleEvent(ev events.Event) bool {
	switch ev := ev.(type) {
	case events.PointerButton:
		if ev.Action == events.Press {
			s.handlePress(ev)
		} else {
			s.handleRelease(ev)
		}
		s.forwardToBars(events.PointerButton{
			Button:   ev.Button,
			Action:   ev.Action,
			Position: ev.Position.Sub(s.translate),
		})

	case events.PointerMove:
		s.drag.HandleMove(ev.Position)
		s.forwardToBars(events.PointerMove{Position: ev.Position.Sub(s.translate)})

	case events.PointerExit:
		// While dragging the widened capture keeps the drag alive;
		// otherwise there is no hover state to clear.
		s.forwardToBars(ev)

	case events.PointerWheel:
		s.wheel = s.wheel.Add(ev.Delta)

	case events.Key:
		s.handleKey(ev)

	case events.Tick:
		// The single outstanding timer just fired.
		s.animating = false

	case events.ScrollBarsInitialized:
		s.barsReady = true
		s.barsPos = ev.Position

	case events.ScrollBarsPositionChange:
		s.barsPos = ev.Position
		s.barsState = ev.State
		if ev.State == events.ScrollStateIdle {
			// A finished drag or click-jump; a held-button scroll is
			// picked up by the tick loop through the direction
			// instead.
			s.position = s.cap.Cap(ev.Position.Add(s.contentOffset()))
		}

	case events.ScrollBarsScrollEnd:
		s.barsPos = ev.Position
		s.barsState = ev.State

	case events.ScrollBarsButtonPressed:
		s.barsDir = ev.Direction
		s.barsState = ev.State

	case events.ScrollBarsButtonReleased:
		s.barsDir = ev.Direction
		s.barsState = ev.State

	case events.Quit:
		s.forwardToBars(ev)
		return false

	default:
		if req, ok := ev.(events.Request); ok {
			req.Reject(fmt.Errorf("scrollable %s: unexpected request %T", s.id, ev))
		}
		return true
	}

	s.update()
	return true
}

func (s *Scrollable) handlePress(ev events.PointerButton) {
	if !s.captureRect.Contains(ev.Position) {
		return
	}
	if ev.Button == events.ButtonLeft && !s.focused {
		s.focus.CaptureKeyboard(s.id)
		s.focused = true
	}
	s.drag.HandleButtonDown(ev.Button, ev.Position, s.position)
}

func (s *Scrollable) handleRelease(ev events.PointerButton) {
	if s.drag.Dragging() && s.drag.Enabled(ev.Button) {
		// Seed the throw velocity before the drag officially ends.
		if last, ok := s.drag.LastPosition(); ok {
			s.accel.SetSpeed(drag.AmplifySpeed(ev.Position.Sub(last)))
		}
	}
	s.drag.HandleButtonUp(ev.Button, ev.Position)
}

func (s *Scrollable) handleKey(ev events.Key) {
	name := hotkeys.Normalize(ev.Name)
	if ev.Action == events.Release && name == "escape" {
		if s.focused {
			s.focus.ReleaseKeyboard(s.id)
			s.focused = false
		}
		return
	}
	if ev.Action == events.Press {
		s.keys.HandlePress(ev.Name)
	} else {
		s.keys.HandleRelease(ev.Name)
	}
}

func (s *Scrollable) forwardToBars(ev events.Event) {
	if s.barsMailbox != nil {
		s.barsMailbox.Push(ev)
	}
}

// update is the per-cycle algorithm, invoked after every input event
// and on every tick. It recomputes state from scratch each time, so a
// stray timer firing after a state change is harmless.
func (s *Scrollable) update() {
	s.recomputeState()
	s.updateCaptureRect()
	s.applyMotion()
	s.graph.Modify(s.contentNodeID(), func(n graph.Node) {
		if g, ok := n.(*graph.Group); ok {
			g.Translate = s.position
		}
	})
	s.pushToBars()
	if s.pusher != nil {
		s.pusher.Push(s.graph.Clone())
	}
	s.schedule()
}

// Precedence: dragging > scrolling > cooling_down > idle.
func (s *Scrollable) recomputeState() {
	prev := s.state
	switch {
	case s.drag.Dragging() || s.barsDragging():
		s.state = StateDragging
	case s.keys.AnyPressed() || !s.barsDir.IsZero() || !s.wheel.IsZero():
		s.state = StateScrolling
	case !s.accel.Stationary():
		s.state = StateCoolingDown
	default:
		s.state = StateIdle
	}
	if s.state != prev {
		s.log.Debug().Stringer("from", prev).Stringer("to", s.state).Msg("scroll state")
	}
}

func (s *Scrollable) barsDragging() bool {
	return s.barsState == events.ScrollStateDragging
}

func (s *Scrollable) updateCaptureRect() {
	if s.state == StateDragging {
		s.captureRect = wideCapture
	} else {
		s.captureRect = s.frameRect()
	}
}

func (s *Scrollable) applyMotion() {
	switch s.state {
	case StateIdle:

	case StateDragging:
		// A scrollbar drag wins over a direct content drag. Bar
		// positions are content-relative; the drag tracker already
		// works in content-space.
		if s.barsDragging() {
			s.position = s.cap.Cap(s.barsPos.Add(s.contentOffset()))
		} else if target, ok := s.drag.NewPosition(); ok {
			s.position = s.cap.Cap(target)
		}

	case StateScrolling, StateCoolingDown:
		force := s.keys.Direction().Add(s.barsDir).Add(s.wheel)
		s.wheel = geometry.Vector2{}
		s.accel.ApplyForce(force)
		s.accel.ApplyCounterPressure()
		s.position = s.cap.Cap(s.accel.Translate(s.position))
	}
}

// pushToBars propagates the content-relative position through the
// pair's synchronous entry point, bypassing the event path so slider
// visuals track without feeding back. The reply carries the slider
// node offsets, keeping all graph mutation on this loop.
func (s *Scrollable) pushToBars() {
	if !s.barsReady {
		return
	}
	rel := s.position.Sub(s.contentOffset())
	reply, err := actor.Call(s.barsMailbox, func(reply chan events.UpdateReply) events.Event {
		return events.UpdateScrollPosition{Position: rel, Reply: reply}
	})
	if err != nil {
		s.log.Debug().Err(err).Msg("scrollbar position push skipped")
		return
	}
	for _, slider := range reply.Sliders {
		s.graph.Modify(graph.NodeID(slider.ID), func(n graph.Node) {
			if g, ok := n.(*graph.Group); ok {
				g.Translate = slider.Offset
			}
		})
	}
}

// schedule keeps at most one tick timer outstanding. Idle needs no
// tick and dragging is fully driven by move events.
func (s *Scrollable) schedule() {
	if s.state == StateIdle || s.state == StateDragging {
		s.animating = false
		return
	}
	if s.animating {
		return
	}
	s.animating = true
	s.scheduler.After(s.tickInterval(), func() {
		s.mailbox.Push(events.Tick{})
	})
}
