// Package scrollbar provides the single-axis slider control and the
// pair coordinator that aggregates one horizontal and one vertical bar
// into a 2D position signal.
package scrollbar

import (
	"fmt"

	"github.com/rs/zerolog"

	"scrollkit"
	"scrollkit/drag"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/stream"
)

// Settings configures one bar. All fields are required; New fails with
// ErrInvalidInput otherwise. Width and Height are the bar's full
// footprint: for a horizontal bar the width is the track span and the
// height the thickness, and the other way around for a vertical one.
// ContentSize is the axis-relevant span of the scrollable content and
// Position the starting world scroll position on that axis
// (content-relative, zero or negative).
type Settings struct {
	ID          string
	Width       float64
	Height      float64
	ContentSize float64
	Position    float64
	Axis        geometry.Axis
}

// Styles tunes the optional parts of a bar.
type Styles struct {
	Buttons bool // step buttons on both ends
	Radius  float64
	Track   graph.Style
	Slider  graph.Style
}

// DefaultStyles matches the terminal palette the demo uses.
func DefaultStyles() Styles {
	return Styles{
		Radius: 3,
		Track:  graph.Style{FG: 250, BG: 236},
		Slider: graph.Style{FG: 236, BG: 250},
	}
}

// ScrollBar is a draggable, clickable position control bound to one
// axis. It receives bar-local pointer events, reports derived world
// positions and button direction upward through its owner's mailbox,
// and accepts synchronous position pushes that move its slider only.
type ScrollBar struct {
	id          string
	axis        geometry.Axis
	span        float64 // along-axis length
	thickness   float64 // cross-axis length
	contentSize float64

	btnSize     float64 // step button footprint, 0 without buttons
	trackLen    float64
	widthFactor float64
	sliderLen   float64

	position     geometry.Tagged // world scroll position, content-relative
	lastPosition geometry.Tagged

	drag            *drag.Drag
	localCap        geometry.PositionCap
	leadingPressed  bool
	trailingPressed bool
	bgPressed       bool
	state           events.ScrollState

	out *stream.Stream[events.Event]
	log zerolog.Logger
}

// New validates the settings, derives the slider-track geometry and
// emits ScrollBarInitialized into out.
func New(settings Settings, styles Styles, out *stream.Stream[events.Event], log zerolog.Logger) (*ScrollBar, error) {
	if err := validate(settings, out); err != nil {
		return nil, err
	}

	b := &ScrollBar{
		id:          settings.ID,
		axis:        settings.Axis,
		contentSize: settings.ContentSize,
		drag:        drag.New(events.ButtonLeft),
		out:         out,
		log:         log.With().Str("scrollbar", settings.ID).Logger(),
	}
	if b.id == "" {
		b.id = "scrollbar-" + settings.Axis.String()
	}
	if settings.Axis == geometry.Horizontal {
		b.span, b.thickness = settings.Width, settings.Height
	} else {
		b.span, b.thickness = settings.Height, settings.Width
	}
	if styles.Buttons {
		b.btnSize = b.thickness
	}
	b.trackLen = b.span - 2*b.btnSize
	if b.trackLen <= 0 {
		return nil, fmt.Errorf("scrollbar %s: no track left for step buttons: %w", b.id, scrollkit.ErrInvalidInput)
	}
	b.widthFactor = b.trackLen / b.contentSize
	b.sliderLen = b.trackLen * b.widthFactor
	if b.sliderLen > b.trackLen {
		b.sliderLen = b.trackLen
	}
	b.localCap = geometry.PositionCap{
		Min: geometry.LimitAxis(geometry.Tag(b.btnSize, b.axis)),
		Max: geometry.LimitAxis(geometry.Tag(b.btnSize+b.trackLen-b.sliderLen, b.axis)),
	}
	b.setLocal(b.worldToLocal(settings.Position))
	b.lastPosition = b.position

	out.Push(events.ScrollBarInitialized{ID: b.id, Axis: b.axis, Position: b.position})
	return b, nil
}

func validate(settings Settings, out *stream.Stream[events.Event]) error {
	switch {
	case out == nil:
		return fmt.Errorf("scrollbar: no owner mailbox: %w", scrollkit.ErrInvalidInput)
	case settings.Width <= 0 || settings.Height <= 0:
		return fmt.Errorf("scrollbar: size %gx%g: %w", settings.Width, settings.Height, scrollkit.ErrInvalidInput)
	case settings.ContentSize <= 0:
		return fmt.Errorf("scrollbar: content size %g: %w", settings.ContentSize, scrollkit.ErrInvalidInput)
	case settings.Axis != geometry.Horizontal && settings.Axis != geometry.Vertical:
		return fmt.Errorf("scrollbar: axis %d: %w", settings.Axis, scrollkit.ErrInvalidInput)
	}
	return nil
}

func (b *ScrollBar) ID() string {
	return b.id
}

// HandleEvent is the bar's serialized message handler.
func (b *ScrollBar) HandleEvent(ev events.Event) bool {
	switch ev := ev.(type) {
	case events.PointerButton:
		if ev.Action == events.Press {
			b.handlePress(ev)
		} else {
			b.handleRelease(ev)
		}
	case events.PointerMove:
		b.handleMove(ev)
	case events.PointerExit:
		// the owner widens capture while dragging; nothing to do
	case events.UpdateScrollPosition:
		b.handleUpdate(ev)
	case events.Quit:
		return false
	default:
		if req, ok := ev.(events.Request); ok {
			req.Reject(fmt.Errorf("scrollbar %s: unexpected request %T", b.id, ev))
		}
	}
	return true
}

func (b *ScrollBar) handlePress(ev events.PointerButton) {
	p := ev.Position
	switch {
	case b.sliderRect().Contains(p):
		b.drag.HandleButtonDown(ev.Button, p, b.sliderOrigin())
	case b.leadingRect().Contains(p):
		b.leadingPressed = true
		b.refresh()
		b.out.Push(events.ScrollBarButtonPressed{ID: b.id, Axis: b.axis, Direction: b.direction(), State: b.state})
		return
	case b.trailingRect().Contains(p):
		b.trailingPressed = true
		b.refresh()
		b.out.Push(events.ScrollBarButtonPressed{ID: b.id, Axis: b.axis, Direction: b.direction(), State: b.state})
		return
	case b.trackRect().Contains(p):
		// Jump: center the slider on the click point, then keep
		// dragging it from there.
		b.bgPressed = true
		b.setLocal(b.along(p) - b.sliderLen/2)
		b.drag.HandleButtonDown(ev.Button, p, b.sliderOrigin())
	default:
		return
	}
	b.refresh()
}

func (b *ScrollBar) handleMove(ev events.PointerMove) {
	if !b.drag.Dragging() {
		return
	}
	b.drag.HandleMove(ev.Position)
	if target, ok := b.drag.NewPosition(); ok {
		b.setLocal(b.along(target))
	}
	b.refresh()
}

func (b *ScrollBar) handleRelease(ev events.PointerButton) {
	wasDragging := b.drag.Dragging() || b.bgPressed
	if b.drag.Enabled(ev.Button) {
		b.drag.HandleButtonUp(ev.Button, ev.Position)
		b.bgPressed = false
	}
	if b.leadingPressed {
		b.leadingPressed = false
		b.recomputeState()
		b.out.Push(events.ScrollBarButtonReleased{ID: b.id, Axis: b.axis, Direction: b.direction(), State: b.state})
	}
	if b.trailingPressed {
		b.trailingPressed = false
		b.recomputeState()
		b.out.Push(events.ScrollBarButtonReleased{ID: b.id, Axis: b.axis, Direction: b.direction(), State: b.state})
	}
	b.refresh()
	if wasDragging && !b.drag.Dragging() {
		b.out.Push(events.ScrollBarScrollEnd{ID: b.id, Axis: b.axis, Position: b.position, State: b.state})
	}
}

// handleUpdate applies an external position push. Slider visuals only:
// no notification goes back out, or the owner would be fed its own
// update forever.
func (b *ScrollBar) handleUpdate(req events.UpdateScrollPosition) {
	world, _ := geometry.TagFrom(req.Position, b.axis).Untag()
	b.setLocal(b.worldToLocal(world))
	b.lastPosition = b.position
	b.recomputeState()
	if req.Reply != nil {
		req.Reply <- events.UpdateReply{Sliders: []events.SliderOffset{b.sliderOffset()}}
	}
}

// refresh recomputes the derived scroll state and reports position
// changes. Directional-button scrolling is driven by the owner's tick
// loop instead, so no position change is emitted while scrolling.
func (b *ScrollBar) refresh() {
	b.recomputeState()
	if b.state != events.ScrollStateScrolling && b.position != b.lastPosition {
		b.lastPosition = b.position
		b.out.Push(events.ScrollBarPositionChange{ID: b.id, Axis: b.axis, Position: b.position, State: b.state})
	}
}

// Precedence: scrolling > dragging > idle.
func (b *ScrollBar) recomputeState() {
	switch {
	case b.leadingPressed || b.trailingPressed:
		b.state = events.ScrollStateScrolling
	case b.drag.Dragging() || b.bgPressed:
		b.state = events.ScrollStateDragging
	default:
		b.state = events.ScrollStateIdle
	}
}

// State is the derived idle/scrolling/dragging state.
func (b *ScrollBar) State() events.ScrollState {
	return b.state
}

// Direction is +1 along the bar's axis while the leading (left/top)
// button alone is held, -1 for the trailing one, else zero.
func (b *ScrollBar) Direction() geometry.Vector2 {
	return geometry.Tag(b.direction(), b.axis).Vector2()
}

func (b *ScrollBar) direction() float64 {
	switch {
	case b.leadingPressed && !b.trailingPressed:
		return 1
	case b.trailingPressed && !b.leadingPressed:
		return -1
	}
	return 0
}

func (b *ScrollBar) Dragging() bool {
	return b.drag.Dragging() || b.bgPressed
}

// NewPosition is the world scroll position derived from the slider,
// defined while dragging.
func (b *ScrollBar) NewPosition() (geometry.Tagged, bool) {
	if !b.Dragging() {
		return geometry.Tagged{Axis: b.axis}, false
	}
	return b.position, true
}

// Position is the current world scroll position on the bar's axis.
func (b *ScrollBar) Position() geometry.Tagged {
	return b.position
}
