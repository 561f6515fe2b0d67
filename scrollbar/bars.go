package scrollbar

import (
	"fmt"

	"github.com/rs/zerolog"

	"scrollkit"
	"scrollkit/actor"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/stream"
)

const defaultThickness = 10

// PairSettings configures the pair coordinator. Width and Height are
// the frame dimensions the bars attach to.
type PairSettings struct {
	Width       float64
	Height      float64
	ContentSize geometry.Vector2
	Position    geometry.Vector2
}

// PairStyles selects which bars exist and how they look.
type PairStyles struct {
	Horizontal bool
	Vertical   bool
	Thickness  float64
	Bar        Styles
}

type child struct {
	bar       *ScrollBar
	mailbox   *stream.Stream[events.Event]
	origin    geometry.Vector2
	ready     bool
	direction float64
	dragging  bool
}

// Bars owns up to two ScrollBar children, relays their notifications
// upward as pair-level events and forwards position pushes down. The
// children are full actors; Bars holds their mailboxes (the owned
// handles) and never touches their state directly.
type Bars struct {
	position   geometry.Vector2 // content-relative aggregate
	state      events.ScrollState
	horizontal *child
	vertical   *child
	announced  bool

	mailbox *stream.Stream[events.Event]
	out     *stream.Stream[events.Event]
	log     zerolog.Logger
}

// NewBars builds the requested children. Each child self-reports via
// ScrollBarInitialized into the pair mailbox; once all requested
// children are ready the pair announces ScrollBarsInitialized upward.
func NewBars(settings PairSettings, styles PairStyles, out *stream.Stream[events.Event], log zerolog.Logger) (*Bars, error) {
	if out == nil {
		return nil, fmt.Errorf("scrollbars: no owner mailbox: %w", scrollkit.ErrInvalidInput)
	}
	if !styles.Horizontal && !styles.Vertical {
		return nil, fmt.Errorf("scrollbars: no bar requested: %w", scrollkit.ErrInvalidInput)
	}
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, fmt.Errorf("scrollbars: frame %gx%g: %w", settings.Width, settings.Height, scrollkit.ErrInvalidInput)
	}
	thickness := styles.Thickness
	if thickness == 0 {
		thickness = defaultThickness
	}

	bars := &Bars{
		position: settings.Position,
		mailbox:  stream.New[events.Event]("scrollbars"),
		out:      out,
		log:      log.With().Str("component", "scrollbars").Logger(),
	}

	if styles.Horizontal {
		bar, err := New(Settings{
			ID:          "scrollbar-horizontal",
			Width:       settings.Width,
			Height:      thickness,
			ContentSize: settings.ContentSize.X,
			Position:    settings.Position.X,
			Axis:        geometry.Horizontal,
		}, styles.Bar, bars.mailbox, log)
		if err != nil {
			return nil, err
		}
		bars.horizontal = &child{
			bar:     bar,
			mailbox: stream.New[events.Event](bar.ID()),
			origin:  geometry.Vector2{X: 0, Y: settings.Height},
		}
	}
	if styles.Vertical {
		bar, err := New(Settings{
			ID:          "scrollbar-vertical",
			Width:       thickness,
			Height:      settings.Height,
			ContentSize: settings.ContentSize.Y,
			Position:    settings.Position.Y,
			Axis:        geometry.Vertical,
		}, styles.Bar, bars.mailbox, log)
		if err != nil {
			return nil, err
		}
		bars.vertical = &child{
			bar:     bar,
			mailbox: stream.New[events.Event](bar.ID()),
			origin:  geometry.Vector2{X: settings.Width, Y: 0},
		}
	}
	return bars, nil
}

// Mailbox is the pair's own mailbox, the handle its owner sends to.
func (bars *Bars) Mailbox() *stream.Stream[events.Event] {
	return bars.mailbox
}

// Start launches the child loops and the pair's own loop.
func (bars *Bars) Start() <-chan struct{} {
	for _, c := range bars.children() {
		actor.Go(c.mailbox, c.bar.HandleEvent)
	}
	return actor.Go(bars.mailbox, bars.HandleEvent)
}

func (bars *Bars) children() []*child {
	cs := make([]*child, 0, 2)
	if bars.horizontal != nil {
		cs = append(cs, bars.horizontal)
	}
	if bars.vertical != nil {
		cs = append(cs, bars.vertical)
	}
	return cs
}

// HandleEvent is the pair's serialized message handler.
func (bars *Bars) HandleEvent(ev events.Event) bool {
	switch ev := ev.(type) {
	case events.PointerButton:
		for _, c := range bars.children() {
			c.mailbox.Push(events.PointerButton{
				Button:   ev.Button,
				Action:   ev.Action,
				Position: ev.Position.Sub(c.origin),
			})
		}
	case events.PointerMove:
		for _, c := range bars.children() {
			c.mailbox.Push(events.PointerMove{Position: ev.Position.Sub(c.origin)})
		}
	case events.PointerExit:
		for _, c := range bars.children() {
			c.mailbox.Push(ev)
		}

	case events.ScrollBarInitialized:
		bars.markReady(ev)
	case events.ScrollBarPositionChange:
		bars.merge(ev.Position)
		bars.state = ev.State
		bars.setDragging(ev.Axis, ev.State == events.ScrollStateDragging)
		bars.out.Push(events.ScrollBarsPositionChange{Position: bars.position, State: bars.state})
	case events.ScrollBarScrollEnd:
		bars.merge(ev.Position)
		bars.state = ev.State
		bars.setDragging(ev.Axis, false)
		bars.out.Push(events.ScrollBarsScrollEnd{Position: bars.position, State: bars.state})
	case events.ScrollBarButtonPressed:
		bars.setDirection(ev.Axis, ev.Direction)
		bars.state = ev.State
		bars.out.Push(events.ScrollBarsButtonPressed{Direction: bars.Direction(), State: bars.state})
	case events.ScrollBarButtonReleased:
		bars.setDirection(ev.Axis, ev.Direction)
		bars.state = ev.State
		bars.out.Push(events.ScrollBarsButtonReleased{Direction: bars.Direction(), State: bars.state})

	case events.UpdateScrollPosition:
		bars.handleUpdate(ev)

	case events.Quit:
		for _, c := range bars.children() {
			c.mailbox.Push(ev)
		}
		return false

	default:
		if req, ok := ev.(events.Request); ok {
			req.Reject(fmt.Errorf("scrollbars: unexpected request %T", ev))
		}
	}
	return true
}

func (bars *Bars) markReady(ev events.ScrollBarInitialized) {
	switch ev.Axis {
	case geometry.Horizontal:
		if bars.horizontal != nil {
			bars.horizontal.ready = true
		}
	case geometry.Vertical:
		if bars.vertical != nil {
			bars.vertical.ready = true
		}
	}
	if bars.announced {
		return
	}
	for _, c := range bars.children() {
		if !c.ready {
			return
		}
	}
	bars.announced = true
	bars.out.Push(events.ScrollBarsInitialized{Position: bars.position})
}

// merge folds the changed axis into the pair position, holding the
// other axis at its last known value.
func (bars *Bars) merge(position geometry.Tagged) {
	value, ok := position.Untag()
	if !ok {
		return
	}
	if position.Axis == geometry.Horizontal {
		bars.position.X = value
	} else {
		bars.position.Y = value
	}
}

func (bars *Bars) childFor(axis geometry.Axis) *child {
	if axis == geometry.Horizontal {
		return bars.horizontal
	}
	return bars.vertical
}

func (bars *Bars) setDirection(axis geometry.Axis, direction float64) {
	if c := bars.childFor(axis); c != nil {
		c.direction = direction
	}
}

func (bars *Bars) setDragging(axis geometry.Axis, dragging bool) {
	if c := bars.childFor(axis); c != nil {
		c.dragging = dragging
	}
}

// handleUpdate forwards a position push to each child through its
// owned handle and combines the slider movements for the graph owner.
// An absent child is skipped; it self-heals once ready.
func (bars *Bars) handleUpdate(req events.UpdateScrollPosition) {
	bars.position = req.Position
	var sliders []events.SliderOffset
	for _, c := range bars.children() {
		reply, err := actor.Call(c.mailbox, func(reply chan events.UpdateReply) events.Event {
			return events.UpdateScrollPosition{Position: req.Position, Reply: reply}
		})
		if err != nil {
			bars.log.Debug().Err(err).Str("bar", c.bar.ID()).Msg("position push skipped")
			continue
		}
		sliders = append(sliders, reply.Sliders...)
	}
	if req.Reply != nil {
		req.Reply <- events.UpdateReply{Sliders: sliders}
	}
}

// Direction is the component-wise union of the children's directions.
func (bars *Bars) Direction() geometry.Vector2 {
	var v geometry.Vector2
	if bars.horizontal != nil {
		v.X = bars.horizontal.direction
	}
	if bars.vertical != nil {
		v.Y = bars.vertical.direction
	}
	return v
}

// Dragging reports whether the most recent child event left the pair
// in the dragging state.
func (bars *Bars) Dragging() bool {
	return bars.state == events.ScrollStateDragging
}

// NewPosition is the aggregate 2D position.
func (bars *Bars) NewPosition() geometry.Vector2 {
	return bars.position
}

func (bars *Bars) State() events.ScrollState {
	return bars.state
}

// BuildGraph places each child's sub-graph at its origin: the
// horizontal bar just below the frame, the vertical bar just right of
// it.
func (bars *Bars) BuildGraph(styles PairStyles) *graph.Group {
	group := &graph.Group{ID: "scrollbars"}
	for _, c := range bars.children() {
		g := c.bar.BuildGraph(styles.Bar)
		g.Translate = c.origin
		group.Children = append(group.Children, g)
	}
	return group
}
