// Package scrollable is the top-level scroll coordinator: it fuses
// direct-content drags, hotkeys and scrollbar input into one
// authoritative scroll position, drives the inertia model while no
// input is active, and steps the result forward on a scheduled tick.
package scrollable

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"scrollkit"
	"scrollkit/device"
	"scrollkit/drag"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/hotkeys"
	"scrollkit/physics"
	"scrollkit/sched"
	"scrollkit/scrollbar"
	"scrollkit/stream"
)

const defaultFPS = 30

// State is the coordinator's scroll activity state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateScrolling
	StateCoolingDown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateScrolling:
		return "scrolling"
	case StateCoolingDown:
		return "cooling_down"
	}
	return "UNKNOWN STATE"
}

// Settings is the required geometry: the fixed frame size and the
// content rectangle (offset plus size) seen through it.
type Settings struct {
	Frame   geometry.Vector2
	Content geometry.Rect
}

// Styles are the optional knobs.
type Styles struct {
	ID           string
	Position     geometry.Vector2 // starting scroll position, content-space
	FPS          float64
	Acceleration *physics.Settings
	Hotkeys      *hotkeys.Settings
	DragButtons  []events.Button
	Bars         *scrollbar.PairStyles
	Translate    geometry.Vector2
	Children     []graph.Node // content nodes, content-local coordinates
}

// Deps are the collaborator handles. Nil fields degrade to no-ops
// (and real timers for the scheduler).
type Deps struct {
	Pusher    graph.Pusher
	Focus     device.Focus
	Scheduler sched.Scheduler
	Log       zerolog.Logger
}

// Scrollable processes all of its events on one serialized loop; see
// HandleEvent. The only suspended work is the tick callback, guarded
// by the animating flag so at most one timer is ever outstanding.
type Scrollable struct {
	id        string
	frame     geometry.Vector2
	content   geometry.Rect
	translate geometry.Vector2
	position  geometry.Vector2
	fps       float64
	state     State

	drag  *drag.Drag
	keys  *hotkeys.Hotkeys
	accel *physics.Acceleration
	cap   geometry.PositionCap
	wheel geometry.Vector2

	focused   bool
	animating bool

	bars        *scrollbar.Bars
	barsMailbox *stream.Stream[events.Event]
	barsReady   bool
	barsPos     geometry.Vector2 // content-relative mirror
	barsDir     geometry.Vector2
	barsState   events.ScrollState

	graph       *graph.Graph
	captureRect geometry.Rect

	mailbox   *stream.Stream[events.Event]
	pusher    graph.Pusher
	focus     device.Focus
	scheduler sched.Scheduler
	log       zerolog.Logger
}

// New validates settings, derives the position cap from the geometry
// (fixed for the component's lifetime) and builds the initial graph.
func New(settings Settings, styles Styles, deps Deps) (*Scrollable, error) {
	if settings.Frame.X <= 0 || settings.Frame.Y <= 0 {
		return nil, fmt.Errorf("scrollable: frame %gx%g: %w", settings.Frame.X, settings.Frame.Y, scrollkit.ErrInvalidInput)
	}
	if settings.Content.Width <= 0 || settings.Content.Height <= 0 {
		return nil, fmt.Errorf("scrollable: content %gx%g: %w", settings.Content.Width, settings.Content.Height, scrollkit.ErrInvalidInput)
	}

	s := &Scrollable{
		id:        styles.ID,
		frame:     settings.Frame,
		content:   settings.Content,
		translate: styles.Translate,
		fps:       styles.FPS,
		drag:      drag.New(styles.DragButtons...),
		keys:      hotkeys.New(derefHotkeys(styles.Hotkeys)),
		accel:     physics.New(derefAccel(styles.Acceleration)),
		mailbox:   stream.New[events.Event]("scrollable"),
		pusher:    deps.Pusher,
		focus:     deps.Focus,
		scheduler: deps.Scheduler,
		log:       deps.Log.With().Str("component", "scrollable").Logger(),
	}
	if s.id == "" {
		s.id = "scrollable"
	}
	if s.fps == 0 {
		s.fps = defaultFPS
	}
	if s.focus == nil {
		s.focus = device.NopFocus{}
	}
	if s.scheduler == nil {
		s.scheduler = sched.Timers{}
	}

	// The content's trailing edge never passes the frame's trailing
	// edge, nor the leading edge the frame's leading edge. For
	// content smaller than the frame, min exceeds max and the cap's
	// max-wins rule decides the resting position.
	s.cap = geometry.PositionCap{
		Min: geometry.LimitVec(geometry.Vector2{
			X: settings.Content.X + settings.Frame.X - settings.Content.Width,
			Y: settings.Content.Y + settings.Frame.Y - settings.Content.Height,
		}),
		Max: geometry.LimitVec(geometry.Vector2{X: settings.Content.X, Y: settings.Content.Y}),
	}
	s.position = s.cap.Cap(styles.Position.Add(s.contentOffset()))
	s.captureRect = s.frameRect()

	s.graph = graph.New(graph.NodeID(s.id))
	s.graph.Root.Translate = styles.Translate
	frameScissor := geometry.Rect{Width: s.frame.X, Height: s.frame.Y}
	s.graph.Root.Children = []graph.Node{&graph.Group{
		ID:      s.frameNodeID(),
		Scissor: &frameScissor,
		Children: []graph.Node{&graph.Group{
			ID:        s.contentNodeID(),
			Translate: s.position,
			Children:  styles.Children,
		}},
	}}

	if styles.Bars != nil {
		bars, err := scrollbar.NewBars(scrollbar.PairSettings{
			Width:       s.frame.X,
			Height:      s.frame.Y,
			ContentSize: geometry.Vector2{X: s.content.Width, Y: s.content.Height},
			Position:    s.position.Sub(s.contentOffset()),
		}, *styles.Bars, s.mailbox, deps.Log)
		if err != nil {
			return nil, err
		}
		s.bars = bars
		s.barsMailbox = bars.Mailbox()
		s.graph.Root.Children = append(s.graph.Root.Children, bars.BuildGraph(*styles.Bars))
	}
	return s, nil
}

func derefHotkeys(s *hotkeys.Settings) hotkeys.Settings {
	if s == nil {
		return hotkeys.Settings{}
	}
	return *s
}

func derefAccel(s *physics.Settings) physics.Settings {
	if s == nil {
		return physics.Settings{}
	}
	return *s
}

// AttachDevice binds the display after construction, for hosts where
// the device itself needs the mailbox first. Must be called before
// Start.
func (s *Scrollable) AttachDevice(d device.Device) {
	s.pusher = d
	s.focus = d
}

// Mailbox is the handle input dispatchers push normalized events to.
func (s *Scrollable) Mailbox() *stream.Stream[events.Event] {
	return s.mailbox
}

// Start launches the scrollbar actors and the coordinator's own loop.
func (s *Scrollable) Start() <-chan struct{} {
	if s.bars != nil {
		s.bars.Start()
	}
	return startLoop(s)
}

// Position is the current scroll position, content-space.
func (s *Scrollable) Position() geometry.Vector2 {
	return s.position
}

func (s *Scrollable) State() State {
	return s.state
}

// CaptureRect is the current pointer hit-test region: the frame while
// idle, a huge virtual area while dragging so the drag survives the
// pointer leaving the frame.
func (s *Scrollable) CaptureRect() geometry.Rect {
	return s.captureRect
}

// Focused reports whether keyboard focus is currently captured.
func (s *Scrollable) Focused() bool {
	return s.focused
}

// Graph exposes the retained graph; only the coordinator's loop may
// mutate it.
func (s *Scrollable) Graph() *graph.Graph {
	return s.graph
}

func (s *Scrollable) frameNodeID() graph.NodeID {
	return graph.NodeID(s.id + "/frame")
}

func (s *Scrollable) contentNodeID() graph.NodeID {
	return graph.NodeID(s.id + "/content")
}

func (s *Scrollable) contentOffset() geometry.Vector2 {
	return geometry.Vector2{X: s.content.X, Y: s.content.Y}
}

func (s *Scrollable) frameRect() geometry.Rect {
	return geometry.Rect{X: s.translate.X, Y: s.translate.Y, Width: s.frame.X, Height: s.frame.Y}
}

func (s *Scrollable) tickInterval() time.Duration {
	return time.Duration(float64(time.Second) / s.fps)
}
