// Package tcell renders the scroll core's graphs onto a terminal
// screen and translates terminal input into the normalized event set.
// It is the demo's stand-in for a real scene-graph toolkit: cell
// coordinates are the world units.
package tcell

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/lifecycle"
	"scrollkit/stream"
)

type inEvent interface {
	incoming()
}

type graphEvent struct {
	graph *graph.Graph
}

func (graphEvent) incoming() {}

type tcellEvent struct {
	event tcell.Event
}

func (tcellEvent) incoming() {}

type focusEvent struct {
	id      string
	capture bool
}

func (focusEvent) incoming() {}

type quitEvent struct{}

func (quitEvent) incoming() {}

var defaultStyle = graph.Style{FG: 231, BG: 17}

// Renderer owns the terminal screen. Graphs and input both funnel
// through its mailbox, so the screen is touched from one goroutine
// only.
type Renderer struct {
	lc       *lifecycle.Lifecycle
	out      *stream.Stream[events.Event]
	inEvents *stream.Stream[inEvent]
	screen   tcell.Screen

	buttons tcell.ButtonMask
	lastPos geometry.Vector2
	focused string
	sync    bool
	log     zerolog.Logger
}

func New(lc *lifecycle.Lifecycle, out *stream.Stream[events.Event], log zerolog.Logger) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	r := &Renderer{
		lc:       lc,
		out:      out,
		inEvents: stream.New[inEvent]("tcell"),
		screen:   screen,
		lastPos:  geometry.Vector2{X: -1, Y: -1},
		log:      log.With().Str("component", "renderer").Logger(),
	}
	go r.handleEvents()
	go r.pollTcellEvents()
	return r, nil
}

// Push commits a graph snapshot. Cheap: it only queues the snapshot;
// consecutive snapshots collapse to the latest before drawing.
func (r *Renderer) Push(g *graph.Graph) {
	r.inEvents.Push(graphEvent{graph: g})
}

func (r *Renderer) CaptureKeyboard(id string) {
	r.inEvents.Push(focusEvent{id: id, capture: true})
}

func (r *Renderer) ReleaseKeyboard(id string) {
	r.inEvents.Push(focusEvent{id: id, capture: false})
}

func (r *Renderer) Size() (int, int) {
	return r.screen.Size()
}

func (r *Renderer) Stop() {
	r.inEvents.Push(quitEvent{})
}

func (r *Renderer) handleEvents() {
	r.lc.Started()
	defer r.lc.Done()

	for {
		first, ok := r.inEvents.Pull()
		if !ok {
			return
		}
		batch := append([]inEvent{first}, r.inEvents.PullAll()...)

		lastGraphIdx := -1
		for idx, ev := range batch {
			if _, ok := ev.(graphEvent); ok {
				lastGraphIdx = idx
			}
		}
		for idx, ev := range batch {
			switch ev := ev.(type) {
			case graphEvent:
				if idx == lastGraphIdx {
					r.renderGraph(ev.graph)
				}
			case tcellEvent:
				r.handleTcellEvent(ev.event)
			case focusEvent:
				if ev.capture {
					r.focused = ev.id
				} else if r.focused == ev.id {
					r.focused = ""
				}
				r.log.Debug().Str("id", ev.id).Bool("capture", ev.capture).Msg("keyboard focus")
			case quitEvent:
				r.screen.Fini()
				return
			}
		}
	}
}

func (r *Renderer) pollTcellEvents() {
	for {
		event := r.screen.PollEvent()
		if event == nil {
			return
		}
		r.inEvents.Push(tcellEvent{event: event})
	}
}

func (r *Renderer) handleTcellEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventResize:
		r.sync = true

	case *tcell.EventMouse:
		r.handleMouseEvent(event)

	case *tcell.EventKey:
		r.handleKeyEvent(event)
	}
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button events.Button
}{
	{tcell.Button1, events.ButtonLeft},
	{tcell.Button2, events.ButtonMiddle},
	{tcell.Button3, events.ButtonRight},
}

func (r *Renderer) handleMouseEvent(event *tcell.EventMouse) {
	x, y := event.Position()
	pos := geometry.Vector2{X: float64(x), Y: float64(y)}
	held := event.Buttons()

	// Motion only matters while a button is engaged; hover is not part
	// of the scroll core's event contract.
	engaged := r.buttons != 0 || held&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
	if engaged && pos != r.lastPos {
		r.out.Push(events.PointerMove{Position: pos})
	}
	r.lastPos = pos
	for _, m := range buttonMap {
		was := r.buttons&m.mask != 0
		is := held&m.mask != 0
		if is && !was {
			r.out.Push(events.PointerButton{Button: m.button, Action: events.Press, Position: pos})
		}
		if was && !is {
			r.out.Push(events.PointerButton{Button: m.button, Action: events.Release, Position: pos})
		}
	}
	r.buttons = held & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case held&tcell.WheelUp != 0:
		r.out.Push(events.PointerWheel{Delta: geometry.Vector2{Y: 1}})
	case held&tcell.WheelDown != 0:
		r.out.Push(events.PointerWheel{Delta: geometry.Vector2{Y: -1}})
	case held&tcell.WheelLeft != 0:
		r.out.Push(events.PointerWheel{Delta: geometry.Vector2{X: -1}})
	case held&tcell.WheelRight != 0:
		r.out.Push(events.PointerWheel{Delta: geometry.Vector2{X: 1}})
	}
}

// Terminals report no key-up, so every key press is forwarded as a
// press immediately followed by a release: hotkey scrolling becomes
// impulse-per-tap, and the terminal's own key repeat sustains it.
func (r *Renderer) handleKeyEvent(event *tcell.EventKey) {
	var name string
	switch event.Key() {
	case tcell.KeyCtrlC:
		r.out.Push(events.Quit{})
		return
	case tcell.KeyRune:
		name = string(event.Rune())
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyEscape:
		name = "escape"
	default:
		return
	}
	r.out.Push(events.Key{Name: name, Action: events.Press})
	r.out.Push(events.Key{Name: name, Action: events.Release})
}

func (r *Renderer) renderGraph(g *graph.Graph) {
	r.fill(geometry.Rect{Width: 1e9, Height: 1e9}, nil, defaultStyle, 0)
	r.drawGroup(g.Root, geometry.Vector2{}, nil)
	if r.sync {
		r.screen.Sync()
		r.sync = false
	} else {
		r.screen.Show()
	}
}

func (r *Renderer) drawGroup(grp *graph.Group, offset geometry.Vector2, clip *geometry.Rect) {
	offset = offset.Add(grp.Translate)
	if grp.Scissor != nil {
		scissor := *grp.Scissor
		scissor.X += offset.X
		scissor.Y += offset.Y
		clip = intersect(clip, scissor)
	}
	for _, child := range grp.Children {
		switch child := child.(type) {
		case *graph.Group:
			r.drawGroup(child, offset, clip)
		case *graph.Rect:
			r.fill(translated(child.Bounds, offset), clip, child.Style, 0)
		case *graph.RoundedRect:
			r.fill(translated(child.Bounds, offset), clip, child.Style, child.Radius)
		case *graph.Text:
			r.drawText(child.Text, child.Position.Add(offset), clip, child.Style)
		}
	}
}

func translated(bounds geometry.Rect, offset geometry.Vector2) geometry.Rect {
	bounds.X += offset.X
	bounds.Y += offset.Y
	return bounds
}

func intersect(clip *geometry.Rect, bounds geometry.Rect) *geometry.Rect {
	if clip == nil {
		return &bounds
	}
	x0 := math.Max(clip.X, bounds.X)
	y0 := math.Max(clip.Y, bounds.Y)
	x1 := math.Min(clip.X+clip.Width, bounds.X+bounds.Width)
	y1 := math.Min(clip.Y+clip.Height, bounds.Y+bounds.Height)
	out := geometry.Rect{X: x0, Y: y0, Width: math.Max(0, x1-x0), Height: math.Max(0, y1-y0)}
	return &out
}

func (r *Renderer) visible(x, y float64, clip *geometry.Rect) bool {
	if clip == nil {
		return true
	}
	return clip.Contains(geometry.Vector2{X: x, Y: y})
}

// fill paints a rectangle with spaces. A nonzero radius knocks the
// corner cells out, which is as round as terminal cells get.
func (r *Renderer) fill(bounds geometry.Rect, clip *geometry.Rect, style graph.Style, radius float64) {
	width, height := r.screen.Size()
	x0 := int(math.Round(bounds.X))
	y0 := int(math.Round(bounds.Y))
	x1 := int(math.Round(bounds.X + bounds.Width))
	y1 := int(math.Round(bounds.Y + bounds.Height))
	rounded := radius > 0 && x1-x0 > 1 && y1-y0 > 1

	st := cellStyle(style)
	for y := max(y0, 0); y < min(y1, height); y++ {
		for x := max(x0, 0); x < min(x1, width); x++ {
			if !r.visible(float64(x), float64(y), clip) {
				continue
			}
			if rounded && (x == x0 || x == x1-1) && (y == y0 || y == y1-1) {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (r *Renderer) drawText(text string, pos geometry.Vector2, clip *geometry.Rect, style graph.Style) {
	x := int(math.Round(pos.X))
	y := int(math.Round(pos.Y))
	st := cellStyle(style)
	for _, rn := range text {
		if r.visible(float64(x), float64(y), clip) {
			r.screen.SetContent(x, y, rn, nil, st)
		}
		x += runewidth.RuneWidth(rn)
	}
}

func cellStyle(style graph.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(style.FG))).
		Background(tcell.PaletteColor(int(style.BG)))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
