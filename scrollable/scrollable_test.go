package scrollable

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollkit"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/graph"
	"scrollkit/hotkeys"
	"scrollkit/sched"
	"scrollkit/scrollbar"
)

type fakePusher struct {
	mu     sync.Mutex
	graphs []*graph.Graph
}

func (p *fakePusher) Push(g *graph.Graph) {
	p.mu.Lock()
	p.graphs = append(p.graphs, g)
	p.mu.Unlock()
}

func (p *fakePusher) translate(id graph.NodeID) (geometry.Vector2, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.graphs) == 0 {
		return geometry.Vector2{}, false
	}
	n := p.graphs[len(p.graphs)-1].Find(id)
	grp, ok := n.(*graph.Group)
	if !ok {
		return geometry.Vector2{}, false
	}
	return grp.Translate, true
}

type fakeFocus struct {
	captured []string
	released []string
}

func (f *fakeFocus) CaptureKeyboard(id string) { f.captured = append(f.captured, id) }
func (f *fakeFocus) ReleaseKeyboard(id string) { f.released = append(f.released, id) }

type fixture struct {
	view   *Scrollable
	pusher *fakePusher
	focus  *fakeFocus
	manual *sched.Manual
}

// A 100x50 frame over 500x400 content at offset zero: positions cap to
// [-400, 0] x [-350, 0].
func newFixture(t *testing.T, styles Styles) *fixture {
	t.Helper()
	f := &fixture{
		pusher: &fakePusher{},
		focus:  &fakeFocus{},
		manual: &sched.Manual{},
	}
	styles.ID = "view"
	if styles.Hotkeys == nil {
		styles.Hotkeys = &hotkeys.Settings{Up: "up", Down: "down", Left: "left", Right: "right"}
	}
	view, err := New(Settings{
		Frame:   geometry.Vector2{X: 100, Y: 50},
		Content: geometry.Rect{Width: 500, Height: 400},
	}, styles, Deps{
		Pusher:    f.pusher,
		Focus:     f.focus,
		Scheduler: f.manual,
		Log:       zerolog.Nop(),
	})
	require.NoError(t, err)
	f.view = view
	return f
}

func (f *fixture) press(x, y float64) {
	f.view.HandleEvent(events.PointerButton{Button: events.ButtonLeft, Action: events.Press, Position: geometry.Vector2{X: x, Y: y}})
}

func (f *fixture) move(x, y float64) {
	f.view.HandleEvent(events.PointerMove{Position: geometry.Vector2{X: x, Y: y}})
}

func (f *fixture) release(x, y float64) {
	f.view.HandleEvent(events.PointerButton{Button: events.ButtonLeft, Action: events.Release, Position: geometry.Vector2{X: x, Y: y}})
}

// tick fires the pending timers and feeds the resulting tick events
// back through the handler, as the running loop would.
func (f *fixture) tick() bool {
	if f.manual.Fire() == 0 {
		return false
	}
	for _, ev := range f.view.Mailbox().PullAll() {
		f.view.HandleEvent(ev)
	}
	return true
}

func (f *fixture) settle(t *testing.T) int {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !f.tick() {
			return i
		}
	}
	t.Fatal("view never settled")
	return 0
}

func TestValidation(t *testing.T) {
	_, err := New(Settings{Content: geometry.Rect{Width: 10, Height: 10}}, Styles{}, Deps{Log: zerolog.Nop()})
	require.ErrorIs(t, err, scrollkit.ErrInvalidInput)

	_, err = New(Settings{Frame: geometry.Vector2{X: 10, Y: 10}}, Styles{}, Deps{Log: zerolog.Nop()})
	require.ErrorIs(t, err, scrollkit.ErrInvalidInput)
}

func TestDragClampsToContent(t *testing.T) {
	f := newFixture(t, Styles{})

	f.press(10, 10)
	require.Equal(t, StateDragging, f.view.State())
	require.Equal(t, wideCapture, f.view.CaptureRect(), "dragging should widen the capture area")

	f.move(-600, 10)
	require.Equal(t, geometry.Vector2{X: -400, Y: 0}, f.view.Position(),
		"drag must clamp at the content's trailing edge")

	f.move(30, 25)
	require.Equal(t, geometry.Vector2{X: 0, Y: 0}, f.view.Position(),
		"drag must clamp at the origin")

	f.release(30, 25)
	require.Equal(t, StateIdle, f.view.State())
	require.Equal(t, geometry.Rect{Width: 100, Height: 50}, f.view.CaptureRect())
	require.Equal(t, 0, f.manual.Pending(), "idle must not schedule ticks")
}

func TestPressOutsideFrameIgnored(t *testing.T) {
	f := newFixture(t, Styles{})
	f.press(200, 10)
	require.Equal(t, StateIdle, f.view.State())
	require.Empty(t, f.focus.captured)
}

func TestThrowCoastsAndStops(t *testing.T) {
	f := newFixture(t, Styles{})

	f.press(50, 10)
	f.move(45, 10)
	released := f.view.Position()
	f.release(42, 10) // pointer velocity (-3, 0), amplified to (-9, 0)
	require.Equal(t, StateCoolingDown, f.view.State())

	prev := f.view.Position()
	require.Less(t, prev.X, released.X, "release itself advances the throw")

	for f.view.State() != StateIdle {
		require.True(t, f.tick(), "cooling down must keep ticking")
		pos := f.view.Position()
		require.LessOrEqual(t, pos.X, prev.X, "coasting must not reverse")
		require.GreaterOrEqual(t, pos.X, -400.0)
		prev = pos
	}
	require.Equal(t, 0, f.manual.Pending())
}

func TestHotkeyScrolling(t *testing.T) {
	f := newFixture(t, Styles{})

	f.view.HandleEvent(events.Key{Name: "down", Action: events.Press})
	require.Equal(t, StateScrolling, f.view.State())

	prev := f.view.Position().Y
	require.Negative(t, prev)
	for i := 0; i < 5; i++ {
		require.True(t, f.tick())
		y := f.view.Position().Y
		require.LessOrEqual(t, y, prev, "held key must scroll monotonically")
		require.GreaterOrEqual(t, y, -350.0)
		prev = y
	}

	f.view.HandleEvent(events.Key{Name: "down", Action: events.Release})
	require.Equal(t, StateCoolingDown, f.view.State())
	f.settle(t)
	require.Equal(t, StateIdle, f.view.State())
	require.GreaterOrEqual(t, f.view.Position().Y, -350.0)
}

func TestOppositeHotkeysHold(t *testing.T) {
	f := newFixture(t, Styles{})
	f.view.HandleEvent(events.Key{Name: "down", Action: events.Press})
	f.view.HandleEvent(events.Key{Name: "up", Action: events.Press})
	require.Equal(t, StateScrolling, f.view.State(), "held keys keep scrolling state even when they cancel")
	f.view.HandleEvent(events.Key{Name: "up", Action: events.Release})
	f.view.HandleEvent(events.Key{Name: "down", Action: events.Release})
	f.settle(t)
	require.Equal(t, StateIdle, f.view.State())
}

func TestWheelImpulse(t *testing.T) {
	f := newFixture(t, Styles{})

	f.view.HandleEvent(events.PointerWheel{Delta: geometry.Vector2{Y: -1}})
	require.Negative(t, f.view.Position().Y)

	// The impulse is consumed; the next tick cools down.
	require.True(t, f.tick())
	require.Equal(t, StateCoolingDown, f.view.State())
	f.settle(t)
	require.Equal(t, StateIdle, f.view.State())
}

func TestFocusCaptureAndRelease(t *testing.T) {
	f := newFixture(t, Styles{})

	f.press(10, 10)
	f.release(10, 10)
	require.Equal(t, []string{"view"}, f.focus.captured)
	require.True(t, f.view.Focused())

	// A second press must not capture again.
	f.press(10, 10)
	f.release(10, 10)
	require.Equal(t, []string{"view"}, f.focus.captured)

	f.view.HandleEvent(events.Key{Name: "escape", Action: events.Release})
	require.Equal(t, []string{"view"}, f.focus.released)
	require.False(t, f.view.Focused())

	// Escape without focus is a no-op.
	f.view.HandleEvent(events.Key{Name: "escape", Action: events.Release})
	require.Equal(t, []string{"view"}, f.focus.released)
}

func TestGraphFollowsPosition(t *testing.T) {
	f := newFixture(t, Styles{})

	f.press(50, 25)
	f.move(20, 10)
	got, ok := f.pusher.translate("view/content")
	require.True(t, ok)
	require.Equal(t, f.view.Position(), got)
	require.Equal(t, geometry.Vector2{X: -30, Y: -15}, got)
}

func TestStartPositionIsCapped(t *testing.T) {
	f := newFixture(t, Styles{Position: geometry.Vector2{X: -9999, Y: 50}})
	require.Equal(t, geometry.Vector2{X: -400, Y: 0}, f.view.Position())
}

func TestUnexpectedRequestRejected(t *testing.T) {
	f := newFixture(t, Styles{})
	reply := make(chan events.UpdateReply, 1)
	f.view.HandleEvent(events.UpdateScrollPosition{Position: geometry.Vector2{}, Reply: reply})
	r := <-reply
	require.Error(t, r.Err)
}

func TestScrollBarDragMovesContent(t *testing.T) {
	bars := scrollbar.PairStyles{Horizontal: true, Vertical: true, Thickness: 10, Bar: scrollbar.DefaultStyles()}
	f := newFixture(t, Styles{Bars: &bars})

	done := f.view.Start()
	defer func() {
		f.view.Mailbox().Push(events.Quit{})
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Error("loop did not stop")
		}
	}()

	// The vertical bar hangs right of the frame at (100, 0), mapping
	// 50 of track over 400 of content. A click at (105, 20) jumps the
	// slider: local 16.875, world -135.
	f.view.Mailbox().Push(events.PointerButton{
		Button:   events.ButtonLeft,
		Action:   events.Press,
		Position: geometry.Vector2{X: 105, Y: 20},
	})
	assert.Eventually(t, func() bool {
		got, ok := f.pusher.translate("view/content")
		return ok && got == geometry.Vector2{X: 0, Y: -135}
	}, time.Second, 5*time.Millisecond, "content should follow the scrollbar jump")

	// The slider visual follows through the update reply.
	assert.Eventually(t, func() bool {
		got, ok := f.pusher.translate("scrollbar-vertical/slider")
		return ok && got == geometry.Vector2{Y: 16.875}
	}, time.Second, 5*time.Millisecond, "slider node should sit at the jump target")

	f.view.Mailbox().Push(events.PointerButton{
		Button:   events.ButtonLeft,
		Action:   events.Release,
		Position: geometry.Vector2{X: 105, Y: 20},
	})
	assert.Eventually(t, func() bool {
		got, ok := f.pusher.translate("view/content")
		return ok && got == geometry.Vector2{X: 0, Y: -135}
	}, time.Second, 5*time.Millisecond)
}
