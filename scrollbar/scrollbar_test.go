package scrollbar

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"scrollkit"
	"scrollkit/events"
	"scrollkit/geometry"
	"scrollkit/stream"
)

// 200-long horizontal bar over 800 of content: width factor 0.25,
// slider length 50, world range [-600, 0].
func newBar(t *testing.T, styles Styles) (*ScrollBar, *stream.Stream[events.Event]) {
	t.Helper()
	out := stream.New[events.Event]("owner")
	b, err := New(Settings{
		Width:       200,
		Height:      10,
		ContentSize: 800,
		Axis:        geometry.Horizontal,
	}, styles, out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return b, out
}

func press(b *ScrollBar, x, y float64) {
	b.HandleEvent(events.PointerButton{Button: events.ButtonLeft, Action: events.Press, Position: geometry.Vector2{X: x, Y: y}})
}

func move(b *ScrollBar, x, y float64) {
	b.HandleEvent(events.PointerMove{Position: geometry.Vector2{X: x, Y: y}})
}

func release(b *ScrollBar, x, y float64) {
	b.HandleEvent(events.PointerButton{Button: events.ButtonLeft, Action: events.Release, Position: geometry.Vector2{X: x, Y: y}})
}

func TestNewEmitsInitialized(t *testing.T) {
	b, out := newBar(t, Styles{})
	got := out.PullAll()
	if len(got) != 1 {
		t.Fatalf("events after New: %v", got)
	}
	init, ok := got[0].(events.ScrollBarInitialized)
	if !ok {
		t.Fatalf("first event = %T, want ScrollBarInitialized", got[0])
	}
	if init.ID != b.ID() || init.Axis != geometry.Horizontal {
		t.Errorf("init = %+v", init)
	}
	if v, ok := init.Position.Untag(); !ok || v != 0 {
		t.Errorf("initial position = %v, %v", v, ok)
	}
}

func TestValidation(t *testing.T) {
	out := stream.New[events.Event]("owner")
	good := Settings{Width: 200, Height: 10, ContentSize: 800, Axis: geometry.Horizontal}

	tests := []struct {
		name   string
		tweak  func(*Settings)
		out    *stream.Stream[events.Event]
		styles Styles
	}{
		{name: "nil mailbox", tweak: func(*Settings) {}, out: nil},
		{name: "zero width", tweak: func(s *Settings) { s.Width = 0 }, out: out},
		{name: "negative height", tweak: func(s *Settings) { s.Height = -1 }, out: out},
		{name: "zero content", tweak: func(s *Settings) { s.ContentSize = 0 }, out: out},
		{name: "bad axis", tweak: func(s *Settings) { s.Axis = geometry.Axis(7) }, out: out},
		{
			name:   "buttons eat the track",
			tweak:  func(s *Settings) { s.Width = 15 },
			out:    out,
			styles: Styles{Buttons: true},
		},
	}
	for _, test := range tests {
		settings := good
		test.tweak(&settings)
		_, err := New(settings, test.styles, test.out, zerolog.Nop())
		if !errors.Is(err, scrollkit.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", test.name, err)
		}
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	b, out := newBar(t, Styles{})
	out.PullAll()

	for _, world := range []float64{0, -1, -250, -599.5, -600} {
		reply := make(chan events.UpdateReply, 1)
		b.HandleEvent(events.UpdateScrollPosition{Position: geometry.Vector2{X: world}, Reply: reply})

		if got, _ := b.Position().Untag(); got != world {
			t.Errorf("position after update(%v) = %v", world, got)
		}
		r := <-reply
		if len(r.Sliders) != 1 {
			t.Fatalf("reply sliders = %v", r.Sliders)
		}
		if got := r.Sliders[0].Offset.X; got != -world*0.25 {
			t.Errorf("slider offset for %v = %v, want %v", world, got, -world*0.25)
		}
	}
	if got := out.PullAll(); len(got) != 0 {
		t.Errorf("updates must not notify, got %v", got)
	}
}

func TestUpdateClamps(t *testing.T) {
	b, _ := newBar(t, Styles{})
	b.HandleEvent(events.UpdateScrollPosition{Position: geometry.Vector2{X: -5000}})
	if got, _ := b.Position().Untag(); got != -600 {
		t.Errorf("over-scrolled update = %v, want -600", got)
	}
	b.HandleEvent(events.UpdateScrollPosition{Position: geometry.Vector2{X: 50}})
	if got, _ := b.Position().Untag(); got != 0 {
		t.Errorf("positive update = %v, want 0", got)
	}
}

func TestSliderDrag(t *testing.T) {
	b, out := newBar(t, Styles{})
	out.PullAll()

	press(b, 10, 5) // slider occupies local 0..50
	if !b.Dragging() || b.State() != events.ScrollStateDragging {
		t.Fatal("press on the slider should start a drag")
	}

	move(b, 60, 5) // +50 along the track
	if got, _ := b.Position().Untag(); got != -200 {
		t.Errorf("position after drag = %v, want -200", got)
	}
	change := mustEvent[events.ScrollBarPositionChange](t, out)
	if v, _ := change.Position.Untag(); v != -200 || change.State != events.ScrollStateDragging {
		t.Errorf("change = %+v", change)
	}

	release(b, 60, 5)
	if b.Dragging() {
		t.Error("release should end the drag")
	}
	end := mustEvent[events.ScrollBarScrollEnd](t, out)
	if v, _ := end.Position.Untag(); v != -200 || end.State != events.ScrollStateIdle {
		t.Errorf("end = %+v", end)
	}
}

func TestBackgroundJump(t *testing.T) {
	b, out := newBar(t, Styles{})
	out.PullAll()

	// Click at 150 on the track: the slider centers there, local
	// 150 - 50/2 = 125, world -500.
	press(b, 150, 5)
	if got, _ := b.Position().Untag(); got != -500 {
		t.Errorf("position after jump = %v, want -500", got)
	}
	change := mustEvent[events.ScrollBarPositionChange](t, out)
	if change.State != events.ScrollStateDragging {
		t.Errorf("jump state = %v, want dragging", change.State)
	}

	// The jump transitions into a drag of the recentered slider.
	move(b, 170, 5)
	if got, _ := b.Position().Untag(); got != -580 {
		t.Errorf("position after post-jump move = %v, want -580", got)
	}
	mustEvent[events.ScrollBarPositionChange](t, out)

	release(b, 170, 5)
	mustEvent[events.ScrollBarScrollEnd](t, out)
}

func TestDragClampsAtTrackEnds(t *testing.T) {
	b, out := newBar(t, Styles{})
	out.PullAll()

	press(b, 10, 5)
	move(b, 1000, 5)
	if got, _ := b.Position().Untag(); got != -600 {
		t.Errorf("past trailing end = %v, want -600", got)
	}
	move(b, -1000, 5)
	if got, _ := b.Position().Untag(); got != 0 {
		t.Errorf("past leading end = %v, want 0", got)
	}
}

func TestStepButtons(t *testing.T) {
	b, out := newBar(t, Styles{Buttons: true}) // button size 10
	out.PullAll()

	press(b, 5, 5)
	pressed := mustEvent[events.ScrollBarButtonPressed](t, out)
	if pressed.Direction != 1 || pressed.State != events.ScrollStateScrolling {
		t.Errorf("leading press = %+v", pressed)
	}
	if b.Direction() != (geometry.Vector2{X: 1}) {
		t.Errorf("Direction = %v", b.Direction())
	}

	release(b, 5, 5)
	released := mustEvent[events.ScrollBarButtonReleased](t, out)
	if released.Direction != 0 || released.State != events.ScrollStateIdle {
		t.Errorf("leading release = %+v", released)
	}

	press(b, 195, 5)
	trailing := mustEvent[events.ScrollBarButtonPressed](t, out)
	if trailing.Direction != -1 {
		t.Errorf("trailing press = %+v", trailing)
	}
	release(b, 195, 5)
	out.PullAll()
}

func TestScrollingOutranksDragging(t *testing.T) {
	b, _ := newBar(t, Styles{Buttons: true})
	press(b, 15, 5) // slider starts right after the leading button
	press(b, 5, 5)  // leading button on top of the drag
	if b.State() != events.ScrollStateScrolling {
		t.Errorf("state = %v, want scrolling to outrank dragging", b.State())
	}
}

func TestVerticalBar(t *testing.T) {
	out := stream.New[events.Event]("owner")
	b, err := New(Settings{
		Width:       10,
		Height:      200,
		ContentSize: 400,
		Axis:        geometry.Vertical,
	}, Styles{}, out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	out.PullAll()

	// Width factor 0.5, slider length 100. Click below the slider:
	// local 150 - 50 = 100, world -200.
	press(b, 5, 150)
	got := b.Position()
	if got.Axis != geometry.Vertical {
		t.Errorf("axis = %v", got.Axis)
	}
	if v, _ := got.Untag(); v != -200 {
		t.Errorf("position = %v, want -200", v)
	}
}

func mustEvent[E events.Event](t *testing.T, out *stream.Stream[events.Event]) E {
	t.Helper()
	for _, ev := range out.PullAll() {
		if e, ok := ev.(E); ok {
			return e
		}
	}
	var zero E
	t.Fatalf("no %T emitted", zero)
	return zero
}
