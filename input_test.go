package panzoom

import "testing"

// sample builds a focused input sample at (x, y).
func sample(x, y float64, mods KeyModifiers, held ...MouseButton) inputSample {
	s := inputSample{x: x, y: y, modifiers: mods, focused: true}
	for _, b := range held {
		s.buttons[b] = true
	}
	return s
}

// --- Hit testing ---

func TestHitTest(t *testing.T) {
	c, a, b := newTestCanvas(t, Options{})
	header := a.ChildAt(0)

	tests := []struct {
		name   string
		x, y   float64
		want   *Node
		ox, oy float64
	}{
		{"element body", 100, 100, a, 25, 25},
		{"element child", 80, 78, header, 5, 3},
		{"second element", 180, 100, b, 5, 25},
		{"bare container", 10, 10, c.Target(), 10, 10},
		{"outside", 300, 300, nil, 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ox, oy := c.hitTest(tt.x, tt.y)
			if got != tt.want {
				name := "<nil>"
				if got != nil {
					name = got.Name
				}
				t.Fatalf("hitTest(%v, %v) = %s", tt.x, tt.y, name)
			}
			if !approxEqual(ox, tt.ox, epsilon) || !approxEqual(oy, tt.oy, epsilon) {
				t.Errorf("offset = (%v, %v), want (%v, %v)", ox, oy, tt.ox, tt.oy)
			}
		})
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	board := NewNode("board", Rect{Width: 100, Height: 100})
	under := NewNode("under", Rect{Width: 60, Height: 60})
	over := NewNode("over", Rect{X: 30, Y: 30, Width: 60, Height: 60})
	board.AddChild(under)
	board.AddChild(over)
	c, err := New(board, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if got, _, _ := c.hitTest(45, 45); got != over {
		t.Errorf("overlap hit %q, want over", got.Name)
	}
	if got, _, _ := c.hitTest(10, 10); got != under {
		t.Errorf("hit %q, want under", got.Name)
	}

	over.Visible = false
	if got, _, _ := c.hitTest(45, 45); got != under {
		t.Errorf("hidden element should be skipped, hit %q", got.Name)
	}
}

func TestHitTestFollowsTransform(t *testing.T) {
	c, a, _ := newTestCanvas(t, Options{InitialScale: 1.5})

	// a covers 62.5..137.5 at scale 1.5.
	got, ox, _ := c.hitTest(65, 100)
	if got != a {
		t.Fatalf("scaled element not hit")
	}
	if !approxEqual(ox, 25-35/1.5, epsilon) {
		t.Errorf("offsetX = %v, want %v", ox, 25-35/1.5)
	}

	c.PanBy(100, 0)
	if got, _, _ := c.hitTest(100, 100); got == a {
		t.Error("panned element should no longer be under (100, 100)")
	}
	if got, _, _ := c.hitTest(200, 100); got != a {
		t.Error("panned element should be under (200, 100)")
	}
}

// --- Sample processing ---

func TestProcessSampleDrag(t *testing.T) {
	c, a, _ := newTestCanvas(t, Options{})
	log := recordEvents(c)

	c.processSample(sample(100, 100, ModCtrl))
	c.processSample(sample(100, 100, ModCtrl, MouseButtonLeft))
	c.processSample(sample(110, 105, ModCtrl, MouseButtonLeft))
	c.processSample(sample(110, 105, ModCtrl))

	want := []EventType{EventDragStart, EventDragMove, EventDragEnd}
	if !sameTypes(log.types(), want) {
		t.Fatalf("events = %v, want %v", log.types(), want)
	}
	if got := c.ElementFor(a).Position(); got != (Vec2{10, 5}) {
		t.Errorf("Position = %v, want {10 5}", got)
	}
	move := log.events[1].Pointer
	if move.MovementX != 10 || move.MovementY != 5 || move.Button != MouseButtonLeft {
		t.Errorf("dragmove pointer = %+v", move)
	}
}

func TestProcessSampleFirstSampleHasNoMove(t *testing.T) {
	c, _, _ := newTestCanvas(t, Options{})
	log := recordEvents(c)
	c.processSample(sample(10, 10, ModCtrl, MouseButtonRight))
	if !sameTypes(log.types(), []EventType{EventPanStart}) {
		t.Errorf("events = %v, want [panstart]", log.types())
	}
	if got, ok := c.CursorPosition(); ok {
		t.Errorf("cursor should not be tracked without a move, got %v", got)
	}
}

func TestProcessSamplePanSuppressesContextMenu(t *testing.T) {
	c, _, _ := newTestCanvas(t, Options{})

	c.processSample(sample(10, 10, ModCtrl))
	c.processSample(sample(10, 10, ModCtrl, MouseButtonRight))
	c.processSample(sample(30, 15, ModCtrl, MouseButtonRight))
	c.processSample(sample(30, 15, ModCtrl))

	for _, e := range c.Elements() {
		if e.Position() != (Vec2{20, 5}) {
			t.Errorf("%q position = %v, want {20 5}", e.Target().Name, e.Position())
		}
	}
	// The release produced a context-menu request that consumed the
	// suppression armed by the pan end.
	if c.suppressNextContextMenu {
		t.Error("context menu after the pan should have been suppressed")
	}
	if c.HandleContextMenu(&ContextMenuEvent{}) {
		t.Error("only one context menu should be suppressed")
	}
}

func TestProcessSampleWheel(t *testing.T) {
	c, _, _ := newTestCanvas(t, Options{})
	s := sample(100, 100, ModCtrl)
	s.wheelY = 1 // ebiten: positive scrolls up
	c.processSample(s)
	if c.Scale() != 1.1 {
		t.Errorf("Scale = %v, want 1.1", c.Scale())
	}

	s.wheelY = -1
	s.modifiers = 0
	c.processSample(s)
	if c.Scale() != 1.1 {
		t.Errorf("wheel without ctrl changed scale to %v", c.Scale())
	}
}

func TestProcessSampleCursor(t *testing.T) {
	c, _, _ := newTestCanvas(t, Options{})
	c.processSample(sample(10, 10, 0))
	c.processSample(sample(80, 78, 0))
	if got, ok := c.CursorPosition(); !ok || got != (Vec2{80, 78}) {
		t.Errorf("CursorPosition = %v, %v, want {80 78}", got, ok)
	}
}

func TestProcessSampleFocusLoss(t *testing.T) {
	c, a, _ := newTestCanvas(t, Options{})
	log := recordEvents(c)

	c.processSample(sample(100, 100, ModCtrl, MouseButtonLeft))
	c.processSample(inputSample{x: 100, y: 100})
	c.processSample(inputSample{x: 100, y: 100}) // still unfocused: nothing more

	if !sameTypes(log.types(), []EventType{EventDragStart, EventDragEnd}) {
		t.Errorf("events = %v, want [dragstart dragend]", log.types())
	}
	if c.ElementFor(a).Dragging() {
		t.Error("focus loss should end the drag")
	}
	if c.pointer.buttons[MouseButtonLeft] {
		t.Error("focus loss should forget held buttons")
	}

	// Regaining focus with the button up produces no release.
	c.processSample(sample(100, 100, ModCtrl))
	if len(log.events) != 2 {
		t.Errorf("events after refocus = %v", log.types())
	}
}

func TestHeldButton(t *testing.T) {
	var b [mouseButtonCount]bool
	if heldButton(b) != MouseButtonLeft {
		t.Error("no buttons should report left")
	}
	b[MouseButtonRight] = true
	if heldButton(b) != MouseButtonRight {
		t.Error("right held should report right")
	}
}

func TestHitTestClipsToContainer(t *testing.T) {
	c, a, _ := newTestCanvas(t, Options{})
	c.PanBy(-200, 0) // a now covers -125..-75 horizontally

	if got, _, _ := c.hitTest(-120, 80); got != nil {
		t.Errorf("clipped element hit: %q", got.Name)
	}

	c.InjectPress(-120, 80, MouseButtonLeft, ModCtrl)
	drain(t, c)
	if c.Gesture() != GestureIdle {
		t.Errorf("press outside the container started %v", c.Gesture())
	}
	if c.ElementFor(a).Dragging() {
		t.Error("clipped element should not be dragging")
	}

	c.Target().Style.Overflow = OverflowVisible
	if got, _, _ := c.hitTest(-120, 80); got != a.ChildAt(0) {
		t.Error("unclipped element should be hittable outside the container")
	}
}
