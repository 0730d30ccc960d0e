package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// testBoard builds a 200x200 container with two 50x50 elements: "a" centered
// on the origo (100, 100) and "b" centered at (200, 100). Element "a" has a
// 50x10 "a-header" child.
func testBoard() (board, a, b *Node) {
	board = NewNode("board", Rect{Width: 200, Height: 200})
	a = NewNode("a", Rect{X: 75, Y: 75, Width: 50, Height: 50})
	a.AddChild(NewNode("a-header", Rect{Width: 50, Height: 10}))
	b = NewNode("b", Rect{X: 175, Y: 75, Width: 50, Height: 50})
	board.AddChild(a)
	board.AddChild(b)
	return board, a, b
}

func newTestCanvas(t *testing.T, opts Options) (c *Canvas, a, b *Node) {
	t.Helper()
	board, a, b := testBoard()
	c, err := New(board, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, a, b
}

// eventLog records every event type dispatched by a canvas, in order.
type eventLog struct {
	events []Event
}

func recordEvents(c *Canvas) *eventLog {
	l := &eventLog{}
	for et := EventType(0); et < eventTypeCount; et++ {
		c.On(et, func(e Event) { l.events = append(l.events, e) })
	}
	return l
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func (l *eventLog) count(et EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func sameTypes(got, want []EventType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func ctrlDown(target *Node, button MouseButton) *PointerEvent {
	return &PointerEvent{Target: target, Button: button, Modifiers: ModCtrl}
}

func moveBy(target *Node, dx, dy float64) *PointerEvent {
	return &PointerEvent{Target: target, MovementX: dx, MovementY: dy}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	got := Rect{10, 20, 100, 50}.Center()
	if got != (Vec2{60, 45}) {
		t.Errorf("Center = %v, want {60 45}", got)
	}
}

// --- Vec2 ---

func TestVec2Arithmetic(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Add(Vec2{1, -1}); got != (Vec2{4, 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(Vec2{1, -1}); got != (Vec2{2, 5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Mul = %v", got)
	}
}

// --- EventType ---

func TestEventTypeNames(t *testing.T) {
	tests := []struct {
		et   EventType
		name string
	}{
		{EventDragStart, "dragstart"},
		{EventDragMove, "dragmove"},
		{EventDragEnd, "dragend"},
		{EventPanStart, "panstart"},
		{EventPanMove, "panmove"},
		{EventPanEnd, "panend"},
		{EventZoom, "zoom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.et.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			got, ok := ParseEventType(tt.name)
			if !ok || got != tt.et {
				t.Errorf("ParseEventType(%q) = %v, %v", tt.name, got, ok)
			}
		})
	}
}

func TestParseEventTypeUnknown(t *testing.T) {
	for _, name := range []string{"", "drag", "PANSTART", "click"} {
		if _, ok := ParseEventType(name); ok {
			t.Errorf("ParseEventType(%q) should fail", name)
		}
	}
	if got := EventType(99).String(); got != "unknown" {
		t.Errorf("EventType(99).String() = %q", got)
	}
}

// --- Modifiers ---

func TestKeyModifiersHas(t *testing.T) {
	m := ModCtrl | ModShift
	tests := []struct {
		name string
		want KeyModifiers
		has  bool
	}{
		{"ctrl", ModCtrl, true},
		{"shift", ModShift, true},
		{"both", ModCtrl | ModShift, true},
		{"alt", ModAlt, false},
		{"ctrl+alt", ModCtrl | ModAlt, false},
		{"none", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Has(tt.want); got != tt.has {
				t.Errorf("Has(%v) = %v, want %v", tt.want, got, tt.has)
			}
		})
	}
}

// --- Color ---

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	if got.R != 128 || got.G != 64 || got.B != 0 || got.A != 128 {
		t.Errorf("toRGBA = %v, want {128 64 0 128}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0.2, 0.5},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1.5},
		{9, 1.5},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, 0.5, 1.5); got != tt.want {
			t.Errorf("clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
