package panzoom

// PointerEvent is a raw pointer-down, pointer-move or pointer-up event.
type PointerEvent struct {
	// X and Y are the pointer position in screen space.
	X, Y float64
	// OffsetX and OffsetY are the pointer position in Target's local box space.
	OffsetX, OffsetY float64
	// MovementX and MovementY are the screen-space movement since the
	// previous pointer event. Only meaningful for pointer-move.
	MovementX, MovementY float64
	// Button is the button that changed state (down/up) or is held (move).
	Button    MouseButton
	Modifiers KeyModifiers
	// Target is the deepest node under the pointer, or nil when the pointer
	// is outside the container.
	Target *Node

	prevented bool
}

// PreventDefault marks the event's default host action as suppressed.
func (e *PointerEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool { return e.prevented }

// WheelEvent is a raw mouse wheel event.
type WheelEvent struct {
	X, Y             float64
	OffsetX, OffsetY float64
	// DeltaY follows browser convention: positive scrolls down (zooms out).
	DeltaY    float64
	Modifiers KeyModifiers
	Target    *Node

	prevented bool
}

// PreventDefault marks the event's default host action as suppressed.
func (e *WheelEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *WheelEvent) DefaultPrevented() bool { return e.prevented }

// ContextMenuEvent is the host's request to open a context menu, typically
// produced by a secondary-button release.
type ContextMenuEvent struct {
	X, Y   float64
	Target *Node

	prevented bool
}

// PreventDefault suppresses the context menu.
func (e *ContextMenuEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether the context menu was suppressed.
func (e *ContextMenuEvent) DefaultPrevented() bool { return e.prevented }

// Event is the notification delivered to handlers registered with Canvas.On.
type Event struct {
	Type EventType
	// Pointer is set for drag and pan events. For gestures terminated by a
	// focus loss it is a synthetic event with a nil Target.
	Pointer *PointerEvent
	// Wheel is set for zoom events.
	Wheel *WheelEvent
	// Element is the dragged element for drag events, nil otherwise.
	Element *Element
	// Scale is the canvas scale at dispatch time.
	Scale float64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Canvas, gesture events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge.
type GestureEvent struct {
	Type      EventType
	ElementID uint32
	EntityID  uint32
	X         float64
	Y         float64
	MovementX float64
	MovementY float64
	Button    MouseButton
	Modifiers KeyModifiers
	// DeltaY is the wheel delta (valid for EventZoom).
	DeltaY float64
	Scale  float64
	// Position and Translate are the element state after the event
	// (valid for drag events).
	Position  Vec2
	Translate Vec2
}
