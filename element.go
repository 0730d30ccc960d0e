package panzoom

// dispatchFunc delivers an element's drag notifications to the canvas.
type dispatchFunc func(event EventType, ev *PointerEvent, el *Element)

// Element tracks one managed node: its logical position (scale-independent,
// accumulated from drags and pans) and its translate (the scale-adjusted
// offset written into the node's style). Elements are created by a Canvas
// for each direct child of its container.
type Element struct {
	id     uint32
	target *Node

	position  Vec2
	translate Vec2
	scale     float64

	dragging bool

	transition Transition
	dispatch   dispatchFunc
}

func newElement(id uint32, target *Node, scale float64, dispatch dispatchFunc) *Element {
	return &Element{
		id:       id,
		target:   target,
		scale:    scale,
		dispatch: dispatch,
	}
}

// ID returns the element's identifier, unique within its canvas and fixed
// for the element's lifetime. It does not follow Node.ID.
func (e *Element) ID() uint32 { return e.id }

// Target returns the managed node.
func (e *Element) Target() *Node { return e.target }

// Position returns the logical, scale-independent offset.
func (e *Element) Position() Vec2 { return e.position }

// Translate returns the offset written into the node's transform.
func (e *Element) Translate() Vec2 { return e.translate }

// Scale returns the scale last applied to this element.
func (e *Element) Scale() float64 { return e.scale }

// Dragging reports whether the element is the target of an in-progress drag.
func (e *Element) Dragging() bool { return e.dragging }

// Offset returns the node's layout origin within the container plus its
// logical position.
func (e *Element) Offset() Vec2 {
	return Vec2{e.target.X + e.position.X, e.target.Y + e.position.Y}
}

// Center returns the center of the element's logical box in container
// coordinates. Zoom anchoring measures distance from the origo to this point.
func (e *Element) Center() Vec2 {
	o := e.Offset()
	return Vec2{o.X + e.target.Width/2, o.Y + e.target.Height/2}
}

// SetPosition sets the logical position.
func (e *Element) SetPosition(x, y float64) {
	e.position = Vec2{x, y}
}

// SetTranslate sets the rendered translate.
func (e *Element) SetTranslate(x, y float64) {
	e.translate = Vec2{x, y}
}

// SetScale sets the rendered scale.
func (e *Element) SetScale(s float64) {
	e.scale = s
}

// SetTransform sets translate and scale together.
func (e *Element) SetTransform(x, y, s float64) {
	e.translate = Vec2{x, y}
	e.scale = s
}

// ScaleBy adds ds to the rendered scale.
func (e *Element) ScaleBy(ds float64) {
	e.scale += ds
}

// SetTransition sets the transition used by the next Render.
func (e *Element) SetTransition(tr Transition) {
	e.transition = tr
}

// PositionBy adds (dx, dy) to the logical position.
func (e *Element) PositionBy(dx, dy float64) {
	e.position.X += dx
	e.position.Y += dy
}

// TranslateBy adds (dx, dy) to the rendered translate.
func (e *Element) TranslateBy(dx, dy float64) {
	e.translate.X += dx
	e.translate.Y += dy
}

// MoveBy advances the logical position by (dx, dy) and the translate by the
// same movement multiplied by the current scale.
func (e *Element) MoveBy(dx, dy float64) {
	e.PositionBy(dx, dy)
	e.TranslateBy(dx*e.scale, dy*e.scale)
}

// Render writes the current translate and scale to the node's style.
func (e *Element) Render() {
	e.target.SetTransform(Transform{
		TranslateX: e.translate.X,
		TranslateY: e.translate.Y,
		Scale:      e.scale,
	}, e.transition)
}

// --- Drag gesture ---

// startDrag enters the dragging state. The caller has already validated the
// pointer-down and checked that no other gesture is active.
func (e *Element) startDrag(ev *PointerEvent) {
	ev.PreventDefault()
	e.dispatch(EventDragStart, ev, e)
	e.dragging = true
}

// dragMove applies one pointer-move while dragging.
func (e *Element) dragMove(ev *PointerEvent) {
	if !e.dragging {
		return
	}
	ev.PreventDefault()
	e.dispatch(EventDragMove, ev, e)
	e.MoveBy(ev.MovementX, ev.MovementY)
	e.transition = Transition{}
	e.Render()
}

// endDrag leaves the dragging state. The logical position is the sum of the
// drag movements already applied by dragMove; translate is never read back
// into it, since a zoom layout may have rewritten translate mid-drag.
func (e *Element) endDrag(ev *PointerEvent) {
	if !e.dragging {
		return
	}
	ev.PreventDefault()
	e.dispatch(EventDragEnd, ev, e)
	e.dragging = false
}
