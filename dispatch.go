package panzoom

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

// handlerRegistry maps each event type to its handlers in registration order.
type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this handler so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	h.reg.byType[h.event] = removeHandler(h.reg.byType[h.event], h.id)
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[event] = append(r.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *handlerRegistry) clear() {
	for i := range r.byType {
		r.byType[i] = nil
	}
}

// On registers fn for the given event type. Handlers for the same type run
// in registration order; registering never replaces an existing handler.
// Registering a nil fn or an unknown event type returns a no-op handle.
func (c *Canvas) On(event EventType, fn func(Event)) CallbackHandle {
	if fn == nil || event >= eventTypeCount {
		return CallbackHandle{}
	}
	return c.handlers.add(event, fn)
}

// OnNamed is On keyed by event name ("dragstart", "panmove", ...).
// Reports false when the name is unknown.
func (c *Canvas) OnNamed(name string, fn func(Event)) (CallbackHandle, bool) {
	event, ok := ParseEventType(name)
	if !ok {
		return CallbackHandle{}, false
	}
	return c.On(event, fn), true
}

// --- Event dispatch ---

// dispatch delivers a gesture notification to every handler registered for
// ev.Type, then forwards it to the entity store. Dispatching with no
// handlers is a no-op.
func (c *Canvas) dispatch(ev Event) {
	ev.Scale = c.scale
	// Handlers may remove themselves; iterate over a snapshot.
	hs := c.handlers.byType[ev.Type]
	if len(hs) > 0 {
		snapshot := make([]eventHandler, len(hs))
		copy(snapshot, hs)
		for _, h := range snapshot {
			h.fn(ev)
		}
	}
	c.emitGestureEvent(ev)
}

// dispatchElement is the callback handed to each Element.
func (c *Canvas) dispatchElement(event EventType, pe *PointerEvent, el *Element) {
	c.dispatch(Event{Type: event, Pointer: pe, Element: el})
}

// --- ECS bridge ---

func (c *Canvas) emitGestureEvent(ev Event) {
	if c.store == nil {
		return
	}
	ge := GestureEvent{Type: ev.Type, Scale: ev.Scale}
	if ev.Element != nil {
		// Drag events reach the ECS only for elements bound to an entity.
		if ev.Element.target.EntityID == 0 {
			return
		}
		ge.ElementID = ev.Element.id
		ge.EntityID = ev.Element.target.EntityID
		ge.Position = ev.Element.position
		ge.Translate = ev.Element.translate
	}
	if p := ev.Pointer; p != nil {
		ge.X, ge.Y = p.X, p.Y
		ge.MovementX, ge.MovementY = p.MovementX, p.MovementY
		ge.Button = p.Button
		ge.Modifiers = p.Modifiers
	}
	if w := ev.Wheel; w != nil {
		ge.X, ge.Y = w.X, w.Y
		ge.DeltaY = w.DeltaY
		ge.Modifiers = w.Modifiers
	}
	c.store.EmitEvent(ge)
}

// SetEntityStore sets the optional ECS bridge. Pass nil to detach.
func (c *Canvas) SetEntityStore(store EntityStore) {
	c.store = store
}
