package panzoom

// HandlePointerDown classifies a pointer-down. A press on a managed element
// that passes ValidateDrag starts a drag; a press anywhere in the container
// that passes ValidatePan starts a pan. Only one gesture runs at a time: a
// start while another gesture is active is rejected. Presses outside the
// container are ignored.
func (c *Canvas) HandlePointerDown(ev *PointerEvent) {
	if c.disposed || !c.target.Contains(ev.Target) {
		return
	}

	if el := c.ElementFor(ev.Target); el != nil && c.opts.ValidateDrag(ev, el) {
		if c.mode.kind != GestureIdle {
			c.debugf("dragstart on element %d rejected: %s in progress", el.id, c.mode.kind)
		} else {
			c.mode = gesture{kind: GestureDragging, element: el}
			el.startDrag(ev)
			c.debugf("dragstart element %d (%q)", el.id, el.target.Name)
		}
	}

	if c.opts.ValidatePan(ev) {
		if c.mode.kind != GestureIdle {
			c.debugf("panstart rejected: %s in progress", c.mode.kind)
			return
		}
		c.mode = gesture{kind: GesturePanning}
		ev.PreventDefault()
		c.dispatch(Event{Type: EventPanStart, Pointer: ev})
		c.debugf("panstart")
	}
}

// HandlePointerMove tracks the cursor while it is over the container and
// continues the active gesture wherever the pointer is.
func (c *Canvas) HandlePointerMove(ev *PointerEvent) {
	if c.disposed {
		return
	}
	if c.target.Contains(ev.Target) {
		c.cursor = c.cursorPosition(ev)
		c.hasCursor = true
	}

	switch c.mode.kind {
	case GestureDragging:
		c.mode.element.dragMove(ev)
	case GesturePanning:
		ev.PreventDefault()
		c.dispatch(Event{Type: EventPanMove, Pointer: ev})
		c.panBy(ev.MovementX, ev.MovementY)
	}
}

// HandlePointerUp ends the active gesture. Ending a pan arms context-menu
// suppression so the secondary-button release that follows does not open a
// menu. A pointer-up with no active gesture is ignored.
func (c *Canvas) HandlePointerUp(ev *PointerEvent) {
	if c.disposed {
		return
	}
	switch c.mode.kind {
	case GestureDragging:
		el := c.mode.element
		c.mode = gesture{}
		el.endDrag(ev)
		c.debugf("dragend element %d at position %v", el.id, el.position)
	case GesturePanning:
		c.mode = gesture{}
		ev.PreventDefault()
		c.dispatch(Event{Type: EventPanEnd, Pointer: ev})
		c.suppressNextContextMenu = true
		c.debugf("panend")
	}
}

// HandleContextMenu suppresses the first context-menu request after a pan
// ends and reports whether it did. Later requests pass through until the next
// pan ends.
func (c *Canvas) HandleContextMenu(ev *ContextMenuEvent) bool {
	if c.disposed || !c.suppressNextContextMenu {
		return false
	}
	ev.PreventDefault()
	c.suppressNextContextMenu = false
	return true
}

// HandleBlur terminates the active gesture as if the pointer had been
// released, firing the matching end event. Call it when the host loses input
// focus so a pointer-up that never arrives cannot leave a gesture stuck.
// Context-menu suppression is not armed: the release that would open the
// menu went to another window.
func (c *Canvas) HandleBlur() {
	if c.disposed {
		return
	}
	if c.mode.kind != GestureIdle {
		c.debugf("focus lost: terminating %s", c.mode.kind)
	}
	c.terminateGesture(true)
}

// terminateGesture returns the canvas to idle. With emit, the active
// gesture's end event fires with a synthetic pointer event.
func (c *Canvas) terminateGesture(emit bool) {
	mode := c.mode
	c.mode = gesture{}
	switch mode.kind {
	case GestureDragging:
		el := mode.element
		if emit {
			el.endDrag(&PointerEvent{})
		} else {
			el.dragging = false
		}
	case GesturePanning:
		if emit {
			c.dispatch(Event{Type: EventPanEnd, Pointer: &PointerEvent{}})
		}
	}
}

// PanBy moves every element by (dx, dy) without firing pan events. Position
// and translate both advance by exactly (dx, dy).
func (c *Canvas) PanBy(dx, dy float64) {
	if c.disposed {
		return
	}
	c.panBy(dx, dy)
}

func (c *Canvas) panBy(dx, dy float64) {
	for _, e := range c.elements {
		e.PositionBy(dx, dy)
		e.TranslateBy(dx, dy)
		e.SetTransition(c.opts.MoveTransition)
		e.Render()
	}
}

// cursorPosition converts ev into container coordinates: the pointer's offset
// within its target plus the layout offset of every node between the target
// and the container.
func (c *Canvas) cursorPosition(ev *PointerEvent) Vec2 {
	p := Vec2{ev.OffsetX, ev.OffsetY}
	for n := ev.Target; n != nil && n != c.target; n = n.Parent {
		p.X += n.X
		p.Y += n.Y
	}
	return p
}
