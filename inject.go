package panzoom

// syntheticEvent represents a single injected input tick. Screen coordinates
// are used and hit-tested identically to real mouse input.
type syntheticEvent struct {
	kind      syntheticKind
	x, y      float64
	button    MouseButton
	modifiers KeyModifiers
	wheelY    float64
}

type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
	syntheticWheel
	syntheticBlur
)

// InjectPress queues a button press at the given screen coordinates. The
// event is consumed on the next Update.
func (c *Canvas) InjectPress(x, y float64, button MouseButton, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticPress, x: x, y: y, button: button, modifiers: mods,
	})
}

// InjectMove queues a pointer move to the given screen coordinates. Held
// buttons stay held.
func (c *Canvas) InjectMove(x, y float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticMove, x: x, y: y, modifiers: mods,
	})
}

// InjectRelease queues a button release at the given screen coordinates.
func (c *Canvas) InjectRelease(x, y float64, button MouseButton, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticRelease, x: x, y: y, button: button, modifiers: mods,
	})
}

// InjectWheel queues a wheel event at the given screen coordinates. deltaY
// follows the browser convention used by WheelEvent: negative zooms in.
func (c *Canvas) InjectWheel(x, y, deltaY float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticWheel, x: x, y: y, wheelY: -deltaY, modifiers: mods,
	})
}

// InjectBlur queues a loss of input focus.
func (c *Canvas) InjectBlur() {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticBlur})
}

// InjectDrag queues a full press-move-release sequence from (fromX, fromY)
// to (toX, toY) with frames-2 linearly interpolated moves in between. The
// whole sequence consumes `frames` ticks; the minimum is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int, button MouseButton, mods KeyModifiers) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY, button, mods)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y, mods)
	}
	c.InjectRelease(toX, toY, button, mods)
}

// PendingInjections returns the number of queued synthetic events.
func (c *Canvas) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue, turns it into an
// input sample on top of the current pointer state, and processes it.
// Returns true if an event was consumed (real input should be skipped).
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	s := inputSample{
		x:         evt.x,
		y:         evt.y,
		buttons:   c.pointer.buttons,
		modifiers: evt.modifiers,
		focused:   true,
	}
	switch evt.kind {
	case syntheticPress:
		if evt.button < mouseButtonCount {
			s.buttons[evt.button] = true
		}
	case syntheticRelease:
		if evt.button < mouseButtonCount {
			s.buttons[evt.button] = false
		}
	case syntheticWheel:
		s.wheelY = evt.wheelY
	case syntheticBlur:
		s.x, s.y = c.pointer.x, c.pointer.y
		s.focused = false
	}
	c.processSample(s)
	return true
}
