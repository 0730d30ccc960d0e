package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Per-pointer state ---

// pointerState is the previous input sample, diffed against each new one.
type pointerState struct {
	seen    bool
	focused bool
	x, y    float64
	buttons [mouseButtonCount]bool
}

// inputSample is one tick of polled (or injected) input.
type inputSample struct {
	x, y      float64
	buttons   [mouseButtonCount]bool
	wheelY    float64 // ebiten convention: positive scrolls up
	modifiers KeyModifiers
	focused   bool
}

var ebitenButtons = [mouseButtonCount]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// --- Frame update ---

// Update advances style transitions and processes one tick of input. Call it
// once per ebiten Update. When synthetic events are queued, the next one
// replaces real input for this tick.
func (c *Canvas) Update() {
	if c.disposed {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	advanceTree(c.target, dt)

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if c.processInjectedInput() {
		return
	}
	c.processSample(pollEbiten())
}

// pollEbiten reads the current mouse, keyboard and focus state.
func pollEbiten() inputSample {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s := inputSample{
		x:         float64(mx),
		y:         float64(my),
		wheelY:    wy,
		modifiers: readModifiers(),
		focused:   ebiten.IsFocused(),
	}
	for b, eb := range ebitenButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(eb):
			s.buttons[b] = true
		case inpututil.IsMouseButtonJustReleased(eb):
			s.buttons[b] = false
		default:
			s.buttons[b] = ebiten.IsMouseButtonPressed(eb)
		}
	}
	return s
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processSample diffs s against the previous sample and feeds the resulting
// raw events to the canvas in order: move, presses, releases (a secondary
// release is followed by a context-menu request), wheel. Losing focus
// terminates the active gesture and forgets held buttons.
func (c *Canvas) processSample(s inputSample) {
	ps := &c.pointer

	if !s.focused {
		if ps.focused {
			c.HandleBlur()
		}
		ps.focused = false
		ps.buttons = [mouseButtonCount]bool{}
		return
	}
	ps.focused = true

	target, ox, oy := c.hitTest(s.x, s.y)
	base := PointerEvent{
		X: s.x, Y: s.y,
		OffsetX: ox, OffsetY: oy,
		Modifiers: s.modifiers,
		Target:    target,
	}

	if ps.seen && (s.x != ps.x || s.y != ps.y) {
		ev := base
		ev.MovementX = s.x - ps.x
		ev.MovementY = s.y - ps.y
		ev.Button = heldButton(ps.buttons)
		c.HandlePointerMove(&ev)
	}
	ps.seen = true
	ps.x, ps.y = s.x, s.y

	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if s.buttons[b] && !ps.buttons[b] {
			ev := base
			ev.Button = b
			c.HandlePointerDown(&ev)
		}
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if !s.buttons[b] && ps.buttons[b] {
			ev := base
			ev.Button = b
			c.HandlePointerUp(&ev)
			if b == MouseButtonRight {
				c.HandleContextMenu(&ContextMenuEvent{X: s.x, Y: s.y, Target: target})
			}
		}
	}
	ps.buttons = s.buttons

	if s.wheelY != 0 {
		c.HandleWheel(&WheelEvent{
			X: s.x, Y: s.y,
			OffsetX: ox, OffsetY: oy,
			DeltaY:    -s.wheelY,
			Modifiers: s.modifiers,
			Target:    target,
		})
	}
}

// heldButton returns the first held button, or MouseButtonLeft.
func heldButton(buttons [mouseButtonCount]bool) MouseButton {
	for b, down := range buttons {
		if down {
			return MouseButton(b)
		}
	}
	return MouseButtonLeft
}

// --- Hit testing ---

// hitTest finds the deepest node under the screen point (sx, sy) and the
// point's offset in that node's local space. Managed elements are tested
// topmost first against their displayed transform; then the container box.
// Returns a nil target when the point is outside the container. Element parts
// outside a clipping container are not hittable.
func (c *Canvas) hitTest(sx, sy float64) (target *Node, ox, oy float64) {
	abs := c.target.AbsolutePosition()
	lx, ly := sx-abs.X, sy-abs.Y
	inside := lx >= 0 && lx <= c.target.Width && ly >= 0 && ly <= c.target.Height
	if !inside && c.target.Style.Overflow == OverflowHidden {
		return nil, lx, ly
	}
	for i := len(c.elements) - 1; i >= 0; i-- {
		n := c.elements[i].target
		if !n.Visible {
			continue
		}
		ex, ey := n.ScreenToLocal(sx, sy)
		if ex >= 0 && ex <= n.Width && ey >= 0 && ey <= n.Height {
			return deepestAt(n, ex, ey)
		}
	}
	if inside {
		return c.target, lx, ly
	}
	return nil, lx, ly
}

// deepestAt descends from n into the topmost visible child whose layout box
// contains (lx, ly), returning the innermost node and the point in its space.
func deepestAt(n *Node, lx, ly float64) (*Node, float64, float64) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if child.Visible && child.Bounds().Contains(lx, ly) {
			return deepestAt(child, lx-child.X, ly-child.Y)
		}
	}
	return n, lx, ly
}
