package panzoom

import "fmt"

// GestureKind identifies which gesture a Canvas is tracking.
type GestureKind uint8

const (
	GestureIdle     GestureKind = iota // no gesture in progress
	GestureDragging                    // one element is being dragged
	GesturePanning                     // the whole canvas is being panned
)

// String returns "idle", "dragging" or "panning".
func (k GestureKind) String() string {
	switch k {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GesturePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// gesture is the canvas's active gesture. element is the dragged element and
// is only set when kind is GestureDragging.
type gesture struct {
	kind    GestureKind
	element *Element
}

// Canvas is the viewport over one container node. It owns the shared scale,
// one Element per direct child of the container, the gesture state, and the
// event registry.
type Canvas struct {
	target *Node
	opts   Options

	scale                   float64
	mode                    gesture
	suppressNextContextMenu bool
	cursor                  Vec2
	hasCursor               bool
	elements                []*Element
	nextElementID           uint32

	handlers handlerRegistry
	store    EntityStore
	debug    bool
	disposed bool

	// Input state
	pointer     pointerState
	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// New creates a Canvas over container. Every direct child of container
// becomes a managed Element, in child order. The container's overflow is set
// to hidden.
func New(container *Node, opts Options) (*Canvas, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: nil container", ErrContainerNotFound)
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	c := &Canvas{
		target: container,
		opts:   opts,
		scale:  roundScale(clamp(opts.InitialScale, opts.ScaleMin, opts.ScaleMax)),
	}
	if opts.Debug {
		c.SetDebugMode(true)
	}
	container.Style.Overflow = OverflowHidden
	c.elements = c.scanElements()
	c.layout(Transition{})
	c.debugf("canvas %q attached: %d elements, scale %v", container.Name, len(c.elements), c.scale)
	return c, nil
}

// NewFromSelector finds the container under root by name (see
// Node.FindByName) and creates a Canvas over it. Fails with
// ErrContainerNotFound, naming the selector, when nothing matches.
func NewFromSelector(root *Node, selector string, opts Options) (*Canvas, error) {
	var container *Node
	if root != nil {
		container = root.FindByName(selector)
	}
	if container == nil {
		return nil, fmt.Errorf("%w: no node matches selector %q", ErrContainerNotFound, selector)
	}
	return New(container, opts)
}

// scanElements creates one Element per direct child of the container. IDs come
// from a per-canvas counter and are never reused, not even across Reload.
func (c *Canvas) scanElements() []*Element {
	children := c.target.Children()
	elements := make([]*Element, 0, len(children))
	for _, child := range children {
		c.nextElementID++
		elements = append(elements, newElement(c.nextElementID, child, c.scale, c.dispatchElement))
	}
	return elements
}

// Reload rescans the container's children and rebuilds the element
// collection. All per-element state is discarded, including for nodes that
// were managed before; every element restarts at position (0, 0). An active
// gesture is terminated first, firing its end event.
func (c *Canvas) Reload() {
	if c.disposed {
		return
	}
	c.terminateGesture(true)
	c.elements = c.scanElements()
	c.layout(Transition{})
	c.debugf("reload: %d elements", len(c.elements))
}

// Dispose detaches the canvas: the active gesture is dropped without end
// events, every handler and the entity store are released, and all later
// input is ignored. The container and its nodes are left in place.
func (c *Canvas) Dispose() {
	if c.disposed {
		return
	}
	c.terminateGesture(false)
	c.handlers.clear()
	c.elements = nil
	c.store = nil
	c.injectQueue = nil
	c.testRunner = nil
	c.disposed = true
	c.debugf("canvas %q disposed", c.target.Name)
}

// IsDisposed reports whether Dispose has been called.
func (c *Canvas) IsDisposed() bool {
	return c.disposed
}

// Target returns the container node.
func (c *Canvas) Target() *Node {
	return c.target
}

// Options returns the effective options, defaults included.
func (c *Canvas) Options() Options {
	return c.opts
}

// Scale returns the current shared scale.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// CursorPosition returns the last pointer position observed over the
// container, in container coordinates. ok is false until the pointer has
// moved over the container at least once.
func (c *Canvas) CursorPosition() (pos Vec2, ok bool) {
	return c.cursor, c.hasCursor
}

// Origo returns the container's center in its own coordinates, the fixed
// point zoom is anchored at.
func (c *Canvas) Origo() Vec2 {
	return Vec2{c.target.Width / 2, c.target.Height / 2}
}

// Elements returns the managed elements in container child order.
// The returned slice MUST NOT be mutated.
func (c *Canvas) Elements() []*Element {
	return c.elements
}

// Element returns the managed element with the given ID (see Element.ID), or
// nil.
func (c *Canvas) Element(id uint32) *Element {
	for _, e := range c.elements {
		if e.id == id {
			return e
		}
	}
	return nil
}

// ElementFor returns the managed element that is n or contains n, or nil.
func (c *Canvas) ElementFor(n *Node) *Element {
	for cur := n; cur != nil && cur != c.target; cur = cur.Parent {
		if cur.Parent == c.target {
			for _, e := range c.elements {
				if e.target == cur {
					return e
				}
			}
			return nil
		}
	}
	return nil
}

// Gesture returns the kind of gesture in progress.
func (c *Canvas) Gesture() GestureKind {
	return c.mode.kind
}

// Panning reports whether a pan is in progress.
func (c *Canvas) Panning() bool {
	return c.mode.kind == GesturePanning
}

// Transitioning reports whether any managed element is still animating
// toward its styled transform.
func (c *Canvas) Transitioning() bool {
	for _, e := range c.elements {
		if e.target.Transitioning() {
			return true
		}
	}
	return false
}

// Dragging returns the element being dragged, or nil.
func (c *Canvas) Dragging() *Element {
	if c.mode.kind != GestureDragging {
		return nil
	}
	return c.mode.element
}
