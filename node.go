package panzoom

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic, panzoom is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a box in the retained layout tree that a Canvas manages. A node's
// layout box (X, Y, Width, Height) is relative to its parent and is never
// changed by the interaction core; gestures only write Style.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout box, relative to the parent's origin.
	X, Y          float64
	Width, Height float64

	// Presentation
	Style   Style
	Visible bool
	Color   Color
	Image   *ebiten.Image

	// Metadata
	UserData any
	EntityID uint32

	displayed Transform
	anim      *transformAnim
	disposed  bool
}

// NewNode creates a solid-color box node with the given layout bounds.
func NewNode(name string, bounds Rect) *Node {
	n := &Node{
		ID:      nextNodeID(),
		Name:    name,
		X:       bounds.X,
		Y:       bounds.Y,
		Width:   bounds.Width,
		Height:  bounds.Height,
		Visible: true,
		Color:   ColorWhite,
	}
	n.Style.Transform = identityStyleTransform
	n.displayed = identityStyleTransform
	return n
}

// NewImageNode creates a node at (x, y) that displays img at its natural size.
func NewImageNode(name string, img *ebiten.Image, x, y float64) *Node {
	b := img.Bounds()
	n := NewNode(name, Rect{X: x, Y: y, Width: float64(b.Dx()), Height: float64(b.Dy())})
	n.Image = img
	return n
}

// Bounds returns the node's layout box relative to its parent.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// AbsolutePosition returns the node's layout origin in screen space by
// summing layout offsets up the ancestor chain. Style transforms are ignored.
func (n *Node) AbsolutePosition() Vec2 {
	var p Vec2
	for cur := n; cur != nil; cur = cur.Parent {
		p.X += cur.X
		p.Y += cur.Y
	}
	return p
}

// SetTransform writes a transform to the node's style. The displayed
// transform follows immediately or over tr when tr is non-zero.
func (n *Node) SetTransform(t Transform, tr Transition) {
	if globalDebug {
		debugCheckDisposed(n, "SetTransform")
	}
	n.Style.Transform = t
	n.Style.Transition = tr
	n.startTransition(t, tr)
}

// DisplayedTransform returns the transform currently drawn, which differs
// from Style.Transform only while a transition is running.
func (n *Node) DisplayedTransform() Transform {
	return n.displayed
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("panzoom: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("panzoom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("panzoom: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("panzoom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("panzoom: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("panzoom: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Contains reports whether other is n or one of n's descendants.
func (n *Node) Contains(other *Node) bool {
	return other != nil && isAncestor(n, other)
}

// FindByName returns the first node in depth-first order (n included) whose
// Name matches selector. A leading '#' is ignored, so "#board" and "board"
// are equivalent. Returns nil when nothing matches.
func (n *Node) FindByName(selector string) *Node {
	name := strings.TrimPrefix(selector, "#")
	if name == "" {
		return nil
	}
	return findByName(n, name)
}

func findByName(n *Node, name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := findByName(child, name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
	n.anim = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
