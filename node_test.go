package panzoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("card", Rect{X: 1, Y: 2, Width: 30, Height: 40})
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "card" {
		t.Errorf("Name = %q, want card", n.Name)
	}
	if n.Bounds() != (Rect{1, 2, 30, 40}) {
		t.Errorf("Bounds = %v", n.Bounds())
	}
	if !n.Visible {
		t.Error("Visible should default to true")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if n.Style.Transform != (Transform{Scale: 1}) || n.DisplayedTransform() != (Transform{Scale: 1}) {
		t.Errorf("transform = %v, want identity", n.Style.Transform)
	}
	if n.Style.Overflow != OverflowVisible {
		t.Error("Overflow should default to visible")
	}
}

func TestNewNodeUniqueIDs(t *testing.T) {
	a := NewNode("a", Rect{})
	b := NewNode("b", Rect{})
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNewImageNode(t *testing.T) {
	img := ebiten.NewImage(16, 8)
	n := NewImageNode("img", img, 3, 4)
	if n.Image != img {
		t.Error("Image not set")
	}
	if n.Bounds() != (Rect{3, 4, 16, 8}) {
		t.Errorf("Bounds = %v, want {3 4 16 8}", n.Bounds())
	}
}

func TestAddChild(t *testing.T) {
	parent := NewNode("parent", Rect{})
	child := NewNode("child", Rect{})
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewNode("p1", Rect{})
	p2 := NewNode("p2", Rect{})
	child := NewNode("child", Rect{})
	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Error("child should be removed from old parent")
	}
	if child.Parent != p2 || p2.NumChildren() != 1 {
		t.Error("child should belong to new parent")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewNode("p", Rect{}).AddChild(nil) }},
		{"self", func() {
			n := NewNode("n", Rect{})
			n.AddChild(n)
		}},
		{"ancestor", func() {
			a := NewNode("a", Rect{})
			b := NewNode("b", Rect{})
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"index out of range", func() {
			NewNode("p", Rect{}).AddChildAt(NewNode("c", Rect{}), 3)
		}},
		{"remove foreign child", func() {
			NewNode("p", Rect{}).RemoveChild(NewNode("c", Rect{}))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestAddChildAt(t *testing.T) {
	p := NewNode("p", Rect{})
	a := NewNode("a", Rect{})
	b := NewNode("b", Rect{})
	c := NewNode("c", Rect{})
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)

	want := []*Node{a, b, c}
	for i, n := range want {
		if p.ChildAt(i) != n {
			t.Errorf("child %d = %q, want %q", i, p.ChildAt(i).Name, n.Name)
		}
	}
}

func TestRemoveChildren(t *testing.T) {
	p := NewNode("p", Rect{})
	a := NewNode("a", Rect{})
	b := NewNode("b", Rect{})
	p.AddChild(a)
	p.AddChild(b)

	a.RemoveFromParent()
	if p.NumChildren() != 1 || a.Parent != nil {
		t.Error("RemoveFromParent failed")
	}
	a.RemoveFromParent() // no parent: no-op

	p.RemoveChildren()
	if p.NumChildren() != 0 || b.Parent != nil {
		t.Error("RemoveChildren failed")
	}
	if b.IsDisposed() {
		t.Error("RemoveChildren should not dispose")
	}
}

func TestAbsolutePosition(t *testing.T) {
	root := NewNode("root", Rect{X: 10, Y: 20})
	mid := NewNode("mid", Rect{X: 5, Y: 5})
	leaf := NewNode("leaf", Rect{X: 1, Y: 2})
	root.AddChild(mid)
	mid.AddChild(leaf)

	if got := leaf.AbsolutePosition(); got != (Vec2{16, 27}) {
		t.Errorf("AbsolutePosition = %v, want {16 27}", got)
	}
	leaf.SetTransform(Transform{TranslateX: 100, Scale: 2}, Transition{})
	if got := leaf.AbsolutePosition(); got != (Vec2{16, 27}) {
		t.Errorf("style transform should not affect AbsolutePosition, got %v", got)
	}
}

func TestContains(t *testing.T) {
	board, a, b := testBoard()
	header := a.ChildAt(0)
	outsider := NewNode("outsider", Rect{})

	tests := []struct {
		name  string
		outer *Node
		inner *Node
		want  bool
	}{
		{"self", board, board, true},
		{"child", board, a, true},
		{"grandchild", board, header, true},
		{"sibling", a, b, false},
		{"parent", a, board, false},
		{"outsider", board, outsider, false},
		{"nil", board, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	root := NewNode("root", Rect{})
	board, a, _ := testBoard()
	root.AddChild(board)

	tests := []struct {
		selector string
		want     *Node
	}{
		{"#board", board},
		{"board", board},
		{"#a-header", a.ChildAt(0)},
		{"root", root},
		{"#nope", nil},
		{"#", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			if got := root.FindByName(tt.selector); got != tt.want {
				t.Errorf("FindByName(%q) = %v, want %v", tt.selector, got, tt.want)
			}
		})
	}
}

func TestDispose(t *testing.T) {
	parent := NewNode("parent", Rect{})
	n := NewNode("n", Rect{})
	child := NewNode("child", Rect{})
	parent.AddChild(n)
	n.AddChild(child)

	n.Dispose()

	if !n.IsDisposed() || !child.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if n.ID != 0 || n.Parent != nil || n.NumChildren() != 0 {
		t.Error("disposed node should be cleared")
	}
	n.Dispose() // idempotent
}

func TestDebugDisposedPanics(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	n := NewNode("n", Rect{})
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on disposed node in debug mode")
		}
	}()
	n.SetTransform(Transform{Scale: 1}, Transition{})
}
