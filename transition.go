package panzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition describes how the draw pass moves a node from its displayed
// transform to a newly written one. The zero value applies changes instantly.
type Transition struct {
	// Duration in seconds.
	Duration float32
	// Ease is the easing curve. Nil means ease.Linear.
	Ease ease.TweenFunc
}

// IsZero reports whether t applies changes instantly.
func (t Transition) IsZero() bool {
	return t.Duration <= 0
}

// transformAnim holds active tweens toward a node's target transform.
type transformAnim struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween
	doneX      bool
	doneY      bool
	doneScale  bool
}

// startTransition begins animating the displayed transform toward to.
// A transition already in flight is retargeted from wherever it currently is.
func (n *Node) startTransition(to Transform, tr Transition) {
	if tr.IsZero() {
		n.anim = nil
		n.displayed = to
		return
	}
	fn := tr.Ease
	if fn == nil {
		fn = ease.Linear
	}
	from := n.DisplayedTransform()
	n.anim = &transformAnim{
		tweenX:     gween.New(float32(from.TranslateX), float32(to.TranslateX), tr.Duration, fn),
		tweenY:     gween.New(float32(from.TranslateY), float32(to.TranslateY), tr.Duration, fn),
		tweenScale: gween.New(float32(from.Scale), float32(to.Scale), tr.Duration, fn),
	}
	n.displayed = from
}

// advance steps the node's transition by dt seconds. When every tween has
// finished the displayed transform snaps to the exact style value so float32
// rounding in the tweens never leaks into the resting state.
func (n *Node) advance(dt float32) {
	a := n.anim
	if a == nil {
		return
	}
	if !a.doneX {
		v, done := a.tweenX.Update(dt)
		n.displayed.TranslateX = float64(v)
		a.doneX = done
	}
	if !a.doneY {
		v, done := a.tweenY.Update(dt)
		n.displayed.TranslateY = float64(v)
		a.doneY = done
	}
	if !a.doneScale {
		v, done := a.tweenScale.Update(dt)
		n.displayed.Scale = float64(v)
		a.doneScale = done
	}
	if a.doneX && a.doneY && a.doneScale {
		n.anim = nil
		n.displayed = n.Style.Transform
	}
}

// Transitioning reports whether the node's displayed transform is still
// catching up with its style.
func (n *Node) Transitioning() bool {
	return n.anim != nil
}

// advanceTree steps transitions for n and its descendants.
func advanceTree(n *Node, dt float32) {
	n.advance(dt)
	for _, child := range n.children {
		advanceTree(child, dt)
	}
}
