// Package panzoom adds pan, zoom and per-element drag to a container of boxes
// drawn with [Ebitengine].
//
// A [Canvas] manages one container [Node]. Each direct child of the
// container becomes an [Element] with a logical position (scale-independent,
// accumulated from drags and pans) and a translate (the scale-adjusted
// offset written into the node's [Style]). The canvas owns the shared zoom
// scale and classifies raw pointer and wheel input into three mutually
// exclusive gestures:
//
//   - drag: Ctrl + primary button on an element moves that element
//   - pan: Ctrl + secondary button on the container moves every element
//   - zoom: Ctrl + wheel scales every element about the container center
//
// The predicates are configurable through [Options].
//
// # Quick start
//
//	board := panzoom.NewNode("board", panzoom.Rect{Width: 800, Height: 600})
//	board.AddChild(panzoom.NewNode("card", panzoom.Rect{X: 40, Y: 40, Width: 120, Height: 80}))
//
//	canvas, err := panzoom.New(board, panzoom.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	canvas.On(panzoom.EventDragEnd, func(e panzoom.Event) {
//		log.Printf("%s moved to %v", e.Element.Target().Name, e.Element.Position())
//	})
//	log.Fatal(panzoom.Run(canvas, panzoom.RunConfig{Title: "Board", Width: 800, Height: 600}))
//
// For full control, implement [ebiten.Game] yourself and call
// [Canvas.Update] and [Canvas.Draw] directly, or feed events from another
// host through [Canvas.HandlePointerDown] and friends.
//
// # Events
//
// [Canvas.On] registers any number of handlers per [EventType]; they run in
// registration order. An [EntityStore] (see the panzoom/ecs module for a
// [Donburi] adapter) receives every gesture as a flat [GestureEvent].
//
// # Transitions
//
// [Options.MoveTransition] and [Options.ScaleTransition] are written into
// element styles during pans and zooms. The draw pass tweens the displayed
// transform toward the style with [gween]; the interaction state never
// waits for a transition.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
