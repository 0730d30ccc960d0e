package panzoom

import "math"

// scaleEpsilon absorbs float error when a step lands on a bound.
const scaleEpsilon = 1e-9

// scalePrecision is the number of representable scale steps per unit.
const scalePrecision = 1e9

// roundScale trims accumulated float error so repeated steps of 0.1 land on
// 1.2 rather than 1.2000000000000002.
func roundScale(s float64) float64 {
	return math.Round(s*scalePrecision) / scalePrecision
}

// HandleWheel zooms one ScaleStep per wheel event when ValidateZoom accepts
// it: scrolling up (negative DeltaY) zooms in, scrolling down zooms out.
// Wheel events outside the container are ignored.
func (c *Canvas) HandleWheel(ev *WheelEvent) {
	if c.disposed || !c.target.Contains(ev.Target) || !c.opts.ValidateZoom(ev) {
		return
	}
	ev.PreventDefault()
	c.dispatch(Event{Type: EventZoom, Wheel: ev})

	direction := sign(-ev.DeltaY)
	if direction == 0 {
		return
	}
	c.zoomBy(direction * c.opts.ScaleStep)
}

// ZoomIn raises the scale by step, or by ScaleStep when step <= 0. Reports
// whether the scale changed; a step that would pass ScaleMax is rejected.
func (c *Canvas) ZoomIn(step float64) bool {
	if step <= 0 {
		step = c.opts.ScaleStep
	}
	return c.zoomBy(step)
}

// ZoomOut lowers the scale by step, or by ScaleStep when step <= 0. Reports
// whether the scale changed; a step that would pass ScaleMin is rejected.
func (c *Canvas) ZoomOut(step float64) bool {
	if step <= 0 {
		step = c.opts.ScaleStep
	}
	return c.zoomBy(-step)
}

// SetScale sets the scale, clamped into [ScaleMin, ScaleMax], and re-anchors
// every element.
func (c *Canvas) SetScale(s float64) {
	if c.disposed {
		return
	}
	c.scale = roundScale(clamp(s, c.opts.ScaleMin, c.opts.ScaleMax))
	c.layout(c.opts.ScaleTransition)
	c.debugf("scale set to %v", c.scale)
}

// zoomBy applies a scale change. A change that would leave the bounds is a
// no-op, never a partial step.
func (c *Canvas) zoomBy(change float64) bool {
	if c.disposed {
		return false
	}
	next := c.scale + change
	if next < c.opts.ScaleMin-scaleEpsilon || next > c.opts.ScaleMax+scaleEpsilon {
		c.debugf("zoom %+v rejected at scale %v", change, c.scale)
		return false
	}
	c.scale = roundScale(clamp(next, c.opts.ScaleMin, c.opts.ScaleMax))
	c.layout(c.opts.ScaleTransition)
	c.debugf("zoom to %v", c.scale)
	return true
}

// layout re-anchors every element at the origo for the current scale.
// Each element's translate becomes position + (origo - center) * (1 - scale),
// so the scaled elements appear to grow or shrink around the container
// center while logical positions stay untouched.
func (c *Canvas) layout(tr Transition) {
	origo := c.Origo()
	k := 1 - c.scale
	for _, e := range c.elements {
		move := origo.Sub(e.Center()).Mul(k)
		e.SetTranslate(e.position.X+move.X, e.position.Y+move.Y)
		e.SetScale(c.scale)
		e.SetTransition(tr)
		e.Render()
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
