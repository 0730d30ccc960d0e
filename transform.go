package panzoom

import (
	"strconv"
	"strings"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the 2D transform written to a managed element's style:
// a translation followed by a uniform scale about the element's center.
type Transform struct {
	TranslateX, TranslateY float64
	Scale                  float64
}

// identityStyleTransform is the transform of a node that was never rendered.
var identityStyleTransform = Transform{Scale: 1}

// String formats the transform as a CSS transform value, e.g.
// "translate(10px, -4px) scale(1.2)".
func (t Transform) String() string {
	var b strings.Builder
	b.WriteString("translate(")
	b.WriteString(formatFloat(t.TranslateX))
	b.WriteString("px, ")
	b.WriteString(formatFloat(t.TranslateY))
	b.WriteString("px) scale(")
	b.WriteString(formatFloat(t.Scale))
	b.WriteString(")")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Overflow controls whether a container clips its children when drawn.
type Overflow uint8

const (
	OverflowVisible Overflow = iota // children may draw outside the container
	OverflowHidden                  // children are clipped to the container box
)

// Style is the presentation state of a node. The interaction core writes it
// and never reads it back; the draw pass is its only consumer.
type Style struct {
	Transform  Transform
	Transition Transition
	Overflow   Overflow
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func scaleAffine(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}

// boxMatrix maps a box's local space into screen space.
//
// The box's layout origin is (originX, originY) and its size w x h. The style
// transform is applied about the box center:
//
//	Translate(origin + center) -> Translate(t) -> Scale(s) -> Translate(-center)
func boxMatrix(originX, originY, w, h float64, t Transform) [6]float64 {
	cx, cy := w/2, h/2
	m := translateAffine(originX+cx+t.TranslateX, originY+cy+t.TranslateY)
	m = multiplyAffine(m, scaleAffine(t.Scale))
	return multiplyAffine(m, translateAffine(-cx, -cy))
}

// nodeMatrix returns the screen-space matrix of n using its displayed
// transform, which may lag Style.Transform while a transition runs.
func nodeMatrix(n *Node) [6]float64 {
	abs := n.AbsolutePosition()
	return boxMatrix(abs.X, abs.Y, n.Width, n.Height, n.DisplayedTransform())
}

// ScreenToLocal converts a screen-space point into n's local box space,
// accounting for the node's displayed transform.
func (n *Node) ScreenToLocal(sx, sy float64) (lx, ly float64) {
	return transformPoint(invertAffine(nodeMatrix(n)), sx, sy)
}

// LocalToScreen converts a point in n's local box space to screen space.
func (n *Node) LocalToScreen(lx, ly float64) (sx, sy float64) {
	return transformPoint(nodeMatrix(n), lx, ly)
}
