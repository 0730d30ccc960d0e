package panzoom

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw paints the container and its managed elements onto screen. Each
// element is drawn with its displayed transform; descendants follow their
// element at their layout offsets. With OverflowHidden the output is
// clipped to the container box.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if c.disposed || !c.target.Visible {
		return
	}
	abs := c.target.AbsolutePosition()
	dst := screen
	if c.target.Style.Overflow == OverflowHidden {
		clip := image.Rect(
			int(abs.X), int(abs.Y),
			int(abs.X+c.target.Width), int(abs.Y+c.target.Height),
		)
		dst = screen.SubImage(clip.Intersect(screen.Bounds())).(*ebiten.Image)
	}

	if c.target.Color.A > 0 || c.target.Image != nil {
		drawBox(dst, c.target, boxMatrix(abs.X, abs.Y, c.target.Width, c.target.Height, identityStyleTransform))
	}
	for _, e := range c.elements {
		drawNode(dst, e.target, nodeMatrix(e.target))
	}
}

// drawNode draws n with matrix m, then its visible children.
func drawNode(dst *ebiten.Image, n *Node, m [6]float64) {
	if !n.Visible {
		return
	}
	drawBox(dst, n, m)
	for _, child := range n.children {
		drawNode(dst, child, multiplyAffine(m, translateAffine(child.X, child.Y)))
	}
}

// drawBox draws a single node's box: its Image stretched to the layout size,
// or a solid rectangle of its Color.
func drawBox(dst *ebiten.Image, n *Node, m [6]float64) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	src := WhitePixel
	sw, sh := 1.0, 1.0
	if n.Image != nil {
		src = n.Image
		b := n.Image.Bounds()
		sw, sh = float64(b.Dx()), float64(b.Dy())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width/sw, n.Height/sh)
	op.GeoM.Concat(toGeoM(m))
	a := float32(n.Color.A)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// toGeoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func toGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
