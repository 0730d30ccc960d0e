package panzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusOverlay renders canvas state in the top-left corner of the screen.
// The text is refreshed every ~0.5 seconds.
type statusOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newStatusOverlay() *statusOverlay {
	// 180x64 fits four lines of DebugPrint text.
	return &statusOverlay{img: ebiten.NewImage(180, 64), lastUpdate: 1}
}

// statusText formats the canvas state shown by the overlay.
func statusText(c *Canvas) string {
	cursor := "-"
	if p, ok := c.CursorPosition(); ok {
		cursor = fmt.Sprintf("%.0f,%.0f", p.X, p.Y)
	}
	return fmt.Sprintf("FPS: %.1f\nscale: %.2f\ncursor: %s\ngesture: %s",
		ebiten.ActualFPS(), c.Scale(), cursor, c.Gesture())
}

func (s *statusOverlay) update(c *Canvas, dt float64) {
	s.lastUpdate += dt
	if s.lastUpdate < 0.5 {
		return
	}
	s.lastUpdate = 0

	s.img.Clear()
	// Semi-transparent background for readability
	s.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(s.img, statusText(c))
}

func (s *statusOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(s.img, nil)
}
