package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the screen before the canvas is drawn.
	ClearColor Color
	// ShowStatus overlays FPS, scale, cursor position and gesture state.
	ShowStatus bool
}

// game adapts a Canvas to ebiten.Game.
type game struct {
	canvas *Canvas
	cfg    RunConfig
	status *statusOverlay
}

// Run opens a window and drives the canvas until the window is closed.
// For full control, implement ebiten.Game yourself and call Canvas.Update
// and Canvas.Draw directly.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g := &game{canvas: c, cfg: cfg}
	if cfg.ShowStatus {
		g.status = newStatusOverlay()
	}
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	g.canvas.Update()
	if g.status != nil {
		g.status.update(g.canvas, 1.0/float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.canvas.Draw(screen)
	if g.status != nil {
		g.status.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
