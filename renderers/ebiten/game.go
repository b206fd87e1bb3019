package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tdewolff/shapes2d"
)

// Game runs a batch in an Ebitengine window. It draws the batch every frame and calls OnUpdate with the pointer state and the elapsed time in seconds on every tick.
type Game struct {
	Batch         *shapes2d.Batch
	Width, Height int
	Background    color.RGBA
	ShowStats     bool
	OnUpdate      func(in shapes2d.Input, t float64) error

	renderer *Ebiten
	input    InputReader
	ticks    int
	stats    shapes2d.Stats
}

// NewGame returns a game of width by height pixels drawing b.
func NewGame(b *shapes2d.Batch, width, height int) *Game {
	return &Game{
		Batch:    b,
		Width:    width,
		Height:   height,
		renderer: New(nil),
	}
}

// Run opens the window and blocks until it is closed or OnUpdate returns an error.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetWindowTitle(title)
	shapes2d.Logger().Info("window opened", "title", title, "width", g.Width, "height", g.Height)
	return ebiten.RunGame(g)
}

// Stats returns the statistics of the last drawn frame.
func (g *Game) Stats() shapes2d.Stats {
	return g.stats
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := g.input.Read()
	t := float64(g.ticks) / float64(ebiten.TPS())
	g.ticks++
	if g.OnUpdate != nil {
		return g.OnUpdate(in, t)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	g.renderer.SetTarget(screen)
	g.stats = g.Batch.Draw(g.renderer)
	if g.ShowStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f\nTriangles: %d\nLines: %d\nDraw calls: %d", ebiten.ActualFPS(), g.stats.Triangles, g.stats.Lines, g.stats.DrawCalls))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
