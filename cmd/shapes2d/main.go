package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/shapes2d/renderers"
	"github.com/tdewolff/shapes2d/renderers/ebiten"
	"github.com/tdewolff/shapes2d/renderers/rasterizer"
	"golang.org/x/image/colornames"
)

type Main struct{}

type Grid struct {
	Kind    string  `short:"k" default:"hexagon" desc:"Grid kind: triangle, square, or hexagon"`
	Scale   float64 `short:"s" default:"50" desc:"Cell size in pixels"`
	Width   int     `short:"W" default:"800" desc:"Window width in pixels"`
	Height  int     `short:"H" default:"480" desc:"Window height in pixels"`
	Radius  float64 `short:"r" default:"0" desc:"Paint radius in pixels, defaults to the cell diagonal"`
	Seed    int64   `default:"0" desc:"Random seed, zero uses the current time"`
	Stats   bool    `desc:"Show frame statistics"`
	Verbose bool    `short:"v" desc:"Log debug messages"`
}

type Render struct {
	Kind    string  `short:"k" default:"hexagon" desc:"Grid kind: triangle, square, or hexagon"`
	Scale   float64 `short:"s" default:"50" desc:"Cell size in pixels"`
	Width   int     `short:"W" default:"800" desc:"Image width in pixels"`
	Height  int     `short:"H" default:"480" desc:"Image height in pixels"`
	Outline bool    `desc:"Draw cell outlines"`
	Seed    int64   `default:"0" desc:"Random seed, zero uses the current time"`
	Verbose bool    `short:"v" desc:"Log debug messages"`
	Output  string  `index:"0" desc:"Output file, its extension sets the format"`
}

type Wave struct {
	Width    int     `short:"W" default:"800" desc:"Window width in pixels"`
	Height   int     `short:"H" default:"480" desc:"Window height in pixels"`
	Segments int     `default:"10" desc:"Number of surface segments"`
	Length   float64 `default:"100" desc:"Horizontal distance per radian"`
	Amp      float64 `default:"10" desc:"Wave height in pixels"`
	Speed    float64 `default:"10" desc:"Radians per second"`
	Stats    bool    `desc:"Show frame statistics"`
	Verbose  bool    `short:"v" desc:"Log debug messages"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Tessellation and batch rendering of 2D shapes")
	root.AddCmd(&Grid{}, "grid", "Paint a grid interactively")
	root.AddCmd(&Render{}, "render", "Render a grid to an image file")
	root.AddCmd(&Wave{}, "wave", "Show an animated wave")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func setLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	shapes2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func newGrid(kind string, scale float64, width, height int, rng *rand.Rand) ([]*shapes2d.Primitive, error) {
	gridKind, err := shapes2d.ParseGridKind(kind)
	if err != nil {
		return nil, err
	} else if scale <= 0.0 {
		return nil, fmt.Errorf("scale must be positive")
	}
	return shapes2d.NewGrid(gridKind, shapes2d.Point{scale, scale}, shapes2d.Point{float64(width), float64(height)}, shapes2d.GroundShades(rng))
}

func (cmd *Grid) Run() error {
	setLogger(cmd.Verbose)
	rng := newRand(cmd.Seed)
	prims, err := newGrid(cmd.Kind, cmd.Scale, cmd.Width, cmd.Height, rng)
	if err != nil {
		return err
	}

	radiusSquared := 2.0 * cmd.Scale * cmd.Scale
	if cmd.Radius != 0.0 {
		radiusSquared = cmd.Radius * cmd.Radius
	}
	painter := shapes2d.NewPainter(shapes2d.NewBatch(prims...), radiusSquared, shapes2d.GroundShades(rng))

	game := ebiten.NewGame(painter.Batch, cmd.Width, cmd.Height)
	game.Background = colornames.Black
	game.ShowStats = cmd.Stats
	game.OnUpdate = func(in shapes2d.Input, _ float64) error {
		painter.Update(in)
		return nil
	}
	return game.Run("Grid")
}

func (cmd *Render) Run() error {
	if cmd.Output == "" {
		return argp.ShowUsage
	}
	setLogger(cmd.Verbose)

	prims, err := newGrid(cmd.Kind, cmd.Scale, cmd.Width, cmd.Height, newRand(cmd.Seed))
	if err != nil {
		return err
	}
	if cmd.Outline {
		for _, p := range prims {
			p.Stroke = colornames.Black
		}
	}

	b := shapes2d.NewBatch(prims...)
	opts := rasterizer.DefaultOptions
	opts.Background = colornames.Black
	return renderers.Write(cmd.Output, b, float64(cmd.Width), float64(cmd.Height), &opts)
}

func (cmd *Wave) Run() error {
	setLogger(cmd.Verbose)

	const margin = 10.0
	width := float64(cmd.Width) - 2.0*margin
	height := float64(cmd.Height)/2.0 - margin
	wave, err := shapes2d.NewWave(width, height, shapes2d.WaveOptions{
		Segments: cmd.Segments,
		Length:   cmd.Length,
		Height:   cmd.Amp,
		Speed:    cmd.Speed,
	}, shapes2d.NewSweep())
	if err != nil {
		return err
	}
	wave.Position = shapes2d.Point{margin, float64(cmd.Height) - height - margin}
	wave.Fill = colornames.Blue
	wave.Animate(0.0)

	game := ebiten.NewGame(shapes2d.NewBatch(wave.Primitive), cmd.Width, cmd.Height)
	game.Background = colornames.Cornflowerblue
	game.ShowStats = cmd.Stats
	game.OnUpdate = func(_ shapes2d.Input, t float64) error {
		wave.Animate(t)
		return nil
	}
	return game.Run("Wave")
}
