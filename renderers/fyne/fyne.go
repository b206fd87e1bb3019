package fyne

import (
	"fyne.io/fyne/v2"
	fyneCanvas "fyne.io/fyne/v2/canvas"
	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/shapes2d/renderers/rasterizer"
)

// Fyne shows a batch in a Fyne window by rasterizing it.
type Fyne struct {
	*shapes2d.Batch
	width, height float64
	opts          *rasterizer.Options
}

// New returns a Fyne renderer of the batch with a view of width by height units.
func New(b *shapes2d.Batch, width, height float64, opts *rasterizer.Options) *Fyne {
	return &Fyne{
		Batch:  b,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Content rasterizes the batch and returns it as a canvas object.
func (r *Fyne) Content() fyne.CanvasObject {
	img := rasterizer.Draw(r.Batch, r.width, r.height, r.opts)
	obj := fyneCanvas.NewImageFromImage(img)
	obj.FillMode = fyneCanvas.ImageFillContain
	obj.SetMinSize(fyne.NewSize(float32(r.width), float32(r.height)))
	return obj
}
