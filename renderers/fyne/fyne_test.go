package fyne

import (
	"image"
	"testing"

	fyneCanvas "fyne.io/fyne/v2/canvas"
	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
)

func TestFyneContent(t *testing.T) {
	square, err := shapes2d.Rectangle(10.0, 10.0)
	test.Error(t, err)
	square.Fill = colornames.Blue

	r := New(shapes2d.NewBatch(square), 20.0, 20.0, nil)
	obj, ok := r.Content().(*fyneCanvas.Image)
	test.That(t, ok)
	test.T(t, obj.Image.Bounds(), image.Rect(0, 0, 20, 20))
	test.T(t, obj.Image.At(5, 5), colornames.Blue)
}
