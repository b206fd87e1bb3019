package gio

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
)

func TestGioExpand(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Point{200, 100}},
	}
	r := NewExpand(gtx, 20.0, 20.0)
	test.T(t, r.Dimensions().Size, image.Point{100, 100})

	w, h := r.Size()
	test.Float(t, w, 20.0)
	test.Float(t, h, 20.0)
}

func TestGioDraw(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	r := New(gtx, 20.0, 20.0)

	square, err := shapes2d.Rectangle(10.0, 10.0)
	test.Error(t, err)
	square.Fill = colornames.Blue
	square.Stroke = colornames.Red
	other, err := shapes2d.Rectangle(5.0, 5.0)
	test.Error(t, err)
	other.Fill = colornames.Green

	stats := shapes2d.NewBatch(square, other).Draw(r)
	test.T(t, stats.DrawCalls, 2)
	test.That(t, !r.open)
	test.T(t, r.color, colornames.Red)
}
