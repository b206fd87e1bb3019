package gio

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/tdewolff/shapes2d"
)

// Gio is a Gio renderer. Consecutive triangles or lines of the same color are filled as a single shape.
type Gio struct {
	ops            *op.Ops
	width, height  float64
	xScale, yScale float64
	dimensions     layout.Dimensions

	// LineWidth is the stroke width of lines in pixels.
	LineWidth float32

	color color.RGBA
	path  clip.Path
	open  bool
}

// New returns a Gio renderer of fixed size.
func New(gtx layout.Context, width, height float64) *Gio {
	dimensions := layout.Dimensions{Size: image.Point{int(width + 0.5), int(height + 0.5)}}
	return &Gio{
		ops:        gtx.Ops,
		width:      width,
		height:     height,
		xScale:     1.0,
		yScale:     1.0,
		dimensions: dimensions,
		LineWidth:  1.0,
	}
}

// NewExpand returns a Gio renderer that fills the constraints either horizontally or vertically, whichever is met first.
func NewExpand(gtx layout.Context, width, height float64) *Gio {
	xScale := float64(gtx.Constraints.Max.X-gtx.Constraints.Min.X) / width
	yScale := float64(gtx.Constraints.Max.Y-gtx.Constraints.Min.Y) / height
	if yScale < xScale {
		xScale = yScale
	} else {
		yScale = xScale
	}

	dimensions := layout.Dimensions{Size: image.Point{int(width*xScale + 0.5), int(height*yScale + 0.5)}}
	return &Gio{
		ops:        gtx.Ops,
		width:      width,
		height:     height,
		xScale:     xScale,
		yScale:     yScale,
		dimensions: dimensions,
		LineWidth:  1.0,
	}
}

// Dimensions returns the dimensions for Gio.
func (r *Gio) Dimensions() layout.Dimensions {
	return r.dimensions
}

// Size returns the size of the view in pixels.
func (r *Gio) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Gio) point(v shapes2d.Vertex) f32.Point {
	return f32.Point{X: float32(r.xScale) * v.X, Y: float32(r.yScale) * v.Y}
}

func (r *Gio) begin(c color.RGBA) {
	if r.open {
		return
	}
	r.color = c
	r.path = clip.Path{}
	r.path.Begin(r.ops)
	r.open = true
}

// end paints the open path, either as an outline or as a stroke.
func (r *Gio) end(stroke bool) {
	if !r.open {
		return
	}
	r.open = false
	spec := r.path.End()
	if shapes2d.IsTransparent(r.color) {
		return
	}

	col := color.NRGBAModel.Convert(r.color).(color.NRGBA)
	if stroke {
		width := r.LineWidth * float32(r.xScale)
		paint.FillShape(r.ops, col, clip.Stroke{Path: spec, Width: width}.Op())
	} else {
		paint.FillShape(r.ops, col, clip.Outline{Path: spec}.Op())
	}
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *Gio) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		if (v1.X-v0.X)*(v2.Y-v0.Y)-(v1.Y-v0.Y)*(v2.X-v0.X) < 0.0 {
			v1, v2 = v2, v1 // same winding for the nonzero rule
		}
		if r.open && v0.Color != r.color {
			r.end(false)
		}
		r.begin(v0.Color)
		r.path.MoveTo(r.point(v0))
		r.path.LineTo(r.point(v1))
		r.path.LineTo(r.point(v2))
		r.path.Close()
	}
	r.end(false)
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *Gio) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0, v1 := vertices[indices[i]], vertices[indices[i+1]]
		if r.open && v0.Color != r.color {
			r.end(true)
		}
		r.begin(v0.Color)
		r.path.MoveTo(r.point(v0))
		r.path.LineTo(r.point(v1))
	}
	r.end(true)
}
