//go:build js

package htmlcanvas

import (
	"image/color"
	"syscall/js"

	"github.com/tdewolff/shapes2d"
)

// HTMLCanvas is an HTMLCanvas renderer. Consecutive triangles or lines of the same color are drawn as a single path.
type HTMLCanvas struct {
	ctx           js.Value
	width, height float64
	dpr           float64

	color color.RGBA
	open  bool
}

// New returns an HTMLCanvas renderer of width by height CSS pixels, using dpr device pixels per CSS pixel.
func New(c js.Value, width, height, dpr float64) *HTMLCanvas {
	c.Set("width", width*dpr)
	c.Set("height", height*dpr)

	ctx := c.Call("getContext", "2d")
	ctx.Call("setTransform", dpr, 0, 0, dpr, 0, 0)
	ctx.Set("lineWidth", 1.0)
	return &HTMLCanvas{
		ctx:    ctx,
		width:  width,
		height: height,
		dpr:    dpr,
	}
}

// Clear clears the whole canvas.
func (r *HTMLCanvas) Clear() {
	r.ctx.Call("clearRect", 0, 0, r.width, r.height)
}

// Size returns the size of the canvas in CSS pixels.
func (r *HTMLCanvas) Size() (float64, float64) {
	return r.width, r.height
}

func (r *HTMLCanvas) begin(c color.RGBA) {
	if r.open {
		return
	}
	r.ctx.Call("beginPath")
	r.color = c
	r.open = true
}

func (r *HTMLCanvas) end(stroke bool) {
	if !r.open {
		return
	}
	r.open = false
	if shapes2d.IsTransparent(r.color) {
		return
	}
	if stroke {
		r.ctx.Set("strokeStyle", shapes2d.CSSColor(r.color))
		r.ctx.Call("stroke")
	} else {
		r.ctx.Set("fillStyle", shapes2d.CSSColor(r.color))
		r.ctx.Call("fill")
	}
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *HTMLCanvas) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		if (v1.X-v0.X)*(v2.Y-v0.Y)-(v1.Y-v0.Y)*(v2.X-v0.X) < 0.0 {
			v1, v2 = v2, v1 // same winding for the nonzero rule
		}
		if r.open && v0.Color != r.color {
			r.end(false)
		}
		r.begin(v0.Color)
		r.ctx.Call("moveTo", v0.X, v0.Y)
		r.ctx.Call("lineTo", v1.X, v1.Y)
		r.ctx.Call("lineTo", v2.X, v2.Y)
		r.ctx.Call("closePath")
	}
	r.end(false)
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *HTMLCanvas) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0, v1 := vertices[indices[i]], vertices[indices[i+1]]
		if r.open && v0.Color != r.color {
			r.end(true)
		}
		r.begin(v0.Color)
		r.ctx.Call("moveTo", v0.X, v0.Y)
		r.ctx.Call("lineTo", v1.X, v1.Y)
	}
	r.end(true)
}
