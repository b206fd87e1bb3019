package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tdewolff/shapes2d"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// maxVertices is the number of vertices addressable by 16-bit indices.
const maxVertices = 1 << 16

// Ebiten is an Ebitengine renderer that draws the buffers of a batch on an image. Lines are drawn as quads of the line width.
type Ebiten struct {
	dst       *ebiten.Image
	LineWidth float32
	AntiAlias bool

	vertices []ebiten.Vertex
	indices  []uint16
	remap    map[uint32]uint16
}

// New returns a renderer that draws on dst.
func New(dst *ebiten.Image) *Ebiten {
	return &Ebiten{
		dst:       dst,
		LineWidth: 1.0,
		remap:     map[uint32]uint16{},
	}
}

// SetTarget sets the image to draw on, usually the screen of the current frame.
func (r *Ebiten) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

// Size returns the size of the target image in pixels.
func (r *Ebiten) Size() (float64, float64) {
	size := r.dst.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func vertex(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255.0,
		ColorG: float32(c.G) / 255.0,
		ColorB: float32(c.B) / 255.0,
		ColorA: float32(c.A) / 255.0,
	}
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *Ebiten) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	r.reset()
	for i := 0; i+2 < len(indices); i += 3 {
		if maxVertices < len(r.vertices)+3 {
			r.flush()
		}
		for _, index := range indices[i : i+3] {
			j, ok := r.remap[index]
			if !ok {
				v := vertices[index]
				j = uint16(len(r.vertices))
				r.vertices = append(r.vertices, vertex(v.X, v.Y, v.Color))
				r.remap[index] = j
			}
			r.indices = append(r.indices, j)
		}
	}
	r.flush()
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *Ebiten) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	r.reset()
	for i := 0; i+1 < len(indices); i += 2 {
		v0, v1 := vertices[indices[i]], vertices[indices[i+1]]
		dx, dy := v1.X-v0.X, v1.Y-v0.Y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0.0 {
			continue
		}
		if maxVertices < len(r.vertices)+4 {
			r.flush()
		}

		nx, ny := -dy/length*r.LineWidth/2.0, dx/length*r.LineWidth/2.0
		j := uint16(len(r.vertices))
		r.vertices = append(r.vertices,
			vertex(v0.X+nx, v0.Y+ny, v0.Color),
			vertex(v1.X+nx, v1.Y+ny, v0.Color),
			vertex(v1.X-nx, v1.Y-ny, v0.Color),
			vertex(v0.X-nx, v0.Y-ny, v0.Color),
		)
		r.indices = append(r.indices, j, j+1, j+2, j+2, j+3, j)
	}
	r.flush()
}

func (r *Ebiten) reset() {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	clear(r.remap)
}

// flush draws the collected triangles, colors are alpha premultiplied.
func (r *Ebiten) flush() {
	if len(r.indices) != 0 {
		r.dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
			AntiAlias:      r.AntiAlias,
		})
	}
	r.reset()
}
