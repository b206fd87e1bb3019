package rasterizer

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/tdewolff/shapes2d"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// Options are the rasterization options.
type Options struct {
	Scale      float64    // pixels per unit, defaults to 1
	LineWidth  float64    // in pixels, defaults to 1
	Background color.RGBA // cleared before drawing, transparent by default
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Scale:     1.0,
	LineWidth: 1.0,
}

// PNGWriter writes the batch as a PNG file.
func PNGWriter(opts *Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := Draw(b, width, height, opts)
		return png.Encode(w, img)
	}
}

// JPGWriter writes the batch as a JPG file.
func JPGWriter(opts *Options, jpegOpts *jpeg.Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := Draw(b, width, height, opts)
		return jpeg.Encode(w, img, jpegOpts)
	}
}

// GIFWriter writes the batch as a GIF file.
func GIFWriter(opts *Options, gifOpts *gif.Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := Draw(b, width, height, opts)
		return gif.Encode(w, img, gifOpts)
	}
}

// TIFFWriter writes the batch as a TIFF file.
func TIFFWriter(opts *Options, tiffOpts *tiff.Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := Draw(b, width, height, opts)
		return tiff.Encode(w, img, tiffOpts)
	}
}

// Draw draws the batch on a new image of width by height units. A higher scale results in a larger image.
func Draw(b *shapes2d.Batch, width, height float64, opts *Options) *image.RGBA {
	if opts == nil {
		opts = &DefaultOptions
	}
	scale := opts.Scale
	if scale == 0.0 {
		scale = 1.0
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width*scale+0.5), int(height*scale+0.5)))
	ras := New(img, opts)
	ras.Clear(opts.Background)
	b.Draw(ras)
	return img
}

type point struct {
	x, y float32
}

// Rasterizer draws the triangles and lines of a batch into an image. Consecutive triangles or lines of the same color are rasterized together, so that shared edges show no seams.
type Rasterizer struct {
	img       draw.Image
	scale     float32
	lineWidth float32

	ras      *vector.Rasterizer
	color    color.RGBA
	polygons []point
	sizes    []int
}

// New returns a rasterizer that draws to img.
func New(img draw.Image, opts *Options) *Rasterizer {
	if opts == nil {
		opts = &DefaultOptions
	}
	r := &Rasterizer{
		img:       img,
		scale:     float32(opts.Scale),
		lineWidth: float32(opts.LineWidth),
		ras:       &vector.Rasterizer{},
	}
	if r.scale == 0.0 {
		r.scale = 1.0
	}
	if r.lineWidth == 0.0 {
		r.lineWidth = 1.0
	}
	return r
}

// Clear fills the whole image with c.
func (r *Rasterizer) Clear(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Rasterizer) point(v shapes2d.Vertex) point {
	return point{v.X * r.scale, v.Y * r.scale}
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *Rasterizer) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertices[indices[i]]
		p0, p1, p2 := r.point(v0), r.point(vertices[indices[i+1]]), r.point(vertices[indices[i+2]])

		// coverage of overlapping polygons only adds up if they share orientation
		if (p1.x-p0.x)*(p2.y-p0.y)-(p1.y-p0.y)*(p2.x-p0.x) < 0.0 {
			p1, p2 = p2, p1
		}
		r.add(v0.Color, p0, p1, p2)
	}
	r.flush()
}

// DrawIndexedLines implements shapes2d.Rasterizer. Lines are drawn as rectangles of the line width without caps.
func (r *Rasterizer) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0 := vertices[indices[i]]
		p0, p1 := r.point(v0), r.point(vertices[indices[i+1]])

		dx, dy := p1.x-p0.x, p1.y-p0.y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0.0 {
			continue
		}
		nx, ny := -dy/length*r.lineWidth/2.0, dx/length*r.lineWidth/2.0
		r.add(v0.Color,
			point{p0.x + nx, p0.y + ny},
			point{p1.x + nx, p1.y + ny},
			point{p1.x - nx, p1.y - ny},
			point{p0.x - nx, p0.y - ny},
		)
	}
	r.flush()
}

func (r *Rasterizer) add(c color.RGBA, ps ...point) {
	if c != r.color {
		r.flush()
		r.color = c
	}
	r.polygons = append(r.polygons, ps...)
	r.sizes = append(r.sizes, len(ps))
}

// flush rasterizes the collected polygons of a single color.
func (r *Rasterizer) flush() {
	defer func() {
		r.polygons = r.polygons[:0]
		r.sizes = r.sizes[:0]
	}()
	if len(r.polygons) == 0 || shapes2d.IsTransparent(r.color) {
		return
	}

	x0, y0 := r.polygons[0].x, r.polygons[0].y
	x1, y1 := x0, y0
	for _, p := range r.polygons[1:] {
		x0, y0 = min(x0, p.x), min(y0, p.y)
		x1, y1 = max(x1, p.x), max(y1, p.y)
	}

	bounds := r.img.Bounds()
	rect := image.Rect(int(math.Floor(float64(x0))), int(math.Floor(float64(y0))), int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1)))).Intersect(bounds)
	if rect.Empty() {
		return // outside image
	}

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	r.ras.Reset(rect.Dx(), rect.Dy())
	i := 0
	for _, n := range r.sizes {
		r.ras.MoveTo(r.polygons[i].x-ox, r.polygons[i].y-oy)
		for _, p := range r.polygons[i+1 : i+n] {
			r.ras.LineTo(p.x-ox, p.y-oy)
		}
		r.ras.ClosePath()
		i += n
	}
	r.ras.Draw(r.img, rect, image.NewUniform(r.color), image.Point{})
}
