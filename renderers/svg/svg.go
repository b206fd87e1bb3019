package svg

import (
	"compress/gzip"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/tdewolff/shapes2d"
)

// Options are the SVG options.
type Options struct {
	Compression int     // gzip compression level, zero disables compression
	LineWidth   float64 // stroke width of lines
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	LineWidth: 1.0,
}

// Writer writes the batch as an SVG file.
func Writer(opts *Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		svg := New(w, width, height, opts)
		b.Draw(svg)
		return svg.Close()
	}
}

// SVG is a scalable vector graphics renderer. Consecutive triangles or lines of the same color are written as a single path.
type SVG struct {
	w             io.Writer
	width, height float64
	classes       []string
	opts          *Options

	color color.RGBA
	d     strings.Builder
	fill  bool
}

// New returns a scalable vector graphics (SVG) renderer of width by height pixels.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:      w,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Close finished and closes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.opts.Compression != 0 {
		r.w.(*gzip.Writer).Close() // does not close underlying writer
	}
	return err
}

func (r *SVG) writeClasses(w io.Writer) {
	if len(r.classes) != 0 {
		fmt.Fprintf(w, ` class="%s"`, strings.Join(r.classes, " "))
	}
}

// SetClass sets the classes to be assigned to drawn paths.
func (r *SVG) SetClass(classes ...string) {
	r.classes = classes
}

// AddClass adds a class to the class list.
func (r *SVG) AddClass(class string) {
	if class == "" {
		return
	}
	for _, c := range r.classes {
		if c == class {
			return
		}
	}
	r.classes = append(r.classes, class)
}

// RemoveClass removes a class from the class list.
func (r *SVG) RemoveClass(class string) {
	for i, c := range r.classes {
		if c == class {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return
		}
	}
}

// Size returns the size of the image in pixels.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *SVG) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	r.fill = true
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		if (v1.X-v0.X)*(v2.Y-v0.Y)-(v1.Y-v0.Y)*(v2.X-v0.X) < 0.0 {
			v1, v2 = v2, v1 // same winding for the nonzero rule
		}
		r.setColor(v0.Color)
		fmt.Fprintf(&r.d, "M%v %vL%v %vL%v %vz", num(v0.X), num(v0.Y), num(v1.X), num(v1.Y), num(v2.X), num(v2.Y))
	}
	r.flush()
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *SVG) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	r.fill = false
	for i := 0; i+1 < len(indices); i += 2 {
		v0, v1 := vertices[indices[i]], vertices[indices[i+1]]
		r.setColor(v0.Color)
		fmt.Fprintf(&r.d, "M%v %vL%v %v", num(v0.X), num(v0.Y), num(v1.X), num(v1.Y))
	}
	r.flush()
}

func (r *SVG) setColor(c color.RGBA) {
	if c != r.color {
		r.flush()
		r.color = c
	}
}

func (r *SVG) flush() {
	if r.d.Len() == 0 {
		return
	}
	defer r.d.Reset()
	if shapes2d.IsTransparent(r.color) {
		return
	}

	fmt.Fprintf(r.w, `<path d="%s"`, r.d.String())
	r.writeClasses(r.w)
	if r.fill {
		fmt.Fprintf(r.w, ` fill="%v"`, shapes2d.CSSColor(opaque(r.color)))
		if r.color.A != 255 {
			fmt.Fprintf(r.w, ` fill-opacity="%v"`, dec(float64(r.color.A)/255.0))
		}
	} else {
		fmt.Fprintf(r.w, ` fill="none" stroke="%v"`, shapes2d.CSSColor(opaque(r.color)))
		if r.color.A != 255 {
			fmt.Fprintf(r.w, ` stroke-opacity="%v"`, dec(float64(r.color.A)/255.0))
		}
		if r.opts.LineWidth != 1.0 {
			fmt.Fprintf(r.w, ` stroke-width="%v"`, dec(r.opts.LineWidth))
		}
	}
	fmt.Fprintf(r.w, `/>`)
}

// opaque returns the non alpha premultiplied color with full opacity.
func opaque(c color.RGBA) color.RGBA {
	if c.A == 0 || c.A == 255 {
		return color.RGBA{c.R, c.G, c.B, 255}
	}
	a := float64(c.A) / 255.0
	return color.RGBA{
		uint8(float64(c.R)/a + 0.5),
		uint8(float64(c.G)/a + 0.5),
		uint8(float64(c.B)/a + 0.5),
		255,
	}
}
