package tex

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/shapes2d"
)

// Precision is the number of decimals of coordinates.
var Precision = 4

// Writer writes the batch as a TeX file using PGF (\usepackage{pgf}), in units of points.
func Writer(w io.Writer, b *shapes2d.Batch, width, height float64) error {
	tex := New(w, width, height)
	b.Draw(tex)
	return tex.Close()
}

// TeX is a TeX/PGF renderer.
type TeX struct {
	w             io.Writer
	width, height float64
	err           error

	fill, stroke color.RGBA
	colors       map[color.RGBA]string
}

// New returns a TeX/PGF renderer of width by height points.
func New(w io.Writer, width, height float64) *TeX {
	r := &TeX{
		w:      w,
		width:  width,
		height: height,
		fill:   color.RGBA{0, 0, 0, 255},
		stroke: color.RGBA{0, 0, 0, 255},
		colors: map[color.RGBA]string{},
	}
	r.printf("\\begin{pgfpicture}")
	return r
}

func (r *TeX) printf(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, args...)
	}
}

// Close finished and closes the TeX file.
func (r *TeX) Close() error {
	r.printf("\n\\end{pgfpicture}")
	return r.err
}

// Size returns the size of the picture in points.
func (r *TeX) Size() (float64, float64) {
	return r.width, r.height
}

// getColor defines a named color for the opaque part of col.
func (r *TeX) getColor(col color.RGBA) string {
	col.A = 255
	if name, ok := r.colors[col]; ok {
		return name
	}

	name := fmt.Sprintf("shapesColor%v", len(r.colors))
	r.printf("\n\\definecolor{%v}{RGB}{%v,%v,%v}", name, col.R, col.G, col.B)
	r.colors[col] = name
	return name
}

// unpremultiply returns the straight alpha color.
func unpremultiply(c color.RGBA) color.RGBA {
	if c.A == 0 || c.A == 255 {
		return c
	}
	a := float64(c.A) / 255.0
	return color.RGBA{
		uint8(math.Min(float64(c.R)/a+0.5, 255.0)),
		uint8(math.Min(float64(c.G)/a+0.5, 255.0)),
		uint8(math.Min(float64(c.B)/a+0.5, 255.0)),
		c.A,
	}
}

func (r *TeX) point(v shapes2d.Vertex) string {
	return fmt.Sprintf("\\pgfpoint{%vpt}{%vpt}", dec(v.X), dec(r.height-float64(v.Y)))
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *TeX) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertices[indices[i]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.setFill(v0.Color)
		r.printf("\n\\pgfpathmoveto{%v}", r.point(v0))
		r.printf("\n\\pgfpathlineto{%v}", r.point(vertices[indices[i+1]]))
		r.printf("\n\\pgfpathlineto{%v}", r.point(vertices[indices[i+2]]))
		r.printf("\n\\pgfpathclose\n\\pgfusepath{fill}")
	}
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *TeX) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0 := vertices[indices[i]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.setStroke(v0.Color)
		r.printf("\n\\pgfpathmoveto{%v}", r.point(v0))
		r.printf("\n\\pgfpathlineto{%v}", r.point(vertices[indices[i+1]]))
		r.printf("\n\\pgfusepath{stroke}")
	}
}

func (r *TeX) setFill(c color.RGBA) {
	c = unpremultiply(c)
	if c.R != r.fill.R || c.G != r.fill.G || c.B != r.fill.B {
		r.printf("\n\\pgfsetfillcolor{%v}", r.getColor(c))
	}
	if c.A != r.fill.A {
		r.printf("\n\\pgfsetfillopacity{%v}", dec(float64(c.A)/255.0))
	}
	r.fill = c
}

func (r *TeX) setStroke(c color.RGBA) {
	c = unpremultiply(c)
	if c.R != r.stroke.R || c.G != r.stroke.G || c.B != r.stroke.B {
		r.printf("\n\\pgfsetstrokecolor{%v}", r.getColor(c))
	}
	if c.A != r.stroke.A {
		r.printf("\n\\pgfsetstrokeopacity{%v}", dec(float64(c.A)/255.0))
	}
	r.stroke = c
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}
