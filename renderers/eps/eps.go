package eps

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

// Writer writes the batch as an EPS file.
func Writer(w io.Writer, b *shapes2d.Batch, width, height float64) error {
	eps := New(w, width, height)
	b.Draw(eps)
	return eps.Close()
}

// EPS is an encapsulated PostScript renderer. Be aware that EPS does not support transparency of colors.
type EPS struct {
	w             io.Writer
	width, height float64
	color         color.RGBA
	err           error
}

// New returns an encapsulated PostScript (EPS) renderer of width by height points.
func New(w io.Writer, width, height float64) *EPS {
	r := &EPS{
		w:      w,
		width:  width,
		height: height,
		color:  color.RGBA{0, 0, 0, 255},
	}
	r.printf("%%!PS-Adobe-3.0 EPSF-3.0\n%%%%BoundingBox: 0 0 %v %v\n", int(math.Ceil(width)), int(math.Ceil(height)))
	r.printf("1 setlinejoin")
	return r
}

func (r *EPS) printf(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, args...)
	}
}

// Close writes the trailer and returns the first write error.
func (r *EPS) Close() error {
	r.printf("\nshowpage\n%%%%EOF\n")
	return r.err
}

func (r *EPS) setColor(c color.RGBA) {
	if c != r.color {
		r.printf(" %v %v %v setrgbcolor", dec(float64(c.R)/255.0), dec(float64(c.G)/255.0), dec(float64(c.B)/255.0))
		r.color = c
	}
}

// Size returns the size of the page in points.
func (r *EPS) Size() (float64, float64) {
	return r.width, r.height
}

// point flips the Y axis, PostScript has its origin at the bottom-left.
func (r *EPS) point(v shapes2d.Vertex) (dec, dec) {
	return dec(v.X), dec(r.height - float64(v.Y))
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *EPS) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertices[indices[i]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.setColor(v0.Color)
		x0, y0 := r.point(v0)
		x1, y1 := r.point(vertices[indices[i+1]])
		x2, y2 := r.point(vertices[indices[i+2]])
		r.printf(" %v %v moveto %v %v lineto %v %v lineto closepath fill", x0, y0, x1, y1, x2, y2)
	}
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *EPS) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0 := vertices[indices[i]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.setColor(v0.Color)
		x0, y0 := r.point(v0)
		x1, y1 := r.point(vertices[indices[i+1]])
		r.printf(" %v %v moveto %v %v lineto stroke", x0, y0, x1, y1)
	}
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
