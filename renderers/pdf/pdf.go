package pdf

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/shapes2d"
)

// Precision is the number of decimals of coordinates.
var Precision = 4

// Options are the PDF options.
type Options struct {
	Compress  bool
	LineWidth float64
	Title     string
	Creator   string
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Compress:  true,
	LineWidth: 1.0,
}

// Writer writes the batch as a PDF file.
func Writer(opts *Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		pdf := New(w, width, height, opts)
		b.Draw(pdf)
		return pdf.Close()
	}
}

// PDF is a portable document format renderer.
type PDF struct {
	doc           *document
	w             *page
	width, height float64
	opts          *Options
}

// New returns a portable document format (PDF) renderer of a single page of width by height points.
func New(w io.Writer, width, height float64, opts *Options) *PDF {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	doc := newDocument(w, opts.Compress)
	doc.title = opts.Title
	doc.creator = opts.Creator
	page := doc.newPage(width, height)
	if opts.LineWidth != 0.0 {
		page.setLineWidth(opts.LineWidth)
	}
	return &PDF{
		doc:    doc,
		w:      page,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// NewPage adds a new page where further drawing will be written to.
func (r *PDF) NewPage(width, height float64) {
	r.w = r.doc.newPage(width, height)
	r.width, r.height = width, height
	if r.opts.LineWidth != 0.0 {
		r.w.setLineWidth(r.opts.LineWidth)
	}
}

// Close finished and closes the PDF.
func (r *PDF) Close() error {
	return r.doc.Close()
}

// Size returns the size of the page in points.
func (r *PDF) Size() (float64, float64) {
	return r.width, r.height
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *PDF) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.w.setFill(v0.Color)
		fmt.Fprintf(r.w, " %v %v m %v %v l %v %v l h f", dec(v0.X), dec(v0.Y), dec(v1.X), dec(v1.Y), dec(v2.X), dec(v2.Y))
	}
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *PDF) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	for i := 0; i+1 < len(indices); i += 2 {
		v0, v1 := vertices[indices[i]], vertices[indices[i+1]]
		if shapes2d.IsTransparent(v0.Color) {
			continue
		}
		r.w.setStroke(v0.Color)
		fmt.Fprintf(r.w, " %v %v m %v %v l S", dec(v0.X), dec(v0.Y), dec(v1.X), dec(v1.Y))
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
