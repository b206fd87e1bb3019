package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"
	"time"
	"unicode/utf16"
)

// Objects 1 to 3 are written on Close, every page adds a content stream and a page object.
const (
	catalogObject = 1
	infoObject    = 2
	pagesObject   = 3
)

type document struct {
	w   io.Writer
	n   int
	err error

	offsets []int // byte offset of object i+1
	kids    []int
	page    *page

	compress bool
	title    string
	creator  string
}

func newDocument(w io.Writer, compress bool) *document {
	d := &document{
		w:        w,
		offsets:  make([]int, pagesObject),
		compress: compress,
	}
	d.printf("%%PDF-1.7\n%%\xe2\xe3\xcf\xd3\n")
	return d
}

func (d *document) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	n, err := fmt.Fprintf(d.w, format, args...)
	d.n += n
	d.err = err
}

func (d *document) startObject(num int) {
	d.offsets[num-1] = d.n
	d.printf("%d 0 obj\n", num)
}

func (d *document) addObject() int {
	d.offsets = append(d.offsets, 0)
	num := len(d.offsets)
	d.startObject(num)
	return num
}

// newPage finishes the current page and starts a new one, with the origin at the top-left and the Y axis pointing down.
func (d *document) newPage(width, height float64) *page {
	if d.page != nil {
		d.finishPage()
	}
	d.page = &page{
		width:     width,
		height:    height,
		alpha:     1.0,
		fill:      color.RGBA{0, 0, 0, 255},
		stroke:    color.RGBA{0, 0, 0, 255},
		lineWidth: 1.0,
	}
	fmt.Fprintf(d.page, "1 0 0 -1 0 %v cm", dec(height))
	return d.page
}

func (d *document) finishPage() {
	p := d.page
	d.page = nil

	content, filter := p.Bytes(), ""
	if d.compress {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		zw.Write(content)
		zw.Close()
		content, filter = buf.Bytes(), "/Filter/FlateDecode"
	}

	contents := d.addObject()
	d.printf("<<%s/Length %d>>stream\n%s\nendstream\nendobj\n", filter, len(content), content)

	num := d.addObject()
	d.printf("<</Type/Page/Parent %d 0 R/MediaBox[0 0 %v %v]/Contents %d 0 R", pagesObject, dec(p.width), dec(p.height), contents)
	d.printf("/Group<</Type/Group/S/Transparency/I true/CS/DeviceRGB>>/Resources<<")
	if 0 < len(p.alphas) {
		d.printf("/ExtGState<<")
		for i, a := range p.alphas {
			d.printf("/A%d<</CA %v/ca %v>>", i, dec(a), dec(a))
		}
		d.printf(">>")
	}
	d.printf(">>>>\nendobj\n")
	d.kids = append(d.kids, num)
}

// Close writes the last page, the document structure, and the cross-reference table.
func (d *document) Close() error {
	if d.page != nil {
		d.finishPage()
	}

	d.startObject(catalogObject)
	d.printf("<</Type/Catalog/Pages %d 0 R>>\nendobj\n", pagesObject)

	d.startObject(infoObject)
	d.printf("<</Producer(tdewolff/shapes2d)/CreationDate(%s)", time.Now().Format("D:20060102150405Z0700"))
	if d.title != "" {
		d.printf("/Title%s", textString(d.title))
	}
	if d.creator != "" {
		d.printf("/Creator%s", textString(d.creator))
	}
	d.printf(">>\nendobj\n")

	d.startObject(pagesObject)
	d.printf("<</Type/Pages/Count %d/Kids[", len(d.kids))
	for i, kid := range d.kids {
		if i != 0 {
			d.printf(" ")
		}
		d.printf("%d 0 R", kid)
	}
	d.printf("]>>\nendobj\n")

	xref := d.n
	d.printf("xref\n0 %d\n0000000000 65535 f \n", len(d.offsets)+1)
	for _, offset := range d.offsets {
		d.printf("%010d 00000 n \n", offset)
	}
	d.printf("trailer\n<</Size %d/Root %d 0 R/Info %d 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(d.offsets)+1, catalogObject, infoObject, xref)
	return d.err
}

var textEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// textString returns s as a literal string, encoded as UTF-16BE with a byte order mark when not ASCII.
func textString(s string) string {
	for _, r := range s {
		if 0x80 <= r {
			rs := utf16.Encode([]rune(s))
			b := make([]byte, 0, 2+2*len(rs))
			b = append(b, 0xFE, 0xFF)
			for _, r := range rs {
				b = append(b, byte(r>>8), byte(r))
			}
			s = string(b)
			break
		}
	}
	return "(" + textEscaper.Replace(s) + ")"
}

// page is the content stream of a page along with its graphics state.
type page struct {
	bytes.Buffer
	width, height float64

	alphas    []float64 // opacities of the graphics states A0, A1, ...
	alpha     float64
	fill      color.RGBA
	stroke    color.RGBA
	lineWidth float64
}

func (p *page) setAlpha(alpha float64) {
	if alpha == p.alpha {
		return
	}
	i := slices.Index(p.alphas, alpha)
	if i == -1 {
		i = len(p.alphas)
		p.alphas = append(p.alphas, alpha)
	}
	fmt.Fprintf(p, " /A%d gs", i)
	p.alpha = alpha
}

// setColor sets the fill or stroke color, which is alpha premultiplied.
func (p *page) setColor(c color.RGBA, stroking bool) {
	a := float64(c.A) / 255.0
	r, g, b := float64(c.R)/255.0/a, float64(c.G)/255.0/a, float64(c.B)/255.0/a
	gray, rgb := "g", "rg"
	if stroking {
		gray, rgb = "G", "RG"
	}
	if c.R == c.G && c.R == c.B {
		fmt.Fprintf(p, " %v %s", dec(r), gray)
	} else {
		fmt.Fprintf(p, " %v %v %v %s", dec(r), dec(g), dec(b), rgb)
	}
	p.setAlpha(a)
}

func (p *page) setFill(c color.RGBA) {
	if c != p.fill {
		p.setColor(c, false)
		p.fill = c
	}
}

func (p *page) setStroke(c color.RGBA) {
	if c != p.stroke {
		p.setColor(c, true)
		p.stroke = c
	}
}

func (p *page) setLineWidth(lineWidth float64) {
	if lineWidth != p.lineWidth {
		fmt.Fprintf(p, " %v w", dec(lineWidth))
		p.lineWidth = lineWidth
	}
}
