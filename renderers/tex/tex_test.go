package tex

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
)

func TestTeX(t *testing.T) {
	line, err := shapes2d.NewPrimitive([]shapes2d.Point{{0, 5}, {20, 5}})
	test.Error(t, err)
	line.Stroke = colornames.Red

	var buf bytes.Buffer
	err = shapes2d.NewBatch(line).Write(&buf, Writer, 20.0, 20.0)
	test.Error(t, err)
	test.String(t, buf.String(), "\\begin{pgfpicture}"+
		"\n\\definecolor{shapesColor0}{RGB}{255,0,0}"+
		"\n\\pgfsetstrokecolor{shapesColor0}"+
		"\n\\pgfpathmoveto{\\pgfpoint{0pt}{15pt}}"+
		"\n\\pgfpathlineto{\\pgfpoint{20pt}{15pt}}"+
		"\n\\pgfusepath{stroke}"+
		"\n\\pgfpathmoveto{\\pgfpoint{20pt}{15pt}}"+
		"\n\\pgfpathlineto{\\pgfpoint{0pt}{15pt}}"+
		"\n\\pgfusepath{stroke}"+
		"\n\\end{pgfpicture}")
}

func TestTeXFill(t *testing.T) {
	square, err := shapes2d.Rectangle(10.0, 10.0)
	test.Error(t, err)
	square.Fill = color.RGBA{0, 0, 128, 128}
	other, err := shapes2d.Rectangle(5.0, 5.0)
	test.Error(t, err)
	other.Fill = colornames.Blue

	var buf bytes.Buffer
	err = shapes2d.NewBatch(square, other).Write(&buf, Writer, 10.0, 10.0)
	test.Error(t, err)

	s := buf.String()
	test.That(t, strings.Count(s, "\\definecolor") == 1, s)
	test.That(t, strings.Count(s, "\\pgfsetfillopacity") == 2, s)
	test.That(t, strings.Count(s, "\\pgfusepath{fill}") == 4, s)
	test.That(t, strings.Contains(s, "{RGB}{0,0,255}"), s)
}
