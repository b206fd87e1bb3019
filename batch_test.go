package shapes2d

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
)

func TestBatch(t *testing.T) {
	line, err := NewPrimitive([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	test.Error(t, err)
	line.Stroke = colornames.Red

	square, err := Rectangle(1.0, 1.0)
	test.Error(t, err)
	square.Fill = colornames.Blue
	square.Position = Point{100, 200}

	batch := NewBatch(line, square)
	test.T(t, batch.Len(), 2)

	r := &recorder{}
	stats := batch.Draw(r)
	test.T(t, stats, Stats{Triangles: 2, Lines: 4, DrawCalls: 2})
	test.T(t, len(r.calls), 2)

	tris, lines := r.calls[0], r.calls[1]
	test.That(t, tris.triangles)
	test.That(t, !lines.triangles)

	test.T(t, len(lines.vertices), 4)
	test.T(t, lines.indices, []uint32{0, 1, 1, 2, 2, 3, 3, 0})
	for _, v := range lines.vertices {
		test.T(t, v.Color, colornames.Red)
	}
	test.T(t, lines.vertices[2], Vertex{X: 10, Y: 10, Color: colornames.Red})

	test.T(t, len(tris.vertices), 4)
	test.T(t, tris.indices, []uint32{0, 1, 2, 2, 3, 0})
	for _, v := range tris.vertices {
		test.T(t, v.Color, colornames.Blue)
	}
	test.T(t, tris.vertices[2], Vertex{X: 101, Y: 201, Color: colornames.Blue})
}

func TestBatchOffsets(t *testing.T) {
	a, _ := Rectangle(1.0, 1.0)
	b, _ := RegularPolygon(3, Circumcircle)
	a.Stroke, b.Stroke = colornames.Red, colornames.Green
	batch := NewBatch(a, b)

	buf := batch.Build()
	test.T(t, len(buf.TriangleVertices), 7)
	test.T(t, buf.TriangleIndices, []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6})
	test.T(t, len(buf.LineVertices), 7)
	test.T(t, buf.LineIndices, []uint32{0, 1, 1, 2, 2, 3, 3, 0, 4, 5, 5, 6, 6, 4})
	test.T(t, buf.LineVertices[4].Color, colornames.Green)
	test.T(t, buf.TriangleVertices[4].Color, color.RGBA{255, 255, 255, 255})

	// stroke and fill share the transformation
	a.Position, a.Rotation, a.Size, a.Stretch = Point{5, 5}, 0.5, Point{2, 3}, Point{4, 1}
	buf = batch.Build()
	for i := 0; i < 4; i++ {
		test.T(t, buf.LineVertices[i].X, buf.TriangleVertices[i].X)
		test.T(t, buf.LineVertices[i].Y, buf.TriangleVertices[i].Y)
	}
}

func TestBatchEmpty(t *testing.T) {
	r := &recorder{}
	test.T(t, NewBatch().Draw(r), Stats{})
	test.T(t, len(r.calls), 0)

	p, _ := Rectangle(1.0, 1.0)
	p.Fill = Transparent
	q, _ := NewPrimitive([]Point{{0, 0}, {1, 1}})
	batch := NewBatch(p, q)
	test.T(t, batch.Draw(r), Stats{})
	test.T(t, len(r.calls), 0, "invisible primitives issue no draw calls")

	q.Stroke = colornames.Red
	test.T(t, batch.Draw(r), Stats{Lines: 2, DrawCalls: 1})
	test.T(t, len(r.calls), 1)
	test.That(t, !r.calls[0].triangles)
}

func TestBatchTriangulatesOnce(t *testing.T) {
	counter := &countingTriangulator{Triangulator: EarClip{}}
	s, _ := NewShape([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, colornames.Blue, counter)
	batch := NewBatch(s)

	r := &recorder{}
	for i := 0; i < 3; i++ {
		batch.Draw(r)
	}
	test.T(t, counter.calls, 1)

	s.Fill = Transparent
	batch.Draw(r)
	s.Fill = colornames.Blue
	batch.Draw(r)
	test.T(t, counter.calls, 1, "toggling the fill does not triangulate")

	s.SetVertex(0, Point{-1, 0})
	batch.Draw(r)
	batch.Draw(r)
	test.T(t, counter.calls, 2)
}

func TestBatchTriangulationFailure(t *testing.T) {
	var log bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&log, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	counter := &countingTriangulator{Triangulator: NewSweep()}
	bowtie, _ := NewShape([]Point{{0, 0}, {2, 0}, {2, 2}, {1, -1}, {0, 2}}, colornames.Blue, counter)
	bowtie.Stroke = colornames.Red
	batch := NewBatch(bowtie)

	r := &recorder{}
	test.T(t, batch.Draw(r), Stats{Lines: 5, DrawCalls: 1}, "outline remains")
	test.T(t, batch.Draw(r), Stats{Lines: 5, DrawCalls: 1})
	test.T(t, counter.calls, 1, "failures are not retried")
	test.T(t, strings.Count(log.String(), "fill skipped"), 1)

	buf := batch.Build()
	test.T(t, len(buf.TriangleVertices), 0, "no vertices without indices")
}

func TestBatchRemove(t *testing.T) {
	a, _ := Rectangle(1.0, 1.0)
	b, _ := Rectangle(2.0, 2.0)
	batch := NewBatch()
	batch.Add(a, b)
	test.T(t, batch.Len(), 2)
	test.That(t, batch.Remove(a))
	test.That(t, !batch.Remove(a))
	test.T(t, batch.Len(), 1)
	test.That(t, batch.Primitives[0] == b)
}

func TestBatchWave(t *testing.T) {
	w, err := NewWave(100.0, 50.0, WaveOptions{}, NewSweep())
	test.Error(t, err)
	w.Fill = colornames.Blue
	w.Animate(1.0)

	stats := NewBatch(w.Primitive).Draw(&recorder{})
	test.T(t, stats, Stats{Triangles: 11, DrawCalls: 1})
}
