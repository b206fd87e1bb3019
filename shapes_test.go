package shapes2d

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func bounds(vertices []Point) (Point, Point) {
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		min.X, min.Y = math.Min(min.X, v.X), math.Min(min.Y, v.Y)
		max.X, max.Y = math.Max(max.X, v.X), math.Max(max.Y, v.Y)
	}
	return min, max
}

func TestRectangle(t *testing.T) {
	p, err := Rectangle(2.0, 3.0)
	test.Error(t, err)
	test.T(t, p.Vertices(), []Point{{0, 0}, {2, 0}, {2, 3}, {0, 3}})
	test.Float(t, polygonArea(p.Vertices()), 6.0)
	test.T(t, p.Triangulator(), Triangulator(EarClip{}))
}

func TestRegularPolygon(t *testing.T) {
	defer setEpsilon(1e-9)()

	_, err := RegularPolygon(2, AutoHeight)
	test.That(t, errors.Is(err, ErrTooFewVertices))

	square, err := RegularPolygon(4, AutoHeight)
	test.Error(t, err)
	want := []Point{{0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}, {-0.5, -0.5}}
	for i, v := range square.Vertices() {
		test.That(t, v.Equals(want[i]), "vertex", i, v)
	}

	var tests = []struct {
		edges         int
		scaling       VertexScaling
		width, height float64
	}{
		{3, AutoHeight, 1.0, math.Sqrt(3.0) / 2.0},
		{3, AutoWidth, 2.0 / math.Sqrt(3.0), 1.0},
		{3, Stretch, 1.0, 1.0},
		{3, Circumcircle, math.Sqrt(3.0) / 2.0, 0.75},
		{4, AutoHeight, 1.0, 1.0},
		{4, Circumcircle, math.Sqrt(0.5), math.Sqrt(0.5)},
		{5, Stretch, 1.0, 1.0},
		{6, AutoHeight, 1.0, math.Sqrt(3.0) / 2.0},
		{6, AutoWidth, 2.0 / math.Sqrt(3.0), 1.0},
		{6, Circumcircle, 1.0, math.Sqrt(3.0) / 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.scaling.String(), func(t *testing.T) {
			p, err := RegularPolygon(tt.edges, tt.scaling)
			test.Error(t, err)
			test.T(t, p.Edges(), tt.edges)
			test.That(t, 0.0 < polygonArea(p.Vertices()), "clockwise")

			min, max := bounds(p.Vertices())
			test.That(t, Equal(max.X-min.X, tt.width), "width", max.X-min.X)
			test.That(t, Equal(max.Y-min.Y, tt.height), "height", max.Y-min.Y)
		})
	}

	for _, n := range []int{3, 5, 7} {
		p, _ := RegularPolygon(n, Circumcircle)
		test.That(t, p.Vertex(0).Equals(Point{0.0, -0.5}), "odd polygons point up")
	}
	p, _ := RegularPolygon(8, Circumcircle)
	for _, v := range p.Vertices() {
		test.That(t, Equal(v.Length(), 0.5), "on circumcircle")
	}
}

func TestWave(t *testing.T) {
	defer setEpsilon(1e-9)()

	w, err := NewWave(100.0, 50.0, WaveOptions{}, NewSweep())
	test.Error(t, err)
	test.T(t, w.WaveOptions, DefaultWaveOptions)
	test.T(t, w.Len(), 13)
	test.T(t, w.Vertex(5), Point{50, 0})
	test.T(t, w.Vertex(10), Point{100, 0})
	test.T(t, w.Vertex(11), Point{100, 50})
	test.T(t, w.Vertex(12), Point{0, 50})

	w.Animate(0.0)
	test.T(t, w.Generation(), uint64(10), "first surface vertex stays at zero")
	test.That(t, Equal(w.Vertex(5).Y, math.Sin(0.5)*10.0))
	test.T(t, w.Vertex(11), Point{100, 50}, "bottom does not move")

	indices, err := w.Triangles()
	test.Error(t, err)
	test.T(t, len(indices), 33)

	w.Animate(0.0)
	test.T(t, w.Generation(), uint64(10), "identical writes")
	test.That(t, w.Triangulated())

	w.Animate(0.25)
	test.That(t, Equal(w.Vertex(0).Y, math.Sin(2.5)*10.0))
	test.That(t, !w.Triangulated())

	_, err = NewWave(100.0, 50.0, WaveOptions{Segments: -1}, NewSweep())
	test.That(t, errors.Is(err, ErrTooFewVertices))
}
