package shapes2d

import (
	"image/color"
	"math"
)

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() {
		Epsilon = origEpsilon
	}
}

// countingTriangulator counts the calls to its triangulator.
type countingTriangulator struct {
	Triangulator
	calls int
}

func (t *countingTriangulator) Triangulate(vertices []Point) ([]int, error) {
	t.calls++
	return t.Triangulator.Triangulate(vertices)
}

type drawCall struct {
	triangles bool
	vertices  []Vertex
	indices   []uint32
}

// recorder is a Rasterizer that records its draw calls.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawIndexedTriangles(vertices []Vertex, indices []uint32) {
	r.calls = append(r.calls, drawCall{true, append([]Vertex{}, vertices...), append([]uint32{}, indices...)})
}

func (r *recorder) DrawIndexedLines(vertices []Vertex, indices []uint32) {
	r.calls = append(r.calls, drawCall{false, append([]Vertex{}, vertices...), append([]uint32{}, indices...)})
}

func regularVertices(n int, r float64) []Point {
	ps := make([]Point, n)
	for i := range ps {
		ps[i] = Point{0.0, -r}.Rot(2.0 * math.Pi * float64(i) / float64(n))
	}
	return ps
}

func fills(prims []*Primitive) []color.RGBA {
	cs := make([]color.RGBA, len(prims))
	for i, p := range prims {
		cs[i] = p.Fill
	}
	return cs
}
