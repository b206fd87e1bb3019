package shapes2d

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
)

func TestNewPrimitive(t *testing.T) {
	_, err := NewPrimitive([]Point{{0, 0}})
	test.That(t, errors.Is(err, ErrTooFewVertices))

	p, err := NewPrimitive([]Point{{0, 0}, {1, 0}})
	test.Error(t, err)
	test.That(t, !p.IsShape())
	test.That(t, !p.Visible(), "no stroke by default")
	test.T(t, p.Size, One)
	test.T(t, p.Stretch, One)
	test.T(t, p.Len(), 2)

	_, err = p.Triangles()
	test.That(t, errors.Is(err, ErrNotShape))

	p.Stroke = colornames.Red
	test.That(t, p.Visible())

	_, err = NewShape([]Point{{0, 0}, {1, 0}}, colornames.Blue, EarClip{})
	test.That(t, errors.Is(err, ErrTooFewVertices))

	_, err = NewShape([]Point{{0, 0}, {1, 0}, {0, 1}}, colornames.Blue, nil)
	test.That(t, err != nil, "shape without triangulator")

	s, err := NewShape([]Point{{0, 0}, {1, 0}, {0, 1}}, colornames.Blue, EarClip{})
	test.Error(t, err)
	test.That(t, s.IsShape())
	test.That(t, s.Visible())
	test.T(t, s.Stroke, Transparent)
	test.T(t, s.Fill, colornames.Blue)

	s.Fill = Transparent
	test.That(t, !s.Visible())
}

func TestPrimitiveVertices(t *testing.T) {
	vertices := []Point{{0, 0}, {1, 0}, {1, 1}}
	p, err := NewPrimitive(vertices)
	test.Error(t, err)

	vertices[0] = Point{5, 5}
	test.T(t, p.Vertex(0), Point{0, 0}, "vertices are copied")

	vs := p.Vertices()
	vs[0] = Point{5, 5}
	test.T(t, p.Vertex(0), Point{0, 0}, "vertices are copied")

	test.T(t, p.Generation(), uint64(0))
	p.SetVertex(1, Point{1, 0})
	test.T(t, p.Generation(), uint64(0), "identical write")
	p.SetVertex(1, Point{2, 0})
	test.T(t, p.Generation(), uint64(1))

	test.Error(t, p.SetVertices([]Point{{0, 0}, {2, 0}, {1, 1}}))
	test.T(t, p.Generation(), uint64(1), "identical write")
	test.Error(t, p.SetVertices([]Point{{0, 0}, {2, 0}, {1, 1}, {0, 1}}))
	test.T(t, p.Generation(), uint64(2))
	test.T(t, p.Edges(), 4)

	test.Error(t, p.InsertVertex(4, Point{-1, 0}))
	test.T(t, p.Vertex(4), Point{-1, 0})
	test.Error(t, p.InsertVertex(0, Point{-2, 0}))
	test.T(t, p.Vertices(), []Point{{-2, 0}, {0, 0}, {2, 0}, {1, 1}, {0, 1}, {-1, 0}})
	test.Error(t, p.RemoveVertex(0))
	test.T(t, p.Len(), 5)
	test.T(t, p.Generation(), uint64(5))

	err = p.SetVertices([]Point{{0, 0}})
	test.That(t, errors.Is(err, ErrTooFewVertices))

	q, _ := NewPrimitive([]Point{{0, 0}, {1, 0}})
	err = q.RemoveVertex(0)
	test.That(t, errors.Is(err, ErrTooFewVertices))
}

func TestPolygonFixedVertexCount(t *testing.T) {
	p, err := NewConvexPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	test.Error(t, err)
	test.That(t, errors.Is(p.InsertVertex(0, Point{}), ErrFixedVertexCount))
	test.That(t, errors.Is(p.RemoveVertex(0), ErrFixedVertexCount))
	test.That(t, errors.Is(p.SetVertices([]Point{{0, 0}, {1, 0}, {1, 1}}), ErrFixedVertexCount))
	test.Error(t, p.SetVertices([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}))
	test.T(t, p.Edges(), 4)
}

func TestPrimitiveTransform(t *testing.T) {
	defer setEpsilon(1e-9)()

	p, _ := NewPrimitive([]Point{{0.5, 0}, {0, 0.5}})
	p.Size = Point{2, 4}
	p.Rotation = math.Pi / 2.0
	p.Stretch = Point{10, 100}
	p.Position = Point{3, 5}

	// (0.5,0) -> size (1,0) -> rotate (0,1) -> stretch (0,100) -> translate (3,105)
	// (0,0.5) -> size (0,2) -> rotate (-2,0) -> stretch (-20,0) -> translate (-17,5)
	vs := p.AppendTransformed(nil)
	test.That(t, vs[0].Equals(Point{3, 105}), vs[0])
	test.That(t, vs[1].Equals(Point{-17, 5}), vs[1])
	test.That(t, p.Transform().Dot(p.Vertex(0)).Equals(vs[0]))
}

func TestTriangulationCache(t *testing.T) {
	counter := &countingTriangulator{Triangulator: EarClip{}}
	vertices := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	s, err := NewShape(vertices, colornames.Blue, counter)
	test.Error(t, err)
	test.That(t, !s.Triangulated(), "triangulation is lazy")
	test.T(t, counter.calls, 0)

	indices, err := s.Triangles()
	test.Error(t, err)
	test.T(t, indices, []int{0, 1, 2, 2, 3, 0})
	test.T(t, counter.calls, 1)
	test.That(t, s.Triangulated())

	for i, v := range vertices {
		s.SetVertex(i, v)
	}
	test.Error(t, s.SetVertices(vertices))
	_, err = s.Triangles()
	test.Error(t, err)
	test.T(t, counter.calls, 1, "identical writes do not triangulate")

	s.SetVertex(2, Point{2, 2})
	test.That(t, !s.Triangulated())
	_, err = s.Triangles()
	test.Error(t, err)
	_, err = s.Triangles()
	test.Error(t, err)
	test.T(t, counter.calls, 2, "changed write triangulates once")

	s.Fill = Transparent
	test.That(t, s.Triangulated(), "transparent fill keeps the triangulation")
	s.Fill = colornames.Red
	_, err = s.Triangles()
	test.Error(t, err)
	test.T(t, counter.calls, 2)
}

func TestTrianglesOwnership(t *testing.T) {
	counter := &countingTriangulator{Triangulator: EarClip{}}
	s, err := NewShape([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, colornames.Blue, counter)
	test.Error(t, err)

	indices, err := s.Triangles()
	test.Error(t, err)
	for i := range indices {
		indices[i] = 7
	}

	indices, err = s.Triangles()
	test.Error(t, err)
	test.T(t, indices, []int{0, 1, 2, 2, 3, 0})
	test.T(t, NewBatch(s).Build().TriangleIndices, []uint32{0, 1, 2, 2, 3, 0})
	test.T(t, counter.calls, 1)
}

func TestTriangulationFailureIsCached(t *testing.T) {
	counter := &countingTriangulator{Triangulator: NewSweep()}
	s, err := NewShape([]Point{{0, 0}, {2, 0}, {2, 2}, {1, -1}, {0, 2}}, colornames.Blue, counter)
	test.Error(t, err)

	_, err = s.Triangles()
	test.That(t, errors.Is(err, ErrTessellation))
	_, err = s.Triangles()
	test.That(t, errors.Is(err, ErrTessellation))
	test.T(t, counter.calls, 1, "failures are not retried")
	test.That(t, !s.Triangulated())

	s.SetVertex(3, Point{1, 1.5})
	indices, err := s.Triangles()
	test.Error(t, err)
	test.T(t, len(indices), 9)
	test.T(t, counter.calls, 2)
}
