// Package shapes2d builds vertex and index buffers for batches of 2D outlines and filled shapes, and lays out regular tilings of them.
package shapes2d

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// ErrFixedVertexCount is returned when inserting or removing vertices of a polygon, whose number of edges is fixed at construction.
var ErrFixedVertexCount = errors.New("polygon has a fixed number of vertices")

// ErrNotShape is returned when triangulating a primitive that has no fill.
var ErrNotShape = errors.New("primitive is not a shape")

// Primitive is a closed outline of clockwise vertices with a transformation. When constructed as a shape it also has a fill, which is triangulated on demand.
//
// The transformation applied to each vertex v is Stretch*rotate(Size*v, Rotation) + Position.
type Primitive struct {
	Position Point   // translation, applied last
	Size     Point   // scale, applied before rotation
	Stretch  Point   // scale, applied after rotation
	Rotation float64 // in radians, clockwise on screen
	Stroke   color.RGBA
	Fill     color.RGBA // only used by shapes

	vertices     []Point
	generation   uint64
	triangulator Triangulator // nil for primitives without fill
	fixed        bool

	cache triangulation
}

type triangulation struct {
	valid      bool
	generation uint64
	indices    []int
	err        error
}

// NewPrimitive returns an outline-only primitive. It needs at least two vertices and has no stroke until one is set.
func NewPrimitive(vertices []Point) (*Primitive, error) {
	if len(vertices) < 2 {
		return nil, fmt.Errorf("primitive with %d vertices: %w", len(vertices), ErrTooFewVertices)
	}
	return &Primitive{
		Size:     One,
		Stretch:  One,
		vertices: append([]Point{}, vertices...),
	}, nil
}

// NewShape returns a fillable primitive with at least three vertices, triangulated by t.
func NewShape(vertices []Point, fill color.RGBA, t Triangulator) (*Primitive, error) {
	if t == nil {
		return nil, errors.New("shape without triangulator")
	} else if len(vertices) < 3 {
		return nil, fmt.Errorf("shape with %d vertices: %w", len(vertices), ErrTooFewVertices)
	}
	p, err := NewPrimitive(vertices)
	if err != nil {
		return nil, err
	}
	p.Stroke = Transparent
	p.Fill = fill
	p.triangulator = t
	return p, nil
}

// NewPolygon returns a white shape whose number of edges is fixed to the number of vertices.
func NewPolygon(vertices []Point, t Triangulator) (*Primitive, error) {
	p, err := NewShape(vertices, color.RGBA{255, 255, 255, 255}, t)
	if err != nil {
		return nil, err
	}
	p.fixed = true
	return p, nil
}

// NewConvexPolygon returns a polygon triangulated by ear clipping.
func NewConvexPolygon(vertices []Point) (*Primitive, error) {
	return NewPolygon(vertices, EarClip{})
}

// IsShape returns true if the primitive can be filled.
func (p *Primitive) IsShape() bool {
	return p.triangulator != nil
}

// Triangulator returns the triangulation strategy of a shape, or nil.
func (p *Primitive) Triangulator() Triangulator {
	return p.triangulator
}

// Visible returns true if the primitive has a stroke or a fill to draw.
func (p *Primitive) Visible() bool {
	return !IsTransparent(p.Stroke) || p.IsShape() && !IsTransparent(p.Fill)
}

// Len returns the number of vertices.
func (p *Primitive) Len() int {
	return len(p.vertices)
}

// Edges returns the number of edges of the closed outline.
func (p *Primitive) Edges() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex.
func (p *Primitive) Vertex(i int) Point {
	return p.vertices[i]
}

// Vertices returns a copy of the vertices.
func (p *Primitive) Vertices() []Point {
	return append([]Point{}, p.vertices...)
}

// Generation is incremented on every change of the vertices.
func (p *Primitive) Generation() uint64 {
	return p.generation
}

func (p *Primitive) minVertices() int {
	if p.IsShape() {
		return 3
	}
	return 2
}

// SetVertex replaces the i-th vertex. Writing an identical value does not invalidate the triangulation.
func (p *Primitive) SetVertex(i int, v Point) {
	if p.vertices[i] == v {
		return
	}
	p.vertices[i] = v
	p.generation++
}

// SetVertices replaces all vertices. Writing identical values does not invalidate the triangulation.
func (p *Primitive) SetVertices(vertices []Point) error {
	if len(vertices) == len(p.vertices) {
		equal := true
		for i, v := range vertices {
			if p.vertices[i] != v {
				equal = false
				break
			}
		}
		if equal {
			return nil
		}
	} else if p.fixed {
		return ErrFixedVertexCount
	} else if len(vertices) < p.minVertices() {
		return fmt.Errorf("%d vertices: %w", len(vertices), ErrTooFewVertices)
	}
	p.vertices = append(p.vertices[:0], vertices...)
	p.generation++
	return nil
}

// InsertVertex inserts v before the i-th vertex, or appends it when i equals Len.
func (p *Primitive) InsertVertex(i int, v Point) error {
	if p.fixed {
		return ErrFixedVertexCount
	} else if i < 0 || len(p.vertices) < i {
		panic(fmt.Sprintf("vertex index %d out of range [0,%d]", i, len(p.vertices)))
	}
	p.vertices = append(p.vertices, Point{})
	copy(p.vertices[i+1:], p.vertices[i:])
	p.vertices[i] = v
	p.generation++
	return nil
}

// RemoveVertex removes the i-th vertex.
func (p *Primitive) RemoveVertex(i int) error {
	if p.fixed {
		return ErrFixedVertexCount
	} else if len(p.vertices) <= p.minVertices() {
		return fmt.Errorf("removing vertex: %w", ErrTooFewVertices)
	}
	p.vertices = append(p.vertices[:i], p.vertices[i+1:]...)
	p.generation++
	return nil
}

// Transform returns the matrix that maps vertices to screen coordinates: size, then rotation, then stretch, then translation.
func (p *Primitive) Transform() Matrix {
	return Identity.Translate(p.Position.X, p.Position.Y).Scale(p.Stretch.X, p.Stretch.Y).Rotate(p.Rotation).Scale(p.Size.X, p.Size.Y)
}

// AppendTransformed appends the transformed vertices to dst.
func (p *Primitive) AppendTransformed(dst []Point) []Point {
	m := p.Transform()
	for _, v := range p.vertices {
		dst = append(dst, m.Dot(v))
	}
	return dst
}

// Triangulated returns true if a valid triangulation of the current vertices is cached.
func (p *Primitive) Triangulated() bool {
	return p.cache.valid && p.cache.generation == p.generation && p.cache.err == nil
}

// Triangles returns a copy of the triangle indices of a shape, triangulating only when the vertices changed since the last call. A failed triangulation is remembered and not retried until the vertices change.
func (p *Primitive) Triangles() ([]int, error) {
	indices, err := p.triangles()
	return slices.Clone(indices), err
}

// triangles returns the cached indices, which must not be modified.
func (p *Primitive) triangles() ([]int, error) {
	if p.triangulator == nil {
		return nil, ErrNotShape
	} else if p.cache.valid && p.cache.generation == p.generation {
		return p.cache.indices, p.cache.err
	}

	indices, err := p.triangulator.Triangulate(p.vertices)
	if err != nil {
		err = fmt.Errorf("triangulate %d vertices with %v: %w", len(p.vertices), p.triangulator, err)
		indices = nil
	}
	p.cache = triangulation{
		valid:      true,
		generation: p.generation,
		indices:    indices,
		err:        err,
	}
	return indices, err
}

func (p *Primitive) String() string {
	kind := "Primitive"
	if p.IsShape() {
		kind = "Shape"
	}
	return fmt.Sprintf("%s{%d vertices at %v}", kind, len(p.vertices), p.Position)
}
