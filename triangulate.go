package shapes2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByteArena/poly2tri-go"
)

var (
	// ErrTooFewVertices is returned when a primitive has fewer than 2 vertices, or a fillable shape fewer than 3.
	ErrTooFewVertices = errors.New("too few vertices")

	// ErrDegenerate is returned for contours with NaN coordinates, repeated vertices, or zero area.
	ErrDegenerate = errors.New("degenerate contour")

	// ErrTessellation is returned when the sweep tessellator cannot triangulate a contour, such as a self-intersecting one.
	ErrTessellation = errors.New("tessellation failed")
)

// Triangulator splits a simple polygon, given by its clockwise vertices, into triangles. The result holds 3*(n-2) indices into vertices, in groups of three.
type Triangulator interface {
	Triangulate(vertices []Point) ([]int, error)
}

// EarClip triangulates convex polygons by clipping ears in a single pass. It produces wrong results for concave polygons.
type EarClip struct{}

func (EarClip) String() string {
	return "EarClip"
}

// Triangulate implements Triangulator.
func (EarClip) Triangulate(vertices []Point) ([]int, error) {
	n := len(vertices)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	for _, v := range vertices {
		if v.IsNaN() {
			return nil, ErrDegenerate
		}
	}
	if n == 3 {
		return []int{0, 1, 2}, nil
	}

	work := make([]int, n)
	for i := range work {
		work[i] = i
	}

	indices := make([]int, 0, 3*(n-2))
	cycle := 0
	for 3 <= len(work) {
		indices = append(indices, work[cycle])
		if cycle++; cycle == len(work) {
			cycle = 0
		}
		indices = append(indices, work[cycle])

		// remove the ear and continue from the vertex that followed it
		work = append(work[:cycle], work[cycle+1:]...)
		if cycle == len(work) {
			cycle = 0
		}
		indices = append(indices, work[cycle])
	}
	return indices, nil
}

// Sweep triangulates arbitrary simple polygons using a constrained Delaunay sweep. It reuses internal buffers between calls and must not be used concurrently.
type Sweep struct {
	contour []*poly2tri.Point
	index   map[*poly2tri.Point]int
}

// NewSweep returns a new sweep tessellator.
func NewSweep() *Sweep {
	return &Sweep{
		index: map[*poly2tri.Point]int{},
	}
}

func (t *Sweep) String() string {
	return "Sweep"
}

// Triangulate implements Triangulator. The interior of a simple polygon is the same region under the even-odd and non-zero winding rules; self-intersecting contours fail with ErrTessellation.
func (t *Sweep) Triangulate(vertices []Point) (indices []int, err error) {
	if err := validateContour(vertices); err != nil {
		return nil, err
	}

	t.contour = t.contour[:0]
	clear(t.index)
	for i, v := range vertices {
		p := poly2tri.NewPoint(v.X, v.Y)
		t.contour = append(t.contour, p)
		t.index[p] = i
	}

	defer func() {
		if r := recover(); r != nil {
			indices, err = nil, fmt.Errorf("%w: %v", ErrTessellation, r)
		}
	}()

	swctx := poly2tri.NewSweepContext(t.contour, false)
	swctx.Triangulate()

	// output points are the very points we passed in, map them back by identity
	triangles := swctx.GetTriangles()
	indices = make([]int, 0, 3*len(triangles))
	for _, tr := range triangles {
		for _, p := range tr.Points {
			i, ok := t.index[p]
			if !ok {
				return nil, fmt.Errorf("%w: unknown vertex %v,%v", ErrTessellation, p.X, p.Y)
			}
			indices = append(indices, i)
		}
	}
	if len(indices) != 3*(len(vertices)-2) {
		return nil, fmt.Errorf("%w: %d triangles for %d vertices", ErrTessellation, len(indices)/3, len(vertices))
	}
	return indices, nil
}

func validateContour(vertices []Point) error {
	n := len(vertices)
	if n < 3 {
		return ErrTooFewVertices
	}
	for i, v := range vertices {
		if v.IsNaN() {
			return fmt.Errorf("%w: vertex %d is %v", ErrDegenerate, i, v)
		} else if v == vertices[(i+1)%n] {
			return fmt.Errorf("%w: vertex %d repeats", ErrDegenerate, i)
		}
	}
	if Equal(polygonArea(vertices), 0.0) {
		return fmt.Errorf("%w: zero area", ErrDegenerate)
	}

	// the sweep does not detect crossing edges and may loop or panic on them
	for i := 0; i < n; i++ {
		a0, a1 := vertices[i], vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			b0, b1 := vertices[j], vertices[(j+1)%n]
			if a0 == b0 || a0 == b1 || a1 == b0 || a1 == b1 {
				return fmt.Errorf("%w: vertex repeats", ErrDegenerate)
			} else if segmentsIntersect(a0, a1, b0, b1) {
				return fmt.Errorf("%w: edges %d and %d intersect", ErrTessellation, i, j)
			}
		}
	}
	return nil
}

// segmentsIntersect returns true if segments A and B touch or cross.
func segmentsIntersect(a0, a1, b0, b1 Point) bool {
	d0 := triangleArea(b0, b1, a0)
	d1 := triangleArea(b0, b1, a1)
	d2 := triangleArea(a0, a1, b0)
	d3 := triangleArea(a0, a1, b1)
	if (0.0 < d0 && d1 < 0.0 || d0 < 0.0 && 0.0 < d1) && (0.0 < d2 && d3 < 0.0 || d2 < 0.0 && 0.0 < d3) {
		return true
	}
	return d0 == 0.0 && onSegment(b0, b1, a0) || d1 == 0.0 && onSegment(b0, b1, a1) ||
		d2 == 0.0 && onSegment(a0, a1, b0) || d3 == 0.0 && onSegment(a0, a1, b1)
}

// onSegment returns true if the collinear point P lies within the bounding box of segment AB.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) && math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
