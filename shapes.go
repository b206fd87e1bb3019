package shapes2d

import (
	"fmt"
	"math"
)

// VertexScaling is the normalization applied to the vertices of a regular polygon.
type VertexScaling int

// see VertexScaling
const (
	AutoHeight   VertexScaling = iota // width is 1, height keeps the aspect ratio
	AutoWidth                         // height is 1, width keeps the aspect ratio
	Circumcircle                      // vertices lie on a circle of diameter 1
	Stretch                           // width and height are 1
)

func (s VertexScaling) String() string {
	switch s {
	case AutoHeight:
		return "AutoHeight"
	case AutoWidth:
		return "AutoWidth"
	case Circumcircle:
		return "Circumcircle"
	case Stretch:
		return "Stretch"
	}
	return fmt.Sprintf("VertexScaling(%d)", int(s))
}

// Rectangle returns a rectangle of width w and height h with its top-left corner at the origin.
func Rectangle(w, h float64) (*Primitive, error) {
	return NewConvexPolygon([]Point{{0.0, 0.0}, {w, 0.0}, {w, h}, {0.0, h}})
}

// RegularPolygon returns a regular polygon with n edges centered at the origin and normalized by scaling. The first vertex points up for odd n; for even n the polygon is rotated by half a step so that the top is an edge.
func RegularPolygon(n int, scaling VertexScaling) (*Primitive, error) {
	if n < 3 {
		return nil, fmt.Errorf("regular polygon with %d edges: %w", n, ErrTooFewVertices)
	}

	phase := 0.0
	if n%2 == 0 {
		phase = 0.5
	}

	// the origin is inside the polygon, so the bounding box always contains it
	min, max := Point{}, Point{}
	vertices := make([]Point, n)
	for i := range vertices {
		theta := 2.0 * math.Pi * (float64(i) + phase) / float64(n)
		v := Point{0.0, -0.5}.Rot(theta)
		min.X, min.Y = math.Min(min.X, v.X), math.Min(min.Y, v.Y)
		max.X, max.Y = math.Max(max.X, v.X), math.Max(max.Y, v.Y)
		vertices[i] = v
	}

	if scaling != Circumcircle {
		scale := Point{1.0 / (max.X - min.X), 1.0 / (max.Y - min.Y)}
		switch scaling {
		case AutoWidth:
			scale.X = scale.Y
		case AutoHeight:
			scale.Y = scale.X
		}
		for i := range vertices {
			vertices[i] = vertices[i].Scale(scale)
		}
	}
	return NewConvexPolygon(vertices)
}

////////////////////////////////////////////////////////////////

// WaveOptions are the parameters of a water surface. Zero fields take the value of DefaultWaveOptions.
type WaveOptions struct {
	Segments int     // number of surface segments
	Length   float64 // horizontal distance per radian of the sine
	Height   float64 // amplitude
	Speed    float64 // radians per second
}

// DefaultWaveOptions are the default wave options.
var DefaultWaveOptions = WaveOptions{
	Segments: 10,
	Length:   100.0,
	Height:   10.0,
	Speed:    10.0,
}

// Wave is a body of water whose surface follows a moving sine. Animation makes the polygon concave, so it needs a triangulator that handles concave polygons such as Sweep.
type Wave struct {
	*Primitive
	WaveOptions
}

// NewWave returns a wave of the given width and height with a flat surface at y=0. The last two vertices are the bottom-right and bottom-left corners.
func NewWave(width, height float64, opts WaveOptions, t Triangulator) (*Wave, error) {
	if opts.Segments == 0 {
		opts.Segments = DefaultWaveOptions.Segments
	}
	if opts.Length == 0.0 {
		opts.Length = DefaultWaveOptions.Length
	}
	if opts.Height == 0.0 {
		opts.Height = DefaultWaveOptions.Height
	}
	if opts.Speed == 0.0 {
		opts.Speed = DefaultWaveOptions.Speed
	}
	if opts.Segments < 1 {
		return nil, fmt.Errorf("wave with %d segments: %w", opts.Segments, ErrTooFewVertices)
	}

	dx := width / float64(opts.Segments)
	vertices := make([]Point, 0, opts.Segments+3)
	for i := 0; i <= opts.Segments; i++ {
		vertices = append(vertices, Point{float64(i) * dx, 0.0})
	}
	vertices = append(vertices, Point{width, height}, Point{0.0, height})

	p, err := NewPolygon(vertices, t)
	if err != nil {
		return nil, err
	}
	return &Wave{p, opts}, nil
}

// Animate moves the surface vertices to time t in seconds. Vertices that do not move keep the triangulation valid.
func (w *Wave) Animate(t float64) {
	offset := t * w.Speed
	for i := 0; i < w.Len()-2; i++ {
		v := w.Vertex(i)
		v.Y = math.Sin(v.X/w.Length+offset) * w.Height
		w.SetVertex(i, v)
	}
}
