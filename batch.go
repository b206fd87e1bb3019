package shapes2d

import (
	"image/color"
)

// Vertex is a screen-space vertex with a color. Z is always zero.
type Vertex struct {
	X, Y, Z float32
	Color   color.RGBA
}

// Buffers are the indexed vertex buffers of a batch: a triangle list for fills and a line list for strokes.
type Buffers struct {
	TriangleVertices []Vertex
	TriangleIndices  []uint32
	LineVertices     []Vertex
	LineIndices      []uint32
}

// Reset empties the buffers but keeps their capacity.
func (b *Buffers) Reset() {
	b.TriangleVertices = b.TriangleVertices[:0]
	b.TriangleIndices = b.TriangleIndices[:0]
	b.LineVertices = b.LineVertices[:0]
	b.LineIndices = b.LineIndices[:0]
}

// Empty returns true if there is nothing to draw.
func (b *Buffers) Empty() bool {
	return len(b.TriangleIndices) == 0 && len(b.LineIndices) == 0
}

// Rasterizer consumes the buffers of a batch. Coordinates are in pixels with the origin at the top-left and Y pointing down.
type Rasterizer interface {
	DrawIndexedTriangles(vertices []Vertex, indices []uint32)
	DrawIndexedLines(vertices []Vertex, indices []uint32)
}

// Stats are the numbers of triangles, lines, and draw calls of a drawn frame.
type Stats struct {
	Triangles int
	Lines     int
	DrawCalls int
}

// Batch is an ordered collection of primitives that is drawn with at most two draw calls. Later primitives are drawn over earlier ones.
type Batch struct {
	Primitives []*Primitive

	buffers Buffers
	points  []Point
}

// NewBatch returns a batch holding the given primitives.
func NewBatch(prims ...*Primitive) *Batch {
	return &Batch{
		Primitives: prims,
	}
}

// Len returns the number of primitives.
func (b *Batch) Len() int {
	return len(b.Primitives)
}

// Add appends primitives to the batch.
func (b *Batch) Add(prims ...*Primitive) {
	b.Primitives = append(b.Primitives, prims...)
}

// Remove removes the first occurrence of p and reports whether it was found.
func (b *Batch) Remove(p *Primitive) bool {
	for i, q := range b.Primitives {
		if q == p {
			b.Primitives = append(b.Primitives[:i], b.Primitives[i+1:]...)
			return true
		}
	}
	return false
}

// Build assembles the vertex and index buffers of all visible primitives, triangulating shapes whose vertices changed. The returned buffers are reused by the next call to Build.
func (b *Batch) Build() *Buffers {
	buf := &b.buffers
	buf.Reset()
	for _, p := range b.Primitives {
		if !p.Visible() {
			continue
		}

		// fill and stroke share the same transformed vertices
		b.points = p.AppendTransformed(b.points[:0])

		if !IsTransparent(p.Stroke) {
			offset := uint32(len(buf.LineVertices))
			buf.LineVertices = appendVertices(buf.LineVertices, b.points, p.Stroke)
			n := uint32(len(b.points))
			for i := uint32(0); i < n; i++ {
				buf.LineIndices = append(buf.LineIndices, offset+i, offset+(i+1)%n)
			}
		}

		if p.IsShape() && !IsTransparent(p.Fill) {
			stale := !p.cache.valid || p.cache.generation != p.generation
			indices, err := p.triangles()
			if err != nil {
				if stale {
					Logger().Warn("fill skipped", "primitive", p, "error", err)
				}
				continue
			} else if stale {
				Logger().Debug("triangulated", "primitive", p, "triangles", len(indices)/3)
			}

			offset := uint32(len(buf.TriangleVertices))
			buf.TriangleVertices = appendVertices(buf.TriangleVertices, b.points, p.Fill)
			for _, i := range indices {
				buf.TriangleIndices = append(buf.TriangleIndices, offset+uint32(i))
			}
		}
	}
	return buf
}

// Draw builds the buffers and passes them to r, issuing no draw call for an empty buffer.
func (b *Batch) Draw(r Rasterizer) Stats {
	buf := b.Build()
	stats := Stats{
		Triangles: len(buf.TriangleIndices) / 3,
		Lines:     len(buf.LineIndices) / 2,
	}
	if len(buf.TriangleIndices) != 0 {
		r.DrawIndexedTriangles(buf.TriangleVertices, buf.TriangleIndices)
		stats.DrawCalls++
	}
	if len(buf.LineIndices) != 0 {
		r.DrawIndexedLines(buf.LineVertices, buf.LineIndices)
		stats.DrawCalls++
	}
	Logger().Debug("batch drawn", "primitives", len(b.Primitives), "triangles", stats.Triangles, "lines", stats.Lines, "draw_calls", stats.DrawCalls)
	return stats
}

func appendVertices(dst []Vertex, points []Point, c color.RGBA) []Vertex {
	for _, p := range points {
		dst = append(dst, Vertex{X: float32(p.X), Y: float32(p.Y), Color: c})
	}
	return dst
}
