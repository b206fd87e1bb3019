package shapes2d

import (
	"fmt"
	"math"
)

// GridKind is the kind of tiling, its value is the number of edges of each cell.
type GridKind int

// see GridKind
const (
	TriangleGrid GridKind = 3
	SquareGrid   GridKind = 4
	HexagonGrid  GridKind = 6
)

func (kind GridKind) String() string {
	switch kind {
	case TriangleGrid:
		return "Triangle"
	case SquareGrid:
		return "Square"
	case HexagonGrid:
		return "Hexagon"
	}
	return fmt.Sprintf("GridKind(%d)", int(kind))
}

// ParseGridKind parses triangle, square, or hexagon (or their number of edges).
func ParseGridKind(s string) (GridKind, error) {
	switch s {
	case "triangle", "Triangle", "3":
		return TriangleGrid, nil
	case "square", "Square", "4":
		return SquareGrid, nil
	case "hexagon", "Hexagon", "6":
		return HexagonGrid, nil
	}
	return 0, fmt.Errorf("unknown grid kind %q", s)
}

// Cell is the placement of a single regular polygon in a grid.
type Cell struct {
	Position Point
	Rotation float64 // in radians
	Edges    int
}

// ratio returns the horizontal pitch relative to the cell scale, and the number of rows per cell height.
func (kind GridKind) ratio() (float64, float64) {
	switch kind {
	case TriangleGrid:
		return math.Sqrt(3.0) / 2.0, 2.0
	case SquareGrid:
		return 1.0, 1.0
	case HexagonGrid:
		return math.Sqrt(3.0) / 2.0, 4.0 / 3.0
	}
	panic(fmt.Sprintf("unknown grid kind %d", int(kind)))
}

// GenerateGrid returns the cells that tile a viewport of the given size with regular polygons stretched by scale. Neighbouring triangles and hexagons are rotated in opposite directions so that they interlock. Cells at the edges may extend past the viewport. A negative viewport has no cells. It panics for an unknown kind or a scale that is not positive.
func GenerateGrid(kind GridKind, scale, viewport Point) []Cell {
	rx, p := kind.ratio()
	if !(0.0 < scale.X) || !(0.0 < scale.Y) {
		panic(fmt.Sprintf("grid scale %v must be positive", scale))
	} else if !(0.0 <= viewport.X) || !(0.0 <= viewport.Y) {
		return nil
	}
	rows := int(math.Ceil(viewport.Y/(scale.Y/p))) + 1
	cols := int(math.Floor(viewport.X / (rx * scale.X)))

	cells := make([]Cell, 0, (rows+1)*(cols+2))
	for y := 0; y <= rows; y++ {
		pos := Point{0.0, float64(y) * scale.Y / p}
		switch kind {
		case TriangleGrid:
			pos.X += rx * scale.X * 2.0 / 3.0
			if y%2 == 1 {
				pos.X -= rx * scale.X / 3.0
			}
		case SquareGrid:
			pos = pos.Add(scale.Mul(0.5))
		case HexagonGrid:
			pos.Y -= scale.Y / 4.0
			if y%2 == 1 {
				pos.X += rx * scale.X / 2.0
			}
		}

		for x := 0; x <= cols+1; x++ {
			even := x%2 == y%2
			rot := 0.0
			if kind != SquareGrid {
				rot = math.Pi / 2.0
				if even {
					rot = -rot
				}
			}
			cells = append(cells, Cell{
				Position: pos,
				Rotation: rot,
				Edges:    int(kind),
			})

			dx := rx * scale.X
			if kind == TriangleGrid {
				if even {
					dx *= 2.0 / 3.0
				} else {
					dx *= 4.0 / 3.0
				}
			}
			pos.X += dx
		}
	}
	return cells
}

// NewGrid returns the primitives of GenerateGrid as regular polygons without stroke, each filled with a color from fill. A nil fill gives white cells. A scale that is not positive is an error.
func NewGrid(kind GridKind, scale, viewport Point, fill ColorFunc) ([]*Primitive, error) {
	if !(0.0 < scale.X) || !(0.0 < scale.Y) {
		return nil, fmt.Errorf("grid scale %v must be positive", scale)
	} else if fill == nil {
		fill = Solid(RGB(255, 255, 255))
	}
	cells := GenerateGrid(kind, scale, viewport)
	prims := make([]*Primitive, 0, len(cells))
	for _, cell := range cells {
		p, err := RegularPolygon(cell.Edges, AutoHeight)
		if err != nil {
			return nil, err
		}
		p.Position = cell.Position
		p.Rotation = cell.Rotation
		p.Stretch = scale
		p.Fill = fill()
		prims = append(prims, p)
	}
	Logger().Debug("grid generated", "kind", kind, "scale", scale, "viewport", viewport, "cells", len(prims))
	return prims, nil
}
