package shapes2d

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the tolerance used by Equal and Point.Equals.
var Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', 5, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate or a two-dimensional scale factor.
type Point struct {
	X, Y float64
}

// One is the identity scale.
var One = Point{1.0, 1.0}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// IsNaN returns true if either coordinate is NaN or infinite.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Scale multiplies x and y component-wise by q.
func (p Point) Scale(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

// Rot rotates OP by phi radians, clockwise on screen since Y points down.
func (p Point) Rot(phi float64) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		cosphi*p.X - sinphi*p.Y,
		sinphi*p.X + cosphi*p.Y,
	}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// LengthSquared returns |OP|^2.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", ftos(p.X), ftos(p.Y))
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations. Concatenated transformations are evaluated right-to-left, so Identity.Translate(x, y).Rotate(rot) first rotates and then translates.
type Matrix [2][3]float64

// Identity is the identity transformation.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul returns the transformation that applies q first and then m.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot applies the transformation to P.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate rotates by rot radians.
func (m Matrix) Rotate(rot float64) Matrix {
	if rot == 0.0 {
		return m
	}
	sintheta, costheta := math.Sincos(rot)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%v, %v, %v; %v, %v, %v; 0, 0, 1]", ftos(m[0][0]), ftos(m[0][1]), ftos(m[0][2]), ftos(m[1][0]), ftos(m[1][1]), ftos(m[1][2]))
}

////////////////////////////////////////////////////////////////

// polygonArea returns the signed shoelace area of the closed polygon, positive when the vertices run clockwise on screen.
func polygonArea(vertices []Point) float64 {
	area := 0.0
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		area += p.PerpDot(q)
	}
	return area / 2.0
}

// triangleArea returns the signed area of the triangle ABC.
func triangleArea(a, b, c Point) float64 {
	return b.Sub(a).PerpDot(c.Sub(a)) / 2.0
}
