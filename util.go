package lottie

import (
	"fmt"
	"image/color"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func clamp(x, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, x))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. It is also used for sizes and scales.
type Point struct {
	X, Y float64
}

func (p Point) IsZero() bool {
	return equal(p.X, 0.0) && equal(p.Y, 0.0)
}

func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product, which is zero for collinear vectors.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Interpolate returns a point on the line between p and q at fraction t.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Vec4 is a four component vector, used for RGBA colors with components in [0,1].
type Vec4 [4]float64

func (v Vec4) IsZero() bool {
	return v == Vec4{}
}

func (v Vec4) Interpolate(w Vec4, t float64) Vec4 {
	for i := range v {
		v[i] += t * (w[i] - v[i])
	}
	return v
}

// RGBA converts the vector to an alpha-premultiplied color, with its alpha multiplied by opacity.
func (v Vec4) RGBA(opacity float64) color.RGBA {
	a := clamp(v[3]*opacity, 0.0, 1.0)
	return color.RGBA{
		R: uint8(clamp(v[0], 0.0, 1.0)*a*255.0 + 0.5),
		G: uint8(clamp(v[1], 0.0, 1.0)*a*255.0 + 0.5),
		B: uint8(clamp(v[2], 0.0, 1.0)*a*255.0 + 0.5),
		A: uint8(a*255.0 + 0.5),
	}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", v[0], v[1], v[2], v[3])
}

// Vector is a variable length vector of scalars, used for gradient data.
type Vector []float64

func (v Vector) IsZero() bool {
	return len(v) == 0
}

// Interpolate returns the element-wise interpolation, the result has the length of the shortest input.
func (v Vector) Interpolate(w Vector, t float64) Vector {
	n := min(len(v), len(w))
	r := make(Vector, n)
	for i := 0; i < n; i++ {
		r[i] = v[i] + t*(w[i]-v[i])
	}
	return r
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle, as returned by Path.Bounds.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Rotate(30).Translate(20,0) will first translate 20 points horizontally and then rotate 30 degrees clockwise in the y-down coordinate system of Lottie documents.
type Matrix [2][3]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

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

// Rotate rotates by rot degrees.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(degToRad(rot))
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// Scale scales by x and y. Zero scales are allowed, layers scaled to zero simply collapse.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

func (m Matrix) Shear(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, x, 0.0},
		{y, 1.0, 0.0},
	})
}

func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// ScaleFactor returns the average linear scale of the transformation, used to scale stroke widths.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

func (m Matrix) Equals(q Matrix) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if !equal(m[i][j], q[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}

////////////////////////////////////////////////////////////////

// Gauss-Legendre quadrature integration from a to b with n=5
// see https://pomax.github.io/bezierinfo/legendre-gauss.html for more values
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.90618*c + d)
	Qd2 := f(-0.538469*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469*c + d)
	Qd5 := f(0.90618*c + d)
	return c * (0.236927*(Qd1+Qd5) + 0.478629*(Qd2+Qd4) + 0.568889*Qd3)
}

// find value x for which f(x) = y in the interval x in [xmin, xmax] using the bisection method, f must be non-decreasing
func bisectionMethod(f func(float64) float64, y, xmin, xmax float64, iterations int) float64 {
	x := (xmin + xmax) / 2.0
	for n := 0; n < iterations; n++ {
		dy := f(x) - y
		if equal(dy, 0.0) {
			return x
		} else if dy > 0.0 {
			xmax = x
		} else {
			xmin = x
		}
		x = (xmin + xmax) / 2.0
	}
	return x
}
