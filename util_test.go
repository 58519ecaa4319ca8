package lottie

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	defer setEpsilon(0.01)()
	p := Point{3, 4}
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Div(3.0), Point{1, 1.33})
	test.Float(t, p.Dot(Point{3, 0}), 9.0)
	test.Float(t, p.PerpDot(Point{3, 0}), -12.0)
	test.Float(t, p.Length(), 5.0)
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.String(t, p.String(), "(3,4)")
}

func TestMatrix(t *testing.T) {
	defer setEpsilon(1e-6)()
	p := Point{3, 4}
	test.T(t, Identity.Translate(2.0, 2.0).Dot(p), Point{5.0, 6.0})
	test.T(t, Identity.Scale(2.0, 2.0).Dot(p), Point{6.0, 8.0})
	test.T(t, Identity.Rotate(90.0).Dot(p), Point{-4.0, 3.0})
	test.T(t, Identity.Shear(1.0, 0.0).Dot(p), Point{7.0, 4.0})

	test.T(t, Identity.Translate(5.0, -2.0).Rotate(90.0).Dot(p), Point{1.0, 1.0})
	test.Float(t, Identity.Scale(2.0, 8.0).ScaleFactor(), 4.0)
	test.Float(t, Identity.Scale(0.0, 1.0).Det(), 0.0)
}

func TestHex(t *testing.T) {
	defer setEpsilon(1e-6)()
	test.T(t, Hex("#fff"), Vec4{1.0, 1.0, 1.0, 1.0})
	test.T(t, Hex("f00"), Vec4{1.0, 0.0, 0.0, 1.0})
	test.T(t, Hex("#00ff0080"), Vec4{0.0, 1.0, 0.0, 128.0 / 255.0})
	test.T(t, Hex("#0000"), Vec4{0.0, 0.0, 0.0, 0.0})
	test.T(t, Hex("zzz"), Vec4{0.0, 0.0, 0.0, 1.0})
	test.T(t, Hex("#12345"), Vec4{0.0, 0.0, 0.0, 1.0})
}

func TestVec4RGBA(t *testing.T) {
	test.T(t, Vec4{1.0, 0.0, 0.0, 1.0}.RGBA(1.0), color.RGBA{255, 0, 0, 255})
	test.T(t, Vec4{1.0, 0.0, 0.0, 1.0}.RGBA(0.5), color.RGBA{128, 0, 0, 128})
	test.T(t, Vec4{2.0, -1.0, 0.0, 1.0}.RGBA(2.0), color.RGBA{255, 0, 0, 255})
}

func TestVectorInterpolate(t *testing.T) {
	test.T(t, Vector{0, 10, 20}.Interpolate(Vector{10, 20}, 0.5), Vector{5, 15})
}
