package lottie

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEasingLinear(t *testing.T) {
	e := NewEasing(Point{0.0, 0.0}, Point{1.0, 1.0})
	test.That(t, e.IsLinear())
	for _, x := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		test.Float(t, e.Value(x), x)
	}

	// non-trivial control points on the diagonal are linear as well
	e = NewEasing(Point{0.3, 0.3}, Point{0.6, 0.6})
	test.That(t, e.IsLinear())
	test.Float(t, e.Value(0.25), 0.25)
}

func TestEasingCurve(t *testing.T) {
	e := NewEasing(Point{0.42, 0.0}, Point{0.58, 1.0})
	test.That(t, !e.IsLinear())
	test.Float(t, e.Value(0.0), 0.0)
	test.Float(t, e.Value(1.0), 1.0)
	test.That(t, approx(e.Value(0.5), 0.5, 0.001))
	test.That(t, e.Value(0.2) < 0.2)
	test.That(t, 0.8 < e.Value(0.8))

	prev := 0.0
	for i := 1; i <= 20; i++ {
		y := e.Value(float64(i) / 20.0)
		test.That(t, prev <= y, "non-decreasing")
		prev = y
	}
}

func TestEasingBisection(t *testing.T) {
	// y(t) = x(t) for control points on the diagonal, which checks the curve inversion when forced through it
	e := Easing{Point{0.2, 0.2}, Point{0.7, 0.7}, Point{1.0, 1.0}}
	for _, x := range []float64{0.1, 0.33, 0.5, 0.77} {
		test.That(t, approx(e.at(e.tForX(x)).Y, x, 0.001))
	}
}

func TestEasingHold(t *testing.T) {
	test.That(t, HoldEasing.IsHold())
	test.That(t, !LinearEasing.IsHold())
	test.Float(t, HoldEasing.Value(0.7), 0.0)
}
