package lottie

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestShapes(t *testing.T) {
	test.String(t, Rectangle(0, 0, 10, 5).String(), "M0 0L10 0L10 5L0 5z")
	test.String(t, Rectangle(0, 0, 0, 0).String(), "")
	test.String(t, RoundedRectangle(0, 0, 10, 10, 0).String(), "M0 0L10 0L10 10L0 10z")
	test.String(t, RoundedRectangle(0, 0, 0, 0, 5).String(), "")
	test.String(t, Ellipse(0, 0, 0, 0).String(), "")

	defer setEpsilon(0.01)()
	test.T(t, RoundedRectangle(0, 0, 10, 10, 20).Bounds(), Rect{0, 0, 10, 10})
	test.T(t, Ellipse(5, 5, 5, 2).StartPos(), Point{5, 3})
	test.T(t, Circle(0, 0, 1).Bounds(), Rect{-1, -1, 2, 2})
}

func TestShapeDirection(t *testing.T) {
	pos, size := Point{50.0, 50.0}, Point{20.0, 10.0}
	clockwise := rectPath(pos, size, 0.0, 1).String()
	test.String(t, clockwise, "M40 45L60 45L60 55L40 55z")
	test.String(t, rectPath(pos, size, 0.0, 0).String(), clockwise)
	test.String(t, rectPath(pos, size, 0.0, 2).String(), clockwise)

	// only a direction of 3 draws counter-clockwise
	reversed := rectPath(pos, size, 0.0, 3).String()
	test.String(t, reversed, rectPath(pos, size, 0.0, 1).Reverse().String())
	test.That(t, reversed != clockwise, reversed)
	test.String(t, ellipsePath(pos, size, 3).String(), ellipsePath(pos, size, 1).Reverse().String())
}
