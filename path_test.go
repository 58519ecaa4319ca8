package lottie

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5, 2)
	test.That(t, p.Empty())

	p.LineTo(6, 2)
	test.That(t, !p.Empty())

	var q *Path
	test.That(t, q.Empty())
}

func TestPathString(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubeTo(10, 5, 5, 10, 0, 10)
	p.Close()
	test.String(t, p.String(), "M0 0L10 0C10 5 5 10 0 10z")

	p = &Path{}
	p.MoveTo(1.0/3.0, -0.0)
	test.String(t, p.String(), "M0.33333 0")
}

func TestPathMoveTo(t *testing.T) {
	p := &Path{}
	p.MoveTo(1, 1)
	p.MoveTo(2, 2)
	test.String(t, p.String(), "M2 2")
	test.T(t, p.StartPos(), Point{2, 2})
}

func TestPathLength(t *testing.T) {
	defer setEpsilon(1e-3)()
	test.Float(t, Rectangle(0, 0, 10, 5).Length(), 30.0)
	test.That(t, approx(Circle(0, 0, 10).Length(), 2.0*math.Pi*10.0, 0.1))
}

func TestPathArea(t *testing.T) {
	test.That(t, approx(Rectangle(0, 0, 10, 5).Area(), 50.0, 1e-9))
	test.That(t, approx(Rectangle(0, 0, 10, 5).Reverse().Area(), -50.0, 1e-9))
}

func TestPathReverse(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubeTo(10, 5, 5, 10, 0, 10)
	test.String(t, p.Reverse().String(), "M0 10C5 10 10 5 10 0L0 0")

	test.String(t, Rectangle(0, 0, 10, 5).Reverse().String(), "M0 0L0 5L10 5L10 0z")
}

func TestPathSplit(t *testing.T) {
	p := Rectangle(0, 0, 1, 1)
	p.Append(Rectangle(2, 2, 1, 1))
	ps := p.Split()
	test.T(t, len(ps), 2)
	test.String(t, ps[1].String(), "M2 2L3 2L3 3L2 3z")
}

func TestPathTransform(t *testing.T) {
	p := Rectangle(0, 0, 10, 5).Transform(Identity.Translate(1, 2).Scale(2, 2))
	test.String(t, p.String(), "M1 2L21 2L21 12L1 12z")
	test.T(t, p.StartPos(), Point{1, 2})
}

func TestPathTrim(t *testing.T) {
	line := &Path{}
	line.MoveTo(0, 0)
	line.LineTo(10, 0)

	var tests = []struct {
		p                  *Path
		start, end, offset float64
		expected           string
	}{
		{line, 0.0, 1.0, 0.0, "M0 0L10 0"},
		{line, 0.25, 0.75, 0.0, "M2.5 0L7.5 0"},
		{line, 0.75, 0.25, 0.0, "M2.5 0L7.5 0"},
		{line, 0.5, 0.5, 0.0, ""},
		{line, 0.0, 0.5, 0.25, "M2.5 0L7.5 0"},
		{line, 0.5, 1.0, 0.25, "M7.5 0L10 0M0 0L2.5 0"},
		{line, 0.0, 0.5, -0.25, "M7.5 0L10 0M0 0L2.5 0"},
		{Rectangle(0, 0, 10, 5), 0.0, 0.5, 0.0, "M0 0L10 0L10 5"},
		{Rectangle(0, 0, 10, 5), 0.5, 1.0, 0.0, "M10 5L0 5L0 0"},
		{&Path{}, 0.0, 0.5, 0.0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, tt.p.Trim(tt.start, tt.end, tt.offset).String(), tt.expected)
		})
	}
}

func TestPathTrimCubic(t *testing.T) {
	defer setEpsilon(1e-3)()
	p := Circle(0, 0, 10)
	half := p.Trim(0.0, 0.5, 0.0)
	test.That(t, approx(half.Length(), p.Length()/2.0, 0.01))
	test.T(t, half.Pos(), Point{0, 10})
}
