package lottie

import (
	"testing"

	"github.com/Seanld/lottie/document"
	"github.com/tdewolff/test"
)

func parseTestProperty[T PropertyValue](s string) Property[T] {
	return parseProperty[T](newParser(Options{}), document.MustParseString(s))
}

func TestPropertyConstant(t *testing.T) {
	p := parseTestProperty[float64](`{"a":0,"k":5}`)
	test.That(t, !p.Animated())
	test.That(t, !p.Update(10.0))
	test.Float(t, p.Value(), 5.0)

	q := parseTestProperty[Point](`{"a":0,"k":[1,2,3]}`)
	test.T(t, q.Value(), Point{1, 2})

	c := parseTestProperty[Vec4](`{"a":0,"k":[1,0.5,0]}`)
	test.T(t, c.Value(), Vec4{1.0, 0.5, 0.0, 1.0})

	var zero Property[float64]
	test.That(t, !zero.Update(3.0))
	test.Float(t, zero.Value(), 0.0)
}

func TestPropertyLinear(t *testing.T) {
	p := parseTestProperty[float64](`{"a":1,"k":[
		{"t":0,"s":[0],"o":{"x":[0],"y":[0]},"i":{"x":[1],"y":[1]}},
		{"t":10,"s":[100],"o":{"x":[0],"y":[0]},"i":{"x":[1],"y":[1]}},
		{"t":20,"s":[50]}
	]}`)
	test.That(t, p.Animated())

	var tests = []struct {
		frame    float64
		expected float64
	}{
		{-5.0, 0.0},
		{0.0, 0.0},
		{5.0, 50.0},
		{10.0, 100.0},
		{15.0, 75.0},
		{20.0, 50.0},
		{100.0, 50.0},
		{2.5, 25.0}, // seeks back from the cursor
	}
	for _, tt := range tests {
		test.That(t, p.Update(tt.frame))
		test.Float(t, p.Value(), tt.expected)
	}
}

func TestPropertyStartEnd(t *testing.T) {
	// older documents give the end value in the keyframe itself
	p := parseTestProperty[float64](`{"a":1,"k":[
		{"t":0,"s":[0],"e":[100],"o":{"x":0,"y":0},"i":{"x":1,"y":1}},
		{"t":10}
	]}`)
	p.Update(5.0)
	test.Float(t, p.Value(), 50.0)
	p.Update(10.0)
	test.Float(t, p.Value(), 100.0)
}

func TestPropertyHold(t *testing.T) {
	p := parseTestProperty[float64](`{"a":1,"k":[
		{"t":0,"s":[0],"h":1},
		{"t":10,"s":[100]}
	]}`)
	p.Update(5.0)
	test.Float(t, p.Value(), 0.0)
	p.Update(9.99)
	test.Float(t, p.Value(), 0.0)
	p.Update(10.0)
	test.Float(t, p.Value(), 100.0)
}

func TestPropertyColor(t *testing.T) {
	p := parseTestProperty[Vec4](`{"a":1,"k":[
		{"t":0,"s":[1,0,0,1],"o":{"x":0,"y":0},"i":{"x":1,"y":1}},
		{"t":10,"s":[0,0,1,1]}
	]}`)
	p.Update(5.0)
	test.T(t, p.Value(), Vec4{0.5, 0.0, 0.5, 1.0})
}

func TestPropertySpatial(t *testing.T) {
	defer setEpsilon(0.5)()
	p := parseTestProperty[Point](`{"a":1,"k":[
		{"t":0,"s":[0,0],"to":[0,50],"ti":[0,50],"o":{"x":0,"y":0},"i":{"x":1,"y":1}},
		{"t":10,"s":[100,0]}
	]}`)
	p.Update(0.0)
	test.T(t, p.Value(), Point{0.0, 0.0})
	p.Update(5.0)
	test.T(t, p.Value(), Point{50.0, 37.5})
	p.Update(10.0)
	test.T(t, p.Value(), Point{100.0, 0.0})

	// tangents along the chord keep a straight line
	q := parseTestProperty[Point](`{"a":1,"k":[
		{"t":0,"s":[0,0],"to":[10,0],"ti":[-10,0],"o":{"x":0,"y":0},"i":{"x":1,"y":1}},
		{"t":10,"s":[100,0]}
	]}`)
	q.Update(5.0)
	test.T(t, q.Value(), Point{50.0, 0.0})
}

func TestPropertyClone(t *testing.T) {
	p := parseTestProperty[Vector](`{"a":0,"k":[1,2,3]}`)
	q := p.Clone()
	q.Value()[0] = 10.0
	test.T(t, p.Value(), Vector{1, 2, 3})
}

func TestPropertyExpression(t *testing.T) {
	ps := newParser(Options{})
	ps.indexEffects(document.MustParseString(`[{"ef":[{"ty":0,"nm":"Size","ef":[],"v":{"a":0,"k":42}}]}]`))
	p := parseProperty[float64](ps, document.MustParseString(`{"a":0,"k":0,"x":"effect('Size')('Slider')"}`))
	test.Float(t, p.Value(), 42.0)
}
