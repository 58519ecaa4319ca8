package lottie

import (
	"testing"

	"github.com/Seanld/lottie/document"
	"github.com/tdewolff/test"
)

func TestRepeaterOpacities(t *testing.T) {
	def := document.MustParseString(`{"ty":"rp","c":{"a":0,"k":3},"o":{"a":0,"k":0},"tr":{"ty":"tr",
		"p":{"a":0,"k":[10,0]},"so":{"a":0,"k":100},"eo":{"a":0,"k":0}}}`)
	rp := parseRepeater(newParser(Options{}), nil, def)
	rp.update(0.0)
	test.T(t, rp.Copies(), 3)

	opacities := rp.Transform().Opacities()
	test.T(t, len(opacities), 3)
	for i, expected := range []float64{100.0, 66.667, 33.333} {
		test.That(t, approx(opacities[i], expected, 0.001))
		test.That(t, 0.0 <= opacities[i] && opacities[i] <= 100.0)
	}
	test.Float(t, rp.Transform().OpacityAt(0), 1.0)
	test.Float(t, rp.Transform().OpacityAt(5), 1.0)
}

func TestRepeaterDefaults(t *testing.T) {
	rp := parseRepeater(newParser(Options{}), nil, document.MustParseString(`{"ty":"rp","tr":{"ty":"tr"}}`))
	rp.update(0.0)
	test.T(t, rp.Copies(), 1)
	test.T(t, rp.Transform().Opacities(), []float64{100.0})

	q := rp.clone(nil).(*Repeater)
	test.That(t, q.Transform() != rp.Transform())
	test.That(t, q.Transform().Parent() == Node(q))
}
