package lottie

import (
	"testing"

	"github.com/Seanld/lottie/document"
	"github.com/tdewolff/test"
)

func parseTestFreeForm(s string) *FreeForm {
	return parseFreeForm(newParser(Options{}), document.MustParseString(s))
}

func TestFreeFormStatic(t *testing.T) {
	var tests = []struct {
		def      string
		expected string
	}{
		{`{"k":{"c":false,"v":[[0,0]],"i":[[0,0]],"o":[[0,0]]}}`, ""},
		{`{"k":{"c":true,"v":[],"i":[],"o":[]}}`, ""},
		{`{"k":{"c":false,"v":[[0,0],[10,0]],"i":[[0,0],[-5,5]],"o":[[5,5],[0,0]]}}`, "M0 0C5 5 5 5 10 0"},
		{`{"k":{"c":true,"v":[[0,0],[10,0]],"i":[[0,0],[-5,5]],"o":[[5,5],[0,0]]}}`, "M0 0C5 5 5 5 10 0C10 0 0 0 0 0z"},
		{`{"k":[{"c":false,"v":[[0,0],[10,0]],"i":[[0,0],[0,0]],"o":[[0,0],[0,0]]}]}`, "M0 0C0 0 10 0 10 0"},
	}
	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			f := parseTestFreeForm(tt.def)
			test.That(t, !f.Animated())
			test.T(t, f.Build(0.0).String(), tt.expected)
		})
	}
}

func TestFreeFormAnimated(t *testing.T) {
	f := parseTestFreeForm(`{"a":1,"k":[
		{"t":0,"s":[{"c":false,"v":[[0,0],[10,0]],"i":[[0,0],[0,0]],"o":[[0,0],[0,0]]}],"o":{"x":0,"y":0},"i":{"x":1,"y":1}},
		{"t":10,"s":[{"c":true,"v":[[0,10],[20,0]],"i":[[0,0],[0,0]],"o":[[0,0],[0,0]]}]}
	]}`)
	test.That(t, f.Animated())
	test.That(t, !f.Closed(5.0))
	test.That(t, f.Closed(10.0))

	test.T(t, f.Build(0.0).String(), "M0 0C0 0 10 0 10 0")
	test.T(t, f.Build(5.0).String(), "M0 5C0 5 15 0 15 0")
	test.T(t, f.Build(10.0).String(), "M0 10C0 10 20 0 20 0C20 0 0 10 0 10z")

	// clones evaluate independently
	g := f.clone()
	test.T(t, g.Build(0.0).String(), "M0 0C0 0 10 0 10 0")
	test.T(t, f.Build(10.0).String(), "M0 10C0 10 20 0 20 0C20 0 0 10 0 10z")
}

func TestFreeFormMismatchedKeyframes(t *testing.T) {
	f := parseTestFreeForm(`{"a":1,"k":[
		{"t":0,"s":[{"c":false,"v":[[0,0],[10,0]],"i":[[0,0],[0,0]],"o":[[0,0],[0,0]]}]},
		{"t":10,"s":[{"c":false,"v":[[0,0],[10,0],[20,0]],"i":[[0,0],[0,0],[0,0]],"o":[[0,0],[0,0],[0,0]]}]}
	]}`)
	test.That(t, f.Build(5.0).Empty())
}
