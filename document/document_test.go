package document

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	v, err := ParseString(`{"a": 1.5, "b": [1, 2, 3], "c": "str\n", "d": {"e": true}, "f": null}`)
	test.Error(t, err)
	test.That(t, v.IsObject())
	test.Float(t, v.Get("a").Float(), 1.5)
	test.T(t, v.Get("b").Floats(), []float64{1, 2, 3})
	test.Float(t, v.Get("b").Float(), 1.0)
	test.String(t, v.Get("c").Text(), "str\n")
	test.That(t, v.Get("d").Get("e").Bool())
	test.That(t, v.Get("f").IsNull())
	test.That(t, v.Has("f"))
	test.That(t, !v.Has("g"))
	test.That(t, v.Get("g").IsNull())
	test.T(t, v.Len(), 5)
}

func TestParseErrors(t *testing.T) {
	var tests = []string{
		``,
		`{`,
		`{"a" 1}`,
		`[1, 2`,
		`{"a": 1} 2`,
		`{1: 2}`,
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt))
			test.That(t, err != nil)
		})
	}
}

func TestParseDepth(t *testing.T) {
	defer func(depth int) { MaxDepth = depth }(MaxDepth)
	MaxDepth = 3

	_, err := ParseString(`[[[1]]]`)
	test.Error(t, err)
	_, err = ParseString(`[[[[1]]]]`)
	test.That(t, err != nil)
}

func TestValueDefaults(t *testing.T) {
	v := MustParseString(`{"n": 2.6, "s": "x", "b": false, "a": []}`)
	test.T(t, v.Get("n").Int(), 3)
	test.T(t, v.Get("s").Int(), 0)
	test.T(t, v.Get("s").IntOr(7), 7)
	test.Float(t, v.Get("missing").FloatOr(100.0), 100.0)
	test.Float(t, v.Get("a").FloatOr(4.0), 4.0)
	test.Float(t, v.Get("b").FloatOr(4.0), 0.0)
	test.That(t, !v.Get("b").Bool())
	test.String(t, v.Get("n").Text(), "")
	test.T(t, v.Get("n").Floats(), []float64{2.6})
	test.T(t, v.Get("a").Index(3).IsNull(), true)
	test.T(t, v.Index(0).IsNull(), true)
}

func TestValueDuplicateKeys(t *testing.T) {
	v := MustParseString(`{"a": 1, "a": 2}`)
	test.Float(t, v.Get("a").Float(), 2.0)
}

func TestValueWith(t *testing.T) {
	v := MustParseString(`{"a": 1, "b": 2}`)
	w := v.With("a", NewString("x"))
	test.String(t, w.Get("a").Text(), "x")
	test.Float(t, v.Get("a").Float(), 1.0)
	test.String(t, w.String(), `{"b":2,"a":"x"}`)
}

func TestValueString(t *testing.T) {
	v := NewObject(Member{"k", NewFloats(1, 2.5)}, Member{"t", NewBool(true)}, Member{"n", Value{}})
	test.String(t, v.String(), `{"k":[1,2.5],"t":true,"n":null}`)
	test.String(t, Kind(Array).String(), "array")
}
