package lottie

import (
	"testing"

	"github.com/Seanld/lottie/document"
	"github.com/tdewolff/test"
)

func TestTrimPathCompose(t *testing.T) {
	outer := &TrimPath{start: NewProperty(50.0), end: NewProperty(100.0)}
	inner := &TrimPath{start: NewProperty(0.0), end: NewProperty(50.0)}
	inner.applyTrim(outer)
	test.Float(t, inner.Start(), 50.0)
	test.Float(t, inner.End(), 75.0)
	test.Float(t, inner.Offset(), 0.0)
}

func TestTrimPathMode(t *testing.T) {
	def := document.MustParseString(`{"ty":"tm","s":{"a":0,"k":0},"e":{"a":0,"k":50},"o":{"a":0,"k":0},"m":2}`)
	tm := parseTrimPath(newParser(Options{}), nil, def)
	test.That(t, !tm.Simultaneous())

	tm = parseTrimPath(newParser(Options{ForceTrimMode: TrimModeSimultaneous}), nil, def)
	test.That(t, tm.Simultaneous())

	tm = parseTrimPath(newParser(Options{}), nil, document.MustParseString(`{"ty":"tm"}`))
	test.That(t, tm.Simultaneous())
	test.Float(t, tm.End(), 100.0)
}

func TestTrimPathTrim(t *testing.T) {
	line := &Path{}
	line.MoveTo(0.0, 0.0)
	line.LineTo(10.0, 0.0)

	tm := &TrimPath{start: NewProperty(25.0), end: NewProperty(75.0)}
	test.T(t, tm.Trim(line).String(), "M2.5 0L7.5 0")

	tm = &TrimPath{start: NewProperty(40.0), end: NewProperty(40.0)}
	test.That(t, tm.Trim(line).Empty())
}
