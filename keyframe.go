package lottie

import (
	"math"

	"github.com/Seanld/lottie/document"
)

// keyframe is a single entry of an animated property's "k" array.
type keyframe[T PropertyValue] struct {
	frame      float64
	start, end T
	hasStart   bool
	hasEnd     bool
	hold       bool

	easingIn, easingOut   Point
	tangentIn, tangentOut Point
}

func parseKeyframe[T PropertyValue](def document.Value) keyframe[T] {
	kf := keyframe[T]{
		frame:     def.Get("t").Float(),
		hold:      def.Get("h").Int() == 1,
		easingIn:  parseHandle(def.Get("i")),
		easingOut: parseHandle(def.Get("o")),
	}
	if s := def.Get("s"); !s.IsNull() {
		kf.start, kf.hasStart = parseValue[T](s), true
	}
	if e := def.Get("e"); !e.IsNull() {
		kf.end, kf.hasEnd = parseValue[T](e), true
	}
	kf.tangentIn = parseTangent(def.Get("ti"))
	kf.tangentOut = parseTangent(def.Get("to"))
	return kf
}

// parseHandle reads an easing handle {"x":..,"y":..}, where each coordinate is a number or an array whose first element is used.
func parseHandle(def document.Value) Point {
	return Point{def.Get("x").Float(), def.Get("y").Float()}
}

func parseTangent(def document.Value) Point {
	return Point{def.Index(0).Float(), def.Index(1).Float()}
}

// parsePoint reads a two element array.
func parsePoint(def document.Value) Point {
	return parseValue[Point](def)
}

func roundFrame(f float64) float64 {
	return math.Round(f)
}
