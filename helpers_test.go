package lottie

import (
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() {
		Epsilon = origEpsilon
	}
}

func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func parseScene(t *testing.T, s string) *Scene {
	t.Helper()
	scene, err := ParseScene(strings.NewReader(s), Options{})
	test.Error(t, err)
	return scene
}

// record renders a frame of the scene into a new recorder.
func record(scene *Scene, frame float64) *Recorder {
	w, h := scene.Size()
	rec := NewRecorder(w, h)
	scene.Render(rec, frame)
	return rec
}
