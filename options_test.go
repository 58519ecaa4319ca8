package lottie

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseTrimMode(t *testing.T) {
	var tests = []struct {
		s        string
		expected TrimMode
	}{
		{"", TrimModeUnset},
		{"simultaneous", TrimModeSimultaneous},
		{"Individual", TrimModeIndividual},
		{" individual\n", TrimModeIndividual},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			mode, err := ParseTrimMode(tt.s)
			test.Error(t, err)
			test.T(t, mode, tt.expected)
		})
	}

	_, err := ParseTrimMode("both")
	test.That(t, err != nil)

	var mode TrimMode
	test.Error(t, mode.Decode("individual"))
	test.T(t, mode, TrimModeIndividual)
	test.T(t, mode.String(), "individual")
	test.That(t, mode.Decode("none") != nil)
	test.T(t, mode, TrimModeIndividual)
}
