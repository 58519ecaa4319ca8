//go:build !formats

package renderers

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"
)

func TestNoFormats(t *testing.T) {
	for _, format := range []string{"webp", "avif"} {
		encode, err := New(parseScene(t), format)
		test.Error(t, err)
		test.That(t, encode(&bytes.Buffer{}, 0.0) != nil)
	}
}
