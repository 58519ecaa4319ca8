//go:build !formats

package renderers

import (
	"fmt"

	"github.com/Seanld/lottie"
)

// WebP returns a WebP encoder that uses libwebp and accepts the options Resolution and github.com/kolesa-team/go-webp/encoder.*Options.
func WebP(scene *lottie.Scene, opts ...interface{}) Encoder {
	return errorWriter(fmt.Errorf("unsupported WebP: build with the formats tag and CGO enabled"))
}

// AVIF returns an AVIF encoder that uses libaom and accepts the options Resolution and github.com/Kagami/go-avif.*Options.
func AVIF(scene *lottie.Scene, opts ...interface{}) Encoder {
	return errorWriter(fmt.Errorf("unsupported AVIF: build with the formats tag and CGO enabled"))
}
