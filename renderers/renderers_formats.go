//go:build formats

package renderers

import (
	"fmt"
	"io"

	"github.com/Kagami/go-avif"
	"github.com/Seanld/lottie"
	"github.com/Seanld/lottie/renderers/rasterizer"
	webp "github.com/kolesa-team/go-webp/encoder"
)

// WebP returns a WebP encoder that uses libwebp and accepts the options Resolution and github.com/kolesa-team/go-webp/encoder.*Options.
func WebP(scene *lottie.Scene, opts ...interface{}) Encoder {
	resolution := Resolution(1.0)
	var options *webp.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case Resolution:
			resolution = o
		case *webp.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown WebP option: %T(%v)", opt, opt))
		}
	}
	if options == nil {
		var err error
		if options, err = webp.NewLossyEncoderOptions(webp.PresetDefault, 75); err != nil {
			return errorWriter(err)
		}
	}
	return func(w io.Writer, frame float64) error {
		img := rasterizer.Draw(scene, frame, float64(resolution))
		enc, err := webp.NewEncoder(img, options)
		if err != nil {
			return err
		}
		return enc.Encode(w)
	}
}

// AVIF returns an AVIF encoder that uses libaom and accepts the options Resolution and github.com/Kagami/go-avif.*Options.
func AVIF(scene *lottie.Scene, opts ...interface{}) Encoder {
	resolution := Resolution(1.0)
	var options *avif.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case Resolution:
			resolution = o
		case *avif.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown AVIF option: %T(%v)", opt, opt))
		}
	}
	return func(w io.Writer, frame float64) error {
		img := rasterizer.Draw(scene, frame, float64(resolution))
		return avif.Encode(w, img, options)
	}
}
