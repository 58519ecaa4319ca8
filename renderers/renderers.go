// Package renderers selects the encoder of an output format by its file extension.
package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Seanld/lottie"
	"github.com/Seanld/lottie/renderers/rasterizer"
	"github.com/Seanld/lottie/renderers/svg"
	"golang.org/x/image/tiff"
)

// Encoder writes a frame of a scene.
type Encoder = func(w io.Writer, frame float64) error

// Resolution is the number of pixels per unit of the scene for raster formats.
type Resolution float64

type Options struct {
	Resolution
	JPG  *jpeg.Options
	GIF  *gif.Options
	TIFF *tiff.Options
	SVG  *svg.Options
}

// Formats are the supported formats, WebP and AVIF need the formats build tag.
var Formats = []string{"png", "jpg", "gif", "tiff", "svg", "svgz", "webp", "avif"}

// New returns the encoder for a format given as a file extension, such as "png" or ".svgz". It accepts the options Resolution, *jpeg.Options, *gif.Options, *tiff.Options and *svg.Options, and for WebP and AVIF their encoder options.
func New(scene *lottie.Scene, format string, opts ...interface{}) (Encoder, error) {
	options := Options{
		Resolution: 1.0,
	}
	var extra []interface{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case Resolution:
			options.Resolution = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		default:
			extra = append(extra, opt)
		}
	}

	format = strings.TrimPrefix(strings.ToLower(format), ".")
	switch format {
	case "webp":
		return WebP(scene, append([]interface{}{options.Resolution}, extra...)...), nil
	case "avif":
		return AVIF(scene, append([]interface{}{options.Resolution}, extra...)...), nil
	}
	if 0 < len(extra) {
		return nil, fmt.Errorf("unknown option: %T(%v)", extra[0], extra[0])
	}

	resolution := float64(options.Resolution)
	switch format {
	case "png":
		return rasterizer.PNGWriter(scene, resolution), nil
	case "jpg", "jpeg":
		return rasterizer.JPGWriter(scene, resolution, options.JPG), nil
	case "gif":
		return rasterizer.GIFWriter(scene, resolution, options.GIF), nil
	case "tif", "tiff":
		return rasterizer.TIFFWriter(scene, resolution, options.TIFF), nil
	case "svg", "svgz":
		if format == "svgz" && (options.SVG == nil || options.SVG.Compression == 0) {
			svgOptions := svg.DefaultOptions
			if options.SVG != nil {
				svgOptions = *options.SVG
			}
			svgOptions.Compression = -1
			options.SVG = &svgOptions
		}
		return svg.Writer(scene, options.SVG), nil
	}
	return nil, fmt.Errorf("unknown format: %v", format)
}

// Write writes a frame of the scene to a file, the format follows from the file extension.
func Write(filename string, scene *lottie.Scene, frame float64, opts ...interface{}) error {
	encode, err := New(scene, filepath.Ext(filename), opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func errorWriter(err error) Encoder {
	return func(io.Writer, float64) error {
		return err
	}
}
