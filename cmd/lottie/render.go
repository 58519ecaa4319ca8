package main

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Seanld/lottie/player"
	"github.com/Seanld/lottie/renderers"
	"github.com/Seanld/lottie/renderers/svg"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"golang.org/x/image/tiff"
)

type Render struct {
	Frame      float64 `short:"f" default:"-1" desc:"Frame number, renders all frames if negative"`
	Step       float64 `default:"1" desc:"Frame step when rendering all frames"`
	Resolution float64 `short:"r" default:"1" desc:"Pixels per unit for raster images"`
	Format     string  `default:"" desc:"Output format: png, jpg, gif, tiff, svg, svgz, webp or avif, defaults to the output extension"`
	Quality    int     `default:"90" desc:"JPG quality"`
	Minify     bool    `short:"m" desc:"Minify SVG output"`
	Open       bool    `desc:"Open the first output file"`
	Workers    int     `short:"w" default:"0" desc:"Number of concurrent workers"`
	TrimMode   string  `desc:"Force trim mode, simultaneous or individual"`
	Env        string  `default:".env" desc:"Environment file"`
	Output     string  `short:"o" desc:"Output file, a %d is replaced by the frame number"`
	Input      string  `index:"0" desc:"Input file"`
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	cfg, log, opts, err := setup(cmd.Env, cmd.TrimMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	scene, err := openScene(cmd.Input, opts)
	if err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = strings.TrimSuffix(cmd.Input, filepath.Ext(cmd.Input)) + ".png"
	}
	format := strings.ToLower(cmd.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}

	encOpts := []interface{}{renderers.Resolution(cmd.Resolution)}
	switch format {
	case "jpg", "jpeg":
		encOpts = append(encOpts, &jpeg.Options{Quality: cmd.Quality})
	case "tif", "tiff":
		encOpts = append(encOpts, &tiff.Options{Compression: tiff.Deflate})
	}
	encode, err := renderers.New(scene, format, encOpts...)
	if err != nil {
		return err
	}
	if cmd.Minify && (format == "svg" || format == "svgz") {
		if format == "svgz" {
			log.Warn("minification is skipped for compressed SVG")
		} else {
			encode = minifyEncoder(encode)
		}
	}

	workers := cfg.Workers
	if cmd.Workers != 0 {
		workers = cmd.Workers
	}
	p := player.New(scene, encode, &player.Options{
		Workers:  workers,
		CacheTTL: cfg.CacheTTL,
		Logger:   log,
	})

	from, to := cmd.Frame, cmd.Frame+1.0
	if cmd.Frame < 0.0 {
		from, to = scene.InPoint(), scene.OutPoint()
	}
	frames, err := p.Render(context.Background(), from, to, cmd.Step)
	if err != nil {
		return err
	}

	var filenames []string
	for _, frame := range frames {
		filename := output
		if strings.Contains(output, "%d") {
			filename = fmt.Sprintf(output, int(frame.Number))
		} else if 1 < len(frames) {
			ext := filepath.Ext(output)
			filename = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(output, ext), int(frame.Number), ext)
		}
		if err := os.WriteFile(filename, frame.Data, 0644); err != nil {
			return err
		}
		filenames = append(filenames, filename)
	}
	log.Info("rendered frames", zap.Int("frames", len(frames)), zap.String("format", format))

	if cmd.Open && 0 < len(filenames) {
		return browser.OpenFile(filenames[0])
	}
	return nil
}

func minifyEncoder(encode player.Encoder) player.Encoder {
	return func(w io.Writer, frame float64) error {
		buf := &bytes.Buffer{}
		if err := encode(buf, frame); err != nil {
			return err
		}
		return svg.Minify(w, buf)
	}
}
