package svg

import (
	"compress/gzip"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

type Options struct {
	Compression int
}

var DefaultOptions = Options{}

type state struct {
	m       lottie.Matrix
	opacity float64
	brush   lottie.Brush
	pen     lottie.Pen
	clips   []string // ids of nested clip paths
}

// SVG is a scalable vector graphics renderer. Clip paths and gradients are written inline as they are needed.
type SVG struct {
	w             io.Writer
	width, height float64
	opts          *Options
	err           error

	state
	stack []state

	clipID     int
	gradientID int
}

// New returns a scalable vector graphics (SVG) renderer. Close must be called to finish the document.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		opts = &DefaultOptions
	}
	o := *opts
	opts = &o

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	r := &SVG{
		w:      w,
		width:  width,
		height: height,
		opts:   opts,
		state: state{
			m:       lottie.Identity,
			opacity: 1.0,
		},
	}
	r.printf(`<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return r
}

// Writer returns a function that renders frames of a scene as SVG.
func Writer(scene *lottie.Scene, opts *Options) func(io.Writer, float64) error {
	return func(w io.Writer, frame float64) error {
		width, height := scene.Size()
		r := New(w, width, height, opts)
		scene.Render(r, frame)
		return r.Close()
	}
}

// Minify minifies an SVG document.
func Minify(w io.Writer, r io.Reader) error {
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	if err := m.Minify("image/svg+xml", w, r); err != nil {
		return fmt.Errorf("minify svg: %w", err)
	}
	return nil
}

func (r *SVG) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Close finishes the SVG document and flushes the compressor, it does not close the underlying writer.
func (r *SVG) Close() error {
	r.printf("</svg>")
	if r.opts.Compression != 0 {
		if err := r.w.(*gzip.Writer).Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}

// Size returns the size of the canvas.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

func (r *SVG) SaveState() {
	r.stack = append(r.stack, r.state)
}

func (r *SVG) RestoreState() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *SVG) Transform() lottie.Matrix {
	return r.m
}

func (r *SVG) SetTransform(m lottie.Matrix) {
	r.m = m
}

func (r *SVG) Opacity() float64 {
	return r.opacity
}

func (r *SVG) SetOpacity(opacity float64) {
	r.opacity = opacity
}

func (r *SVG) SetBrush(brush lottie.Brush) {
	r.brush = brush
}

func (r *SVG) SetPen(pen lottie.Pen) {
	r.pen = pen
}

// SetClipPath replaces the clip region by the path in device coordinates.
func (r *SVG) SetClipPath(p *lottie.Path) {
	r.clips = nil
	if p != nil {
		r.IntersectClipPath(p)
	}
}

// IntersectClipPath intersects the clip region with the path in device coordinates.
func (r *SVG) IntersectClipPath(p *lottie.Path) {
	r.clipID++
	id := fmt.Sprintf("c%d", r.clipID)
	r.printf(`<clipPath id="%s"><path d="%s"/></clipPath>`, id, pathData(p))

	// copy to keep saved states intact
	clips := make([]string, len(r.clips), len(r.clips)+1)
	copy(clips, r.clips)
	r.clips = append(clips, id)
}

// DrawPath fills and strokes the path under the current transform.
func (r *SVG) DrawPath(p *lottie.Path) {
	if p.Empty() || r.opacity <= 0.0 || r.brush.IsNone() && r.pen.IsNone() {
		return
	}

	fill := "none"
	if !r.brush.IsNone() {
		if r.brush.IsGradient() {
			fill = fmt.Sprintf("url(#%s)", r.writeGradient(r.brush.Gradient))
		} else {
			fill = colorString(r.brush.Color)
		}
	}

	for _, id := range r.clips {
		r.printf(`<g clip-path="url(#%s)">`, id)
	}
	r.printf(`<path d="%s"`, pathData(p))
	if !r.m.Equals(lottie.Identity) {
		r.printf(` transform="%s"`, matrixString(r.m))
	}
	if fill != "#000" {
		r.printf(` fill="%s"`, fill)
	}
	if !r.brush.IsNone() && !r.brush.IsGradient() && r.brush.Color.A != 255 {
		r.printf(` fill-opacity="%v"`, dec(float64(r.brush.Color.A)/255.0))
	}
	if r.opacity < 1.0 {
		r.printf(` opacity="%v"`, dec(r.opacity))
	}
	if !r.pen.IsNone() {
		r.writePen(r.pen)
	}
	r.printf(`/>`)
	r.printf("%s", strings.Repeat("</g>", len(r.clips)))
}

func (r *SVG) writePen(pen lottie.Pen) {
	b := &strings.Builder{}
	fmt.Fprintf(b, ";stroke:%s", colorString(pen.Color))
	if pen.Color.A != 255 {
		fmt.Fprintf(b, ";stroke-opacity:%v", dec(float64(pen.Color.A)/255.0))
	}
	if pen.Width != 1.0 {
		fmt.Fprintf(b, ";stroke-width:%v", dec(pen.Width))
	}
	if pen.Cap != lottie.ButtCap {
		fmt.Fprintf(b, ";stroke-linecap:%v", pen.Cap)
	}
	if pen.Join != lottie.MiterJoin {
		fmt.Fprintf(b, ";stroke-linejoin:%v", pen.Join)
	} else if pen.MiterLimit != 4.0 && 1.0 <= pen.MiterLimit {
		fmt.Fprintf(b, ";stroke-miterlimit:%v", dec(pen.MiterLimit))
	}
	if 0 < len(pen.Dashes) {
		// dashes are in units of the line width
		fmt.Fprintf(b, ";stroke-dasharray:%v", dec(pen.Dashes[0]*pen.Width))
		for _, dash := range pen.Dashes[1:] {
			fmt.Fprintf(b, " %v", dec(dash*pen.Width))
		}
		if pen.DashOffset != 0.0 {
			fmt.Fprintf(b, ";stroke-dashoffset:%v", dec(pen.DashOffset*pen.Width))
		}
	}
	r.printf(` style="%s"`, b.String()[1:])
}

// writeGradient writes a gradient in the coordinates of the path it paints and returns its id.
func (r *SVG) writeGradient(g *lottie.Gradient) string {
	r.gradientID++
	id := fmt.Sprintf("g%d", r.gradientID)
	if g.Type == lottie.RadialGradient {
		r.printf(`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%v" cy="%v" r="%v" fx="%v" fy="%v"`, id, dec(g.Start.X), dec(g.Start.Y), dec(g.Radius), dec(g.Focal.X), dec(g.Focal.Y))
	} else {
		r.printf(`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%v" y1="%v" x2="%v" y2="%v"`, id, dec(g.Start.X), dec(g.Start.Y), dec(g.End.X), dec(g.End.Y))
	}
	r.printf(">")
	for _, stop := range g.Stops {
		r.printf(`<stop offset="%v" stop-color="%s"`, dec(stop.Offset), colorString(stop.Color))
		if stop.Color.A != 255 {
			r.printf(` stop-opacity="%v"`, dec(float64(stop.Color.A)/255.0))
		}
		r.printf("/>")
	}
	if g.Type == lottie.RadialGradient {
		r.printf("</radialGradient>")
	} else {
		r.printf("</linearGradient>")
	}
	return id
}

// colorString returns the opaque hex color of an alpha-premultiplied color.
func colorString(c color.RGBA) string {
	if c.A == 0 {
		return "#000"
	} else if c.A != 255 {
		a := float64(c.A) / 255.0
		c.R = uint8(math.Min(float64(c.R)/a, 255.0) + 0.5)
		c.G = uint8(math.Min(float64(c.G)/a, 255.0) + 0.5)
		c.B = uint8(math.Min(float64(c.B)/a, 255.0) + 0.5)
	}
	if c.R>>4 == c.R&0x0F && c.G>>4 == c.G&0x0F && c.B>>4 == c.B&0x0F {
		return fmt.Sprintf("#%x%x%x", c.R&0x0F, c.G&0x0F, c.B&0x0F)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func matrixString(m lottie.Matrix) string {
	return fmt.Sprintf("matrix(%v %v %v %v %v %v)", dec(m[0][0]), dec(m[1][0]), dec(m[0][1]), dec(m[1][1]), dec(m[0][2]), dec(m[1][2]))
}

// pathData returns the path in SVG path data notation.
func pathData(p *lottie.Path) string {
	sb := strings.Builder{}
	s := p.Scanner()
	for s.Scan() {
		switch s.Cmd() {
		case lottie.MoveToCmd:
			end := s.End()
			fmt.Fprintf(&sb, "M%v %v", dec(end.X), dec(end.Y))
		case lottie.LineToCmd:
			end := s.End()
			fmt.Fprintf(&sb, "L%v %v", dec(end.X), dec(end.Y))
		case lottie.CubeToCmd:
			cp1, cp2, end := s.CP1(), s.CP2(), s.End()
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", dec(cp1.X), dec(cp1.Y), dec(cp2.X), dec(cp2.Y), dec(end.X), dec(end.Y))
		case lottie.CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
