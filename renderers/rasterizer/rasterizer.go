package rasterizer

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/Seanld/lottie"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// Writer writes a frame of a scene.
type Writer func(w io.Writer, frame float64) error

// PNGWriter writes frames as PNG images.
func PNGWriter(scene *lottie.Scene, resolution float64) Writer {
	return func(w io.Writer, frame float64) error {
		return png.Encode(w, Draw(scene, frame, resolution))
	}
}

// JPGWriter writes frames as JPG images.
func JPGWriter(scene *lottie.Scene, resolution float64, opts *jpeg.Options) Writer {
	return func(w io.Writer, frame float64) error {
		return jpeg.Encode(w, Draw(scene, frame, resolution), opts)
	}
}

// GIFWriter writes frames as GIF images.
func GIFWriter(scene *lottie.Scene, resolution float64, opts *gif.Options) Writer {
	return func(w io.Writer, frame float64) error {
		return gif.Encode(w, Draw(scene, frame, resolution), opts)
	}
}

// TIFFWriter writes frames as TIFF images.
func TIFFWriter(scene *lottie.Scene, resolution float64, opts *tiff.Options) Writer {
	return func(w io.Writer, frame float64) error {
		return tiff.Encode(w, Draw(scene, frame, resolution), opts)
	}
}

// Draw renders a frame on a new image with the given resolution in pixels per unit of the scene.
func Draw(scene *lottie.Scene, frame float64, resolution float64) *image.RGBA {
	w, h := scene.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(w*resolution+0.5), int(h*resolution+0.5)))
	scene.Render(New(img, resolution), frame)
	return img
}

type state struct {
	m       lottie.Matrix
	opacity float64
	brush   lottie.Brush
	pen     lottie.Pen
	clip    *image.Alpha // nil is unclipped
}

// Rasterizer is a lottie.Canvas that draws to an image.
type Rasterizer struct {
	img        draw.Image
	resolution float64

	state
	stack []state

	layer *image.RGBA // scratch image for clipped drawing
}

// New returns a rasterizer that draws to img, with the given number of pixels per unit.
func New(img draw.Image, resolution float64) *Rasterizer {
	if resolution <= 0.0 {
		resolution = 1.0
	}
	return &Rasterizer{
		img:        img,
		resolution: resolution,
		state: state{
			m:       lottie.Identity,
			opacity: 1.0,
		},
	}
}

// Size returns the size of the image in units.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / r.resolution, float64(size.Y) / r.resolution
}

func (r *Rasterizer) SaveState() {
	r.stack = append(r.stack, r.state)
}

func (r *Rasterizer) RestoreState() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Rasterizer) Transform() lottie.Matrix {
	return r.m
}

func (r *Rasterizer) SetTransform(m lottie.Matrix) {
	r.m = m
}

func (r *Rasterizer) Opacity() float64 {
	return r.opacity
}

func (r *Rasterizer) SetOpacity(opacity float64) {
	r.opacity = opacity
}

func (r *Rasterizer) SetBrush(brush lottie.Brush) {
	r.brush = brush
}

func (r *Rasterizer) SetPen(pen lottie.Pen) {
	r.pen = pen
}

// SetClipPath replaces the clip region by the path in device coordinates.
func (r *Rasterizer) SetClipPath(p *lottie.Path) {
	if p == nil {
		r.clip = nil
		return
	}
	r.clip = r.mask(p)
}

// IntersectClipPath intersects the clip region with the path in device coordinates.
func (r *Rasterizer) IntersectClipPath(p *lottie.Path) {
	mask := r.mask(p)
	if r.clip != nil {
		for i := range mask.Pix {
			mask.Pix[i] = uint8((uint32(mask.Pix[i])*uint32(r.clip.Pix[i]) + 127) / 255)
		}
	}
	r.clip = mask
}

// mask rasterizes a path in device coordinates to a coverage mask of the image size.
func (r *Rasterizer) mask(p *lottie.Path) *image.Alpha {
	bounds := r.img.Bounds()
	mask := image.NewAlpha(bounds)
	if p.Empty() {
		return mask
	}
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	toVector(ras, p.Transform(lottie.Identity.Scale(r.resolution, r.resolution)))
	ras.DrawOp = draw.Src
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// DrawPath fills and strokes the path under the current transform.
func (r *Rasterizer) DrawPath(p *lottie.Path) {
	if p.Empty() || r.opacity <= 0.0 || r.brush.IsNone() && r.pen.IsNone() {
		return
	}
	m := lottie.Identity.Scale(r.resolution, r.resolution).Mul(r.m)
	device := p.Transform(m)

	dst := r.img
	bounds := r.img.Bounds()
	if r.clip != nil {
		if r.layer == nil || r.layer.Bounds() != bounds {
			r.layer = image.NewRGBA(bounds)
		} else {
			clear(r.layer.Pix)
		}
		dst = r.layer
	}
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, bounds)

	if !r.brush.IsNone() {
		filler := rasterx.NewFiller(w, h, scanner)
		filler.SetWinding(true)
		toRasterx(filler, device)
		filler.SetColor(r.paint(r.brush, m))
		filler.Draw()
	}
	if !r.pen.IsNone() {
		scale := m.ScaleFactor()
		width := r.pen.Width * scale
		dashes := make([]float64, len(r.pen.Dashes))
		for i, d := range r.pen.Dashes {
			dashes[i] = d * width
		}
		if len(dashes) == 0 {
			dashes = nil
		}

		dasher := rasterx.NewDasher(w, h, scanner)
		capper := capFunc(r.pen.Cap)
		dasher.SetStroke(toFixed(width), toFixed(r.pen.MiterLimit), capper, capper, gapFunc(r.pen.Join), joinMode(r.pen.Join), dashes, r.pen.DashOffset*width)
		toRasterx(dasher, device)
		dasher.SetColor(scaleColor(r.pen.Color, r.opacity))
		dasher.Draw()
	}

	if r.clip != nil {
		draw.DrawMask(r.img, bounds, r.layer, bounds.Min, r.clip, bounds.Min, draw.Over)
	}
}

// paint returns the color or color function of the brush for rasterx.
func (r *Rasterizer) paint(brush lottie.Brush, m lottie.Matrix) interface{} {
	g := brush.Gradient
	if g == nil {
		return scaleColor(brush.Color, r.opacity)
	}

	grad := &rasterx.Gradient{
		Units:  rasterx.UserSpaceOnUse,
		Matrix: rasterx.Matrix2D{A: m[0][0], B: m[1][0], C: m[0][1], D: m[1][1], E: m[0][2], F: m[1][2]},
	}
	grad.Bounds.W, grad.Bounds.H = 1.0, 1.0 // unit bounds keep the matrix as is
	if g.Type == lottie.RadialGradient {
		grad.IsRadial = true
		grad.Points = [5]float64{g.Start.X, g.Start.Y, g.Focal.X, g.Focal.Y, math.Max(g.Radius, 1e-6)}
	} else {
		grad.Points = [5]float64{g.Start.X, g.Start.Y, g.End.X, g.End.Y, 0.0}
	}
	for _, stop := range g.Stops {
		grad.Stops = append(grad.Stops, rasterx.GradStop{
			StopColor: unpremultiply(stop.Color),
			Offset:    stop.Offset,
			Opacity:   float64(stop.Color.A) / 255.0,
		})
	}
	return grad.GetColorFunction(r.opacity)
}

func capFunc(c lottie.Capper) rasterx.CapFunc {
	switch c {
	case lottie.RoundCap:
		return rasterx.RoundCap
	case lottie.SquareCap:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func gapFunc(j lottie.Joiner) rasterx.GapFunc {
	if j == lottie.RoundJoin {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func joinMode(j lottie.Joiner) rasterx.JoinMode {
	switch j {
	case lottie.RoundJoin:
		return rasterx.Round
	case lottie.BevelJoin:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

func scaleColor(c color.RGBA, opacity float64) color.RGBA {
	if 1.0 <= opacity {
		return c
	}
	opacity = math.Max(opacity, 0.0)
	return color.RGBA{
		R: uint8(float64(c.R)*opacity + 0.5),
		G: uint8(float64(c.G)*opacity + 0.5),
		B: uint8(float64(c.B)*opacity + 0.5),
		A: uint8(float64(c.A)*opacity + 0.5),
	}
}

// unpremultiply returns the opaque color of an alpha-premultiplied color.
func unpremultiply(c color.RGBA) color.RGBA {
	if c.A == 0 {
		return color.RGBA{0, 0, 0, 255}
	} else if c.A == 255 {
		return c
	}
	a := float64(c.A) / 255.0
	return color.RGBA{
		R: uint8(math.Min(float64(c.R)/a, 255.0) + 0.5),
		G: uint8(math.Min(float64(c.G)/a, 255.0) + 0.5),
		B: uint8(math.Min(float64(c.B)/a, 255.0) + 0.5),
		A: 255,
	}
}
