package svg

import (
	"bytes"
	"compress/gzip"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/test"
)

const rectScene = `{"fr":30,"ip":0,"op":60,"w":100,"h":100,"layers":[{"ty":4,"ind":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
	{"ty":"rc","p":{"a":0,"k":[50,50]},"s":{"a":0,"k":[20,10]},"r":{"a":0,"k":0}},
	{"ty":"fl","c":{"a":0,"k":[1,0,0,1]},"o":{"a":0,"k":100}}]}]}`

func TestWriter(t *testing.T) {
	scene, err := lottie.ParseScene(strings.NewReader(rectScene), lottie.Options{})
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, Writer(scene, nil)(buf, 0.0))
	test.T(t, buf.String(), `<svg version="1.1" width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><path d="M40 45L60 45L60 55L40 55z" fill="#f00"/></svg>`)
}

func TestWriterCompression(t *testing.T) {
	scene, err := lottie.ParseScene(strings.NewReader(rectScene), lottie.Options{})
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, Writer(scene, &Options{Compression: gzip.BestCompression})(buf, 0.0))
	zr, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(zr)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), `<path d="M40 45L60 45L60 55L40 55z"`), string(b))
}

func TestSVGState(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, 10.0, 10.0, nil)
	r.SetBrush(lottie.Brush{Color: color.RGBA{0, 0, 128, 128}})
	r.SetPen(lottie.Pen{Color: color.RGBA{0, 255, 0, 255}, Width: 2.0, Cap: lottie.RoundCap, Dashes: []float64{1.0, 0.5}})

	r.SaveState()
	r.SetTransform(lottie.Identity.Translate(1.0, 2.0))
	r.SetOpacity(0.5)
	r.SetClipPath(lottie.Rectangle(0.0, 0.0, 5.0, 5.0))
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 1.0, 1.0))
	r.RestoreState()
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 1.0, 1.0))
	test.Error(t, r.Close())

	s := buf.String()
	test.That(t, strings.Contains(s, `<clipPath id="c1"><path d="M0 0L5 0L5 5L0 5z"/></clipPath>`), s)
	test.That(t, strings.Contains(s, `<g clip-path="url(#c1)"><path d="M0 0L1 0L1 1L0 1z" transform="matrix(1 0 0 1 1 2)" fill="#00f" fill-opacity=".50196" opacity=".5" style="stroke:#0f0;stroke-width:2;stroke-linecap:round;stroke-dasharray:2 1"/></g>`), s)
	test.That(t, strings.HasSuffix(s, `<path d="M0 0L1 0L1 1L0 1z" fill="#00f" fill-opacity=".50196" style="stroke:#0f0;stroke-width:2;stroke-linecap:round;stroke-dasharray:2 1"/></svg>`), s)
}

func TestSVGGradient(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, 10.0, 10.0, nil)
	r.SetBrush(lottie.Brush{Gradient: &lottie.Gradient{
		Type:   lottie.RadialGradient,
		Start:  lottie.Point{X: 5.0, Y: 5.0},
		Focal:  lottie.Point{X: 5.0, Y: 5.0},
		Radius: 5.0,
		Stops:  []lottie.GradientStop{{Offset: 0.0, Color: color.RGBA{255, 0, 0, 255}}, {Offset: 1.0, Color: color.RGBA{0, 0, 0, 0}}},
	}})
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 10.0, 10.0))
	test.Error(t, r.Close())

	s := buf.String()
	test.That(t, strings.Contains(s, `<radialGradient id="g1" gradientUnits="userSpaceOnUse" cx="5" cy="5" r="5" fx="5" fy="5"><stop offset="0" stop-color="#f00"/><stop offset="1" stop-color="#000" stop-opacity="0"/></radialGradient>`), s)
	test.That(t, strings.Contains(s, `fill="url(#g1)"`), s)
}

func TestMinify(t *testing.T) {
	in := `<svg version="1.1" width="10" height="10" viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg"><path d="M0.000 0L10 0L10 10L0 10z" fill="#ff0000"/></svg>`
	buf := &bytes.Buffer{}
	test.Error(t, Minify(buf, strings.NewReader(in)))
	test.That(t, buf.Len() < len(in))
	test.That(t, strings.Contains(buf.String(), "<path"), buf.String())
}

func TestColorString(t *testing.T) {
	test.String(t, colorString(color.RGBA{255, 0, 0, 255}), "#f00")
	test.String(t, colorString(color.RGBA{18, 52, 86, 255}), "#123456")
	test.String(t, colorString(color.RGBA{0, 64, 0, 64}), "#0f0")
	test.String(t, colorString(color.RGBA{}), "#000")
}

func TestDec(t *testing.T) {
	test.String(t, dec(100.0).String(), "100")
	test.String(t, dec(0.5).String(), ".5")
	test.String(t, dec(128.0/255.0).String(), ".50196")
}
