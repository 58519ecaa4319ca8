package rasterizer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/test"
)

const rectScene = `{"fr":30,"ip":0,"op":60,"w":100,"h":100,"layers":[{"ty":4,"ind":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
	{"ty":"rc","p":{"a":0,"k":[50,50]},"s":{"a":0,"k":[20,10]},"r":{"a":0,"k":0}},
	{"ty":"fl","c":{"a":0,"k":[1,0,0,1]},"o":{"a":0,"k":100}}]}]}`

var red = color.RGBA{255, 0, 0, 255}

func TestDraw(t *testing.T) {
	scene, err := lottie.ParseScene(strings.NewReader(rectScene), lottie.Options{})
	test.Error(t, err)

	img := Draw(scene, 0.0, 1.0)
	test.T(t, img.Bounds(), image.Rect(0, 0, 100, 100))
	test.T(t, img.RGBAAt(50, 50), red)
	test.T(t, img.RGBAAt(42, 47), red)
	test.T(t, img.RGBAAt(5, 5), color.RGBA{})
	test.T(t, img.RGBAAt(50, 60), color.RGBA{})

	img = Draw(scene, 0.0, 2.0)
	test.T(t, img.Bounds(), image.Rect(0, 0, 200, 200))
	test.T(t, img.RGBAAt(100, 100), red)
	test.T(t, img.RGBAAt(100, 115), color.RGBA{})
}

func TestPNGWriter(t *testing.T) {
	scene, err := lottie.ParseScene(strings.NewReader(rectScene), lottie.Options{})
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, PNGWriter(scene, 0.5)(buf, 0.0))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 50, 50))
}

func TestRasterizerClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := New(img, 1.0)
	r.SetBrush(lottie.Brush{Color: red})

	r.SaveState()
	r.SetClipPath(lottie.Rectangle(0.0, 0.0, 5.0, 10.0))
	r.IntersectClipPath(lottie.Rectangle(0.0, 0.0, 10.0, 5.0))
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 10.0, 10.0))
	r.RestoreState()
	test.T(t, img.RGBAAt(2, 2), red)
	test.T(t, img.RGBAAt(7, 2), color.RGBA{})
	test.T(t, img.RGBAAt(2, 7), color.RGBA{})

	// the clip is restored
	r.DrawPath(lottie.Rectangle(5.0, 5.0, 5.0, 5.0))
	test.T(t, img.RGBAAt(7, 7), red)
}

func TestRasterizerOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := New(img, 1.0)
	r.SetBrush(lottie.Brush{Color: red})
	r.SetOpacity(0.0)
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 10.0, 10.0))
	test.T(t, img.RGBAAt(5, 5), color.RGBA{})

	r.SetOpacity(0.5)
	r.SetTransform(lottie.Identity.Translate(2.0, 0.0))
	r.DrawPath(lottie.Rectangle(0.0, 0.0, 4.0, 10.0))
	test.T(t, img.RGBAAt(1, 5), color.RGBA{})
	c := img.RGBAAt(3, 5)
	test.That(t, 120 < c.R && c.R < 135 && c.A == c.R, c)
}

func TestUnpremultiply(t *testing.T) {
	test.T(t, unpremultiply(color.RGBA{128, 0, 0, 128}), color.RGBA{255, 0, 0, 255})
	test.T(t, unpremultiply(color.RGBA{}), color.RGBA{0, 0, 0, 255})
	test.T(t, scaleColor(red, 0.5), color.RGBA{128, 0, 0, 128})
}
