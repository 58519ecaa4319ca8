package renderers

import (
	"bytes"
	"compress/gzip"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/test"
)

const rectScene = `{"fr":30,"ip":0,"op":60,"w":100,"h":100,"layers":[{"ty":4,"ind":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
	{"ty":"rc","p":{"a":0,"k":[50,50]},"s":{"a":0,"k":[20,10]},"r":{"a":0,"k":0}},
	{"ty":"fl","c":{"a":0,"k":[1,0,0,1]},"o":{"a":0,"k":100}}]}]}`

func parseScene(t *testing.T) *lottie.Scene {
	scene, err := lottie.ParseScene(strings.NewReader(rectScene), lottie.Options{})
	test.Error(t, err)
	return scene
}

func TestNew(t *testing.T) {
	scene := parseScene(t)
	for _, format := range []string{"png", ".PNG", "jpg", "gif", "tiff", "svg", "svgz"} {
		t.Run(format, func(t *testing.T) {
			encode, err := New(scene, format)
			test.Error(t, err)
			buf := &bytes.Buffer{}
			test.Error(t, encode(buf, 0.0))
			test.That(t, 0 < buf.Len())
		})
	}

	_, err := New(scene, "bmp")
	test.That(t, err != nil)
	_, err = New(scene, "png", 1.0)
	test.That(t, err != nil)
}

func TestNewResolution(t *testing.T) {
	encode, err := New(parseScene(t), "png", Resolution(0.5))
	test.Error(t, err)
	buf := &bytes.Buffer{}
	test.Error(t, encode(buf, 0.0))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 50)
}

func TestNewSVGZ(t *testing.T) {
	encode, err := New(parseScene(t), "svgz")
	test.Error(t, err)
	buf := &bytes.Buffer{}
	test.Error(t, encode(buf, 0.0))
	_, err = gzip.NewReader(buf)
	test.Error(t, err)
}

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "frame.svg")
	test.Error(t, Write(filename, parseScene(t), 0.0))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(b), "<svg"))

	test.That(t, Write(filepath.Join(t.TempDir(), "frame.xyz"), parseScene(t), 0.0) != nil)
}
