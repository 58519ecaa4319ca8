package lottie

import (
	"bytes"
	"encoding/json"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestRecorderState(t *testing.T) {
	rec := NewRecorder(100.0, 50.0)
	w, h := rec.Size()
	test.Float(t, w, 100.0)
	test.Float(t, h, 50.0)
	test.T(t, rec.Transform(), Identity)
	test.Float(t, rec.Opacity(), 1.0)

	rec.SaveState()
	rec.SetTransform(Identity.Translate(5.0, 0.0))
	rec.SetOpacity(0.5)
	rec.SetBrush(Brush{Color: color.RGBA{255, 0, 0, 255}})
	rec.DrawPath(Rectangle(0.0, 0.0, 1.0, 1.0))
	rec.RestoreState()
	test.T(t, rec.Transform(), Identity)
	test.Float(t, rec.Opacity(), 1.0)

	rec.DrawPath(Rectangle(0.0, 0.0, 1.0, 1.0))
	paths := rec.Paths()
	test.T(t, len(paths), 2)
	test.T(t, paths[0], Command{
		Op:        "path",
		Transform: []float64{1.0, 0.0, 0.0, 1.0, 5.0, 0.0},
		Path:      "M0 0L1 0L1 1L0 1z",
		Fill:      "#ff0000ff",
		Opacity:   0.5,
	})
	test.T(t, paths[1].Fill, "")

	// unbalanced restores keep the state
	rec.RestoreState()
	test.T(t, rec.Transform(), Identity)
}

func TestRecorderPaint(t *testing.T) {
	rec := NewRecorder(10.0, 10.0)
	rec.SetPen(Pen{Color: color.RGBA{0, 0, 255, 255}, Width: 2.0, Dashes: []float64{1.0, 2.0}})
	rec.SetBrush(Brush{Gradient: &Gradient{
		Type:  LinearGradient,
		Start: Point{0.0, 0.0},
		End:   Point{10.0, 0.0},
		Stops: []GradientStop{{0.0, color.RGBA{255, 0, 0, 255}}, {1.0, color.RGBA{0, 0, 255, 255}}},
	}})
	rec.DrawPath(Rectangle(0.0, 0.0, 10.0, 10.0))

	cmd := rec.Paths()[0]
	test.T(t, cmd.Fill, "")
	test.T(t, cmd.Gradient, "linear((0,0),(10,0) 0:#ff0000ff 1:#0000ffff)")
	test.T(t, cmd.Stroke, "#0000ffff")
	test.Float(t, cmd.StrokeWidth, 2.0)
	test.T(t, cmd.Dashes, []float64{1.0, 2.0})
}

func TestRecorderJSON(t *testing.T) {
	rec := NewRecorder(10.0, 10.0)
	rec.SetClipPath(Rectangle(0.0, 0.0, 5.0, 5.0))
	rec.SetClipPath(nil)
	rec.DrawPath(Rectangle(0.0, 0.0, 1.0, 1.0))

	buf := &bytes.Buffer{}
	test.Error(t, rec.WriteJSON(buf))

	var cmds []Command
	test.Error(t, json.Unmarshal(buf.Bytes(), &cmds))
	test.T(t, len(cmds), 3)
	test.T(t, cmds[0].Op, "clip")
	test.T(t, cmds[0].Path, "M0 0L5 0L5 5L0 5z")
	test.T(t, cmds[1].Path, "")
	test.T(t, cmds[2].Op, "path")
}
