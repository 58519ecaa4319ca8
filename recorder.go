package lottie

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
)

// Command is a single call recorded by a Recorder.
type Command struct {
	Op          string    `json:"op"`
	Transform   []float64 `json:"transform,omitempty"` // [a b c d e f], the first two rows of the matrix in column order
	Path        string    `json:"path,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	Gradient    string    `json:"gradient,omitempty"`
	Stroke      string    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Dashes      []float64 `json:"dashes,omitempty"`
	Opacity     float64   `json:"opacity,omitempty"`
}

type recorderState struct {
	transform Matrix
	opacity   float64
	brush     Brush
	pen       Pen
	clip      *Path
}

// Recorder is a Canvas that records all calls.
type Recorder struct {
	width, height float64
	Commands      []Command

	recorderState
	stack []recorderState
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		recorderState: recorderState{
			transform: Identity,
			opacity:   1.0,
		},
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) SaveState() {
	r.stack = append(r.stack, r.recorderState)
	r.Commands = append(r.Commands, Command{Op: "save"})
}

func (r *Recorder) RestoreState() {
	if 0 < len(r.stack) {
		r.recorderState = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.Commands = append(r.Commands, Command{Op: "restore"})
}

func (r *Recorder) Transform() Matrix {
	return r.transform
}

func (r *Recorder) SetTransform(m Matrix) {
	r.transform = m
	r.Commands = append(r.Commands, Command{Op: "transform", Transform: matrixSlice(m)})
}

func (r *Recorder) Opacity() float64 {
	return r.opacity
}

func (r *Recorder) SetOpacity(opacity float64) {
	r.opacity = opacity
	r.Commands = append(r.Commands, Command{Op: "opacity", Opacity: opacity})
}

func (r *Recorder) SetBrush(brush Brush) {
	r.brush = brush
	cmd := Command{Op: "brush", Fill: colorString(brush.Color)}
	if brush.Gradient != nil {
		cmd.Fill = ""
		cmd.Gradient = gradientString(brush.Gradient)
	}
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) SetPen(pen Pen) {
	r.pen = pen
	r.Commands = append(r.Commands, Command{
		Op:          "pen",
		Stroke:      colorString(pen.Color),
		StrokeWidth: pen.Width,
		Dashes:      pen.Dashes,
	})
}

func (r *Recorder) SetClipPath(p *Path) {
	r.clip = p
	cmd := Command{Op: "clip"}
	if p != nil {
		cmd.Path = p.String()
	}
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) IntersectClipPath(p *Path) {
	r.clip = p
	r.Commands = append(r.Commands, Command{Op: "intersectClip", Path: p.String()})
}

func (r *Recorder) DrawPath(p *Path) {
	cmd := Command{
		Op:        "path",
		Transform: matrixSlice(r.transform),
		Path:      p.String(),
		Opacity:   r.opacity,
	}
	if !r.brush.IsNone() {
		cmd.Fill = colorString(r.brush.Color)
		if r.brush.Gradient != nil {
			cmd.Fill = ""
			cmd.Gradient = gradientString(r.brush.Gradient)
		}
	}
	if !r.pen.IsNone() {
		cmd.Stroke = colorString(r.pen.Color)
		cmd.StrokeWidth = r.pen.Width
		cmd.Dashes = r.pen.Dashes
	}
	r.Commands = append(r.Commands, cmd)
}

// Paths returns the draw commands.
func (r *Recorder) Paths() []Command {
	var cmds []Command
	for _, cmd := range r.Commands {
		if cmd.Op == "path" {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// WriteJSON writes the recorded commands as a JSON array.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Commands); err != nil {
		return fmt.Errorf("write commands: %w", err)
	}
	return nil
}

func matrixSlice(m Matrix) []float64 {
	return []float64{m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2]}
}

func colorString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func gradientString(g *Gradient) string {
	s := fmt.Sprintf("%v(%v,%v", g.Type, g.Start, g.End)
	if g.Type == RadialGradient {
		s += fmt.Sprintf(",%v,%g", g.Focal, g.Radius)
	}
	for _, stop := range g.Stops {
		s += fmt.Sprintf(" %g:%s", stop.Offset, colorString(stop.Color))
	}
	return s + ")"
}
