package lottie

import (
	"image/color"
)

// Canvas is the painter that frames are rendered to. Its state (transform, opacity, brush, pen and clip) is saved and restored as a stack. Paths are drawn under the current transform, while clip paths are in device coordinates.
type Canvas interface {
	Size() (float64, float64)

	SaveState()
	RestoreState()

	Transform() Matrix
	SetTransform(Matrix)
	Opacity() float64
	SetOpacity(float64)

	SetBrush(Brush)
	SetPen(Pen)

	// SetClipPath replaces the clip region, nil removes it.
	SetClipPath(*Path)
	IntersectClipPath(*Path)

	// DrawPath fills the path with the brush using the non-zero winding rule and then strokes it with the pen.
	DrawPath(*Path)
}

// GradientType is the type of gradient.
type GradientType int

const (
	LinearGradient GradientType = iota + 1
	RadialGradient
)

func (t GradientType) String() string {
	switch t {
	case LinearGradient:
		return "linear"
	case RadialGradient:
		return "radial"
	}
	return "none"
}

// GradientStop is a color at an offset in [0,1] along the gradient.
type GradientStop struct {
	Offset float64
	Color  color.RGBA
}

// Gradient is a linear gradient from Start to End, or a radial gradient centered at Start with Radius and focal point Focal.
type Gradient struct {
	Type       GradientType
	Start, End Point
	Focal      Point
	Radius     float64
	Stops      []GradientStop
}

// At returns the interpolated color at offset t.
func (g *Gradient) At(t float64) color.RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	} else if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		if t < g.Stops[i].Offset {
			s0, s1 := g.Stops[i-1], g.Stops[i]
			f := (t - s0.Offset) / (s1.Offset - s0.Offset)
			return color.RGBA{
				R: lerpUint8(s0.Color.R, s1.Color.R, f),
				G: lerpUint8(s0.Color.G, s1.Color.G, f),
				B: lerpUint8(s0.Color.B, s1.Color.B, f),
				A: lerpUint8(s0.Color.A, s1.Color.A, f),
			}
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpUint8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}

// Brush is the fill paint, a solid color or a gradient.
type Brush struct {
	Color    color.RGBA
	Gradient *Gradient
}

// NoBrush does not fill.
var NoBrush = Brush{}

// IsNone returns true if the brush paints nothing.
func (b Brush) IsNone() bool {
	return b.Gradient == nil && b.Color.A == 0
}

// IsGradient returns true if the brush is a gradient.
func (b Brush) IsGradient() bool {
	return b.Gradient != nil
}

// Capper is the line cap style.
type Capper int

const (
	ButtCap Capper = iota
	RoundCap
	SquareCap
)

func (c Capper) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// Joiner is the line join style.
type Joiner int

const (
	MiterJoin Joiner = iota
	RoundJoin
	BevelJoin
)

func (j Joiner) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "miter"
}

// Pen is the stroke style. Dashes and DashOffset are in units of the line width.
type Pen struct {
	Color      color.RGBA
	Width      float64
	Cap        Capper
	Join       Joiner
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// NoPen does not stroke.
var NoPen = Pen{}

// IsNone returns true if the pen paints nothing.
func (p Pen) IsNone() bool {
	return p.Width <= 0.0 || p.Color.A == 0
}
