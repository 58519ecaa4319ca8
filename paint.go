package lottie

import (
	"math"

	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// Fill paints the shapes that precede it in a group with a solid color.
type Fill struct {
	base
	color   Property[Vec4]
	opacity Property[float64] // in percent
}

func parseFill(ps *parser, parent Node, def document.Value) *Fill {
	f := &Fill{}
	f.parseBase(ps, FillNode, def)
	f.parent = parent
	if f.hidden {
		return f
	}
	f.color = parseProperty[Vec4](ps, def.Get("c"))
	f.opacity = parsePropertyOr(ps, def, "o", 100.0)
	if def.Get("r").Int() == 2 {
		ps.log.Warn("even-odd fill rule is not supported", zap.String("name", f.name))
	}
	return f
}

func (f *Fill) clone(parent Node) Node {
	return &Fill{
		base:    f.copyBase(parent),
		color:   f.color.Clone(),
		opacity: f.opacity.Clone(),
	}
}

func (f *Fill) update(frame float64) {
	f.color.Update(frame)
	f.opacity.Update(frame)
}

// Color returns the color with components in [0,1].
func (f *Fill) Color() Vec4 {
	return f.color.Value()
}

// Opacity returns the opacity in percent.
func (f *Fill) Opacity() float64 {
	return f.opacity.Value()
}

func (f *Fill) Brush() Brush {
	return Brush{Color: f.Color().RGBA(f.Opacity() / 100.0)}
}

func (f *Fill) render(r *renderer, frame float64) {
	r.setBrush(f.Brush())
}

////////////////////////////////////////////////////////////////

// GradientFill paints the shapes that precede it in a group with a linear or radial gradient.
type GradientFill struct {
	base
	gradientType GradientType
	colors       int
	static       []Stop
	animated     *animatedStops

	opacity         Property[float64] // in percent
	start           Property[Point]
	end             Property[Point]
	highlightLength Property[float64] // in percent
	highlightAngle  Property[float64] // in degrees

	stops []Stop
}

func parseGradientFill(ps *parser, parent Node, def document.Value) *GradientFill {
	g := &GradientFill{}
	g.parseBase(ps, GradientFillNode, def)
	g.parent = parent
	if g.hidden {
		return g
	}

	switch t := def.Get("t").Int(); t {
	case 1:
		g.gradientType = LinearGradient
	case 2:
		g.gradientType = RadialGradient
	default:
		ps.log.Warn("unknown gradient fill type", zap.Int("type", t), zap.String("name", g.name))
		return g
	}

	data := def.Get("g")
	g.colors = data.Get("p").Int()
	k := ps.resolveExpression(data.Get("k")).Get("k")
	if k.IsArray() && k.Index(0).IsObject() {
		g.animated = newAnimatedStops(k, g.colors)
	} else {
		stops, err := NewStopsBuilder(newStaticStops(k.Floats(), g.colors)).Build()
		if err != nil {
			ps.log.Warn("gradient is malformed", zap.String("name", g.name), zap.Error(err))
		}
		g.static = stops
	}

	g.opacity = parsePropertyOr(ps, def, "o", 100.0)
	g.start = parseProperty[Point](ps, def.Get("s"))
	g.end = parseProperty[Point](ps, def.Get("e"))
	g.highlightLength = parseProperty[float64](ps, def.Get("h"))
	g.highlightAngle = parseProperty[float64](ps, def.Get("a"))
	return g
}

func (g *GradientFill) clone(parent Node) Node {
	h := &GradientFill{
		base:            g.copyBase(parent),
		gradientType:    g.gradientType,
		colors:          g.colors,
		static:          g.static,
		opacity:         g.opacity.Clone(),
		start:           g.start.Clone(),
		end:             g.end.Clone(),
		highlightLength: g.highlightLength.Clone(),
		highlightAngle:  g.highlightAngle.Clone(),
	}
	if g.animated != nil {
		h.animated = g.animated.clone()
	}
	return h
}

func (g *GradientFill) update(frame float64) {
	if g.gradientType == 0 {
		return
	}
	g.opacity.Update(frame)
	g.start.Update(frame)
	g.end.Update(frame)
	g.highlightLength.Update(frame)
	g.highlightAngle.Update(frame)

	if g.animated == nil {
		g.stops = g.static
		return
	}
	g.animated.update(frame)
	stops, err := NewStopsBuilder(g.animated).Build()
	if err != nil {
		g.log.Warn("gradient is malformed", zap.String("name", g.name), zap.Float64("frame", frame), zap.Error(err))
	}
	g.stops = stops
}

// Stops returns the merged color stops at the last update.
func (g *GradientFill) Stops() []Stop {
	return g.stops
}

// Gradient returns the gradient at the last update, or nil if its type is unknown.
func (g *GradientFill) Gradient() *Gradient {
	if g.gradientType == 0 {
		return nil
	}
	opacity := g.opacity.Value() / 100.0
	grad := &Gradient{
		Type:  g.gradientType,
		Start: g.start.Value(),
		End:   g.end.Value(),
		Stops: make([]GradientStop, 0, len(g.stops)),
	}
	for _, stop := range g.stops {
		grad.Stops = append(grad.Stops, GradientStop{
			Offset: stop.Offset,
			Color:  stop.Color.RGBA(opacity),
		})
	}
	if g.gradientType == RadialGradient {
		d := grad.End.Sub(grad.Start)
		grad.Radius = d.Length()
		angle := math.Atan2(d.Y, d.X) + degToRad(g.highlightAngle.Value())
		dist := grad.Radius * clamp(g.highlightLength.Value()/100.0, -0.99, 0.99)
		grad.Focal = grad.Start.Add(Point{math.Cos(angle), math.Sin(angle)}.Mul(dist))
	} else {
		grad.Focal = grad.Start
	}
	return grad
}

func (g *GradientFill) render(r *renderer, frame float64) {
	if grad := g.Gradient(); grad != nil {
		r.setBrush(Brush{Gradient: grad})
	}
}

////////////////////////////////////////////////////////////////

// Stroke outlines the shapes that precede it in a group.
type Stroke struct {
	base
	color      Property[Vec4]
	opacity    Property[float64] // in percent
	width      Property[float64]
	cap        Capper
	join       Joiner
	miterLimit float64
	dashes     []Property[float64]
	dashOffset Property[float64]
	dashed     []float64
}

func parseStroke(ps *parser, parent Node, def document.Value) *Stroke {
	s := &Stroke{}
	s.parseBase(ps, StrokeNode, def)
	s.parent = parent
	if s.hidden {
		return s
	}

	switch lc := def.Get("lc").Int(); lc {
	case 1:
		s.cap = ButtCap
	case 2:
		s.cap = RoundCap
	case 3:
		s.cap = SquareCap
	default:
		ps.log.Warn("unknown line cap", zap.Int("lc", lc), zap.String("name", s.name))
	}
	switch lj := def.Get("lj").Int(); lj {
	case 1:
		s.join = MiterJoin
		s.miterLimit = def.Get("ml").FloatOr(4.0)
	case 2:
		s.join = RoundJoin
	case 3:
		s.join = BevelJoin
	default:
		ps.log.Warn("unknown line join", zap.Int("lj", lj), zap.String("name", s.name))
	}

	s.color = parseProperty[Vec4](ps, def.Get("c"))
	s.opacity = parsePropertyOr(ps, def, "o", 100.0)
	s.width = parseProperty[float64](ps, def.Get("w"))

	offsetFound := false
	for _, part := range def.Get("d").Items() {
		if part.Get("n").Text() == "o" {
			if offsetFound {
				ps.log.Warn("stroke has two dash offsets", zap.String("name", s.name))
				s.dashes = nil
				break
			}
			offsetFound = true
			s.dashOffset = parseProperty[float64](ps, part.Get("v"))
		} else {
			s.dashes = append(s.dashes, parseProperty[float64](ps, part.Get("v")))
		}
	}
	return s
}

func (s *Stroke) clone(parent Node) Node {
	t := &Stroke{
		base:       s.copyBase(parent),
		color:      s.color.Clone(),
		opacity:    s.opacity.Clone(),
		width:      s.width.Clone(),
		cap:        s.cap,
		join:       s.join,
		miterLimit: s.miterLimit,
		dashOffset: s.dashOffset.Clone(),
	}
	if s.dashes != nil {
		t.dashes = make([]Property[float64], len(s.dashes))
		for i, d := range s.dashes {
			t.dashes[i] = d.Clone()
		}
	}
	return t
}

func (s *Stroke) update(frame float64) {
	s.color.Update(frame)
	s.opacity.Update(frame)
	s.width.Update(frame)
	s.dashOffset.Update(frame)

	s.dashed = s.dashed[:0]
	width := s.width.Value()
	for i := range s.dashes {
		s.dashes[i].Update(frame)
		if !equal(width, 0.0) {
			s.dashed = append(s.dashed, s.dashes[i].Value()/width)
		}
	}
	if len(s.dashed)%2 == 1 {
		s.dashed = append(s.dashed, s.dashed...)
	}
}

// Pen returns the stroke style at the last update. Dashes are in units of the line width.
func (s *Stroke) Pen() Pen {
	width := s.width.Value()
	if equal(width, 0.0) {
		return NoPen
	}
	pen := Pen{
		Color:      s.color.Value().RGBA(s.opacity.Value() / 100.0),
		Width:      width,
		Cap:        s.cap,
		Join:       s.join,
		MiterLimit: s.miterLimit,
	}
	if 0 < len(s.dashed) {
		pen.Dashes = append([]float64(nil), s.dashed...)
		pen.DashOffset = s.dashOffset.Value() / width
	}
	return pen
}

func (s *Stroke) render(r *renderer, frame float64) {
	r.setPen(s.Pen())
}
