package lottie

import (
	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// freeFormVertex is one vertex of a free form path with its in and out tangents relative to the vertex.
type freeFormVertex struct {
	pos Property[Point]
	in  Property[Point]
	out Property[Point]
}

type closedAt struct {
	frame  float64
	closed bool
}

// FreeForm is a Bézier path given by vertices with in and out tangents, either static or animated per vertex.
type FreeForm struct {
	static   *Path
	vertices []freeFormVertex
	closed   []closedAt // ordered by frame
}

// parseFreeForm parses a shape property {"k": {"c":..,"i":..,"o":..,"v":..}} or {"k": [keyframes]}.
func parseFreeForm(ps *parser, def document.Value) *FreeForm {
	f := &FreeForm{}
	def = ps.resolveExpression(def)
	k := def.Get("k")
	if !k.IsArray() {
		f.static = buildFreeForm(k)
		return f
	} else if k.Len() == 0 || !k.Index(0).Has("t") {
		// static shape wrapped in an array
		f.static = buildFreeForm(k.Index(0))
		return f
	}
	f.parseKeyframes(ps, k)
	return f
}

func shapeValue(v document.Value) document.Value {
	if v.IsArray() {
		return v.Index(0)
	}
	return v
}

func (f *FreeForm) parseKeyframes(ps *parser, keyframes document.Value) {
	type entry struct {
		pos, in, out []keyframe[Point]
	}
	entries := []entry{}

	for _, kf := range keyframes.Items() {
		frame := kf.Get("t").Float()
		hold := kf.Get("h").Int() == 1
		easingIn := parseHandle(kf.Get("i"))
		easingOut := parseHandle(kf.Get("o"))

		start := shapeValue(kf.Get("s"))
		end := shapeValue(kf.Get("e"))
		startVertices := start.Get("v")
		if 0 < startVertices.Len() && 0 < len(entries) && startVertices.Len() != len(entries) {
			ps.log.Warn("shape keyframes have a different number of vertices", zap.Int("expected", len(entries)), zap.Int("got", startVertices.Len()))
			f.vertices = nil
			f.closed = nil
			return
		}
		n := startVertices.Len()
		if n == 0 {
			n = len(entries)
		}
		if n == 0 {
			ps.log.Warn("shape keyframe has no vertices")
			return
		}
		if len(entries) == 0 {
			entries = make([]entry, n)
		}

		for i := 0; i < n; i++ {
			pos := keyframe[Point]{frame: frame, hold: hold}
			in := keyframe[Point]{frame: frame, hold: hold}
			out := keyframe[Point]{frame: frame, hold: hold}
			if 0 < startVertices.Len() {
				pos.easingIn, pos.easingOut = easingIn, easingOut
				in.easingIn, in.easingOut = easingIn, easingOut
				out.easingIn, out.easingOut = easingIn, easingOut

				pos.start, pos.hasStart = parsePoint(startVertices.Index(i)), true
				in.start, in.hasStart = parsePoint(start.Get("i").Index(i)), true
				out.start, out.hasStart = parsePoint(start.Get("o").Index(i)), true
				if end.Has("v") {
					pos.end, pos.hasEnd = parsePoint(end.Get("v").Index(i)), true
					in.end, in.hasEnd = parsePoint(end.Get("i").Index(i)), true
					out.end, out.hasEnd = parsePoint(end.Get("o").Index(i)), true
				}
			}
			entries[i].pos = append(entries[i].pos, pos)
			entries[i].in = append(entries[i].in, in)
			entries[i].out = append(entries[i].out, out)
		}
		f.closed = append(f.closed, closedAt{frame, 0 < startVertices.Len() && start.Get("c").Bool()})
	}

	f.vertices = make([]freeFormVertex, len(entries))
	for i, e := range entries {
		f.vertices[i].pos.construct(e.pos)
		f.vertices[i].in.construct(e.in)
		f.vertices[i].out.construct(e.out)
	}
}

func (f *FreeForm) clone() *FreeForm {
	g := &FreeForm{static: f.static, closed: f.closed}
	if f.vertices != nil {
		g.vertices = make([]freeFormVertex, len(f.vertices))
		copy(g.vertices, f.vertices)
	}
	return g
}

// Animated returns true if the vertices are keyframed.
func (f *FreeForm) Animated() bool {
	return f.static == nil
}

// Closed returns whether the path is closed at the given frame, which is taken from the latest keyframe at or before the frame.
func (f *FreeForm) Closed(frame float64) bool {
	if len(f.closed) == 0 {
		return false
	}
	closed := f.closed[0].closed
	for _, c := range f.closed {
		if frame < c.frame {
			break
		}
		closed = c.closed
	}
	return closed
}

// Build returns the path at the given frame.
func (f *FreeForm) Build(frame float64) *Path {
	if f.static != nil {
		return f.static.Copy()
	}
	for i := range f.vertices {
		f.vertices[i].pos.Update(frame)
		f.vertices[i].in.Update(frame)
		f.vertices[i].out.Update(frame)
	}

	n := len(f.vertices)
	if n < 2 {
		return &Path{}
	}
	vertex := func(i int) (Point, Point, Point) {
		v := f.vertices[i]
		return v.pos.Value(), v.in.Value(), v.out.Value()
	}
	return bezierPath(n, vertex, f.Closed(frame))
}

// buildFreeForm builds the path of a static shape value.
func buildFreeForm(shape document.Value) *Path {
	vs, ins, outs := shape.Get("v"), shape.Get("i"), shape.Get("o")
	n := vs.Len()
	if n < 2 {
		return &Path{}
	}
	vertex := func(i int) (Point, Point, Point) {
		return parsePoint(vs.Index(i)), parsePoint(ins.Index(i)), parsePoint(outs.Index(i))
	}
	return bezierPath(n, vertex, shape.Get("c").Bool())
}

// bezierPath connects n vertices by cubic Béziers whose control points are the out tangent of the first and the in tangent of the second vertex.
func bezierPath(n int, vertex func(int) (Point, Point, Point), closed bool) *Path {
	p := &Path{}
	v0, in0, out := vertex(0)
	p.MoveTo(v0.X, v0.Y)
	prev := v0
	for i := 1; i < n; i++ {
		v, in, nextOut := vertex(i)
		c1, c2 := prev.Add(out), v.Add(in)
		p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
		prev, out = v, nextOut
	}
	if closed {
		c1, c2 := prev.Add(out), v0.Add(in0)
		p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, v0.X, v0.Y)
		p.Close()
	}
	return p
}
