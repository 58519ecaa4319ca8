package lottie

import (
	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// trimmable is a node that can be cut by a trim path.
type trimmable interface {
	Node
	applyTrim(t *TrimPath)
}

// parseShape parses an item of a shape layer's "shapes" or a group's "it" list. Unsupported types return nil.
func parseShape(ps *parser, parent Node, def document.Value) Node {
	ty := def.Get("ty").Text()
	var n Node
	switch ty {
	case "gr":
		n = parseGroup(ps, parent, def)
	case "rc":
		n = parseRect(ps, parent, def)
	case "el":
		n = parseEllipse(ps, parent, def)
	case "rd":
		n = parseRound(ps, parent, def)
	case "sh":
		n = parseShapePath(ps, parent, def)
	case "fl":
		n = parseFill(ps, parent, def)
	case "gf":
		n = parseGradientFill(ps, parent, def)
	case "st":
		n = parseStroke(ps, parent, def)
	case "tr":
		n = parseShapeTransform(ps, parent, def)
	case "tm":
		n = parseTrimPath(ps, parent, def)
	case "rp":
		n = parseRepeater(ps, parent, def)
	default:
		ps.log.Warn("unsupported shape type", zap.String("type", ty), zap.String("name", def.Get("nm").Text()))
		return nil
	}
	return n
}

// geometry is a shape that produces a path every frame.
type geometry struct {
	base
	path      *Path
	direction int
}

func (g *geometry) parseGeometry(ps *parser, kind NodeKind, parent Node, def document.Value) {
	g.parseBase(ps, kind, def)
	g.parent = parent
	g.direction = def.Get("d").Int()
	g.path = &Path{}
}

func (g *geometry) copyGeometry(parent Node) geometry {
	return geometry{
		base:      g.copyBase(parent),
		path:      g.path,
		direction: g.direction,
	}
}

// Path returns the path at the last update.
func (g *geometry) Path() *Path {
	return g.path
}

func (g *geometry) applyTrim(t *TrimPath) {
	if t.Simultaneous() {
		g.path = t.Trim(g.path)
	}
}

func (g *geometry) render(r *renderer, frame float64) {
	r.geometry(g.path)
}

////////////////////////////////////////////////////////////////

// RectShape is a rectangle with rounded corners, positioned by its center.
type RectShape struct {
	geometry
	position  Property[Point]
	size      Property[Point]
	roundness Property[float64]
}

func parseRect(ps *parser, parent Node, def document.Value) *RectShape {
	n := &RectShape{}
	n.parseGeometry(ps, RectNode, parent, def)
	if n.hidden {
		return n
	}
	n.position = parseProperty[Point](ps, def.Get("p"))
	n.size = parseProperty[Point](ps, def.Get("s"))
	n.roundness = parseProperty[float64](ps, def.Get("r"))
	return n
}

func (n *RectShape) clone(parent Node) Node {
	return &RectShape{
		geometry:  n.copyGeometry(parent),
		position:  n.position.Clone(),
		size:      n.size.Clone(),
		roundness: n.roundness.Clone(),
	}
}

func (n *RectShape) update(frame float64) {
	n.position.Update(frame)
	n.size.Update(frame)
	n.roundness.Update(frame)
	n.path = rectPath(n.position.Value(), n.size.Value(), n.roundness.Value(), n.direction)
}

////////////////////////////////////////////////////////////////

// EllipseShape is an ellipse positioned by its center.
type EllipseShape struct {
	geometry
	position Property[Point]
	size     Property[Point]
}

func parseEllipse(ps *parser, parent Node, def document.Value) *EllipseShape {
	n := &EllipseShape{}
	n.parseGeometry(ps, EllipseNode, parent, def)
	if n.hidden {
		return n
	}
	n.position = parseProperty[Point](ps, def.Get("p"))
	n.size = parseProperty[Point](ps, def.Get("s"))
	return n
}

func (n *EllipseShape) clone(parent Node) Node {
	return &EllipseShape{
		geometry: n.copyGeometry(parent),
		position: n.position.Clone(),
		size:     n.size.Clone(),
	}
}

func (n *EllipseShape) update(frame float64) {
	n.position.Update(frame)
	n.size.Update(frame)
	n.path = ellipsePath(n.position.Value(), n.size.Value(), n.direction)
}

////////////////////////////////////////////////////////////////

// Round is a circle given by a position and a diameter.
type Round struct {
	geometry
	position Property[Point]
	radius   Property[float64]
}

func parseRound(ps *parser, parent Node, def document.Value) *Round {
	n := &Round{}
	n.parseGeometry(ps, RoundedPointNode, parent, def)
	if n.hidden {
		return n
	}
	n.position = parseProperty[Point](ps, def.Get("p"))
	n.radius = parseProperty[float64](ps, def.Get("r"))
	return n
}

func (n *Round) clone(parent Node) Node {
	return &Round{
		geometry: n.copyGeometry(parent),
		position: n.position.Clone(),
		radius:   n.radius.Clone(),
	}
}

func (n *Round) update(frame float64) {
	n.position.Update(frame)
	n.radius.Update(frame)
	n.path = roundPath(n.position.Value(), n.radius.Value(), n.direction)
}

////////////////////////////////////////////////////////////////

// ShapePath is a free form Bézier path.
type ShapePath struct {
	geometry
	shape *FreeForm
}

func parseShapePath(ps *parser, parent Node, def document.Value) *ShapePath {
	n := &ShapePath{}
	n.parseGeometry(ps, FreeFormNode, parent, def)
	if n.hidden {
		return n
	}
	n.shape = parseFreeForm(ps, def.Get("ks"))
	return n
}

func (n *ShapePath) clone(parent Node) Node {
	m := &ShapePath{geometry: n.copyGeometry(parent)}
	if n.shape != nil {
		m.shape = n.shape.clone()
	}
	return m
}

func (n *ShapePath) update(frame float64) {
	if n.shape == nil {
		return
	}
	n.path = directed(n.shape.Build(frame), n.direction)
}
