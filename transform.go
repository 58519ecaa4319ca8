package lottie

import (
	"math"

	"github.com/Seanld/lottie/document"
)

// basicTransform is the anchor, position, scale, rotation and opacity shared by layer, shape and repeater transforms.
type basicTransform struct {
	base

	anchor   Property[Point]
	position Property[Point]
	split    bool // position is given as separate x and y properties
	xPos     Property[float64]
	yPos     Property[float64]
	scale    Property[Point]   // in percent
	rotation Property[float64] // in degrees
	opacity  Property[float64] // in percent
}

func (t *basicTransform) parse(ps *parser, kind NodeKind, def document.Value) {
	t.parseBase(ps, kind, def)

	t.anchor = parseProperty[Point](ps, def.Get("a"))
	if p := def.Get("p"); p.Get("s").Bool() {
		// split position: {"s":true,"x":{...},"y":{...}}
		t.split = true
		t.xPos = parseProperty[float64](ps, p.Get("x"))
		t.yPos = parseProperty[float64](ps, p.Get("y"))
	} else if !p.Has("k") && (def.Has("px") || def.Has("py")) {
		t.split = true
		t.xPos = parseProperty[float64](ps, def.Get("px"))
		t.yPos = parseProperty[float64](ps, def.Get("py"))
	} else {
		t.position = parseProperty[Point](ps, p)
	}
	t.scale = parsePropertyOr(ps, def, "s", Point{100.0, 100.0})
	if def.Has("rz") && !def.Has("r") {
		t.rotation = parseProperty[float64](ps, def.Get("rz"))
	} else {
		t.rotation = parseProperty[float64](ps, def.Get("r"))
	}
	t.opacity = parsePropertyOr(ps, def, "o", 100.0)
}

// parsePropertyOr parses the property at key, or returns a constant when the key is absent.
func parsePropertyOr[T PropertyValue](ps *parser, def document.Value, key string, v T) Property[T] {
	if !def.Has(key) {
		return NewProperty(v)
	}
	return parseProperty[T](ps, def.Get(key))
}

func (t *basicTransform) copyTransform(parent Node) basicTransform {
	return basicTransform{
		base:     t.copyBase(parent),
		anchor:   t.anchor.Clone(),
		position: t.position.Clone(),
		split:    t.split,
		xPos:     t.xPos.Clone(),
		yPos:     t.yPos.Clone(),
		scale:    t.scale.Clone(),
		rotation: t.rotation.Clone(),
		opacity:  t.opacity.Clone(),
	}
}

func (t *basicTransform) update(frame float64) {
	t.anchor.Update(frame)
	if t.split {
		t.xPos.Update(frame)
		t.yPos.Update(frame)
	} else {
		t.position.Update(frame)
	}
	t.scale.Update(frame)
	t.rotation.Update(frame)
	t.opacity.Update(frame)
}

func (t *basicTransform) Anchor() Point {
	return t.anchor.Value()
}

func (t *basicTransform) Position() Point {
	if t.split {
		return Point{t.xPos.Value(), t.yPos.Value()}
	}
	return t.position.Value()
}

// Scale returns the scale as a factor.
func (t *basicTransform) Scale() Point {
	return t.scale.Value().Div(100.0)
}

// Rotation returns the rotation in degrees, clockwise on screen.
func (t *basicTransform) Rotation() float64 {
	return t.rotation.Value()
}

// Opacity returns the opacity in [0,1].
func (t *basicTransform) Opacity() float64 {
	return t.opacity.Value() / 100.0
}

// clearOpacity makes the transform fully opaque.
func (t *basicTransform) clearOpacity() {
	t.opacity = NewProperty(100.0)
}

// Matrix returns translate(position) rotate scale translate(-anchor).
func (t *basicTransform) Matrix() Matrix {
	return t.matrix(Identity)
}

func (t *basicTransform) matrix(skew Matrix) Matrix {
	pos, anchor, scale := t.Position(), t.Anchor(), t.Scale()
	m := Identity.Translate(pos.X, pos.Y)
	if rot := t.Rotation(); !equal(rot, 0.0) {
		m = m.Rotate(rot)
	}
	return m.Mul(skew).Scale(scale.X, scale.Y).Translate(-anchor.X, -anchor.Y)
}

////////////////////////////////////////////////////////////////

// LayerTransform is the "ks" transform of a layer.
type LayerTransform struct {
	basicTransform
}

func parseLayerTransform(ps *parser, parent Node, def document.Value) *LayerTransform {
	t := &LayerTransform{}
	t.parse(ps, LayerTransformNode, def)
	t.parent = parent
	return t
}

func (t *LayerTransform) clone(parent Node) Node {
	return &LayerTransform{t.copyTransform(parent)}
}

func (t *LayerTransform) render(r *renderer, frame float64) {
	r.applyTransform(t.Matrix(), t.Opacity())
}

////////////////////////////////////////////////////////////////

// ShapeTransform is the "tr" item of a shape group, which adds skew to the basic transform.
type ShapeTransform struct {
	basicTransform

	skew     Property[float64] // in degrees
	skewAxis Property[float64] // in degrees
}

func parseShapeTransform(ps *parser, parent Node, def document.Value) *ShapeTransform {
	t := &ShapeTransform{}
	t.parse(ps, ShapeTransformNode, def)
	t.parent = parent
	t.skew = parseProperty[float64](ps, def.Get("sk"))
	t.skewAxis = parseProperty[float64](ps, def.Get("sa"))
	return t
}

func (t *ShapeTransform) clone(parent Node) Node {
	return &ShapeTransform{
		basicTransform: t.copyTransform(parent),
		skew:           t.skew.Clone(),
		skewAxis:       t.skewAxis.Clone(),
	}
}

func (t *ShapeTransform) update(frame float64) {
	t.basicTransform.update(frame)
	t.skew.Update(frame)
	t.skewAxis.Update(frame)
}

// Skew returns the skew transformation, which shears by the skew angle along the skew axis.
func (t *ShapeTransform) Skew() Matrix {
	sk := t.skew.Value()
	if equal(sk, 0.0) {
		return Identity
	}
	axis := t.skewAxis.Value()
	return Identity.Rotate(-axis).Shear(math.Tan(degToRad(-sk)), 0.0).Rotate(axis)
}

func (t *ShapeTransform) Matrix() Matrix {
	return t.matrix(t.Skew())
}

func (t *ShapeTransform) render(r *renderer, frame float64) {
	r.applyTransform(t.Matrix(), t.Opacity())
}

////////////////////////////////////////////////////////////////

// RepeaterTransform is the per instance transform of a repeater, with an opacity ramp from the first to the last instance.
type RepeaterTransform struct {
	basicTransform

	startOpacity Property[float64] // in percent
	endOpacity   Property[float64] // in percent
	copies       int
	opacities    []float64
}

func parseRepeaterTransform(ps *parser, parent Node, def document.Value) *RepeaterTransform {
	t := &RepeaterTransform{}
	t.parse(ps, RepeaterTransformNode, def)
	t.parent = parent
	t.startOpacity = parsePropertyOr(ps, def, "so", 100.0)
	t.endOpacity = parsePropertyOr(ps, def, "eo", 100.0)
	return t
}

func (t *RepeaterTransform) clone(parent Node) Node {
	return t.cloneTransform(parent)
}

func (t *RepeaterTransform) cloneTransform(parent Node) *RepeaterTransform {
	return &RepeaterTransform{
		basicTransform: t.copyTransform(parent),
		startOpacity:   t.startOpacity.Clone(),
		endOpacity:     t.endOpacity.Clone(),
		copies:         t.copies,
	}
}

func (t *RepeaterTransform) setInstanceCount(copies int) {
	t.copies = copies
}

func (t *RepeaterTransform) update(frame float64) {
	t.basicTransform.update(frame)
	t.startOpacity.Update(frame)
	t.endOpacity.Update(frame)

	so, eo := t.startOpacity.Value(), t.endOpacity.Value()
	t.opacities = t.opacities[:0]
	for i := 0; i < t.copies; i++ {
		t.opacities = append(t.opacities, so+(eo-so)*float64(i)/float64(t.copies))
	}
}

// Opacities returns the opacity in percent of every instance.
func (t *RepeaterTransform) Opacities() []float64 {
	return t.opacities
}

// OpacityAt returns the opacity in [0,1] of an instance.
func (t *RepeaterTransform) OpacityAt(instance int) float64 {
	if instance < 0 || len(t.opacities) <= instance {
		return 1.0
	}
	return t.opacities[instance] / 100.0
}

func (t *RepeaterTransform) render(r *renderer, frame float64) {}
