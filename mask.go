package lottie

import (
	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// MaskMode is how a mask combines with the masks before it.
type MaskMode int

const (
	MaskAdditive MaskMode = iota
	MaskIntersect
)

func (m MaskMode) String() string {
	if m == MaskIntersect {
		return "intersect"
	}
	return "additive"
}

// Masks holds the masks of a layer, which together clip the layer's contents.
type Masks struct {
	base
}

// parseMasks parses a layer's "masksProperties". It returns nil when the layer has no masks in use.
func parseMasks(ps *parser, parent Node, defs document.Value) *Masks {
	var m *Masks
	for _, def := range defs.Items() {
		if def.Get("mode").Text() == "n" {
			continue
		}
		if m == nil {
			m = &Masks{}
			m.kind = MasksNode
			m.log = ps.log
			m.parent = parent
		}
		m.appendChild(parseMaskShape(ps, m, def))
	}
	return m
}

func (m *Masks) clone(parent Node) Node {
	n := &Masks{base: m.copyBase(parent)}
	m.cloneChildren(n)
	return n
}

func (m *Masks) render(r *renderer, frame float64) {
	m.base.render(r, frame)
	r.masks()
}

////////////////////////////////////////////////////////////////

// MaskShape is a single mask path.
type MaskShape struct {
	base
	shape    *FreeForm
	path     *Path
	inverted bool
	mode     MaskMode
	opacity  Property[float64] // in percent
}

func parseMaskShape(ps *parser, parent Node, def document.Value) *MaskShape {
	m := &MaskShape{}
	m.parseBase(ps, MaskShapeNode, def)
	m.parent = parent
	m.inverted = def.Get("inv").Bool()
	m.opacity = parsePropertyOr(ps, def, "o", 100.0)
	if m.opacity.Value() < 100.0 || m.opacity.Animated() {
		ps.log.Warn("transparent masks are not supported", zap.String("name", m.name))
	}

	switch mode := def.Get("mode").Text(); mode {
	case "a":
		m.mode = MaskAdditive
	case "i":
		m.mode = MaskIntersect
	default:
		ps.log.Warn("unsupported mask mode, using additive", zap.String("mode", mode), zap.String("name", m.name))
		m.mode = MaskAdditive
	}
	m.shape = parseFreeForm(ps, def.Get("pt"))
	m.path = &Path{}
	return m
}

func (m *MaskShape) clone(parent Node) Node {
	return &MaskShape{
		base:     m.copyBase(parent),
		shape:    m.shape.clone(),
		path:     m.path,
		inverted: m.inverted,
		mode:     m.mode,
		opacity:  m.opacity.Clone(),
	}
}

func (m *MaskShape) update(frame float64) {
	m.opacity.Update(frame)
	m.path = m.shape.Build(frame)
}

// Path returns the mask path at the last update.
func (m *MaskShape) Path() *Path {
	return m.path
}

// Inverted returns true if the mask keeps the area outside of its path.
func (m *MaskShape) Inverted() bool {
	return m.inverted
}

func (m *MaskShape) Mode() MaskMode {
	return m.mode
}

func (m *MaskShape) render(r *renderer, frame float64) {
	r.maskShape(m)
}
