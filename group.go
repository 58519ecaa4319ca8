package lottie

import (
	"github.com/Seanld/lottie/document"
)

// Group is a list of shapes with an optional transform. Its geometry is merged and drawn with the paint that follows it in the document.
type Group struct {
	base
	appliedTrim *TrimPath
}

func parseGroup(ps *parser, parent Node, def document.Value) *Group {
	g := &Group{}
	g.parseBase(ps, GroupNode, def)
	g.parent = parent
	if g.hidden {
		return g
	}
	g.parseItems(ps, def.Get("it"))
	return g
}

// parseItems parses the items in reverse, since in the document the paint comes after the geometry it applies to. The transform is moved in front so that it applies before the contents are drawn.
func (g *Group) parseItems(ps *parser, items document.Value) {
	for i := items.Len() - 1; 0 <= i; i-- {
		n := parseShape(ps, g, items.Index(i))
		if n == nil {
			continue
		} else if n.Kind() == ShapeTransformNode {
			g.prependChild(n)
		} else {
			g.appendChild(n)
		}
	}
}

func (g *Group) clone(parent Node) Node {
	h := &Group{base: g.copyBase(parent)}
	g.cloneChildren(h)
	return h
}

// AppliedTrim returns the trim path that applies to the group at the last update, or nil.
func (g *Group) AppliedTrim() *TrimPath {
	return g.appliedTrim
}

func (g *Group) render(r *renderer, frame float64) {
	r.saveState()
	trim := g.appliedTrim
	if trim != nil && !trim.Hidden() {
		if trim.Simultaneous() {
			r.setTrimmingState(trimSimultaneous)
		} else {
			r.setTrimmingState(trimIndividual)
		}
	} else {
		r.setTrimmingState(trimOff)
	}

	r.startMergeGeometry()
	for _, child := range g.children {
		if child.active(frame) {
			child.render(r, frame)
		}
	}
	r.renderMergedGeometry()

	if trim != nil && !trim.Hidden() && !trim.Simultaneous() {
		r.trim(trim)
	}
	r.restoreState()
}

// propagateTrim applies trim paths to the shapes that follow them among the children, and recurses into groups. A trim path that is itself trimmed by an inherited trim is composed with it. It returns the trim that applies to the children at the end of the list.
func propagateTrim(children []Node, inherited *TrimPath, frame float64) *TrimPath {
	trim := inherited
	for _, child := range children {
		if !child.active(frame) {
			continue
		}
		switch n := child.(type) {
		case *TrimPath:
			if trim != nil {
				n.applyTrim(trim)
			}
			trim = n
		case *Group:
			n.appliedTrim = propagateTrim(n.children, trim, frame)
		case trimmable:
			if trim != nil {
				n.applyTrim(trim)
			}
		}
	}
	return trim
}
