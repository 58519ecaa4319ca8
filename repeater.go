package lottie

import (
	"math"

	"github.com/Seanld/lottie/document"
)

// Repeater draws the shapes that precede it in a group a number of times, each instance transformed relative to the previous one.
type Repeater struct {
	base
	copies    Property[float64]
	offset    Property[float64]
	transform *RepeaterTransform
}

func parseRepeater(ps *parser, parent Node, def document.Value) *Repeater {
	rp := &Repeater{}
	rp.parseBase(ps, RepeaterNode, def)
	rp.parent = parent
	rp.copies = parsePropertyOr(ps, def, "c", 1.0)
	rp.offset = parseProperty[float64](ps, def.Get("o"))
	rp.transform = parseRepeaterTransform(ps, rp, def.Get("tr"))
	rp.appendChild(rp.transform)
	return rp
}

func (rp *Repeater) clone(parent Node) Node {
	q := &Repeater{
		base:   rp.copyBase(parent),
		copies: rp.copies.Clone(),
		offset: rp.offset.Clone(),
	}
	q.transform = rp.transform.cloneTransform(q)
	q.appendChild(q.transform)
	return q
}

func (rp *Repeater) update(frame float64) {
	rp.copies.Update(frame)
	rp.offset.Update(frame)
	rp.transform.setInstanceCount(rp.Copies())
	rp.transform.update(frame)
}

// Copies returns the number of instances.
func (rp *Repeater) Copies() int {
	return max(0, int(math.Round(rp.copies.Value())))
}

// Offset returns the number of transform steps applied before the first instance.
func (rp *Repeater) Offset() float64 {
	return rp.offset.Value()
}

// Transform returns the transform between consecutive instances.
func (rp *Repeater) Transform() *RepeaterTransform {
	return rp.transform
}

func (rp *Repeater) render(r *renderer, frame float64) {
	r.repeater(rp)
}
