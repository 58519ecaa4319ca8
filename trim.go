package lottie

import (
	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// TrimPath cuts the shapes that precede it in a group to a range of their length. Start and end are in percent, the offset in degrees.
type TrimPath struct {
	base
	start        Property[float64]
	end          Property[float64]
	offset       Property[float64]
	simultaneous bool
}

func parseTrimPath(ps *parser, parent Node, def document.Value) *TrimPath {
	t := &TrimPath{}
	t.parseBase(ps, TrimPathNode, def)
	t.parent = parent
	t.start = parseProperty[float64](ps, def.Get("s"))
	t.end = parsePropertyOr(ps, def, "e", 100.0)
	t.offset = parseProperty[float64](ps, def.Get("o"))

	switch ps.trimMode {
	case TrimModeSimultaneous:
		t.simultaneous = true
	case TrimModeIndividual:
		t.simultaneous = false
	default:
		switch m := def.Get("m").IntOr(1); m {
		case 1:
			t.simultaneous = true
		case 2:
			t.simultaneous = false
		default:
			ps.log.Warn("unknown trim mode, using simultaneous", zap.Int("mode", m))
			t.simultaneous = true
		}
	}
	return t
}

func (t *TrimPath) clone(parent Node) Node {
	return &TrimPath{
		base:         t.copyBase(parent),
		start:        t.start.Clone(),
		end:          t.end.Clone(),
		offset:       t.offset.Clone(),
		simultaneous: t.simultaneous,
	}
}

func (t *TrimPath) update(frame float64) {
	t.start.Update(frame)
	t.end.Update(frame)
	t.offset.Update(frame)
}

// Simultaneous returns true if every shape is trimmed on its own, and false if the shapes are trimmed as one path.
func (t *TrimPath) Simultaneous() bool {
	return t.simultaneous
}

// Start returns the start in percent.
func (t *TrimPath) Start() float64 {
	return t.start.Value()
}

// End returns the end in percent.
func (t *TrimPath) End() float64 {
	return t.end.Value()
}

// Offset returns the offset in degrees.
func (t *TrimPath) Offset() float64 {
	return t.offset.Value()
}

// applyTrim composes an outer trim into t, so that t selects its range within the range of the outer trim.
func (t *TrimPath) applyTrim(outer *TrimPath) {
	s0, e0 := outer.Start(), outer.End()
	s, e := t.Start(), t.End()
	t.start.SetValue(s0 + s/100.0*(e0-s0))
	t.end.SetValue(s0 + e/100.0*(e0-s0))
	t.offset.SetValue(t.Offset() + outer.Offset())
}

// Trim returns the trimmed path.
func (t *TrimPath) Trim(p *Path) *Path {
	s, e := t.Start(), t.End()
	if equal(s, e) {
		return &Path{}
	}
	return p.Trim(s/100.0, e/100.0, t.Offset()/360.0)
}

func (t *TrimPath) render(r *renderer, frame float64) {
	if t.simultaneous {
		r.setTrimmingState(trimSimultaneous)
	} else {
		r.setTrimmingState(trimIndividual)
	}
}
