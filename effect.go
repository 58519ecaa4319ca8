package lottie

import (
	"image/color"

	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// parseEffects parses a layer's "ef" list in reverse. Sliders and groups only carry values for expressions, the fill effect paints the layer.
func parseEffects(ps *parser, parent Node, defs document.Value) []Node {
	var effects []Node
	for i := defs.Len() - 1; 0 <= i; i-- {
		def := defs.Index(i)
		switch ty := def.Get("ty").Int(); ty {
		case 0:
			effects = append(effects, parseEffectGroup(ps, parent, def, false))
		case 5:
			if def.Get("en").Int() != 0 {
				effects = append(effects, parseEffectGroup(ps, parent, def, true))
			}
		case 21:
			effects = append(effects, parseFillEffect(ps, parent, def))
		default:
			ps.log.Warn("unsupported effect", zap.Int("type", ty), zap.String("name", def.Get("nm").Text()))
		}
	}
	return effects
}

func cloneEffects(effects []Node, parent Node) []Node {
	if effects == nil {
		return nil
	}
	clones := make([]Node, 0, len(effects))
	for _, effect := range effects {
		clones = append(clones, effect.clone(parent))
	}
	return clones
}

// EffectGroup is a slider or a group of effect parameters.
type EffectGroup struct {
	base
}

func parseEffectGroup(ps *parser, parent Node, def document.Value, group bool) *EffectGroup {
	e := &EffectGroup{}
	e.parseBase(ps, EffectGroupNode, def)
	e.parent = parent
	if group {
		e.children = parseEffects(ps, e, def.Get("ef"))
	}
	return e
}

func (e *EffectGroup) clone(parent Node) Node {
	f := &EffectGroup{base: e.copyBase(parent)}
	e.cloneChildren(f)
	return f
}

////////////////////////////////////////////////////////////////

// FillEffect paints all fills and strokes of its layer in a single color.
type FillEffect struct {
	base
	color   Property[Vec4]
	opacity Property[float64] // in [0,1]
}

var fillEffectUnsupported = map[int]string{
	0: "fill mask",
	1: "all masks",
	3: "invert",
	4: "horizontal feather",
	5: "vertical feather",
}

func parseFillEffect(ps *parser, parent Node, def document.Value) *FillEffect {
	e := &FillEffect{}
	e.parseBase(ps, FillEffectNode, def)
	e.parent = parent
	if e.hidden {
		return e
	}

	params := def.Get("ef")
	e.color = parseProperty[Vec4](ps, params.Index(2).Get("v"))
	e.opacity = parsePropertyOr(ps, params.Index(6), "v", 1.0)
	for i := 0; i < 6; i++ {
		if what, ok := fillEffectUnsupported[i]; ok && !equal(params.Index(i).Get("v").Get("k").Float(), 0.0) {
			ps.log.Warn("fill effect property is not supported", zap.String("property", what))
		}
	}
	return e
}

func (e *FillEffect) clone(parent Node) Node {
	return &FillEffect{
		base:    e.copyBase(parent),
		color:   e.color.Clone(),
		opacity: e.opacity.Clone(),
	}
}

func (e *FillEffect) update(frame float64) {
	e.color.Update(frame)
	e.opacity.Update(frame)
}

// Color returns the fill color, alpha-premultiplied.
func (e *FillEffect) Color() color.RGBA {
	return e.color.Value().RGBA(1.0)
}

// Opacity returns the opacity in [0,1].
func (e *FillEffect) Opacity() float64 {
	return e.opacity.Value()
}

func (e *FillEffect) render(r *renderer, frame float64) {
	r.fillEffectStart(e)
}
