package lottie

import (
	"go.uber.org/zap"
)

type trimmingState int

const (
	trimOff trimmingState = iota
	trimSimultaneous
	trimIndividual
)

type repeatState struct {
	count     int
	offset    float64
	transform *RepeaterTransform
}

// renderState is the part of the render pass that is saved and restored along with the canvas state.
type renderState struct {
	trimming   trimmingState
	united     *Path // device space geometry collected for individual trimming
	fillEffect *FillEffect
	repeat     *repeatState
	pen        Pen
}

// renderer walks an updated scene tree and issues drawing commands to a Canvas.
type renderer struct {
	c   Canvas
	log *zap.Logger

	renderState
	stack []renderState

	merging     int
	merged      *Path // local geometry of the innermost group, drawn at once
	mergedStack []*Path

	// track matte, collected in device space from a layer with td > 0
	buildingClip bool
	clip         *Path

	// layer masks, collected in device space
	buildingMask bool
	mask         *Path
}

func newRenderer(c Canvas, log *zap.Logger) *renderer {
	r := &renderer{c: c, log: log}
	r.united = &Path{}
	r.merged = &Path{}
	return r
}

func (r *renderer) saveState() {
	r.c.SaveState()
	r.stack = append(r.stack, r.renderState)
	r.united = &Path{}
}

func (r *renderer) restoreState() {
	r.c.RestoreState()
	if len(r.stack) == 0 {
		r.log.Warn("unbalanced restore of render state")
		return
	}
	r.renderState = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *renderer) setTrimmingState(state trimmingState) {
	r.trimming = state
}

func (r *renderer) startMergeGeometry() {
	if 0 < r.merging {
		r.mergedStack = append(r.mergedStack, r.merged)
		r.merged = &Path{}
	}
	r.merging++
}

func (r *renderer) renderMergedGeometry() {
	if r.merging == 0 {
		r.log.Warn("merged geometry rendered without being started")
		return
	}
	if !r.merged.Empty() {
		r.c.DrawPath(r.merged)
	}
	r.merging--
	if 0 < r.merging && 0 < len(r.mergedStack) {
		r.merged = r.mergedStack[len(r.mergedStack)-1]
		r.mergedStack = r.mergedStack[:len(r.mergedStack)-1]
	} else {
		r.merged = &Path{}
	}
}

func (r *renderer) screen() *Path {
	w, h := r.c.Size()
	return Rectangle(0.0, 0.0, w, h)
}

// geometry draws a shape's path, or collects it for trimming, clipping or merging.
func (r *renderer) geometry(p *Path) {
	if p.Empty() {
		return
	}

	count := 1
	if r.repeat != nil {
		count = r.repeat.count
		r.c.SaveState()
		defer r.c.RestoreState()
	}
	opacity := r.c.Opacity()
	for i := 0; i < count; i++ {
		if r.repeat != nil {
			r.applyRepeaterTransform(i, opacity)
		}

		switch {
		case r.trimming == trimIndividual:
			r.united = prependPath(p.Transform(r.c.Transform()), r.united)
		case r.buildingClip:
			r.clip = prependPath(p.Transform(r.c.Transform()), r.clip)
		case 0 < r.merging && count == 1:
			r.merged = prependPath(p, r.merged)
		default:
			r.c.DrawPath(p)
		}
	}
}

func prependPath(p, q *Path) *Path {
	p = p.Copy()
	p.Append(q)
	return p
}

func (r *renderer) applyTransform(m Matrix, opacity float64) {
	r.c.SetTransform(r.c.Transform().Mul(m))
	r.c.SetOpacity(r.c.Opacity() * opacity)
}

func (r *renderer) setBrush(brush Brush) {
	if r.fillEffect != nil {
		return
	}
	r.c.SetBrush(brush)
}

func (r *renderer) setPen(pen Pen) {
	if r.fillEffect != nil {
		return
	}
	r.pen = pen
	r.c.SetPen(pen)
}

func (r *renderer) fillEffectStart(e *FillEffect) {
	r.fillEffect = e
	r.c.SetBrush(Brush{Color: e.Color()})
	r.c.SetOpacity(r.c.Opacity() * e.Opacity())
}

// trim draws the collected geometry of an individually trimmed group. The geometry is already in device space.
func (r *renderer) trim(t *TrimPath) {
	if r.united.Empty() || equal(r.united.Length(), 0.0) {
		return
	}
	trimmed := t.Trim(r.united)
	scale := r.c.Transform().ScaleFactor()

	r.c.SaveState()
	r.c.SetTransform(Identity)
	if !r.pen.IsNone() && !equal(scale, 1.0) {
		pen := r.pen
		pen.Width *= scale
		r.c.SetPen(pen)
	}
	r.c.DrawPath(trimmed)
	r.c.RestoreState()
}

func (r *renderer) repeater(rp *Repeater) {
	if r.repeat != nil {
		r.log.Warn("only one repeater can be active at a time", zap.String("name", rp.Name()))
		return
	}
	r.repeat = &repeatState{
		count:     rp.Copies(),
		offset:    rp.Offset(),
		transform: rp.Transform(),
	}
	pos := rp.Transform().Position().Mul(rp.Offset())
	r.c.SetTransform(r.c.Transform().Translate(pos.X, pos.Y))
}

// applyRepeaterTransform moves the canvas to the given instance. Instances accumulate their transform onto the previous one, while the opacity of each instance is relative to the base opacity.
func (r *renderer) applyRepeaterTransform(instance int, opacity float64) {
	tr := r.repeat.transform
	if 0 < instance {
		anchored := tr.Position().Sub(tr.Anchor())
		scale := tr.Scale()
		m := r.c.Transform().Translate(anchored.X, anchored.Y).Rotate(tr.Rotation()).Scale(scale.X, scale.Y)
		r.c.SetTransform(m)
	}
	r.c.SetOpacity(opacity * tr.OpacityAt(instance))
}

// matte starts a layer with respect to track mattes. A matte source layer collects its geometry as the clip path for the next layer.
func (r *renderer) matte(l *layer) {
	if l.isMatteSource() {
		r.buildingClip = true
		r.clip = &Path{}
		return
	}
	if r.buildingClip && !r.clip.Empty() {
		switch l.matteMode {
		case MatteAlpha:
			r.c.IntersectClipPath(r.clip)
		case MatteInvertedAlpha:
			clip := r.screen()
			clip.Append(orient(r.clip, false))
			r.c.IntersectClipPath(clip)
		}
	}
	r.buildingClip = false
	r.clip = nil
}

func (r *renderer) maskShape(m *MaskShape) {
	p := m.Path().Transform(r.c.Transform())
	if m.Inverted() {
		screen := r.screen()
		screen.Append(orient(p, false))
		p = screen
	} else {
		p = orient(p, true)
	}

	if !r.buildingMask {
		r.buildingMask = true
		r.mask = p
	} else if m.Mode() == MaskIntersect {
		r.flushMask()
		r.mask = p
	} else {
		r.mask.Append(p)
	}
}

func (r *renderer) flushMask() {
	r.c.IntersectClipPath(r.mask)
}

func (r *renderer) masks() {
	if r.buildingMask {
		r.flushMask()
		r.buildingMask = false
		r.mask = nil
	}
}

// orient returns the path with every subpath oriented positively (clockwise on screen) or negatively, so that subpaths unite under the non-zero winding rule.
func orient(p *Path, positive bool) *Path {
	q := &Path{}
	for _, sp := range p.Split() {
		if area := sp.Area(); (0.0 <= area) != positive && !equal(area, 0.0) {
			sp = sp.Reverse()
		}
		q.Append(sp)
	}
	return q
}
