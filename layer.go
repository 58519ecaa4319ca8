package lottie

import (
	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// MatteMode is the track matte mode ("tt") of a layer, which is clipped by the matte source layer before it.
type MatteMode int

const (
	MatteNone MatteMode = iota
	MatteAlpha
	MatteInvertedAlpha
	MatteLuma
	MatteInvertedLuma
)

func (m MatteMode) String() string {
	switch m {
	case MatteAlpha:
		return "alpha"
	case MatteInvertedAlpha:
		return "inverted alpha"
	case MatteLuma:
		return "luma"
	case MatteInvertedLuma:
		return "inverted luma"
	}
	return "none"
}

// Layer is a node of the layer list of a scene or precomposition.
type Layer interface {
	Node
	asLayer() *layer
}

// layer holds what all layers have in common.
type layer struct {
	base

	index     int
	inPoint   float64
	outPoint  float64
	startTime float64
	parentInd int
	hasParent bool
	linked    Layer

	matteSource int // "td", a non-zero value makes the layer the matte of the next layer
	matteMode   MatteMode

	transform *LayerTransform
	effects   []Node
	masks     *Masks

	updated bool
}

func parseLayer(ps *parser, parent Node, def document.Value) Layer {
	switch ty := def.Get("ty").Int(); ty {
	case 4:
		return parseShapeLayer(ps, parent, def)
	case 3:
		return parseNullLayer(ps, parent, def)
	case 0:
		return parsePreCompLayer(ps, parent, def)
	case 1:
		return parseSolidLayer(ps, parent, def)
	default:
		ps.log.Warn("unsupported layer type", zap.Int("type", ty), zap.String("name", def.Get("nm").Text()))
	}
	return nil
}

// parseLayers parses a layer list in reverse, so that the layers are rendered from bottom to top. A matte source is moved behind the layer it clips, so that it renders first.
func parseLayers(ps *parser, parent Node, defs document.Value) {
	b := parent.node()
	for i := defs.Len() - 1; 0 <= i; i-- {
		l := parseLayer(ps, parent, defs.Index(i))
		if l == nil {
			continue
		} else if l.asLayer().isMatteSource() {
			b.prependChild(l)
		} else {
			b.appendChild(l)
		}
	}
}

func (l *layer) parseAttributes(ps *parser, kind NodeKind, parent Node, def document.Value) {
	l.parseBase(ps, kind, def)
	l.parent = parent
	l.index = def.Get("ind").Int()
	l.inPoint = def.Get("ip").Float()
	l.outPoint = def.Get("op").Float()
	l.startTime = def.Get("st").Float()
	if p := def.Get("parent"); p.IsNumber() {
		l.parentInd, l.hasParent = p.Int(), true
	}
	l.matteSource = def.Get("td").Int()
	switch tt := def.Get("tt").Int(); tt {
	case 0:
	case 1, 2:
		l.matteMode = MatteMode(tt)
	case 3, 4:
		l.matteMode = MatteMode(tt)
		ps.log.Warn("luma mattes are not supported", zap.String("name", l.name))
	default:
		ps.log.Warn("unknown matte mode", zap.Int("tt", tt), zap.String("name", l.name))
	}
	l.transform = parseLayerTransform(ps, nil, def.Get("ks"))
	if l.hidden {
		return
	}

	if l.matteSource > 1 {
		ps.log.Warn("only alpha matte sources are supported", zap.Int("td", l.matteSource), zap.String("name", l.name))
	}
	if bm := def.Get("bm").Int(); bm > 0 {
		ps.log.Warn("blend modes are not supported", zap.Int("bm", bm), zap.String("name", l.name))
	}
	if sr := def.Get("sr").FloatOr(1.0); sr > 1.0 {
		ps.log.Warn("time stretch is not supported", zap.Float64("sr", sr), zap.String("name", l.name))
	}
	if def.Get("ddd").Bool() {
		ps.log.Warn("3D layers are not supported", zap.String("name", l.name))
	}
}

// parseExtras parses the masks and effects, after the layer has been allocated so they can point to it.
func (l *layer) parseExtras(ps *parser, self Node, def document.Value) {
	l.transform.parent = self
	if l.hidden {
		return
	}
	l.masks = parseMasks(ps, self, def.Get("masksProperties"))
	l.effects = parseEffects(ps, self, def.Get("ef"))
}

func (l *layer) copyLayer(self Node, parent Node) layer {
	m := layer{
		base:        l.copyBase(parent),
		index:       l.index,
		inPoint:     l.inPoint,
		outPoint:    l.outPoint,
		startTime:   l.startTime,
		parentInd:   l.parentInd,
		hasParent:   l.hasParent,
		matteSource: l.matteSource,
		matteMode:   l.matteMode,
	}
	m.transform = l.transform.clone(self).(*LayerTransform)
	m.effects = cloneEffects(l.effects, self)
	if l.masks != nil {
		m.masks = l.masks.clone(self).(*Masks)
	}
	return m
}

func (l *layer) asLayer() *layer {
	return l
}

// Index returns the layer index ("ind") that other layers refer to as their parent.
func (l *layer) Index() int {
	return l.index
}

// InPoint returns the first frame at which the layer is visible.
func (l *layer) InPoint() float64 {
	return l.inPoint
}

// OutPoint returns the frame at which the layer stops being visible.
func (l *layer) OutPoint() float64 {
	return l.outPoint
}

func (l *layer) StartTime() float64 {
	return l.startTime
}

func (l *layer) Transform() *LayerTransform {
	return l.transform
}

func (l *layer) MatteMode() MatteMode {
	return l.matteMode
}

func (l *layer) isMatteSource() bool {
	return 0 < l.matteSource
}

func (l *layer) active(frame float64) bool {
	return !l.hidden && l.inPoint <= frame && frame < l.outPoint
}

// linkedLayer returns the parent layer by index among the siblings, or nil.
func (l *layer) linkedLayer() Layer {
	if !l.hasParent {
		return nil
	} else if l.linked != nil {
		return l.linked
	} else if l.parent == nil {
		return nil
	}
	for _, sibling := range l.parent.Children() {
		if s, ok := sibling.(Layer); ok && s.asLayer() != l && s.asLayer().index == l.parentInd {
			l.linked = s
			break
		}
	}
	if l.linked == nil {
		l.log.Warn("parent layer not found", zap.Int("parent", l.parentInd), zap.String("name", l.name))
		l.hasParent = false
	}
	return l.linked
}

// updateLayer updates the parent layer, effects, masks and transform. It returns false if the layer was already updated for this frame.
func (l *layer) updateLayer(frame float64) bool {
	if l.updated {
		return false
	}
	l.updated = true

	if linked := l.linkedLayer(); linked != nil {
		linked.update(frame)
	}
	for _, effect := range l.effects {
		if effect.active(frame) {
			effect.update(frame)
		}
	}
	if l.masks != nil {
		l.masks.update(frame)
	}
	l.transform.update(frame)
	return true
}

// applyLinkedTransform applies the transforms of all ancestors by parent link, outermost first. Opacity is not inherited. A cycle of parent links stops at the first repeated layer.
func (l *layer) applyLinkedTransform(r *renderer) {
	var chain []*layer
	visited := map[*layer]bool{l: true}
	for linked := l.linkedLayer(); linked != nil; linked = linked.asLayer().linkedLayer() {
		ll := linked.asLayer()
		if visited[ll] {
			l.log.Warn("parent layers form a cycle", zap.String("name", l.name))
			break
		}
		visited[ll] = true
		chain = append(chain, ll)
	}
	for i := len(chain) - 1; 0 <= i; i-- {
		r.applyTransform(chain[i].transform.Matrix(), 1.0)
	}
}

// renderLayer renders the layer with its effects, parent transforms, matte, transform and masks, and calls contents to render its contents.
func (l *layer) renderLayer(r *renderer, frame float64, contents func()) {
	r.saveState()
	for _, effect := range l.effects {
		if effect.active(frame) {
			effect.render(r, frame)
		}
	}
	l.applyLinkedTransform(r)
	r.matte(l)
	l.transform.render(r, frame)
	if l.masks != nil {
		l.masks.render(r, frame)
	}
	contents()
	r.restoreState()
}

func (l *layer) resolveAssets(res resolver) {
	if l.hidden {
		return
	}
	for _, child := range l.children {
		if !child.Hidden() {
			child.resolveAssets(res)
		}
	}
}

////////////////////////////////////////////////////////////////

// ShapeLayer is a layer of vector shapes.
type ShapeLayer struct {
	layer
	root *Group
}

func parseShapeLayer(ps *parser, parent Node, def document.Value) *ShapeLayer {
	l := &ShapeLayer{}
	l.parseAttributes(ps, ShapeLayerNode, parent, def)
	l.parseExtras(ps, l, def)
	l.root = &Group{}
	l.root.kind = GroupNode
	l.root.log = ps.log
	l.root.parent = l
	if !l.hidden {
		l.root.parseItems(ps, def.Get("shapes"))
	}
	l.appendChild(l.root)
	return l
}

func (l *ShapeLayer) clone(parent Node) Node {
	m := &ShapeLayer{}
	m.layer = l.copyLayer(m, parent)
	m.root = l.root.clone(m).(*Group)
	m.appendChild(m.root)
	return m
}

func (l *ShapeLayer) update(frame float64) {
	if !l.updateLayer(frame) {
		return
	}
	l.root.update(frame)
	l.root.appliedTrim = propagateTrim(l.root.children, nil, frame)
}

func (l *ShapeLayer) render(r *renderer, frame float64) {
	l.renderLayer(r, frame, func() {
		l.root.render(r, frame)
	})
}

////////////////////////////////////////////////////////////////

// NullLayer draws nothing, it only serves as the parent of other layers.
type NullLayer struct {
	layer
}

func parseNullLayer(ps *parser, parent Node, def document.Value) *NullLayer {
	l := &NullLayer{}
	l.parseAttributes(ps, NullLayerNode, parent, def)
	l.transform.clearOpacity()
	l.parseExtras(ps, l, def)
	return l
}

func (l *NullLayer) clone(parent Node) Node {
	m := &NullLayer{}
	m.layer = l.copyLayer(m, parent)
	return m
}

func (l *NullLayer) update(frame float64) {
	l.updateLayer(frame)
}

func (l *NullLayer) render(r *renderer, frame float64) {}

////////////////////////////////////////////////////////////////

// SolidLayer is a rectangle of a solid color.
type SolidLayer struct {
	layer
	color         Vec4
	width, height float64
}

func parseSolidLayer(ps *parser, parent Node, def document.Value) *SolidLayer {
	l := &SolidLayer{}
	l.parseAttributes(ps, SolidLayerNode, parent, def)
	l.parseExtras(ps, l, def)
	l.color = Hex(def.Get("sc").Text())
	l.width = def.Get("sw").Float()
	l.height = def.Get("sh").Float()
	return l
}

func (l *SolidLayer) clone(parent Node) Node {
	m := &SolidLayer{color: l.color, width: l.width, height: l.height}
	m.layer = l.copyLayer(m, parent)
	return m
}

func (l *SolidLayer) update(frame float64) {
	l.updateLayer(frame)
}

// Path returns the rectangle covered by the layer in its own coordinates.
func (l *SolidLayer) Path() *Path {
	return Rectangle(0.0, 0.0, l.width, l.height)
}

func (l *SolidLayer) render(r *renderer, frame float64) {
	l.renderLayer(r, frame, func() {
		r.setBrush(Brush{Color: l.color.RGBA(1.0)})
		r.setPen(NoPen)
		r.geometry(l.Path())
	})
}

////////////////////////////////////////////////////////////////

// PreCompLayer instances a precomposition asset, whose time is shifted by the layer's start time.
type PreCompLayer struct {
	layer
	refID  string
	layers *PreCompAsset
}

func parsePreCompLayer(ps *parser, parent Node, def document.Value) *PreCompLayer {
	l := &PreCompLayer{}
	l.parseAttributes(ps, PreCompLayerNode, parent, def)
	l.parseExtras(ps, l, def)
	l.refID = def.Get("refId").Text()
	if def.Has("tm") {
		ps.log.Warn("time remapping is not supported", zap.String("name", l.name))
	}
	return l
}

func (l *PreCompLayer) clone(parent Node) Node {
	m := &PreCompLayer{refID: l.refID}
	m.layer = l.copyLayer(m, parent)
	if l.layers != nil {
		m.layers = l.layers.clone(m).(*PreCompAsset)
	}
	return m
}

// RefID returns the id of the precomposition asset.
func (l *PreCompLayer) RefID() string {
	return l.refID
}

// Asset returns the resolved precomposition, or nil.
func (l *PreCompLayer) Asset() *PreCompAsset {
	return l.layers
}

func (l *PreCompLayer) Children() []Node {
	if l.layers == nil {
		return nil
	}
	return []Node{l.layers}
}

// localFrame converts a frame of the layer's timeline to a frame of the precomposition.
func (l *PreCompLayer) localFrame(frame float64) float64 {
	return frame - l.startTime
}

func (l *PreCompLayer) update(frame float64) {
	if !l.updateLayer(frame) {
		return
	}
	if f := l.localFrame(frame); l.layers != nil && l.layers.active(f) {
		l.layers.update(f)
	}
}

func (l *PreCompLayer) render(r *renderer, frame float64) {
	l.renderLayer(r, frame, func() {
		if f := l.localFrame(frame); l.layers != nil && l.layers.active(f) {
			l.layers.render(r, f)
		}
	})
}

func (l *PreCompLayer) resolveAssets(res resolver) {
	if l.hidden || l.layers != nil {
		return
	}
	l.layers = res(l, l.refID)
	if l.layers == nil {
		l.log.Warn("precomposition asset not found", zap.String("refId", l.refID), zap.String("name", l.name))
	}
}
