package lottie

import (
	"fmt"
	"regexp"

	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// NodeKind enumerates the node types of a scene tree.
type NodeKind int

const (
	SceneRootNode NodeKind = iota
	ShapeLayerNode
	NullLayerNode
	PreCompLayerNode
	SolidLayerNode
	PreCompAssetNode
	GroupNode
	RectNode
	EllipseNode
	RoundedPointNode
	FreeFormNode
	FillNode
	GradientFillNode
	StrokeNode
	ShapeTransformNode
	LayerTransformNode
	TrimPathNode
	RepeaterNode
	RepeaterTransformNode
	MasksNode
	MaskShapeNode
	FillEffectNode
	EffectGroupNode
)

var nodeKindNames = map[NodeKind]string{
	SceneRootNode:         "scene",
	ShapeLayerNode:        "shape layer",
	NullLayerNode:         "null layer",
	PreCompLayerNode:      "precomp layer",
	SolidLayerNode:        "solid layer",
	PreCompAssetNode:      "precomp asset",
	GroupNode:             "group",
	RectNode:              "rect",
	EllipseNode:           "ellipse",
	RoundedPointNode:      "round",
	FreeFormNode:          "shape",
	FillNode:              "fill",
	GradientFillNode:      "gradient fill",
	StrokeNode:            "stroke",
	ShapeTransformNode:    "transform",
	LayerTransformNode:    "layer transform",
	TrimPathNode:          "trim",
	RepeaterNode:          "repeater",
	RepeaterTransformNode: "repeater transform",
	MasksNode:             "masks",
	MaskShapeNode:         "mask",
	FillEffectNode:        "fill effect",
	EffectGroupNode:       "effect",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is a node of the scene tree. The set of implementations is closed and enumerated by NodeKind.
type Node interface {
	Kind() NodeKind
	Name() string
	Hidden() bool
	Parent() Node
	Children() []Node

	node() *base
	active(frame float64) bool
	clone(parent Node) Node
	update(frame float64)
	render(r *renderer, frame float64)
	resolveAssets(res resolver)
}

// resolver returns a copy of the precomp asset with the given id, reparented to parent, or nil.
type resolver func(parent Node, refID string) *PreCompAsset

// base holds what all nodes have in common.
type base struct {
	kind      NodeKind
	def       document.Value
	name      string
	matchName string
	hidden    bool

	children []Node
	parent   Node
	log      *zap.Logger
}

func (b *base) parseBase(ps *parser, kind NodeKind, def document.Value) {
	b.kind = kind
	b.def = def
	b.name = def.Get("nm").Text()
	b.matchName = def.Get("mn").Text()
	b.hidden = def.Get("hd").Bool()
	b.log = ps.log
	if def.Get("ao").Bool() {
		ps.log.Warn("auto-orientation is not supported", zap.String("name", b.name))
	}
}

// copyBase returns a copy of b without children, to be attached to parent.
func (b *base) copyBase(parent Node) base {
	return base{
		kind:      b.kind,
		def:       b.def,
		name:      b.name,
		matchName: b.matchName,
		hidden:    b.hidden,
		parent:    parent,
		log:       b.log,
	}
}

// cloneChildren deep-copies the children of b into n.
func (b *base) cloneChildren(n Node) {
	dst := n.node()
	dst.children = make([]Node, 0, len(b.children))
	for _, child := range b.children {
		dst.children = append(dst.children, child.clone(n))
	}
}

func (b *base) node() *base {
	return b
}

func (b *base) Kind() NodeKind {
	return b.kind
}

func (b *base) Name() string {
	return b.name
}

func (b *base) MatchName() string {
	return b.matchName
}

func (b *base) Hidden() bool {
	return b.hidden
}

func (b *base) Parent() Node {
	return b.parent
}

func (b *base) Children() []Node {
	return b.children
}

// Definition returns the document object the node was parsed from.
func (b *base) Definition() document.Value {
	return b.def
}

func (b *base) active(frame float64) bool {
	return !b.hidden
}

func (b *base) appendChild(child Node) {
	b.children = append(b.children, child)
}

// prependChild inserts the child in front of the most recently added child.
func (b *base) prependChild(child Node) {
	b.children = append(b.children, child)
	if n := len(b.children); 1 < n {
		b.children[n-1], b.children[n-2] = b.children[n-2], b.children[n-1]
	}
}

func (b *base) update(frame float64) {
	for _, child := range b.children {
		if child.active(frame) {
			child.update(frame)
		}
	}
}

func (b *base) render(r *renderer, frame float64) {
	for _, child := range b.children {
		if child.active(frame) {
			child.render(r, frame)
		}
	}
}

func (b *base) resolveAssets(res resolver) {
	if b.hidden {
		return
	}
	for _, child := range b.children {
		if !child.Hidden() {
			child.resolveAssets(res)
		}
	}
}

// Find returns the first node in the subtree of n, including n, with the given name.
func Find(n Node, name string) Node {
	if n.Name() == name {
		return n
	}
	for _, child := range n.Children() {
		if found := Find(child, name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every node in its subtree in depth-first order, with the depth of the node relative to n. Returning false skips the node's children.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}

////////////////////////////////////////////////////////////////

// parser holds the state shared while parsing a document into nodes.
type parser struct {
	log      *zap.Logger
	trimMode TrimMode
	effects  map[string]document.Value // effect definitions by name
}

func newParser(opts Options) *parser {
	return &parser{
		log:      opts.logger(),
		trimMode: opts.ForceTrimMode,
		effects:  map[string]document.Value{},
	}
}

var expressionEffectRE = regexp.MustCompile(`effect\('(.*?)'\)\('(.*?)'\)`)

// indexEffects registers the effects of all layers in the list, including those of precomp assets, so that expressions can refer to effects of any layer.
func (ps *parser) indexEffects(layers document.Value) {
	for _, layer := range layers.Items() {
		ps.indexEffectList(layer.Get("ef"))
	}
}

func (ps *parser) indexEffectList(effects document.Value) {
	for _, effect := range effects.Items() {
		switch effect.Get("ty").Int() {
		case 0, 21:
		case 5:
			if effect.Get("en").Int() == 0 {
				continue
			}
			ps.indexEffectList(effect.Get("ef"))
		default:
			continue
		}
		name := effect.Get("nm").Text()
		if _, ok := ps.effects[name]; !ok && name != "" {
			ps.effects[name] = effect
		}
	}
}

// resolveExpression replaces a property definition whose expression refers to an effect parameter, such as effect('Slider Control')('Slider'), by the value definition of that effect. Other expressions are ignored.
func (ps *parser) resolveExpression(def document.Value) document.Value {
	expr := def.Get("x").Text()
	if expr == "" {
		return def
	}
	match := expressionEffectRE.FindStringSubmatch(expr)
	if match == nil {
		return def
	}

	effect, ok := ps.effects[match[1]]
	if !ok {
		ps.log.Warn("expression refers to unknown effect", zap.String("effect", match[1]))
		return def
	}
	params := effect.Get("ef")
	if 1 < params.Len() {
		ps.log.Warn("expression refers to an effect group with several parameters, using the first", zap.String("effect", match[1]))
	}
	if 0 < params.Len() {
		return params.Index(0).Get("v")
	}
	return effect.Get("v")
}
