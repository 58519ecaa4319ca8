package lottie

import (
	"fmt"
	"io"
	"math"

	"github.com/Seanld/lottie/document"
	"go.uber.org/zap"
)

// Marker is a named point or range on the timeline.
type Marker struct {
	Name     string
	Frame    float64
	Duration float64
}

// sceneRoot is the root of a scene tree, its children are the top-level layers.
type sceneRoot struct {
	base
}

func (s *sceneRoot) clone(parent Node) Node {
	t := &sceneRoot{base: s.copyBase(parent)}
	s.cloneChildren(t)
	return t
}

// Scene is a parsed animation. It is immutable and its frames can be evaluated concurrently.
type Scene struct {
	log *zap.Logger

	inPoint, outPoint float64
	frameRate         float64
	width, height     float64
	markers           []Marker
	unsupported       bool

	assets     []*PreCompAsset
	assetIndex map[string]int
	blueprint  *sceneRoot
}

// ParseScene parses a Lottie document. It only fails if the document is not valid JSON or its root is not an object, unsupported or malformed content is logged and skipped.
func ParseScene(r io.Reader, opts Options) (*Scene, error) {
	def, err := document.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return NewScene(def, opts)
}

// NewScene builds a scene from a parsed document.
func NewScene(def document.Value, opts Options) (*Scene, error) {
	if !def.IsObject() {
		return nil, fmt.Errorf("parse scene: %w", document.ErrNotObject)
	}

	ps := newParser(opts)
	s := &Scene{
		log:        ps.log,
		inPoint:    def.Get("ip").Float(),
		outPoint:   def.Get("op").Float(),
		frameRate:  def.Get("fr").Float(),
		width:      def.Get("w").Float(),
		height:     def.Get("h").Float(),
		assetIndex: map[string]int{},
	}

	for _, m := range def.Get("markers").Items() {
		s.markers = append(s.markers, Marker{
			Name:     m.Get("cm").Text(),
			Frame:    m.Get("tm").Float(),
			Duration: m.Get("dr").Float(),
		})
		if m.Get("dr").Int() != 0 {
			s.unsupported = true
		}
	}
	if 0 < def.Get("chars").Len() {
		ps.log.Warn("text layers are not supported")
		s.unsupported = true
	}

	// effects are indexed up front so that expressions can refer to effects of any layer
	ps.indexEffects(def.Get("layers"))
	for _, asset := range def.Get("assets").Items() {
		ps.indexEffects(asset.Get("layers"))
	}

	for _, asset := range def.Get("assets").Items() {
		if !asset.Has("layers") {
			ps.log.Warn("unsupported asset", zap.String("id", asset.Get("id").Text()))
			s.unsupported = true
			continue
		}
		a := parsePreCompAsset(ps, asset)
		s.assetIndex[a.id] = len(s.assets)
		s.assets = append(s.assets, a)
	}

	s.blueprint = &sceneRoot{}
	s.blueprint.parseBase(ps, SceneRootNode, def)
	parseLayers(ps, s.blueprint, def.Get("layers"))
	s.resolveAssets()
	return s, nil
}

// resolveAssets resolves the precomp layers of all assets and then of the layer tree. Every asset resolves its own references once, so that recursive references terminate.
func (s *Scene) resolveAssets() {
	if len(s.assets) == 0 {
		return
	}
	var res resolver
	res = func(parent Node, refID string) *PreCompAsset {
		i, ok := s.assetIndex[refID]
		if !ok {
			return nil
		}
		asset := s.assets[i]
		asset.resolveAssets(res)
		return asset.clone(parent).(*PreCompAsset)
	}
	for _, asset := range s.assets {
		asset.resolveAssets(res)
	}
	s.blueprint.resolveAssets(func(parent Node, refID string) *PreCompAsset {
		if i, ok := s.assetIndex[refID]; ok {
			return s.assets[i].clone(parent).(*PreCompAsset)
		}
		return nil
	})
}

// InPoint returns the first frame.
func (s *Scene) InPoint() float64 {
	return s.inPoint
}

// OutPoint returns the frame after the last frame.
func (s *Scene) OutPoint() float64 {
	return s.outPoint
}

// FrameRate returns the number of frames per second.
func (s *Scene) FrameRate() float64 {
	return s.frameRate
}

// Size returns the width and height.
func (s *Scene) Size() (float64, float64) {
	return s.width, s.height
}

// Duration returns the duration in seconds.
func (s *Scene) Duration() float64 {
	if s.frameRate <= 0.0 {
		return 0.0
	}
	return (s.outPoint - s.inPoint) / s.frameRate
}

func (s *Scene) Markers() []Marker {
	return s.markers
}

// Marker returns the marker with the given name.
func (s *Scene) Marker(name string) (Marker, bool) {
	for _, m := range s.markers {
		if m.Name == name {
			return m, true
		}
	}
	return Marker{}, false
}

// Unsupported returns true if the document uses features that are not rendered, such as text or image assets.
func (s *Scene) Unsupported() bool {
	return s.unsupported
}

// Assets returns the precomposition assets.
func (s *Scene) Assets() []*PreCompAsset {
	return s.assets
}

// Root returns the parsed layer tree. It must not be modified.
func (s *Scene) Root() Node {
	return s.blueprint
}

// FrameAt returns the frame at the given time in seconds.
func (s *Scene) FrameAt(t float64) float64 {
	return math.Min(s.inPoint+t*s.frameRate, s.outPoint)
}

// Frame evaluates the scene at the given frame. Each call works on its own copy of the layer tree.
func (s *Scene) Frame(frame float64) *Frame {
	root := s.blueprint.clone(nil)
	if root.active(frame) {
		root.update(frame)
	}
	return &Frame{
		scene: s,
		frame: frame,
		root:  root,
	}
}

// Render evaluates and renders the scene at the given frame.
func (s *Scene) Render(c Canvas, frame float64) {
	s.Frame(frame).Render(c)
}

// Frame is a scene evaluated at a frame.
type Frame struct {
	scene *Scene
	frame float64
	root  Node
}

func (f *Frame) Number() float64 {
	return f.frame
}

// Root returns the evaluated layer tree.
func (f *Frame) Root() Node {
	return f.root
}

// Render draws the frame to the canvas.
func (f *Frame) Render(c Canvas) {
	r := newRenderer(c, f.scene.log)
	if f.root.active(f.frame) {
		f.root.render(r, f.frame)
	}
}
