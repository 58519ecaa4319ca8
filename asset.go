package lottie

import (
	"github.com/Seanld/lottie/document"
)

// PreCompAsset is a precomposition, a list of layers that precomp layers instance.
type PreCompAsset struct {
	base
	id       string
	resolved bool
}

func parsePreCompAsset(ps *parser, def document.Value) *PreCompAsset {
	a := &PreCompAsset{}
	a.parseBase(ps, PreCompAssetNode, def)
	a.id = def.Get("id").Text()
	if a.hidden {
		return a
	}
	parseLayers(ps, a, def.Get("layers"))
	return a
}

func (a *PreCompAsset) clone(parent Node) Node {
	b := &PreCompAsset{
		base:     a.copyBase(parent),
		id:       a.id,
		resolved: a.resolved,
	}
	a.cloneChildren(b)
	return b
}

// ID returns the asset id that precomp layers refer to.
func (a *PreCompAsset) ID() string {
	return a.id
}

// Layers returns the layers in render order.
func (a *PreCompAsset) Layers() []Node {
	return a.children
}

func (a *PreCompAsset) resolveAssets(res resolver) {
	if a.resolved {
		return
	}
	a.resolved = true
	a.base.resolveAssets(res)
}
