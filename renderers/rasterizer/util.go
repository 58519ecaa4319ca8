package rasterizer

import (
	"github.com/Seanld/lottie"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

func toFixedPoint(p lottie.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// toRasterx adds the path to a rasterx filler or dasher.
func toRasterx(adder rasterx.Adder, p *lottie.Path) {
	started := false
	scanner := p.Scanner()
	for scanner.Scan() {
		switch scanner.Cmd() {
		case lottie.MoveToCmd:
			if started {
				adder.Stop(false)
			}
			adder.Start(toFixedPoint(scanner.End()))
			started = true
		case lottie.LineToCmd:
			adder.Line(toFixedPoint(scanner.End()))
		case lottie.CubeToCmd:
			adder.CubeBezier(toFixedPoint(scanner.CP1()), toFixedPoint(scanner.CP2()), toFixedPoint(scanner.End()))
		case lottie.CloseCmd:
			adder.Stop(true)
			started = false
		}
	}
	if started {
		adder.Stop(false)
	}
}

// toVector adds the path to an x/image/vector rasterizer.
func toVector(ras *vector.Rasterizer, p *lottie.Path) {
	scanner := p.Scanner()
	for scanner.Scan() {
		end := scanner.End()
		switch scanner.Cmd() {
		case lottie.MoveToCmd:
			ras.MoveTo(float32(end.X), float32(end.Y))
		case lottie.LineToCmd:
			ras.LineTo(float32(end.X), float32(end.Y))
		case lottie.CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			ras.CubeTo(float32(cp1.X), float32(cp1.Y), float32(cp2.X), float32(cp2.Y), float32(end.X), float32(end.Y))
		case lottie.CloseCmd:
			ras.ClosePath()
		}
	}
}
