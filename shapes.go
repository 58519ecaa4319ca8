package lottie

import (
	"math"
)

// kappa is the control point distance for approximating a quarter circle with a cubic Bézier.
const kappa = 0.5522847498307936

// Rectangle returns a rectangle at (x,y) of width w and height h, running clockwise from its top-left corner.
func Rectangle(x, y, w, h float64) *Path {
	if equal(w, 0.0) && equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle at (x,y) of width w and height h with rounded corners of radius r. The radius is limited to half of the shortest side.
func RoundedRectangle(x, y, w, h, r float64) *Path {
	if equal(w, 0.0) && equal(h, 0.0) {
		return &Path{}
	}
	r = math.Min(math.Abs(r), math.Abs(w)/2.0)
	r = math.Min(r, math.Abs(h)/2.0)
	if equal(r, 0.0) {
		return Rectangle(x, y, w, h)
	}

	c := r * (1.0 - kappa)
	p := &Path{}
	p.MoveTo(x, y+r)
	p.CubeTo(x, y+c, x+c, y, x+r, y)
	p.LineTo(x+w-r, y)
	p.CubeTo(x+w-c, y, x+w, y+c, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubeTo(x+w, y+h-c, x+w-c, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubeTo(x+c, y+h, x, y+h-c, x, y+h-r)
	p.Close()
	return p
}

// Ellipse returns an ellipse centered at (cx,cy) with radii rx and ry. It starts at the top and runs clockwise.
func Ellipse(cx, cy, rx, ry float64) *Path {
	if equal(rx, 0.0) && equal(ry, 0.0) {
		return &Path{}
	}

	kx, ky := kappa*rx, kappa*ry
	p := &Path{}
	p.MoveTo(cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.Close()
	return p
}

// Circle returns a circle centered at (cx,cy) with radius r.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}
