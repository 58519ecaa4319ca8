package lottie

// Easing maps the linear progress through a keyframe segment to the eased progress. It is a cubic Bézier from (0,0) to P3 with control points P1 and P2, where x is time and y is progress.
type Easing struct {
	P1, P2, P3 Point
}

// NewEasing returns the easing curve for a keyframe with out-handle o and in-handle i.
func NewEasing(o, i Point) Easing {
	return Easing{o, i, Point{1.0, 1.0}}
}

// HoldEasing keeps the start value until the end of the segment.
var HoldEasing = Easing{Point{0.25, 0.0}, Point{0.75, 0.0}, Point{1.0, 0.0}}

// LinearEasing is the identity easing.
var LinearEasing = NewEasing(Point{0.0, 0.0}, Point{1.0, 1.0})

// IsHold returns true if the curve ends at zero progress.
func (e Easing) IsHold() bool {
	return e.P3.Y == 0.0
}

// IsLinear returns true if both control points lie on the diagonal.
func (e Easing) IsLinear() bool {
	return e.P1.X == e.P1.Y && e.P2.X == e.P2.Y
}

func (e Easing) at(t float64) Point {
	return cubicBezierPos(Point{}, e.P1, e.P2, e.P3, t)
}

// tForX finds the curve parameter at time x with 10 bisection steps, which is accurate to about 0.001.
func (e Easing) tForX(x float64) float64 {
	if x <= 0.0 {
		return 0.0
	} else if 1.0 <= x {
		return 1.0
	}
	t0, t1 := 0.0, 1.0
	for i := 0; i < 10; i++ {
		t := (t0 + t1) / 2.0
		if e.at(t).X < x {
			t0 = t
		} else {
			t1 = t
		}
	}
	return t0
}

// Value returns the eased progress at linear progress x.
func (e Easing) Value(x float64) float64 {
	if e.IsLinear() {
		return x
	}
	return clamp(e.at(e.tForX(x)).Y, 0.0, 1.0)
}
