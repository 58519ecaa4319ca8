package lottie

import (
	"github.com/Seanld/lottie/document"
)

// PropertyValue are the value types an animated property can hold.
type PropertyValue interface {
	float64 | Point | Vec4 | Vector
}

// spatialSamples is the number of points sampled along the motion path of a spatial keyframe.
const spatialSamples = 150

type spatialPoint struct {
	pt     Point
	length float64 // distance from the previous point
}

// easingSegment interpolates from startValue to endValue between startFrame and endFrame.
type easingSegment[T PropertyValue] struct {
	startFrame, endFrame float64
	startValue, endValue T
	easing               Easing

	// motion path for Point values, empty when the motion is a straight line
	points []spatialPoint
	length float64
}

func (seg *easingSegment[T]) covers(frame float64, last bool) bool {
	if last {
		return seg.startFrame <= frame
	}
	return seg.startFrame <= frame && frame < seg.endFrame
}

// Property is a value that is either constant or animated by a sequence of keyframe segments.
type Property[T PropertyValue] struct {
	value    T
	animated bool
	segments []easingSegment[T]
	cursor   int // index of the last used segment

	startFrame, endFrame float64
}

// NewProperty returns a constant property.
func NewProperty[T PropertyValue](v T) Property[T] {
	return Property[T]{value: v}
}

// parseProperty parses a property definition of the form {"a":0,"k":...}. Expressions referencing an effect parameter are replaced by that parameter's definition.
func parseProperty[T PropertyValue](ps *parser, def document.Value) Property[T] {
	p := Property[T]{}
	p.parse(ps, def)
	return p
}

func (p *Property[T]) parse(ps *parser, def document.Value) {
	def = ps.resolveExpression(def)
	if def.Get("s").Bool() {
		ps.log.Warn("property is split into separate x and y, which is not supported")
	}

	k := def.Get("k")
	if k.IsArray() && k.Index(0).IsObject() {
		keyframes := make([]keyframe[T], 0, k.Len())
		for _, item := range k.Items() {
			keyframes = append(keyframes, parseKeyframe[T](item))
		}
		p.construct(keyframes)
	} else {
		p.value = parseValue[T](k)
	}
}

func (p *Property[T]) construct(keyframes []keyframe[T]) {
	p.animated = true
	p.segments = make([]easingSegment[T], 0, len(keyframes))
	for i := range keyframes {
		var prev, next *keyframe[T]
		if 0 < i {
			prev = &keyframes[i-1]
		}
		if i+1 < len(keyframes) {
			next = &keyframes[i+1]
		}
		p.segments = append(p.segments, newEasingSegment(prev, &keyframes[i], next))
	}
	if 0 < len(p.segments) {
		p.startFrame = roundFrame(p.segments[0].startFrame)
		p.endFrame = roundFrame(p.segments[len(p.segments)-1].endFrame)
		p.value = p.segments[0].startValue
	}
}

func newEasingSegment[T PropertyValue](prev, kf, next *keyframe[T]) easingSegment[T] {
	seg := easingSegment[T]{
		startFrame: kf.frame,
		endFrame:   kf.frame,
		startValue: kf.start,
	}
	if !kf.hasStart && prev != nil && prev.hasEnd {
		seg.startValue = prev.end
	}
	if next == nil {
		seg.endValue = seg.startValue
	} else {
		seg.endFrame = next.frame
		if next.hasStart {
			seg.endValue = next.start
		} else {
			seg.endValue = kf.end
		}
	}
	if kf.hold {
		seg.easing = HoldEasing
		return seg
	}
	seg.easing = NewEasing(kf.easingOut, kf.easingIn)

	if start, ok := any(seg.startValue).(Point); ok {
		end := any(seg.endValue).(Point)
		seg.points, seg.length = motionPath(start, end, kf.tangentOut, kf.tangentIn)
	}
	return seg
}

// motionPath samples the spatial Bézier from start to end with tangents to and ti. It returns nil when the tangents do not bend the path.
func motionPath(start, end, to, ti Point) ([]spatialPoint, float64) {
	chord := end.Sub(start)
	if to.IsZero() && ti.IsZero() {
		return nil, 0.0
	} else if equal(chord.PerpDot(to), 0.0) && equal(chord.PerpDot(ti), 0.0) && 0.0 <= chord.Dot(to) && chord.Dot(ti) <= 0.0 && to.Sub(ti).Length() <= chord.Length() {
		// tangents point along the chord without overshooting it
		return nil, 0.0
	}

	c1, c2 := start.Add(to), end.Add(ti)
	points := make([]spatialPoint, 0, spatialSamples)
	length := 0.0
	for k := 0; k < spatialSamples; k++ {
		t := float64(k) / float64(spatialSamples-1)
		sp := spatialPoint{pt: cubicBezierPos(start, c1, c2, end, t)}
		if 0 < k {
			sp.length = sp.pt.Sub(points[k-1].pt).Length()
			length += sp.length
		}
		points = append(points, sp)
	}
	return points, length
}

// Value returns the value at the last update.
func (p *Property[T]) Value() T {
	return p.value
}

// SetValue overrides the current value.
func (p *Property[T]) SetValue(v T) {
	p.value = v
}

// Animated returns true if the property has keyframes.
func (p *Property[T]) Animated() bool {
	return p.animated
}

// Update evaluates the property at the given frame and returns true if the value may have changed.
func (p *Property[T]) Update(frame float64) bool {
	if !p.animated || len(p.segments) == 0 {
		return false
	}

	frame = clamp(frame, p.startFrame, p.endFrame)
	seg := p.segment(frame)
	if seg.easing.IsHold() {
		p.value = seg.startValue
	} else if seg.startFrame < seg.endFrame {
		progress := clamp((frame-seg.startFrame)/(seg.endFrame-seg.startFrame), 0.0, 1.0)
		eased := seg.easing.Value(progress)
		switch start := any(seg.startValue).(type) {
		case Vec4:
			eased = clamp(eased, 0.0, 1.0)
			p.value = any(start.Interpolate(any(seg.endValue).(Vec4), eased)).(T)
		case Point:
			if len(seg.points) == 0 {
				p.value = any(start.Interpolate(any(seg.endValue).(Point), eased)).(T)
			} else {
				p.value = any(seg.pointAt(eased)).(T)
			}
		default:
			p.value = interpolate(seg.startValue, seg.endValue, eased)
		}
	} else {
		p.value = seg.endValue
	}
	return true
}

// segment returns the segment covering the frame, scanning forward from the cursor and restarting from the first segment when the frame lies before it.
func (p *Property[T]) segment(frame float64) *easingSegment[T] {
	last := len(p.segments) - 1
	if p.cursor < 0 || last < p.cursor || frame < p.segments[p.cursor].startFrame {
		p.cursor = 0
	}
	for i := p.cursor; i <= last; i++ {
		if p.segments[i].covers(frame, i == last) {
			p.cursor = i
			return &p.segments[i]
		}
	}
	// frames before the first segment, only reachable through rounding of the clamp range
	p.cursor = 0
	return &p.segments[0]
}

// pointAt walks the motion path to the given fraction of its length.
func (seg *easingSegment[T]) pointAt(eased float64) Point {
	distance := eased * seg.length
	if distance <= 0.0 {
		return seg.points[0].pt
	}
	added := 0.0
	for j := 1; j < len(seg.points); j++ {
		piece := seg.points[j]
		if distance < added+piece.length {
			return seg.points[j-1].pt.Interpolate(piece.pt, (distance-added)/piece.length)
		}
		added += piece.length
	}
	return seg.points[len(seg.points)-1].pt
}

// Clone returns an independent copy. Segments are shared since they are never modified after parsing.
func (p Property[T]) Clone() Property[T] {
	if v, ok := any(p.value).(Vector); ok {
		p.value = any(append(Vector(nil), v...)).(T)
	}
	return p
}

func interpolate[T PropertyValue](a, b T, t float64) T {
	switch va := any(a).(type) {
	case float64:
		return any(va + t*(any(b).(float64)-va)).(T)
	case Point:
		return any(va.Interpolate(any(b).(Point), t)).(T)
	case Vec4:
		return any(va.Interpolate(any(b).(Vec4), t)).(T)
	case Vector:
		return any(va.Interpolate(any(b).(Vector), t)).(T)
	}
	return a
}

// parseValue reads a static value. Scalars take the first element of arrays, points need at least two elements and colors three, with an opaque alpha when it is missing, or they are zero.
func parseValue[T PropertyValue](v document.Value) T {
	var t T
	switch any(t).(type) {
	case float64:
		return any(v.Float()).(T)
	case Point:
		if v.IsArray() && 1 < v.Len() {
			return any(Point{v.Index(0).Float(), v.Index(1).Float()}).(T)
		}
	case Vec4:
		if v.IsArray() && 3 < v.Len() {
			return any(Vec4{v.Index(0).Float(), v.Index(1).Float(), v.Index(2).Float(), v.Index(3).Float()}).(T)
		} else if v.IsArray() && v.Len() == 3 {
			return any(Vec4{v.Index(0).Float(), v.Index(1).Float(), v.Index(2).Float(), 1.0}).(T)
		}
	case Vector:
		return any(Vector(v.Floats())).(T)
	}
	return t
}
