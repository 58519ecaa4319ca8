package lottie

import (
	"errors"
	"math"

	"github.com/Seanld/lottie/document"
)

// ErrMalformedGradient is returned when the stops of a gradient are not ordered by offset.
var ErrMalformedGradient = errors.New("malformed gradient: stop offsets are not ordered")

// StopSource provides the color and opacity stops of a gradient. Color stops are (offset, r, g, b) and opacity stops are (offset, alpha), each ordered by offset.
type StopSource interface {
	ColorCount() int
	OpacityCount() int
	ColorStop(i int) (float64, float64, float64, float64)
	OpacityStop(i int) (float64, float64)
}

// Stop is a color at an offset along a gradient, with non-premultiplied components in [0,1].
type Stop struct {
	Offset float64
	Color  Vec4
}

// StopsBuilder merges the color and opacity stops of a source into a single list of stops.
type StopsBuilder struct {
	src   StopSource
	stops []Stop

	last  int // index of the stop of the last folded opacity stop, or -1
	lastT float64
}

func NewStopsBuilder(src StopSource) *StopsBuilder {
	return &StopsBuilder{src: src}
}

// Build returns the merged stops. When offsets decrease it returns no stops and ErrMalformedGradient.
func (b *StopsBuilder) Build() ([]Stop, error) {
	n := b.src.ColorCount()
	b.stops = make([]Stop, 0, n+b.src.OpacityCount())
	b.last, b.lastT = -1, math.Inf(-1)
	for i := 0; i < n; i++ {
		t, r, g, bl := b.src.ColorStop(i)
		if 0 < i && t < b.stops[i-1].Offset {
			return nil, ErrMalformedGradient
		}
		b.stops = append(b.stops, Stop{t, Vec4{r, g, bl, 1.0}})
	}

	for j := 0; j < b.src.OpacityCount(); j++ {
		t, a := b.src.OpacityStop(j)
		if t < b.lastT {
			return nil, ErrMalformedGradient
		}
		b.fold(t, a)
	}
	if 0 <= b.last {
		a := b.stops[b.last].Color[3]
		for i := b.last + 1; i < len(b.stops); i++ {
			b.stops[i].Color[3] = a
		}
	}
	return b.stops, nil
}

// fold inserts an opacity stop and back-fills the alpha of the stops since the previous opacity stop.
func (b *StopsBuilder) fold(t, a float64) {
	idx := -1
	for i := b.last + 1; i < len(b.stops); i++ {
		if b.stops[i].Offset == t {
			idx = i
			break
		} else if t < b.stops[i].Offset {
			var c Vec4
			if i == 0 {
				c = b.stops[0].Color
			} else {
				s0, s1 := b.stops[i-1], b.stops[i]
				f := 0.0
				if s0.Offset < s1.Offset {
					f = (t - s0.Offset) / (s1.Offset - s0.Offset)
				}
				c = s0.Color.Interpolate(s1.Color, f)
			}
			b.stops = append(b.stops, Stop{})
			copy(b.stops[i+1:], b.stops[i:])
			b.stops[i] = Stop{t, c}
			idx = i
			break
		}
	}
	if idx == -1 {
		c := Vec4{0.0, 0.0, 0.0, 1.0}
		if 0 < len(b.stops) {
			c = b.stops[len(b.stops)-1].Color
		}
		b.stops = append(b.stops, Stop{t, c})
		idx = len(b.stops) - 1
	}
	b.stops[idx].Color[3] = a

	if b.last < 0 {
		for i := 0; i < idx; i++ {
			b.stops[i].Color[3] = a
		}
	} else {
		t0, a0 := b.stops[b.last].Offset, b.stops[b.last].Color[3]
		for i := b.last + 1; i < idx; i++ {
			f := 0.0
			if t0 < t {
				f = (b.stops[i].Offset - t0) / (t - t0)
			}
			b.stops[i].Color[3] = a0 + f*(a-a0)
		}
	}
	b.last, b.lastT = idx, t
}

////////////////////////////////////////////////////////////////

// staticStops is a stop source for the flat array [t r g b ... t a ...] of a gradient that is not animated.
type staticStops struct {
	values []float64
	colors int
}

func newStaticStops(values []float64, colors int) *staticStops {
	return &staticStops{values, max(0, min(colors, len(values)/4))}
}

func (s *staticStops) ColorCount() int {
	return s.colors
}

func (s *staticStops) OpacityCount() int {
	return (len(s.values) - 4*s.colors) / 2
}

func (s *staticStops) ColorStop(i int) (float64, float64, float64, float64) {
	v := s.values[4*i:]
	return v[0], v[1], v[2], v[3]
}

func (s *staticStops) OpacityStop(i int) (float64, float64) {
	v := s.values[4*s.colors+2*i:]
	return v[0], v[1]
}

// animatedStops is a stop source whose color and opacity stops are keyframed separately.
type animatedStops struct {
	colors      int
	colorValues Property[Vector]
	opacities   Property[Vector]
}

// newAnimatedStops splits the keyframes of a gradient data property into color and opacity keyframes.
func newAnimatedStops(keyframes document.Value, colors int) *animatedStops {
	s := &animatedStops{colors: colors}
	split := func(v Vector) (Vector, Vector) {
		n := min(4*colors, len(v))
		return v[:n:n], v[n:]
	}
	colorKfs := make([]keyframe[Vector], 0, keyframes.Len())
	opacityKfs := make([]keyframe[Vector], 0, keyframes.Len())
	for _, item := range keyframes.Items() {
		kf := parseKeyframe[Vector](item)
		ckf, okf := kf, kf
		ckf.start, okf.start = split(kf.start)
		ckf.end, okf.end = split(kf.end)
		colorKfs = append(colorKfs, ckf)
		opacityKfs = append(opacityKfs, okf)
	}
	s.colorValues.construct(colorKfs)
	s.opacities.construct(opacityKfs)
	return s
}

func (s *animatedStops) clone() *animatedStops {
	return &animatedStops{
		colors:      s.colors,
		colorValues: s.colorValues.Clone(),
		opacities:   s.opacities.Clone(),
	}
}

func (s *animatedStops) update(frame float64) {
	s.colorValues.Update(frame)
	s.opacities.Update(frame)
}

func (s *animatedStops) ColorCount() int {
	return min(s.colors, len(s.colorValues.Value())/4)
}

func (s *animatedStops) OpacityCount() int {
	return len(s.opacities.Value()) / 2
}

func (s *animatedStops) ColorStop(i int) (float64, float64, float64, float64) {
	v := s.colorValues.Value()[4*i:]
	return v[0], v[1], v[2], v[3]
}

func (s *animatedStops) OpacityStop(i int) (float64, float64) {
	v := s.opacities.Value()[2*i:]
	return v[0], v[1]
}
