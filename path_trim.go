package lottie

import "math"

type segment struct {
	cmd        PathCmd // LineToCmd, CubeToCmd or CloseCmd
	move       bool    // segment starts a new subpath
	start, end Point
	c1, c2     Point
}

func (p *Path) segments() []segment {
	segs := []segment{}
	var cur Point
	move := true
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			cur = Point{p.d[i], p.d[i+1]}
			move = true
		case LineToCmd, CloseCmd:
			end := Point{p.d[i], p.d[i+1]}
			segs = append(segs, segment{cmd: cmd, move: move, start: cur, end: end})
			cur = end
			move = false
		case CubeToCmd:
			c1 := Point{p.d[i], p.d[i+1]}
			c2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			segs = append(segs, segment{cmd: cmd, move: move, start: cur, c1: c1, c2: c2, end: end})
			cur = end
			move = false
		}
		if cmd == CloseCmd {
			move = true
		}
		i += cmdLen(cmd)
	}
	return segs
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(-3.0 + 6.0*t - 3.0*t*t)
	p1 = p1.Mul(3.0 - 12.0*t + 9.0*t*t)
	p2 = p2.Mul(6.0*t - 9.0*t*t)
	p3 = p3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

func (seg segment) at(t float64) Point {
	if seg.cmd == CubeToCmd {
		return cubicBezierPos(seg.start, seg.c1, seg.c2, seg.end, t)
	}
	return seg.start.Interpolate(seg.end, t)
}

// lengthAt returns the arc length from the start of the segment to t.
func (seg segment) lengthAt(t float64) float64 {
	if seg.cmd != CubeToCmd {
		return t * seg.end.Sub(seg.start).Length()
	}
	speed := func(t float64) float64 {
		return cubicBezierDeriv(seg.start, seg.c1, seg.c2, seg.end, t).Length()
	}
	// integrate in quarters to keep the quadrature accurate for strongly curved segments
	const n = 4
	length := 0.0
	for i := 0; i < n; i++ {
		a := t * float64(i) / n
		b := t * float64(i+1) / n
		length += gaussLegendre5(speed, a, b)
	}
	return length
}

func (seg segment) length() float64 {
	return seg.lengthAt(1.0)
}

// tAt returns the curve parameter at arc length l from the start of the segment.
func (seg segment) tAt(l, length float64) float64 {
	if length <= 0.0 || l <= 0.0 {
		return 0.0
	} else if length <= l {
		return 1.0
	} else if seg.cmd != CubeToCmd {
		return l / length
	}
	return bisectionMethod(seg.lengthAt, l, 0.0, 1.0, 32)
}

// sub returns the part of the segment between t0 and t1.
func (seg segment) sub(t0, t1 float64) segment {
	if seg.cmd != CubeToCmd {
		start, end := seg.at(t0), seg.at(t1)
		seg.start, seg.end = start, end
		return seg
	}
	p0, p1, p2, p3 := seg.start, seg.c1, seg.c2, seg.end
	if t1 < 1.0 {
		p0, p1, p2, p3, _, _, _, _ = splitCubicBezier(p0, p1, p2, p3, t1)
	}
	if 0.0 < t0 {
		_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t0/t1)
	}
	seg.start, seg.c1, seg.c2, seg.end = p0, p1, p2, p3
	return seg
}

// subrange returns the part of the path between arc lengths l1 and l2.
func (p *Path) subrange(l1, l2 float64) *Path {
	q := &Path{}
	penDown := false
	s := 0.0
	for _, seg := range p.segments() {
		if seg.move {
			penDown = false
		}
		length := seg.length()
		s0, s1 := s, s+length
		s = s1
		if s1 < l1 || l2 <= s0 || (length == 0.0 && (s0 < l1 || l2 < s0)) {
			continue
		}

		t0, t1 := 0.0, 1.0
		if s0 < l1 {
			t0 = seg.tAt(l1-s0, length)
		}
		if l2 < s1 {
			t1 = seg.tAt(l2-s0, length)
		}
		if t1 <= t0 && 0.0 < length {
			continue
		}
		part := seg
		if 0.0 < t0 || t1 < 1.0 {
			part = seg.sub(t0, t1)
		}

		if !penDown {
			q.MoveTo(part.start.X, part.start.Y)
			penDown = true
		}
		if part.cmd == CubeToCmd {
			q.CubeTo(part.c1.X, part.c1.Y, part.c2.X, part.c2.Y, part.end.X, part.end.Y)
		} else {
			q.LineTo(part.end.X, part.end.Y)
		}
	}
	return q
}

// Trim returns the part of the path between the fractions start and end of its total arc length, shifted by offset turns. Ranges that cross the end of the path wrap around to its start. The path is returned unchanged when the range covers the whole path, and an empty path is returned when start equals end.
func (p *Path) Trim(start, end, offset float64) *Path {
	if p.Empty() {
		return &Path{}
	}
	start = clamp(start, 0.0, 1.0)
	end = clamp(end, 0.0, 1.0)
	if equal(start, end) {
		return &Path{}
	} else if end < start {
		start, end = end, start
	}
	if equal(end-start, 1.0) {
		return p.Copy()
	}

	_, offset = math.Modf(offset)
	f1, f2 := start+offset, end+offset
	if offset < 0.0 {
		if f1 < 0.0 {
			f1 += 1.0
		}
		if f2 <= 0.0 {
			f2 += 1.0
		}
	} else if 0.0 < offset {
		if 1.0 < f1 {
			f1 -= 1.0
		}
		if 1.0 < f2 {
			f2 -= 1.0
		}
	}

	length := p.Length()
	l1, l2 := f1*length, f2*length
	if f1 <= f2 {
		return p.subrange(l1, l2)
	}

	// wrap around
	q := p.subrange(l1, length)
	r := p.subrange(0.0, l2)
	if !q.Empty() && !r.Empty() && q.Pos().Equals(r.segments()[0].start) {
		q.cmds = append(q.cmds, r.cmds[1:]...)
		q.d = append(q.d, r.d[2:]...)
		return q
	}
	q.Append(r)
	return q
}
