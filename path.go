package lottie

import (
	"math"
	"strconv"
	"strings"
)

// Precision is the number of significant decimals used when formatting path coordinates.
var Precision = 5

// PathCmd is a path command.
type PathCmd int

// The path commands. CloseCmd stores the subpath's start position so that every command ends at a point.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CubeToCmd
	CloseCmd
)

func cmdLen(cmd PathCmd) int {
	switch cmd {
	case CubeToCmd:
		return 6
	}
	return 2
}

// Path defines a vector path in 2D using a series of commands (MoveTo, LineTo, CubeTo and Close). Each command consists of a number of float64 values (depending on the command) that fully define the action. The last values of every command is the end position.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true if p is an empty path or consists of only MoveTos.
func (p *Path) Empty() bool {
	if p == nil {
		return true
	}
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) || len(p.d) != len(q.d) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if !equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := &Path{x0: p.x0, y0: p.y0}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// Append appends path q to p.
func (p *Path) Append(q *Path) {
	if q == nil || len(q.cmds) == 0 {
		return
	}
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	p.x0, p.y0 = q.x0, q.y0
}

// Pos returns the current position of the path, which is the end point of the last command.
func (p *Path) Pos() Point {
	if len(p.d) > 1 {
		return Point{p.d[len(p.d)-2], p.d[len(p.d)-1]}
	}
	return Point{}
}

// StartPos returns the start point of the current subpath.
func (p *Path) StartPos() Point {
	return Point{p.x0, p.y0}
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == MoveToCmd {
		p.d[len(p.d)-2], p.d[len(p.d)-1] = x, y
	} else {
		p.cmds = append(p.cmds, MoveToCmd)
		p.d = append(p.d, x, y)
	}
	p.x0, p.y0 = x, y
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// CubeTo adds a cubic Bézier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, cpx1, cpy1, cpx2, cpy2, x, y)
}

// Close closes the current subpath with a line back to its start.
func (p *Path) Close() {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd {
		return
	}
	p.cmds = append(p.cmds, CloseCmd)
	p.d = append(p.d, p.x0, p.y0)
}

////////////////////////////////////////////////////////////////

// Transform transforms the path by the given transformation matrix and returns a new path.
func (p *Path) Transform(m Matrix) *Path {
	q := p.Copy()
	for i := 0; i+1 < len(q.d); i += 2 {
		pt := m.Dot(Point{q.d[i], q.d[i+1]})
		q.d[i], q.d[i+1] = pt.X, pt.Y
	}
	start := m.Dot(Point{q.x0, q.y0})
	q.x0, q.y0 = start.X, start.Y
	return q
}

// Translate translates the path by (x,y) and returns a new path.
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Bounds returns the bounding box of the path, including control points.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i])
		xmax = math.Max(xmax, p.d[i])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Reverse returns a new path that is the same path as p but in the reverse direction.
func (p *Path) Reverse() *Path {
	q := &Path{}
	subpaths := p.Split()
	for k := len(subpaths) - 1; 0 <= k; k-- {
		sp := subpaths[k]
		segs := sp.segments()
		if len(segs) == 0 {
			continue
		}
		closed := segs[len(segs)-1].cmd == CloseCmd
		if closed {
			// the closing line becomes the first segment of the reversed path
			closing := segs[len(segs)-1]
			segs = segs[:len(segs)-1]
			q.MoveTo(closing.end.X, closing.end.Y)
			if len(segs) == 0 {
				continue
			} else if !closing.start.Equals(closing.end) {
				q.LineTo(closing.start.X, closing.start.Y)
			}
		} else {
			end := segs[len(segs)-1].end
			q.MoveTo(end.X, end.Y)
		}
		for i := len(segs) - 1; 0 <= i; i-- {
			seg := segs[i]
			switch seg.cmd {
			case CubeToCmd:
				q.CubeTo(seg.c2.X, seg.c2.Y, seg.c1.X, seg.c1.Y, seg.start.X, seg.start.Y)
			default:
				if i != 0 || !closed {
					q.LineTo(seg.start.X, seg.start.Y)
				}
			}
		}
		if closed {
			q.Close()
		}
	}
	return q
}

// Split splits the path into its independent subpaths.
func (p *Path) Split() []*Path {
	ps := []*Path{}
	var q *Path
	i := 0
	for _, cmd := range p.cmds {
		n := cmdLen(cmd)
		if cmd == MoveToCmd || q == nil {
			q = &Path{}
			ps = append(ps, q)
			if cmd != MoveToCmd {
				q.MoveTo(0.0, 0.0)
			}
		}
		switch cmd {
		case MoveToCmd:
			q.MoveTo(p.d[i], p.d[i+1])
		case LineToCmd:
			q.LineTo(p.d[i], p.d[i+1])
		case CubeToCmd:
			q.CubeTo(p.d[i], p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5])
		case CloseCmd:
			q.Close()
		}
		i += n
	}
	return ps
}

// Length returns the arc length of the path.
func (p *Path) Length() float64 {
	length := 0.0
	for _, seg := range p.segments() {
		length += seg.length()
	}
	return length
}

// Area returns the signed area of the path's subpaths, where each subpath is implicitly closed. Its sign gives the orientation.
func (p *Path) Area() float64 {
	area := 0.0
	for _, sp := range p.Split() {
		var start Point
		for _, seg := range sp.segments() {
			start = seg.start
			break
		}
		prev := start
		for _, seg := range sp.segments() {
			n := 1
			if seg.cmd == CubeToCmd {
				n = 16
			}
			for k := 1; k <= n; k++ {
				cur := seg.at(float64(k) / float64(n))
				area += prev.PerpDot(cur)
				prev = cur
			}
		}
		area += prev.PerpDot(start)
	}
	return area / 2.0
}

// String returns a string that represents the path similar to the SVG path data format.
func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			writeNums(&sb, p.d[i:i+2])
		case LineToCmd:
			sb.WriteString("L")
			writeNums(&sb, p.d[i:i+2])
		case CubeToCmd:
			sb.WriteString("C")
			writeNums(&sb, p.d[i:i+6])
		case CloseCmd:
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}

func writeNums(sb *strings.Builder, vals []float64) {
	for j, v := range vals {
		if j != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(formatNum(v))
	}
}

func formatNum(v float64) string {
	f := math.Pow10(Precision)
	v = math.Round(v*f) / f
	if v == 0.0 {
		v = 0.0 // no negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

////////////////////////////////////////////////////////////////

// PathScanner iterates over the commands of a path.
type PathScanner struct {
	p     *Path
	i     int // command index
	j     int // index into values of the next command
	start Point
}

// Scanner returns a path scanner.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p: p, i: -1}
}

// Scan advances to the next command.
func (s *PathScanner) Scan() bool {
	if 0 <= s.i {
		s.start = s.End()
		s.j += cmdLen(s.p.cmds[s.i])
	}
	s.i++
	return s.i < len(s.p.cmds)
}

// Cmd returns the current command.
func (s *PathScanner) Cmd() PathCmd {
	return s.p.cmds[s.i]
}

// Values returns the current command's values.
func (s *PathScanner) Values() []float64 {
	return s.p.d[s.j : s.j+cmdLen(s.p.cmds[s.i])]
}

// Start returns the start point of the current command.
func (s *PathScanner) Start() Point {
	return s.start
}

// CP1 returns the first control point for cubic Béziers.
func (s *PathScanner) CP1() Point {
	if s.p.cmds[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return Point{s.p.d[s.j], s.p.d[s.j+1]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.p.cmds[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return Point{s.p.d[s.j+2], s.p.d[s.j+3]}
}

// End returns the end point of the current command.
func (s *PathScanner) End() Point {
	n := cmdLen(s.p.cmds[s.i])
	return Point{s.p.d[s.j+n-2], s.p.d[s.j+n-1]}
}
