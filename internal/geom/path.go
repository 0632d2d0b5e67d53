package geom

import (
	"math"
	"strconv"
	"strings"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}
func (p Point) Lerp(o Point, t float64) Point {
	return Point{p.X + (o.X-p.X)*t, p.Y + (o.Y-p.Y)*t}
}

// Op is an SVG path command letter.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpQuad  Op = 'Q'
	OpCubic Op = 'C'
	OpClose Op = 'Z'
)

// Segment is one absolute path command. Pts holds the control points
// followed by the end point: 1 for M/L, 2 for Q, 3 for C, 0 for Z.
type Segment struct {
	Op  Op
	Pts []Point
}

// Path is a sequence of absolute SVG path commands.
type Path struct {
	Segments []Segment
}

func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(x, y float64) *Path { return p.add(OpMove, Pt(x, y)) }
func (p *Path) LineTo(x, y float64) *Path { return p.add(OpLine, Pt(x, y)) }

func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	return p.add(OpQuad, Pt(cx, cy), Pt(x, y))
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	return p.add(OpCubic, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

func (p *Path) Close() *Path { return p.add(OpClose) }

func (p *Path) add(op Op, pts ...Point) *Path {
	p.Segments = append(p.Segments, Segment{Op: op, Pts: pts})
	return p
}

func (p Path) Empty() bool { return len(p.Segments) == 0 }

// String renders SVG path data, e.g. "M20,20 L200,20 Q212,150 200,280 Z".
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(s.Op))
		for j, pt := range s.Pts {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(FormatNum(pt.X))
			sb.WriteByte(',')
			sb.WriteString(FormatNum(pt.Y))
		}
	}
	return sb.String()
}

// Map returns a copy of p with fn applied to every point.
func (p Path) Map(fn func(Point) Point) Path {
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		pts := make([]Point, len(s.Pts))
		for j, pt := range s.Pts {
			pts[j] = fn(pt)
		}
		out.Segments[i] = Segment{Op: s.Op, Pts: pts}
	}
	return out
}

// Transform bakes t into absolute coordinates. Affine maps preserve
// Bezier curves, so only control points need transforming.
func (p Path) Transform(t Transform2D) Path {
	if t.IsIdentity() {
		return p.Map(func(pt Point) Point { return pt })
	}
	return p.Map(t.Apply)
}

// Flatten approximates curves with steps line segments each and returns one
// polyline per subpath. Closed subpaths end at their start point.
func (p Path) Flatten(steps int) [][]Point {
	if steps < 1 {
		steps = 1
	}
	var (
		lines [][]Point
		cur   []Point
		start Point
		pen   Point
	)
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, s := range p.Segments {
		switch s.Op {
		case OpMove:
			flush()
			pen, start = s.Pts[0], s.Pts[0]
			cur = []Point{pen}
		case OpLine:
			pen = s.Pts[0]
			cur = append(cur, pen)
		case OpQuad:
			p0 := pen
			for i := 1; i <= steps; i++ {
				cur = append(cur, quadAt(p0, s.Pts[0], s.Pts[1], float64(i)/float64(steps)))
			}
			pen = s.Pts[1]
		case OpCubic:
			p0 := pen
			for i := 1; i <= steps; i++ {
				cur = append(cur, cubicAt(p0, s.Pts[0], s.Pts[1], s.Pts[2], float64(i)/float64(steps)))
			}
			pen = s.Pts[2]
		case OpClose:
			if pen != start {
				cur = append(cur, start)
			}
			pen = start
		}
	}
	flush()
	return lines
}

// Bounds returns the bounding box of all points, control points included.
func (p Path) Bounds() (min, max Point) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	for _, s := range p.Segments {
		for _, pt := range s.Pts {
			min.X, min.Y = math.Min(min.X, pt.X), math.Min(min.Y, pt.Y)
			max.X, max.Y = math.Max(max.X, pt.X), math.Max(max.Y, pt.Y)
		}
	}
	return min, max
}

func quadAt(p0, c, p1 Point, t float64) Point {
	a := p0.Lerp(c, t)
	b := c.Lerp(p1, t)
	return a.Lerp(b, t)
}

func cubicAt(p0, c1, c2, p1 Point, t float64) Point {
	a := quadAt(p0, c1, c2, t)
	b := quadAt(c1, c2, p1, t)
	return a.Lerp(b, t)
}

// FormatNum prints v with at most three decimals and no negative zero.
func FormatNum(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
