package geom

import "math"

const arrowHead = 12.0

// Arrow is a stress or motion indicator drawn as a stroked path.
type Arrow struct {
	From, To Point
	Path     Path
	Color    string
	Visible  bool
	Opacity  float64
}

// ArrowOpacity is zero up to the raw threshold, then min(d*gain, cap).
// Keeping arrows hidden near zero stops them flickering at rest.
func ArrowOpacity(displacement, d float64, s Style) float64 {
	if displacement <= s.ArrowThreshold || d <= 0 {
		return 0
	}
	return math.Min(d*s.ArrowGain, s.ArrowCap)
}

func arrow(from, to Point, s Style, displacement, d float64) Arrow {
	op := ArrowOpacity(displacement, d, s)
	return Arrow{
		From:    from,
		To:      to,
		Path:    arrowPath(from, to),
		Color:   s.ArrowColor,
		Visible: op > 0,
		Opacity: op,
	}
}

// arrowPath is a shaft plus an open chevron head at to.
func arrowPath(from, to Point) Path {
	dir := to.Sub(from)
	l := math.Hypot(dir.X, dir.Y)
	p := NewPath().MoveTo(from.X, from.Y).LineTo(to.X, to.Y)
	if l == 0 {
		return *p
	}
	u := dir.Scale(1 / l)
	n := Point{-u.Y, u.X}
	back := to.Sub(u.Scale(arrowHead))
	a := back.Add(n.Scale(arrowHead * 0.66))
	b := back.Sub(n.Scale(arrowHead * 0.66))
	p.MoveTo(a.X, a.Y).LineTo(to.X, to.Y).LineTo(b.X, b.Y)
	return *p
}
