package geom

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform2D mirrors the SVG list "translate(TX TY) rotate(Rotate OX OY)":
// a point is rotated by Rotate degrees about (OX, OY), then translated.
type Transform2D struct {
	TX, TY float64
	Rotate float64
	OX, OY float64
}

// IsIdentity ignores the pivot, which has no effect without rotation.
func (t Transform2D) IsIdentity() bool {
	return t.TX == 0 && t.TY == 0 && t.Rotate == 0
}

func (t Transform2D) Apply(p Point) Point {
	if t.Rotate != 0 {
		rot := mgl64.Rotate2D(mgl64.DegToRad(t.Rotate))
		v := rot.Mul2x1(mgl64.Vec2{p.X - t.OX, p.Y - t.OY})
		p = Point{v.X() + t.OX, v.Y() + t.OY}
	}
	return Point{p.X + t.TX, p.Y + t.TY}
}

// SVG renders the attribute value. The identity renders as "".
func (t Transform2D) SVG() string {
	if t.IsIdentity() {
		return ""
	}
	var parts []string
	if t.TX != 0 || t.TY != 0 {
		parts = append(parts, "translate("+FormatNum(t.TX)+" "+FormatNum(t.TY)+")")
	}
	if t.Rotate != 0 {
		parts = append(parts, "rotate("+FormatNum(t.Rotate)+" "+FormatNum(t.OX)+" "+FormatNum(t.OY)+")")
	}
	return strings.Join(parts, " ")
}
