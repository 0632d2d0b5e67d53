package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/faultsim/internal/geom"
	"golang.org/x/image/vector"
)

const curveSteps = 24

// Rasterize paints a frame into an RGBA image of the given pixel size. The
// frame's viewBox is scaled to fit.
func Rasterize(f geom.Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(parseColor(background, 1)), image.Point{}, draw.Src)
	if f.Width <= 0 || f.Height <= 0 {
		return img
	}

	r := &painter{
		dst: img,
		z:   vector.NewRasterizer(width, height),
		sx:  float64(width) / f.Width,
		sy:  float64(height) / f.Height,
	}

	for _, p := range f.Plates {
		r.fill(p.Placed(), parseColor(p.Fill, 1))
	}
	if !f.Trace.Empty() {
		r.stroke(f.Trace, 2, parseColor(f.TraceColor, 1))
	}
	for _, face := range f.Faces {
		r.fill(face.Polygon(), parseColor(face.Fill, 1))
		r.stroke(face.Polygon(), 0.75, color.NRGBA{0x11, 0x11, 0x11, 0xff})
	}
	for _, a := range f.Arrows {
		if a.Visible {
			r.stroke(a.Path, 3, parseColor(a.Color, a.Opacity))
		}
	}
	return img
}

type painter struct {
	dst    *image.RGBA
	z      *vector.Rasterizer
	sx, sy float64
}

func (r *painter) pt(p geom.Point) (float32, float32) {
	return float32(p.X * r.sx), float32(p.Y * r.sy)
}

func (r *painter) fill(p geom.Path, c color.Color) {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	for _, s := range p.Segments {
		switch s.Op {
		case geom.OpMove:
			r.z.MoveTo(r.pt(s.Pts[0]))
		case geom.OpLine:
			r.z.LineTo(r.pt(s.Pts[0]))
		case geom.OpQuad:
			bx, by := r.pt(s.Pts[0])
			cx, cy := r.pt(s.Pts[1])
			r.z.QuadTo(bx, by, cx, cy)
		case geom.OpCubic:
			bx, by := r.pt(s.Pts[0])
			cx, cy := r.pt(s.Pts[1])
			dx, dy := r.pt(s.Pts[2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		case geom.OpClose:
			r.z.ClosePath()
		}
	}
	r.z.ClosePath()
	r.z.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

// stroke outlines a path by filling one quad per flattened segment.
func (r *painter) stroke(p geom.Path, width float64, c color.Color) {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	hw := width / 2 * math.Sqrt(r.sx*r.sy)
	for _, line := range p.Flatten(curveSteps) {
		for i := 1; i < len(line); i++ {
			ax, ay := r.pt(line[i-1])
			bx, by := r.pt(line[i])
			dx, dy := float64(bx-ax), float64(by-ay)
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx, ny := float32(-dy/l*hw), float32(dx/l*hw)
			r.z.MoveTo(ax+nx, ay+ny)
			r.z.LineTo(bx+nx, by+ny)
			r.z.LineTo(bx-nx, by-ny)
			r.z.LineTo(ax-nx, ay-ny)
			r.z.ClosePath()
		}
	}
	r.z.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

func parseColor(hex string, alpha float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(alpha, 1)) * 255))}
}
