package viz

import "github.com/san-kum/faultsim/internal/geom"

const curveSteps = 12

// RenderFrame strokes a frame onto the canvas: plate outlines, the fault
// trace dashed, block faces far to near, then visible arrows.
func RenderFrame(c *Canvas, f geom.Frame) {
	c.Clear()
	vp := NewViewport(c, f.Width, f.Height)

	for _, p := range f.Plates {
		c.DrawPath(p.Placed(), vp, 0)
	}
	if !f.Trace.Empty() {
		c.DrawPath(f.Trace, vp, 2)
	}
	for _, face := range f.Faces {
		c.DrawPath(face.Polygon(), vp, 0)
	}
	for _, a := range f.Arrows {
		if a.Visible {
			c.DrawPath(a.Path, vp, 0)
		}
	}
}
