package geom

// Cross-section layout shared by the fault mappers, in a 400x300 viewBox.
const (
	marginX  = 20.0
	surfaceY = 80.0
	baseY    = 260.0
	rightX   = 380.0
)

// PlateShape is one rigid 2D plate: its at-rest outline plus the transform
// that places it at the current displacement.
type PlateShape struct {
	ID        string
	Name      string
	Fill      string
	Outline   Path
	Transform Transform2D
}

// Placed returns the outline with the transform baked in.
func (p PlateShape) Placed() Path { return p.Outline.Transform(p.Transform) }

// mapStrikeSlip draws a map view. The fault trace runs north-south with a
// gentle bow; the western plate moves north and the eastern plate south.
func mapStrikeSlip(f *Frame, d float64, s Style) {
	west := NewPath().
		MoveTo(marginX, 20).LineTo(200, 20).
		QuadTo(212, 150, 200, 280).
		LineTo(marginX, 280).Close()
	east := NewPath().
		MoveTo(200, 20).LineTo(rightX, 20).LineTo(rightX, 280).LineTo(200, 280).
		QuadTo(212, 150, 200, 20).Close()

	off := s.LateralOffset * d
	f.Plates = []PlateShape{
		{ID: "west", Name: s.PlateNames[0], Fill: s.PlateColors[0], Outline: *west, Transform: Transform2D{TY: -off}},
		{ID: "east", Name: s.PlateNames[1], Fill: s.PlateColors[1], Outline: *east, Transform: Transform2D{TY: off}},
	}
	f.Trace = *NewPath().MoveTo(200, 20).QuadTo(212, 150, 200, 280)

	f.Arrows = []Arrow{
		arrow(Pt(110, 190), Pt(110, 110), s, f.Displacement, d),
		arrow(Pt(290, 110), Pt(290, 190), s, f.Displacement, d),
	}
}

// mapNormal draws a listric normal fault: steep at the surface, flattening
// with depth (concave up). The hanging wall drops, extends and back-rotates
// about the base of the fault.
func mapNormal(f *Frame, d float64, s Style) {
	c1, c2, end := Pt(180, 170), Pt(220, 240), Pt(290, baseY)
	top := Pt(170, surfaceY)

	foot := NewPath().
		MoveTo(marginX, surfaceY).LineTo(top.X, top.Y).
		CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y).
		LineTo(marginX, baseY).Close()
	hanging := NewPath().
		MoveTo(top.X, top.Y).LineTo(rightX, surfaceY).LineTo(rightX, baseY).LineTo(end.X, end.Y).
		CubicTo(c2.X, c2.Y, c1.X, c1.Y, top.X, top.Y).Close()

	f.Plates = []PlateShape{
		{ID: "footwall", Name: s.PlateNames[0], Fill: s.PlateColors[0], Outline: *foot,
			Transform: Transform2D{TY: s.FootwallDY * d}},
		{ID: "hanging-wall", Name: s.PlateNames[1], Fill: s.PlateColors[1], Outline: *hanging,
			Transform: Transform2D{TX: s.HangingDX * d, TY: s.HangingDY * d, Rotate: s.HangingRotate * d, OX: end.X, OY: end.Y}},
	}
	f.Trace = *NewPath().MoveTo(top.X, top.Y).CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)

	// Tension: arrows point away from the fault.
	f.Arrows = []Arrow{
		arrow(Pt(120, 50), Pt(50, 50), s, f.Displacement, d),
		arrow(Pt(260, 50), Pt(330, 50), s, f.Displacement, d),
	}
}

// mapReverse draws a convex thrust: shallow near the surface, steepening
// with depth. The hanging wall rises, shortens and rotates forward.
func mapReverse(f *Frame, d float64, s Style) {
	c1, c2, end := Pt(210, 100), Pt(250, 170), Pt(260, baseY)
	top := Pt(150, surfaceY)

	foot := NewPath().
		MoveTo(marginX, surfaceY).LineTo(top.X, top.Y).
		CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y).
		LineTo(marginX, baseY).Close()
	hanging := NewPath().
		MoveTo(top.X, top.Y).LineTo(rightX, surfaceY).LineTo(rightX, baseY).LineTo(end.X, end.Y).
		CubicTo(c2.X, c2.Y, c1.X, c1.Y, top.X, top.Y).Close()

	f.Plates = []PlateShape{
		{ID: "footwall", Name: s.PlateNames[0], Fill: s.PlateColors[0], Outline: *foot,
			Transform: Transform2D{TY: s.FootwallDY * d}},
		{ID: "hanging-wall", Name: s.PlateNames[1], Fill: s.PlateColors[1], Outline: *hanging,
			Transform: Transform2D{TX: s.HangingDX * d, TY: s.HangingDY * d, Rotate: s.HangingRotate * d, OX: end.X, OY: end.Y}},
	}
	f.Trace = *NewPath().MoveTo(top.X, top.Y).CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)

	// Compression: arrows point at the fault.
	f.Arrows = []Arrow{
		arrow(Pt(50, 50), Pt(120, 50), s, f.Displacement, d),
		arrow(Pt(330, 50), Pt(260, 50), s, f.Displacement, d),
	}
}
