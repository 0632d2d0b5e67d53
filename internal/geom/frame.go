package geom

import "math"

// Variant is the static configuration a mapper needs.
type Variant struct {
	Type            Type
	MaxDisplacement float64
	Style           Style
	// Plates is used by scenario types only.
	Plates []PlateDescriptor
}

// DefaultVariant builds a variant from the built-in style table.
func DefaultVariant(t Type, maxDisplacement float64) Variant {
	return Variant{
		Type:            t,
		MaxDisplacement: maxDisplacement,
		Style:           DefaultStyle(t, maxDisplacement),
		Plates:          DefaultPlates(t),
	}
}

// Frame is the geometry for one render. It is recomputed every tick.
type Frame struct {
	Type  Type
	Title string
	// Displacement is the clamped raw value; D is the normalized value.
	Displacement float64
	D            float64

	Width, Height float64

	// Fault types.
	Plates     []PlateShape
	Trace      Path
	TraceColor string

	Arrows []Arrow

	// Scenario types. Faces holds every block face sorted far to near.
	Blocks []Block
	Faces  []Face
}

// Normalize returns displacement / max clamped to [0,1]. A non-positive
// max always normalizes to 0.
func Normalize(displacement, max float64) float64 {
	if max <= 0 || math.IsNaN(displacement) {
		return 0
	}
	return math.Max(0, math.Min(displacement/max, 1))
}

func clampRaw(v, max float64) float64 {
	if math.IsNaN(v) || v <= 0 || max <= 0 {
		return 0
	}
	return math.Min(v, max)
}

// Map computes the frame for a displacement. It is pure.
func Map(displacement float64, v Variant) Frame {
	d := Normalize(displacement, v.MaxDisplacement)
	f := Frame{
		Type:         v.Type,
		Title:        v.Style.Title,
		Displacement: clampRaw(displacement, v.MaxDisplacement),
		D:            d,
		Width:        v.Style.Width,
		Height:       v.Style.Height,
		TraceColor:   v.Style.TraceColor,
	}

	switch v.Type {
	case StrikeSlip:
		mapStrikeSlip(&f, d, v.Style)
	case Normal:
		mapNormal(&f, d, v.Style)
	case Reverse:
		mapReverse(&f, d, v.Style)
	case TwoPlate, ThreePlate, FourPlate:
		mapScenario(&f, d, v)
	}
	return f
}
