package geom

// Style is the per-variant configuration record: colors, labels, curve
// constants and offsets at full displacement (d = 1).
type Style struct {
	Title     string
	Subtitle  string
	Narrative string

	Width, Height float64

	PlateNames  [2]string
	PlateColors [2]string
	TraceColor  string
	ArrowColor  string

	// Strike-slip: each plate slides this far along the fault, in
	// opposite directions.
	LateralOffset float64

	// Normal and reverse: signed hanging-wall offsets and rotation (degrees)
	// about the base of the fault, plus the footwall's vertical response.
	HangingDX     float64
	HangingDY     float64
	HangingRotate float64
	FootwallDY    float64

	// Arrows appear once raw displacement exceeds ArrowThreshold; opacity is
	// min(d*ArrowGain, ArrowCap).
	ArrowThreshold float64
	ArrowGain      float64
	ArrowCap       float64

	// Scenario mode.
	Scale       float64
	ViewRotateX float64
	ViewRotateZ float64
	FaceShading [6]float64
}

// Face indices into Style.FaceShading.
const (
	FaceFront = iota
	FaceBack
	FaceRight
	FaceLeft
	FaceTop
	FaceBottom
)

var faceNames = [6]string{"front", "back", "right", "left", "top", "bottom"}

func FaceName(i int) string { return faceNames[i] }

var defaultShading = [6]float64{1.0, 0.55, 0.8, 0.7, 0.9, 0.6}

const (
	DefaultScale       = 50.0
	DefaultViewRotateX = 60.0
	DefaultViewRotateZ = -45.0
)

// DefaultStyle returns the built-in configuration for t. maxDisplacement
// sets the arrow threshold to a tenth of the range.
func DefaultStyle(t Type, maxDisplacement float64) Style {
	s := Style{
		Width:          400,
		Height:         300,
		TraceColor:     "#f5f5f5",
		ArrowColor:     "#ff5544",
		ArrowThreshold: maxDisplacement * 0.1,
		ArrowGain:      1.5,
		ArrowCap:       0.9,
		Scale:          DefaultScale,
		ViewRotateX:    DefaultViewRotateX,
		ViewRotateZ:    DefaultViewRotateZ,
		FaceShading:    defaultShading,
	}
	switch t {
	case StrikeSlip:
		s.Title = "Strike-Slip Fault"
		s.Subtitle = "transform boundary, map view"
		s.Narrative = "Two plates grind past each other horizontally. Motion is parallel to the fault trace, so the crust is neither created nor destroyed."
		s.PlateNames = [2]string{"Western Block", "Eastern Block"}
		s.PlateColors = [2]string{"#c98b4f", "#8fa66b"}
		s.LateralOffset = 35
	case Normal:
		s.Title = "Normal Fault"
		s.Subtitle = "extension on a listric surface"
		s.Narrative = "Tension pulls the crust apart. The hanging wall slides down the concave-up fault surface and back-tilts toward it."
		s.PlateNames = [2]string{"Footwall", "Hanging Wall"}
		s.PlateColors = [2]string{"#b9835a", "#d9a86c"}
		s.HangingDX = 12
		s.HangingDY = 30
		s.HangingRotate = 6
		s.FootwallDY = -3
	case Reverse:
		s.Title = "Reverse Fault"
		s.Subtitle = "compression on a convex thrust"
		s.Narrative = "Compression shortens the crust. The hanging wall is pushed up and over the footwall along the steepening thrust surface."
		s.PlateNames = [2]string{"Footwall", "Hanging Wall"}
		s.PlateColors = [2]string{"#7d8fa6", "#a6b4c9"}
		s.HangingDX = -12
		s.HangingDY = -30
		s.HangingRotate = -5
		s.FootwallDY = 3
	case TwoPlate:
		s.Title = "Two-Plate Convergence"
		s.Subtitle = "plates closing on a single boundary"
		s.Narrative = "Two plates move toward each other. Where they meet, one is forced beneath the other or both crumple into mountains."
		s.Width, s.Height = 480, 360
	case ThreePlate:
		s.Title = "Triple Junction"
		s.Subtitle = "three plates meeting at a point"
		s.Narrative = "Three boundaries meet at a single junction. Each pair of plates separates at its own rate, opening rifts between them."
		s.Width, s.Height = 480, 360
	case FourPlate:
		s.Title = "Four-Plate Mosaic"
		s.Subtitle = "mixed boundaries around a shared corner"
		s.Narrative = "Four plates share a corner. Some boundaries spread, some shear, so the junction cannot stay stable for long."
		s.Width, s.Height = 480, 360
	}
	return s
}
