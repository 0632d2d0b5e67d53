package geom

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec3 is the config-facing vector; math goes through mgl64.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromMgl(v mgl64.Vec3) Vec3 { return Vec3{v.X(), v.Y(), v.Z()} }

// PlateDescriptor is the static configuration of one rigid plate. Size is
// width (x), height (y) and depth (z, the crustal thickness). Rotation is in
// degrees and is applied X, then Y, then Z.
type PlateDescriptor struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Color    string `yaml:"color" json:"color"`
	Position Vec3   `yaml:"position" json:"position"`
	Rotation Vec3   `yaml:"rotation" json:"rotation"`
	Size     Vec3   `yaml:"size" json:"size"`
	Velocity Vec3   `yaml:"velocity" json:"velocity"`
}

// Block is an animated plate: its placement and its six projected faces.
type Block struct {
	ID       string
	Name     string
	Color    string
	Position Vec3
	Rotation Vec3
	Size     Vec3
	// Model maps local box coordinates to world coordinates.
	Model mgl64.Mat4
	Faces [6]Face
}

// CSS renders the block placement as a CSS 3D transform.
func (b Block) CSS() string {
	return fmt.Sprintf("translate3d(%spx, %spx, %spx) rotateX(%sdeg) rotateY(%sdeg) rotateZ(%sdeg)",
		FormatNum(b.Position.X), FormatNum(b.Position.Y), FormatNum(b.Position.Z),
		FormatNum(b.Rotation.X), FormatNum(b.Rotation.Y), FormatNum(b.Rotation.Z))
}

// Face is one projected quad of a block.
type Face struct {
	Block   string
	Index   int
	Corners [4]Point
	// Depth is the mean view-space z; larger is nearer the viewer.
	Depth float64
	Shade float64
	Fill  string
}

func (f Face) Name() string { return FaceName(f.Index) }

// Polygon returns the face outline as a closed path.
func (f Face) Polygon() Path {
	p := NewPath().MoveTo(f.Corners[0].X, f.Corners[0].Y)
	for _, c := range f.Corners[1:] {
		p.LineTo(c.X, c.Y)
	}
	return *p.Close()
}

// Corner indices into boxCorners, one quad per face, in FaceFront..FaceBottom
// order. Bit 0 selects +x, bit 1 +y, bit 2 +z.
var faceCorners = [6][4]int{
	{4, 5, 7, 6}, // front  +z
	{0, 2, 3, 1}, // back   -z
	{1, 3, 7, 5}, // right  +x
	{0, 4, 6, 2}, // left   -x
	{0, 1, 5, 4}, // top    -y (screen up)
	{2, 6, 7, 3}, // bottom +y
}

func boxCorners(size Vec3) [8]mgl64.Vec3 {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	var c [8]mgl64.Vec3
	for i := range c {
		x, y, z := -hx, -hy, -hz
		if i&1 != 0 {
			x = hx
		}
		if i&2 != 0 {
			y = hy
		}
		if i&4 != 0 {
			z = hz
		}
		c[i] = mgl64.Vec3{x, y, z}
	}
	return c
}

// ViewMatrix is the fixed isometric camera.
func ViewMatrix(s Style) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(s.ViewRotateX)).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(s.ViewRotateZ)))
}

// AnimatedPosition is position + velocity * d * scale.
func AnimatedPosition(p PlateDescriptor, d, scale float64) Vec3 {
	return fromMgl(p.Position.Mgl().Add(p.Velocity.Mgl().Mul(d * scale)))
}

func modelMatrix(pos, rot Vec3) mgl64.Mat4 {
	r := mgl64.HomogRotate3DZ(mgl64.DegToRad(rot.Z)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(rot.Y))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(rot.X)))
	return mgl64.Translate3D(pos.X, pos.Y, pos.Z).Mul4(r)
}

func mapScenario(f *Frame, d float64, v Variant) {
	s := v.Style
	view := ViewMatrix(s)
	origin := Pt(f.Width/2, f.Height/2)

	project := func(w mgl64.Vec3) (Point, float64) {
		p := view.Mul4x1(w.Vec4(1)).Vec3()
		return Point{origin.X + p.X(), origin.Y + p.Y()}, p.Z()
	}

	f.Blocks = make([]Block, 0, len(v.Plates))
	for _, pd := range v.Plates {
		pos := AnimatedPosition(pd, d, s.Scale)
		model := modelMatrix(pos, pd.Rotation)
		b := Block{
			ID:       pd.ID,
			Name:     pd.Name,
			Color:    pd.Color,
			Position: pos,
			Rotation: pd.Rotation,
			Size:     pd.Size,
			Model:    model,
		}
		corners := boxCorners(pd.Size)
		for fi, idx := range faceCorners {
			face := Face{Block: pd.ID, Index: fi, Shade: s.FaceShading[fi]}
			for k, ci := range idx {
				pt, z := project(model.Mul4x1(corners[ci].Vec4(1)).Vec3())
				face.Corners[k] = pt
				face.Depth += z / 4
			}
			face.Fill = Shade(pd.Color, face.Shade)
			b.Faces[fi] = face
		}
		f.Blocks = append(f.Blocks, b)

		// Motion arrow from the block centre along its velocity.
		from, _ := project(pos.Mgl())
		tip, _ := project(pos.Mgl().Add(pd.Velocity.Mgl().Mul(s.Scale * 0.8)))
		if from != tip {
			f.Arrows = append(f.Arrows, arrow(from, tip, s, f.Displacement, d))
		}
	}

	for _, b := range f.Blocks {
		f.Faces = append(f.Faces, b.Faces[:]...)
	}
	sort.SliceStable(f.Faces, func(i, j int) bool { return f.Faces[i].Depth < f.Faces[j].Depth })
}

// Shade scales a hex color's RGB channels by k. Unparseable colors shade a
// neutral grey.
func Shade(hex string, k float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped().Hex()
}

// DefaultPlates returns the built-in descriptors for a scenario type.
func DefaultPlates(t Type) []PlateDescriptor {
	switch t {
	case TwoPlate:
		return []PlateDescriptor{
			{ID: "pacific", Name: "Pacific Plate", Color: "#3f7cac",
				Position: V3(-115, 0, 0), Rotation: V3(0, 0, -4), Size: V3(200, 160, 24), Velocity: V3(1, 0, 0)},
			{ID: "north-american", Name: "North American Plate", Color: "#c9854f",
				Position: V3(115, 0, 0), Rotation: V3(0, 0, 4), Size: V3(200, 160, 24), Velocity: V3(-1, 0, 0)},
		}
	case ThreePlate:
		return []PlateDescriptor{
			{ID: "nubian", Name: "Nubian Plate", Color: "#b5894e",
				Position: V3(-95, -55, 0), Rotation: V3(0, 0, 30), Size: V3(170, 120, 22), Velocity: V3(-0.8, -0.5, 0)},
			{ID: "arabian", Name: "Arabian Plate", Color: "#d4b16a",
				Position: V3(95, -55, 0), Rotation: V3(0, 0, -30), Size: V3(170, 120, 22), Velocity: V3(0.8, -0.5, 0)},
			{ID: "somali", Name: "Somali Plate", Color: "#8c6d46",
				Position: V3(0, 95, 0), Rotation: V3(0, 0, 0), Size: V3(170, 120, 22), Velocity: V3(0, 1, 0)},
		}
	case FourPlate:
		return []PlateDescriptor{
			{ID: "north-west", Name: "Northwest Plate", Color: "#5c8a6e",
				Position: V3(-85, -65, 0), Rotation: V3(0, 0, 0), Size: V3(150, 110, 20), Velocity: V3(-0.6, 0.2, 0)},
			{ID: "north-east", Name: "Northeast Plate", Color: "#a36b4f",
				Position: V3(85, -65, 0), Rotation: V3(0, 0, 0), Size: V3(150, 110, 20), Velocity: V3(0.2, -0.7, 0)},
			{ID: "south-west", Name: "Southwest Plate", Color: "#4f6ea3",
				Position: V3(-85, 65, 0), Rotation: V3(0, 0, 0), Size: V3(150, 110, 20), Velocity: V3(-0.2, 0.6, 0)},
			{ID: "south-east", Name: "Southeast Plate", Color: "#b39a4f",
				Position: V3(85, 65, 0), Rotation: V3(0, 0, 0), Size: V3(150, 110, 20), Velocity: V3(0.7, 0.1, 0)},
		}
	}
	return nil
}
