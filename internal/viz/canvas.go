package viz

import (
	"math"
	"strings"

	"github.com/san-kum/faultsim/internal/geom"
)

const blank = 0x2800

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel grid. Its resolution in dots is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, mask rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, rune(pixelMap[y%4][x%2]), true
}

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= mask
	}
}

func (c *Canvas) Unset(x, y int) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= mask
		if c.Grid[row][col] < blank {
			c.Grid[row][col] = blank
		}
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, mask, ok := c.cell(x, y)
	return ok && c.Grid[row][col]&mask != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.line(x0, y0, x1, y1, 1)
}

// DrawDashed draws a line lighting every other run of dash dots.
func (c *Canvas) DrawDashed(x0, y0, x1, y1, dash int) {
	if dash < 1 {
		dash = 1
	}
	c.line(x0, y0, x1, y1, dash)
}

func (c *Canvas) line(x0, y0, x1, y1, dash int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if dash == 1 || (n/dash)%2 == 0 {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps frame viewBox units onto canvas dots, preserving aspect ratio
// and centring the box.
type Viewport struct {
	Scale      float64
	OffX, OffY float64
}

func NewViewport(c *Canvas, boxW, boxH float64) Viewport {
	w, h := c.Dots()
	if boxW <= 0 || boxH <= 0 {
		return Viewport{Scale: 1}
	}
	s := math.Min(float64(w)/boxW, float64(h)/boxH)
	return Viewport{
		Scale: s,
		OffX:  (float64(w) - boxW*s) / 2,
		OffY:  (float64(h) - boxH*s) / 2,
	}
}

func (v Viewport) Map(p geom.Point) (int, int) {
	return int(math.Round(p.X*v.Scale + v.OffX)), int(math.Round(p.Y*v.Scale + v.OffY))
}

// DrawPath strokes every subpath of p after flattening its curves.
func (c *Canvas) DrawPath(p geom.Path, v Viewport, dash int) {
	for _, poly := range p.Flatten(curveSteps) {
		for i := 1; i < len(poly); i++ {
			x0, y0 := v.Map(poly[i-1])
			x1, y1 := v.Map(poly[i])
			if dash > 1 {
				c.DrawDashed(x0, y0, x1, y1, dash)
			} else {
				c.DrawLine(x0, y0, x1, y1)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
