package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/faultsim/internal/geom"
)

const background = "#0a0a0a"

// FrameSVG renders a frame as a standalone SVG document. Fault plates keep
// their at-rest outline and carry the displacement as a native transform
// attribute; scenario faces are emitted far to near as polygons.
func FrameSVG(f geom.Frame, width, height int) string {
	if width <= 0 {
		width = int(f.Width)
	}
	if height <= 0 {
		height = int(f.Height)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %s %s">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, geom.FormatNum(f.Width), geom.FormatNum(f.Height), background))

	if f.Title != "" {
		sb.WriteString(fmt.Sprintf(`<title>%s</title>
`, html.EscapeString(f.Title)))
	}

	if len(f.Plates) > 0 {
		sb.WriteString(`<g id="plates" stroke="#1a1a1a" stroke-width="1.5">
`)
		for _, p := range f.Plates {
			attr := ""
			if t := p.Transform.SVG(); t != "" {
				attr = fmt.Sprintf(` transform="%s"`, t)
			}
			sb.WriteString(fmt.Sprintf(`<path id="%s" fill="%s" d="%s"%s/>
`, html.EscapeString(p.ID), p.Fill, p.Outline.String(), attr))
		}
		sb.WriteString("</g>\n")
	}

	if !f.Trace.Empty() {
		sb.WriteString(fmt.Sprintf(`<path id="fault-trace" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="6 4" d="%s"/>
`, f.TraceColor, f.Trace.String()))
	}

	if len(f.Faces) > 0 {
		sb.WriteString(`<g id="blocks" stroke="#111111" stroke-width="0.75" stroke-linejoin="round">
`)
		for _, face := range f.Faces {
			sb.WriteString(fmt.Sprintf(`<path class="%s %s" fill="%s" d="%s"/>
`, html.EscapeString(face.Block), face.Name(), face.Fill, face.Polygon().String()))
		}
		sb.WriteString("</g>\n")
	}

	for i, a := range f.Arrows {
		if !a.Visible {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path id="arrow-%d" fill="none" stroke="%s" stroke-width="3" stroke-linecap="round" opacity="%s" d="%s"/>
`, i, a.Color, geom.FormatNum(a.Opacity), a.Path.String()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TimelineSVG plots displacement against time as a polyline.
func TimelineSVG(times, values []float64, maxValue float64, width, height int, strokeColor string) string {
	if len(times) < 2 || len(times) != len(values) {
		return ""
	}

	span := times[len(times)-1] - times[0]
	if span == 0 {
		span = 1
	}
	if maxValue <= 0 {
		maxValue = 1
	}
	pad := 0.05 * float64(height)
	plotH := float64(height) - 2*pad

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i := range times {
		x := (times[i] - times[0]) / span * float64(width)
		y := float64(height) - pad - values[i]/maxValue*plotH

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
