package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	metricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(8)

	metricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// GradientText colors each rune along a Lab blend from start to end.
func GradientText(text string, start, end string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(start)
	b, errB := colorful.Hex(end)
	if errA != nil || errB != nil {
		return text
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLab(b, t).Clamped()
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return result.String()
}

// Slider renders the displacement slider with the needle at frac of width.
func Slider(frac float64, width int, th Theme) string {
	if width < 1 {
		return ""
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(th.Accent).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(th.Muted).Render(strings.Repeat("─", width-filled))
}

func separator(width int) string {
	if width < 8 {
		return subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return subtle.Render(left + " ◆ " + right)
}
