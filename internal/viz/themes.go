package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the terminal host.
type Theme struct {
	Name    string
	Title   [2]string // gradient endpoints
	Canvas  lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Playing lipgloss.Color
	Paused  lipgloss.Color
	Focus   lipgloss.Color
}

var (
	ThemeBasalt = Theme{
		Name:    "basalt",
		Title:   [2]string{"#00ffff", "#ff00ff"},
		Canvas:  lipgloss.Color("#d0d0e0"),
		Accent:  lipgloss.Color("#00ccff"),
		Muted:   lipgloss.Color("#444455"),
		Playing: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffaa00"),
		Focus:   lipgloss.Color("#ff00ff"),
	}

	ThemeSandstone = Theme{
		Name:    "sandstone",
		Title:   [2]string{"#feca57", "#ff6b6b"},
		Canvas:  lipgloss.Color("#f5deb3"),
		Accent:  lipgloss.Color("#ff9f43"),
		Muted:   lipgloss.Color("#5c4a3a"),
		Playing: lipgloss.Color("#5fd068"),
		Paused:  lipgloss.Color("#ffc048"),
		Focus:   lipgloss.Color("#ff6b6b"),
	}

	ThemeSlate = Theme{
		Name:    "slate",
		Title:   [2]string{"#ffffff", "#888888"},
		Canvas:  lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#555555"),
		Playing: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffaa00"),
		Focus:   lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{ThemeBasalt, ThemeSandstone, ThemeSlate}
)

// GetTheme returns a theme by name, falling back to basalt.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeBasalt
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the theme after name in Themes, wrapping around.
func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
