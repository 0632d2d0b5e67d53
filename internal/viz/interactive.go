package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/faultsim/internal/config"
	"github.com/san-kum/faultsim/internal/geom"
)

type menuItem struct {
	name  string
	desc  string
	types []geom.Type
}

var menuItems = []menuItem{
	{"fault board", "all three faults side by side", geom.FaultTypes()},
	{"strike-slip", "plates slide past each other", []geom.Type{geom.StrikeSlip}},
	{"normal", "hanging wall drops", []geom.Type{geom.Normal}},
	{"reverse", "hanging wall climbs", []geom.Type{geom.Reverse}},
	{"2-plate", "convergent boundary", []geom.Type{geom.TwoPlate}},
	{"3-plate", "triple junction", []geom.Type{geom.ThreePlate}},
	{"4-plate", "plate mosaic", []geom.Type{geom.FourPlate}},
}

const (
	stateMenu = iota
	stateBoard
)

type model struct {
	state, cursor int
	fps           int
	theme         Theme
	board         Board
	err           error
}

func NewInteractiveApp(fps int, theme string) *model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return &model{state: stateMenu, fps: fps, theme: GetTheme(theme)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
	case backMsg:
		m.state = stateMenu
		return m, nil
	}
	if m.state == stateBoard {
		next, cmd := m.board.Update(msg)
		m.board = next.(Board)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		specs, err := specsFor(menuItems[m.cursor].types)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.board = NewBoard(specs, m.fps)
		m.board.theme = m.theme
		m.board.embedded = true
		m.state = stateBoard
		return m, m.board.Init()
	}
	return m, nil
}

// specsFor builds one panel spec per type from its default preset.
func specsFor(types []geom.Type) ([]PanelSpec, error) {
	specs := make([]PanelSpec, 0, len(types))
	for _, t := range types {
		cfg := config.DefaultPreset(t.String())
		if cfg == nil {
			cfg = config.DefaultConfig()
			cfg.Type = t.String()
		}
		spec, err := SpecFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// SpecFromConfig resolves a config into the animation constants and mapper
// variant a panel runs with.
func SpecFromConfig(cfg *config.Config) (PanelSpec, error) {
	if err := cfg.Validate(); err != nil {
		return PanelSpec{}, err
	}
	v, err := cfg.Geometry()
	if err != nil {
		return PanelSpec{}, err
	}
	return PanelSpec{Animation: cfg.Animation(), Variant: v}, nil
}

func (m model) View() string {
	if m.state == stateBoard {
		return m.board.View()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("FAULTSIM", m.theme.Title[0], m.theme.Title[1]) +
		"\n    " + subtle.Render("plate boundary motion") + "\n    " + subtle.Render("─────────────────────────") + "\n\n")

	cursor := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(m.theme.Focus)
	dimName := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimDesc := lipgloss.NewStyle().Foreground(m.theme.Muted)

	for i, it := range menuItems {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursor.Render("▸"), name.Render(fmt.Sprintf("%-12s", it.name)), desc.Render(it.desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimName.Render(fmt.Sprintf("  %-12s", it.name)), dimDesc.Render(it.desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + keyHint.Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

func RunInteractive(fps int, theme string) error {
	_, err := tea.NewProgram(NewInteractiveApp(fps, theme), tea.WithAltScreen()).Run()
	return err
}
