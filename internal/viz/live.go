package viz

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/faultsim/internal/anim"
	"github.com/san-kum/faultsim/internal/geom"
)

const (
	historyCapacity = 240
	nudgeSteps      = 20
)

// TickMsg is one frame of a board's tick loop. Ticks from a board that has
// since been replaced are dropped.
type TickMsg struct {
	Time  time.Time
	Board uint64
}

var boardSeq atomic.Uint64

// backMsg asks an enclosing menu to take over again.
type backMsg struct{}

// PanelSpec is everything a panel needs to own one animation.
type PanelSpec struct {
	Animation anim.Config
	Variant   geom.Variant
}

// Panel owns one controller and renders its frame. The controller schedules
// through a FrameQueue that the board drains on every tea tick.
type Panel struct {
	spec   PanelSpec
	queue  *anim.FrameQueue
	ctrl   *anim.Controller
	canvas *Canvas

	spring          harmonica.Spring
	needle, needleV float64

	history []float64
}

func NewPanel(spec PanelSpec, fps, cols, rows int) *Panel {
	q := anim.NewFrameQueue()
	return &Panel{
		spec:    spec,
		queue:   q,
		ctrl:    anim.New(spec.Animation, q),
		canvas:  NewCanvas(cols, rows),
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		history: make([]float64, 0, historyCapacity),
	}
}

func (p *Panel) Controller() *anim.Controller { return p.ctrl }

// Advance fires the panel's pending frame at ms and steps the slider needle
// toward the controller's normalized displacement.
func (p *Panel) Advance(ms float64) {
	p.queue.Fire(ms)
	st := p.ctrl.State()
	p.needle, p.needleV = p.spring.Update(p.needle, p.needleV, st.Normalized())

	if len(p.history) == historyCapacity {
		copy(p.history, p.history[1:])
		p.history = p.history[:historyCapacity-1]
	}
	p.history = append(p.history, st.Displacement)
}

// Toggle is the play/pause button.
func (p *Panel) Toggle() {
	if p.ctrl.IsPlaying() {
		p.ctrl.Pause()
	} else {
		p.ctrl.Play()
	}
}

// Nudge moves the slider by dir steps of a twentieth of the range.
func (p *Panel) Nudge(dir int) {
	step := p.ctrl.Config().MaxDisplacement / nudgeSteps
	p.ctrl.SetDisplacement(p.ctrl.Displacement() + float64(dir)*step)
}

func (p *Panel) Reset() {
	p.ctrl.Reset()
	p.history = p.history[:0]
}

func (p *Panel) Frame() geom.Frame {
	return geom.Map(p.ctrl.Displacement(), p.spec.Variant)
}

func (p *Panel) Close() { p.ctrl.Close() }

func (p *Panel) View(focused bool, th Theme) string {
	st := p.ctrl.State()
	s := p.spec.Variant.Style
	RenderFrame(p.canvas, p.Frame())

	var b strings.Builder
	title := s.Title
	if title == "" {
		title = p.spec.Variant.Type.String()
	}
	b.WriteString(GradientText(strings.ToUpper(title), th.Title[0], th.Title[1]) + "\n")
	if s.Subtitle != "" {
		b.WriteString(subtle.Render(s.Subtitle) + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(th.Canvas).Render(p.canvas.String()))
	b.WriteString(Slider(p.needle, p.canvas.Width, th) + "\n")

	status := lipgloss.NewStyle().Bold(true).Foreground(th.Paused).Render("PAUSED")
	if st.IsPlaying {
		status = lipgloss.NewStyle().Bold(true).Foreground(th.Playing).Render("PLAYING")
	}
	b.WriteString(metricLabel.Render("disp") + metricValue.Render(fmt.Sprintf("%.1f / %s", st.Displacement, geom.FormatNum(st.MaxDisplacement))) + "\n")
	b.WriteString(metricLabel.Render("state") + status + "\n")

	if len(p.history) > 1 {
		chart := asciigraph.Plot(p.history, asciigraph.Height(3), asciigraph.Width(p.canvas.Width-8),
			asciigraph.LowerBound(0), asciigraph.UpperBound(st.MaxDisplacement))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	border := panelStyle
	if focused {
		border = border.BorderForeground(th.Focus)
	}
	return border.Render(b.String())
}

// Board lays panels side by side and drives all of them from one tick loop.
type Board struct {
	id       uint64
	panels   []*Panel
	focus    int
	fps      int
	start    time.Time
	theme    Theme
	embedded bool
	showHelp bool
}

// NewBoard builds one panel per spec. Canvas size shrinks as panels are
// added so three fit a wide terminal.
func NewBoard(specs []PanelSpec, fps int) Board {
	if fps <= 0 {
		fps = 30
	}
	cols, rows := 60, 18
	if len(specs) > 1 {
		cols, rows = 36, 12
	}
	panels := make([]*Panel, len(specs))
	for i, s := range specs {
		panels[i] = NewPanel(s, fps, cols, rows)
	}
	return Board{id: boardSeq.Add(1), panels: panels, fps: fps, start: time.Now(), theme: ThemeBasalt}
}

func (b Board) Panels() []*Panel { return b.panels }

func (b Board) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(b.fps), func(t time.Time) tea.Msg { return TickMsg{Time: t, Board: b.id} })
}

func (b Board) Init() tea.Cmd { return b.tick() }

// elapsed converts a tick time to the millisecond timestamp panels see.
func (b Board) elapsed(t time.Time) float64 {
	ms := float64(t.Sub(b.start)) / float64(time.Millisecond)
	if ms < 0 {
		return 0
	}
	return ms
}

func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case TickMsg:
		if msg.Board != b.id {
			return b, nil
		}
		ts := b.elapsed(msg.Time)
		for _, p := range b.panels {
			p.Advance(ts)
		}
		return b, b.tick()
	}
	return b, nil
}

func (b Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(b.panels) == 0 {
		return b, tea.Quit
	}
	p := b.panels[b.focus]
	switch msg.String() {
	case "q", "ctrl+c":
		b.Close()
		return b, tea.Quit
	case "esc":
		if b.embedded {
			b.Close()
			return b, func() tea.Msg { return backMsg{} }
		}
	case " ":
		p.Toggle()
	case "r":
		p.Reset()
	case "left", "h":
		p.Nudge(-1)
	case "right", "l":
		p.Nudge(1)
	case "tab":
		b.focus = (b.focus + 1) % len(b.panels)
	case "shift+tab":
		b.focus = (b.focus + len(b.panels) - 1) % len(b.panels)
	case "t":
		b.theme = nextTheme(b.theme.Name)
	case "?":
		b.showHelp = !b.showHelp
	}
	return b, nil
}

// Close releases every controller.
func (b Board) Close() {
	for _, p := range b.panels {
		p.Close()
	}
}

func (b Board) View() string {
	views := make([]string, len(b.panels))
	for i, p := range b.panels {
		views[i] = p.View(i == b.focus, b.theme)
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	hint := "space play/pause  r reset  ←/→ slide  tab focus  t theme  ? help  q quit"
	if b.embedded {
		hint = strings.Replace(hint, "q quit", "esc menu  q quit", 1)
	}
	out := main + "\n" + keyHint.Render(hint)
	if b.showHelp {
		out = helpText(lipgloss.Width(main)) + "\n" + out
	}
	return out
}

func helpText(width int) string {
	lines := []string{
		"Space      play from the current position, or pause",
		"R          reset the focused panel to rest",
		"Left/Right move the slider; stops playback",
		"Tab        focus the next panel",
		"T          cycle color themes",
		"Esc        back to the menu",
		"Q          quit",
	}
	return separator(width) + "\n" + subtle.Render(strings.Join(lines, "\n")) + "\n" + separator(width)
}

// RunLive opens a board for the given specs.
func RunLive(specs []PanelSpec, fps int, theme string) error {
	b := NewBoard(specs, fps)
	b.theme = GetTheme(theme)
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
