package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/faultsim/internal/anim"
	"github.com/san-kum/faultsim/internal/geom"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.Dots(); w != 8 || h != 8 {
		t.Fatalf("dots = %dx%d, want 8x8", w, h)
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2800|0x1|0x80 {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800|0x80 {
		t.Errorf("unset left %U", c.Grid[0][0])
	}

	// Out of range is ignored.
	c.Set(-1, 0)
	c.Set(100, 100)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear left dots behind")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}

	c.Clear()
	c.DrawDashed(0, 1, 7, 1, 2)
	want := []bool{true, true, false, false, true, true, false, false}
	for x, on := range want {
		if c.IsSet(x, 1) != on {
			t.Errorf("dash dot %d = %v, want %v", x, !on, on)
		}
	}
}

func TestViewport(t *testing.T) {
	c := NewCanvas(40, 10) // 80x40 dots
	vp := NewViewport(c, 400, 300)
	if vp.Scale != 40.0/300 {
		t.Errorf("scale = %v", vp.Scale)
	}
	x, y := vp.Map(geom.Pt(400, 300))
	if y != 40 || x != 67 {
		t.Errorf("corner mapped to (%d,%d)", x, y)
	}
	x, _ = vp.Map(geom.Pt(0, 0))
	if x != 13 {
		t.Errorf("box should be centred, left edge at %d", x)
	}
}

func TestRenderFrame(t *testing.T) {
	for _, typ := range geom.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			c := NewCanvas(30, 10)
			v := geom.DefaultVariant(typ, 40)
			RenderFrame(c, geom.Map(20, v))
			if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28ff }) {
				t.Error("nothing drawn")
			}
		})
	}
}

func testSpec() PanelSpec {
	return PanelSpec{
		Animation: anim.Config{MaxDisplacement: 40, DurationMs: 3000},
		Variant:   geom.DefaultVariant(geom.StrikeSlip, 40),
	}
}

func TestPanelAdvance(t *testing.T) {
	p := NewPanel(testSpec(), 30, 20, 6)
	p.Toggle()
	p.Advance(1000)
	p.Advance(2500)
	if got := p.Controller().Displacement(); got != 35 {
		t.Errorf("displacement = %v, want 35", got)
	}
	if p.needle <= 0 {
		t.Error("needle should move toward the target")
	}
	if len(p.history) != 2 {
		t.Errorf("history len = %d", len(p.history))
	}

	p.Toggle()
	if p.Controller().IsPlaying() {
		t.Error("second toggle should pause")
	}

	p.Nudge(1)
	if got := p.Controller().Displacement(); got != 37 {
		t.Errorf("nudge: %v, want 37", got)
	}
	for i := 0; i < 5; i++ {
		p.Nudge(1)
	}
	if got := p.Controller().Displacement(); got != 40 {
		t.Errorf("nudge should clamp at 40, got %v", got)
	}

	p.Reset()
	if p.Controller().Displacement() != 0 || len(p.history) != 0 {
		t.Error("reset should clear displacement and history")
	}
}

func TestPanelHistoryCapacity(t *testing.T) {
	p := NewPanel(testSpec(), 30, 20, 6)
	for i := 0; i < historyCapacity+10; i++ {
		p.Advance(float64(i))
	}
	if len(p.history) != historyCapacity {
		t.Errorf("history len = %d, want %d", len(p.history), historyCapacity)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(b Board, msg tea.Msg) Board {
	next, _ := b.Update(msg)
	return next.(Board)
}

func TestBoardTicksEveryPanel(t *testing.T) {
	specs := []PanelSpec{testSpec(), testSpec()}
	b := NewBoard(specs, 30)

	b = send(b, key(" "))
	b = send(b, key("tab"))
	b = send(b, key(" "))
	if b.focus != 1 {
		t.Fatalf("focus = %d", b.focus)
	}

	b = send(b, TickMsg{Time: b.start, Board: b.id})
	b = send(b, TickMsg{Time: b.start.Add(1500 * time.Millisecond), Board: b.id})
	for i, p := range b.Panels() {
		if got := p.Controller().Displacement(); got != 35 {
			t.Errorf("panel %d displacement = %v", i, got)
		}
	}

	b = send(b, key("r"))
	if b.Panels()[1].Controller().Displacement() != 0 {
		t.Error("reset should act on the focused panel")
	}
	if b.Panels()[0].Controller().Displacement() != 35 {
		t.Error("reset leaked to another panel")
	}

	b = send(b, key("right"))
	if got := b.Panels()[1].Controller().Displacement(); got != 2 {
		t.Errorf("slider nudge = %v, want 2", got)
	}

	if view := b.View(); !strings.Contains(view, "disp") {
		t.Error("view missing panel content")
	}
}

func TestBoardDropsForeignTicks(t *testing.T) {
	old := NewBoard([]PanelSpec{testSpec()}, 30)
	b := NewBoard([]PanelSpec{testSpec()}, 30)
	b = send(b, key(" "))
	b = send(b, TickMsg{Time: b.start, Board: b.id})

	_, cmd := b.Update(TickMsg{Time: b.start.Add(1500 * time.Millisecond), Board: old.id})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if got := b.Panels()[0].Controller().Displacement(); got != 0 {
		t.Errorf("stale tick advanced the panel to %v", got)
	}
}

func TestBoardThemeCycle(t *testing.T) {
	b := NewBoard([]PanelSpec{testSpec()}, 30)
	b = send(b, key("t"))
	if b.theme.Name != ThemeSandstone.Name {
		t.Errorf("theme = %s", b.theme.Name)
	}
	if GetTheme("nope").Name != ThemeBasalt.Name {
		t.Error("unknown theme should fall back to basalt")
	}
}

func TestSpecsFor(t *testing.T) {
	specs, err := specsFor(geom.FaultTypes())
	if err != nil {
		t.Fatalf("specsFor: %v", err)
	}
	if len(specs) != 3 {
		t.Fatalf("got %d specs", len(specs))
	}
	if specs[1].Variant.Type != geom.Normal || specs[1].Animation.MaxDisplacement != 50 {
		t.Errorf("normal spec = %+v", specs[1].Animation)
	}
}
