package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	w, h    int
	frames  []core.InputFrame
	state   core.GameState
	drawing string
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.Resize(cfg.ScreenW, cfg.ScreenH) }
func (g *fakeGame) Resize(w, h int)              { g.w, g.h = w, h }
func (g *fakeGame) State() core.GameState        { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	copied := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			copied.Set(a)
		}
	}
	if x, y, ok := in.Pointer(); ok {
		copied.SetPointer(x, y)
	}
	g.frames = append(g.frames, copied)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, g.drawing)
}

func newTestModel(g *fakeGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}
	return NewModel(g, cfg, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 || g.w != 40 || g.h != 10 {
		t.Errorf("Init should reset the game with screen size, got resets=%d size=%dx%d", g.resets, g.w, g.h)
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('x'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionAutocomplete) {
		t.Fatalf("expected autocomplete in first frame, got %+v", g.frames)
	}

	// Input is cleared after each tick
	_, _ = update(t, m, TickMsg{})
	if g.frames[1].Has(core.ActionAutocomplete) {
		t.Error("input frame should be cleared between ticks")
	}
}

func TestModelMouse(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion})
	m, _ = update(t, m, TickMsg{})
	x, y, ok := g.frames[0].Pointer()
	if !ok || x != 5 || y != 3 {
		t.Errorf("motion should set pointer (5,3), got (%d,%d,%v)", x, y, ok)
	}
	if g.frames[0].Has(core.ActionSelect) {
		t.Error("motion should not select")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, TickMsg{})
	if !g.frames[1].Has(core.ActionSelect) {
		t.Error("left click should select")
	}
	if x, y, _ := g.frames[1].Pointer(); x != 7 || y != 4 {
		t.Errorf("click pointer = (%d,%d), want (7,4)", x, y)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &fakeGame{}

	m, cmd := update(t, newTestModel(g), tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.IsGoingBack() {
		t.Error("esc should leave the game for the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}

	m, cmd = update(t, newTestModel(g), runeKey('q'))
	if cmd == nil || m.IsGoingBack() {
		t.Error("q should quit, not go back")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 0 {
		t.Error("resize should not reset the board")
	}
	if g.w != 100 || g.h != 40 {
		t.Errorf("resize not forwarded, got %dx%d", g.w, g.h)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{drawing: "hello"}
	m := newTestModel(g)

	if !strings.Contains(m.View(), "hello") {
		t.Errorf("view should contain the game drawing, got %q", m.View())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'c', core.ColorRed)
	s.SetCell(3, 0, core.Cell{Rune: 'd', Color: core.ColorRed, Reverse: true})
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "c", "d", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q: %q", want, out)
		}
	}
}
