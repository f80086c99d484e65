package cubes

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cubes"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cubes"
}

// Reset starts over on a new field. A non-zero cfg.Seed reseeds generation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = g.rng.Int64()
	}
	g.rng = seededRand(g.seed)
	g.field = NewField(g.size, g.settings, g.rng)
	g.cellW = widestCube(g.field)
	g.score = 0
	g.tick = 0
	g.cursor = Coord{}
	g.autocompleting = false
	g.resultSaved = false
	g.newRecord = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.refresh()
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.size*g.cellWidth() + 2 + hudGap + hudWidth
	minH := max(g.size+3, boardY+g.hudLines())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	moved := g.moveCursor(in)

	if g.finished {
		if moved {
			g.refresh()
		}
		return core.StepResult{State: g.State(), Changed: moved}
	}

	changed := false
	switch {
	case in.Has(core.ActionAutocomplete) || g.autocompleting:
		// One group per tick so the board visibly plays itself out.
		g.autocompleting = g.Autocomplete()
		changed = g.autocompleting
	case in.Has(core.ActionSelect) && g.pointerOnBoard(in):
		changed = g.TryDeleteBlock(g.cursor)
	}

	if changed || moved {
		g.refresh()
	}
	if g.finished && !g.resultSaved {
		g.finish()
	}

	return core.StepResult{State: g.State(), Changed: changed || moved}
}

// moveCursor applies pointer and arrow input. Reports whether the cursor moved.
func (g *Game) moveCursor(in core.InputFrame) bool {
	prev := g.cursor

	if px, py, ok := in.Pointer(); ok {
		if at, ok := g.CellAt(px, py); ok {
			g.cursor = at
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.size-1)

	return g.cursor != prev
}

// pointerOnBoard is false only for a pointer outside the board, so clicks
// beside the board do not remove the group under the keyboard cursor.
func (g *Game) pointerOnBoard(in core.InputFrame) bool {
	px, py, ok := in.Pointer()
	if !ok {
		return true
	}
	_, on := g.CellAt(px, py)
	return on
}

// refresh recomputes the derived flags after the board or cursor changed.
func (g *Game) refresh() {
	g.finished = g.IsFinished()
	g.chosen = mapset.New[Coord]()
	if g.finished {
		return
	}
	if group := g.field.Same(g.cursor); group.Size() > 1 {
		g.chosen = group
	}
}

// finish records the result once per game.
func (g *Game) finish() {
	g.resultSaved = true
	g.autocompleting = false
	if g.records != nil {
		g.newRecord = g.records.Qualifies(g.score)
	}
	g.InsertResult()
	g.SaveRecords()
	g.logger.Info("game finished", "player", g.player, "score", g.score, "seed", g.seed, "record", g.newRecord)

	if g.onFinish != nil {
		g.onFinish(g)
	}
}

// restart replaces the session with a replica, keeping the screen.
func (g *Game) restart() {
	w, h := g.screenW, g.screenH
	*g = *g.Replicate()
	g.Resize(w, h)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished,
		Paused:   g.tooSmall,
	}
}

// Cursor returns the selected cell.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// Chosen returns the group under the cursor when it can be removed, otherwise
// an empty group.
func (g *Game) Chosen() Group {
	return g.chosen
}

// BlockPoints returns what removing the chosen group would score.
func (g *Game) BlockPoints() int {
	return Points(g.chosen.Size())
}

// IsNewRecord reports whether the finished game made it into the table.
func (g *Game) IsNewRecord() bool {
	return g.newRecord
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/mouse: Move | Space/click: Remove | X: Autoplay | R: Restart | Esc: Menu | Q: Quit"
}
