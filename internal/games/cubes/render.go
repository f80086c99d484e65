package cubes

import (
	"fmt"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

const (
	boardX = 1 // Left edge of the first cell (inside the border)
	boardY = 2 // Top edge of the first cell (title row, then border)

	hudGap   = 2
	hudWidth = 24

	cubeRune   = '█'
	chosenRune = '▓'
	cursorRune = '·'
)

// cellWidth returns how many screen columns one cube takes.
func (g *Game) cellWidth() int {
	return max(2, g.cellW)
}

// widestCube returns the most colors carried by a single cube, so a
// three-colored cube can give every color its own column.
func widestCube(f *Field) int {
	w := 1
	f.Each(func(_ Coord, c *Cube) {
		w = max(w, len(c.colors))
	})
	return w
}

// hudLines returns the height of the side panel.
func (g *Game) hudLines() int {
	return 3 + 2 + g.settings.ColorsCount + 1 + 5
}

// CellAt maps a screen position to the board cell drawn there.
func (g *Game) CellAt(screenX, screenY int) (Coord, bool) {
	board := core.NewRect(boardX, boardY, g.size*g.cellWidth(), g.size)
	if !board.Contains(screenX, screenY) {
		return Coord{}, false
	}
	return C((screenX-boardX)/g.cellWidth(), screenY-boardY), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cellW := g.cellWidth()
	boardW := g.size*cellW + 2
	boardH := g.size + 2

	title := "CUBES"
	dst.DrawTextColored(boardX-1+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)
	dst.DrawBox(core.NewRect(boardX-1, boardY-1, boardW, boardH), core.ColorGray)

	g.renderBoard(dst, cellW)
	g.renderHUD(dst, boardX-1+boardW+hudGap)

	if g.finished {
		g.renderGameOver(dst, boardX-1+boardW/2, boardY-1+boardH/2)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the cubes. Multicolor cubes split their cell width
// between their colors.
func (g *Game) renderBoard(dst *core.Screen, cellW int) {
	for x := range g.size {
		for y := range g.size {
			at := C(x, y)
			sx := boardX + x*cellW
			sy := boardY + y
			cube := g.field.Get(at)
			isCursor := at == g.cursor && !g.finished

			if cube == nil {
				if isCursor {
					for i := range cellW {
						dst.SetCell(sx+i, sy, core.Cell{Rune: cursorRune, Color: core.ColorGray, Reverse: true})
					}
				}
				continue
			}

			r := cubeRune
			if g.chosen.Has(at) {
				r = chosenRune
			}
			for i := range cellW {
				color := cube.colors[i*len(cube.colors)/cellW]
				dst.SetCell(sx+i, sy, core.Cell{Rune: r, Color: color.Terminal(), Reverse: isCursor})
			}
		}
	}
}

// renderHUD draws the side panel: player, score, color counts and controls.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	y := boardY

	dst.DrawText(x, y, fmt.Sprintf("Player: %s", g.player))
	dst.DrawText(x, y+1, fmt.Sprintf("Points: %d", g.score))
	dst.DrawText(x, y+2, fmt.Sprintf("Block:  %d", g.BlockPoints()))
	y += 4

	dst.DrawTextColored(x, y, "Cubes left", core.ColorGray)
	y++
	for _, c := range Palette(g.settings.ColorsCount) {
		dst.DrawTextColored(x, y, string([]rune{cubeRune, cubeRune}), c.Terminal())
		dst.DrawText(x+3, y, fmt.Sprintf("%-7s %3d", c, g.field.Count(c)))
		y++
	}
	y++

	for _, line := range []string{
		"Space  remove",
		"X      autoplay",
		"R      restart",
		"Esc    menu",
		"Q      quit",
	} {
		dst.DrawTextColored(x, y, line, core.ColorGray)
		y++
	}
}

// renderGameOver draws the final overlay.
func (g *Game) renderGameOver(dst *core.Screen, centerX, centerY int) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score)}
	if g.newRecord {
		lines = append(lines, "New record!")
	}
	lines = append(lines, "R: restart  Esc: menu")
	g.drawOverlay(dst, centerX, centerY, lines...)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
