package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first block mirrors the cube palette, the rest is
// used for chrome (borders, HUD text, overlays).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// Cell is a single screen position: a rune plus how to paint it.
type Cell struct {
	Rune    rune
	Color   Color
	Reverse bool // Swap foreground/background (cursor)
}

// Blank returns an empty cell.
func Blank() Cell {
	return Cell{Rune: ' '}
}
