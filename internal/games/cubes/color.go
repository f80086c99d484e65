package cubes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-cubes/internal/core"
)

// Color is a cube color. The order is stable: a game with N colors uses the
// first N entries.
type Color uint8

const (
	Red Color = iota
	Green
	Yellow
	Blue
	Purple
	Aqua
	Orange

	ColorCount = int(Orange) + 1
)

var colorNames = [ColorCount]string{"red", "green", "yellow", "blue", "purple", "aqua", "orange"}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) >= ColorCount {
		return fmt.Sprintf("color(%d)", c)
	}
	return colorNames[c]
}

// Char returns the single-letter code used in layouts.
func (c Color) Char() byte {
	if int(c) >= ColorCount {
		return '?'
	}
	return strings.ToUpper(colorNames[c])[0]
}

// Terminal maps the color onto the screen palette.
func (c Color) Terminal() core.Color {
	switch c {
	case Red:
		return core.ColorRed
	case Green:
		return core.ColorGreen
	case Yellow:
		return core.ColorYellow
	case Blue:
		return core.ColorBlue
	case Purple:
		return core.ColorMagenta
	case Aqua:
		return core.ColorCyan
	case Orange:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// ParseColor accepts a color name or its single-letter code, case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("cubes: unknown color %q", s)
}

// Palette returns the first n colors.
func Palette(n int) []Color {
	n = core.Clamp(n, 0, ColorCount)
	p := make([]Color, n)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}
