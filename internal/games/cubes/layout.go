package cubes

import (
	"fmt"
	"strings"
)

// ParseLayout reads a field from text. Each non-blank line is a row, top row
// first. Cells are separated by whitespace; a cell is one color letter per
// cube color (e.g. "R" or "RG") or "." for an empty cell.
func ParseLayout(text string) (*Field, error) {
	var rows [][]string
	for line := range strings.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}

	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadLayout)
	}

	cols := make([][][]Color, size)
	for x := range cols {
		cols[x] = make([][]Color, size)
	}

	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, y+1, len(row), size)
		}
		for x, cell := range row {
			if cell == "." {
				continue
			}
			colors := make([]Color, 0, len(cell))
			for _, r := range cell {
				c, err := ParseColor(string(r))
				if err != nil {
					return nil, fmt.Errorf("%w: row %d cell %d: %w", ErrBadLayout, y+1, x+1, err)
				}
				colors = append(colors, c)
			}
			cols[x][y] = colors
		}
	}

	return FromCubes(cols)
}

// Layout renders the field in the format read by ParseLayout.
func (f *Field) Layout() string {
	width := 1
	f.Each(func(_ Coord, c *Cube) {
		width = max(width, len(c.colors))
	})

	var sb strings.Builder
	for y := range f.size {
		for x := range f.size {
			cell := "."
			if c := f.cols[x][y]; c != nil {
				b := make([]byte, len(c.colors))
				for i, color := range c.colors {
					b[i] = color.Char()
				}
				cell = string(b)
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
			if x < f.size-1 {
				sb.WriteString(strings.Repeat(" ", width-len(cell)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
