package cubes

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-cubes/internal/config"
)

// ErrBadLayout is returned when a layout is not a square grid of valid cubes.
var ErrBadLayout = errors.New("cubes: bad layout")

// Group is a set of connected cells sharing the primary color of the cell
// they were found from.
type Group = mapset.Set[Coord]

// Rand is the randomness a field is generated from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Field is a square grid of optional cubes, indexed [x][y].
type Field struct {
	size   int
	cols   [][]*Cube
	where  map[CubeID]Coord
	counts [ColorCount]int

	rightBorder int // columns at or past this index are compacted away
	empty       int // first empty column found by HasEmptyColumns

	nextID CubeID
}

// NewEmptyField returns a size x size field with no cubes.
func NewEmptyField(size int) *Field {
	f := &Field{
		size:        size,
		cols:        make([][]*Cube, size),
		where:       make(map[CubeID]Coord, size*size),
		rightBorder: size,
		empty:       -1,
	}
	for x := range f.cols {
		f.cols[x] = make([]*Cube, size)
	}
	return f
}

// NewField generates a random field. Each cell becomes a multicolor cube
// with probability 0.2 while the multicube budget lasts, otherwise a single
// color cube. Colors on one cube are distinct and drawn from the first
// ColorsCount palette entries.
func NewField(size int, s config.Settings, rng Rand) *Field {
	f := NewEmptyField(size)
	palette := Palette(s.ColorsCount)
	budget := s.MulticubeCount

	for x := range size {
		for y := range size {
			multiplier := 1
			if rng.Float64() > 0.8 && budget > 0 {
				multiplier = s.MultipleColors
				budget--
			}

			unused := slices.Clone(palette)
			colors := make([]Color, 0, multiplier)
			for range min(multiplier, len(unused)) {
				i := rng.IntN(len(unused))
				colors = append(colors, unused[i])
				unused = slices.Delete(unused, i, i+1)
			}
			f.place(C(x, y), colors)
		}
	}
	return f
}

// FromColors builds a field of single color cubes from columns of colors.
func FromColors(cols [][]Color) (*Field, error) {
	layout := make([][][]Color, len(cols))
	for x, col := range cols {
		layout[x] = make([][]Color, len(col))
		for y, c := range col {
			layout[x][y] = []Color{c}
		}
	}
	return FromCubes(layout)
}

// FromCubes builds a field from columns of cubes, each cube given as its
// colors. An empty color list leaves the cell empty.
func FromCubes(cols [][][]Color) (*Field, error) {
	size := len(cols)
	if size == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrBadLayout)
	}

	f := NewEmptyField(size)
	for x, col := range cols {
		if len(col) != size {
			return nil, fmt.Errorf("%w: column %d has %d cells, want %d", ErrBadLayout, x, len(col), size)
		}
		for y, colors := range col {
			for _, c := range colors {
				if int(c) >= ColorCount {
					return nil, fmt.Errorf("%w: unknown color %d at (%d,%d)", ErrBadLayout, c, x, y)
				}
			}
			if len(colors) > 0 {
				f.place(C(x, y), colors)
			}
		}
	}
	return f, nil
}

// place creates a cube at an empty cell and counts its colors.
func (f *Field) place(at Coord, colors []Color) *Cube {
	c := newCube(f.nextID, colors)
	f.nextID++
	f.Set(at, c)
	f.count(c, 1)
	return c
}

func (f *Field) count(c *Cube, delta int) {
	for _, color := range c.colors {
		f.counts[color] += delta
	}
}

// Size returns the grid side length.
func (f *Field) Size() int {
	return f.size
}

// RightBorder returns the number of columns still in play.
func (f *Field) RightBorder() int {
	return f.rightBorder
}

// EmptyColumn returns the column recorded by the last successful
// HasEmptyColumns call, or -1.
func (f *Field) EmptyColumn() int {
	return f.empty
}

// InBounds reports whether at lies on the grid.
func (f *Field) InBounds(at Coord) bool {
	return at.X >= 0 && at.X < f.size && at.Y >= 0 && at.Y < f.size
}

// Get returns the cube at a cell, or nil if it is empty or off the grid.
func (f *Field) Get(at Coord) *Cube {
	if !f.InBounds(at) {
		return nil
	}
	return f.cols[at.X][at.Y]
}

// Set puts c at a cell. A nil c empties the cell without touching any
// cube's recorded position. Color counts are not changed.
func (f *Field) Set(at Coord, c *Cube) {
	f.cols[at.X][at.Y] = c
	if c != nil {
		f.where[c.id] = at
	}
}

// Delete empties a cell and returns the cube that was there.
// Color counts are left to the caller.
func (f *Field) Delete(at Coord) *Cube {
	c := f.Get(at)
	if c == nil {
		return nil
	}
	f.cols[at.X][at.Y] = nil
	delete(f.where, c.id)
	return c
}

// Locate returns where c currently sits.
func (f *Field) Locate(c *Cube) (Coord, bool) {
	if c == nil {
		return Coord{}, false
	}
	at, ok := f.where[c.id]
	if !ok || f.Get(at) != c {
		return Coord{}, false
	}
	return at, true
}

// Count returns how many times color occurs across all cubes on the field.
func (f *Field) Count(color Color) int {
	if int(color) >= ColorCount {
		return 0
	}
	return f.counts[color]
}

// Neighbours returns the occupied cells orthogonally adjacent to at.
func (f *Field) Neighbours(at Coord) []Coord {
	var out []Coord
	for _, d := range [...]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
		n := C(at.X+d.X, at.Y+d.Y)
		if f.Get(n) != nil {
			out = append(out, n)
		}
	}
	return out
}

// Same returns the group reachable from at. A neighbour joins when it and
// the current cube both carry the primary color of the cube at at; colors
// the two share otherwise do not count. The result always contains at
// itself unless the cell is empty, in which case it is empty.
func (f *Field) Same(at Coord) Group {
	group := mapset.New[Coord]()
	origin := f.Get(at)
	if origin == nil {
		return group
	}
	primary := origin.Primary()

	group.Put(at)
	stack := []Coord{at}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.Get(cur).Has(primary) {
			continue
		}
		for _, n := range f.Neighbours(cur) {
			if group.Has(n) || !f.Get(n).Has(primary) {
				continue
			}
			group.Put(n)
			stack = append(stack, n)
		}
	}
	return group
}

// HasEmptyColumns reports whether any column left of the right border is
// entirely empty, recording the first one for MakeShift.
func (f *Field) HasEmptyColumns() bool {
	for x := 0; x < f.rightBorder; x++ {
		if !slices.ContainsFunc(f.cols[x], func(c *Cube) bool { return c != nil }) {
			f.empty = x
			return true
		}
	}
	return false
}

// MakeShift moves the recorded empty column to the right border by swapping
// it rightwards one column at a time, then narrows the play area by one.
func (f *Field) MakeShift() {
	if f.empty < 0 || f.rightBorder == 0 {
		return
	}
	for x := f.empty; x < f.rightBorder-1; x++ {
		for y := range f.size {
			left, right := f.cols[x][y], f.cols[x+1][y]
			f.Set(C(x, y), right)
			f.Set(C(x+1, y), left)
		}
	}
	f.rightBorder--
	f.empty = -1
}

// ClearColumn removes every cube in column x and uncounts their colors.
func (f *Field) ClearColumn(x int) {
	if x < 0 || x >= f.size {
		return
	}
	for y := range f.size {
		if c := f.Delete(C(x, y)); c != nil {
			f.count(c, -1)
		}
	}
}

// Each calls fn for every occupied cell, column by column.
func (f *Field) Each(fn func(at Coord, c *Cube)) {
	for x, col := range f.cols {
		for y, c := range col {
			if c != nil {
				fn(C(x, y), c)
			}
		}
	}
}

// Cubes returns the number of occupied cells.
func (f *Field) Cubes() int {
	n := 0
	f.Each(func(Coord, *Cube) { n++ })
	return n
}
