package cubes

import "slices"

// Coord addresses a grid cell. X is the column, Y the row; Y grows downwards,
// which is also the direction cubes fall.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// CubeID identifies a cube for the lifetime of its field.
type CubeID uint32

// Cube is a single tile carrying one or more distinct colors.
// Cubes do not know where they are; ask the field with Locate.
type Cube struct {
	id     CubeID
	colors []Color
}

func newCube(id CubeID, colors []Color) *Cube {
	uniq := make([]Color, 0, len(colors))
	for _, c := range colors {
		if !slices.Contains(uniq, c) {
			uniq = append(uniq, c)
		}
	}
	return &Cube{id: id, colors: uniq}
}

// ID returns the cube identity.
func (c *Cube) ID() CubeID {
	return c.id
}

// Colors returns a copy of the cube colors, primary first.
func (c *Cube) Colors() []Color {
	return slices.Clone(c.colors)
}

// Primary returns the first color.
func (c *Cube) Primary() Color {
	return c.colors[0]
}

// Has reports whether the cube carries color.
func (c *Cube) Has(color Color) bool {
	return slices.Contains(c.colors, color)
}

// IsMulticube reports whether the cube has more than one color.
func (c *Cube) IsMulticube() bool {
	return len(c.colors) > 1
}
