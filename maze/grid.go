package maze

import "strings"

// Dimensions returns the grid width (columns) and height (rows).
// Complexity: O(1).
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Start returns the coordinate of the 'S' marker.
func (g *Grid) Start() Coord { return g.start }

// End returns the coordinate of the 'E' marker.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the cell symbol at c. The caller must ensure c is in bounds.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.Index(c)]
}

// Traversable reports whether c can be walked through. Every cell except
// Wall is traversable; Start and End count as free cells during search.
func (g *Grid) Traversable(c Coord) bool {
	return g.cells[g.Index(c)] != Wall
}

// Index maps c to its row-major position: Row*width + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// CoordAt converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// String serializes the grid back to its textual form, one row per line,
// without a trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			b.WriteRune(rune(g.cells[r*g.width+c]))
		}
	}

	return b.String()
}
