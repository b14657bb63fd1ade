// Package render turns solved and unsolved mazes into textual audit
// artifacts.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/amaze/maze"
)

// Mark is the symbol overwritten onto traveled path cells.
const Mark = '·'

// Path renders g with every path cell except Start and End overwritten by
// Mark, serialized one row per line. The grid itself is never mutated:
// the overlay is drawn on a fresh copy (copy-on-render).
// Complexity: O(rows×cols).
func Path(g *maze.Grid, path []maze.Coord) string {
	width, height := g.Dimensions()
	rows := make([][]rune, height)
	for r := 0; r < height; r++ {
		rows[r] = make([]rune, width)
		for c := 0; c < width; c++ {
			rows[r][c] = rune(g.At(maze.Coord{Row: r, Col: c}))
		}
	}
	for _, p := range path {
		if cell := g.At(p); cell == maze.Start || cell == maze.End {
			continue
		}
		rows[p.Row][p.Col] = Mark
	}

	var b strings.Builder
	b.Grow(height * (width + 1))
	for r, row := range rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}

// NoPath produces the diagnostic artifact for a valid maze with no
// traversable route: a statement that no path exists, the elapsed
// processing time in fractional milliseconds, and the original maze
// echoed for audit.
func NoPath(original string, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("No path found in the maze.\n")
	fmt.Fprintf(&b, "(processing time: %.4f ms)\n\n", millis(elapsed))
	b.WriteString(original)

	return b.String()
}

// Invalid produces the audit artifact for a maze that failed to parse:
// the error, the time elapsed until the failure, and the offending input
// echoed back.
func Invalid(err error, original string, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to process the maze: %v\n", err)
	fmt.Fprintf(&b, "(elapsed until failure: %.4f ms)\n\n", millis(elapsed))
	b.WriteString("Provided maze:\n")
	b.WriteString(original)

	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
