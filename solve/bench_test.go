package solve_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/amaze/maze"
	"github.com/katalvlaran/amaze/solve"
)

// openMaze builds a wall-bordered size×size maze with no interior walls,
// S in the top-left inner corner and E in the bottom-right inner corner.
func openMaze(size int) string {
	var b strings.Builder
	border := strings.Repeat("#", size)
	b.WriteString(border)
	for r := 1; r < size-1; r++ {
		b.WriteByte('\n')
		row := []byte("#" + strings.Repeat(" ", size-2) + "#")
		if r == 1 {
			row[1] = 'S'
		}
		if r == size-2 {
			row[size-2] = 'E'
		}
		b.Write(row)
	}
	b.WriteByte('\n')
	b.WriteString(border)

	return b.String()
}

// BenchmarkShortestPath_Open100 measures BFS over an open 100×100 grid,
// the worst case for frontier size.
func BenchmarkShortestPath_Open100(b *testing.B) {
	g, err := maze.Parse(openMaze(100))
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(100 * 100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solve.ShortestPath(g)
	}
}

// BenchmarkParse_Open100 measures parsing alone on the same grid.
func BenchmarkParse_Open100(b *testing.B) {
	input := openMaze(100)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = maze.Parse(input)
	}
}
