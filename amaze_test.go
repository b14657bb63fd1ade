package amaze_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amaze"
	"github.com/katalvlaran/amaze/maze"
	"github.com/katalvlaran/amaze/render"
)

const specMaze = "#######\n" +
	"#S #  #\n" +
	"#  #E #\n" +
	"#     #\n" +
	"#######"

// TestSolve_Solved runs the whole pipeline on the canonical 7×5 maze.
func TestSolve_Solved(t *testing.T) {
	report := amaze.Solve(specMaze)

	require.Equal(t, amaze.StatusSolved, report.Status)
	require.NoError(t, report.Err)
	require.Len(t, report.Path, 7, "7 coordinates = 6 edges")
	require.Equal(t, maze.Coord{Row: 1, Col: 1}, report.Path[0])
	require.Equal(t, maze.Coord{Row: 2, Col: 4}, report.Path[len(report.Path)-1])
	require.GreaterOrEqual(t, report.Millis(), 0.0)
	require.Equal(t, 5, strings.Count(report.Artifact, string(render.Mark)),
		"every intermediate cell is marked")
}

// TestSolve_NoPath: a walled-off End is a tagged outcome with the elapsed
// time preserved and the original maze echoed in the artifact.
func TestSolve_NoPath(t *testing.T) {
	report := amaze.Solve("S#E")

	require.Equal(t, amaze.StatusNoPath, report.Status)
	require.NoError(t, report.Err)
	require.Nil(t, report.Path)
	require.GreaterOrEqual(t, report.Millis(), 0.0)
	require.Contains(t, report.Artifact, "No path found")
	require.Contains(t, report.Artifact, "S#E")
}

// TestSolve_MissingEnd: parse failures still return a non-negative elapsed
// measurement and a diagnosable error.
func TestSolve_MissingEnd(t *testing.T) {
	report := amaze.Solve("#S#\n# #")

	require.Equal(t, amaze.StatusInvalid, report.Status)
	require.ErrorIs(t, report.Err, maze.ErrMissingEnd)
	require.GreaterOrEqual(t, report.Millis(), 0.0)
	require.Contains(t, report.Artifact, "Failed to process the maze")
}

// TestSolve_InvalidInputs covers the remaining taxonomy through the
// pipeline surface.
func TestSolve_InvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "   \n ", maze.ErrEmptyInput},
		{"Ragged", "#\n##", maze.ErrMalformedGrid},
		{"BadSymbol", "S?\n E", maze.ErrInvalidCharacter},
		{"NoStart", "# #\n#E#", maze.ErrMissingStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := amaze.Solve(tc.input)
			require.Equal(t, amaze.StatusInvalid, report.Status)
			require.ErrorIs(t, report.Err, tc.err)
			require.GreaterOrEqual(t, report.Millis(), 0.0)
		})
	}
}

// TestSolve_DemoFixture solves the 15×15 demo maze kept under testdata.
func TestSolve_DemoFixture(t *testing.T) {
	raw, err := os.ReadFile("testdata/demo_maze.txt")
	require.NoError(t, err)

	report := amaze.Solve(string(raw))
	require.Equal(t, amaze.StatusSolved, report.Status)
	require.Equal(t, maze.Coord{Row: 1, Col: 1}, report.Path[0])
	require.Equal(t, maze.Coord{Row: 1, Col: 13}, report.Path[len(report.Path)-1])

	// The artifact must stay re-renderable: same shape as the input.
	require.Equal(t, len(strings.Split(strings.TrimSpace(string(raw)), "\n")),
		len(strings.Split(report.Artifact, "\n")))
}

// TestSolve_Repeatable: two invocations agree on path and status, since
// tie-breaking is deterministic and no state crosses calls.
func TestSolve_Repeatable(t *testing.T) {
	first := amaze.Solve(specMaze)
	second := amaze.Solve(specMaze)

	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Artifact, second.Artifact)
}
