package amaze

import (
	"time"

	"github.com/katalvlaran/amaze/maze"
	"github.com/katalvlaran/amaze/render"
	"github.com/katalvlaran/amaze/solve"
)

// Solve runs the full pipeline on a raw maze string: parse, BFS shortest
// path, render. The clock starts before parsing and stops immediately
// after the search returns, so Report.Elapsed covers exactly the
// processing interval regardless of outcome.
//
// Solve never returns an error: failures are tagged in Report.Status with
// the cause in Report.Err, and the elapsed measurement is preserved.
func Solve(input string) Report {
	started := time.Now()

	g, err := maze.Parse(input)
	if err != nil {
		elapsed := time.Since(started)

		return Report{
			Status:   StatusInvalid,
			Elapsed:  elapsed,
			Err:      err,
			Artifact: render.Invalid(err, input, elapsed),
		}
	}

	res, err := solve.ShortestPath(g)
	elapsed := time.Since(started)
	if err != nil {
		// Unreachable with a freshly parsed grid; kept for contract
		// completeness should ShortestPath grow new failure modes.
		return Report{
			Status:   StatusInvalid,
			Elapsed:  elapsed,
			Err:      err,
			Artifact: render.Invalid(err, input, elapsed),
		}
	}
	if !res.Found {
		return Report{
			Status:   StatusNoPath,
			Elapsed:  elapsed,
			Artifact: render.NoPath(input, elapsed),
		}
	}

	return Report{
		Status:   StatusSolved,
		Elapsed:  elapsed,
		Path:     res.Path,
		Artifact: render.Path(g, res.Path),
	}
}
