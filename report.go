package amaze

import (
	"time"

	"github.com/katalvlaran/amaze/maze"
)

// Status tags the outcome of a Solve call. Callers branch on it instead
// of inspecting errors: parse failures and "no path" are distinct,
// first-class outcomes.
type Status int

const (
	// StatusSolved means a shortest path was found and rendered.
	StatusSolved Status = iota
	// StatusNoPath means the maze parsed but End is unreachable.
	StatusNoPath
	// StatusInvalid means the input failed validation; Report.Err holds why.
	StatusInvalid
)

// String implements fmt.Stringer for log fields and diagnostics.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusNoPath:
		return "no_path"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Report carries everything a collaborator needs after one solve
// invocation. Elapsed is populated on every outcome, including parse
// failures.
type Report struct {
	// Status tags the outcome; see the Status constants.
	Status Status

	// Elapsed is measured from just before parsing begins to just after
	// the search completes. Rendering is excluded from the interval.
	Elapsed time.Duration

	// Path is the shortest route, Start to End inclusive. Nil unless
	// Status is StatusSolved.
	Path []maze.Coord

	// Artifact is the audit text: the solved maze overlay, or a
	// diagnostic that echoes the original input.
	Artifact string

	// Err is non-nil only for StatusInvalid.
	Err error
}

// Millis reports the measured interval in fractional milliseconds.
func (r Report) Millis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}
