// Package amaze parses textual grid-mazes, finds the shortest route
// between their start and end markers with breadth-first search, and
// renders an auditable picture of the solution.
//
// 🚀 What is amaze?
//
//	A small, deterministic maze-solving library:
//		• Parser: four-symbol alphabet ('#', ' ', 'S', 'E'), strict
//		  rectangularity and marker validation
//		• Solver: unweighted BFS with fixed up/down/left/right expansion,
//		  shortest path by edge count, reproducible tie-breaking
//		• Renderer: copy-on-render path overlay ('·') plus diagnostic
//		  artifacts for unsolvable or malformed mazes
//		• Timing: fractional-millisecond measurement from parse start to
//		  search end, reported on every outcome
//
// ✨ Why choose amaze?
//
//   - Tagged outcomes – StatusSolved / StatusNoPath / StatusInvalid, so
//     callers branch without string-matching errors
//   - Immutable grids – a parsed maze is never mutated; overlays are copies
//   - Concurrency-safe – per-call search state, solve independent mazes in
//     parallel with no locking
//
// Everything is organized under three subpackages plus this root:
//
//	maze/   — grid data model, parser, sentinel errors
//	solve/  — BFS shortest path + predecessor reconstruction
//	render/ — path overlays and audit artifacts
//
// Quick ASCII example:
//
//	#######        #######
//	#S #  #        #S #  #
//	#  #E #   ⇒    #· #E #
//	#     #        #···· #
//	#######        #######
//
// The cmd/amaze binary wires the pipeline to files: it reads one maze,
// writes the audit artifact, and logs status plus elapsed milliseconds.
package amaze
