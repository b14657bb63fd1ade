// Package solve provides breadth-first shortest-path search over a
// maze.Grid, from its Start marker to its End marker.
//
// What:
//
//   - Explores cells in non-decreasing distance (edge count) from Start,
//     over 4-directional adjacency, skipping walls.
//   - Returns a Result with the shortest Path (Start → End inclusive),
//     its Dist in edges, and the number of Expanded cells.
//   - "No path" is a distinct, normal outcome (Found == false), never an
//     error; callers must branch on Found.
//   - Supports OnEnqueue/OnDequeue observability hooks.
//
// Determinism:
//
//	Neighbors expand in a fixed up, down, left, right order, so ties
//	between equally short paths resolve identically on every run.
//
// Concurrency:
//
//	Each call allocates its own frontier, visited set, and predecessor
//	slice; concurrent calls over the same immutable Grid are safe with
//	no locking.
//
// Complexity (W = width, H = height):
//
//   - Time:   O(W×H) — visited-on-enqueue guarantees each cell enters
//     the frontier at most once.
//   - Memory: O(W×H) for the frontier, visited set, and predecessors.
package solve
