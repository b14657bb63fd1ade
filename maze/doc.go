// Package maze parses textual grid-mazes into a validated, immutable Grid.
//
// What:
//
//   - A maze is a rectangular block of text over a four-symbol alphabet:
//     '#' (wall), ' ' (free), 'S' (start), 'E' (end).
//   - Parse validates rectangularity, the alphabet, and that exactly one
//     start and one end marker exist, then returns a Grid with O(1)
//     coordinate access and row-major index helpers.
//   - The Grid is immutable once built; String() serializes it back to
//     its original textual form.
//
// Why:
//
//   - Solvers need a validated grid-to-graph mapping: every non-wall cell
//     is a vertex, 4-adjacency defines the edges.
//   - Renderers need the original symbols preserved, so the Grid never
//     mutates after construction.
//
// Errors:
//
//   - ErrEmptyInput: blank or whitespace-only maze string.
//   - ErrMalformedGrid (via MalformedGridError): inconsistent row lengths.
//   - ErrInvalidCharacter (via InvalidCharacterError): symbol outside the alphabet.
//   - ErrMissingStart / ErrMissingEnd: marker absent.
//   - ErrDuplicateStart / ErrDuplicateEnd: marker repeated.
//
// Complexity:
//
//   - Parse: O(rows×cols) time and memory.
//   - At / InBounds / Index / CoordAt: O(1).
package maze
