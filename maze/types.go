// Package maze defines the grid data model, cell alphabet, and sentinel
// errors for textual grid-mazes.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing.
var (
	// ErrEmptyInput indicates a blank or whitespace-only maze string.
	ErrEmptyInput = errors.New("maze: input is empty or whitespace-only")

	// ErrMalformedGrid indicates rows of differing lengths.
	ErrMalformedGrid = errors.New("maze: all rows must have the same length")

	// ErrInvalidCharacter indicates a symbol outside the four-cell alphabet.
	ErrInvalidCharacter = errors.New("maze: invalid character")

	// ErrMissingStart is returned when no 'S' marker is present.
	ErrMissingStart = errors.New("maze: start marker 'S' not found")

	// ErrMissingEnd is returned when no 'E' marker is present.
	ErrMissingEnd = errors.New("maze: end marker 'E' not found")

	// ErrDuplicateStart is returned when 'S' appears more than once.
	ErrDuplicateStart = errors.New("maze: start marker 'S' appears more than once")

	// ErrDuplicateEnd is returned when 'E' appears more than once.
	ErrDuplicateEnd = errors.New("maze: end marker 'E' appears more than once")
)

// Cell is a single grid symbol. Exactly four symbols are recognized;
// Parse rejects anything else with ErrInvalidCharacter.
type Cell rune

const (
	// Wall blocks traversal.
	Wall Cell = '#'
	// Free is an open, traversable cell.
	Free Cell = ' '
	// Start marks the search origin. Traversable.
	Start Cell = 'S'
	// End marks the search target. Traversable.
	End Cell = 'E'
)

// Coord addresses a grid cell by zero-indexed (row, column).
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// MalformedGridError reports a row whose length differs from the first
// row's. It unwraps to ErrMalformedGrid.
type MalformedGridError struct {
	Row  int // zero-indexed offending row
	Want int // length of the first row
	Got  int // length of the offending row
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("maze: row %d has inconsistent length: want %d, got %d", e.Row, e.Want, e.Got)
}

func (e *MalformedGridError) Unwrap() error { return ErrMalformedGrid }

// InvalidCharacterError reports an unrecognized symbol and where it was
// found. It unwraps to ErrInvalidCharacter.
type InvalidCharacterError struct {
	At   Coord
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("maze: invalid character %q at %s: only 'S', 'E', '#' and ' ' are allowed", e.Char, e.At)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Grid is a validated rectangular maze. It is immutable once built:
// renderers and solvers work on their own copies or transient state,
// never on the parsed cells.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, len = width*height
	start  Coord
	end    Coord
}
