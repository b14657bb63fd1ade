package maze

import "strings"

// Parse turns a raw maze string into a validated Grid plus Start/End
// coordinates. Rows are separated by line breaks ('\n', with a tolerated
// trailing '\r'); surrounding blank lines are ignored.
//
// Validation, in order:
//  1. blank or whitespace-only input          → ErrEmptyInput
//  2. any row length differing from the first → MalformedGridError
//  3. any symbol outside {'#',' ','S','E'}    → InvalidCharacterError
//  4. 'S'/'E' marker count other than one     → ErrMissingStart/End,
//     ErrDuplicateStart/End
//
// Parse performs no I/O and keeps no references to the input.
// Complexity: O(rows×cols) time and memory.
func Parse(input string) (*Grid, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(trimmed, "\n")
	width := len([]rune(strings.TrimSuffix(lines[0], "\r")))
	g := &Grid{
		width:  width,
		height: len(lines),
		cells:  make([]Cell, 0, width*len(lines)),
	}

	var starts, ends int
	for r, line := range lines {
		row := []rune(strings.TrimSuffix(line, "\r"))
		if len(row) != width {
			return nil, &MalformedGridError{Row: r, Want: width, Got: len(row)}
		}
		for c, ch := range row {
			cell := Cell(ch)
			switch cell {
			case Wall, Free:
				// plain cells carry no extra bookkeeping
			case Start:
				if starts++; starts > 1 {
					return nil, ErrDuplicateStart
				}
				g.start = Coord{Row: r, Col: c}
			case End:
				if ends++; ends > 1 {
					return nil, ErrDuplicateEnd
				}
				g.end = Coord{Row: r, Col: c}
			default:
				return nil, &InvalidCharacterError{At: Coord{Row: r, Col: c}, Char: ch}
			}
			g.cells = append(g.cells, cell)
		}
	}
	if starts == 0 {
		return nil, ErrMissingStart
	}
	if ends == 0 {
		return nil, ErrMissingEnd
	}

	return g, nil
}
