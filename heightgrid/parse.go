package heightgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a Grid from line input: one row per line, one '0'..'9'
// character per tree, no separators. A trailing '\r' is dropped so CRLF
// files load unchanged.
//
// Behavior:
//  1. The first line fixes the column count; an empty first line or no
//     lines at all yields ErrEmptyGrid.
//  2. Every later line must have the same length (ErrNonRectangular),
//     including blank lines in the middle of the input.
//  3. Every byte must be a decimal digit (ErrBadDigit).
//
// Validation errors are returned as *ParseError. Read failures from r are
// wrapped and returned as-is. Nothing is returned alongside an error.
// Complexity: O(R×C) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var (
		rows  [][]int8
		ncols int
	)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if line == 1 {
			if len(text) == 0 {
				return nil, &ParseError{Line: line, Err: ErrEmptyGrid}
			}
			ncols = len(text)
		}
		if len(text) != ncols {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: got %d columns, want %d", ErrNonRectangular, len(text), ncols)}
		}
		row := make([]int8, ncols)
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, &ParseError{Line: line, Col: i + 1, Err: fmt.Errorf("%w %q", ErrBadDigit, ch)}
			}
			row[i] = int8(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightgrid: read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}

	return fromRows(rows), nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightgrid: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
