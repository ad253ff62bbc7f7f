package heightgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightgrid: all rows must have the same length")
	// ErrHeightRange indicates a height outside [MinHeight, MaxHeight].
	ErrHeightRange = errors.New("heightgrid: height must be a single decimal digit")
	// ErrBadDigit indicates a non-digit character in line input.
	ErrBadDigit = errors.New("heightgrid: non-digit character")
)

// ParseError reports where line input failed to load.
// Line and Col are 1-based; Col is 0 when the whole line is at fault.
type ParseError struct {
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
