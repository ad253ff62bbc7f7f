package treeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/scenic"
	"github.com/katalvlaran/treeline/visibility"
)

// ErrUnknownPart indicates a part name ParsePart does not recognise.
var ErrUnknownPart = errors.New("treeline: unknown part")

// Part selects which question Solve answers.
type Part int

const (
	// PartOne counts trees visible from outside the grid.
	PartOne Part = iota + 1
	// PartTwo finds the highest scenic score.
	PartTwo
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "part1"
	case PartTwo:
		return "part2"
	}

	return "part(" + strconv.Itoa(int(p)) + ")"
}

// ParsePart accepts "1"/"part1"/"visible" and "2"/"part2"/"scenic",
// case-insensitively.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "part1", "visible":
		return PartOne, nil
	case "2", "part2", "scenic":
		return PartTwo, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
}

// Result is the answer for one part.
type Result struct {
	Part  Part
	Value uint64
}

// String renders the value as a bare decimal integer.
func (r Result) String() string {
	return strconv.FormatUint(r.Value, 10)
}

// Solve runs part over g and reduces the derived grid to one number:
// the count of visible trees for PartOne, the maximum scenic score for
// PartTwo. opts is passed to scenic.Scan and may be nil.
func Solve(ctx context.Context, g *heightgrid.Grid, part Part, opts *scenic.Options) (Result, error) {
	switch part {
	case PartOne:
		return Result{Part: part, Value: uint64(visibility.Scan(g).Count())}, nil
	case PartTwo:
		scores, err := scenic.Scan(ctx, g, opts)
		if err != nil {
			return Result{}, fmt.Errorf("treeline: %v: %w", part, err)
		}
		return Result{Part: part, Value: scores.Max().Score}, nil
	}

	return Result{}, fmt.Errorf("%w: %v", ErrUnknownPart, part)
}
