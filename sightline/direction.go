// Package sightline models the four cardinal directions and the straight
// runs of cells ("rays") that scanners walk across a grid.
package sightline

import "strings"

// Direction is one of the four cardinal directions on the grid.
// Row indices grow downward and column indices grow to the right.
type Direction uint8

const (
	// Up moves toward row 0.
	Up Direction = iota
	// Left moves toward column 0.
	Left
	// Down moves toward the last row.
	Down
	// Right moves toward the last column.
	Right
)

// Directions lists the four directions in reporting order.
var Directions = [4]Direction{Up, Left, Down, Right}

var deltas = [4][2]int{
	Up:    {-1, 0},
	Left:  {0, -1},
	Down:  {1, 0},
	Right: {0, 1},
}

// Delta returns the (row, col) step of one move in d.
func (d Direction) Delta() (dr, dc int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}

	return "invalid"
}

// Set is a bitmask of directions.
type Set uint8

// All holds every direction.
const All Set = 1<<Up | 1<<Left | 1<<Down | 1<<Right

// Add returns s with d included.
func (s Set) Add(d Direction) Set { return s | 1<<d }

// Has reports whether d is in s.
func (s Set) Has(d Direction) bool { return s&(1<<d) != 0 }

// Empty reports whether s holds no direction.
func (s Set) Empty() bool { return s == 0 }

// Len returns the number of directions in s.
func (s Set) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// String lists the members in reporting order, e.g. "up|right".
func (s Set) String() string {
	if s.Empty() {
		return "none"
	}
	parts := make([]string, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}

	return strings.Join(parts, "|")
}
