package scenic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treeline/sightline"
)

// ErrBadWorkers indicates a negative Options.Workers.
var ErrBadWorkers = errors.New("scenic: workers must be >= 0")

// Options configures Scan.
//
// Fields:
//   - Workers — number of rows scored concurrently. 0 and 1 both mean a
//     plain sequential loop.
type Options struct {
	Workers int
}

// DefaultOptions returns Options for a sequential scan.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// View holds the viewing distance of one tree in each direction.
type View struct {
	Up, Left, Down, Right int
}

// Get returns the distance in d.
func (v View) Get(d sightline.Direction) int {
	switch d {
	case sightline.Up:
		return v.Up
	case sightline.Left:
		return v.Left
	case sightline.Down:
		return v.Down
	default:
		return v.Right
	}
}

// Score multiplies the four distances.
func (v View) Score() uint64 {
	return uint64(v.Up) * uint64(v.Left) * uint64(v.Down) * uint64(v.Right)
}

func (v View) String() string {
	return fmt.Sprintf("up=%d left=%d down=%d right=%d", v.Up, v.Left, v.Down, v.Right)
}

// Best locates the highest scenic score. Ties go to the first cell in
// row-major order.
type Best struct {
	Row, Col int
	Score    uint64
}
