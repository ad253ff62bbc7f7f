package visibility_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/treeline/heightgrid"
	"github.com/katalvlaran/treeline/visibility"
)

// BenchmarkScan measures Scan on a random 100×100 forest.
// Complexity: O(R×C)
func BenchmarkScan(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g, err := heightgrid.New(randomGrid(b, rng, 100, 100, 9))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = visibility.Scan(g).Count()
	}
}
