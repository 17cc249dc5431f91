package regress

// Test-bridge (white-box) exports for regress_test.
//
// Exposes the private adjacency kernel so tests can verify the symmetric
// normalization contract without widening the production API.

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// NormalizedAdjacencyForTest is a thin pass-through to normalizedAdjacency.
func NormalizedAdjacencyForTest(n int, edges []knngraph.Edge) *mat.Dense {
	return normalizedAdjacency(n, edges)
}

// GlorotUniformForTest is a thin pass-through to glorotUniform.
func GlorotUniformForTest(rows, cols int, seed int64) []float64 {
	return glorotUniform(rows, cols, seed)
}
