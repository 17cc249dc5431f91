package knngraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// lineMatrix builds the distance matrix of n points on a line with unit
// spacing: d(i,j) = |i-j|.
func lineMatrix(n int) *mat.SymDense {
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, float64(j-i))
		}
	}
	return d
}

// TestNearestNeighbors_LineK2 verifies the collinear scenario: with 10
// collinear points and k=2, interior points pick both immediate neighbors
// and endpoints pick their two nearest available points.
func TestNearestNeighbors_LineK2(t *testing.T) {
	picks := knngraph.NearestNeighborsForTest(lineMatrix(10), 2)
	require.Len(t, picks, 10, "one pick set per vertex")

	for i := 1; i < 9; i++ {
		assert.ElementsMatch(t, []int{i - 1, i + 1}, picks[i],
			"interior vertex %d must pick its immediate neighbors", i)
	}
	assert.ElementsMatch(t, []int{1, 2}, picks[0], "left endpoint picks next two")
	assert.ElementsMatch(t, []int{7, 8}, picks[9], "right endpoint picks previous two")
}

// TestNearestNeighbors_TieBreakLowerIndex verifies that equidistant
// candidates resolve to the lower index.
func TestNearestNeighbors_TieBreakLowerIndex(t *testing.T) {
	// Vertex 1 is equidistant (1.0) from 0 and 2; with k=1 it must pick 0.
	picks := knngraph.NearestNeighborsForTest(lineMatrix(3), 1)
	assert.Equal(t, []int{0}, picks[1], "tie must break to the lower index")
}

// TestSymmetrize_ClosureAndDedup verifies that one-sided picks still yield
// an undirected edge and that mutual picks collapse to a single edge.
func TestSymmetrize_ClosureAndDedup(t *testing.T) {
	// 0 picks 1 and 2; 1 picks 0 (mutual with 0→1); 2 picks 1 (one-sided).
	picks := [][]int{{1, 2}, {0}, {1}}

	edges := knngraph.SymmetrizeForTest(picks)
	assert.Equal(t, []knngraph.Edge{{I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 2}}, edges,
		"closure must keep one canonical copy of every selected pair")
}

// TestSymmetrize_EdgeSymmetric verifies every emitted edge is canonical
// (I < J) and unique.
func TestSymmetrize_EdgeSymmetric(t *testing.T) {
	picks := knngraph.NearestNeighborsForTest(lineMatrix(10), 2)
	edges := knngraph.SymmetrizeForTest(picks)

	seen := make(map[knngraph.Edge]bool)
	for _, e := range edges {
		assert.Less(t, e.I, e.J, "edges must be canonical (I < J)")
		assert.False(t, seen[e], "edge %v duplicated", e)
		seen[e] = true
	}
}
