// SPDX-License-Identifier: MIT
// Package regress - renormalized graph adjacency.
//
// adjacency.go assembles the dense Â = D^{-1/2}(A+I)D^{-1/2} used by both
// graph-convolution layers: self-loops added, then symmetric degree
// normalization. Â is computed once per training run and fed to the
// expression graph as a constant.
package regress

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// normalizedAdjacency returns Â as a dense n×n matrix.
//
// Contracts:
//   - edges are canonical undirected pairs over [0,n).
//   - Â is symmetric with strictly positive diagonal (self-loops guarantee
//     degree >= 1 for every vertex).
//
// Complexity: O(n² + |E|) time, O(n²) space.
func normalizedAdjacency(n int, edges []knngraph.Edge) *mat.Dense {
	a := mat.NewDense(n, n, nil)

	// A + I.
	var i int
	for i = 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	for _, e := range edges {
		a.Set(e.I, e.J, 1)
		a.Set(e.J, e.I, 1)
	}

	// D^{-1/2} factors from self-loop-inclusive row sums.
	invSqrt := make([]float64, n)
	for i = 0; i < n; i++ {
		invSqrt[i] = 1 / math.Sqrt(mat.Sum(a.RowView(i)))
	}

	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v := a.At(i, j); v != 0 {
				a.Set(i, j, v*invSqrt[i]*invSqrt[j])
			}
		}
	}

	return a
}
