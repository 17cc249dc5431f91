// Package knngraph - k-nearest-neighbor edge selection.
//
// knn.go turns the dense distance matrix into an undirected edge set:
// per-vertex directed picks of the k nearest vertices, then symmetric
// closure (an edge exists iff either endpoint picked the other), then
// deduplication into canonical (I < J) form.
package knngraph

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// nearestNeighbors returns, for each vertex i, the indices of its k nearest
// vertices by distance, self excluded. Ties break by lower index: candidates
// are ordered by (distance, index), so equal distances always resolve the
// same way regardless of input permutation of the remaining vertices.
// k is assumed clamped to [1, n-1] by the caller.
// Complexity: O(n² log n) time, O(n²) transient space for candidate slices.
func nearestNeighbors(d *mat.SymDense, k int) [][]int {
	n := d.SymmetricDim()
	picks := make([][]int, n)

	cand := make([]int, 0, n-1)
	var i, j int
	for i = 0; i < n; i++ {
		cand = cand[:0]
		for j = 0; j < n; j++ {
			if j != i {
				cand = append(cand, j)
			}
		}
		src := i // capture for the closure below
		sort.SliceStable(cand, func(a, b int) bool {
			da, db := d.At(src, cand[a]), d.At(src, cand[b])
			if da != db {
				return da < db
			}
			return cand[a] < cand[b]
		})

		picks[i] = append([]int(nil), cand[:k]...)
	}

	return picks
}

// symmetrize applies symmetric closure to directed per-vertex picks and
// returns the deduplicated undirected edge set in canonical (I < J) order,
// sorted lexicographically for stable downstream iteration.
// Complexity: O(n·k log(n·k)).
func symmetrize(picks [][]int) []Edge {
	seen := make(map[Edge]struct{}, len(picks)*len(picks[0]))

	var e Edge
	for i, nbrs := range picks {
		for _, j := range nbrs {
			e = Edge{I: i, J: j}
			if e.J < e.I {
				e.I, e.J = e.J, e.I
			}
			seen[e] = struct{}{}
		}
	}

	edges := make([]Edge, 0, len(seen))
	for e = range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].I != edges[b].I {
			return edges[a].I < edges[b].I
		}
		return edges[a].J < edges[b].J
	})

	return edges
}

// degreesAndAdjacency derives per-vertex degrees and ascending adjacency
// lists from a canonical undirected edge set.
// Complexity: O(n + |E| log |E|) (edge set arrives sorted; per-list sort is
// what dominates in the worst case).
func degreesAndAdjacency(n int, edges []Edge) ([]int, [][]int) {
	degs := make([]int, n)
	adj := make([][]int, n)

	for _, e := range edges {
		adj[e.I] = append(adj[e.I], e.J)
		adj[e.J] = append(adj[e.J], e.I)
		degs[e.I]++
		degs[e.J]++
	}
	for i := range adj {
		sort.Ints(adj[i])
	}

	return degs, adj
}
