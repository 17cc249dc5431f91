// Package knngraph - reconstruction from persisted parts.
//
// Assemble is the inverse of persisting a built graph: given the vertex
// ordering, the already-standardized altitudes, the targets and the
// canonical edge set, it recomputes everything derivable (degrees,
// adjacency, one-hot feature columns) and returns a VertexGraph
// indistinguishable from the one Build produced.
package knngraph

// Assemble reconstructs a VertexGraph from previously persisted parts.
//
// Contracts:
//   - names, scaledAlt and targets have equal nonzero length n
//     (ErrMisalignedParts otherwise).
//   - Every edge is canonical (I < J) with endpoints in [0, n)
//     (ErrBadEdge otherwise).
//   - scaledAlt is already standardized; Assemble never rescales.
//
// Complexity: O(n·maxDegree + |E|).
func Assemble(names []string, scaledAlt, targets []float64, edges []Edge) (*VertexGraph, error) {
	// Stage 1 - validate alignment.
	n := len(names)
	if n == 0 || len(scaledAlt) != n || len(targets) != n {
		return nil, ErrMisalignedParts
	}
	for _, e := range edges {
		if e.I < 0 || e.J >= n || e.I >= e.J {
			return nil, ErrBadEdge
		}
	}

	// Stage 2 - recompute the derived structures.
	degs, adj := degreesAndAdjacency(n, edges)
	maxDeg := maxInt(degs)

	return &VertexGraph{
		Names:     append([]string(nil), names...),
		ScaledAlt: append([]float64(nil), scaledAlt...),
		Targets:   append([]float64(nil), targets...),
		Features:  assembleFeatures(scaledAlt, degs, maxDeg),
		Edges:     append([]Edge(nil), edges...),
		Degrees:   degs,
		MaxDegree: maxDeg,
		adj:       adj,
	}, nil
}
