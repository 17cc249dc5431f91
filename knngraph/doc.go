// Package knngraph builds an undirected spatial k-nearest-neighbor graph
// from geolocated records and derives per-vertex regression features.
//
// 🚀 What does knngraph do?
//
//	Given a slice of dataset.Location records it produces a VertexGraph:
//	  • a deterministic fixed-seed shuffle of the records (vertex order),
//	  • a dense symmetric haversine distance matrix (kilometers),
//	  • undirected kNN edges via symmetric closure of per-vertex picks,
//	  • per-vertex features: standardized altitude ++ one-hot degree,
//	  • per-vertex targets: annual precipitation totals.
//
// ✨ Key properties:
//   - Deterministic: same seed ⇒ identical vertex order, edges, features.
//   - Strict sentinels: ErrTooFewLocations, ErrBadNeighborCount,
//     ErrZeroVariance, ErrNonFiniteInput; matched via errors.Is.
//   - Stable tie-break: equal distances resolve to the lower index.
//   - k ≥ n−1 clamps to the complete graph instead of failing.
//
// ⚙️ Usage:
//
//	vg, err := knngraph.Build(locs,
//	  knngraph.WithNeighbors(5),
//	  knngraph.WithSeed(42),
//	)
//
// Performance:
//
//   - Time:   O(n² log n) (distance matrix + per-row neighbor sort)
//   - Memory: O(n²) (dense distance matrix)
//
// The O(n²) pass is fine at the few-hundred-vertex scale this module
// targets; swap in a spatial index behind nearestNeighbors if that ever
// changes — the contract (symmetric distances, stable tie-break) must hold
// regardless of the underlying search.
package knngraph
