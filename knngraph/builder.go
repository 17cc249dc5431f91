// Package knngraph - Build orchestrator.
//
// Pipeline (order matters: indices assigned by the shuffle flow into every
// downstream structure):
//
//	validate → shuffle → distance matrix → kNN closure → degrees →
//	standardize ++ one-hot → VertexGraph
package knngraph

import (
	"math"

	"github.com/katalvlaran/precipgnn/dataset"
)

// Build converts raw location records into a VertexGraph.
//
// Contracts:
//   - len(locs) >= 2 (ErrTooFewLocations otherwise).
//   - All coordinates, altitudes and monthly values must be finite
//     (ErrNonFiniteInput otherwise).
//   - k >= 1 (ErrBadNeighborCount); k > n-1 is clamped to n-1, yielding the
//     complete graph without error.
//   - Altitude must not be constant across records (ErrZeroVariance).
//
// Determinism: the entire construction is a pure function of (locs, opts);
// the only randomness is the fixed-seed record shuffle.
//
// Complexity: O(n² log n) time, O(n²) space (distance matrix).
func Build(locs []dataset.Location, opts ...Option) (*VertexGraph, error) {
	cfg := newConfig(opts...)

	// Stage 1 - validate inputs.
	n := len(locs)
	if n < 2 {
		return nil, ErrTooFewLocations
	}
	if cfg.k < 1 {
		return nil, ErrBadNeighborCount
	}
	if err := checkFinite(locs); err != nil {
		return nil, err
	}
	k := cfg.k
	if k > n-1 {
		k = n - 1 // every other vertex is a neighbor; closure gives K_n
	}

	// Stage 2 - deterministic shuffle establishes the vertex ordering.
	perm := shufflePerm(n, rngFromSeed(deriveSeed(cfg.seed, shuffleStream)))

	var (
		names   = make([]string, n)
		lats    = make([]float64, n)
		longs   = make([]float64, n)
		alts    = make([]float64, n)
		targets = make([]float64, n)
	)
	for v, src := range perm {
		loc := locs[src]
		names[v] = loc.Name
		lats[v] = loc.Lat
		longs[v] = loc.Long
		alts[v] = loc.Alt
		targets[v] = loc.AnnualTotal()
	}

	// Stage 3 - pairwise geodesic distances.
	dist := distanceMatrix(lats, longs)

	// Stage 4 - kNN picks, symmetric closure, degrees.
	edges := symmetrize(nearestNeighbors(dist, k))
	degs, adj := degreesAndAdjacency(n, edges)
	maxDeg := maxInt(degs)

	// Stage 5 - standardized altitude ++ one-hot degree features.
	scaled, err := standardize(alts)
	if err != nil {
		return nil, err
	}

	return &VertexGraph{
		Names:     names,
		ScaledAlt: scaled,
		Targets:   targets,
		Features:  assembleFeatures(scaled, degs, maxDeg),
		Edges:     edges,
		Degrees:   degs,
		MaxDegree: maxDeg,
		adj:       adj,
	}, nil
}

// checkFinite rejects NaN/±Inf coordinates, altitudes or monthly values.
// Ingestion already guarantees parseability; this guards direct callers
// that construct records programmatically.
// Complexity: O(n).
func checkFinite(locs []dataset.Location) error {
	finite := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

	for _, loc := range locs {
		if !finite(loc.Lat) || !finite(loc.Long) || !finite(loc.Alt) {
			return ErrNonFiniteInput
		}
		for _, m := range loc.Precip {
			if !finite(m) {
				return ErrNonFiniteInput
			}
		}
	}

	return nil
}
