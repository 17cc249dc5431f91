// Package regress - RNG utilities for reproducible partitioning and init.
//
// Same policy as the graph builder's rng.go: seed==0 resolves to a fixed
// default, substreams are derived with a SplitMix64 finalizer so mask
// permutation and weight initialization stay decorrelated even when both
// are driven by the same root seed.
package regress

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Substream identifiers of the root seed. The shuffle stream (1) belongs
// to the graph builder; keep these disjoint from it.
const (
	maskStream uint64 = 2
	initStream uint64 = 3
)

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ default).
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer,
// Vigna 2014). Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
