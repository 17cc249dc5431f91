// Package knngraph - RNG utilities for deterministic construction.
//
// This file centralizes random generation for the graph builder.
//
// Goals:
//   - Determinism: same seed ⇒ identical vertex ordering across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; the builder is single-pass and
//     never shares an RNG across goroutines.
package knngraph

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// shuffleStream identifies the record-shuffle substream of the root seed.
const shuffleStream uint64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style finalizer, so substreams (shuffle here, mask
// and weight-init in the regress package) stay decorrelated even when the
// same root seed feeds all of them.
//
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shufflePerm returns a permutation of 0..n-1 generated deterministically
// from rng via an in-place Fisher–Yates shuffle.
// Complexity: O(n) time, O(n) space (the returned permutation).
func shufflePerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
