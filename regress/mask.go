// Package regress - train/test partition masks.
package regress

import "math"

// TestCountForFraction converts a test fraction into an exact vertex count
// by rounding to the nearest integer. The rounding rule is a policy choice;
// callers that need a precise boundary pass an explicit count to SplitMasks
// instead. Complexity: O(1).
func TestCountForFraction(n int, f float64) int {
	return int(math.Round(f * float64(n)))
}

// SplitMasks partitions n vertices into boolean train/test masks with
// exactly testCount test vertices, assigned by a seeded random permutation
// (not stratified by any vertex property).
//
// Guarantees:
//   - train[i] != test[i] for every i (mutually exclusive, exhaustive).
//   - popcount(test) == testCount, popcount(train) == n - testCount.
//   - Identical masks across runs for the same (n, testCount, seed).
//
// Errors: ErrEmptyPartition when testCount <= 0 or testCount >= n.
// Complexity: O(n).
func SplitMasks(n, testCount int, seed int64) (train, test []bool, err error) {
	if testCount <= 0 || testCount >= n {
		return nil, nil, ErrEmptyPartition
	}

	// Exact-count mask, then a Fisher–Yates permutation of the mask itself:
	// the counts are independent of any vertex values by construction.
	test = make([]bool, n)
	var i int
	for i = 0; i < testCount; i++ {
		test[i] = true
	}
	rng := rngFromSeed(deriveSeed(seed, maskStream))
	for i = n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		test[i], test[j] = test[j], test[i]
	}

	train = make([]bool, n)
	for i = 0; i < n; i++ {
		train[i] = !test[i]
	}

	return train, test, nil
}
