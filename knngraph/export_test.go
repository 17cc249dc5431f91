package knngraph

// Test-bridge (white-box) exports for knngraph_test.
//
// Exposes the private distance and neighbor-selection kernels so tests can
// verify the geometric contracts (symmetry, zero diagonal, stable
// tie-break) without widening the production API.

import "gonum.org/v1/gonum/mat"

// HaversineKMForTest is a thin pass-through to haversineKM.
func HaversineKMForTest(lat1, lon1, lat2, lon2 float64) float64 {
	return haversineKM(lat1, lon1, lat2, lon2)
}

// DistanceMatrixForTest is a thin pass-through to distanceMatrix.
func DistanceMatrixForTest(lats, longs []float64) *mat.SymDense {
	return distanceMatrix(lats, longs)
}

// NearestNeighborsForTest is a thin pass-through to nearestNeighbors.
func NearestNeighborsForTest(d *mat.SymDense, k int) [][]int {
	return nearestNeighbors(d, k)
}

// SymmetrizeForTest is a thin pass-through to symmetrize.
func SymmetrizeForTest(picks [][]int) []Edge {
	return symmetrize(picks)
}

// StandardizeForTest is a thin pass-through to standardize.
func StandardizeForTest(xs []float64) ([]float64, error) {
	return standardize(xs)
}
