// SPDX-License-Identifier: MIT
// Package knngraph - pairwise geodesic distances.
//
// distance.go builds the dense symmetric matrix of haversine great-circle
// distances (kilometers) between all vertex pairs.
//
// Invariants (enforced by construction, checked in tests):
//   - d(i,j) == d(j,i)        (mat.SymDense storage guarantees this)
//   - d(i,i) == 0
//   - d(i,j) > 0 for distinct coordinates
package knngraph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180.0

// haversineKM returns the great-circle distance in kilometers between
// (lat1,lon1) and (lat2,lon2), both in decimal degrees.
// Complexity: O(1).
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	var (
		p1 = lat1 * degToRad
		p2 = lat2 * degToRad
		dp = (lat2 - lat1) * degToRad
		dl = (lon2 - lon1) * degToRad
	)
	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// distanceMatrix computes the n×n symmetric haversine distance matrix over
// the given coordinate slices (aligned by vertex index). Only the upper
// triangle is computed; SymDense mirrors it.
// Complexity: O(n²) time and space.
func distanceMatrix(lats, longs []float64) *mat.SymDense {
	n := len(lats)
	d := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		// Diagonal stays zero: SymDense is zero-initialized.
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, haversineKM(lats[i], longs[i], lats[j], longs[j]))
		}
	}

	return d
}
