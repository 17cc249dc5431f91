// SPDX-License-Identifier: MIT
// Package knngraph - per-vertex feature derivation.
//
// features.go standardizes the raw altitude feature and encodes vertex
// degrees as one-hot vectors; builder.go concatenates both into the design
// matrix.
package knngraph

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// standardize returns (xs - mean)/std per element, with the sample standard
// deviation. A zero (or non-finite) std means the feature is constant and
// standardization is undefined: ErrZeroVariance.
// Complexity: O(n) time, O(n) space.
func standardize(xs []float64) ([]float64, error) {
	mean, std := stat.MeanStdDev(xs, nil)
	if !(std > 0) { // catches 0 and NaN
		return nil, ErrZeroVariance
	}

	scaled := make([]float64, len(xs))
	for i, x := range xs {
		scaled[i] = (x - mean) / std
	}

	return scaled, nil
}

// assembleFeatures builds the n×(1+maxDeg+1) design matrix: column 0 holds
// the scaled altitude, column 1+deg(v) holds the single 1 of vertex v's
// one-hot degree encoding.
// Complexity: O(n·maxDeg) time and space (zero columns dominate).
func assembleFeatures(scaled []float64, degs []int, maxDeg int) *mat.Dense {
	var (
		n     = len(scaled)
		width = 1 + maxDeg + 1
		x     = mat.NewDense(n, width, nil)
	)

	for v := 0; v < n; v++ {
		x.Set(v, 0, scaled[v])
		x.Set(v, 1+degs[v], 1)
	}

	return x
}

// maxInt returns the maximum of a non-empty int slice.
// Complexity: O(n).
func maxInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}
