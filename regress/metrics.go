// Package regress - evaluation metric shared by the GCN and the baseline.
package regress

// MSE returns the mean-squared error between pred and want restricted to
// vertices where mask is true. Both regressors report this exact metric
// over the same mask, so their scores are directly comparable.
//
// Errors: ErrDimensionMismatch on length skew, ErrEmptyPartition when the
// mask selects no vertex. Complexity: O(n).
func MSE(pred, want []float64, mask []bool) (float64, error) {
	if len(pred) != len(want) || len(pred) != len(mask) {
		return 0, ErrDimensionMismatch
	}

	var (
		sum   float64
		count int
	)
	for i, m := range mask {
		if !m {
			continue
		}
		d := pred[i] - want[i]
		sum += d * d
		count++
	}
	if count == 0 {
		return 0, ErrEmptyPartition
	}

	return sum / float64(count), nil
}
