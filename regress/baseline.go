// Package regress - global linear baseline.
//
// Ordinary least-squares on the scaled-altitude feature alone (the degree
// one-hot is deliberately excluded: the baseline sees no graph structure).
// Fit on train vertices, scored on test vertices with the same MSE the GCN
// reports, so the two numbers are directly comparable.
package regress

import "gonum.org/v1/gonum/stat"

// BaselineResult holds the fitted line and its held-out error.
type BaselineResult struct {
	// Alpha and Beta parameterize ŷ = Alpha + Beta·x.
	Alpha, Beta float64

	// TestMSE is the mean-squared error over the test mask.
	TestMSE float64
}

// Baseline fits OLS linear regression of ys on xs over the train mask and
// evaluates MSE over the test mask.
//
// Errors: ErrDimensionMismatch on length skew, ErrEmptyPartition when
// either mask selects no vertex.
// Complexity: O(n).
func Baseline(xs, ys []float64, trainMask, testMask []bool) (BaselineResult, error) {
	n := len(xs)
	if len(ys) != n || len(trainMask) != n || len(testMask) != n {
		return BaselineResult{}, ErrDimensionMismatch
	}

	// Gather the training subset.
	var trainX, trainY []float64
	for i, sel := range trainMask {
		if sel {
			trainX = append(trainX, xs[i])
			trainY = append(trainY, ys[i])
		}
	}
	if len(trainX) == 0 {
		return BaselineResult{}, ErrEmptyPartition
	}

	alpha, beta := stat.LinearRegression(trainX, trainY, nil, false)

	// Predict every vertex; MSE restricts to the test mask.
	pred := make([]float64, n)
	for i, x := range xs {
		pred[i] = alpha + beta*x
	}
	mse, err := MSE(pred, ys, testMask)
	if err != nil {
		return BaselineResult{}, err
	}

	return BaselineResult{Alpha: alpha, Beta: beta, TestMSE: mse}, nil
}
