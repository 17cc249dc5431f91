package regress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/precipgnn/regress"
)

// TestMSE_MaskedMean verifies the metric only counts masked vertices.
func TestMSE_MaskedMean(t *testing.T) {
	pred := []float64{1, 2, 3, 4}
	want := []float64{1, 4, 3, 0}
	mask := []bool{true, true, false, true}

	// Errors: 0², 2², (skipped), 4² → (0+4+16)/3.
	mse, err := regress.MSE(pred, want, mask)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/3.0, mse, 1e-12, "mean over masked vertices only")
}

// TestMSE_PerfectPrediction verifies a zero metric for exact predictions.
func TestMSE_PerfectPrediction(t *testing.T) {
	v := []float64{5, 6, 7}
	mse, err := regress.MSE(v, v, []bool{true, true, true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, mse, "exact predictions give zero MSE")
}

// TestMSE_Errors exercises the sentinel paths: length skew and empty mask.
func TestMSE_Errors(t *testing.T) {
	_, err := regress.MSE([]float64{1}, []float64{1, 2}, []bool{true, true})
	assert.ErrorIs(t, err, regress.ErrDimensionMismatch, "length skew must error")

	_, err = regress.MSE([]float64{1, 2}, []float64{1, 2}, []bool{false, false})
	assert.ErrorIs(t, err, regress.ErrEmptyPartition, "empty mask must error")
}
