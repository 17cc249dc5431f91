// Package regress - configuration and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch via errors.Is.
//   - Context is attached with %w at call sites, never at definition.
//   - Training never panics on user-triggered conditions; divergence is
//     surfaced as ErrNonFiniteLoss, not as a meaningless final metric.
package regress

import (
	"errors"
	"log/slog"
)

// Deterministic training defaults (named, no magic numbers).
const (
	// DefaultHiddenDim is the width of the hidden graph-convolution layer.
	DefaultHiddenDim = 16

	// DefaultDropout is the drop probability applied after the hidden
	// layer during training. Evaluation always runs dropout-free.
	DefaultDropout = 0.25

	// DefaultLearnRate is the Adam learning rate.
	DefaultLearnRate = 0.01

	// DefaultWeightDecay is the L2 regularization coefficient.
	DefaultWeightDecay = 5e-4

	// DefaultEpochs is the fixed training epoch count.
	DefaultEpochs = 5000

	// DefaultLogEvery is the epoch interval for loss logging.
	DefaultLogEvery = 500
)

// Sentinel errors for partitioning, training and evaluation.
var (
	// ErrBadConfig indicates an out-of-range Config field.
	ErrBadConfig = errors.New("regress: invalid configuration")

	// ErrEmptyPartition indicates a train or test partition with no
	// vertices; the masked metric is undefined. Fatal for the run.
	ErrEmptyPartition = errors.New("regress: empty train or test partition")

	// ErrDimensionMismatch indicates feature/target/mask length skew.
	ErrDimensionMismatch = errors.New("regress: dimension mismatch")

	// ErrNonFiniteLoss indicates the training loss became NaN or ±Inf
	// (divergence). The run aborts rather than reporting garbage.
	ErrNonFiniteLoss = errors.New("regress: non-finite training loss")
)

// Config collects all training knobs. Zero value is NOT usable; start from
// DefaultConfig and override.
type Config struct {
	// HiddenDim is the hidden layer width (>= 1).
	HiddenDim int

	// Dropout is the drop probability in [0,1); 0 disables the layer.
	Dropout float64

	// LearnRate is the Adam learning rate (> 0).
	LearnRate float64

	// WeightDecay is the L2 regularization coefficient (>= 0).
	WeightDecay float64

	// Epochs is the fixed number of training iterations (>= 1).
	Epochs int

	// LogEvery is the epoch interval for loss logging; <= 0 disables.
	LogEvery int

	// Seed drives weight initialization (mask permutation has its own
	// seed parameter in SplitMasks). Seed 0 resolves to a fixed default.
	Seed int64

	// Logger receives the periodic loss records; nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the reference-run configuration.
// Complexity: O(1).
func DefaultConfig() Config {
	return Config{
		HiddenDim:   DefaultHiddenDim,
		Dropout:     DefaultDropout,
		LearnRate:   DefaultLearnRate,
		WeightDecay: DefaultWeightDecay,
		Epochs:      DefaultEpochs,
		LogEvery:    DefaultLogEvery,
	}
}

// validate checks field ranges, returning ErrBadConfig on the first
// violation. Complexity: O(1).
func (c Config) validate() error {
	switch {
	case c.HiddenDim < 1:
		return ErrBadConfig
	case c.Dropout < 0 || c.Dropout >= 1:
		return ErrBadConfig
	case c.LearnRate <= 0:
		return ErrBadConfig
	case c.WeightDecay < 0:
		return ErrBadConfig
	case c.Epochs < 1:
		return ErrBadConfig
	}

	return nil
}
