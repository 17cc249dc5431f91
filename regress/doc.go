// Package regress trains and evaluates vertex regressors over a spatial
// kNN graph: a two-layer graph-convolutional network (GCN) and an ordinary
// least-squares baseline, scored with the same masked mean-squared error.
//
// 🚀 What does regress do?
//
//	Given a knngraph.VertexGraph and a train/test partition it:
//	  • assembles the renormalized adjacency Â = D^{-1/2}(A+I)D^{-1/2},
//	  • builds Â·ReLU(Â·X·W₀)·W₁ as a gorgonia expression graph,
//	  • trains W₀, W₁ with Adam (L2 weight decay) against the train-masked
//	    MSE for a fixed epoch count, checking each epoch for divergence,
//	  • evaluates with a fresh dropout-free forward pass on the test mask,
//	  • fits the linear baseline on scaled altitude alone for comparison.
//
// ✨ Key properties:
//   - Reproducible: explicit seeds drive mask permutation and weight init
//     via decorrelated SplitMix64 substreams.
//   - The reported test metric NEVER comes from a dropout pass: Predict
//     rebuilds a clean expression graph from the trained weight values.
//   - Strict sentinels: ErrBadConfig, ErrEmptyPartition,
//     ErrDimensionMismatch, ErrNonFiniteLoss; matched via errors.Is.
//   - No control flow depends on logging; the periodic loss log is
//     observability only and disabled when Config.Logger is nil.
//
// ⚙️ Usage:
//
//	train, test, _ := regress.SplitMasks(vg.Order(),
//	  regress.TestCountForFraction(vg.Order(), 0.2), seed)
//	model, err := regress.TrainGCN(vg, train, regress.DefaultConfig())
//	mse, err := model.Evaluate(test)
//	base, err := regress.Baseline(vg.ScaledAlt, vg.Targets, train, test)
package regress
