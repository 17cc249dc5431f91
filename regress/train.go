// Package regress - GCN training loop.
//
// Fixed-epoch Adam training against the train-masked MSE. No early
// stopping, no validation-based selection: the final-epoch parameters are
// the model. The only per-epoch control flow is the divergence check.
package regress

import (
	"fmt"
	"math"

	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// TrainGCN trains a two-layer GCN on the train-masked vertices of vg.
//
// Contracts:
//   - len(trainMask) == vg.Order() (ErrDimensionMismatch).
//   - trainMask selects at least one vertex (ErrEmptyPartition).
//   - cfg passes validation (ErrBadConfig).
//
// The loss is sum_i w_i·(ŷ_i−y_i)² with w_i = 1/|train| on train vertices
// and 0 elsewhere — exactly the train-masked MSE, with the mask folded into
// a constant weight vector so the expression graph stays branch-free.
//
// Errors: ErrNonFiniteLoss as soon as an epoch produces NaN/±Inf loss.
// Complexity: O(Epochs · n² · hidden).
func TrainGCN(vg *knngraph.VertexGraph, trainMask []bool, cfg Config) (*GCN, error) {
	// Stage 1 - validate.
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := vg.Order()
	if len(trainMask) != n || len(vg.Targets) != n {
		return nil, ErrDimensionMismatch
	}
	var trainCount int
	for _, m := range trainMask {
		if m {
			trainCount++
		}
	}
	if trainCount == 0 {
		return nil, ErrEmptyPartition
	}

	m := newGCN(vg, cfg)

	// Stage 2 - assemble the training expression graph.
	var (
		g    = gorgonia.NewGraph()
		ahat = constMatrix(g, "ahat", n, n, m.ahatData)
		x    = constMatrix(g, "x", n, m.inDim, m.xData)
		y    = constMatrix(g, "y", n, 1, append([]float64(nil), vg.Targets...))
		w0   = gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(m.inDim, cfg.HiddenDim),
			gorgonia.WithName("w0"),
			gorgonia.WithValue(tensor.New(
				tensor.WithShape(m.inDim, cfg.HiddenDim),
				tensor.WithBacking(glorotUniform(m.inDim, cfg.HiddenDim, deriveSeed(cfg.Seed, initStream))))))
		w1 = gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(cfg.HiddenDim, 1),
			gorgonia.WithName("w1"),
			gorgonia.WithValue(tensor.New(
				tensor.WithShape(cfg.HiddenDim, 1),
				tensor.WithBacking(glorotUniform(cfg.HiddenDim, 1, deriveSeed(cfg.Seed, initStream+1))))))
	)

	// Mask folded into per-vertex loss weights: w_i = mask_i/|train|.
	weights := make([]float64, n)
	for i, sel := range trainMask {
		if sel {
			weights[i] = 1 / float64(trainCount)
		}
	}
	wNode := constMatrix(g, "lossw", n, 1, weights)

	pred, err := forward(ahat, x, w0, w1, cfg.Dropout)
	if err != nil {
		return nil, err
	}
	diff, err := gorgonia.Sub(pred, y)
	if err != nil {
		return nil, fmt.Errorf("regress: loss residual: %w", err)
	}
	sq, err := gorgonia.Square(diff)
	if err != nil {
		return nil, fmt.Errorf("regress: loss square: %w", err)
	}
	weighted, err := gorgonia.HadamardProd(sq, wNode)
	if err != nil {
		return nil, fmt.Errorf("regress: loss mask: %w", err)
	}
	cost, err := gorgonia.Sum(weighted)
	if err != nil {
		return nil, fmt.Errorf("regress: loss sum: %w", err)
	}

	if _, err = gorgonia.Grad(cost, w0, w1); err != nil {
		return nil, fmt.Errorf("regress: gradients: %w", err)
	}

	// Stage 3 - run the fixed-epoch Adam loop.
	var (
		learnables = gorgonia.Nodes{w0, w1}
		vm         = gorgonia.NewTapeMachine(g, gorgonia.BindDualValues(learnables...))
		solver     = gorgonia.NewAdamSolver(
			gorgonia.WithLearnRate(cfg.LearnRate),
			gorgonia.WithL2Reg(cfg.WeightDecay),
		)
	)
	defer vm.Close()

	m.LossPerEpoch = make([]float64, 0, cfg.Epochs)
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err = vm.RunAll(); err != nil {
			return nil, fmt.Errorf("regress: epoch %d: %w", epoch, err)
		}

		loss := cost.Value().Data().(float64)
		m.LossPerEpoch = append(m.LossPerEpoch, loss)
		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			return nil, fmt.Errorf("regress: epoch %d: %w", epoch, ErrNonFiniteLoss)
		}
		if cfg.Logger != nil && cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			cfg.Logger.Info("training", "epoch", epoch, "loss", loss)
		}

		if err = solver.Step(gorgonia.NodesToValueGrads(learnables)); err != nil {
			return nil, fmt.Errorf("regress: epoch %d: adam step: %w", epoch, err)
		}
		vm.Reset()
	}

	// Stage 4 - freeze the trained parameter values into the model.
	m.w0Val = w0.Value()
	m.w1Val = w1.Value()

	return m, nil
}
