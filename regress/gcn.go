// Package regress - two-layer graph-convolutional model.
//
// The model is Â·ReLU(Â·X·W₀)·W₁ with dropout between the layers during
// training. Forward passes are gorgonia expression graphs executed on a
// tape machine; reverse-mode gradients of the masked training loss drive
// the Adam updates (see train.go).
//
// The training graph and the evaluation graph are built separately: the
// evaluation graph is reconstructed from the trained weight VALUES and
// contains no dropout node, so the reported test metric can never come
// from a stochastic pass.
package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// GCN is a trained two-layer graph-convolutional regressor. Construct via
// TrainGCN; the zero value is not usable.
type GCN struct {
	cfg Config

	n     int // vertex count
	inDim int // feature width

	// Constant inputs shared by the train and eval graphs (row-major).
	ahatData []float64
	xData    []float64

	// Targets aligned by vertex index, kept for Evaluate.
	targets []float64

	// Trained parameter values (tensor.Dense under the hood).
	w0Val gorgonia.Value
	w1Val gorgonia.Value

	// LossPerEpoch records the train-masked loss after every epoch.
	// Observability only; no control flow reads it besides the per-epoch
	// divergence check in TrainGCN.
	LossPerEpoch []float64
}

// forward wires one forward pass on g: pred = Â·act(Â·X·W₀)·W₁ where act is
// ReLU followed by dropout iff dropProb > 0. Returns the n×1 prediction node.
func forward(ahat, x, w0, w1 *gorgonia.Node, dropProb float64) (*gorgonia.Node, error) {
	h, err := gorgonia.Mul(x, w0)
	if err != nil {
		return nil, fmt.Errorf("regress: layer1 XW: %w", err)
	}
	if h, err = gorgonia.Mul(ahat, h); err != nil {
		return nil, fmt.Errorf("regress: layer1 aggregate: %w", err)
	}
	if h, err = gorgonia.Rectify(h); err != nil {
		return nil, fmt.Errorf("regress: relu: %w", err)
	}
	if dropProb > 0 {
		if h, err = gorgonia.Dropout(h, dropProb); err != nil {
			return nil, fmt.Errorf("regress: dropout: %w", err)
		}
	}
	if h, err = gorgonia.Mul(h, w1); err != nil {
		return nil, fmt.Errorf("regress: layer2 HW: %w", err)
	}
	if h, err = gorgonia.Mul(ahat, h); err != nil {
		return nil, fmt.Errorf("regress: layer2 aggregate: %w", err)
	}

	return h, nil
}

// constMatrix declares an n-by-c constant input node backed by data.
func constMatrix(g *gorgonia.ExprGraph, name string, r, c int, data []float64) *gorgonia.Node {
	return gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(r, c),
		gorgonia.WithName(name),
		gorgonia.WithValue(tensor.New(tensor.WithShape(r, c), tensor.WithBacking(data))),
	)
}

// glorotUniform fills a rows×cols backing slice with Glorot-uniform values
// drawn from the given deterministic stream: U(-l, l), l = √(6/(in+out)).
// Complexity: O(rows·cols).
func glorotUniform(rows, cols int, seed int64) []float64 {
	var (
		rng   = rngFromSeed(seed)
		limit = math.Sqrt(6 / float64(rows+cols))
		w     = make([]float64, rows*cols)
	)
	for i := range w {
		w[i] = (rng.Float64()*2 - 1) * limit
	}

	return w
}

// flatten copies a gonum Dense into a fresh row-major float64 slice.
func flatten(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[i*c+j] = m.At(i, j)
		}
	}

	return out
}

// newGCN prepares the constant inputs of a model from the vertex graph.
func newGCN(vg *knngraph.VertexGraph, cfg Config) *GCN {
	return &GCN{
		cfg:      cfg,
		n:        vg.Order(),
		inDim:    vg.FeatureDim(),
		ahatData: flatten(normalizedAdjacency(vg.Order(), vg.Edges)),
		xData:    flatten(vg.Features),
		targets:  append([]float64(nil), vg.Targets...),
	}
}

// Predict runs a dropout-free forward pass with the trained weights and
// returns one prediction per vertex. A fresh expression graph is built from
// the stored weight values, so no training-mode state can leak into
// inference. Complexity: O(n²·hidden) per call.
func (m *GCN) Predict() ([]float64, error) {
	g := gorgonia.NewGraph()

	var (
		ahat = constMatrix(g, "ahat", m.n, m.n, m.ahatData)
		x    = constMatrix(g, "x", m.n, m.inDim, m.xData)
		w0   = gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(m.inDim, m.cfg.HiddenDim),
			gorgonia.WithName("w0"),
			gorgonia.WithValue(m.w0Val))
		w1 = gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(m.cfg.HiddenDim, 1),
			gorgonia.WithName("w1"),
			gorgonia.WithValue(m.w1Val))
	)

	pred, err := forward(ahat, x, w0, w1, 0) // evaluation mode: no dropout
	if err != nil {
		return nil, err
	}

	vm := gorgonia.NewTapeMachine(g)
	defer vm.Close()
	if err = vm.RunAll(); err != nil {
		return nil, fmt.Errorf("regress: predict: %w", err)
	}

	out := pred.Value().Data().([]float64)

	return append([]float64(nil), out...), nil
}

// Evaluate computes the test metric: MSE of a dropout-free forward pass
// restricted to mask. Complexity: one Predict plus O(n).
func (m *GCN) Evaluate(mask []bool) (float64, error) {
	pred, err := m.Predict()
	if err != nil {
		return 0, err
	}

	return MSE(pred, m.targets, mask)
}
