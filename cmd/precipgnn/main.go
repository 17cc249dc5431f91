// Command precipgnn runs the full pipeline over a precipitation CSV:
// build the spatial kNN graph, persist the intermediate artifacts, train
// the two-layer GCN, and report its test MSE next to the linear baseline.
//
// Usage:
//
//	precipgnn -input california_rain.csv -out-dir out \
//	  -k 5 -test-frac 0.2 -epochs 5000 -lr 0.01 -seed 42
//
// A previously persisted run can be resumed from its artifacts, skipping
// the CSV and the graph build entirely:
//
//	precipgnn -from-dir out -epochs 5000 -seed 42
//
// The process is strictly sequential: build (or reload) → persist →
// partition → train → evaluate. Any sentinel error aborts the run; there
// are no retries or partial results.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/precipgnn/dataset"
	"github.com/katalvlaran/precipgnn/graphio"
	"github.com/katalvlaran/precipgnn/knngraph"
	"github.com/katalvlaran/precipgnn/regress"
)

func main() {
	var (
		input       = flag.String("input", "", "location records CSV (required unless -from-dir is set)")
		outDir      = flag.String("out-dir", "", "directory for intermediate files (empty = skip persistence)")
		fromDir     = flag.String("from-dir", "", "resume from a directory of persisted artifacts instead of -input")
		k           = flag.Int("k", knngraph.DefaultNeighbors, "neighbors per vertex")
		testFrac    = flag.Float64("test-frac", 0.2, "test partition fraction")
		epochs      = flag.Int("epochs", regress.DefaultEpochs, "training epochs")
		learnRate   = flag.Float64("lr", regress.DefaultLearnRate, "Adam learning rate")
		weightDecay = flag.Float64("weight-decay", regress.DefaultWeightDecay, "L2 regularization coefficient")
		hidden      = flag.Int("hidden", regress.DefaultHiddenDim, "hidden layer width")
		dropout     = flag.Float64("dropout", regress.DefaultDropout, "dropout probability (training only)")
		seed        = flag.Int64("seed", 42, "root seed for shuffle, masks and weight init")
		logEvery    = flag.Int("log-every", regress.DefaultLogEvery, "epochs between loss log lines (0 disables)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *input == "" && *fromDir == "" {
		log.Error("one of -input or -from-dir is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, *input, *outDir, *fromDir, *k, *testFrac, *epochs, *learnRate,
		*weightDecay, *hidden, *dropout, *seed, *logEvery); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// run executes the sequential pipeline; it is the only place errors from
// the library packages surface.
func run(log *slog.Logger, input, outDir, fromDir string, k int, testFrac float64,
	epochs int, learnRate, weightDecay float64, hidden int, dropout float64,
	seed int64, logEvery int) error {
	var (
		vg  *knngraph.VertexGraph
		err error
	)
	if fromDir != "" {
		// Resume: reconstruct the graph from persisted artifacts.
		if vg, err = load(fromDir); err != nil {
			return err
		}
		log.Info("reloaded graph", "dir", fromDir,
			"vertices", vg.Order(),
			"edges", len(vg.Edges),
		)
	} else {
		// Load.
		var locs []dataset.Location
		if locs, err = dataset.LoadFile(input); err != nil {
			return err
		}
		log.Info("loaded records", "count", len(locs))

		// Build the spatial graph.
		vg, err = knngraph.Build(locs,
			knngraph.WithNeighbors(k),
			knngraph.WithSeed(seed),
		)
		if err != nil {
			return err
		}
		log.Info("built graph",
			"vertices", vg.Order(),
			"edges", len(vg.Edges),
			"max_degree", vg.MaxDegree,
			"feature_dim", vg.FeatureDim(),
		)
	}

	// Persist intermediate artifacts.
	if outDir != "" {
		if err = persist(outDir, vg); err != nil {
			return err
		}
		log.Info("wrote intermediate files", "dir", outDir)
	}

	// Partition.
	testCount := regress.TestCountForFraction(vg.Order(), testFrac)
	trainMask, testMask, err := regress.SplitMasks(vg.Order(), testCount, seed)
	if err != nil {
		return err
	}
	log.Info("partitioned vertices", "train", vg.Order()-testCount, "test", testCount)

	// Train.
	cfg := regress.Config{
		HiddenDim:   hidden,
		Dropout:     dropout,
		LearnRate:   learnRate,
		WeightDecay: weightDecay,
		Epochs:      epochs,
		LogEvery:    logEvery,
		Seed:        seed,
		Logger:      log,
	}
	model, err := regress.TrainGCN(vg, trainMask, cfg)
	if err != nil {
		return err
	}

	// Evaluate both regressors on the same partition.
	gcnMSE, err := model.Evaluate(testMask)
	if err != nil {
		return err
	}
	base, err := regress.Baseline(vg.ScaledAlt, vg.Targets, trainMask, testMask)
	if err != nil {
		return err
	}

	log.Info("evaluation", "gcn_test_mse", gcnMSE, "baseline_test_mse", base.TestMSE)
	fmt.Printf("GCN test MSE:      %.4f\n", gcnMSE)
	fmt.Printf("Baseline test MSE: %.4f\n", base.TestMSE)

	return nil
}

// persist writes the GraphML file and the aligned value files to dir.
func persist(dir string, vg *knngraph.VertexGraph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	write := func(name string, fn func(f *os.File) error) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err = fn(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	if err := write("graph.graphml", func(f *os.File) error {
		return graphio.Encode(f, vg)
	}); err != nil {
		return err
	}
	if err := write("targets.txt", func(f *os.File) error {
		return graphio.WriteValues(f, vg.Targets)
	}); err != nil {
		return err
	}

	return write("scaled_alt.txt", func(f *os.File) error {
		return graphio.WriteValues(f, vg.ScaledAlt)
	})
}

// load reads the artifacts persist wrote and reassembles the graph. The
// aligned value files must agree with the GraphML node attributes; a drift
// between them means the directory was edited by hand and the run aborts.
func load(dir string) (*knngraph.VertexGraph, error) {
	f, err := os.Open(filepath.Join(dir, "graph.graphml"))
	if err != nil {
		return nil, err
	}
	doc, err := graphio.Decode(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	readVals := func(name string) ([]float64, error) {
		vf, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defer vf.Close()
		return graphio.ReadValues(vf)
	}

	targets, err := readVals("targets.txt")
	if err != nil {
		return nil, err
	}
	scaled, err := readVals("scaled_alt.txt")
	if err != nil {
		return nil, err
	}
	if !equalValues(targets, doc.Targets) || !equalValues(scaled, doc.ScaledAlt) {
		return nil, fmt.Errorf("artifacts in %s disagree with graph.graphml", dir)
	}

	return knngraph.Assemble(doc.Names, doc.ScaledAlt, doc.Targets, doc.Edges)
}

// equalValues reports element-wise equality; artifacts round-trip exactly,
// so no tolerance is needed.
func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
