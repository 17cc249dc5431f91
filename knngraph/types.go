// Package knngraph - output types, options and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch via errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context is attached with %w at the call site when essential.
//   - Build never panics on user-triggered conditions.
package knngraph

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultNeighbors is the per-vertex neighbor count used when no
// WithNeighbors option is given.
const DefaultNeighbors = 5

// Sentinel errors for graph construction.
var (
	// ErrTooFewLocations indicates fewer than two input records; no pair
	// exists to measure a distance over.
	ErrTooFewLocations = errors.New("knngraph: need at least two locations")

	// ErrBadNeighborCount indicates a requested k < 1.
	ErrBadNeighborCount = errors.New("knngraph: neighbor count must be >= 1")

	// ErrZeroVariance indicates the altitude feature is constant across all
	// records, so standardization is undefined. Degenerate input, fatal.
	ErrZeroVariance = errors.New("knngraph: zero variance in altitude feature")

	// ErrNonFiniteInput indicates a NaN or ±Inf coordinate, altitude or
	// precipitation value survived ingestion.
	ErrNonFiniteInput = errors.New("knngraph: non-finite input value")

	// ErrMisalignedParts indicates Assemble received per-vertex slices of
	// unequal (or zero) length.
	ErrMisalignedParts = errors.New("knngraph: misaligned graph parts")

	// ErrBadEdge indicates Assemble received a non-canonical edge or an
	// endpoint outside [0, n).
	ErrBadEdge = errors.New("knngraph: bad edge")
)

// Edge is one undirected edge between vertex indices I and J.
// Canonical form: I < J; the edge set contains no duplicates.
type Edge struct {
	I, J int
}

// VertexGraph is the immutable product of Build: vertex ordering, features,
// targets and the undirected kNN edge set, all aligned by vertex index.
type VertexGraph struct {
	// Names holds station names in vertex-index order (post-shuffle).
	Names []string

	// ScaledAlt is the standardized altitude per vertex (mean ~0, std ~1).
	ScaledAlt []float64

	// Targets is the annual precipitation total per vertex.
	Targets []float64

	// Features is the n×(1+MaxDegree+1) design matrix: column 0 is the
	// scaled altitude, the remaining columns one-hot encode vertex degree.
	Features *mat.Dense

	// Edges is the deduplicated undirected edge set in canonical form.
	Edges []Edge

	// Degrees holds each vertex's undirected degree.
	Degrees []int

	// MaxDegree is the maximum observed degree (one-hot width - 1).
	MaxDegree int

	// adj is the adjacency list derived from Edges, kept for queries.
	adj [][]int
}

// Order returns the number of vertices.
// Complexity: O(1).
func (vg *VertexGraph) Order() int { return len(vg.Names) }

// Neighbors returns the adjacency list of vertex i (ascending order).
// The returned slice is shared; callers must not mutate it.
// Complexity: O(1).
func (vg *VertexGraph) Neighbors(i int) []int { return vg.adj[i] }

// FeatureDim returns the width of the feature matrix.
// Complexity: O(1).
func (vg *VertexGraph) FeatureDim() int {
	_, c := vg.Features.Dims()
	return c
}

// Option configures Build.
type Option func(*config)

// config aggregates all builder knobs; passed by value to Build internals.
type config struct {
	k    int
	seed int64
}

// WithNeighbors sets the per-vertex neighbor count k. Values above n-1 are
// clamped to n-1 at build time (complete graph); k < 1 fails Build with
// ErrBadNeighborCount.
func WithNeighbors(k int) Option {
	return func(c *config) { c.k = k }
}

// WithSeed sets the root seed for the deterministic record shuffle.
// Seed 0 resolves to a fixed default stream (see rng.go).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// newConfig applies options in order over deterministic defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{k: DefaultNeighbors, seed: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
