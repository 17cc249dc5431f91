// Package graphio persists the intermediate artifacts of a run: the built
// graph as GraphML and the aligned per-vertex value files.
//
// The graph file is standard GraphML (http://graphml.graphdrawing.org) with
// three per-node attribute keys: station name, scaled altitude and the
// annual precipitation target. Node ids are "n0".."n{n-1}" in vertex-index
// order, so GraphML rows, value-file rows and in-memory indices all align
// by the same deterministic ordering the builder established.
//
// Value files hold one float64 per line, formatted with strconv's shortest
// round-trippable representation.
//
// Errors: ErrMalformedGraph for structurally invalid GraphML on decode;
// I/O and XML errors are wrapped with context.
package graphio
