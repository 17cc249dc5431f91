package graphio_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/precipgnn/dataset"
	"github.com/katalvlaran/precipgnn/graphio"
	"github.com/katalvlaran/precipgnn/knngraph"
)

// fixtureGraph builds a small deterministic graph for persistence tests.
func fixtureGraph(t *testing.T) *knngraph.VertexGraph {
	t.Helper()

	locs := make([]dataset.Location, 6)
	for i := range locs {
		locs[i] = dataset.Location{
			Name: fmt.Sprintf("st%d", i),
			Lat:  35 + float64(i)*0.5,
			Long: -120 - float64(i)*0.25,
			Alt:  float64(100 * (i + 1)),
		}
		locs[i].Precip[3] = float64(i * 7)
	}

	vg, err := knngraph.Build(locs, knngraph.WithNeighbors(2), knngraph.WithSeed(9))
	require.NoError(t, err, "fixture build must succeed")

	return vg
}

// TestGraphML_RoundTrip verifies Encode→Decode preserves names, scaled
// altitudes, targets and the edge set in vertex order.
func TestGraphML_RoundTrip(t *testing.T) {
	vg := fixtureGraph(t)

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, vg), "encode must succeed")

	doc, err := graphio.Decode(&buf)
	require.NoError(t, err, "decode must succeed")

	assert.Equal(t, vg.Names, doc.Names, "names must round-trip in order")
	assert.Equal(t, vg.ScaledAlt, doc.ScaledAlt, "scaled altitudes must round-trip exactly")
	assert.Equal(t, vg.Targets, doc.Targets, "targets must round-trip exactly")
	assert.Equal(t, vg.Edges, doc.Edges, "edge set must round-trip in canonical form")
}

// TestGraphML_RebuildsTrainableGraph verifies the resume path: a decoded
// document fed to knngraph.Assemble must reproduce the original graph's
// derived structures, so training can start from persisted artifacts alone.
func TestGraphML_RebuildsTrainableGraph(t *testing.T) {
	vg := fixtureGraph(t)

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, vg), "encode must succeed")
	doc, err := graphio.Decode(&buf)
	require.NoError(t, err, "decode must succeed")

	got, err := knngraph.Assemble(doc.Names, doc.ScaledAlt, doc.Targets, doc.Edges)
	require.NoError(t, err, "assembling decoded parts must succeed")

	assert.Equal(t, vg.Degrees, got.Degrees, "degrees must be reconstructed")
	assert.Equal(t, vg.MaxDegree, got.MaxDegree, "max degree must be reconstructed")
	assert.Equal(t, vg.FeatureDim(), got.FeatureDim(), "feature width must be reconstructed")
	assert.Equal(t, vg.Features.RawMatrix().Data, got.Features.RawMatrix().Data,
		"feature matrix must be reconstructed exactly")
}

// TestGraphML_DeclaresUndirected verifies the written document is a valid
// GraphML skeleton with an undirected graph element.
func TestGraphML_DeclaresUndirected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, fixtureGraph(t)))

	out := buf.String()
	assert.Contains(t, out, `xmlns="http://graphml.graphdrawing.org/xmlns"`, "namespace")
	assert.Contains(t, out, `edgedefault="undirected"`, "edge default")
	assert.Contains(t, out, `attr.name="scaled_alt"`, "scaled altitude key")
	assert.Contains(t, out, `attr.name="target"`, "target key")
}

// TestDecode_DanglingEdge verifies ErrMalformedGraph for an edge that
// references an unknown node id.
func TestDecode_DanglingEdge(t *testing.T) {
	in := `<?xml version="1.0"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="undirected">
    <node id="n0">
      <data key="name">a</data>
      <data key="scaled_alt">0.5</data>
      <data key="target">10</data>
    </node>
    <edge source="n0" target="n7"></edge>
  </graph>
</graphml>`

	_, err := graphio.Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, graphio.ErrMalformedGraph, "dangling edge must error")
}

// TestDecode_MissingAttribute verifies ErrMalformedGraph when a node lacks
// one of the three required keys.
func TestDecode_MissingAttribute(t *testing.T) {
	in := `<?xml version="1.0"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="undirected">
    <node id="n0">
      <data key="name">a</data>
    </node>
  </graph>
</graphml>`

	_, err := graphio.Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, graphio.ErrMalformedGraph, "missing attributes must error")
}

// TestValues_RoundTrip verifies the aligned value files preserve every
// float exactly.
func TestValues_RoundTrip(t *testing.T) {
	vals := []float64{0, -1.5, 3.25, 1e-17, 123456.789, -0.0000001}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteValues(&buf, vals), "write must succeed")

	got, err := graphio.ReadValues(&buf)
	require.NoError(t, err, "read must succeed")
	assert.Equal(t, vals, got, "values must round-trip exactly")
}

// TestReadValues_Malformed verifies ErrBadValue on an unparsable line.
func TestReadValues_Malformed(t *testing.T) {
	_, err := graphio.ReadValues(strings.NewReader("1.5\nnope\n2.5\n"))
	assert.ErrorIs(t, err, graphio.ErrBadValue, "bad line must error")
}
