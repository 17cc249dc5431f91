// Package graphio - GraphML encode/decode.
//
// Only the subset of GraphML this module produces is supported on decode:
// a single undirected graph, string node ids "n<i>", and the three
// attribute keys written by Encode. Anything else fails with
// ErrMalformedGraph rather than being silently skipped.
package graphio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/precipgnn/knngraph"
)

// ErrMalformedGraph indicates structurally invalid GraphML on decode
// (unknown node id, dangling edge endpoint, missing attribute).
var ErrMalformedGraph = errors.New("graphio: malformed graph file")

// graphmlNS is the GraphML namespace written on encode.
const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

// Attribute key ids, stable across encode/decode.
const (
	keyName   = "name"
	keyScaled = "scaled_alt"
	keyTarget = "target"
)

// Document is the decoded form of a persisted graph: the slices are aligned
// by vertex index, matching the ordering the graph builder established.
type Document struct {
	Names     []string
	ScaledAlt []float64
	Targets   []float64
	Edges     []knngraph.Edge
}

// xml wire structs (GraphML subset).

type xmlGraphML struct {
	XMLName xml.Name `xml:"graphml"`
	XMLNS   string   `xml:"xmlns,attr"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type xmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Encode writes vg to w as GraphML.
// Complexity: O(n + |E|).
func Encode(w io.Writer, vg *knngraph.VertexGraph) error {
	n := vg.Order()

	doc := xmlGraphML{
		XMLNS: graphmlNS,
		Keys: []xmlKey{
			{ID: keyName, For: "node", Name: keyName, Type: "string"},
			{ID: keyScaled, For: "node", Name: keyScaled, Type: "double"},
			{ID: keyTarget, For: "node", Name: keyTarget, Type: "double"},
		},
		Graph: xmlGraph{
			ID:          "G",
			EdgeDefault: "undirected",
			Nodes:       make([]xmlNode, n),
			Edges:       make([]xmlEdge, len(vg.Edges)),
		},
	}

	for v := 0; v < n; v++ {
		doc.Graph.Nodes[v] = xmlNode{
			ID: nodeID(v),
			Data: []xmlData{
				{Key: keyName, Value: vg.Names[v]},
				{Key: keyScaled, Value: formatFloat(vg.ScaledAlt[v])},
				{Key: keyTarget, Value: formatFloat(vg.Targets[v])},
			},
		}
	}
	for i, e := range vg.Edges {
		doc.Graph.Edges[i] = xmlEdge{Source: nodeID(e.I), Target: nodeID(e.J)}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Decode reads a GraphML document previously written by Encode.
// Complexity: O(n + |E|).
func Decode(r io.Reader) (*Document, error) {
	var doc xmlGraphML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	n := len(doc.Graph.Nodes)
	out := &Document{
		Names:     make([]string, n),
		ScaledAlt: make([]float64, n),
		Targets:   make([]float64, n),
		Edges:     make([]knngraph.Edge, 0, len(doc.Graph.Edges)),
	}

	index := make(map[string]int, n)
	for v, node := range doc.Graph.Nodes {
		index[node.ID] = v
		var haveName, haveScaled, haveTarget bool
		for _, d := range node.Data {
			switch d.Key {
			case keyName:
				out.Names[v] = d.Value
				haveName = true
			case keyScaled:
				f, err := strconv.ParseFloat(d.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("graphio: node %q scaled_alt: %w", node.ID, ErrMalformedGraph)
				}
				out.ScaledAlt[v] = f
				haveScaled = true
			case keyTarget:
				f, err := strconv.ParseFloat(d.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("graphio: node %q target: %w", node.ID, ErrMalformedGraph)
				}
				out.Targets[v] = f
				haveTarget = true
			}
		}
		if !haveName || !haveScaled || !haveTarget {
			return nil, fmt.Errorf("graphio: node %q missing attributes: %w", node.ID, ErrMalformedGraph)
		}
	}

	for _, e := range doc.Graph.Edges {
		i, ok := index[e.Source]
		if !ok {
			return nil, fmt.Errorf("graphio: edge source %q: %w", e.Source, ErrMalformedGraph)
		}
		j, ok := index[e.Target]
		if !ok {
			return nil, fmt.Errorf("graphio: edge target %q: %w", e.Target, ErrMalformedGraph)
		}
		if j < i {
			i, j = j, i
		}
		out.Edges = append(out.Edges, knngraph.Edge{I: i, J: j})
	}

	return out, nil
}

// nodeID renders the stable GraphML id of vertex v.
func nodeID(v int) string { return "n" + strconv.Itoa(v) }

// formatFloat renders v in the shortest form that round-trips exactly.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
