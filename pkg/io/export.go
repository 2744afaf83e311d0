package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/gemtree/pkg/deps"
)

type edgeList struct {
	Root  string      `json:"root"`
	Edges []deps.Edge `json:"edges"`
}

// WriteJSON encodes the edge list of root as indented JSON:
//
//	{"root": "sinatra", "edges": [{"gem": "sinatra", "requires": "rack"}, ...]}
//
// A nil edge slice is written as an empty array.
func WriteJSON(root string, edges []deps.Edge, w io.Writer) error {
	if edges == nil {
		edges = []deps.Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(edgeList{Root: root, Edges: edges}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText writes one "gem -> requires" line per edge, in order.
func WriteText(edges []deps.Edge, w io.Writer) error {
	for _, e := range edges {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes one "gem,requires,count" record per weighted edge.
// When header is true a "gem,requires,count" header row comes first.
func WriteCSV(weighted []deps.WeightedEdge, header bool, w io.Writer) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"gem", "requires", "count"}); err != nil {
			return err
		}
	}
	for _, e := range weighted {
		if err := cw.Write([]string{e.Gem, e.Requires, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
