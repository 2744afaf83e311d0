package deps

import (
	"context"
	"fmt"
)

// WeightedEdge is a distinct edge with the number of times it occurs in a
// tree expansion.
type WeightedEdge struct {
	Gem      string `json:"gem"`
	Requires string `json:"requires"`
	Count    int    `json:"count"`
}

// CSV formats the edge as "gem,requires,count".
func (w WeightedEdge) CSV() string {
	return fmt.Sprintf("%s,%s,%d", w.Gem, w.Requires, w.Count)
}

// Weigh groups identical edges and counts them. The result lists each
// distinct edge once, in the order of its first occurrence in edges.
func Weigh(edges []Edge) []WeightedEdge {
	index := make(map[Edge]int, len(edges))
	out := []WeightedEdge{}
	for _, e := range edges {
		if i, ok := index[e]; ok {
			out[i].Count++
			continue
		}
		index[e] = len(out)
		out = append(out, WeightedEdge{Gem: e.Gem, Requires: e.Requires, Count: 1})
	}
	return out
}

// WeightedCSV expands name with [Expander.Tree] and returns one
// "gem,requires,count" line per distinct edge, in first-occurrence order.
func (e *Expander) WeightedCSV(ctx context.Context, name string) ([]string, error) {
	edges, err := e.Tree(ctx, name)
	if err != nil {
		return nil, err
	}
	weighted := Weigh(edges)
	lines := make([]string, len(weighted))
	for i, w := range weighted {
		lines[i] = w.CSV()
	}
	return lines, nil
}
