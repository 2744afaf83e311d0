// Package io writes expansion results for the command line.
//
// Edge lists are written as text ([WriteText]) or JSON ([WriteJSON]);
// weighted edges as CSV ([WriteCSV]). Gem names never contain commas or
// quotes, so [WriteCSV] output matches [deps.WeightedEdge.CSV] line for line.
//
// [deps.WeightedEdge.CSV]: github.com/matzehuels/gemtree/pkg/deps.WeightedEdge.CSV
package io
