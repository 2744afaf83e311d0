// Package deps expands a package's runtime dependencies into a flat,
// ordered list of parent→child edges.
//
// # Overview
//
// An [Expander] reads dependency lists from a [Source] and walks them
// depth-first. For every dependency d of a package p it emits the edge
// {p, d} and then, immediately, all edges of d's own subtree:
//
//	sinatra -> rack
//	sinatra -> rack-protection
//	rack-protection -> rack
//	sinatra -> tilt
//
// The graph is treated as a tree. A package reachable along two paths is
// expanded twice and its edges appear twice; the [Source] is expected to
// memoize so the second expansion costs no network traffic.
//
// # Cycles
//
// Registries are expected to be acyclic, but the expander does not rely on
// it: a package that reappears on its own expansion path stops the walk with
// a CYCLE_DETECTED error naming the path.
//
// # Tallying
//
// [Weigh] collapses repeated edges into [WeightedEdge] values with counts,
// preserving first-occurrence order. [Expander.WeightedCSV] formats them as
// "gem,requires,count" lines.
//
// # Sources
//
// The RubyGems implementation lives in [ruby]. Tests can use [SourceFunc]
// to supply dependency lists from memory.
//
// [ruby]: github.com/matzehuels/gemtree/pkg/deps/ruby
package deps
