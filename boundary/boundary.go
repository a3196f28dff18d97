// SPDX-License-Identifier: MIT

// Package boundary finds the edges and vertices that connect two vertex
// collections of a reference graph.
//
// Both collections are scanned as a cross product, collection A outer and
// collection B inner, so results follow the input order. The collections may
// be raw vertex sets (subgraph mode, see InterEdgesOf) or already-built paths
// (path mode); in either case repeated IDs are visited once, which keeps the
// closing repeat of a closed tour from duplicating results.
//
// All functions are pure: nothing is cached between calls.
package boundary

import (
	"errors"
	"sort"

	"github.com/katalvlaran/hamtour/core"
)

// ErrGraphNil is returned when the reference graph is nil.
var ErrGraphNil = errors.New("boundary: graph is nil")

// Graph is the adjacency view the scans need. *core.Graph satisfies it.
type Graph interface {
	EdgeBetween(u, v string) (*core.Edge, bool)
}

// VertexLister is anything that enumerates its vertices, typically one half
// produced by the partition package.
type VertexLister interface {
	Vertices() []string
}

// CrossEdge is an edge of the reference graph with A taken from the first
// collection and B from the second.
type CrossEdge struct {
	A, B   string
	Weight float64
	EdgeID string
}

// InterEdges returns every edge of g joining a vertex of a to a vertex of b,
// in cross-product order. Weights and IDs are copied from g.
//
// Complexity: O(|a|·|b|) adjacency lookups.
func InterEdges(g Graph, a, b []string) ([]CrossEdge, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	var out []CrossEdge
	scan(g, a, b, func(u, v string, e *core.Edge) {
		out = append(out, CrossEdge{A: u, B: v, Weight: e.Weight, EdgeID: e.ID})
	})

	return out, nil
}

// InterNodes returns the distinct endpoints of the crossing edges in
// first-seen order: for each crossing pair the A-side vertex is considered
// before the B-side vertex.
func InterNodes(g Graph, a, b []string) ([]string, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	var out []string
	seen := make(map[string]bool)
	scan(g, a, b, func(u, v string, _ *core.Edge) {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	})

	return out, nil
}

// InterEdgesOf is InterEdges over the vertex sets of two subgraphs.
func InterEdgesOf(g Graph, ga, gb VertexLister) ([]CrossEdge, error) {
	return InterEdges(g, ga.Vertices(), gb.Vertices())
}

// InterNodesOf is InterNodes over the vertex sets of two subgraphs.
func InterNodesOf(g Graph, ga, gb VertexLister) ([]string, error) {
	return InterNodes(g, ga.Vertices(), gb.Vertices())
}

// SortByWeight returns a copy of edges ordered by ascending weight. Equal
// weights keep their scan order.
func SortByWeight(edges []CrossEdge) []CrossEdge {
	out := make([]CrossEdge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })

	return out
}

func scan(g Graph, a, b []string, visit func(u, v string, e *core.Edge)) {
	a, b = distinct(a), distinct(b)
	for _, u := range a {
		for _, v := range b {
			if e, ok := g.EdgeBetween(u, v); ok {
				visit(u, v, e)
			}
		}
	}
}

// distinct drops repeated IDs, keeping first occurrences.
func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}
