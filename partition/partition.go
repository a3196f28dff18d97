// SPDX-License-Identifier: MIT

// Package partition splits a graph into two node-disjoint induced subgraphs
// by cutting its vertex order at the midpoint.
//
// Contract:
//   - The cut follows core.Graph.Vertices order (insertion order).
//   - The first half receives the extra vertex when the count is odd.
//   - Each half keeps every vertex of its side, isolated ones included,
//     and exactly the source edges with both endpoints on that side,
//     with their original IDs and weights.
package partition

import (
	"errors"

	"github.com/katalvlaran/hamtour/core"
)

// ErrGraphNil is returned when Split receives a nil graph.
var ErrGraphNil = errors.New("partition: graph is nil")

// Halves cuts ids at (len+1)/2. The returned slices are fresh copies.
func Halves(ids []string) (first, second []string) {
	cut := (len(ids) + 1) / 2
	first = append([]string(nil), ids[:cut]...)
	second = append([]string(nil), ids[cut:]...)

	return first, second
}

// Split returns the induced subgraphs of the two halves of g's vertex order.
//
// Complexity: O(V + E).
func Split(g *core.Graph) (*core.Graph, *core.Graph, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	a, b := Halves(g.Vertices())

	return core.InducedSubgraph(g, set(a)), core.InducedSubgraph(g, set(b)), nil
}

func set(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}

	return m
}
