// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_edges.go — explicit edge lists and the reference instance.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

// EdgeSpec is one undirected weighted edge of an explicit edge list.
type EdgeSpec struct {
	From, To string
	Weight   float64
}

// Edges returns a Constructor that inserts the given edges verbatim, in
// order. Endpoints are added on first mention, so vertex order follows the
// edge list. idFn and weightFn are ignored.
func Edges(list []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range list {
			if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("Edges: #%d %s-%s: %w", i, e.From, e.To, err)
			}
		}

		return nil
	}
}

// referenceEdges is the eight-vertex weighted instance used as the shared
// worked example (vertices "0".."7").
var referenceEdges = []EdgeSpec{
	{"0", "1", 3}, {"1", "2", 5}, {"2", "3", 8}, {"0", "2", 12},
	{"0", "3", 19}, {"3", "1", 7}, {"3", "4", 8}, {"2", "5", 12},
	{"3", "5", 6}, {"4", "6", 7}, {"3", "7", 2}, {"4", "7", 3},
	{"4", "5", 5}, {"7", "6", 12}, {"6", "5", 8}, {"7", "5", 19},
}

// ReferenceEdges returns a copy of the reference edge list.
func ReferenceEdges() []EdgeSpec {
	out := make([]EdgeSpec, len(referenceEdges))
	copy(out, referenceEdges)

	return out
}

// Reference returns a Constructor for the reference instance. Vertices are
// declared "0".."7" up front so that vertex order is numeric.
func Reference() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < 8; i++ {
			if err := g.AddVertex(decimalID(i)); err != nil {
				return fmt.Errorf("Reference: %w", err)
			}
		}

		return Edges(referenceEdges)(g, cfg)
	}
}
