// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_cycle.go — ring and simple-path constructors.
//
// Cycle(n):  C_n, vertices 0..n-1, edges (i, i+1 mod n) in increasing i.
// PathGraph(n): P_n, vertices 0..n-1, edges (i, i+1) for i < n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

const (
	minCycleNodes = 3
	minPathNodes  = 1
)

// Cycle returns a Constructor that builds the ring C_n. Every C_n is
// Hamiltonian, so it is the canonical positive fixture for tour search.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := addIndexedEdge(g, cfg, i, i, j); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// PathGraph returns a Constructor that builds the simple path P_n. For n >= 3
// P_n has a Hamiltonian path but no Hamiltonian cycle.
func PathGraph(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("PathGraph: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("PathGraph: %w", err)
		}
		for i := 0; i+1 < n; i++ {
			if err := addIndexedEdge(g, cfg, i, i, i+1); err != nil {
				return fmt.Errorf("PathGraph: %w", err)
			}
		}

		return nil
	}
}

// addIndexedVertices adds vertices idFn(0..n-1) in index order.
func addIndexedVertices(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addIndexedEdge adds the k-th edge between vertex indices i and j using the
// configured weight policy.
func addIndexedEdge(g *core.Graph, cfg builderConfig, k, i, j int) error {
	w := cfg.weightFn(k, i, j, cfg.rng)
	_, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), w)

	return err
}
