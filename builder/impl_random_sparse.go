// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) with a seeded RNG.
//
// Contract:
//   • n >= 1, 0 <= p <= 1, rng required (WithSeed/WithRand).
//   • Pairs (i,j), i<j, are visited in lexicographic order; each is kept with
//     probability p. The RNG draw order is fixed, so a seed fully determines
//     the graph including the weights drawn by the weight policy.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

const minRandomNodes = 1

// RandomSparse returns a Constructor that builds a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}

		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addIndexedEdge(g, cfg, k, i, j); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
				k++
			}
		}

		return nil
	}
}
