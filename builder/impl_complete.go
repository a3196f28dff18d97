// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// impl_complete.go — complete graph K_n.
//
// Order: vertices 0..n-1, then edges (i,j) for i<j in lexicographic order.
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addIndexedEdge(g, cfg, k, i, j); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
				k++
			}
		}

		return nil
	}
}
