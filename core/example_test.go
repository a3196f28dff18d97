// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

// ExampleGraph demonstrates insertion-ordered enumeration.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge auto-adds vertices in the order they are first mentioned.
	_, _ = g.AddEdge("C", "A", 2)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 3)

	fmt.Println("Vertices:", g.Vertices())
	ids, _ := g.NeighborIDs("A")
	fmt.Println("Neighbors of A:", ids)
	fmt.Println("Edge B–A exists?", g.HasEdge("B", "A"))

	// Output:
	// Vertices: [C A B]
	// Neighbors of A: [C B]
	// Edge B–A exists? true
}
