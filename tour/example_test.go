// SPDX-License-Identifier: MIT

package tour_test

import (
	"fmt"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/tour"
)

// ExampleBuild runs the greedy search on the eight-vertex reference graph.
func ExampleBuild() {
	g, _ := builder.BuildGraph(nil, nil, builder.Reference())

	res, err := tour.Build(g, tour.WithSeed("0"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome)
	fmt.Println(res.Path)
	fmt.Println("cost:", res.Cost)

	// Output:
	// found
	// 0 → 1 → 2 → 5 → 4 → 6 → 7 → 3 → 0
	// cost: 65
}
