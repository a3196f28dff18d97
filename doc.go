// Package hamtour approximates Hamiltonian cycles over weighted undirected
// graphs with a greedy nearest-edge search and backtracking.
//
// What is in the box?
//
//	• A thread-safe graph with insertion-ordered enumeration (core)
//	• Deterministic fixture graphs: rings, paths, K_n, G(n,p), edge lists (builder)
//	• The greedy + backtracking search, tour validation, cost and rotation (tour)
//	• Cross-edge and cross-vertex analysis between two vertex collections (boundary)
//	• Midpoint split into two induced subgraphs (partition)
//	• Splicing two partial tours through their cheapest boundary edges (merge)
//	• Direct and divide-and-conquer solving with logging and metrics hooks (solve)
//	• Graphviz DOT and SVG renderers with tour highlighting (render)
//
// Every tie is broken by insertion order: vertices by the order they were
// added, candidate edges of equal weight by the order the edges were added.
// Same graph, same seed, same tour.
//
// Layout:
//
//	core/      — Graph, Vertex, Edge; InducedSubgraph
//	builder/   — BuildGraph + constructors (Cycle, PathGraph, Complete, RandomSparse, Edges, Reference)
//	tour/      — Build, Validate, ValidateSimple, Cost, HasEdge, Rotate
//	boundary/  — InterEdges, InterNodes, SortByWeight
//	partition/ — Halves, Split
//	merge/     — Merge
//	solve/     — Solve with Direct / DivideAndConquer
//	render/    — DOT, SVG
//	cmd/hamtour — command-line front end (HCL graph files, env configuration)
//
// Quick example, the four-cycle:
//
//	    A───B
//	    │   │
//	    D───C
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1); g.AddEdge("B", "C", 1)
//	g.AddEdge("C", "D", 1); g.AddEdge("D", "A", 1)
//	res, _ := tour.Build(g) // res.Path == A → B → C → D → A
//
//	go get github.com/katalvlaran/hamtour
package hamtour
